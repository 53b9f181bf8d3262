// Package manifest parses the textual layer manifest: a JSON document
// listing the canvas size, a layer stack of image/mask paths and offsets,
// and the full_keypoints toggle. This is one of the "external collaborator"
// concerns spec.md excludes from the core compositor.
package manifest

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/Fepozopo/stitch/internal/blend"
	"github.com/Fepozopo/stitch/pkg/semver"
)

// SchemaMajor is the manifest schema major version this build understands.
// Manifests declaring a different major version are rejected outright;
// minor/patch differences are accepted (additive fields only).
const SchemaMajor = 1

// LayerEntry is one layer of the manifest's stack, in paint order (lower
// index paints first, per spec.md §3).
type LayerEntry struct {
	Image   string `json:"image"`
	Mask    string `json:"mask,omitempty"`
	OffsetX int    `json:"offset_x"`
	OffsetY int    `json:"offset_y"`
}

// Canvas is the manifest's declared output size.
type Canvas struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Document is a fully parsed manifest.
type Document struct {
	SchemaVersion string       `json:"schema_version"`
	Canvas        Canvas       `json:"canvas"`
	Layers        []LayerEntry `json:"layers"`
	FullKeypoints bool         `json:"full_keypoints,omitempty"`
}

// Load reads and validates a manifest file. Non-positive canvas dimensions
// or an empty layer list are reported as blend.ErrInvalidGeometry, matching
// the core's own error taxonomy (spec.md §7) since this check gates the
// same precondition the core would otherwise reject.
func Load(path string) (*Document, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	var doc Document
	if err := json.Unmarshal(raw, &doc); err != nil {
		return nil, fmt.Errorf("manifest: invalid JSON in %s: %w", path, err)
	}
	if doc.SchemaVersion == "" {
		doc.SchemaVersion = "1.0.0"
	}
	v, err := semver.Parse(doc.SchemaVersion)
	if err != nil {
		return nil, fmt.Errorf("manifest: %w", err)
	}
	if v.Major != SchemaMajor {
		return nil, fmt.Errorf("manifest: unsupported schema version %s (this build understands major version %d)", v, SchemaMajor)
	}
	if doc.Canvas.Width <= 0 || doc.Canvas.Height <= 0 || len(doc.Layers) == 0 {
		return nil, blend.ErrInvalidGeometry
	}
	return &doc, nil
}
