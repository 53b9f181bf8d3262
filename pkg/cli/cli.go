// Package cli implements the stitch command-line entry point: another
// "external collaborator" spec.md deliberately keeps out of the core
// compositor. It dispatches subcommands, wires the manifest/imageio loaders
// into the blend pipeline, and writes the resulting PNGs to disk.
package cli

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/Fepozopo/stitch/internal/blend"
	"github.com/Fepozopo/stitch/internal/layer"
	"github.com/Fepozopo/stitch/pkg/imageio"
	"github.com/Fepozopo/stitch/pkg/manifest"
	"github.com/Fepozopo/stitch/pkg/update"
)

func usage() {
	fmt.Println("stitch - seamless gradient-domain image compositor")
	fmt.Println()
	fmt.Println("Commands available:")
	fmt.Println("  blend <manifest.json> <outdir> [--full-keypoints] [--debug]")
	fmt.Println("      blend the layer stack described by manifest.json and write outdir/output.png")
	fmt.Println("  version")
	fmt.Println("      print the build version")
	fmt.Println("  update")
	fmt.Println("      check GitHub releases for a newer build and self-update")
}

// Run dispatches args[0] as a subcommand. Run is the entry point cmd/stitch
// calls directly; it never calls os.Exit itself, so callers keep control of
// the process exit code, except that a successful "update" restarts or
// exits the process from update.Check.
func Run(args []string) error {
	if len(args) == 0 {
		usage()
		return fmt.Errorf("cli: no command given")
	}

	switch args[0] {
	case "blend":
		return runBlend(args[1:])
	case "version":
		update.PrintVersion()
		return nil
	case "update":
		return update.Check()
	case "help", "-h", "--help":
		usage()
		return nil
	default:
		usage()
		return fmt.Errorf("cli: unknown command %q", args[0])
	}
}

func runBlend(args []string) error {
	fs := flag.NewFlagSet("blend", flag.ContinueOnError)
	fullKeypoints := fs.Bool("full-keypoints", false, "use the dense per-pixel reference lattice instead of the quadtree")
	debug := fs.Bool("debug", false, "also write mixed.png, delta.png and quadtree.png to outdir")
	tolerance := fs.Float64("tolerance", 0, "override the CG solver tolerance (0 = use env/default)")
	maxIterations := fs.Int("max-iterations", 0, "override the CG iteration cap (0 = use env/default)")
	if err := fs.Parse(args); err != nil {
		return err
	}
	rest := fs.Args()
	if len(rest) < 2 {
		return fmt.Errorf("cli: usage: stitch blend <manifest.json> <outdir> [--full-keypoints] [--debug]")
	}
	manifestPath, outDir := rest[0], rest[1]
	if err := fs.Parse(rest[2:]); err != nil {
		return err
	}

	cfg := LoadConfig()
	if *fullKeypoints {
		cfg.FullKeypoints = true
	}
	if *tolerance != 0 {
		cfg.Tolerance = *tolerance
	}
	if *maxIterations != 0 {
		cfg.MaxIterations = *maxIterations
	}

	doc, err := manifest.Load(manifestPath)
	if err != nil {
		return err
	}
	if doc.FullKeypoints {
		cfg.FullKeypoints = true
	}

	layers := make([]*layer.Layer, 0, len(doc.Layers))
	for i, entry := range doc.Layers {
		l, err := imageio.LoadLayer(entry)
		if err != nil {
			return fmt.Errorf("cli: layer %d: %w", i, err)
		}
		layers = append(layers, l)
	}

	fmt.Printf("stitch: blending %d layers onto a %dx%d canvas (full_keypoints=%v)\n",
		len(layers), doc.Canvas.Width, doc.Canvas.Height, cfg.FullKeypoints)

	result, err := blend.Run(layers, doc.Canvas.Width, doc.Canvas.Height, blend.Options{
		FullKeypoints: cfg.FullKeypoints,
		Tolerance:     cfg.Tolerance,
		MaxIterations: cfg.MaxIterations,
	})
	if err != nil {
		return fmt.Errorf("cli: blend failed: %w", err)
	}

	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("cli: %w", err)
	}
	if err := imageio.SaveRaster(filepath.Join(outDir, "output.png"), result.Output); err != nil {
		return err
	}
	fmt.Printf("stitch: wrote %s (%d keypoints)\n", filepath.Join(outDir, "output.png"), result.Keypoints)

	if *debug {
		if err := imageio.SaveRaster(filepath.Join(outDir, "mixed.png"), result.Mixed); err != nil {
			return err
		}
		if err := imageio.SaveRaster(filepath.Join(outDir, "delta.png"), result.Delta); err != nil {
			return err
		}
		if result.Quad != nil {
			quad := blend.QuadtreeRaster(result.Quad, doc.Canvas.Width, doc.Canvas.Height)
			if err := imageio.SaveRaster(filepath.Join(outDir, "quadtree.png"), quad); err != nil {
				return err
			}
		}
		fmt.Printf("stitch: wrote debug rasters to %s\n", outDir)
	}
	return nil
}
