package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/Fepozopo/stitch/internal/blend"
)

func TestLoadDotEnvParsesQuotesAndComments(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, ".env")
	body := "# a comment\nexport STITCH_SOLVER_TOLERANCE=\"1e-6\"\nSTITCH_MAX_ITERATIONS='500'\n"
	if err := os.WriteFile(path, []byte(body), 0o644); err != nil {
		t.Fatalf("write .env: %v", err)
	}
	os.Unsetenv(envTolerance)
	os.Unsetenv(envMaxIterations)
	if err := loadDotEnv(path); err != nil {
		t.Fatalf("loadDotEnv: %v", err)
	}
	if v := os.Getenv(envTolerance); v != "1e-6" {
		t.Fatalf("expected unquoted tolerance 1e-6, got %q", v)
	}
	if v := os.Getenv(envMaxIterations); v != "500" {
		t.Fatalf("expected unquoted max iterations 500, got %q", v)
	}
}

func TestLoadConfigFallsBackToDefaults(t *testing.T) {
	os.Unsetenv(envTolerance)
	os.Unsetenv(envMaxIterations)
	os.Unsetenv(envFullKeypoints)

	cfg := LoadConfig()
	if cfg.Tolerance != blend.DefaultTolerance {
		t.Fatalf("expected default tolerance %g, got %g", blend.DefaultTolerance, cfg.Tolerance)
	}
	if cfg.MaxIterations != blend.DefaultMaxIterations {
		t.Fatalf("expected default max iterations %d, got %d", blend.DefaultMaxIterations, cfg.MaxIterations)
	}
	if cfg.FullKeypoints {
		t.Fatalf("expected FullKeypoints to default false")
	}
}

func TestLoadConfigReadsEnvOverrides(t *testing.T) {
	t.Setenv(envTolerance, "1e-4")
	t.Setenv(envMaxIterations, "10")
	t.Setenv(envFullKeypoints, "true")

	cfg := LoadConfig()
	if cfg.Tolerance != 1e-4 {
		t.Fatalf("expected tolerance 1e-4, got %g", cfg.Tolerance)
	}
	if cfg.MaxIterations != 10 {
		t.Fatalf("expected max iterations 10, got %d", cfg.MaxIterations)
	}
	if !cfg.FullKeypoints {
		t.Fatalf("expected FullKeypoints true")
	}
}
