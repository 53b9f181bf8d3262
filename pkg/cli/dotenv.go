package cli

import (
	"os"
	"strconv"
	"strings"

	"github.com/joho/godotenv"

	"github.com/Fepozopo/stitch/internal/blend"
)

// Config is the solver/debug configuration resolved from flags, environment
// variables and defaults, in that precedence order (flags are applied by the
// caller after LoadConfig returns, since they are parsed per-subcommand).
type Config struct {
	Tolerance     float64
	MaxIterations int
	FullKeypoints bool
}

// Environment variable names read by LoadConfig.
const (
	envTolerance     = "STITCH_SOLVER_TOLERANCE"
	envMaxIterations = "STITCH_MAX_ITERATIONS"
	envFullKeypoints = "STITCH_FULL_KEYPOINTS"
)

// LoadConfig seeds the process environment from a .env file, preferring
// github.com/joho/godotenv and falling back to loadDotEnv (this package's own
// parser) if godotenv can't find one, then reads the STITCH_* variables into
// a Config, defaulting to the blend package's solver defaults.
func LoadConfig() Config {
	if err := godotenv.Load(); err != nil {
		_ = loadDotEnv(".env")
	}

	cfg := Config{
		Tolerance:     blend.DefaultTolerance,
		MaxIterations: blend.DefaultMaxIterations,
	}
	if v := os.Getenv(envTolerance); v != "" {
		if f, err := strconv.ParseFloat(v, 64); err == nil {
			cfg.Tolerance = f
		}
	}
	if v := os.Getenv(envMaxIterations); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			cfg.MaxIterations = n
		}
	}
	if v := os.Getenv(envFullKeypoints); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			cfg.FullKeypoints = b
		}
	}
	return cfg
}

// loadDotEnv parses a simple .env file and sets environment variables.
// Supports comments (#), optional "export " prefix, and quoted values.
// It exists as a fallback for when godotenv.Load can't locate a .env file
// relative to the working directory, e.g. under some test runners.
func loadDotEnv(path string) error {
	b, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	for _, raw := range strings.Split(string(b), "\n") {
		line := strings.TrimSpace(raw)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if strings.HasPrefix(line, "export ") {
			line = strings.TrimSpace(strings.TrimPrefix(line, "export "))
		}
		parts := strings.SplitN(line, "=", 2)
		if len(parts) != 2 {
			continue
		}
		key := strings.TrimSpace(parts[0])
		val := strings.TrimSpace(parts[1])
		if len(val) >= 2 {
			if (val[0] == '"' && val[len(val)-1] == '"') || (val[0] == '\'' && val[len(val)-1] == '\'') {
				val = val[1 : len(val)-1]
			}
		}
		val = strings.ReplaceAll(val, `\n`, "\n")
		os.Setenv(key, val)
	}
	return nil
}
