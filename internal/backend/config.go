package backend

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/pkg/errors"
)

// DefaultBackend is the backend configuration used when none is given.
// "go" selects gomlx's pure Go backend, which needs no native libraries.
const DefaultBackend = "go"

// EnvBackend is the environment variable read by ConfigFromEnv.
const EnvBackend = "GRAPHKIT_BACKEND"

// Config selects the execution backend of a Runtime.
type Config struct {
	// Backend is a gomlx backend configuration string, e.g. "go" or "xla:cpu".
	Backend string
}

// DefaultConfig returns a Config using DefaultBackend.
func DefaultConfig() Config {
	return Config{Backend: DefaultBackend}
}

// ConfigFromEnv returns DefaultConfig overridden by GRAPHKIT_BACKEND.
//
// Files listed in envFiles (or ".env" when none are given) are loaded first;
// missing files are ignored and variables already set in the process win.
// A file that exists but cannot be parsed is an error.
func ConfigFromEnv(envFiles ...string) (Config, error) {
	if len(envFiles) == 0 {
		envFiles = []string{".env"}
	}
	for _, file := range envFiles {
		if _, err := os.Stat(file); err != nil {
			continue
		}
		if err := godotenv.Load(file); err != nil {
			return Config{}, errors.Wrapf(err, "failed to load %s", file)
		}
	}

	cfg := DefaultConfig()
	if name := strings.TrimSpace(os.Getenv(EnvBackend)); name != "" {
		cfg.Backend = name
	}
	return cfg, nil
}
