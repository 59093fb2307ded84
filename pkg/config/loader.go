package config

import (
	"errors"
	"os"
	"strings"
	"sync"

	"github.com/caarlos0/env/v11"
	"github.com/joho/godotenv"
)

// EnvFileVar names dotenv files, comma separated, that Load reads instead
// of ./.env.
const EnvFileVar = "ENV_FILE"

var dotenvOnce sync.Once

// LoadEnv reads dotenv files into the process environment. Variables that
// are already set win.
func LoadEnv(paths ...string) error {
	if err := godotenv.Load(paths...); err != nil {
		return errors.Join(ErrLoadingEnvFile, err)
	}
	return nil
}

// Load parses the environment into v according to its `env` tags.
//
// The first call reads the files listed in ENV_FILE, or ./.env when the
// variable is empty. A missing ./.env is ignored; a missing ENV_FILE entry
// is an error.
func Load[T any](v *T) error {
	if v == nil {
		return ErrNilPointer
	}

	var fileErr error
	dotenvOnce.Do(func() { fileErr = loadDotenv() })
	if fileErr != nil {
		return fileErr
	}

	if err := env.Parse(v); err != nil {
		return errors.Join(ErrParsingConfig, err)
	}
	return nil
}

func loadDotenv() error {
	raw := strings.TrimSpace(os.Getenv(EnvFileVar))
	if raw == "" {
		_ = godotenv.Load()
		return nil
	}
	var paths []string
	for p := range strings.SplitSeq(raw, ",") {
		if p = strings.TrimSpace(p); p != "" {
			paths = append(paths, p)
		}
	}
	return LoadEnv(paths...)
}
