// Package config loads application configuration from environment variables.
//
// It wraps `github.com/joho/godotenv` and `github.com/caarlos0/env/v11`:
// on first use the dotenv files named by ENV_FILE (or an optional ./.env)
// are read, then the environment is parsed into any struct with `env` tags.
//
// Each component owns its config struct, so a binary only parses the
// settings of the drivers it actually selected:
//
//	var mail email.Config
//	if err := config.Load(&mail); err != nil {
//		log.Fatalf("mail config: %v", err)
//	}
//
// Errors wrap ErrParsingConfig or ErrLoadingEnvFile.
package config
