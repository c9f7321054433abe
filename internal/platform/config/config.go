package config

import (
	"fmt"
	"time"

	"github.com/joeshaw/envdecode"
)

// Config is the process configuration, loaded once at startup and immutable
// for the process lifetime.
//
// Local dev example:
//
//	TOKEN_SECRET=dev-secret STORAGE_BACKEND=memory PORT=8080
type Config struct {
	Port string `env:"PORT,default=8080"`

	// StorageBackend selects the repository implementations: "memory" or "postgres".
	StorageBackend string `env:"STORAGE_BACKEND,default=memory"`

	// DatabaseURL is required when StorageBackend is "postgres".
	DatabaseURL string `env:"DATABASE_URL"`

	// TokenSecret is the symmetric signing key for issued bearer tokens.
	TokenSecret string `env:"TOKEN_SECRET,required"`

	// TokenTTL bounds how long an issued token is accepted.
	TokenTTL time.Duration `env:"TOKEN_TTL,default=60m"`

	// CORSOrigins is the allowed-origin list, semicolon separated in the env.
	CORSOrigins []string `env:"CORS_ORIGINS,default=http://localhost:5173;http://127.0.0.1:5173"`
}

func Load() (Config, error) {
	var cfg Config
	if err := envdecode.Decode(&cfg); err != nil {
		return Config{}, fmt.Errorf("decode config from env: %w", err)
	}
	if cfg.StorageBackend == "postgres" && cfg.DatabaseURL == "" {
		return Config{}, fmt.Errorf("DATABASE_URL is required when STORAGE_BACKEND=postgres")
	}
	return cfg, nil
}
