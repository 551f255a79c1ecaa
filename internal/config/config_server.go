package config

import (
	"fmt"
	"time"
)

// ServerAuth holds token signing settings for the remote server.
type ServerAuth struct {
	TokenSignKey  string
	TokenIssuer   string
	TokenDuration time.Duration
}

// ServerDB contains database connection settings for the remote server.
type ServerDB struct {
	DSN string
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	Auth   ServerAuth
	DB     ServerDB
	Server Server
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		Auth: ServerAuth{
			TokenSignKey:  cfg.Auth.TokenSignKey,
			TokenIssuer:   cfg.Auth.TokenIssuer,
			TokenDuration: cfg.Auth.TokenDuration,
		},
		DB: ServerDB{
			DSN: cfg.Storage.DB.DSN,
		},
		Server: cfg.Server,
	}

	return serverCfg, serverCfg.validate()
}
