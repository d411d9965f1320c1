package config

import (
	"fmt"
	"time"
)

// ServerApp holds server-side application settings.
type ServerApp struct {
	// Version is exposed via GET /api/version.
	Version string
}

// ServerStorage groups server storage backend settings.
type ServerStorage struct {
	// DB holds the PostgreSQL log store settings.
	DB DB
}

// ServerConfig is the top-level server configuration assembled from
// [StructuredConfig].
type ServerConfig struct {
	// App contains application-level server settings.
	App ServerApp
	// Server contains listen address and timeouts.
	Server Server
	// Storage contains the log store settings.
	Storage ServerStorage
}

// GetServerConfig builds and validates a server-specific config view from the
// merged structured configuration.
func GetServerConfig() (*ServerConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	serverCfg := &ServerConfig{
		App: ServerApp{
			Version: cfg.App.Version,
		},
		Server: Server{
			HTTPAddress:    cfg.Server.HTTPAddress,
			RequestTimeout: cfg.Server.RequestTimeout,
		},
		Storage: ServerStorage{
			DB: DB{
				DSN: cfg.Storage.DB.DSN,
			},
		},
	}

	if serverCfg.Server.HTTPAddress == "" {
		serverCfg.Server.HTTPAddress = "localhost:8080"
	}
	if serverCfg.Server.RequestTimeout <= 0 {
		serverCfg.Server.RequestTimeout = 30 * time.Second
	}
	if serverCfg.App.Version == "" {
		serverCfg.App.Version = "N/A"
	}

	return serverCfg, serverCfg.validate()
}
