package config

import (
	"fmt"
	"time"
)

// ClientAdapter holds network settings used by the client transport layer.
type ClientAdapter struct {
	// BaseURL is the log store endpoint used by the client.
	BaseURL string
	// RequestTimeout is the default timeout for outbound client requests.
	RequestTimeout time.Duration
}

// ClientStorage contains local state store settings for the client.
type ClientStorage struct {
	// DSN is the SQLite file path holding identity and rate state.
	DSN string
}

// ClientGeo contains geolocation and reverse-geocoding settings.
type ClientGeo struct {
	NominatimBaseURL        string
	LocateTimeout           time.Duration
	ObfuscationRadiusMeters float64
	FixedLat                *float64
	FixedLng                *float64
}

// ClientViews contains display-side aggregation limits.
type ClientViews struct {
	// DisplayLimit is the initial cap on the "recent breaks" list.
	DisplayLimit int
	// LeaderboardSize is the N of the top-N leaderboards.
	LeaderboardSize int
}

// ClientWorkers contains client background worker settings.
type ClientWorkers struct {
	// RefreshInterval defines how often the views refresh worker runs.
	RefreshInterval time.Duration
}

// ClientConfig is the top-level client configuration assembled from
// [StructuredConfig].
type ClientConfig struct {
	// Adapter contains client transport settings.
	Adapter ClientAdapter
	// Storage contains local state store settings.
	Storage ClientStorage
	// Geo contains geolocation settings.
	Geo ClientGeo
	// Views contains display limits.
	Views ClientViews
	// Workers contains background job settings.
	Workers ClientWorkers
}

// GetClientConfig builds and validates a client-specific config view from the
// merged structured configuration, applying client defaults for everything
// the user left unset.
func GetClientConfig() (*ClientConfig, error) {
	cfg, err := GetStructuredConfig()
	if err != nil {
		return nil, fmt.Errorf("error get structured config: %w", err)
	}

	clientCfg := &ClientConfig{
		Adapter: ClientAdapter{
			BaseURL:        cfg.Adapter.BaseURL,
			RequestTimeout: cfg.Adapter.RequestTimeout,
		},
		Storage: ClientStorage{
			DSN: cfg.Storage.Local.DSN,
		},
		Geo: ClientGeo{
			NominatimBaseURL:        cfg.Geo.NominatimBaseURL,
			LocateTimeout:           cfg.Geo.LocateTimeout,
			ObfuscationRadiusMeters: cfg.Geo.ObfuscationRadiusMeters,
			FixedLat:                cfg.Geo.FixedLat,
			FixedLng:                cfg.Geo.FixedLng,
		},
		Views: ClientViews{
			DisplayLimit:    cfg.Views.DisplayLimit,
			LeaderboardSize: cfg.Views.LeaderboardSize,
		},
		Workers: ClientWorkers{RefreshInterval: cfg.Workers.RefreshInterval},
	}
	clientCfg.applyDefaults()

	return clientCfg, clientCfg.validate()
}

func (cfg *ClientConfig) applyDefaults() {
	if cfg.Adapter.BaseURL == "" {
		cfg.Adapter.BaseURL = "http://localhost:8080"
	}
	if cfg.Adapter.RequestTimeout <= 0 {
		cfg.Adapter.RequestTimeout = 15 * time.Second
	}
	if cfg.Storage.DSN == "" {
		cfg.Storage.DSN = "break-ledger.db"
	}
	if cfg.Geo.NominatimBaseURL == "" {
		cfg.Geo.NominatimBaseURL = "https://nominatim.openstreetmap.org"
	}
	if cfg.Geo.LocateTimeout <= 0 {
		cfg.Geo.LocateTimeout = 10 * time.Second
	}
	if cfg.Geo.ObfuscationRadiusMeters <= 0 {
		cfg.Geo.ObfuscationRadiusMeters = 500
	}
	if cfg.Views.DisplayLimit <= 0 {
		cfg.Views.DisplayLimit = 5
	}
	if cfg.Views.LeaderboardSize <= 0 {
		cfg.Views.LeaderboardSize = 10
	}
	if cfg.Workers.RefreshInterval <= 0 {
		cfg.Workers.RefreshInterval = time.Minute
	}
}
