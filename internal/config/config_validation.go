package config

// validate checks that the final merged [StructuredConfig] satisfies all
// application invariants before it is used at startup.
//
// The structured config itself stays permissive: a single merged config
// feeds both the server and the client, and each side only needs its own
// groups. The per-role views ([ServerConfig], [ClientConfig]) enforce the
// actual requirements.
func (cfg *StructuredConfig) validate() error {
	if (cfg.Geo.FixedLat == nil) != (cfg.Geo.FixedLng == nil) {
		return ErrInvalidGeoConfigs
	}

	if cfg.Views.DisplayLimit < 0 || cfg.Views.LeaderboardSize < 0 {
		return ErrInvalidViewConfigs
	}

	return nil
}

func (cfg *ServerConfig) validate() error {
	if cfg.Server.HTTPAddress == "" {
		return ErrInvalidServerConfigs
	}

	if cfg.Storage.DB.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	return nil
}

func (cfg *ClientConfig) validate() error {
	if cfg.Storage.DSN == "" {
		return ErrInvalidStorageConfigs
	}

	if cfg.Adapter.BaseURL == "" {
		return ErrInvalidAdapterConfigs
	}

	return nil
}
