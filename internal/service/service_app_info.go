package service

import (
	"context"

	"github.com/mkarev/go-break-ledger/internal/config"
)

type appInfoService struct {
	version string
}

// NewAppInfoService constructs an AppInfoService reporting the configured
// application version. An empty version is reported as "N/A".
func NewAppInfoService(cfg config.ServerApp) AppInfoService {
	version := cfg.Version
	if version == "" {
		version = "N/A"
	}

	return &appInfoService{version: version}
}

func (s *appInfoService) GetAppVersion(_ context.Context) string {
	return s.version
}
