package service

import (
	"github.com/mkarev/go-break-ledger/internal/config"
	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/internal/store"
	"github.com/mkarev/go-break-ledger/internal/validators"
)

// Services groups all server-side application services for injection into the
// transport layer.
type Services struct {
	LogService     LogService
	AppInfoService AppInfoService
}

// NewServices wires the server service layer: the break-log service wrapped
// with input validation, plus the build-info service.
func NewServices(storages *store.Storages, cfg *config.ServerConfig, log *logger.Logger) *Services {
	log.Info().Msg("creating new services...")

	logService := NewLogService(storages, log)
	validation := NewLogServiceValidationWrapper(validators.NewLogRecordValidator())

	return &Services{
		LogService:     validation.Wrap(logService),
		AppInfoService: NewAppInfoService(cfg.App),
	}
}
