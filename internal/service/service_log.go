package service

import (
	"context"
	"fmt"
	"time"

	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/internal/store"
	"github.com/mkarev/go-break-ledger/models"
)

type logService struct {
	logs     store.BreakLogRepository
	profiles store.ProfileRepository
	logger   *logger.Logger
	now      func() time.Time
}

// NewLogService constructs the break-log application service over the server
// repositories.
func NewLogService(storages *store.Storages, log *logger.Logger) LogService {
	return &logService{
		logs:     storages.BreakLogRepository,
		profiles: storages.ProfileRepository,
		logger:   log,
		now:      time.Now,
	}
}

func (s *logService) SubmitLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error) {
	if record.Timestamp == 0 {
		record.Timestamp = s.now().UnixMilli()
	}

	saved, err := s.logs.SaveLog(ctx, record)
	if err != nil {
		return models.LogRecord{}, fmt.Errorf("log submission error: %w", err)
	}

	s.logger.Info().
		Str("username", saved.Username).
		Int64("duration", saved.Duration).
		Str("city", saved.City).
		Msg("break record stored")

	return saved, nil
}

func (s *logService) ListLogs(ctx context.Context, filter store.LogFilter) ([]models.LogRecord, error) {
	logs, err := s.logs.GetLogs(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("log listing error: %w", err)
	}

	return logs, nil
}

func (s *logService) SaveProfile(ctx context.Context, profile models.Profile) error {
	if err := s.profiles.SaveProfile(ctx, profile); err != nil {
		return fmt.Errorf("profile save error: %w", err)
	}

	return nil
}

func (s *logService) GetProfile(ctx context.Context, token string) (models.Profile, error) {
	profile, err := s.profiles.GetProfile(ctx, token)
	if err != nil {
		return models.Profile{}, fmt.Errorf("profile lookup error: %w", err)
	}

	return profile, nil
}
