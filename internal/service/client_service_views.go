package service

import (
	"context"
	"fmt"
	"sync"

	"github.com/mkarev/go-break-ledger/internal/adapter"
	"github.com/mkarev/go-break-ledger/internal/aggregate"
	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/models"
)

type clientViewsService struct {
	server          adapter.ServerAdapter
	session         ClientSessionService
	leaderboardSize int
	logger          *logger.Logger

	mu        sync.Mutex
	cached    models.DerivedViews
	haveCache bool
}

// NewClientViewsService constructs the views service. leaderboardSize caps
// both leaderboards; non-positive values fall back to the package default.
func NewClientViewsService(server adapter.ServerAdapter, session ClientSessionService, leaderboardSize int, log *logger.Logger) ClientViewsService {
	if leaderboardSize <= 0 {
		leaderboardSize = aggregate.DefaultTopN
	}

	return &clientViewsService{
		server:          server,
		session:         session,
		leaderboardSize: leaderboardSize,
		logger:          log,
	}
}

func (s *clientViewsService) Refresh(ctx context.Context) (models.DerivedViews, error) {
	logs, err := s.server.ListLogs(ctx)
	if err != nil {
		return models.DerivedViews{}, fmt.Errorf("views refresh error: %w", err)
	}

	views := aggregate.Derive(logs, s.session.Identity(), s.leaderboardSize)

	s.mu.Lock()
	s.cached = views
	s.haveCache = true
	s.mu.Unlock()

	return views, nil
}

func (s *clientViewsService) Cached() (models.DerivedViews, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.cached, s.haveCache
}

func (s *clientViewsService) ServerVersion(ctx context.Context) (string, error) {
	return s.server.Version(ctx)
}
