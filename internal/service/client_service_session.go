package service

import (
	"context"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/mkarev/go-break-ledger/internal/adapter"
	"github.com/mkarev/go-break-ledger/internal/aggregate"
	"github.com/mkarev/go-break-ledger/internal/config"
	"github.com/mkarev/go-break-ledger/internal/geo"
	"github.com/mkarev/go-break-ledger/internal/identity"
	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/internal/timer"
	"github.com/mkarev/go-break-ledger/models"
)

// hoursPerWorkYear converts an annual salary to an hourly rate
// (40 h/week * 52 weeks).
const hoursPerWorkYear = 2080

type clientSessionService struct {
	identities *identity.Store
	server     adapter.ServerAdapter
	locator    geo.Locator
	geocoder   geo.Geocoder
	geoCfg     config.ClientGeo
	logger     *logger.Logger
	now        func() time.Time

	mu       sync.Mutex
	state    SessionState
	identity models.Identity
	timer    *timer.Timer

	// pendingDuration/pendingStoppedAt describe the stopped break waiting
	// for a location choice. Valid only in StateAwaitingLocation and
	// StateSubmitting.
	pendingDuration  int64
	pendingStoppedAt int64
}

// NewClientSessionService wires the session service over the local identity
// store, the server adapter and the geolocation helpers.
func NewClientSessionService(
	identities *identity.Store,
	server adapter.ServerAdapter,
	locator geo.Locator,
	geoCfg config.ClientGeo,
	log *logger.Logger,
) ClientSessionService {
	return &clientSessionService{
		identities: identities,
		server:     server,
		locator:    locator,
		geocoder:   geo.NewNominatimGeocoder(geoCfg, log),
		geoCfg:     geoCfg,
		logger:     log,
		now:        time.Now,
		state:      StateNoIdentity,
		timer:      timer.New(timer.SystemClock()),
	}
}

func (s *clientSessionService) Bootstrap(ctx context.Context) models.Identity {
	id := s.identities.GetOrCreate(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = id
	if id.IsZero() {
		s.state = StateNoIdentity
	} else {
		s.state = StateIdle
	}

	return id
}

func (s *clientSessionService) State() SessionState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.state
}

func (s *clientSessionService) Identity() models.Identity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.identity
}

func (s *clientSessionService) GenerateIdentity(ctx context.Context) models.Identity {
	id := s.identities.Generate(ctx)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = id
	s.state = StateIdle

	return id
}

func (s *clientSessionService) Recover(ctx context.Context, token string) (models.Identity, error) {
	logs, err := s.server.ListLogs(ctx)
	if err != nil {
		return models.Identity{}, fmt.Errorf("recovery fetch error: %w", err)
	}

	id, err := aggregate.Resolve(token, logs)
	if err != nil {
		return models.Identity{}, err
	}

	s.identities.Save(ctx, id)
	s.restoreRate(ctx, id)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.identity = id
	s.state = StateIdle

	return id, nil
}

// restoreRate pulls the server profile mirror for a recovered identity so the
// new device starts with the previously configured rate. Best effort: a
// missing or unreachable profile leaves the local rate state untouched.
func (s *clientSessionService) restoreRate(ctx context.Context, id models.Identity) {
	profile, err := s.server.GetProfile(ctx, id.Token)
	if err != nil {
		s.logger.Warn().Err(err).Msg("rate restore skipped, profile unavailable")
		return
	}

	if err := s.identities.SaveRate(ctx, id, profile.Rate); err != nil {
		s.logger.Warn().Err(err).Msg("rate restore skipped, invalid profile rate")
	}
}

func (s *clientSessionService) Logout(ctx context.Context) {
	s.mu.Lock()
	username := s.identity.Username
	s.identity = models.Identity{}
	s.state = StateNoIdentity
	s.pendingDuration = 0
	s.pendingStoppedAt = 0
	s.timer = timer.New(timer.SystemClock())
	s.mu.Unlock()

	s.identities.ClearRate(ctx, username)
	s.identities.Clear(ctx)
}

func (s *clientSessionService) Rate(ctx context.Context) (float64, bool) {
	return s.identities.Rate(ctx, s.Identity())
}

func (s *clientSessionService) SaveHourlyRate(ctx context.Context, rate float64) error {
	id := s.Identity()
	if id.IsZero() {
		return ErrNoIdentity
	}

	if err := s.identities.SaveRate(ctx, id, rate); err != nil {
		return err
	}

	s.pushProfile(ctx, id, rate)

	return nil
}

func (s *clientSessionService) SaveAnnualRate(ctx context.Context, salary float64) (float64, error) {
	if !models.ValidRate(salary) {
		return 0, identity.ErrInvalidRate
	}

	hourly := salary / hoursPerWorkYear
	if err := s.SaveHourlyRate(ctx, hourly); err != nil {
		return 0, err
	}

	return hourly, nil
}

// pushProfile mirrors the rate to the server so recovery on another device
// can restore it. Best effort: the local save already succeeded.
func (s *clientSessionService) pushProfile(ctx context.Context, id models.Identity, rate float64) {
	profile := models.Profile{Token: id.Token, Username: id.Username, Rate: rate}
	if err := s.server.SaveProfile(ctx, profile); err != nil {
		s.logger.Warn().Err(err).Msg("profile mirror push failed")
	}
}

func (s *clientSessionService) StartBreak(ctx context.Context) error {
	id := s.Identity()
	if id.IsZero() {
		return ErrNoIdentity
	}
	if _, ok := s.identities.Rate(ctx, id); !ok {
		return ErrNoRateSet
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if s.state == StateAwaitingLocation || s.state == StateSubmitting {
		return ErrSubmitInFlight
	}
	if err := s.timer.Start(); err != nil {
		return err
	}
	s.state = StateRunning

	return nil
}

func (s *clientSessionService) Elapsed() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.timer.Elapsed()
}

func (s *clientSessionService) StopBreak() (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	elapsed, err := s.timer.Stop()
	if err != nil {
		return 0, err
	}

	s.pendingDuration = elapsed
	s.pendingStoppedAt = s.now().UnixMilli()
	s.state = StateAwaitingLocation

	return elapsed, nil
}

func (s *clientSessionService) SubmitWithAutoLocation(ctx context.Context) (models.LogRecord, error) {
	record, err := s.beginSubmit(ctx)
	if err != nil {
		return models.LogRecord{}, err
	}

	locateCtx, cancel := context.WithTimeout(ctx, s.geoCfg.LocateTimeout)
	defer cancel()

	pos, err := s.locator.CurrentPosition(locateCtx)
	if err != nil {
		s.abortSubmit()
		return models.LogRecord{}, fmt.Errorf("position acquisition error: %w", err)
	}

	lat, lng := geo.Obfuscate(pos.Lat, pos.Lng, s.geoCfg.ObfuscationRadiusMeters)
	record.Lat = &lat
	record.Lng = &lng
	record.LocationMethod = models.LocationAutoObfuscated

	// City lookup is decoration: a failed lookup never blocks the submit.
	// It shares the locate deadline so a slow Nominatim cannot stall the flow.
	city, _ := s.geocoder.ReverseGeocode(locateCtx, lat, lng)
	record.City = city

	return s.finishSubmit(ctx, record)
}

func (s *clientSessionService) SubmitWithManualCity(ctx context.Context, city string) (models.LogRecord, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return models.LogRecord{}, ErrMissingCity
	}

	record, err := s.beginSubmit(ctx)
	if err != nil {
		return models.LogRecord{}, err
	}

	record.City = city
	record.LocationMethod = models.LocationManual

	return s.finishSubmit(ctx, record)
}

func (s *clientSessionService) SubmitWithoutLocation(ctx context.Context) (models.LogRecord, error) {
	record, err := s.beginSubmit(ctx)
	if err != nil {
		return models.LogRecord{}, err
	}

	record.LocationMethod = models.LocationSkipped

	return s.finishSubmit(ctx, record)
}

// beginSubmit transitions AwaitingLocation -> Submitting and builds the
// location-free base record for the pending break.
func (s *clientSessionService) beginSubmit(ctx context.Context) (models.LogRecord, error) {
	id := s.Identity()
	if id.IsZero() {
		return models.LogRecord{}, ErrNoIdentity
	}

	rate, ok := s.identities.Rate(ctx, id)
	if !ok {
		return models.LogRecord{}, ErrNoRateSet
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	switch s.state {
	case StateSubmitting:
		return models.LogRecord{}, ErrSubmitInFlight
	case StateAwaitingLocation:
		// proceed
	default:
		return models.LogRecord{}, ErrNotAwaitingLocation
	}

	s.state = StateSubmitting

	return models.LogRecord{
		Username:    id.Username,
		Token:       id.Token,
		Duration:    s.pendingDuration,
		Earnings:    models.RoundEarnings(rate, s.pendingDuration),
		CurrentRate: rate,
		Timestamp:   s.pendingStoppedAt,
	}, nil
}

// abortSubmit returns to AwaitingLocation with the pending break intact so
// the user can retry or pick another location method.
func (s *clientSessionService) abortSubmit() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.state = StateAwaitingLocation
}

func (s *clientSessionService) finishSubmit(ctx context.Context, record models.LogRecord) (models.LogRecord, error) {
	stored, err := s.server.SubmitLog(ctx, record)
	if err != nil {
		s.abortSubmit()
		return models.LogRecord{}, fmt.Errorf("log submission error: %w", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.timer.Reset(); err != nil {
		s.logger.Warn().Err(err).Msg("timer reset after submit failed")
	}
	s.pendingDuration = 0
	s.pendingStoppedAt = 0
	s.state = StateIdle

	s.logger.Info().
		Int64("duration", stored.Duration).
		Str("city", stored.City).
		Msg("break submitted")

	return stored, nil
}
