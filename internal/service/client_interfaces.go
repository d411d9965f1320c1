package service

import (
	"context"

	"github.com/mkarev/go-break-ledger/models"
)

// SessionState is the client session's position in its lifecycle.
type SessionState int

const (
	// StateNoIdentity means no identity exists on this device yet.
	StateNoIdentity SessionState = iota

	// StateIdle means an identity is present and no break is running.
	StateIdle

	// StateRunning means the break timer is ticking.
	StateRunning

	// StateAwaitingLocation means a break has been stopped and its record is
	// waiting for a location choice before submission.
	StateAwaitingLocation

	// StateSubmitting means a submission is in flight. No second submission
	// may start until it settles.
	StateSubmitting
)

// ClientSessionService owns the client-side session: identity lifecycle, pay
// rate, the break timer, and the submit flow. All state transitions are
// serialised internally; methods are safe for concurrent use.
type ClientSessionService interface {
	// Bootstrap loads any persisted identity and returns it. A zero identity
	// means first run; the session starts in [StateNoIdentity].
	Bootstrap(ctx context.Context) models.Identity

	// State returns the current session state.
	State() SessionState

	// Identity returns the active identity, zero when none.
	Identity() models.Identity

	// GenerateIdentity creates, persists and activates a fresh identity.
	GenerateIdentity(ctx context.Context) models.Identity

	// Recover re-associates this device with prior logs by recovery token.
	// Returns [aggregate.ErrTokenNotFound] via the resolver when the token
	// matches nothing.
	Recover(ctx context.Context, token string) (models.Identity, error)

	// Logout forgets the active identity on this device. The token-keyed
	// rate envelope is kept so a later recovery restores the rate.
	Logout(ctx context.Context)

	// Rate returns the active hourly rate, false when none is set.
	Rate(ctx context.Context) (float64, bool)

	// SaveHourlyRate stores the hourly rate locally and mirrors it to the
	// server profile on a best-effort basis.
	SaveHourlyRate(ctx context.Context, rate float64) error

	// SaveAnnualRate converts an annual salary to an hourly rate and stores
	// it like [SaveHourlyRate]. Returns the derived hourly rate.
	SaveAnnualRate(ctx context.Context, salary float64) (float64, error)

	// StartBreak starts the timer. Requires an identity and a configured
	// rate.
	StartBreak(ctx context.Context) error

	// Elapsed returns the running or stopped break length in whole seconds.
	Elapsed() int64

	// StopBreak stops the timer and moves to [StateAwaitingLocation].
	// Returns the elapsed seconds of the stopped break.
	StopBreak() (int64, error)

	// SubmitWithAutoLocation acquires the device position, obfuscates it,
	// reverse-geocodes a city and submits the pending break. On a position
	// failure the pending break is kept so the caller can fall back to
	// manual entry.
	SubmitWithAutoLocation(ctx context.Context) (models.LogRecord, error)

	// SubmitWithManualCity submits the pending break with a typed city and
	// no coordinates.
	SubmitWithManualCity(ctx context.Context, city string) (models.LogRecord, error)

	// SubmitWithoutLocation submits the pending break with no location.
	SubmitWithoutLocation(ctx context.Context) (models.LogRecord, error)
}

// ClientViewsService fetches the shared log snapshot and derives the display
// views from it.
type ClientViewsService interface {
	// Refresh fetches a fresh snapshot, derives the views and caches them.
	Refresh(ctx context.Context) (models.DerivedViews, error)

	// Cached returns the last successfully derived views, false when no
	// refresh has succeeded yet.
	Cached() (models.DerivedViews, bool)

	// ServerVersion reports the server build version.
	ServerVersion(ctx context.Context) (string, error)
}

// ClientRefreshJob periodically refreshes the derived views in the
// background. It implements [workers.Worker].
type ClientRefreshJob interface {
	Run()
	Stop()
}
