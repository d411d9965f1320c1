package geo

import (
	"context"
	"errors"

	"github.com/mkarev/go-break-ledger/internal/config"
)

// ErrPositionUnavailable is returned by a Locator when no position can be
// acquired (no location source, permission denied, timeout). Callers degrade
// to manual city entry.
var ErrPositionUnavailable = errors.New("position unavailable")

// Position is a raw (not yet obfuscated) coordinate pair.
type Position struct {
	Lat float64
	Lng float64
}

//go:generate mockgen -source=locator.go -destination=../mock/geo_mock.go -package=mock

// Locator acquires the current position. It is the terminal stand-in for the
// browser geolocation API; acquisition must honour ctx for timeouts.
type Locator interface {
	CurrentPosition(ctx context.Context) (Position, error)
}

type fixedLocator struct {
	position Position
}

// NewFixedLocator returns a Locator that always reports the given position.
// Used when the config pins coordinates on machines without a location
// service.
func NewFixedLocator(lat, lng float64) Locator {
	return &fixedLocator{position: Position{Lat: lat, Lng: lng}}
}

func (f *fixedLocator) CurrentPosition(ctx context.Context) (Position, error) {
	if err := ctx.Err(); err != nil {
		return Position{}, err
	}
	return f.position, nil
}

type unavailableLocator struct{}

// NewUnavailableLocator returns a Locator that always fails with
// [ErrPositionUnavailable]. Used when no position source is configured.
func NewUnavailableLocator() Locator {
	return unavailableLocator{}
}

func (unavailableLocator) CurrentPosition(context.Context) (Position, error) {
	return Position{}, ErrPositionUnavailable
}

// NewLocatorFromConfig picks the locator implied by the geo configuration:
// fixed coordinates when both are pinned, otherwise unavailable.
func NewLocatorFromConfig(cfg config.ClientGeo) Locator {
	if cfg.FixedLat != nil && cfg.FixedLng != nil {
		return NewFixedLocator(*cfg.FixedLat, *cfg.FixedLng)
	}
	return NewUnavailableLocator()
}
