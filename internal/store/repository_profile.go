package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/models"
)

// profileRepository is the PostgreSQL-backed implementation of
// [ProfileRepository] over the "profiles" table.
type profileRepository struct {
	*DB
	logger *logger.Logger
}

func NewProfileRepository(db *DB, logger *logger.Logger) ProfileRepository {
	return &profileRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveProfile upserts the token-keyed profile row.
func (p *profileRepository) SaveProfile(ctx context.Context, profile models.Profile) error {
	log := logger.FromContext(ctx)

	_, err := p.DB.ExecContext(ctx, saveProfile, profile.Token, profile.Username, profile.Rate)
	if err != nil {
		log.Err(err).
			Str("func", "profileRepository.SaveProfile").
			Str("username", profile.Username).
			Msg("failed to upsert profile")
		return fmt.Errorf("%w: %w", ErrExecutingStatement, err)
	}

	return nil
}

// GetProfile returns the profile stored for the token, or
// [ErrProfileNotFound] if the token has never saved one.
func (p *profileRepository) GetProfile(ctx context.Context, token string) (models.Profile, error) {
	log := logger.FromContext(ctx)

	var profile models.Profile
	err := p.DB.QueryRowContext(ctx, getProfileByToken, token).
		Scan(&profile.Token, &profile.Username, &profile.Rate)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.Profile{}, ErrProfileNotFound
		}
		log.Err(err).
			Str("func", "profileRepository.GetProfile").
			Msg("failed to query profile")
		return models.Profile{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	return profile, nil
}
