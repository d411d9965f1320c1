package store

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/models"
)

func newTestProfileRepo(t *testing.T) (*profileRepository, sqlmock.Sqlmock, *sql.DB) {
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	l := logger.NewLogger("test")
	repo := &profileRepository{
		DB:     &DB{DB: db, logger: l},
		logger: l,
	}
	return repo, mock, db
}

func TestSaveProfile_Success(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	ctx := context.Background()
	profile := models.Profile{
		Token:    "3e2cf7ab-7f11-4c24-8a7c-111111111111",
		Username: "SirFlushalot-a1b2",
		Rate:     15.0,
	}

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(profile.Token, profile.Username, profile.Rate).
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.SaveProfile(ctx, profile); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestSaveProfile_DBError(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectExec("INSERT INTO profiles").
		WithArgs(sqlmock.AnyArg(), sqlmock.AnyArg(), sqlmock.AnyArg()).
		WillReturnError(errors.New("db network error"))

	err := repo.SaveProfile(ctx, models.Profile{Token: "t", Username: "u"})
	if !errors.Is(err, ErrExecutingStatement) {
		t.Fatalf("expected ErrExecutingStatement, got %v", err)
	}
}

func TestGetProfile_Success(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	ctx := context.Background()

	rows := sqlmock.
		NewRows([]string{"token", "username", "rate"}).
		AddRow("token-a", "SirFlushalot-a1b2", 15.0)

	mock.ExpectQuery("SELECT token, username, rate").
		WithArgs("token-a").
		WillReturnRows(rows)

	profile, err := repo.GetProfile(ctx, "token-a")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if profile.Username != "SirFlushalot-a1b2" {
		t.Errorf("expected username SirFlushalot-a1b2, got %s", profile.Username)
	}
	if profile.Rate != 15.0 {
		t.Errorf("expected rate 15.0, got %f", profile.Rate)
	}
}

func TestGetProfile_NotFound(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT token, username, rate").
		WithArgs("unknown-token").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetProfile(ctx, "unknown-token")
	if !errors.Is(err, ErrProfileNotFound) {
		t.Fatalf("expected ErrProfileNotFound, got %v", err)
	}
}

func TestGetProfile_UnexpectedError(t *testing.T) {
	repo, mock, db := newTestProfileRepo(t)
	defer db.Close()

	ctx := context.Background()

	mock.ExpectQuery("SELECT token, username, rate").
		WithArgs("token-a").
		WillReturnError(errors.New("db failure"))

	_, err := repo.GetProfile(ctx, "token-a")
	if !errors.Is(err, ErrExecutingQuery) {
		t.Fatalf("expected ErrExecutingQuery, got %v", err)
	}
}
