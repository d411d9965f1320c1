package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/url"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mkarev/go-break-ledger/internal/config"
	"github.com/mkarev/go-break-ledger/internal/logger"
	"github.com/mkarev/go-break-ledger/models"
)

type httpServerAdapter struct {
	client *resty.Client

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of
// [ServerAdapter]. It normalises and validates the base URL from
// adapterCfg.BaseURL and configures the underlying resty client with the
// resolved base URL and request timeout.
//
// Returns an error if adapterCfg.BaseURL is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.BaseURL)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter base url: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout)

	return &httpServerAdapter{client: client, logger: logger}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SubmitLog implements [ServerAdapter]. It POSTs the record to POST /api/log
// and decodes the stored record (with assigned ID) from the response. The
// argument is passed by value and never mutated, so the caller can retry the
// same record after a failure.
func (h *httpServerAdapter) SubmitLog(ctx context.Context, record models.LogRecord) (models.LogRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(record).
		Post("/api/log")
	if err != nil {
		return models.LogRecord{}, fmt.Errorf("submit log request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LogRecord{}, err
	}

	var stored models.SubmitLogResponse
	if err = json.Unmarshal(resp.Body(), &stored); err != nil {
		return models.LogRecord{}, fmt.Errorf("decode submit log response: %w", err)
	}

	return stored.LogRecord, nil
}

// ListLogs implements [ServerAdapter]. It GETs the full snapshot from
// GET /api/log and decodes it into a slice of [models.LogRecord]. Returns an
// error if the request, response mapping, or JSON decoding fails.
func (h *httpServerAdapter) ListLogs(ctx context.Context) ([]models.LogRecord, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/log")
	if err != nil {
		return nil, fmt.Errorf("list logs request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var records []models.LogRecord
	if err = json.Unmarshal(resp.Body(), &records); err != nil {
		return nil, fmt.Errorf("decode list logs response: %w", err)
	}

	return records, nil
}

// SaveProfile implements [ServerAdapter]. It POSTs the profile to
// POST /api/profile. The server upserts by token.
func (h *httpServerAdapter) SaveProfile(ctx context.Context, profile models.Profile) error {
	resp, err := h.client.R().
		SetContext(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(profile).
		Post("/api/profile")
	if err != nil {
		return fmt.Errorf("save profile request: %w", err)
	}

	return mapHTTPError(resp)
}

// GetProfile implements [ServerAdapter]. It GETs the profile mirror from
// GET /api/profile with the token passed as a query parameter.
func (h *httpServerAdapter) GetProfile(ctx context.Context, token string) (models.Profile, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		SetQueryParam("token", token).
		Get("/api/profile")
	if err != nil {
		return models.Profile{}, fmt.Errorf("get profile request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.Profile{}, err
	}

	var profile models.Profile
	if err = json.Unmarshal(resp.Body(), &profile); err != nil {
		return models.Profile{}, fmt.Errorf("decode profile response: %w", err)
	}

	return profile, nil
}

// Version implements [ServerAdapter]. It GETs the server build version from
// GET /api/version.
func (h *httpServerAdapter) Version(ctx context.Context) (string, error) {
	resp, err := h.client.R().
		SetContext(ctx).
		Get("/api/version")
	if err != nil {
		return "", fmt.Errorf("version request: %w", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return "", err
	}

	var vr models.VersionResponse
	if err = json.Unmarshal(resp.Body(), &vr); err != nil {
		return "", fmt.Errorf("decode version response: %w", err)
	}

	return vr.Version, nil
}
