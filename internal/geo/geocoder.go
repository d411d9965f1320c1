package geo

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"

	"github.com/go-resty/resty/v2"

	"github.com/mkarev/go-break-ledger/internal/config"
	"github.com/mkarev/go-break-ledger/internal/logger"
)

// Geocoder resolves a coordinate pair to a city name. Best effort: an empty
// city with a nil error means "could not resolve", which is never fatal to
// the submit flow.
type Geocoder interface {
	ReverseGeocode(ctx context.Context, lat, lng float64) (string, error)
}

// nominatimAddress is the subset of the Nominatim jsonv2 address block used
// to pick a city name.
type nominatimAddress struct {
	City         string `json:"city"`
	Town         string `json:"town"`
	Village      string `json:"village"`
	Suburb       string `json:"suburb"`
	CityDistrict string `json:"city_district"`
}

type nominatimResponse struct {
	Address nominatimAddress `json:"address"`
}

type nominatimGeocoder struct {
	client *resty.Client
	logger *logger.Logger
}

// userAgent identifies this application to Nominatim, whose usage policy
// asks for an identifying agent.
const userAgent = "BreakLedger/1.0"

// NewNominatimGeocoder constructs a [Geocoder] backed by the Nominatim
// reverse endpoint. The resty client and its connection pool are built once
// and reused for every lookup.
func NewNominatimGeocoder(cfg config.ClientGeo, logger *logger.Logger) Geocoder {
	client := resty.New().
		SetBaseURL(strings.TrimRight(cfg.NominatimBaseURL, "/")).
		SetTimeout(cfg.LocateTimeout).
		SetHeader("User-Agent", userAgent)

	return &nominatimGeocoder{client: client, logger: logger}
}

// ReverseGeocode implements [Geocoder]. Failures are logged and reported as
// an empty city with a nil error: geocoding is decoration, not a gate.
func (n *nominatimGeocoder) ReverseGeocode(ctx context.Context, lat, lng float64) (string, error) {
	resp, err := n.client.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"format": "jsonv2",
			"lat":    fmt.Sprintf("%f", lat),
			"lon":    fmt.Sprintf("%f", lng),
		}).
		Get("/reverse")
	if err != nil {
		n.logger.Err(err).Str("func", "nominatimGeocoder.ReverseGeocode").Msg("reverse geocode request failed")
		return "", nil
	}
	if resp.StatusCode() != http.StatusOK {
		n.logger.Warn().
			Str("func", "nominatimGeocoder.ReverseGeocode").
			Int("status", resp.StatusCode()).
			Msg("reverse geocode returned non-200")
		return "", nil
	}

	var decoded nominatimResponse
	if err = json.Unmarshal(resp.Body(), &decoded); err != nil {
		n.logger.Err(err).Str("func", "nominatimGeocoder.ReverseGeocode").Msg("failed to decode reverse geocode response")
		return "", nil
	}

	return pickCity(decoded.Address), nil
}

// pickCity chooses the most specific usable locality name, in order:
// city, town, village, suburb, city district.
func pickCity(address nominatimAddress) string {
	for _, candidate := range []string{
		address.City,
		address.Town,
		address.Village,
		address.Suburb,
		address.CityDistrict,
	} {
		if candidate != "" {
			return candidate
		}
	}
	return ""
}
