package config

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseJSON_FullConfig(t *testing.T) {
	path := writeTempJSONConfig(t, map[string]any{
		"app": map[string]any{"version": "0.3.0"},
		"storage": map[string]any{
			"db":    map[string]any{"dsn": "postgres://localhost/breaks"},
			"local": map[string]any{"dsn": "state.db"},
		},
		"server": map[string]any{
			"http_address":    "localhost:8080",
			"request_timeout": "30s",
		},
		"adapter": map[string]any{
			"base_url":        "http://localhost:8080",
			"request_timeout": "15s",
		},
		"geo": map[string]any{
			"nominatim_base_url":        "https://nominatim.example.org",
			"locate_timeout":            "10s",
			"obfuscation_radius_meters": 500,
			"fixed_lat":                 59.9139,
			"fixed_lng":                 10.7522,
		},
		"views":   map[string]any{"display_limit": 5, "leaderboard_size": 10},
		"workers": map[string]any{"refresh_interval": "1m"},
	})

	cfg, err := parseJSON(path)
	require.NoError(t, err)

	assert.Equal(t, "0.3.0", cfg.App.Version)
	assert.Equal(t, "postgres://localhost/breaks", cfg.Storage.DB.DSN)
	assert.Equal(t, "state.db", cfg.Storage.Local.DSN)
	assert.Equal(t, "localhost:8080", cfg.Server.HTTPAddress)
	assert.Equal(t, 30*time.Second, cfg.Server.RequestTimeout)
	assert.Equal(t, "http://localhost:8080", cfg.Adapter.BaseURL)
	assert.Equal(t, 15*time.Second, cfg.Adapter.RequestTimeout)
	assert.Equal(t, "https://nominatim.example.org", cfg.Geo.NominatimBaseURL)
	assert.Equal(t, 10*time.Second, cfg.Geo.LocateTimeout)
	assert.Equal(t, float64(500), cfg.Geo.ObfuscationRadiusMeters)
	require.NotNil(t, cfg.Geo.FixedLat)
	require.NotNil(t, cfg.Geo.FixedLng)
	assert.Equal(t, 5, cfg.Views.DisplayLimit)
	assert.Equal(t, 10, cfg.Views.LeaderboardSize)
	assert.Equal(t, time.Minute, cfg.Workers.RefreshInterval)

	// Path is never carried over from the file itself.
	assert.Empty(t, cfg.JSONFilePath)
}

func TestParseJSON_MissingFile(t *testing.T) {
	_, err := parseJSON("/no/such/config.json")
	require.Error(t, err)
}

func TestParseJSON_MalformedJSON(t *testing.T) {
	f := t.TempDir() + "/bad.json"
	require.NoError(t, os.WriteFile(f, []byte("{not json"), 0o600))

	_, err := parseJSON(f)
	require.Error(t, err)
}

// TestDuration_UnmarshalJSON covers both the string and numeric encodings.
func TestDuration_UnmarshalJSON(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want time.Duration
		err  bool
	}{
		{name: "string form", in: `"1h30m"`, want: 90 * time.Minute},
		{name: "numeric nanoseconds", in: `1000000000`, want: time.Second},
		{name: "garbage", in: `"not-a-duration"`, err: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var d Duration
			err := d.UnmarshalJSON([]byte(tt.in))
			if tt.err {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, time.Duration(d))
		})
	}
}
