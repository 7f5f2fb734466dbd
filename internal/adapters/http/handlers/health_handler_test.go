package handlers

import (
	"encoding/json"
	"errors"
	"io"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHealthCheck(t *testing.T) {
	tests := []struct {
		name       string
		ping       func() error
		wantStatus string
		wantDB     string
	}{
		{"healthy", func() error { return nil }, "ok", "healthy"},
		{"database down", func() error { return errors.New("connection refused") }, "degraded", "unhealthy"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			app := fiber.New()
			app.Get("/health", NewHealthHandler("dev", tt.ping).HealthCheck)

			resp, err := app.Test(httptest.NewRequest(fiber.MethodGet, "/health", nil))
			require.NoError(t, err)
			defer resp.Body.Close()
			assert.Equal(t, fiber.StatusOK, resp.StatusCode)

			raw, err := io.ReadAll(resp.Body)
			require.NoError(t, err)

			var body struct {
				Status string `json:"status"`
				Checks struct {
					Database string `json:"database"`
				} `json:"checks"`
			}
			require.NoError(t, json.Unmarshal(raw, &body))
			assert.Equal(t, tt.wantStatus, body.Status)
			assert.Equal(t, tt.wantDB, body.Checks.Database)
		})
	}
}

func TestParseDate(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"2024-01-20", "2024-01-20T00:00:00Z"},
		{"2024-01-20T10:30:00", "2024-01-20T10:30:00Z"},
		{"2024-01-20T10:30:00+01:00", "2024-01-20T09:30:00Z"},
		{" 2024-01-20 ", "2024-01-20T00:00:00Z"},
	}
	for _, tt := range tests {
		got, err := parseDate(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got.Format("2006-01-02T15:04:05Z07:00"))
	}

	_, err := parseDate("20/01/2024")
	assert.ErrorIs(t, err, errInvalidDate)

	empty, err := parseOptionalDate("  ")
	assert.NoError(t, err)
	assert.Nil(t, empty)
}
