package server

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/insight-atlas/pkg/models/api"
	"github.com/de-tools/insight-atlas/pkg/models/domain"
	"github.com/de-tools/insight-atlas/pkg/services/insight"
)

type mockProvider struct {
	mock.Mock
}

func (m *mockProvider) GetSnapshot(ctx context.Context) (domain.MetricsSnapshot, error) {
	args := m.Called(ctx)
	return args.Get(0).(domain.MetricsSnapshot), args.Error(1)
}

func (m *mockProvider) Refresh(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}

func TestWebAPI_Endpoints(t *testing.T) {
	logger := zerolog.New(zerolog.NewTestWriter(t))

	provider := new(mockProvider)
	provider.On("GetSnapshot", mock.Anything).Return(domain.MetricsSnapshot{
		Locations: []domain.EntityMetric{
			{ID: "1", Name: "Downtown", Revenue: 500},
			{ID: "2", Name: "Uptown", Revenue: 300},
			{ID: "3", Name: "Suburb", Revenue: 200},
		},
	}, nil)
	provider.On("Refresh", mock.Anything).Return(nil)

	webAPI := NewWebAPI(logger, Config{
		Addr: ":8080",
		Dependencies: Dependencies{
			Provider: provider,
			Engine:   insight.NewEngine(),
		},
	})

	t.Run("GET /api/v1/insights", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/insights", nil)
		webAPI.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)

		var body api.InsightsResponse
		require.NoError(t, json.NewDecoder(rec.Body).Decode(&body))
		assert.Equal(t, "ok", body.Status)
		assert.NotEmpty(t, body.Insights)
	})

	t.Run("POST /api/v1/insights/refresh", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodPost, "/api/v1/insights/refresh", nil)
		webAPI.Router().ServeHTTP(rec, req)

		require.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("unknown route", func(t *testing.T) {
		rec := httptest.NewRecorder()
		req := httptest.NewRequest(http.MethodGet, "/api/v1/unknown", nil)
		webAPI.Router().ServeHTTP(rec, req)

		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}
