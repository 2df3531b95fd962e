package insights

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/de-tools/insight-atlas/pkg/models/api"
	"github.com/de-tools/insight-atlas/pkg/models/domain"
	"github.com/de-tools/insight-atlas/pkg/services/insight"
	"github.com/de-tools/insight-atlas/pkg/store/metrics"
)

type Handler struct {
	provider metrics.Provider
	engine   *insight.Engine
}

func NewHandler(provider metrics.Provider, engine *insight.Engine) *Handler {
	return &Handler{
		provider: provider,
		engine:   engine,
	}
}

// GetInsights fetches the latest aggregated metrics, runs the insight
// engine and returns the ranked list. Provider failures surface as
// status "error"; an empty insight list is a normal "ok" response.
func (h *Handler) GetInsights(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	snapshot, err := h.provider.GetSnapshot(ctx)
	if err != nil {
		logger.Error().Err(err).Msg("failed to fetch metrics snapshot")
		writeJSON(w, http.StatusBadGateway, api.InsightsResponse{
			Status: "error",
			Error:  "metrics provider unavailable",
		})
		return
	}

	results := h.engine.Run(snapshot)

	writeJSON(w, http.StatusOK, api.InsightsResponse{
		Status:   "ok",
		Insights: api.MapInsights(results),
		Summary:  buildSummary(results),
	})
}

// Refresh forwards a re-aggregation request to the metrics provider.
func (h *Handler) Refresh(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	logger := zerolog.Ctx(ctx)

	if err := h.provider.Refresh(ctx); err != nil {
		logger.Error().Err(err).Msg("failed to trigger re-aggregation")
		writeJSON(w, http.StatusBadGateway, api.StatusResponse{
			Status: "error",
			Error:  "metrics provider unavailable",
		})
		return
	}

	writeJSON(w, http.StatusOK, api.StatusResponse{Status: "ok"})
}

func buildSummary(results []domain.Insight) *api.Summary {
	summary := &api.Summary{
		Total:      len(results),
		BySeverity: map[string]int{},
	}
	for _, in := range results {
		summary.BySeverity[string(in.Severity)]++
	}
	if featured := insight.Featured(results); featured != nil {
		mapped := api.MapInsight(*featured)
		summary.Featured = &mapped
	}
	return summary
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(body)
}
