package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

func revenueEntries(revenues ...float64) []domain.RevenueEntry {
	months := []string{"01/2024", "02/2024", "03/2024", "04/2024", "05/2024", "06/2024"}
	entries := make([]domain.RevenueEntry, 0, len(revenues))
	for i, r := range revenues {
		entries = append(entries, domain.RevenueEntry{Month: months[i], Revenue: r})
	}
	return entries
}

func TestEngine_MixedSignsEmitNoTrendInsight(t *testing.T) {
	engine := NewEngine()

	// Last three points 90, 80, 95: one decline, one growth.
	results := engine.Run(domain.MetricsSnapshot{
		Revenue: revenueEntries(100, 90, 80, 95),
	})

	assert.Empty(t, results)
}

func TestEngine_SteepDeclineIsCritical(t *testing.T) {
	engine := NewEngine()

	// Last three points 90, 70, 50: totalChange = -44.4%.
	results := engine.Run(domain.MetricsSnapshot{
		Revenue: revenueEntries(100, 90, 70, 50),
	})

	require.Len(t, results, 1)
	in := results[0]
	assert.Equal(t, domain.CategoryRevenue, in.Category)
	assert.Equal(t, domain.TimeframeImmediate, in.Timeframe)
	assert.Equal(t, 5.1, in.Priority)
	assert.Equal(t, domain.SeverityCritical, in.Severity)
	assert.Equal(t, "-44.4%", in.Metrics["Total Change"])
}

func TestEngine_FullConcentrationIsHigh(t *testing.T) {
	engine := NewEngine()

	results := engine.Run(domain.MetricsSnapshot{
		Locations: []domain.EntityMetric{
			{ID: "1", Name: "Downtown", Revenue: 500},
			{ID: "2", Name: "Uptown", Revenue: 300},
			{ID: "3", Name: "Suburb", Revenue: 200},
		},
	})

	// Concentration ratio 1.0 plus the diversification follow-up.
	require.Len(t, results, 2)
	assert.Equal(t, 4.1, results[0].Priority)
	assert.Equal(t, domain.SeverityHigh, results[0].Severity)
	assert.Equal(t, "100.0%", results[0].Metrics["Concentration Ratio"])
	assert.Equal(t, 3.1, results[1].Priority)
	assert.Equal(t, domain.SeverityMedium, results[1].Severity)

	featured := Featured(results)
	require.NotNil(t, featured)
	assert.Equal(t, domain.SeverityHigh, featured.Severity)
}

func TestEngine_ThreePointsAbstain(t *testing.T) {
	engine := NewEngine()

	results := engine.Run(domain.MetricsSnapshot{
		Revenue: revenueEntries(100, 80, 50),
		Products: []domain.ProductRecord{
			{ID: "a", Name: "Widget", Revenue: 100, Profit: 40},
		},
	})

	// Trend and pricing both require at least four monthly points.
	assert.Empty(t, results)
}

func TestEngine_Deterministic(t *testing.T) {
	engine := NewEngine()
	snapshot := domain.MetricsSnapshot{
		Revenue: revenueEntries(100, 120, 90, 70, 60, 40),
		Products: []domain.ProductRecord{
			{ID: "a", Name: "Widget", Revenue: 1000, Profit: 400},
			{ID: "b", Name: "Gadget", Revenue: 500, Profit: 50},
			{ID: "c", Name: "Gizmo", Revenue: 500, Profit: 100},
		},
		Locations: []domain.EntityMetric{
			{ID: "1", Name: "Downtown", Revenue: 900},
			{ID: "2", Name: "Uptown", Revenue: 300},
			{ID: "3", Name: "Suburb", Revenue: 100},
		},
	}

	first := engine.Run(snapshot)
	second := engine.Run(snapshot)

	require.NotEmpty(t, first)
	assert.Equal(t, first, second)
}

func TestEngine_OrderedByPriorityDesc(t *testing.T) {
	engine := NewEngine()
	results := engine.Run(domain.MetricsSnapshot{
		Revenue: revenueEntries(100, 120, 90, 70, 60, 40),
		Products: []domain.ProductRecord{
			{ID: "a", Name: "Widget", Revenue: 1000, Profit: 400},
			{ID: "b", Name: "Gadget", Revenue: 500, Profit: 50},
			{ID: "c", Name: "Gizmo", Revenue: 500, Profit: 100},
		},
		Locations: []domain.EntityMetric{
			{ID: "1", Name: "Downtown", Revenue: 900},
			{ID: "2", Name: "Uptown", Revenue: 300},
			{ID: "3", Name: "Suburb", Revenue: 100},
		},
	})

	require.NotEmpty(t, results)
	for i := 1; i < len(results); i++ {
		assert.GreaterOrEqual(t, results[i-1].Priority, results[i].Priority)
	}

	for _, in := range results {
		assert.GreaterOrEqual(t, in.Priority, 0.0)
		assert.LessOrEqual(t, in.Priority, 5.5)
		assert.Equal(t, SeverityFor(in.Priority), in.Severity)
	}
}

func TestFeatured(t *testing.T) {
	critical := domain.Insight{Title: "c", Severity: domain.SeverityCritical}
	high := domain.Insight{Title: "h", Severity: domain.SeverityHigh}
	medium := domain.Insight{Title: "m", Severity: domain.SeverityMedium}

	t.Run("prefers critical", func(t *testing.T) {
		got := Featured([]domain.Insight{high, medium, critical})
		require.NotNil(t, got)
		assert.Equal(t, "c", got.Title)
	})

	t.Run("falls back to high", func(t *testing.T) {
		got := Featured([]domain.Insight{medium, high})
		require.NotNil(t, got)
		assert.Equal(t, "h", got.Title)
	})

	t.Run("falls back to head of list", func(t *testing.T) {
		got := Featured([]domain.Insight{medium})
		require.NotNil(t, got)
		assert.Equal(t, "m", got.Title)
	})

	t.Run("nil for empty list", func(t *testing.T) {
		assert.Nil(t, Featured(nil))
	})
}
