package insight

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

func normalizedProducts(records ...domain.ProductRecord) NormalizedMetrics {
	return Normalize(domain.MetricsSnapshot{Products: records})
}

func TestProductMixDetector_FiresOnMarginSpread(t *testing.T) {
	detector := ProductMixDetector{}

	signals := detector.Evaluate(normalizedProducts(
		domain.ProductRecord{ID: "a", Name: "Widget", Revenue: 1000, Profit: 400}, // 40%
		domain.ProductRecord{ID: "b", Name: "Gadget", Revenue: 500, Profit: 50},   // 10%
		domain.ProductRecord{ID: "c", Name: "Gizmo", Revenue: 500, Profit: 100},   // 20%
	))

	require.Len(t, signals, 1)
	sig := signals[0]
	assert.Equal(t, domain.CategoryProduct, sig.Category)
	assert.Equal(t, domain.TimeframeMediumTerm, sig.Timeframe)
	// spread 30, selected revenue 1500 of 2000.
	assert.Equal(t, domain.PriorityMetrics{Urgency: 3, Impact: 4, Scope: 3}, sig.Priority)
	assert.InDelta(t, 0.3, sig.Magnitude, 0.0001)
	assert.Equal(t, "Widget", sig.Metrics["Top Performer"])
	assert.Equal(t, "Gadget", sig.Metrics["Weakest Product"])
}

func TestProductMixDetector_WideSpreadIsShortTerm(t *testing.T) {
	detector := ProductMixDetector{}

	signals := detector.Evaluate(normalizedProducts(
		domain.ProductRecord{ID: "a", Name: "Widget", Revenue: 1000, Profit: 600}, // 60%
		domain.ProductRecord{ID: "b", Name: "Gadget", Revenue: 500, Profit: 25},   // 5%
		domain.ProductRecord{ID: "c", Name: "Gizmo", Revenue: 500, Profit: 100},   // 20%
	))

	require.Len(t, signals, 1)
	assert.Equal(t, domain.TimeframeShortTerm, signals[0].Timeframe)
	assert.Equal(t, 5, signals[0].Priority.Urgency)
}

func TestProductMixDetector_NoOutliersNoSignal(t *testing.T) {
	detector := ProductMixDetector{}

	// All margins between 15 and 30: nothing to flag.
	signals := detector.Evaluate(normalizedProducts(
		domain.ProductRecord{ID: "a", Name: "Widget", Revenue: 1000, Profit: 200},
		domain.ProductRecord{ID: "b", Name: "Gadget", Revenue: 500, Profit: 100},
		domain.ProductRecord{ID: "c", Name: "Gizmo", Revenue: 500, Profit: 125},
	))

	assert.Empty(t, signals)
}

func TestProductMixDetector_SampleFloor(t *testing.T) {
	detector := ProductMixDetector{}

	signals := detector.Evaluate(normalizedProducts(
		domain.ProductRecord{ID: "a", Name: "Widget", Revenue: 1000, Profit: 400},
		domain.ProductRecord{ID: "b", Name: "Gadget", Revenue: 500, Profit: 50},
	))

	assert.Empty(t, signals)
}

func TestProductMixDetector_CapsSelection(t *testing.T) {
	detector := ProductMixDetector{}

	signals := detector.Evaluate(normalizedProducts(
		domain.ProductRecord{ID: "a", Name: "A", Revenue: 100, Profit: 50},
		domain.ProductRecord{ID: "b", Name: "B", Revenue: 100, Profit: 45},
		domain.ProductRecord{ID: "c", Name: "C", Revenue: 100, Profit: 40},
		domain.ProductRecord{ID: "d", Name: "D", Revenue: 100, Profit: 35}, // 4th high-margin, trimmed
		domain.ProductRecord{ID: "e", Name: "E", Revenue: 100, Profit: 10},
		domain.ProductRecord{ID: "f", Name: "F", Revenue: 100, Profit: 5},
		domain.ProductRecord{ID: "g", Name: "G", Revenue: 100, Profit: 8}, // 3rd low-margin, trimmed
	))

	require.Len(t, signals, 1)
	sig := signals[0]
	// 3 high + 2 low selected: scope bumps to 4.
	assert.Equal(t, 4, sig.Priority.Scope)
	assert.Equal(t, "A", sig.Metrics["Top Performer"])
	assert.Equal(t, "F", sig.Metrics["Weakest Product"])
}
