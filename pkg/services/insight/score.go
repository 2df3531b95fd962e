package insight

import (
	"math"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

// CalculatePriority folds raw detector signals into a single 0-5 score,
// rounded to one decimal place. A negative trend is weighted heavier
// than a positive one of the same size.
func CalculatePriority(m domain.PriorityMetrics) float64 {
	trendWeight := 0.8
	if m.Trend < 0 {
		trendWeight = 1.2
	}
	score := float64(m.Urgency)*0.4 +
		float64(m.Impact)*0.3 +
		float64(m.Scope)*0.2 +
		math.Abs(float64(m.Trend))*0.1*trendWeight
	return math.Round(score*10) / 10
}

// SeverityFor buckets a priority score. This is the single authority
// for severity; detectors never assign one directly.
func SeverityFor(score float64) domain.Severity {
	switch {
	case score >= 5:
		return domain.SeverityCritical
	case score >= 4:
		return domain.SeverityHigh
	case score >= 3:
		return domain.SeverityMedium
	default:
		return domain.SeverityLow
	}
}
