package insight

import (
	"fmt"
	"math"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

// RevenueTrendDetector flags sustained revenue decline or growth over
// the last three months of the series.
type RevenueTrendDetector struct{}

func (RevenueTrendDetector) Name() string { return "revenue_trend" }

// lastThreeChange computes month-over-month change rates and the total
// change across the last three points. ok is false when the series is
// too short or a denominator is zero.
func lastThreeChange(points []domain.MonthlyRevenuePoint) (rate1, rate2, totalChange float64, ok bool) {
	if len(points) < minTrendPoints {
		return 0, 0, 0, false
	}
	p0 := points[len(points)-3].Revenue
	p1 := points[len(points)-2].Revenue
	p2 := points[len(points)-1].Revenue
	if p0 <= 0 || p1 <= 0 {
		return 0, 0, 0, false
	}
	rate1 = (p1 - p0) / p0
	rate2 = (p2 - p1) / p1
	totalChange = (p2 - p0) / p0
	return rate1, rate2, totalChange, true
}

func (RevenueTrendDetector) Evaluate(m NormalizedMetrics) []Signal {
	rate1, rate2, totalChange, ok := lastThreeChange(m.Revenue)
	if !ok {
		return nil
	}
	latest := m.Revenue[len(m.Revenue)-1].Revenue

	switch {
	case rate1 < 0 && rate2 < 0:
		avgDecline := (math.Abs(rate1) + math.Abs(rate2)) / 2
		abs := math.Abs(totalChange)

		urgency := 3
		if abs > 0.2 {
			urgency = 5
		} else if abs > 0.1 {
			urgency = 4
		}
		impact := 3
		if abs > 0.3 {
			impact = 5
		} else if abs > 0.2 {
			impact = 4
		}
		trend := -int(math.Min(5, math.Ceil(abs*10)))

		return []Signal{{
			Category:    domain.CategoryRevenue,
			Subcategory: "decline",
			Timeframe:   domain.TimeframeImmediate,
			Priority:    domain.PriorityMetrics{Urgency: urgency, Impact: impact, Scope: 5, Trend: trend},
			Magnitude:   totalChange,
			Description: fmt.Sprintf(
				"Revenue declined %s over the last three months, averaging %s per month.",
				formatPercent(abs*100), formatPercent(avgDecline*100)),
			Metrics: map[string]string{
				"Total Change":            formatPercent(totalChange * 100),
				"Average Monthly Decline": formatPercent(avgDecline * 100),
				"Latest Monthly Revenue":  formatCurrency(latest),
			},
		}}

	case rate1 > 0 && rate2 > 0:
		avgGrowth := (rate1 + rate2) / 2

		urgency := 3
		if totalChange > 0.3 {
			urgency = 5
		} else if totalChange > 0.15 {
			urgency = 4
		}
		impact := 3
		if totalChange > 0.3 {
			impact = 5
		} else if totalChange > 0.2 {
			impact = 4
		}
		trend := int(math.Min(3, math.Ceil(totalChange*10)))

		return []Signal{{
			Category:    domain.CategoryRevenue,
			Subcategory: "growth",
			Timeframe:   domain.TimeframeShortTerm,
			Priority:    domain.PriorityMetrics{Urgency: urgency, Impact: impact, Scope: 4, Trend: trend},
			Magnitude:   totalChange,
			Description: fmt.Sprintf(
				"Revenue grew %s over the last three months, averaging %s per month.",
				formatPercent(totalChange*100), formatPercent(avgGrowth*100)),
			Metrics: map[string]string{
				"Total Change":           formatPercent(totalChange * 100),
				"Average Monthly Growth": formatPercent(avgGrowth * 100),
				"Latest Monthly Revenue": formatCurrency(latest),
			},
		}}
	}

	// Mixed signs: no sustained trend.
	return nil
}
