package insight

import (
	"fmt"
	"math"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

// PricingOpportunityDetector fires when revenue moved sharply in either
// direction and product data exists to act on. It derives the same
// three-month change the trend detector uses rather than depending on
// its output, so detectors stay independent.
type PricingOpportunityDetector struct{}

func (PricingOpportunityDetector) Name() string { return "pricing_opportunity" }

func (PricingOpportunityDetector) Evaluate(m NormalizedMetrics) []Signal {
	if len(m.Products) == 0 {
		return nil
	}
	_, _, totalChange, ok := lastThreeChange(m.Revenue)
	if !ok || math.Abs(totalChange) <= 0.1 {
		return nil
	}

	pricingImpact := math.Abs(totalChange) * 100

	urgency := 2
	if pricingImpact > 25 {
		urgency = 4
	} else if pricingImpact > 15 {
		urgency = 3
	}
	impact := 3
	if pricingImpact > 25 {
		impact = 5
	} else if pricingImpact > 15 {
		impact = 4
	}

	direction := "grew"
	if totalChange < 0 {
		direction = "declined"
	}

	return []Signal{{
		Category:  domain.CategoryPricing,
		Timeframe: domain.TimeframeMediumTerm,
		Priority:  domain.PriorityMetrics{Urgency: urgency, Impact: impact, Scope: 4},
		Magnitude: totalChange,
		Description: fmt.Sprintf(
			"Revenue %s %s over the last three months across %d tracked products, suggesting room to revisit pricing.",
			direction, formatPercent(pricingImpact), len(m.Products)),
		Metrics: map[string]string{
			"Revenue Change":   formatPercent(totalChange * 100),
			"Pricing Impact":   formatPercent(pricingImpact),
			"Tracked Products": fmt.Sprintf("%d", len(m.Products)),
		},
	}}
}
