package insight

import (
	"fmt"
	"math"
	"sort"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

// ProductMixDetector surfaces margin spread across the product
// portfolio: strong performers worth doubling down on and thin-margin
// products dragging profitability.
type ProductMixDetector struct{}

func (ProductMixDetector) Name() string { return "product_mix" }

func (ProductMixDetector) Evaluate(m NormalizedMetrics) []Signal {
	if len(m.Products) < minProducts {
		return nil
	}

	var highMargin, lowMargin []domain.ProductMetric
	totalRevenue := 0.0
	minMargin := math.Inf(1)
	maxMargin := math.Inf(-1)

	for _, p := range m.Products {
		totalRevenue += p.Revenue
		minMargin = math.Min(minMargin, p.Margin)
		maxMargin = math.Max(maxMargin, p.Margin)
		if p.Margin > 30 {
			highMargin = append(highMargin, p)
		} else if p.Margin > 0 && p.Margin < 15 {
			lowMargin = append(lowMargin, p)
		}
	}
	if len(highMargin) == 0 && len(lowMargin) == 0 {
		return nil
	}
	if totalRevenue <= 0 {
		return nil
	}

	sort.SliceStable(highMargin, func(i, j int) bool { return highMargin[i].Margin > highMargin[j].Margin })
	sort.SliceStable(lowMargin, func(i, j int) bool { return lowMargin[i].Margin < lowMargin[j].Margin })
	if len(highMargin) > 3 {
		highMargin = highMargin[:3]
	}
	if len(lowMargin) > 2 {
		lowMargin = lowMargin[:2]
	}

	marginSpread := maxMargin - minMargin

	highRevenue, lowRevenue := 0.0, 0.0
	for _, p := range highMargin {
		highRevenue += p.Revenue
	}
	for _, p := range lowMargin {
		lowRevenue += p.Revenue
	}

	impact := int(math.Ceil((highRevenue + lowRevenue) / totalRevenue * 5))
	if impact < 1 {
		impact = 1
	}
	if impact > 5 {
		impact = 5
	}

	urgency := 2
	switch {
	case marginSpread > 50:
		urgency = 5
	case marginSpread > 30:
		urgency = 4
	case marginSpread > 20:
		urgency = 3
	}

	scope := 3
	if len(highMargin)+len(lowMargin) > 4 {
		scope = 4
	}

	timeframe := domain.TimeframeMediumTerm
	if marginSpread > 40 {
		timeframe = domain.TimeframeShortTerm
	}

	metrics := map[string]string{
		"Margin Spread": formatPercent(marginSpread),
	}
	if len(highMargin) > 0 {
		metrics["Top Performer"] = highMargin[0].Name
		metrics["High-Margin Revenue"] = formatCurrency(highRevenue)
	}
	if len(lowMargin) > 0 {
		metrics["Weakest Product"] = lowMargin[0].Name
		metrics["Low-Margin Revenue"] = formatCurrency(lowRevenue)
	}

	return []Signal{{
		Category:  domain.CategoryProduct,
		Timeframe: timeframe,
		Priority:  domain.PriorityMetrics{Urgency: urgency, Impact: impact, Scope: scope},
		Magnitude: marginSpread / 100,
		Description: fmt.Sprintf(
			"Profit margins vary %s across products, with %d strong and %d weak performers flagged.",
			formatPercent(marginSpread), len(highMargin), len(lowMargin)),
		Metrics: metrics,
	}}
}
