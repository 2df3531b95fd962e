package insight

import (
	"fmt"
	"math"
	"sort"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

// ConcentrationDetector measures how much revenue the top locations (or
// customers) account for, then checks whether a single entity dominates
// enough to warrant a diversification push.
type ConcentrationDetector struct{}

func (ConcentrationDetector) Name() string { return "concentration" }

func (ConcentrationDetector) Evaluate(m NormalizedMetrics) []Signal {
	if len(m.Entities) < minEntities {
		return nil
	}

	sorted := make([]domain.EntityMetric, len(m.Entities))
	copy(sorted, m.Entities)
	sort.SliceStable(sorted, func(i, j int) bool { return sorted[i].Revenue > sorted[j].Revenue })

	total := 0.0
	for _, e := range sorted {
		total += e.Revenue
	}
	if total <= 0 {
		return nil
	}

	topN := 3
	if len(sorted) < topN {
		topN = len(sorted)
	}
	topRevenue := 0.0
	for _, e := range sorted[:topN] {
		topRevenue += e.Revenue
	}
	ratio := topRevenue / total

	urgency := 3
	if ratio > 0.8 {
		urgency = 5
	} else if ratio > 0.6 {
		urgency = 4
	}

	timeframe := domain.TimeframeMediumTerm
	if ratio > 0.8 {
		timeframe = domain.TimeframeShortTerm
	}

	signals := []Signal{{
		Category:  domain.CategoryRegional,
		Timeframe: timeframe,
		Priority:  domain.PriorityMetrics{Urgency: urgency, Impact: 5, Scope: 3},
		Magnitude: ratio,
		Description: fmt.Sprintf(
			"The top %d of %d locations account for %s of total revenue.",
			topN, len(sorted), formatPercent(ratio*100)),
		Metrics: map[string]string{
			"Concentration Ratio": formatPercent(ratio * 100),
			"Top Location":        sorted[0].Name,
			"Total Revenue":       formatCurrency(total),
		},
	}}

	if div := evaluateDiversification(sorted, total); div != nil {
		signals = append(signals, *div)
	}
	return signals
}

// evaluateDiversification fires when a single entity either holds an
// outsized revenue share or leads the runner-up by a wide gap. A
// zero-revenue runner-up leaves the gap undefined; the share condition
// alone decides then.
func evaluateDiversification(sorted []domain.EntityMetric, total float64) *Signal {
	if len(sorted) < 2 {
		return nil
	}

	top1 := sorted[0]
	top1Share := top1.Revenue / total
	pctDiff := 0.0
	if sorted[1].Revenue > 0 {
		pctDiff = (top1.Revenue - sorted[1].Revenue) / sorted[1].Revenue
	}

	if top1Share <= 0.25 && pctDiff <= 0.5 {
		return nil
	}

	urgency := 3
	if top1Share > 0.5 {
		urgency = 5
	} else if top1Share > 0.3 {
		urgency = 4
	}

	impact := int(math.Ceil(top1Share * 5))
	if impact < 1 {
		impact = 1
	}

	timeframe := domain.TimeframeLongTerm
	if top1Share > 0.5 {
		timeframe = domain.TimeframeShortTerm
	}

	description := fmt.Sprintf(
		"%s alone generates %s of revenue, %s ahead of the next location.",
		top1.Name, formatPercent(top1Share*100), formatPercent(pctDiff*100))
	metrics := map[string]string{
		"Top Location Share":  formatPercent(top1Share * 100),
		"Lead Over Runner-Up": formatPercent(pctDiff * 100),
		"Top Location":        top1.Name,
	}
	if sorted[1].Revenue <= 0 {
		description = fmt.Sprintf(
			"%s alone generates %s of revenue; no other location contributes meaningfully.",
			top1.Name, formatPercent(top1Share*100))
		delete(metrics, "Lead Over Runner-Up")
	}

	return &Signal{
		Category:    domain.CategoryRegional,
		Timeframe:   timeframe,
		Priority:    domain.PriorityMetrics{Urgency: urgency, Impact: impact, Scope: 3},
		Magnitude:   top1Share,
		Description: description,
		Metrics:     metrics,
	}
}
