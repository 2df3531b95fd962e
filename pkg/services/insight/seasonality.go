package insight

import (
	"fmt"
	"math"
	"time"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

// SeasonalityDetector averages revenue per calendar month across
// periods and reports the strength of the peak-to-trough cycle.
type SeasonalityDetector struct{}

func (SeasonalityDetector) Name() string { return "seasonality" }

func (SeasonalityDetector) Evaluate(m NormalizedMetrics) []Signal {
	if len(m.Revenue) < minSeasonalityPoints {
		return nil
	}

	sums := map[time.Month]float64{}
	counts := map[time.Month]int{}
	for _, p := range m.Revenue {
		sums[p.Month] += p.Revenue
		counts[p.Month]++
	}

	var peakMonth, troughMonth time.Month
	peak := math.Inf(-1)
	trough := math.Inf(1)
	totalAvg := 0.0

	// Iterate months in calendar order so ties resolve deterministically.
	for mo := time.January; mo <= time.December; mo++ {
		n, ok := counts[mo]
		if !ok {
			continue
		}
		avg := sums[mo] / float64(n)
		totalAvg += avg
		if avg > peak {
			peak = avg
			peakMonth = mo
		}
		if avg < trough {
			trough = avg
			troughMonth = mo
		}
	}
	if peakMonth == troughMonth {
		return nil
	}

	avg := totalAvg / float64(len(counts))
	if avg <= 0 || trough <= 0 {
		return nil
	}
	strength := (peak/avg + avg/trough) / 2

	urgency := 2
	if strength > 2 {
		urgency = 4
	} else if strength > 1.5 {
		urgency = 3
	}
	impact := int(math.Min(5, math.Ceil(strength)))

	timeframe := domain.TimeframeMediumTerm
	if strength > 2 {
		timeframe = domain.TimeframeShortTerm
	}

	return []Signal{{
		Category:  domain.CategoryPlanning,
		Timeframe: timeframe,
		Priority:  domain.PriorityMetrics{Urgency: urgency, Impact: impact, Scope: 4},
		Magnitude: strength,
		Description: fmt.Sprintf(
			"Revenue peaks in %s and bottoms out in %s, a seasonal swing of %.1fx.",
			peakMonth, troughMonth, strength),
		Metrics: map[string]string{
			"Peak Month":           peakMonth.String(),
			"Trough Month":         troughMonth.String(),
			"Seasonality Strength": fmt.Sprintf("%.1fx", strength),
			"Peak Average Revenue": formatCurrency(peak),
		},
	}}
}
