package insight

import (
	"sort"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

// Engine runs the full pipeline: normalize, evaluate every detector,
// score, select a recommendation template and assemble the ranked
// insight list. It is stateless; Run is a pure function of its input.
type Engine struct {
	detectors []Detector
}

// NewEngine wires the canonical detector set. Registration order is the
// tie-break for equal priorities in the output list.
func NewEngine() *Engine {
	return &Engine{
		detectors: []Detector{
			RevenueTrendDetector{},
			PricingOpportunityDetector{},
			ProductMixDetector{},
			ConcentrationDetector{},
			SeasonalityDetector{},
		},
	}
}

// Run evaluates every detector against the snapshot and returns
// insights sorted by descending priority. Detectors that cannot fire
// contribute nothing; an empty list is a valid result.
func (e *Engine) Run(snapshot domain.MetricsSnapshot) []domain.Insight {
	normalized := Normalize(snapshot)

	insights := make([]domain.Insight, 0)
	for _, d := range e.detectors {
		for _, sig := range d.Evaluate(normalized) {
			insights = append(insights, assemble(sig))
		}
	}

	sort.SliceStable(insights, func(i, j int) bool {
		return insights[i].Priority > insights[j].Priority
	})
	return insights
}

func assemble(sig Signal) domain.Insight {
	priority := CalculatePriority(sig.Priority)
	severity := SeverityFor(priority)
	tmpl := SelectTemplate(sig.Category, sig.Subcategory, severity, sig.Magnitude)

	return domain.Insight{
		Title:          tmpl.Title,
		Recommendation: tmpl.Description,
		Description:    sig.Description,
		Actions:        tmpl.Actions,
		Category:       sig.Category,
		Timeframe:      sig.Timeframe,
		Priority:       priority,
		Severity:       severity,
		Metrics:        sig.Metrics,
	}
}

// Featured returns the insight to highlight: the first critical one,
// else the first high, else the head of the list, else nil.
func Featured(insights []domain.Insight) *domain.Insight {
	for i := range insights {
		if insights[i].Severity == domain.SeverityCritical {
			return &insights[i]
		}
	}
	for i := range insights {
		if insights[i].Severity == domain.SeverityHigh {
			return &insights[i]
		}
	}
	if len(insights) > 0 {
		return &insights[0]
	}
	return nil
}
