package insight

import "github.com/de-tools/insight-atlas/pkg/models/domain"

// Minimum sample sizes per detector family. A detector given fewer
// records than its floor abstains.
const (
	minTrendPoints       = 4
	minProducts          = 3
	minEntities          = 3
	minSeasonalityPoints = 7
)

// Signal is a detector's candidate insight before scoring and template
// selection. Magnitude is the detector's defining ratio and drives
// deterministic template selection.
type Signal struct {
	Category    domain.Category
	Subcategory string // "decline"/"growth" for the revenue trend split
	Timeframe   domain.Timeframe
	Priority    domain.PriorityMetrics
	Magnitude   float64
	Description string
	Metrics     map[string]string
}

// Detector inspects one slice of normalized metrics and emits zero or
// more candidate signals. Detectors are pure: same input, same output.
type Detector interface {
	Name() string
	Evaluate(m NormalizedMetrics) []Signal
}
