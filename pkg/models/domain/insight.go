package domain

type Severity string

const (
	SeverityCritical Severity = "critical"
	SeverityHigh     Severity = "high"
	SeverityMedium   Severity = "medium"
	SeverityLow      Severity = "low"
)

type Category string

const (
	CategoryRevenue  Category = "Revenue"
	CategoryPricing  Category = "Pricing"
	CategoryProduct  Category = "Product"
	CategoryRegional Category = "Regional"
	CategoryPlanning Category = "Planning"
)

type Timeframe string

const (
	TimeframeImmediate  Timeframe = "immediate"
	TimeframeShortTerm  Timeframe = "short-term"
	TimeframeMediumTerm Timeframe = "medium-term"
	TimeframeLongTerm   Timeframe = "long-term"
)

// PriorityMetrics carries a detector's raw priority signals. Urgency,
// Impact and Scope are in 1..5; Trend is in -5..5 with negative values
// marking deteriorating conditions.
type PriorityMetrics struct {
	Urgency int
	Impact  int
	Scope   int
	Trend   int
}

// Insight is the engine's sole output unit: one prioritized,
// human-readable business recommendation.
type Insight struct {
	Title          string
	Recommendation string
	Description    string
	Actions        []string
	Category       Category
	Timeframe      Timeframe
	Priority       float64
	Severity       Severity
	Metrics        map[string]string
}
