package api

import "github.com/de-tools/insight-atlas/pkg/models/domain"

type Insight struct {
	Title          string            `json:"title"`
	Recommendation string            `json:"recommendation"`
	Description    string            `json:"description"`
	Actions        []string          `json:"actions"`
	Category       string            `json:"category"`
	Timeframe      string            `json:"timeframe"`
	Priority       float64           `json:"priority"`
	Severity       string            `json:"severity"`
	Metrics        map[string]string `json:"metrics"`
}

// Summary is a render convenience: severity counts plus the featured
// insight. Derived entirely from the insight list.
type Summary struct {
	Total      int            `json:"total"`
	BySeverity map[string]int `json:"by_severity"`
	Featured   *Insight       `json:"featured,omitempty"`
}

type InsightsResponse struct {
	Status   string    `json:"status"`
	Insights []Insight `json:"insights"`
	Summary  *Summary  `json:"summary,omitempty"`
	Error    string    `json:"error,omitempty"`
}

type StatusResponse struct {
	Status string `json:"status"`
	Error  string `json:"error,omitempty"`
}

func MapInsight(in domain.Insight) Insight {
	return Insight{
		Title:          in.Title,
		Recommendation: in.Recommendation,
		Description:    in.Description,
		Actions:        in.Actions,
		Category:       string(in.Category),
		Timeframe:      string(in.Timeframe),
		Priority:       in.Priority,
		Severity:       string(in.Severity),
		Metrics:        in.Metrics,
	}
}

func MapInsights(in []domain.Insight) []Insight {
	out := make([]Insight, 0, len(in))
	for _, i := range in {
		out = append(out, MapInsight(i))
	}
	return out
}
