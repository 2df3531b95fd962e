package domain

import "time"

// RevenueEntry is a single revenue datapoint as delivered by the metrics
// provider. Month is a raw key: either a bare calendar month name
// ("March") or a "MM/period" composite ("03/2024").
type RevenueEntry struct {
	Month   string
	Revenue float64
}

// MonthlyRevenuePoint is a normalized revenue datapoint. Points produced
// by the normalizer are strictly chronological.
type MonthlyRevenuePoint struct {
	Label   string // display label preserved from the source key
	Month   time.Month
	Period  int // year-like component of a "MM/period" key, 0 when absent
	Revenue float64
}

// SortKey orders points chronologically across periods.
func (p MonthlyRevenuePoint) SortKey() int {
	return p.Period*12 + int(p.Month) - 1
}

// ProductRecord is a per-product aggregate as delivered by the provider.
// Margin is derived during normalization.
type ProductRecord struct {
	ID      string
	Name    string
	Revenue float64
	Profit  float64
}

// ProductMetric is a normalized per-product record with derived margin.
type ProductMetric struct {
	ID      string
	Name    string
	Revenue float64
	Profit  float64
	Margin  float64 // percent; 0 when revenue is 0
}

// EntityMetric is a per-location (or per-customer) revenue aggregate.
type EntityMetric struct {
	ID      string
	Name    string
	Revenue float64
}

// MetricsSnapshot is the full set of aggregated metrics the engine
// consumes. It is a value snapshot: the engine never mutates it and
// holds no reference to it between runs.
type MetricsSnapshot struct {
	Revenue   []RevenueEntry
	Products  []ProductRecord
	Locations []EntityMetric
}
