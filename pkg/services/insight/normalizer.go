package insight

import (
	"math"
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

// NormalizedMetrics is the canonical input shape shared by all
// detectors: a chronological revenue series plus validated per-entity
// records. Records that would poison downstream ratio math (negative
// revenue, non-finite values, unparseable month keys) are dropped here.
type NormalizedMetrics struct {
	Revenue  []domain.MonthlyRevenuePoint
	Products []domain.ProductMetric
	Entities []domain.EntityMetric
}

var monthsByName = map[string]time.Month{
	"january": time.January, "jan": time.January,
	"february": time.February, "feb": time.February,
	"march": time.March, "mar": time.March,
	"april": time.April, "apr": time.April,
	"may":  time.May,
	"june": time.June, "jun": time.June,
	"july": time.July, "jul": time.July,
	"august": time.August, "aug": time.August,
	"september": time.September, "sep": time.September,
	"october": time.October, "oct": time.October,
	"november": time.November, "nov": time.November,
	"december": time.December, "dec": time.December,
}

// Normalize converts a provider snapshot into canonical detector input.
// It is a pure transform: malformed records are excluded, never
// reported as errors.
func Normalize(snapshot domain.MetricsSnapshot) NormalizedMetrics {
	return NormalizedMetrics{
		Revenue:  normalizeRevenue(snapshot.Revenue),
		Products: normalizeProducts(snapshot.Products),
		Entities: normalizeEntities(snapshot.Locations),
	}
}

func normalizeRevenue(entries []domain.RevenueEntry) []domain.MonthlyRevenuePoint {
	points := make([]domain.MonthlyRevenuePoint, 0, len(entries))
	for _, e := range entries {
		if !isFinite(e.Revenue) || e.Revenue < 0 {
			continue
		}
		month, period, ok := parseMonthKey(e.Month)
		if !ok {
			continue
		}
		points = append(points, domain.MonthlyRevenuePoint{
			Label:   strings.TrimSpace(e.Month),
			Month:   month,
			Period:  period,
			Revenue: e.Revenue,
		})
	}

	sort.SliceStable(points, func(i, j int) bool {
		return points[i].SortKey() < points[j].SortKey()
	})
	return points
}

// parseMonthKey accepts a bare calendar month name ("March", "mar") or
// a "MM/period" composite ("03/2024").
func parseMonthKey(key string) (time.Month, int, bool) {
	key = strings.TrimSpace(key)
	if key == "" {
		return 0, 0, false
	}

	if idx := strings.Index(key, "/"); idx >= 0 {
		monthPart := strings.TrimSpace(key[:idx])
		periodPart := strings.TrimSpace(key[idx+1:])

		m, err := strconv.Atoi(monthPart)
		if err != nil || m < 1 || m > 12 {
			return 0, 0, false
		}
		period, err := strconv.Atoi(periodPart)
		if err != nil || period < 0 {
			return 0, 0, false
		}
		return time.Month(m), period, true
	}

	month, ok := monthsByName[strings.ToLower(key)]
	if !ok {
		return 0, 0, false
	}
	return month, 0, true
}

func normalizeProducts(records []domain.ProductRecord) []domain.ProductMetric {
	products := make([]domain.ProductMetric, 0, len(records))
	for _, r := range records {
		if !isFinite(r.Revenue) || !isFinite(r.Profit) || r.Revenue < 0 {
			continue
		}
		margin := 0.0
		if r.Revenue > 0 {
			margin = r.Profit / r.Revenue * 100
		}
		products = append(products, domain.ProductMetric{
			ID:      r.ID,
			Name:    r.Name,
			Revenue: r.Revenue,
			Profit:  r.Profit,
			Margin:  margin,
		})
	}
	return products
}

func normalizeEntities(records []domain.EntityMetric) []domain.EntityMetric {
	entities := make([]domain.EntityMetric, 0, len(records))
	for _, r := range records {
		if !isFinite(r.Revenue) || r.Revenue < 0 {
			continue
		}
		entities = append(entities, r)
	}
	return entities
}

func isFinite(v float64) bool {
	return !math.IsNaN(v) && !math.IsInf(v, 0)
}
