package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
	"github.com/de-tools/insight-atlas/pkg/store/metrics"
)

type provider struct {
	db *sql.DB
}

// NewProvider returns a metrics.Provider reading aggregated metrics
// from the local SQLite tables.
func NewProvider(db *sql.DB) (metrics.Provider, error) {
	if db == nil {
		return nil, fmt.Errorf("database connection is nil")
	}
	return &provider{db: db}, nil
}

func (p *provider) GetSnapshot(ctx context.Context) (domain.MetricsSnapshot, error) {
	revenue, err := p.getRevenue(ctx)
	if err != nil {
		return domain.MetricsSnapshot{}, fmt.Errorf("failed to read monthly revenue: %w", err)
	}
	products, err := p.getProducts(ctx)
	if err != nil {
		return domain.MetricsSnapshot{}, fmt.Errorf("failed to read product metrics: %w", err)
	}
	locations, err := p.getLocations(ctx)
	if err != nil {
		return domain.MetricsSnapshot{}, fmt.Errorf("failed to read location metrics: %w", err)
	}

	return domain.MetricsSnapshot{
		Revenue:   revenue,
		Products:  products,
		Locations: locations,
	}, nil
}

// Refresh is a no-op for the local store: the tables already hold the
// latest aggregates written by the import pipeline.
func (p *provider) Refresh(_ context.Context) error {
	return nil
}

func (p *provider) getRevenue(ctx context.Context) ([]domain.RevenueEntry, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT month, revenue FROM monthly_revenue`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var entries []domain.RevenueEntry
	for rows.Next() {
		var e domain.RevenueEntry
		if err := rows.Scan(&e.Month, &e.Revenue); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}

func (p *provider) getProducts(ctx context.Context) ([]domain.ProductRecord, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT id, name, revenue, profit FROM product_metrics`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []domain.ProductRecord
	for rows.Next() {
		var r domain.ProductRecord
		if err := rows.Scan(&r.ID, &r.Name, &r.Revenue, &r.Profit); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}

func (p *provider) getLocations(ctx context.Context) ([]domain.EntityMetric, error) {
	rows, err := p.db.QueryContext(ctx, `SELECT id, name, revenue FROM location_metrics`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	var records []domain.EntityMetric
	for rows.Next() {
		var r domain.EntityMetric
		if err := rows.Scan(&r.ID, &r.Name, &r.Revenue); err != nil {
			return nil, err
		}
		records = append(records, r)
	}
	return records, rows.Err()
}
