package sqlite

import (
	"database/sql"
	"fmt"

	_ "modernc.org/sqlite"
)

const monthlyRevenueSchema = `
	CREATE TABLE IF NOT EXISTS monthly_revenue (
		month VARCHAR NOT NULL,
		revenue DOUBLE NOT NULL,
		PRIMARY KEY (month)
	);
`

const productMetricsSchema = `
	CREATE TABLE IF NOT EXISTS product_metrics (
		id VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		revenue DOUBLE NOT NULL,
		profit DOUBLE NOT NULL,
		PRIMARY KEY (id)
	);
`

const locationMetricsSchema = `
	CREATE TABLE IF NOT EXISTS location_metrics (
		id VARCHAR NOT NULL,
		name VARCHAR NOT NULL,
		revenue DOUBLE NOT NULL,
		PRIMARY KEY (id)
	);
`

var bootQueries = []string{
	monthlyRevenueSchema,
	productMetricsSchema,
	locationMetricsSchema,
}

type Settings struct {
	DbPath string
}

func NewDB(settings Settings) (*sql.DB, error) {
	db, err := sql.Open("sqlite", settings.DbPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open sqlite database: %w", err)
	}

	for _, query := range bootQueries {
		if _, err := db.Exec(query); err != nil {
			_ = db.Close()
			return nil, fmt.Errorf("failed to run boot query: %w", err)
		}
	}
	return db, nil
}
