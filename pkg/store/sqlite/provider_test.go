package sqlite

import (
	"context"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProvider_GetSnapshot(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT month, revenue FROM monthly_revenue`)).
		WillReturnRows(sqlmock.NewRows([]string{"month", "revenue"}).
			AddRow("01/2024", 100.0).
			AddRow("02/2024", 90.0))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, revenue, profit FROM product_metrics`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "revenue", "profit"}).
			AddRow("a", "Widget", 1000.0, 400.0))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT id, name, revenue FROM location_metrics`)).
		WillReturnRows(sqlmock.NewRows([]string{"id", "name", "revenue"}).
			AddRow("1", "Downtown", 500.0))

	provider, err := NewProvider(db)
	require.NoError(t, err)

	snapshot, err := provider.GetSnapshot(context.Background())
	require.NoError(t, err)

	require.Len(t, snapshot.Revenue, 2)
	assert.Equal(t, "01/2024", snapshot.Revenue[0].Month)
	require.Len(t, snapshot.Products, 1)
	assert.Equal(t, "Widget", snapshot.Products[0].Name)
	require.Len(t, snapshot.Locations, 1)
	assert.Equal(t, "Downtown", snapshot.Locations[0].Name)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestProvider_GetSnapshot_QueryError(t *testing.T) {
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT month, revenue FROM monthly_revenue`)).
		WillReturnError(errors.New("table is locked"))

	provider, err := NewProvider(db)
	require.NoError(t, err)

	_, err = provider.GetSnapshot(context.Background())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "monthly revenue")
}

func TestProvider_RefreshIsNoOp(t *testing.T) {
	db, _, err := sqlmock.New()
	require.NoError(t, err)
	defer func() { _ = db.Close() }()

	provider, err := NewProvider(db)
	require.NoError(t, err)

	assert.NoError(t, provider.Refresh(context.Background()))
}

func TestNewProvider_NilDB(t *testing.T) {
	_, err := NewProvider(nil)
	assert.Error(t, err)
}
