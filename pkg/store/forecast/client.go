package forecast

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/hashicorp/go-retryablehttp"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
	"github.com/de-tools/insight-atlas/pkg/store/metrics"
)

// Client talks to the external prediction/aggregation service, which
// the engine treats purely as a data source.
type Client struct {
	baseURL string
	http    *retryablehttp.Client
}

type snapshotResponse struct {
	RevenueData []struct {
		Month   string  `json:"month"`
		Revenue float64 `json:"revenue"`
	} `json:"revenue_data"`
	ProductMetrics []struct {
		ID      string  `json:"id"`
		Name    string  `json:"name"`
		Revenue float64 `json:"revenue"`
		Profit  float64 `json:"profit"`
	} `json:"product_metrics"`
	LocationMetrics []struct {
		ID      string  `json:"id"`
		Name    string  `json:"name"`
		Revenue float64 `json:"revenue"`
	} `json:"location_metrics"`
}

// NewClient returns a metrics.Provider backed by the remote service.
func NewClient(baseURL string) metrics.Provider {
	httpClient := retryablehttp.NewClient()
	httpClient.RetryMax = 3
	httpClient.RetryWaitMin = 200 * time.Millisecond
	httpClient.RetryWaitMax = 2 * time.Second
	httpClient.Logger = nil

	return &Client{
		baseURL: baseURL,
		http:    httpClient,
	}
}

func (c *Client) GetSnapshot(ctx context.Context) (domain.MetricsSnapshot, error) {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+"/api/v1/metrics/snapshot", nil)
	if err != nil {
		return domain.MetricsSnapshot{}, fmt.Errorf("failed to build snapshot request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.MetricsSnapshot{}, fmt.Errorf("failed to fetch metrics snapshot: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK {
		return domain.MetricsSnapshot{}, fmt.Errorf("metrics service returned status %d", resp.StatusCode)
	}

	var payload snapshotResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return domain.MetricsSnapshot{}, fmt.Errorf("failed to decode metrics snapshot: %w", err)
	}

	return mapSnapshot(payload), nil
}

// Refresh asks the upstream service to re-run its aggregation.
func (c *Client) Refresh(ctx context.Context) error {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/api/v1/metrics/aggregate", nil)
	if err != nil {
		return fmt.Errorf("failed to build refresh request: %w", err)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("failed to trigger re-aggregation: %w", err)
	}
	defer func() { _ = resp.Body.Close() }()

	if resp.StatusCode != http.StatusOK && resp.StatusCode != http.StatusAccepted {
		return fmt.Errorf("metrics service returned status %d", resp.StatusCode)
	}
	return nil
}

func mapSnapshot(payload snapshotResponse) domain.MetricsSnapshot {
	snapshot := domain.MetricsSnapshot{}
	for _, r := range payload.RevenueData {
		snapshot.Revenue = append(snapshot.Revenue, domain.RevenueEntry{
			Month:   r.Month,
			Revenue: r.Revenue,
		})
	}
	for _, p := range payload.ProductMetrics {
		snapshot.Products = append(snapshot.Products, domain.ProductRecord{
			ID:      p.ID,
			Name:    p.Name,
			Revenue: p.Revenue,
			Profit:  p.Profit,
		})
	}
	for _, l := range payload.LocationMetrics {
		snapshot.Locations = append(snapshot.Locations, domain.EntityMetric{
			ID:      l.ID,
			Name:    l.Name,
			Revenue: l.Revenue,
		})
	}
	return snapshot
}
