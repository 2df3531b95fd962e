package metrics

import (
	"context"

	"github.com/de-tools/insight-atlas/pkg/models/domain"
)

// Provider is the metrics-provider boundary: it supplies the aggregated
// snapshot the engine consumes and forwards re-aggregation requests
// upstream. Implementations: SQLite-backed local store and the remote
// aggregation service client.
type Provider interface {
	GetSnapshot(ctx context.Context) (domain.MetricsSnapshot, error)
	Refresh(ctx context.Context) error
}
