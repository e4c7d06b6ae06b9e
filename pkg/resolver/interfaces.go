// Package resolver pkg/resolver/interfaces.go
package resolver

//go:generate mockgen -destination=mock_resolver.go -package=resolver github.com/shahgahmed/llama-time/pkg/resolver DataClient

import (
	"context"

	"github.com/shahgahmed/llama-time/pkg/datadog"
	"github.com/shahgahmed/llama-time/pkg/models"
)

// DataClient is the vendor surface the resolver needs: metric query,
// log search, and monitor lookup.
type DataClient interface {
	QueryMetrics(ctx context.Context, query string, from, to int64) (*datadog.MetricQueryResponse, error)
	SearchLogs(ctx context.Context, query, from, to string, limit int) (*datadog.LogSearchResponse, error)
	GetMonitor(ctx context.Context, id int64) (*models.Monitor, error)
}
