// Package api pkg/api/interfaces.go
package api

//go:generate mockgen -destination=mock_api.go -package=api github.com/shahgahmed/llama-time/pkg/api Investigator,WidgetResolver,MonitorClient,ChatClient,DashboardStore

import (
	"context"

	"github.com/shahgahmed/llama-time/pkg/llm"
	"github.com/shahgahmed/llama-time/pkg/models"
	"github.com/shahgahmed/llama-time/pkg/operator"
	"github.com/shahgahmed/llama-time/pkg/store"
)

// Investigator runs an AI investigation for a monitor.
type Investigator interface {
	Investigate(ctx context.Context, monitorID int64) (*operator.InvestigationResult, error)
}

// WidgetResolver fetches widget data for a time range.
type WidgetResolver interface {
	Resolve(ctx context.Context, cfg models.WidgetConfig, timeRange models.TimeRange) models.WidgetData
	ResolveAll(ctx context.Context, dashboard *models.Dashboard)
}

// MonitorClient proxies monitor lookups to the vendor.
type MonitorClient interface {
	GetMonitor(ctx context.Context, id int64) (*models.Monitor, error)
}

// ChatClient relays a user message (optionally with an image) to the
// LLM.
type ChatClient interface {
	Chat(ctx context.Context, message, imageBase64 string) (*llm.Completion, error)
}

// DashboardStore persists dashboard blobs.
type DashboardStore interface {
	Save(ctx context.Context, dashboard *models.Dashboard) error
	Get(ctx context.Context, id string) (*models.Dashboard, error)
	List(ctx context.Context) ([]store.DashboardSummary, error)
	Delete(ctx context.Context, id string) error
}
