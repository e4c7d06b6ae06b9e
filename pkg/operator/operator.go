// Package operator pkg/operator/operator.go
//
// The operator orchestrates an investigation: fetch a monitor, ask
// the LLM to design a dashboard for it, and compose the concrete
// widget grid.
package operator

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/shahgahmed/llama-time/pkg/models"
)

// Operator is the AI investigation engine.
type Operator struct {
	monitors MonitorClient
	llm      DesignClient
	logger   zerolog.Logger
}

// InvestigationResult is the outcome of one investigation.
type InvestigationResult struct {
	Investigation string            `json:"investigation"`
	Dashboard     *models.Dashboard `json:"dashboard"`
}

// New creates an Operator over the given collaborators.
func New(monitors MonitorClient, llmClient DesignClient, logger zerolog.Logger) *Operator {
	return &Operator{
		monitors: monitors,
		llm:      llmClient,
		logger:   logger.With().Str("component", "operator").Logger(),
	}
}

// Investigate looks up the monitor, designs a dashboard for it, and
// composes the result. Only the monitor lookup can fail; design and
// composition always produce a usable dashboard.
func (o *Operator) Investigate(ctx context.Context, monitorID int64) (*InvestigationResult, error) {
	monitor, err := o.monitors.GetMonitor(ctx, monitorID)
	if err != nil {
		return nil, err
	}

	design := o.DesignDashboard(ctx, monitor)
	dashboard := ComposeDashboard(monitor, design)

	o.logger.Info().
		Int64("monitor_id", monitorID).
		Str("dashboard_id", dashboard.ID).
		Int("widgets", len(dashboard.Widgets)).
		Str("time_range", dashboard.TimeRange.Display).
		Msg("investigation dashboard composed")

	investigation := design.Investigation
	if investigation == "" {
		investigation = "Investigation in progress..."
	}

	return &InvestigationResult{
		Investigation: investigation,
		Dashboard:     dashboard,
	}, nil
}
