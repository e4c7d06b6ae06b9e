// Package operator pkg/operator/interfaces.go
package operator

//go:generate mockgen -destination=mock_operator.go -package=operator github.com/shahgahmed/llama-time/pkg/operator MonitorClient,DesignClient

import (
	"context"

	"github.com/shahgahmed/llama-time/pkg/llm"
	"github.com/shahgahmed/llama-time/pkg/models"
)

// MonitorClient fetches monitor metadata from the vendor.
type MonitorClient interface {
	GetMonitor(ctx context.Context, id int64) (*models.Monitor, error)
}

// DesignClient asks the LLM for a single-turn completion.
type DesignClient interface {
	Complete(ctx context.Context, systemPrompt, userPrompt string) (*llm.Completion, error)
}
