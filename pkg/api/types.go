// Package api pkg/api/types.go
package api

import (
	"encoding/json"

	"github.com/shahgahmed/llama-time/pkg/llm"
	"github.com/shahgahmed/llama-time/pkg/models"
)

type errorResponse struct {
	Error string `json:"error"`
}

type investigateResponse struct {
	Success       bool              `json:"success"`
	Investigation string            `json:"investigation"`
	Dashboard     *models.Dashboard `json:"dashboard"`
}

// widgetDataRequest carries one widget's config plus the dashboard
// time range, timestamps as RFC 3339 strings.
type widgetDataRequest struct {
	WidgetConfig json.RawMessage `json:"widgetConfig"`
	TimeRange    *timeRangeBody  `json:"timeRange"`
}

type timeRangeBody struct {
	From string `json:"from"`
	To   string `json:"to"`
}

type widgetDataResponse struct {
	Data models.WidgetData `json:"data"`
}

type chatRequest struct {
	Message string `json:"message"`
	Image   string `json:"image,omitempty"` // base64 JPEG
}

type chatResponse struct {
	Success  bool         `json:"success"`
	Response string       `json:"response"`
	Metrics  []llm.Metric `json:"metrics"`
	ID       string       `json:"id"`
}
