// Package models pkg/models/design.go
package models

// DashboardDesign is the LLM-proposed (or fallback) abstract plan for
// a dashboard. It exists only during composition.
type DashboardDesign struct {
	Investigation  string         `json:"investigation"`
	Widgets        []WidgetDesign `json:"widgets"`
	LayoutStrategy string         `json:"layout_strategy"`
	TimeRange      string         `json:"time_range"`
}

// WidgetDesign is one planned widget. Width and height are grid units;
// zero means "use the per-type default".
type WidgetDesign struct {
	Type          string      `json:"type"`
	Title         string      `json:"title"`
	Query         string      `json:"query,omitempty"`
	Visualization string      `json:"visualization,omitempty"`
	Width         int         `json:"width,omitempty"`
	Height        int         `json:"height,omitempty"`
	Reasoning     string      `json:"reasoning,omitempty"`
	YAxisLabel    string      `json:"yAxisLabel,omitempty"`
	Aggregation   string      `json:"aggregation,omitempty"`
	Thresholds    *Thresholds `json:"thresholds,omitempty"`
	Limit         int         `json:"limit,omitempty"`
	Content       string      `json:"content,omitempty"`
}
