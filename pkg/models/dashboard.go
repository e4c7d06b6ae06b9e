// Package models pkg/models/dashboard.go
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

var errUnknownWidgetType = fmt.Errorf("unknown widget type")

// WidgetType discriminates the widget config and data variants.
type WidgetType string

const (
	WidgetTimeseries  WidgetType = "timeseries"
	WidgetMetric      WidgetType = "metric"
	WidgetLogs        WidgetType = "logs"
	WidgetAlertStatus WidgetType = "alert_status"
	WidgetMarkdown    WidgetType = "markdown"
)

// TimeRange bounds all data-bearing widgets in a dashboard.
type TimeRange struct {
	From    time.Time `json:"from"`
	To      time.Time `json:"to"`
	Display string    `json:"display"` // e.g., "Last 1 hour"
}

// Dashboard is the unit of sharing and viewing: one investigation's
// full widget graph, persisted as a single JSON blob.
type Dashboard struct {
	ID          string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	MonitorID   int64     `json:"monitorId,omitempty"`
	Widgets     []Widget  `json:"widgets"`
	TimeRange   TimeRange `json:"timeRange"`
}

// WidgetLayout places a widget on the 12-column grid.
type WidgetLayout struct {
	X      int `json:"x"`
	Y      int `json:"y"`
	Width  int `json:"width"`
	Height int `json:"height"`
}

// Widget is one panel of a dashboard. Type, Config and Data variants
// are kept mutually consistent by construction.
type Widget struct {
	ID          string       `json:"id"`
	Type        WidgetType   `json:"type"`
	Title       string       `json:"title"`
	Description string       `json:"description,omitempty"`
	Layout      WidgetLayout `json:"layout"`
	Data        WidgetData   `json:"data,omitempty"`
	Config      WidgetConfig `json:"config"`
}

// widgetAlias avoids recursing into Widget.UnmarshalJSON.
type widgetAlias struct {
	ID          string          `json:"id"`
	Type        WidgetType      `json:"type"`
	Title       string          `json:"title"`
	Description string          `json:"description,omitempty"`
	Layout      WidgetLayout    `json:"layout"`
	Data        json.RawMessage `json:"data,omitempty"`
	Config      json.RawMessage `json:"config"`
}

// UnmarshalJSON decodes the config and data variants according to
// their embedded type tag.
func (w *Widget) UnmarshalJSON(b []byte) error {
	var aux widgetAlias
	if err := json.Unmarshal(b, &aux); err != nil {
		return err
	}

	w.ID = aux.ID
	w.Type = aux.Type
	w.Title = aux.Title
	w.Description = aux.Description
	w.Layout = aux.Layout

	if len(aux.Config) > 0 {
		cfg, err := UnmarshalWidgetConfig(aux.Config)
		if err != nil {
			return err
		}

		w.Config = cfg
	}

	if len(aux.Data) > 0 && string(aux.Data) != "null" {
		data, err := UnmarshalWidgetData(aux.Data)
		if err != nil {
			return err
		}

		w.Data = data
	}

	return nil
}

// WidgetConfig is the tagged union of per-type widget configuration.
type WidgetConfig interface {
	ConfigType() WidgetType
}

// Thresholds mark warning/critical cutoffs for metric widgets.
type Thresholds struct {
	Warning  *float64 `json:"warning,omitempty"`
	Critical *float64 `json:"critical,omitempty"`
}

// LineType selects the timeseries rendering style.
type LineType string

const (
	LineTypeLine LineType = "line"
	LineTypeArea LineType = "area"
	LineTypeBar  LineType = "bar"
)

type TimeseriesConfig struct {
	Type       WidgetType `json:"type"`
	Query      string     `json:"query"`
	YAxisLabel string     `json:"yAxisLabel,omitempty"`
	ShowLegend bool       `json:"showLegend,omitempty"`
	LineType   LineType   `json:"lineType,omitempty"`
}

func (TimeseriesConfig) ConfigType() WidgetType { return WidgetTimeseries }

type MetricConfig struct {
	Type        WidgetType  `json:"type"`
	Query       string      `json:"query"`
	Aggregation string      `json:"aggregation,omitempty"`
	Thresholds  *Thresholds `json:"thresholds,omitempty"`
}

func (MetricConfig) ConfigType() WidgetType { return WidgetMetric }

type LogsConfig struct {
	Type          WidgetType `json:"type"`
	Query         string     `json:"query"`
	Limit         int        `json:"limit,omitempty"`
	ShowTimestamp bool       `json:"showTimestamp,omitempty"`
	ShowService   bool       `json:"showService,omitempty"`
}

func (LogsConfig) ConfigType() WidgetType { return WidgetLogs }

type AlertStatusConfig struct {
	Type      WidgetType `json:"type"`
	MonitorID int64      `json:"monitorId"`
}

func (AlertStatusConfig) ConfigType() WidgetType { return WidgetAlertStatus }

type MarkdownConfig struct {
	Type    WidgetType `json:"type"`
	Content string     `json:"content"`
}

func (MarkdownConfig) ConfigType() WidgetType { return WidgetMarkdown }

// UnmarshalWidgetConfig decodes one config variant by its type tag.
func UnmarshalWidgetConfig(raw json.RawMessage) (WidgetConfig, error) {
	var tag struct {
		Type WidgetType `json:"type"`
	}

	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}

	switch tag.Type {
	case WidgetTimeseries:
		var c TimeseriesConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}

		return c, nil
	case WidgetMetric:
		var c MetricConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}

		return c, nil
	case WidgetLogs:
		var c LogsConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}

		return c, nil
	case WidgetAlertStatus:
		var c AlertStatusConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}

		return c, nil
	case WidgetMarkdown:
		var c MarkdownConfig
		if err := json.Unmarshal(raw, &c); err != nil {
			return nil, err
		}

		return c, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownWidgetType, tag.Type)
	}
}
