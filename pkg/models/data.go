// Package models pkg/models/data.go
package models

import (
	"encoding/json"
	"fmt"
	"time"
)

// WidgetData is the tagged union of per-type widget payloads. A
// variant may carry an Error string and/or Loading flag instead of
// data, signaling fetch state to the renderer.
type WidgetData interface {
	DataType() WidgetType
}

// DataPoint is one sample of a series, timestamp in Unix milliseconds.
type DataPoint struct {
	Timestamp int64   `json:"timestamp"`
	Value     float64 `json:"value"`
}

// Series is a named, time-ordered sequence of points.
type Series struct {
	Name string      `json:"name"`
	Data []DataPoint `json:"data"`
}

type TimeseriesData struct {
	Type    WidgetType `json:"type"`
	Series  []Series   `json:"series"`
	Loading bool       `json:"loading,omitempty"`
	Error   string     `json:"error,omitempty"`
}

func (TimeseriesData) DataType() WidgetType { return WidgetTimeseries }

// Trend describes the direction of a metric between its two most
// recent points.
type Trend string

const (
	TrendUp     Trend = "up"
	TrendDown   Trend = "down"
	TrendStable Trend = "stable"
)

// MetricStatus is the threshold-derived health of a scalar metric.
type MetricStatus string

const (
	MetricStatusOK       MetricStatus = "ok"
	MetricStatusWarning  MetricStatus = "warning"
	MetricStatusCritical MetricStatus = "critical"
)

type MetricData struct {
	Type          WidgetType   `json:"type"`
	Value         float64      `json:"value"`
	Unit          string       `json:"unit,omitempty"`
	Trend         Trend        `json:"trend,omitempty"`
	ChangePercent float64      `json:"changePercent,omitempty"`
	Status        MetricStatus `json:"status,omitempty"`
	Loading       bool         `json:"loading,omitempty"`
	Error         string       `json:"error,omitempty"`
}

func (MetricData) DataType() WidgetType { return WidgetMetric }

// LogLevel classifies a log entry.
type LogLevel string

const (
	LogLevelError LogLevel = "error"
	LogLevelWarn  LogLevel = "warn"
	LogLevelInfo  LogLevel = "info"
	LogLevelDebug LogLevel = "debug"
)

type LogEntry struct {
	ID         string         `json:"id"`
	Timestamp  int64          `json:"timestamp"` // Unix milliseconds
	Level      LogLevel       `json:"level"`
	Service    string         `json:"service,omitempty"`
	Message    string         `json:"message"`
	Attributes map[string]any `json:"attributes,omitempty"`
}

type LogsData struct {
	Type       WidgetType `json:"type"`
	Entries    []LogEntry `json:"entries"`
	TotalCount int        `json:"totalCount,omitempty"`
	Loading    bool       `json:"loading,omitempty"`
	Error      string     `json:"error,omitempty"`
}

func (LogsData) DataType() WidgetType { return WidgetLogs }

// AlertStatus is the internal four-value monitor state.
type AlertStatus string

const (
	AlertStatusOK     AlertStatus = "ok"
	AlertStatusAlert  AlertStatus = "alert"
	AlertStatusWarn   AlertStatus = "warn"
	AlertStatusNoData AlertStatus = "no_data"
)

type AlertStatusData struct {
	Type          WidgetType  `json:"type"`
	Status        AlertStatus `json:"status"`
	MonitorName   string      `json:"monitorName"`
	LastTriggered *time.Time  `json:"lastTriggered,omitempty"`
	Message       string      `json:"message,omitempty"`
	Loading       bool        `json:"loading,omitempty"`
	Error         string      `json:"error,omitempty"`
}

func (AlertStatusData) DataType() WidgetType { return WidgetAlertStatus }

type MarkdownData struct {
	Type    WidgetType `json:"type"`
	Content string     `json:"content"`
}

func (MarkdownData) DataType() WidgetType { return WidgetMarkdown }

// UnmarshalWidgetData decodes one data variant by its type tag.
func UnmarshalWidgetData(raw json.RawMessage) (WidgetData, error) {
	var tag struct {
		Type WidgetType `json:"type"`
	}

	if err := json.Unmarshal(raw, &tag); err != nil {
		return nil, err
	}

	switch tag.Type {
	case WidgetTimeseries:
		var d TimeseriesData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}

		return d, nil
	case WidgetMetric:
		var d MetricData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}

		return d, nil
	case WidgetLogs:
		var d LogsData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}

		return d, nil
	case WidgetAlertStatus:
		var d AlertStatusData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}

		return d, nil
	case WidgetMarkdown:
		var d MarkdownData
		if err := json.Unmarshal(raw, &d); err != nil {
			return nil, err
		}

		return d, nil
	default:
		return nil, fmt.Errorf("%w: %q", errUnknownWidgetType, tag.Type)
	}
}
