// Package datadog pkg/datadog/types.go
package datadog

import "encoding/json"

// MetricSeries is one series of a vendor metric-query response.
// Points are [timestamp-ms, value] pairs; the value may be null.
type MetricSeries struct {
	Metric      string       `json:"metric"`
	DisplayName string       `json:"display_name,omitempty"`
	Scope       string       `json:"scope,omitempty"`
	Expression  string       `json:"expression,omitempty"`
	Unit        []string     `json:"unit,omitempty"`
	PointList   [][]*float64 `json:"pointlist"`
}

// MetricQueryResponse is the vendor /api/v1/query response shape.
type MetricQueryResponse struct {
	Status   string         `json:"status"`
	ResType  string         `json:"res_type,omitempty"`
	Query    string         `json:"query,omitempty"`
	FromDate int64          `json:"from_date,omitempty"`
	ToDate   int64          `json:"to_date,omitempty"`
	Series   []MetricSeries `json:"series"`
	Message  string         `json:"message,omitempty"`
}

// LogAttributes carries the typed subset of a log entry's attributes
// alongside the raw attribute map.
type LogAttributes struct {
	Timestamp string         `json:"timestamp"`
	Status    string         `json:"status,omitempty"`
	Service   string         `json:"service,omitempty"`
	Message   string         `json:"message,omitempty"`
	Rest      map[string]any `json:"-"`
}

// UnmarshalJSON keeps the full attribute map in Rest in addition to
// the typed fields.
func (a *LogAttributes) UnmarshalJSON(b []byte) error {
	type alias LogAttributes

	var typed alias
	if err := json.Unmarshal(b, &typed); err != nil {
		return err
	}

	var rest map[string]any
	if err := json.Unmarshal(b, &rest); err != nil {
		return err
	}

	*a = LogAttributes(typed)
	a.Rest = rest

	return nil
}

// LogEvent is one entry of a vendor log-search response.
type LogEvent struct {
	ID         string        `json:"id"`
	Type       string        `json:"type,omitempty"`
	Attributes LogAttributes `json:"attributes"`
}

// LogSearchResponse is the vendor /api/v2/logs/events/search response.
type LogSearchResponse struct {
	Data []LogEvent `json:"data"`
	Meta *LogMeta   `json:"meta,omitempty"`
}

type LogMeta struct {
	Page *LogPageMeta `json:"page,omitempty"`
}

type LogPageMeta struct {
	TotalCount int `json:"total_count,omitempty"`
}

// logSearchRequest is the request body for the log-search endpoint.
type logSearchRequest struct {
	Filter logSearchFilter `json:"filter"`
	Sort   string          `json:"sort"`
	Page   logSearchPage   `json:"page"`
}

type logSearchFilter struct {
	Query string `json:"query"`
	From  string `json:"from"`
	To    string `json:"to"`
}

type logSearchPage struct {
	Limit int `json:"limit"`
}
