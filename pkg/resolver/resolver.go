// Package resolver pkg/resolver/resolver.go
//
// The resolver turns one widget's config plus the dashboard time
// range into that widget's data. It never returns an error to the
// caller: vendor failures and empty result sets degrade to synthetic
// sample data (except alert_status, where a monitor's state is never
// fabricated).
package resolver

import (
	"context"
	"encoding/json"
	"math/rand"
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"

	"github.com/shahgahmed/llama-time/pkg/models"
)

const (
	defaultLogLimit = 50

	// Bound on concurrent vendor calls during a full-dashboard resolve.
	maxConcurrentResolves = 4
)

// Resolver fetches widget data for a dashboard's time window.
type Resolver struct {
	client DataClient
	logger zerolog.Logger

	// rng feeds the sample-data generators only; the success path is
	// deterministic under stable vendor responses.
	mu  sync.Mutex
	rng *rand.Rand
}

// New creates a Resolver. The random source seeds the sample-data
// generators so tests can pin shapes without pinning values.
func New(client DataClient, rng *rand.Rand, logger zerolog.Logger) *Resolver {
	return &Resolver{
		client: client,
		rng:    rng,
		logger: logger.With().Str("component", "resolver").Logger(),
	}
}

func (r *Resolver) randFloat() float64 {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.Float64()
}

func (r *Resolver) randIntN(n int) int {
	r.mu.Lock()
	defer r.mu.Unlock()

	return r.rng.Intn(n)
}

// Resolve fetches the data for one widget config within timeRange.
func (r *Resolver) Resolve(ctx context.Context, cfg models.WidgetConfig, timeRange models.TimeRange) models.WidgetData {
	switch c := cfg.(type) {
	case models.TimeseriesConfig:
		return r.resolveTimeseries(ctx, c, timeRange)
	case models.MetricConfig:
		return r.resolveMetric(ctx, c, timeRange)
	case models.LogsConfig:
		return r.resolveLogs(ctx, c, timeRange)
	case models.AlertStatusConfig:
		return r.resolveAlertStatus(ctx, c)
	case models.MarkdownConfig:
		return models.MarkdownData{Type: models.WidgetMarkdown, Content: c.Content}
	default:
		return models.MarkdownData{Type: models.WidgetMarkdown, Content: ""}
	}
}

// ResolveAll fills Data for every widget of the dashboard. Fetches
// run concurrently; a failure in one widget never affects siblings.
func (r *Resolver) ResolveAll(ctx context.Context, dashboard *models.Dashboard) {
	var g errgroup.Group

	g.SetLimit(maxConcurrentResolves)

	for i := range dashboard.Widgets {
		widget := &dashboard.Widgets[i]

		g.Go(func() error {
			widget.Data = r.Resolve(ctx, widget.Config, dashboard.TimeRange)
			return nil
		})
	}

	_ = g.Wait()
}

func (r *Resolver) resolveTimeseries(ctx context.Context, cfg models.TimeseriesConfig, timeRange models.TimeRange) models.WidgetData {
	from := timeRange.From.Unix()
	to := timeRange.To.Unix()

	resp, err := r.client.QueryMetrics(ctx, cfg.Query, from, to)
	if err != nil {
		r.logger.Debug().Err(err).Str("query", cfg.Query).Msg("metric query failed, substituting sample series")

		return models.TimeseriesData{
			Type:   models.WidgetTimeseries,
			Series: []models.Series{r.sampleSeries(cfg.Query, from*1000, to*1000)},
		}
	}

	series := make([]models.Series, 0, len(resp.Series))

	for i := range resp.Series {
		s := &resp.Series[i]

		name := s.Metric
		if name == "" {
			name = cfg.Query
		}

		points := make([]models.DataPoint, 0, len(s.PointList))

		for _, p := range s.PointList {
			if len(p) < 2 || p[0] == nil {
				continue
			}

			var value float64
			if p[1] != nil {
				value = *p[1]
			}

			points = append(points, models.DataPoint{
				Timestamp: int64(*p[0]),
				Value:     value,
			})
		}

		series = append(series, models.Series{Name: name, Data: points})
	}

	if allSeriesEmpty(series) {
		series = append(series, r.sampleSeries(cfg.Query, from*1000, to*1000))
	}

	return models.TimeseriesData{Type: models.WidgetTimeseries, Series: series}
}

func allSeriesEmpty(series []models.Series) bool {
	for i := range series {
		if len(series[i].Data) > 0 {
			return false
		}
	}

	return true
}

func (r *Resolver) resolveMetric(ctx context.Context, cfg models.MetricConfig, timeRange models.TimeRange) models.WidgetData {
	resp, err := r.client.QueryMetrics(ctx, cfg.Query, timeRange.From.Unix(), timeRange.To.Unix())
	if err != nil {
		r.logger.Debug().Err(err).Str("query", cfg.Query).Msg("metric query failed, substituting sample value")

		return r.sampleMetric()
	}

	if len(resp.Series) == 0 || len(resp.Series[0].PointList) == 0 {
		return r.sampleMetric()
	}

	pointlist := resp.Series[0].PointList

	value := pointValue(pointlist[len(pointlist)-1])

	trend := models.TrendStable

	var changePercent float64

	if len(pointlist) > 1 {
		previous := pointValue(pointlist[len(pointlist)-2])
		if previous != 0 {
			changePercent = (value - previous) / previous * 100
		}

		switch {
		case changePercent > 0:
			trend = models.TrendUp
		case changePercent < 0:
			trend = models.TrendDown
		}
	}

	return models.MetricData{
		Type:          models.WidgetMetric,
		Value:         value,
		Trend:         trend,
		ChangePercent: changePercent,
		Status:        statusForValue(value, cfg.Thresholds),
	}
}

func pointValue(point []*float64) float64 {
	if len(point) < 2 || point[1] == nil {
		return 0
	}

	return *point[1]
}

// statusForValue applies the configured thresholds; without any the
// status is ok.
func statusForValue(value float64, thresholds *models.Thresholds) models.MetricStatus {
	if thresholds == nil {
		return models.MetricStatusOK
	}

	if thresholds.Critical != nil && value >= *thresholds.Critical {
		return models.MetricStatusCritical
	}

	if thresholds.Warning != nil && value >= *thresholds.Warning {
		return models.MetricStatusWarning
	}

	return models.MetricStatusOK
}

func (r *Resolver) resolveLogs(ctx context.Context, cfg models.LogsConfig, timeRange models.TimeRange) models.WidgetData {
	limit := cfg.Limit
	if limit == 0 {
		limit = defaultLogLimit
	}

	from := timeRange.From.Format(time.RFC3339)
	to := timeRange.To.Format(time.RFC3339)

	resp, err := r.client.SearchLogs(ctx, cfg.Query, from, to, limit)
	if err != nil {
		r.logger.Debug().Err(err).Str("query", cfg.Query).Msg("log search failed, substituting sample logs")

		return r.sampleLogsData()
	}

	entries := make([]models.LogEntry, 0, len(resp.Data))

	for i := range resp.Data {
		event := &resp.Data[i]

		level := models.LogLevel(event.Attributes.Status)
		if level == "" {
			level = models.LogLevelInfo
		}

		message := event.Attributes.Message
		if message == "" {
			if dump, err := json.Marshal(event.Attributes.Rest); err == nil {
				message = string(dump)
			}
		}

		var timestamp int64
		if ts, err := time.Parse(time.RFC3339, event.Attributes.Timestamp); err == nil {
			timestamp = ts.UnixMilli()
		}

		entries = append(entries, models.LogEntry{
			ID:         event.ID,
			Timestamp:  timestamp,
			Level:      level,
			Service:    event.Attributes.Service,
			Message:    message,
			Attributes: event.Attributes.Rest,
		})
	}

	if len(entries) == 0 {
		return r.sampleLogsData()
	}

	data := models.LogsData{Type: models.WidgetLogs, Entries: entries}
	if resp.Meta != nil && resp.Meta.Page != nil {
		data.TotalCount = resp.Meta.Page.TotalCount
	}

	return data
}

var vendorStateMap = map[models.MonitorState]models.AlertStatus{
	models.MonitorStateOK:     models.AlertStatusOK,
	models.MonitorStateAlert:  models.AlertStatusAlert,
	models.MonitorStateWarn:   models.AlertStatusWarn,
	models.MonitorStateNoData: models.AlertStatusNoData,
}

// MapMonitorState maps the vendor overall-state enumeration to the
// internal status; unknown states degrade to no_data.
func MapMonitorState(state models.MonitorState) models.AlertStatus {
	if status, ok := vendorStateMap[state]; ok {
		return status
	}

	return models.AlertStatusNoData
}

// resolveAlertStatus deliberately never fabricates a status on
// failure: a missing monitor is reported as no_data, not guessed.
func (r *Resolver) resolveAlertStatus(ctx context.Context, cfg models.AlertStatusConfig) models.WidgetData {
	monitor, err := r.client.GetMonitor(ctx, cfg.MonitorID)
	if err != nil {
		r.logger.Debug().Err(err).Int64("monitor_id", cfg.MonitorID).Msg("monitor lookup failed")

		return models.AlertStatusData{
			Type:        models.WidgetAlertStatus,
			Status:      models.AlertStatusNoData,
			MonitorName: "Unknown",
			Error:       "Failed to fetch monitor status",
		}
	}

	data := models.AlertStatusData{
		Type:        models.WidgetAlertStatus,
		Status:      MapMonitorState(monitor.OverallState),
		MonitorName: monitor.Name,
		Message:     monitor.Message,
	}

	if monitor.OverallState != models.MonitorStateOK {
		now := time.Now()
		data.LastTriggered = &now
	}

	return data
}
