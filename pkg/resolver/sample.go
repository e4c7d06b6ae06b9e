// Package resolver pkg/resolver/sample.go
//
// Synthetic sample data keeps demo dashboards populated when the
// vendor returns nothing. Shapes are fixed; values are random.
package resolver

import (
	"math"
	"strings"

	"github.com/shahgahmed/llama-time/pkg/models"
)

const (
	sampleSeriesPoints = 20
	sampleSeasonCycles = 4

	sampleLogsMin = 5
	sampleLogsMax = 10
)

// metricProfile shapes a synthetic series for one class of metric.
type metricProfile struct {
	base      float64
	amplitude float64
	trendBias float64
	seasonal  float64
	percent   bool // clamp values to [0,100]
}

type metricClass struct {
	keywords []string
	profile  metricProfile
}

// Keyword order matters: the first class whose keyword matches wins.
var metricClasses = []metricClass{
	{
		keywords: []string{"queue"},
		profile:  metricProfile{base: 20, amplitude: 15, trendBias: 0.5, seasonal: 0.6},
	},
	{
		keywords: []string{"memory", "cpu"},
		profile:  metricProfile{base: 65, amplitude: 12, trendBias: 0.2, seasonal: 0.5, percent: true},
	},
	{
		keywords: []string{"error", "fail"},
		profile:  metricProfile{base: 3, amplitude: 4, trendBias: 0.8, seasonal: 0.3},
	},
	{
		keywords: []string{"latency", "response", "duration"},
		profile:  metricProfile{base: 250, amplitude: 80, trendBias: 0.4, seasonal: 0.7},
	},
	{
		keywords: []string{"throughput", "requests", "rate"},
		profile:  metricProfile{base: 1200, amplitude: 300, trendBias: -0.2, seasonal: 0.9},
	},
}

var defaultProfile = metricProfile{base: 50, amplitude: 10, trendBias: 0, seasonal: 0.5}

func classifyMetric(name string) metricProfile {
	lower := strings.ToLower(name)

	for _, class := range metricClasses {
		for _, keyword := range class.keywords {
			if strings.Contains(lower, keyword) {
				return class.profile
			}
		}
	}

	return defaultProfile
}

// sampleSeries generates one synthetic series named after the query,
// with sampleSeriesPoints points evenly spaced across [fromMs, toMs].
// Each point combines a linear trend, a seasonal sine term, and
// uniform noise; the amplitude jitters a little per step.
func (r *Resolver) sampleSeries(query string, fromMs, toMs int64) models.Series {
	profile := classifyMetric(query)

	interval := (toMs - fromMs) / sampleSeriesPoints
	amplitude := profile.amplitude

	points := make([]models.DataPoint, 0, sampleSeriesPoints)

	for i := 0; i < sampleSeriesPoints; i++ {
		progress := float64(i) / float64(sampleSeriesPoints-1)

		trend := profile.base + profile.trendBias*progress*30
		seasonal := math.Sin(progress*sampleSeasonCycles*2*math.Pi) * amplitude * profile.seasonal
		noise := (r.randFloat() - 0.5) * amplitude

		value := trend + seasonal + noise

		if value < 0 {
			value = 0
		}

		if profile.percent && value > 100 {
			value = 100
		}

		points = append(points, models.DataPoint{
			Timestamp: fromMs + int64(i)*interval,
			Value:     math.Round(value*100) / 100,
		})

		amplitude *= 1 + (r.randFloat()-0.5)*0.03
	}

	return models.Series{Name: query, Data: points}
}

// sampleMetric fabricates a plausible scalar reading: value in
// [0,100), random trend and change percent, status from the fixed
// 60/80 cutoffs.
func (r *Resolver) sampleMetric() models.MetricData {
	value := r.randFloat() * 100

	trends := []models.Trend{models.TrendUp, models.TrendDown, models.TrendStable}

	status := models.MetricStatusOK

	switch {
	case value > 80:
		status = models.MetricStatusCritical
	case value > 60:
		status = models.MetricStatusWarning
	}

	return models.MetricData{
		Type:          models.WidgetMetric,
		Value:         value,
		Trend:         trends[r.randIntN(len(trends))],
		ChangePercent: (r.randFloat() - 0.5) * 20,
		Status:        status,
	}
}

type sampleLogTemplate struct {
	level   models.LogLevel
	message string
}

var sampleLogPool = []sampleLogTemplate{
	{models.LogLevelError, "Connection timeout to database"},
	{models.LogLevelInfo, "Successfully processed request"},
	{models.LogLevelWarn, "Rate limit warning: approaching threshold"},
	{models.LogLevelDebug, "Debug: Cache hit for key user_123"},
	{models.LogLevelError, "Error: Failed to parse JSON response"},
}

// sampleLogsData fabricates 5-10 log entries drawn from a fixed pool.
func (r *Resolver) sampleLogsData() models.LogsData {
	count := sampleLogsMin + r.randIntN(sampleLogsMax-sampleLogsMin+1)

	now := timeNowMilli()

	entries := make([]models.LogEntry, 0, count)

	for i := 0; i < count; i++ {
		template := sampleLogPool[r.randIntN(len(sampleLogPool))]

		entries = append(entries, models.LogEntry{
			ID:        sampleLogID(i),
			Timestamp: now - int64(i)*60_000,
			Level:     template.level,
			Service:   "api-service",
			Message:   template.message,
			Attributes: map[string]any{
				"host": "api-server-01",
				"env":  "production",
			},
		})
	}

	return models.LogsData{
		Type:       models.WidgetLogs,
		Entries:    entries,
		TotalCount: count,
	}
}
