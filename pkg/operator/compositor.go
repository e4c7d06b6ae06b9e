// Package operator pkg/operator/compositor.go
package operator

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	"github.com/shahgahmed/llama-time/pkg/models"
)

// timeNow is swapped in tests.
var timeNow = time.Now

const (
	gridColumns = 12

	// The status widget occupies rows 0-1; wrapped rows start below it.
	statusWidgetWidth  = 3
	statusWidgetHeight = 2

	notesWidgetHeight = 3

	defaultTimeRangeToken = "1h"
)

var timeRangeDurations = map[string]time.Duration{
	"1h":  time.Hour,
	"3h":  3 * time.Hour,
	"6h":  6 * time.Hour,
	"12h": 12 * time.Hour,
	"24h": 24 * time.Hour,
	"2d":  48 * time.Hour,
	"7d":  7 * 24 * time.Hour,
}

var timeRangeDisplays = map[string]string{
	"1h":  "Last 1 hour",
	"3h":  "Last 3 hours",
	"6h":  "Last 6 hours",
	"12h": "Last 12 hours",
	"24h": "Last 24 hours",
	"2d":  "Last 2 days",
	"7d":  "Last 7 days",
}

// ResolveTimeRange turns a design time-range token into concrete
// bounds ending now. Unrecognized tokens default to the last hour.
func ResolveTimeRange(token string) models.TimeRange {
	duration, ok := timeRangeDurations[token]
	if !ok {
		duration = timeRangeDurations[defaultTimeRangeToken]
	}

	display, ok := timeRangeDisplays[token]
	if !ok {
		display = timeRangeDisplays[defaultTimeRangeToken]
	}

	now := timeNow()

	return models.TimeRange{
		From:    now.Add(-duration),
		To:      now,
		Display: display,
	}
}

// ComposeDashboard turns a widget plan into a concrete dashboard: the
// monitor status widget first, the designed widgets flowed across the
// 12-column grid, and a generated investigation guide last.
func ComposeDashboard(monitor *models.Monitor, design *models.DashboardDesign) *models.Dashboard {
	timeRange := ResolveTimeRange(design.TimeRange)

	description := design.LayoutStrategy
	if description == "" {
		description = fmt.Sprintf("AI-designed dashboard for investigating monitor %d", monitor.ID)
	}

	dashboard := &models.Dashboard{
		ID:          uuid.NewString(),
		Title:       "AI Investigation: " + monitor.Name,
		Description: description,
		CreatedAt:   timeNow(),
		MonitorID:   monitor.ID,
		TimeRange:   timeRange,
	}

	dashboard.Widgets = append(dashboard.Widgets, models.Widget{
		ID:     uuid.NewString(),
		Type:   models.WidgetAlertStatus,
		Title:  "Monitor Status",
		Layout: models.WidgetLayout{X: 0, Y: 0, Width: statusWidgetWidth, Height: statusWidgetHeight},
		Config: models.AlertStatusConfig{
			Type:      models.WidgetAlertStatus,
			MonitorID: monitor.ID,
		},
	})

	x, y := statusWidgetWidth, 0

	for i := range design.Widgets {
		widget := widgetFromDesign(&design.Widgets[i], x, y)
		if widget == nil {
			continue
		}

		dashboard.Widgets = append(dashboard.Widgets, *widget)

		x += widget.Layout.Width
		if x >= gridColumns {
			x = 0

			y++
			if y < statusWidgetHeight {
				y = statusWidgetHeight
			}
		}
	}

	maxY := notesWidgetHeight
	for i := range dashboard.Widgets {
		if bottom := dashboard.Widgets[i].Layout.Y + dashboard.Widgets[i].Layout.Height; bottom > maxY {
			maxY = bottom
		}
	}

	dashboard.Widgets = append(dashboard.Widgets, models.Widget{
		ID:     uuid.NewString(),
		Type:   models.WidgetMarkdown,
		Title:  "Investigation Guide",
		Layout: models.WidgetLayout{X: 0, Y: maxY, Width: gridColumns, Height: notesWidgetHeight},
		Config: models.MarkdownConfig{
			Type:    models.WidgetMarkdown,
			Content: formatInvestigationNotes(monitor, design),
		},
	})

	return dashboard
}

func defaultWidgetSize(widgetType models.WidgetType) (width, height int) {
	switch widgetType {
	case models.WidgetTimeseries:
		return 6, 3 // charts need room
	case models.WidgetMetric:
		return 3, 2
	case models.WidgetLogs:
		return 6, 4 // width for readability, height for entries
	case models.WidgetMarkdown:
		return 6, 3
	default:
		return 4, 2
	}
}

// widgetFromDesign places one designed widget at (x, y). Unknown
// widget types yield nil and are dropped from the dashboard.
func widgetFromDesign(design *models.WidgetDesign, x, y int) *models.Widget {
	widgetType := models.WidgetType(design.Type)

	defaultWidth, defaultHeight := defaultWidgetSize(widgetType)

	width := design.Width
	if width == 0 {
		width = defaultWidth
	}

	// Never spill past the remaining columns in this row.
	if remaining := gridColumns - x; width > remaining {
		width = remaining
	}

	height := design.Height
	if height == 0 {
		height = defaultHeight
	}

	layout := models.WidgetLayout{X: x, Y: y, Width: width, Height: height}

	switch widgetType {
	case models.WidgetTimeseries:
		return &models.Widget{
			ID:     uuid.NewString(),
			Type:   widgetType,
			Title:  titleOrDefault(design.Title, "Metric"),
			Layout: layout,
			Config: models.TimeseriesConfig{
				Type:       models.WidgetTimeseries,
				Query:      queryOrDefault(design.Query, "system.cpu.user{*}"),
				YAxisLabel: design.YAxisLabel,
				ShowLegend: true,
				LineType:   lineTypeFromVisualization(design.Visualization),
			},
		}

	case models.WidgetMetric:
		aggregation := design.Aggregation
		if aggregation == "" {
			aggregation = "avg"
		}

		return &models.Widget{
			ID:     uuid.NewString(),
			Type:   widgetType,
			Title:  titleOrDefault(design.Title, "Metric Value"),
			Layout: layout,
			Config: models.MetricConfig{
				Type:        models.WidgetMetric,
				Query:       queryOrDefault(design.Query, "avg:system.cpu.user{*}"),
				Aggregation: aggregation,
				Thresholds:  design.Thresholds,
			},
		}

	case models.WidgetLogs:
		limit := design.Limit
		if limit == 0 {
			limit = 50
		}

		return &models.Widget{
			ID:     uuid.NewString(),
			Type:   widgetType,
			Title:  titleOrDefault(design.Title, "Logs"),
			Layout: layout,
			Config: models.LogsConfig{
				Type:          models.WidgetLogs,
				Query:         queryOrDefault(design.Query, "status:error"),
				Limit:         limit,
				ShowTimestamp: true,
				ShowService:   true,
			},
		}

	case models.WidgetMarkdown:
		content := design.Content
		if content == "" {
			content = design.Reasoning
		}

		return &models.Widget{
			ID:     uuid.NewString(),
			Type:   widgetType,
			Title:  titleOrDefault(design.Title, "Notes"),
			Layout: layout,
			Config: models.MarkdownConfig{
				Type:    models.WidgetMarkdown,
				Content: content,
			},
		}

	default:
		return nil
	}
}

func titleOrDefault(title, fallback string) string {
	if title == "" {
		return fallback
	}

	return title
}

func queryOrDefault(query, fallback string) string {
	if query == "" {
		return fallback
	}

	return query
}

func lineTypeFromVisualization(visualization string) models.LineType {
	switch strings.ToLower(visualization) {
	case "area":
		return models.LineTypeArea
	case "bar":
		return models.LineTypeBar
	default:
		return models.LineTypeLine
	}
}
