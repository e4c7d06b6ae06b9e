// Package operator pkg/operator/designer.go
package operator

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/shahgahmed/llama-time/pkg/models"
)

const systemPrompt = "You are an expert Site Reliability Engineer helping to investigate " +
	"and resolve incidents. Always respond with valid JSON when asked."

const designPromptTemplate = `You are an expert Site Reliability Engineer designing a dashboard to investigate a firing monitor.

Monitor Details:
- Name: %s
- Type: %s
- Status: %s
- Query: %s
- Message: %s
- Tags: %s

Available Widget Types:
1. timeseries - Line/area/bar charts for metrics over time
2. metric - Single value displays with trend indicators
3. logs - Log stream viewer with filtering
4. alert_status - Monitor status display
5. markdown - Rich text for notes and documentation

For each widget, you can specify:
- Query patterns (for metrics, logs)
- Visualization preferences (line vs bar chart, etc.)
- Size and position (width: 1-12, height: 1-4)
- Thresholds and alerts

Based on this monitor, design a dashboard that will help investigate the issue. Consider:
1. What metrics are most relevant to this alert?
2. What logs would help diagnose the problem?
3. What related systems should be monitored?
4. What's the best way to visualize each piece of data?

Respond with a JSON object containing:
{
  "investigation": "Brief analysis of the issue and investigation approach",
  "widgets": [
    {
      "type": "widget_type",
      "title": "Widget Title",
      "query": "datadog query string",
      "visualization": "specific viz type if applicable",
      "width": 4,
      "height": 2,
      "reasoning": "why this widget is important"
    }
  ],
  "layout_strategy": "how widgets should be arranged",
  "time_range": "recommended time range (e.g., '1h', '24h', '7d')"
}`

// jsonObjectPattern extracts the first {...} block from free-form LLM
// output that failed to parse as a whole.
var jsonObjectPattern = regexp.MustCompile(`(?s)\{.*\}`)

var serviceTokenPattern = regexp.MustCompile(`service:([a-zA-Z0-9_-]+)`)

// DesignDashboard asks the LLM to propose a widget plan for the
// monitor. It never fails outward: LLM errors and unparseable output
// degrade to the deterministic fallback design.
func (o *Operator) DesignDashboard(ctx context.Context, monitor *models.Monitor) *models.DashboardDesign {
	prompt := buildDesignPrompt(monitor)

	completion, err := o.llm.Complete(ctx, systemPrompt, prompt)
	if err != nil {
		o.logger.Warn().
			Err(err).
			Int64("monitor_id", monitor.ID).
			Msg("LLM design call failed, using fallback design")

		return fallbackDesign(monitor)
	}

	design, err := parseDesign(completion.Text)
	if err != nil {
		o.logger.Warn().
			Err(err).
			Int64("monitor_id", monitor.ID).
			Msg("LLM design output unparseable, using fallback design")

		return fallbackDesign(monitor)
	}

	return design
}

func buildDesignPrompt(monitor *models.Monitor) string {
	return fmt.Sprintf(designPromptTemplate,
		monitor.Name,
		monitor.Type,
		monitor.OverallState,
		monitor.Query,
		monitor.Message,
		strings.Join(monitor.Tags, ", "),
	)
}

// parseDesign treats the LLM as an untrusted text producer: try the
// whole text as JSON first, then the first {...} substring.
func parseDesign(text string) (*models.DashboardDesign, error) {
	var design models.DashboardDesign

	if err := json.Unmarshal([]byte(text), &design); err == nil {
		return &design, nil
	}

	match := jsonObjectPattern.FindString(text)
	if match == "" {
		return nil, errNoJSONObject
	}

	if err := json.Unmarshal([]byte(match), &design); err != nil {
		return nil, fmt.Errorf("failed to parse extracted JSON object: %w", err)
	}

	return &design, nil
}

// ExtractService looks for a service:<name> token in the monitor's
// tags, then in its query. Best-effort and purely textual.
func ExtractService(monitor *models.Monitor) (string, bool) {
	for _, tag := range monitor.Tags {
		if name, ok := strings.CutPrefix(tag, "service:"); ok && name != "" {
			return name, true
		}
	}

	if m := serviceTokenPattern.FindStringSubmatch(monitor.Query); m != nil {
		return m[1], true
	}

	return "", false
}

// fallbackDesign builds a deterministic design from the monitor alone.
func fallbackDesign(monitor *models.Monitor) *models.DashboardDesign {
	widgets := []models.WidgetDesign{
		{
			Type:   string(models.WidgetTimeseries),
			Title:  "Monitored Metric",
			Query:  monitor.Query,
			Width:  9,
			Height: 3,
			Reasoning: "Primary metric that triggered the alert. Look for spikes, drops, " +
				"or unusual patterns that correlate with the alert timing.",
		},
	}

	if service, ok := ExtractService(monitor); ok {
		widgets = append(widgets,
			models.WidgetDesign{
				Type:  string(models.WidgetMetric),
				Title: "Current Error Rate",
				Query: fmt.Sprintf(
					"sum:trace.servlet.request{service:%s,resource_name:*,http.status_class:5xx}.as_rate()/sum:trace.servlet.request{service:%s,resource_name:*}.as_rate()*100",
					service, service),
				Width:  3,
				Height: 2,
				Reasoning: "Error percentage indicates service health. High error rates " +
					"often correlate with performance alerts.",
			},
			models.WidgetDesign{
				Type:   string(models.WidgetMetric),
				Title:  "P99 Latency",
				Query:  fmt.Sprintf("p99:trace.servlet.request.duration{service:%s}", service),
				Width:  3,
				Height: 2,
				Reasoning: "Response time performance. Increased latency can indicate " +
					"resource constraints or downstream issues.",
			},
			models.WidgetDesign{
				Type:          string(models.WidgetTimeseries),
				Title:         "Request Rate",
				Query:         fmt.Sprintf("sum:trace.servlet.request{service:%s}.as_rate()", service),
				Visualization: "bar",
				Width:         6,
				Height:        3,
				Reasoning: "Traffic volume trends. Sudden spikes can cause resource " +
					"exhaustion, while drops may indicate upstream failures.",
			},
			models.WidgetDesign{
				Type:   string(models.WidgetLogs),
				Title:  "Error Logs - " + service,
				Query:  fmt.Sprintf("service:%s status:error", service),
				Width:  6,
				Height: 4,
				Reasoning: "Recent error messages provide specific details about failures. " +
					"Look for patterns, stack traces, and error frequencies.",
			},
		)
	} else {
		widgets = append(widgets,
			models.WidgetDesign{
				Type:   string(models.WidgetTimeseries),
				Title:  "System Metrics",
				Query:  "avg:system.cpu.user{*}",
				Width:  6,
				Height: 3,
				Reasoning: "General system performance indicators. Useful when specific " +
					"service metrics are not available.",
			},
			models.WidgetDesign{
				Type:   string(models.WidgetLogs),
				Title:  "Error Logs",
				Query:  "status:error",
				Width:  6,
				Height: 4,
				Reasoning: "System-wide error logs. Look for patterns and timestamps " +
					"that correlate with the alert.",
			},
		)
	}

	return &models.DashboardDesign{
		Investigation: fmt.Sprintf(
			"This dashboard was generated to investigate **%s** which is currently in **%s** state. "+
				"The investigation focuses on the key metrics and logs that can help identify the root cause of this alert.",
			monitor.Name, monitor.OverallState),
		Widgets: widgets,
		LayoutStrategy: "Critical metrics at top for immediate assessment, " +
			"followed by supporting data for detailed investigation",
		TimeRange: "1h",
	}
}
