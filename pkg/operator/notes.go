// Package operator pkg/operator/notes.go
package operator

import (
	"fmt"
	"strings"

	"github.com/shahgahmed/llama-time/pkg/models"
)

// fallbackPlaceholder is the narrative older fallback designs carried;
// it adds nothing over the generated guide, so it is filtered out.
const fallbackPlaceholder = "Using default dashboard template. AI analysis unavailable."

// formatInvestigationNotes renders the investigation guide markdown:
// the AI narrative, a monitor overview, type- and service-dependent
// investigation steps, a root-cause checklist, per-widget reasoning,
// action items, and service quick links.
func formatInvestigationNotes(monitor *models.Monitor, design *models.DashboardDesign) string {
	service, hasService := ExtractService(monitor)

	var b strings.Builder

	b.WriteString("# Investigation Guide\n\n")

	if design.Investigation != "" && design.Investigation != fallbackPlaceholder {
		b.WriteString("## AI Analysis\n")
		b.WriteString(design.Investigation)
		b.WriteString("\n\n")
	}

	b.WriteString("## Monitor Overview\n\n")
	fmt.Fprintf(&b, "**Monitor:** %s\n", monitor.Name)
	fmt.Fprintf(&b, "**Status:** `%s`\n", monitor.OverallState)
	fmt.Fprintf(&b, "**Type:** %s\n", monitor.Type)

	if hasService {
		fmt.Fprintf(&b, "**Service:** %s\n", service)
	}

	fmt.Fprintf(&b, "**Query:** `%s`\n\n", monitor.Query)

	if monitor.Message != "" {
		fmt.Fprintf(&b, "**Alert Message:** %s\n\n", monitor.Message)
	}

	b.WriteString("## Investigation Steps\n\n")

	if monitor.Type == "metric alert" {
		b.WriteString("### 1. Analyze Metric Trends\n")
		b.WriteString("- Check the main metric chart above for spikes or anomalies\n")
		b.WriteString("- Look for patterns in the time series data\n")
		b.WriteString("- Compare current values to historical baselines\n\n")
	}

	if hasService {
		b.WriteString("### 2. Service Health Check\n")
		b.WriteString("- Review error rates and latency metrics\n")
		b.WriteString("- Check request volume for traffic spikes\n")
		b.WriteString("- Examine error logs for specific failure patterns\n\n")

		b.WriteString("### 3. Infrastructure Investigation\n")
		b.WriteString("- Verify CPU, memory, and disk usage\n")
		b.WriteString("- Check network connectivity and latency\n")
		b.WriteString("- Review recent deployments or configuration changes\n\n")
	} else {
		b.WriteString("### 2. System Investigation\n")
		b.WriteString("- Check related system metrics\n")
		b.WriteString("- Review application logs for errors\n")
		b.WriteString("- Verify infrastructure health\n\n")
	}

	b.WriteString("### 3. Root Cause Analysis\n")
	b.WriteString("- **Recent Changes:** Check for deployments, config updates, or infrastructure changes\n")
	b.WriteString("- **Dependencies:** Verify health of upstream and downstream services\n")
	b.WriteString("- **External Factors:** Consider third-party service issues, traffic spikes, or network problems\n")
	b.WriteString("- **Correlation:** Look for patterns with other alerts or incidents\n\n")

	if len(design.Widgets) > 0 {
		b.WriteString("## Dashboard Widgets\n\n")

		for i := range design.Widgets {
			if design.Widgets[i].Reasoning != "" {
				fmt.Fprintf(&b, "**%s:** %s\n\n", design.Widgets[i].Title, design.Widgets[i].Reasoning)
			}
		}
	}

	b.WriteString("## Action Items\n\n")
	b.WriteString("- [ ] Review all metrics above for anomalies\n")
	b.WriteString("- [ ] Check error logs for specific failure messages\n")
	b.WriteString("- [ ] Verify recent deployments or changes\n")
	b.WriteString("- [ ] Check dependencies and external services\n")

	if hasService {
		fmt.Fprintf(&b, "- [ ] Consider scaling %s if needed\n", service)
	}

	b.WriteString("- [ ] Document findings and resolution steps\n\n")

	if hasService {
		b.WriteString("## Quick Links\n\n")
		fmt.Fprintf(&b, "- [Service Logs](https://app.datadoghq.com/logs?query=service%%3A%s)\n", service)
		fmt.Fprintf(&b, "- [APM Dashboard](https://app.datadoghq.com/apm/services/%s)\n", service)
		fmt.Fprintf(&b, "- [Infrastructure](https://app.datadoghq.com/infrastructure/map?filter=service%%3A%s)\n", service)
	}

	return b.String()
}
