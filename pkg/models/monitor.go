// Package models pkg/models/monitor.go
package models

// MonitorState is the overall state reported by the monitoring vendor.
type MonitorState string

const (
	MonitorStateOK      MonitorState = "OK"
	MonitorStateAlert   MonitorState = "Alert"
	MonitorStateWarn    MonitorState = "Warn"
	MonitorStateNoData  MonitorState = "No Data"
	MonitorStateUnknown MonitorState = "Unknown"
)

// Monitor is a vendor alerting rule, read fresh per investigation.
type Monitor struct {
	ID           int64        `json:"id"`
	Name         string       `json:"name"`
	Type         string       `json:"type"`
	Query        string       `json:"query"`
	Message      string       `json:"message"`
	Tags         []string     `json:"tags"`
	Created      string       `json:"created,omitempty"`
	Modified     string       `json:"modified,omitempty"`
	OverallState MonitorState `json:"overall_state"`
	Priority     int          `json:"priority,omitempty"`
}
