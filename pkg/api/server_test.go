package api

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/shahgahmed/llama-time/pkg/datadog"
	"github.com/shahgahmed/llama-time/pkg/llm"
	"github.com/shahgahmed/llama-time/pkg/models"
	"github.com/shahgahmed/llama-time/pkg/operator"
	"github.com/shahgahmed/llama-time/pkg/store"
)

type serverMocks struct {
	investigator *MockInvestigator
	resolver     *MockWidgetResolver
	monitors     *MockMonitorClient
	chat         *MockChatClient
	dashboards   *MockDashboardStore
}

func newTestServer(t *testing.T) (*APIServer, *serverMocks) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	mocks := &serverMocks{
		investigator: NewMockInvestigator(ctrl),
		resolver:     NewMockWidgetResolver(ctrl),
		monitors:     NewMockMonitorClient(ctrl),
		chat:         NewMockChatClient(ctrl),
		dashboards:   NewMockDashboardStore(ctrl),
	}

	server := NewAPIServer(mocks.investigator, mocks.resolver, mocks.monitors,
		mocks.chat, mocks.dashboards, zerolog.Nop())

	return server, mocks
}

func doRequest(server *APIServer, method, path string, body any) *httptest.ResponseRecorder {
	var reqBody *bytes.Reader

	if body != nil {
		data, _ := json.Marshal(body)
		reqBody = bytes.NewReader(data)
	} else {
		reqBody = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reqBody)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	return rec
}

func decodeError(t *testing.T, rec *httptest.ResponseRecorder) string {
	t.Helper()

	var resp errorResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	return resp.Error
}

func sampleDashboard() *models.Dashboard {
	return &models.Dashboard{
		ID:        "dash-1",
		Title:     "AI Investigation: High error rate on checkout",
		MonitorID: 20829685,
		CreatedAt: time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
		TimeRange: models.TimeRange{
			From:    time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC),
			To:      time.Date(2025, 6, 1, 12, 0, 0, 0, time.UTC),
			Display: "Last 1 hour",
		},
		Widgets: []models.Widget{
			{
				ID:     "w-1",
				Type:   models.WidgetTimeseries,
				Title:  "Error Rate",
				Layout: models.WidgetLayout{X: 3, Y: 0, Width: 9, Height: 3},
				Config: models.TimeseriesConfig{Type: models.WidgetTimeseries, Query: "q"},
			},
		},
	}
}

func TestInvestigateMonitor(t *testing.T) {
	server, mocks := newTestServer(t)

	result := &operator.InvestigationResult{
		Investigation: "Checkout errors spiked after the deploy.",
		Dashboard:     sampleDashboard(),
	}

	mocks.investigator.EXPECT().
		Investigate(gomock.Any(), int64(20829685)).
		Return(result, nil)
	mocks.dashboards.EXPECT().
		Save(gomock.Any(), result.Dashboard).
		Return(nil)

	rec := doRequest(server, http.MethodPost, "/api/investigate/monitor/20829685", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp investigateResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))

	assert.True(t, resp.Success)
	assert.Equal(t, "Checkout errors spiked after the deploy.", resp.Investigation)
	require.NotNil(t, resp.Dashboard)
	assert.Equal(t, "dash-1", resp.Dashboard.ID)
}

func TestInvestigateMonitorBadID(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(server, http.MethodPost, "/api/investigate/monitor/abc", nil)

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "monitor ID must be numeric", decodeError(t, rec))
}

func TestInvestigateMonitorVendorErrors(t *testing.T) {
	tests := []struct {
		name        string
		err         error
		wantStatus  int
		wantMessage string
	}{
		{
			name:        "not found",
			err:         &datadog.APIError{Status: 404, Body: "{}"},
			wantStatus:  http.StatusNotFound,
			wantMessage: "Monitor not found",
		},
		{
			name:        "bad credentials",
			err:         &datadog.APIError{Status: 403, Body: "{}"},
			wantStatus:  http.StatusForbidden,
			wantMessage: "Authentication failed. Please check your API keys.",
		},
		{
			name:        "vendor 500",
			err:         &datadog.APIError{Status: 500, Body: "{}"},
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "Failed to fetch monitor data",
		},
		{
			name:        "transport error",
			err:         errors.New("connection refused"),
			wantStatus:  http.StatusInternalServerError,
			wantMessage: "An unexpected error occurred",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, mocks := newTestServer(t)

			mocks.investigator.EXPECT().
				Investigate(gomock.Any(), gomock.Any()).
				Return(nil, tt.err)

			rec := doRequest(server, http.MethodPost, "/api/investigate/monitor/1", nil)

			assert.Equal(t, tt.wantStatus, rec.Code)
			assert.Equal(t, tt.wantMessage, decodeError(t, rec))
		})
	}
}

func TestInvestigateMonitorPersistFailureStillSucceeds(t *testing.T) {
	server, mocks := newTestServer(t)

	result := &operator.InvestigationResult{
		Investigation: "notes",
		Dashboard:     sampleDashboard(),
	}

	mocks.investigator.EXPECT().
		Investigate(gomock.Any(), gomock.Any()).
		Return(result, nil)
	mocks.dashboards.EXPECT().
		Save(gomock.Any(), gomock.Any()).
		Return(errors.New("disk full"))

	rec := doRequest(server, http.MethodPost, "/api/investigate/monitor/1", nil)
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetMonitor(t *testing.T) {
	server, mocks := newTestServer(t)

	mocks.monitors.EXPECT().
		GetMonitor(gomock.Any(), int64(7)).
		Return(&models.Monitor{ID: 7, Name: "cpu", OverallState: models.MonitorStateOK}, nil)

	rec := doRequest(server, http.MethodGet, "/api/monitors/7", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var monitor models.Monitor
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &monitor))
	assert.Equal(t, int64(7), monitor.ID)
	assert.Equal(t, "cpu", monitor.Name)
}

func TestGetMonitorNotFound(t *testing.T) {
	server, mocks := newTestServer(t)

	mocks.monitors.EXPECT().
		GetMonitor(gomock.Any(), gomock.Any()).
		Return(nil, &datadog.APIError{Status: 404, Body: "{}"})

	rec := doRequest(server, http.MethodGet, "/api/monitors/7", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Monitor not found", decodeError(t, rec))
}

func TestGetWidgetData(t *testing.T) {
	server, mocks := newTestServer(t)

	mocks.resolver.EXPECT().
		Resolve(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, cfg models.WidgetConfig, tr models.TimeRange) models.WidgetData {
			tsCfg, ok := cfg.(models.TimeseriesConfig)
			require.True(t, ok)
			assert.Equal(t, "avg:system.cpu.user{*}", tsCfg.Query)
			assert.Equal(t, time.Date(2025, 6, 1, 11, 0, 0, 0, time.UTC), tr.From)

			return models.TimeseriesData{
				Type:   models.WidgetTimeseries,
				Series: []models.Series{{Name: "cpu", Data: []models.DataPoint{{Timestamp: 1, Value: 2}}}},
			}
		})

	rec := doRequest(server, http.MethodPost, "/api/dashboard/data", map[string]any{
		"widgetConfig": map[string]any{
			"type":  "timeseries",
			"query": "avg:system.cpu.user{*}",
		},
		"timeRange": map[string]string{
			"from": "2025-06-01T11:00:00Z",
			"to":   "2025-06-01T12:00:00Z",
		},
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp struct {
		Data models.TimeseriesData `json:"data"`
	}
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Data.Series, 1)
	assert.Equal(t, "cpu", resp.Data.Series[0].Name)
}

func TestGetWidgetDataValidation(t *testing.T) {
	tests := []struct {
		name string
		body map[string]any
	}{
		{
			name: "missing widget config",
			body: map[string]any{
				"timeRange": map[string]string{"from": "2025-06-01T11:00:00Z", "to": "2025-06-01T12:00:00Z"},
			},
		},
		{
			name: "missing time range",
			body: map[string]any{
				"widgetConfig": map[string]any{"type": "timeseries", "query": "q"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server, _ := newTestServer(t)

			rec := doRequest(server, http.MethodPost, "/api/dashboard/data", tt.body)

			assert.Equal(t, http.StatusBadRequest, rec.Code)
			assert.Equal(t, "Widget configuration and time range are required", decodeError(t, rec))
		})
	}
}

func TestGetWidgetDataUnknownType(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(server, http.MethodPost, "/api/dashboard/data", map[string]any{
		"widgetConfig": map[string]any{"type": "pie_chart"},
		"timeRange":    map[string]string{"from": "2025-06-01T11:00:00Z", "to": "2025-06-01T12:00:00Z"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid widget configuration", decodeError(t, rec))
}

func TestGetWidgetDataBadTimeRange(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(server, http.MethodPost, "/api/dashboard/data", map[string]any{
		"widgetConfig": map[string]any{"type": "timeseries", "query": "q"},
		"timeRange":    map[string]string{"from": "yesterday", "to": "now"},
	})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "invalid time range", decodeError(t, rec))
}

func TestPostChat(t *testing.T) {
	server, mocks := newTestServer(t)

	mocks.chat.EXPECT().
		Chat(gomock.Any(), "what happened at 11:40?", "").
		Return(&llm.Completion{
			ID:      "cmpl-1",
			Text:    "A deploy rolled out.",
			Metrics: []llm.Metric{{Metric: "num_total_tokens", Value: 100}},
		}, nil)

	rec := doRequest(server, http.MethodPost, "/api/chat", map[string]string{
		"message": "what happened at 11:40?",
	})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.True(t, resp.Success)
	assert.Equal(t, "A deploy rolled out.", resp.Response)
	assert.Equal(t, "cmpl-1", resp.ID)
	require.Len(t, resp.Metrics, 1)
}

func TestPostChatRequiresMessageOrImage(t *testing.T) {
	server, _ := newTestServer(t)

	rec := doRequest(server, http.MethodPost, "/api/chat", map[string]string{})

	assert.Equal(t, http.StatusBadRequest, rec.Code)
	assert.Equal(t, "Message or image is required", decodeError(t, rec))
}

func TestPostChatEmptyCompletion(t *testing.T) {
	server, mocks := newTestServer(t)

	mocks.chat.EXPECT().
		Chat(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(&llm.Completion{}, nil)

	rec := doRequest(server, http.MethodPost, "/api/chat", map[string]string{"message": "hi"})

	require.Equal(t, http.StatusOK, rec.Code)

	var resp chatResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	assert.Equal(t, "No response received", resp.Response)
	assert.NotNil(t, resp.Metrics)
}

func TestPostChatUpstreamError(t *testing.T) {
	server, mocks := newTestServer(t)

	mocks.chat.EXPECT().
		Chat(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, &llm.APIError{Status: 429, Body: "rate limited"})

	rec := doRequest(server, http.MethodPost, "/api/chat", map[string]string{"message": "hi"})

	assert.Equal(t, http.StatusTooManyRequests, rec.Code)
	assert.Equal(t, "Failed to get response from LLM API", decodeError(t, rec))
}

func TestListDashboards(t *testing.T) {
	server, mocks := newTestServer(t)

	mocks.dashboards.EXPECT().
		List(gomock.Any()).
		Return([]store.DashboardSummary{
			{ID: "dash-2", Title: "Newest"},
			{ID: "dash-1", Title: "Oldest"},
		}, nil)

	rec := doRequest(server, http.MethodGet, "/api/dashboards", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var summaries []store.DashboardSummary
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &summaries))
	require.Len(t, summaries, 2)
	assert.Equal(t, "dash-2", summaries[0].ID)
}

func TestGetDashboard(t *testing.T) {
	server, mocks := newTestServer(t)

	mocks.dashboards.EXPECT().
		Get(gomock.Any(), "dash-1").
		Return(sampleDashboard(), nil)

	rec := doRequest(server, http.MethodGet, "/api/dashboards/dash-1", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var dashboard models.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &dashboard))
	assert.Equal(t, "dash-1", dashboard.ID)
	require.Len(t, dashboard.Widgets, 1)
}

func TestGetDashboardNotFound(t *testing.T) {
	server, mocks := newTestServer(t)

	mocks.dashboards.EXPECT().
		Get(gomock.Any(), "nope").
		Return(nil, store.ErrDashboardNotFound)

	rec := doRequest(server, http.MethodGet, "/api/dashboards/nope", nil)

	assert.Equal(t, http.StatusNotFound, rec.Code)
	assert.Equal(t, "Dashboard not found", decodeError(t, rec))
}

func TestDeleteDashboard(t *testing.T) {
	server, mocks := newTestServer(t)

	mocks.dashboards.EXPECT().
		Delete(gomock.Any(), "dash-1").
		Return(nil)

	rec := doRequest(server, http.MethodDelete, "/api/dashboards/dash-1", nil)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}

func TestDeleteDashboardNotFound(t *testing.T) {
	server, mocks := newTestServer(t)

	mocks.dashboards.EXPECT().
		Delete(gomock.Any(), "nope").
		Return(store.ErrDashboardNotFound)

	rec := doRequest(server, http.MethodDelete, "/api/dashboards/nope", nil)
	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGetDashboardData(t *testing.T) {
	server, mocks := newTestServer(t)

	dashboard := sampleDashboard()

	mocks.dashboards.EXPECT().
		Get(gomock.Any(), "dash-1").
		Return(dashboard, nil)
	mocks.resolver.EXPECT().
		ResolveAll(gomock.Any(), dashboard).
		Do(func(_ context.Context, d *models.Dashboard) {
			d.Widgets[0].Data = models.TimeseriesData{
				Type:   models.WidgetTimeseries,
				Series: []models.Series{{Name: "cpu"}},
			}
		})

	rec := doRequest(server, http.MethodGet, "/api/dashboards/dash-1/data", nil)

	require.Equal(t, http.StatusOK, rec.Code)

	var resp models.Dashboard
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp))
	require.Len(t, resp.Widgets, 1)
	require.NotNil(t, resp.Widgets[0].Data)
}

func TestCORSPreflight(t *testing.T) {
	server, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodOptions, "/api/dashboards", nil)
	rec := httptest.NewRecorder()
	server.Router().ServeHTTP(rec, req)

	assert.Equal(t, "*", rec.Header().Get("Access-Control-Allow-Origin"))
}
