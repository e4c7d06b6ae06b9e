// Package api pkg/api/server.go
package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/gorilla/mux"
	"github.com/rs/zerolog"

	"github.com/shahgahmed/llama-time/pkg/datadog"
	httpx "github.com/shahgahmed/llama-time/pkg/http"
	"github.com/shahgahmed/llama-time/pkg/llm"
	"github.com/shahgahmed/llama-time/pkg/models"
	"github.com/shahgahmed/llama-time/pkg/store"
)

// APIServer exposes the investigation, widget-data, chat, and
// dashboard persistence endpoints.
type APIServer struct {
	investigator Investigator
	resolver     WidgetResolver
	monitors     MonitorClient
	chat         ChatClient
	dashboards   DashboardStore
	router       *mux.Router
	handler      http.Handler
	logger       zerolog.Logger
}

// NewAPIServer wires the routes over the given collaborators.
func NewAPIServer(investigator Investigator, resolver WidgetResolver, monitors MonitorClient,
	chat ChatClient, dashboards DashboardStore, logger zerolog.Logger) *APIServer {
	s := &APIServer{
		investigator: investigator,
		resolver:     resolver,
		monitors:     monitors,
		chat:         chat,
		dashboards:   dashboards,
		router:       mux.NewRouter(),
		logger:       logger.With().Str("component", "api").Logger(),
	}
	s.setupRoutes()

	// CORS wraps outside the router so preflight requests are answered
	// even when no route matches the OPTIONS method.
	s.handler = httpx.CommonMiddleware(httpx.RequestLogger(s.logger)(s.router))

	return s
}

func (s *APIServer) setupRoutes() {
	s.router.HandleFunc("/api/investigate/monitor/{id}", s.investigateMonitor).Methods("POST")
	s.router.HandleFunc("/api/monitors/{id}", s.getMonitor).Methods("GET")
	s.router.HandleFunc("/api/dashboard/data", s.getWidgetData).Methods("POST")
	s.router.HandleFunc("/api/chat", s.postChat).Methods("POST")

	s.router.HandleFunc("/api/dashboards", s.listDashboards).Methods("GET")
	s.router.HandleFunc("/api/dashboards/{id}", s.getDashboard).Methods("GET")
	s.router.HandleFunc("/api/dashboards/{id}", s.deleteDashboard).Methods("DELETE")
	s.router.HandleFunc("/api/dashboards/{id}/data", s.getDashboardData).Methods("GET")
}

// Router returns the configured handler, for tests and embedding.
func (s *APIServer) Router() http.Handler {
	return s.handler
}

// Start serves the API on addr until the listener fails.
func (s *APIServer) Start(addr string) error {
	return http.ListenAndServe(addr, s.handler)
}

func (s *APIServer) writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)

	if err := json.NewEncoder(w).Encode(v); err != nil {
		s.logger.Error().Err(err).Msg("failed to encode response")
	}
}

func (s *APIServer) writeError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, errorResponse{Error: message})
}

// monitorIDFromRequest enforces the malformed-input policy: missing or
// non-numeric ids are client errors before any processing happens.
func monitorIDFromRequest(r *http.Request) (int64, error) {
	raw := mux.Vars(r)["id"]
	if raw == "" {
		return 0, errMissingMonitorID
	}

	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil {
		return 0, errInvalidMonitorID
	}

	return id, nil
}

func (s *APIServer) investigateMonitor(w http.ResponseWriter, r *http.Request) {
	monitorID, err := monitorIDFromRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	result, err := s.investigator.Investigate(r.Context(), monitorID)
	if err != nil {
		s.logger.Error().Err(err).Int64("monitor_id", monitorID).Msg("investigation failed")
		s.writeVendorError(w, err)

		return
	}

	if err := s.dashboards.Save(r.Context(), result.Dashboard); err != nil {
		// The dashboard is still usable; persistence is best-effort.
		s.logger.Error().Err(err).Str("dashboard_id", result.Dashboard.ID).Msg("failed to persist dashboard")
	}

	s.writeJSON(w, http.StatusOK, investigateResponse{
		Success:       true,
		Investigation: result.Investigation,
		Dashboard:     result.Dashboard,
	})
}

// writeVendorError surfaces monitor-lookup failures with their vendor
// status, per the error taxonomy: 404 and 403 get friendly messages,
// everything else a short status-coded error.
func (s *APIServer) writeVendorError(w http.ResponseWriter, err error) {
	switch status := datadog.StatusCode(err); status {
	case http.StatusNotFound:
		s.writeError(w, http.StatusNotFound, "Monitor not found")
	case http.StatusForbidden:
		s.writeError(w, http.StatusForbidden, "Authentication failed. Please check your API keys.")
	case 0:
		s.writeError(w, http.StatusInternalServerError, "An unexpected error occurred")
	default:
		s.writeError(w, status, "Failed to fetch monitor data")
	}
}

func (s *APIServer) getMonitor(w http.ResponseWriter, r *http.Request) {
	monitorID, err := monitorIDFromRequest(r)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	monitor, err := s.monitors.GetMonitor(r.Context(), monitorID)
	if err != nil {
		s.logger.Warn().Err(err).Int64("monitor_id", monitorID).Msg("monitor lookup failed")
		s.writeVendorError(w, err)

		return
	}

	s.writeJSON(w, http.StatusOK, monitor)
}

func (s *APIServer) getWidgetData(w http.ResponseWriter, r *http.Request) {
	var req widgetDataRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if len(req.WidgetConfig) == 0 || req.TimeRange == nil {
		s.writeError(w, http.StatusBadRequest, "Widget configuration and time range are required")
		return
	}

	cfg, err := models.UnmarshalWidgetConfig(req.WidgetConfig)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid widget configuration")
		return
	}

	timeRange, err := parseTimeRange(req.TimeRange)
	if err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid time range")
		return
	}

	data := s.resolver.Resolve(r.Context(), cfg, timeRange)
	s.writeJSON(w, http.StatusOK, widgetDataResponse{Data: data})
}

func parseTimeRange(body *timeRangeBody) (models.TimeRange, error) {
	from, err := time.Parse(time.RFC3339, body.From)
	if err != nil {
		return models.TimeRange{}, err
	}

	to, err := time.Parse(time.RFC3339, body.To)
	if err != nil {
		return models.TimeRange{}, err
	}

	return models.TimeRange{From: from, To: to}, nil
}

func (s *APIServer) postChat(w http.ResponseWriter, r *http.Request) {
	var req chatRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		s.writeError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	if req.Message == "" && req.Image == "" {
		s.writeError(w, http.StatusBadRequest, "Message or image is required")
		return
	}

	completion, err := s.chat.Chat(r.Context(), req.Message, req.Image)
	if err != nil {
		s.logger.Warn().Err(err).Msg("chat completion failed")

		status := llm.StatusCode(err)
		if status == 0 {
			status = http.StatusInternalServerError
		}

		s.writeError(w, status, "Failed to get response from LLM API")

		return
	}

	response := completion.Text
	if response == "" {
		response = "No response received"
	}

	metrics := completion.Metrics
	if metrics == nil {
		metrics = []llm.Metric{}
	}

	s.writeJSON(w, http.StatusOK, chatResponse{
		Success:  true,
		Response: response,
		Metrics:  metrics,
		ID:       completion.ID,
	})
}

func (s *APIServer) listDashboards(w http.ResponseWriter, r *http.Request) {
	summaries, err := s.dashboards.List(r.Context())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list dashboards")
		s.writeError(w, http.StatusInternalServerError, "failed to list dashboards")

		return
	}

	s.writeJSON(w, http.StatusOK, summaries)
}

func (s *APIServer) getDashboard(w http.ResponseWriter, r *http.Request) {
	dashboard, err := s.dashboards.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeDashboardError(w, err)
		return
	}

	s.writeJSON(w, http.StatusOK, dashboard)
}

func (s *APIServer) deleteDashboard(w http.ResponseWriter, r *http.Request) {
	if err := s.dashboards.Delete(r.Context(), mux.Vars(r)["id"]); err != nil {
		s.writeDashboardError(w, err)
		return
	}

	w.WriteHeader(http.StatusNoContent)
}

// getDashboardData loads a stored dashboard and resolves every
// widget's data for its time range.
func (s *APIServer) getDashboardData(w http.ResponseWriter, r *http.Request) {
	dashboard, err := s.dashboards.Get(r.Context(), mux.Vars(r)["id"])
	if err != nil {
		s.writeDashboardError(w, err)
		return
	}

	s.resolver.ResolveAll(r.Context(), dashboard)

	s.writeJSON(w, http.StatusOK, dashboard)
}

func (s *APIServer) writeDashboardError(w http.ResponseWriter, err error) {
	if errors.Is(err, store.ErrDashboardNotFound) {
		s.writeError(w, http.StatusNotFound, "Dashboard not found")
		return
	}

	s.logger.Error().Err(err).Msg("dashboard store error")
	s.writeError(w, http.StatusInternalServerError, "dashboard store error")
}
