package audit

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexweb-studio/agency-api/internal/observability/metrics"
	"github.com/nexweb-studio/agency-api/pkg/logging"
)

// Handler serves the live-audit endpoint.
type Handler struct {
	service *Service
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewHandler creates a new audit handler.
func NewHandler(service *Service, logger *logging.Logger, m *metrics.Metrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		service: service,
		logger:  logger,
		metrics: m,
	}
}

type runRequest struct {
	URL       string `json:"url"`
	AuditType Type   `json:"auditType"`
}

type errorResponse struct {
	Error string `json:"error"`
}

// Run handles POST /api/audit.
func (h *Handler) Run(w http.ResponseWriter, r *http.Request) {
	var req runRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	result, err := h.service.Run(r.Context(), req.URL, req.AuditType)
	if err != nil {
		switch {
		case errors.Is(err, ErrMissingURL), errors.Is(err, ErrUnsupportedType):
			h.respondError(w, http.StatusBadRequest, err.Error())
		default:
			h.logger.Error("audit failed", "error", err, "url", req.URL)
			h.respondError(w, http.StatusInternalServerError, "Failed to analyze website.")
		}
		return
	}

	outcome := "completed"
	if result.Fallback {
		outcome = "fallback"
	}
	h.metrics.ObserveAudit(outcome)

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(result)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	if status >= http.StatusInternalServerError {
		h.metrics.ObserveAudit("failed")
	} else {
		h.metrics.ObserveAudit("rejected")
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}
