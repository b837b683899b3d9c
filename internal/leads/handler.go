package leads

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexweb-studio/agency-api/internal/observability/metrics"
	"github.com/nexweb-studio/agency-api/pkg/logging"
)

// Handler serves the three lead-capture endpoints.
type Handler struct {
	repo    Repository
	logger  *logging.Logger
	metrics *metrics.Metrics
}

// NewHandler creates a new leads handler.
func NewHandler(repo Repository, logger *logging.Logger, m *metrics.Metrics) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{
		repo:    repo,
		logger:  logger,
		metrics: m,
	}
}

// captureResponse is the envelope every capture endpoint replies with.
type captureResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	ID      string `json:"id,omitempty"`
}

// SubmitCallback handles POST /api/callback.
func (h *Handler) SubmitCallback(w http.ResponseWriter, r *http.Request) {
	var req CallbackRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, CategoryCallback, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, CategoryCallback, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.repo.Insert(r.Context(), CategoryCallback, req.Lead())
	if err != nil {
		h.logger.Error("failed to save callback request", "error", err)
		h.fail(w, CategoryCallback, http.StatusInternalServerError, "Failed to save callback request. Please try again.")
		return
	}

	h.logger.Info("callback request captured", "id", id)
	h.ok(w, CategoryCallback, id, "Callback request received successfully")
}

// SubmitROIEmail handles POST /api/roi-email.
func (h *Handler) SubmitROIEmail(w http.ResponseWriter, r *http.Request) {
	var req ROIEmailRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, CategoryROIEmail, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, CategoryROIEmail, http.StatusBadRequest, err.Error())
		return
	}

	// Cheap pre-check so the common duplicate returns 409 without a failed
	// write. The unique index is what enforces the invariant under races.
	exists, err := h.repo.ExistsByEmail(r.Context(), CategoryROIEmail, req.Email)
	if err != nil {
		h.logger.Error("failed to check roi email", "error", err)
		h.fail(w, CategoryROIEmail, http.StatusInternalServerError, "Failed to save email")
		return
	}
	if exists {
		h.fail(w, CategoryROIEmail, http.StatusConflict, "Email already registered")
		return
	}

	id, err := h.repo.Insert(r.Context(), CategoryROIEmail, req.Lead())
	if err != nil {
		if errors.Is(err, ErrDuplicateEmail) {
			h.fail(w, CategoryROIEmail, http.StatusConflict, "Email already registered")
			return
		}
		h.logger.Error("failed to save roi email", "error", err)
		h.fail(w, CategoryROIEmail, http.StatusInternalServerError, "Failed to save email")
		return
	}

	h.logger.Info("roi email captured", "id", id)
	h.ok(w, CategoryROIEmail, id, "Email saved successfully")
}

// RequestAuditReport handles POST /api/audit-report.
func (h *Handler) RequestAuditReport(w http.ResponseWriter, r *http.Request) {
	var req AuditReportRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		h.fail(w, CategoryAuditReport, http.StatusBadRequest, "Invalid request body")
		return
	}
	if err := req.Validate(); err != nil {
		h.fail(w, CategoryAuditReport, http.StatusBadRequest, err.Error())
		return
	}

	id, err := h.repo.Insert(r.Context(), CategoryAuditReport, req.Lead())
	if err != nil {
		h.logger.Error("failed to save report request", "error", err)
		h.fail(w, CategoryAuditReport, http.StatusInternalServerError, "Failed to save report request. Please try again.")
		return
	}

	h.logger.Info("audit report request captured", "id", id, "url", req.URL, "audit_type", req.AuditType)
	h.ok(w, CategoryAuditReport, id, "Report request saved successfully. We'll send you the detailed report soon!")
}

func (h *Handler) ok(w http.ResponseWriter, category Category, id, message string) {
	h.metrics.ObserveLead(string(category), "captured")
	writeJSON(w, http.StatusOK, captureResponse{Success: true, Message: message, ID: id})
}

func (h *Handler) fail(w http.ResponseWriter, category Category, status int, message string) {
	outcome := "rejected"
	if status >= http.StatusInternalServerError {
		outcome = "failed"
	} else if status == http.StatusConflict {
		outcome = "duplicate"
	}
	h.metrics.ObserveLead(string(category), outcome)
	writeJSON(w, status, captureResponse{Success: false, Message: message})
}

func writeJSON(w http.ResponseWriter, status int, body any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(body)
}
