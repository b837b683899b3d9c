package roi

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/nexweb-studio/agency-api/pkg/logging"
)

// Handler serves the server-side ROI projection endpoint. The calculator UI
// runs the same arithmetic locally; this endpoint is the canonical source of
// the projection constants and of the roiData snapshot submitted with leads.
type Handler struct {
	logger *logging.Logger
}

// NewHandler creates a new ROI handler.
func NewHandler(logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}
	return &Handler{logger: logger}
}

type errorResponse struct {
	Error string `json:"error"`
}

// Estimate handles POST /api/roi.
func (h *Handler) Estimate(w http.ResponseWriter, r *http.Request) {
	var in Inputs
	if err := json.NewDecoder(r.Body).Decode(&in); err != nil {
		h.respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	projection, err := Estimate(in)
	if err != nil {
		if errors.Is(err, ErrInvalidInputs) {
			h.respondError(w, http.StatusBadRequest, err.Error())
			return
		}
		h.logger.Error("roi estimation failed", "error", err)
		h.respondError(w, http.StatusInternalServerError, "Failed to compute projection.")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	json.NewEncoder(w).Encode(projection)
}

func (h *Handler) respondError(w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(errorResponse{Error: message})
}
