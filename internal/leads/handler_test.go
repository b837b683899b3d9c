package leads

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nexweb-studio/agency-api/pkg/logging"
)

type failingRepository struct{}

func (failingRepository) Insert(ctx context.Context, category Category, lead *Lead) (string, error) {
	return "", fmt.Errorf("%w: dial tcp: connection refused", ErrStoreUnavailable)
}

func (failingRepository) ExistsByEmail(ctx context.Context, category Category, email string) (bool, error) {
	return false, fmt.Errorf("%w: dial tcp: connection refused", ErrStoreUnavailable)
}

func newTestHandler(repo Repository) *Handler {
	return NewHandler(repo, logging.Default(), nil)
}

func post(t *testing.T, handle http.HandlerFunc, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, path, bytes.NewReader(raw))
	w := httptest.NewRecorder()
	handle(w, req)
	return w
}

func decodeCapture(t *testing.T, w *httptest.ResponseRecorder) captureResponse {
	t.Helper()
	var resp captureResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	return resp
}

func TestSubmitCallback_Success(t *testing.T) {
	repo := NewMemoryRepository()
	h := newTestHandler(repo)

	w := post(t, h.SubmitCallback, "/api/callback", CallbackRequest{
		Name:    "John Doe",
		Email:   "john@example.com",
		Phone:   "+1234567890",
		Message: "Interested in a redesign",
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	resp := decodeCapture(t, w)
	if !resp.Success || resp.ID == "" {
		t.Errorf("expected success with id, got %+v", resp)
	}
	if repo.Count(CategoryCallback) != 1 {
		t.Errorf("expected one captured lead, got %d", repo.Count(CategoryCallback))
	}
}

func TestSubmitCallback_MissingFields(t *testing.T) {
	h := newTestHandler(NewMemoryRepository())

	w := post(t, h.SubmitCallback, "/api/callback", CallbackRequest{Name: "John Doe"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSubmitCallback_InvalidEmail(t *testing.T) {
	h := newTestHandler(NewMemoryRepository())

	w := post(t, h.SubmitCallback, "/api/callback", CallbackRequest{
		Name: "John Doe", Email: "not-an-email", Phone: "+1", Message: "hi",
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestSubmitCallback_StoreUnavailable(t *testing.T) {
	h := newTestHandler(failingRepository{})

	w := post(t, h.SubmitCallback, "/api/callback", CallbackRequest{
		Name: "John Doe", Email: "john@example.com", Phone: "+1", Message: "hi",
	})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}
	resp := decodeCapture(t, w)
	if strings.Contains(resp.Message, "dial tcp") {
		t.Errorf("response leaked connection details: %q", resp.Message)
	}
}

func TestSubmitROIEmail_Success(t *testing.T) {
	repo := NewMemoryRepository()
	h := newTestHandler(repo)

	w := post(t, h.SubmitROIEmail, "/api/roi-email", ROIEmailRequest{
		Email:   "x@y.com",
		ROIData: map[string]any{"monthlyROI": 7500, "yearlyROI": 90000},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	if repo.Count(CategoryROIEmail) != 1 {
		t.Errorf("expected one captured lead, got %d", repo.Count(CategoryROIEmail))
	}
}

func TestSubmitROIEmail_Duplicate(t *testing.T) {
	repo := NewMemoryRepository()
	h := newTestHandler(repo)
	body := ROIEmailRequest{Email: "x@y.com", ROIData: map[string]any{"monthlyROI": 7500}}

	if w := post(t, h.SubmitROIEmail, "/api/roi-email", body); w.Code != http.StatusOK {
		t.Fatalf("first submission failed with %d", w.Code)
	}

	w := post(t, h.SubmitROIEmail, "/api/roi-email", body)
	if w.Code != http.StatusConflict {
		t.Fatalf("expected status %d, got %d", http.StatusConflict, w.Code)
	}
	if repo.Count(CategoryROIEmail) != 1 {
		t.Errorf("expected exactly one record after duplicate, got %d", repo.Count(CategoryROIEmail))
	}
}

func TestSubmitROIEmail_InvalidEmail(t *testing.T) {
	h := newTestHandler(NewMemoryRepository())

	w := post(t, h.SubmitROIEmail, "/api/roi-email", ROIEmailRequest{
		Email: "@b.co", ROIData: map[string]any{},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRequestAuditReport_Success(t *testing.T) {
	repo := NewMemoryRepository()
	h := newTestHandler(repo)

	w := post(t, h.RequestAuditReport, "/api/audit-report", AuditReportRequest{
		Email:     "x@y.com",
		URL:       "https://example.com",
		AuditType: "seo",
		AuditResult: map[string]any{
			"score": 82, "issues": []string{"missing meta description"},
		},
	})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}
	resp := decodeCapture(t, w)
	if !resp.Success || resp.ID == "" {
		t.Errorf("expected success with id, got %+v", resp)
	}
}

func TestRequestAuditReport_InvalidEmail(t *testing.T) {
	h := newTestHandler(NewMemoryRepository())

	w := post(t, h.RequestAuditReport, "/api/audit-report", AuditReportRequest{
		Email: "a@b", URL: "https://example.com", AuditType: "seo", AuditResult: map[string]any{},
	})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestHandlers_InvalidJSON(t *testing.T) {
	h := newTestHandler(NewMemoryRepository())

	for name, handle := range map[string]http.HandlerFunc{
		"callback":     h.SubmitCallback,
		"roi-email":    h.SubmitROIEmail,
		"audit-report": h.RequestAuditReport,
	} {
		t.Run(name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodPost, "/api/"+name, strings.NewReader("{"))
			w := httptest.NewRecorder()
			handle(w, req)
			if w.Code != http.StatusBadRequest {
				t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
			}
		})
	}
}
