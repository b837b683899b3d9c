package audit

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/nexweb-studio/agency-api/pkg/logging"
)

func newTestHandler(client chatClient) *Handler {
	svc := newTestService(client)
	return NewHandler(svc, logging.Default(), nil)
}

func postAudit(t *testing.T, h *Handler, body any) *httptest.ResponseRecorder {
	t.Helper()
	raw, err := json.Marshal(body)
	if err != nil {
		t.Fatalf("failed to marshal body: %v", err)
	}
	req := httptest.NewRequest(http.MethodPost, "/api/audit", bytes.NewReader(raw))
	w := httptest.NewRecorder()
	h.Run(w, req)
	return w
}

func TestRunAudit_Success(t *testing.T) {
	client := &fakeChatClient{content: `{"score":88,"issues":["no sitemap"],"recommendations":["add one"],"loadTime":0.9}`}
	h := newTestHandler(client)

	w := postAudit(t, h, map[string]string{"url": "https://example.com", "auditType": "seo"})

	if w.Code != http.StatusOK {
		t.Fatalf("expected status %d, got %d", http.StatusOK, w.Code)
	}

	var result Result
	if err := json.NewDecoder(w.Body).Decode(&result); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if result.Score != 88 {
		t.Errorf("expected score 88, got %d", result.Score)
	}
	if len(result.Issues) != 1 || result.Issues[0] != "no sitemap" {
		t.Errorf("unexpected issues: %v", result.Issues)
	}
}

func TestRunAudit_UnsupportedType(t *testing.T) {
	h := newTestHandler(&fakeChatClient{content: "{}"})

	w := postAudit(t, h, map[string]string{"url": "https://example.com", "auditType": "security"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRunAudit_MissingURL(t *testing.T) {
	h := newTestHandler(&fakeChatClient{content: "{}"})

	w := postAudit(t, h, map[string]string{"auditType": "uiux"})

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}

func TestRunAudit_InferenceFailure(t *testing.T) {
	h := newTestHandler(&fakeChatClient{err: errors.New("upstream 503")})

	w := postAudit(t, h, map[string]string{"url": "https://example.com", "auditType": "seo"})

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected status %d, got %d", http.StatusInternalServerError, w.Code)
	}

	var resp errorResponse
	if err := json.NewDecoder(w.Body).Decode(&resp); err != nil {
		t.Fatalf("failed to decode response: %v", err)
	}
	if resp.Error != "Failed to analyze website." {
		t.Errorf("expected generic error message, got %q", resp.Error)
	}
	if strings.Contains(resp.Error, "503") {
		t.Errorf("response leaked upstream error detail: %q", resp.Error)
	}
}

func TestRunAudit_InvalidJSON(t *testing.T) {
	h := newTestHandler(&fakeChatClient{content: "{}"})

	req := httptest.NewRequest(http.MethodPost, "/api/audit", strings.NewReader("{"))
	w := httptest.NewRecorder()
	h.Run(w, req)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected status %d, got %d", http.StatusBadRequest, w.Code)
	}
}
