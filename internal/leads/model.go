package leads

import (
	"regexp"
	"strings"
	"time"
)

// Category selects the logical collection a lead belongs to and which
// uniqueness rule applies to it.
type Category string

const (
	CategoryCallback    Category = "callback"
	CategoryROIEmail    Category = "roi_email"
	CategoryAuditReport Category = "audit_report"
)

// StatusPending is the lifecycle state every lead is created in. Transitions
// happen outside this service.
const StatusPending = "pending"

// Lead is a captured contact attempt, stored as one schemaless document.
type Lead struct {
	ID          string    `bson:"-" json:"id,omitempty"`
	Name        string    `bson:"name,omitempty" json:"name,omitempty"`
	Email       string    `bson:"email,omitempty" json:"email,omitempty"`
	Phone       string    `bson:"phone,omitempty" json:"phone,omitempty"`
	Message     string    `bson:"message,omitempty" json:"message,omitempty"`
	URL         string    `bson:"url,omitempty" json:"url,omitempty"`
	AuditType   string    `bson:"auditType,omitempty" json:"auditType,omitempty"`
	AuditResult any       `bson:"auditResult,omitempty" json:"auditResult,omitempty"`
	ROIData     any       `bson:"roiData,omitempty" json:"roiData,omitempty"`
	Status      string    `bson:"status" json:"status"`
	CreatedAt   time.Time `bson:"createdAt" json:"createdAt"`
}

// Same pattern the site's forms apply client-side: local@domain.tld with no
// whitespace. Intentionally loose; it is a typo check, not RFC 5322.
var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidEmail reports whether addr passes the syntactic format check.
func ValidEmail(addr string) bool {
	return emailPattern.MatchString(addr)
}

// CallbackRequest is the body of POST /api/callback.
type CallbackRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Phone   string `json:"phone"`
	Message string `json:"message"`
}

// Validate requires all four fields and a well-formed email.
func (r *CallbackRequest) Validate() error {
	if strings.TrimSpace(r.Name) == "" ||
		strings.TrimSpace(r.Email) == "" ||
		strings.TrimSpace(r.Phone) == "" ||
		strings.TrimSpace(r.Message) == "" {
		return ErrMissingCallbackFields
	}
	if !ValidEmail(r.Email) {
		return ErrInvalidEmail
	}
	return nil
}

// Lead builds the document to persist for a callback request.
func (r *CallbackRequest) Lead() *Lead {
	return &Lead{
		Name:    r.Name,
		Email:   r.Email,
		Phone:   r.Phone,
		Message: r.Message,
		Status:  StatusPending,
	}
}

// ROIEmailRequest is the body of POST /api/roi-email.
type ROIEmailRequest struct {
	Email   string `json:"email"`
	ROIData any    `json:"roiData"`
}

// Validate checks the email format and that an ROI snapshot is attached.
func (r *ROIEmailRequest) Validate() error {
	if !ValidEmail(r.Email) {
		return ErrInvalidEmail
	}
	if r.ROIData == nil {
		return ErrMissingROIData
	}
	return nil
}

// Lead builds the document to persist for an ROI plan request.
func (r *ROIEmailRequest) Lead() *Lead {
	return &Lead{
		Email:   r.Email,
		ROIData: r.ROIData,
		Status:  StatusPending,
	}
}

// AuditReportRequest is the body of POST /api/audit-report.
type AuditReportRequest struct {
	Email       string `json:"email"`
	URL         string `json:"url"`
	AuditType   string `json:"auditType"`
	AuditResult any    `json:"auditResult"`
}

// Validate checks the email format and that the audit context is complete.
func (r *AuditReportRequest) Validate() error {
	if !ValidEmail(r.Email) {
		return ErrInvalidEmail
	}
	if strings.TrimSpace(r.URL) == "" || strings.TrimSpace(r.AuditType) == "" || r.AuditResult == nil {
		return ErrMissingAuditFields
	}
	return nil
}

// Lead builds the document to persist for an audit report request, embedding
// the audit payload exactly as submitted.
func (r *AuditReportRequest) Lead() *Lead {
	return &Lead{
		Email:       r.Email,
		URL:         r.URL,
		AuditType:   r.AuditType,
		AuditResult: r.AuditResult,
		Status:      StatusPending,
	}
}
