package leads

import "errors"

var (
	// ErrInvalidEmail is returned when the email fails the format check
	ErrInvalidEmail = errors.New("please enter a valid email address")

	// ErrMissingCallbackFields is returned when a callback request omits a field
	ErrMissingCallbackFields = errors.New("name, email, phone and message are required")

	// ErrMissingROIData is returned when an ROI email request has no snapshot attached
	ErrMissingROIData = errors.New("roi data is required")

	// ErrMissingAuditFields is returned when an audit report request omits its audit context
	ErrMissingAuditFields = errors.New("url, audit type and audit result are required")

	// ErrDuplicateEmail is returned when an email is already registered for the category
	ErrDuplicateEmail = errors.New("email already registered")

	// ErrStoreUnavailable is returned when the document store cannot be reached
	// or does not acknowledge a write
	ErrStoreUnavailable = errors.New("lead store unavailable")
)
