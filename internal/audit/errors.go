package audit

import "errors"

var (
	// ErrInferenceUnavailable is returned when the remote model call itself fails
	ErrInferenceUnavailable = errors.New("inference service unavailable")

	// ErrUnsupportedType is returned for audit types other than seo and uiux
	ErrUnsupportedType = errors.New("audit type must be seo or uiux")

	// ErrMissingURL is returned when no target url is supplied
	ErrMissingURL = errors.New("url is required")
)
