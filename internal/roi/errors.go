package roi

import "errors"

// ErrInvalidInputs is returned when a metric is non-finite or out of range.
var ErrInvalidInputs = errors.New("roi inputs must be positive finite numbers with a conversion rate between 0 and 100")
