package leads

import "errors"

var (
	ErrMissingName    = errors.New("name is required")
	ErrMissingEmail   = errors.New("email is required")
	ErrMissingMessage = errors.New("message is required")
)
