package leads

import "errors"

var (
	ErrLeadNotFound      = errors.New("lead not found")
	ErrUnknownStatus     = errors.New("unknown lead status")
	ErrInvalidTransition = errors.New("invalid status transition")
)
