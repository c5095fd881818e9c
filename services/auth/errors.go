package auth

import "errors"

// Surfaced authentication failures. OTP errors carry minimal detail on
// purpose; the HTTP layer collapses them further.
var (
	ErrNoActiveChallenge  = errors.New("no active OTP challenge")
	ErrInvalidCode        = errors.New("invalid OTP code")
	ErrTooManyAttempts    = errors.New("too many OTP attempts")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrInvalidPhone       = errors.New("invalid phone number")
	ErrPrincipalInactive  = errors.New("account is deactivated")
	ErrAdminNotFound      = errors.New("admin user not found")
	ErrEmailTaken         = errors.New("email already registered")
)
