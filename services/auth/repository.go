package auth

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Roastcoder/finonest-server-sub001/services/auth AuthRepo

// ConsumeResult is the outcome of an atomic OTP consume attempt
type ConsumeResult int

const (
	// OTPNotFound means no unexpired challenge exists for the phone
	OTPNotFound ConsumeResult = iota
	// OTPMismatch means a challenge exists but the code does not match
	OTPMismatch
	// OTPConsumed means the code matched and the challenge was invalidated
	OTPConsumed
)

// AuthRepo is the credential store adapter. Principal lookups return
// (nil, nil) when no record exists; errors are reserved for store
// failures.
type AuthRepo interface {
	GetAdminByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error)
	GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error)
	CreateAdmin(ctx context.Context, admin *models.AdminUser) error
	UpdateAdminRole(ctx context.Context, id uuid.UUID, role models.Role) error

	GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error)
	GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error)
	CreateCustomer(ctx context.Context, customer *models.Customer) error

	CreateChallenge(ctx context.Context, phone, code string, ttl time.Duration) error
	ConsumeChallenge(ctx context.Context, phone, code string) (ConsumeResult, error)
	IncrAttempts(ctx context.Context, phone string, ttl time.Duration) (int64, error)
	DeleteChallenge(ctx context.Context, phone string) error
}
