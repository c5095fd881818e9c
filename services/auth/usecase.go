package auth

import (
	"context"

	"github.com/google/uuid"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Roastcoder/finonest-server-sub001/services/auth AuthUC

// AuthUC represents the authentication usecase interface
type AuthUC interface {
	// customer OTP flow
	SendOTP(ctx context.Context, phone string) error
	VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error)
	GetCustomerProfile(ctx context.Context, id uuid.UUID) (*models.Customer, error)

	// admin flow
	AdminLogin(ctx context.Context, email, password string) (*models.AuthResponse, error)
	CreateAdmin(ctx context.Context, req *models.CreateAdminRequest) (*models.AdminUser, error)
	UpdateAdminRole(ctx context.Context, id uuid.UUID, role string) error

	// principal resolution for the authentication middleware
	ResolvePrincipal(ctx context.Context, domain, id string) (*models.Principal, error)
}
