package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	jwtpkg "github.com/Roastcoder/finonest-server-sub001/internal/pkg/jwt"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/logger"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/internal/utils"
	"github.com/Roastcoder/finonest-server-sub001/services/auth"
)

// SendOTP generates a new OTP challenge for the given phone number.
// A repeated send invalidates any prior unconsumed code.
func (u *AuthUC) SendOTP(ctx context.Context, phone string) error {
	isValid, formattedPhone, err := utils.ValidatePhone(phone)
	if err != nil || !isValid {
		return auth.ErrInvalidPhone
	}

	code, err := utils.GenerateOTPCode(u.cfg.OTP.Length)
	if err != nil {
		return fmt.Errorf("failed to generate OTP code: %w", err)
	}

	ttl := time.Duration(u.cfg.OTP.ExpiryMin) * time.Minute
	if err := u.authRepo.CreateChallenge(ctx, formattedPhone, code, ttl); err != nil {
		return fmt.Errorf("failed to create OTP challenge: %w", err)
	}

	if err := u.authGW.NotifyOTP(ctx, &models.OTPNotification{
		Phone: formattedPhone,
		Code:  code,
	}); err != nil {
		// The challenge is live even if dispatch lags; the SMS worker
		// retries off the queue.
		logger.Error("Failed to publish OTP notification",
			logger.ErrorField(err),
			logger.String("phone", formattedPhone))
	}

	logger.Info("OTP challenge created", logger.String("phone", formattedPhone))
	return nil
}

// VerifyOTP verifies the OTP for the given phone number and issues a
// customer-domain token. The challenge consume is atomic: of two
// concurrent verifies with the correct code, exactly one succeeds.
func (u *AuthUC) VerifyOTP(ctx context.Context, phone, code string) (*models.AuthResponse, error) {
	isValid, formattedPhone, err := utils.ValidatePhone(phone)
	if err != nil || !isValid {
		return nil, auth.ErrInvalidPhone
	}

	result, err := u.authRepo.ConsumeChallenge(ctx, formattedPhone, code)
	if err != nil {
		return nil, fmt.Errorf("failed to consume OTP challenge: %w", err)
	}

	switch result {
	case auth.OTPNotFound:
		// Also the lazy expiry path: an expired challenge reads as absent.
		return nil, auth.ErrNoActiveChallenge
	case auth.OTPMismatch:
		ttl := time.Duration(u.cfg.OTP.ExpiryMin) * time.Minute
		attempts, attemptsErr := u.authRepo.IncrAttempts(ctx, formattedPhone, ttl)
		if attemptsErr != nil {
			return nil, fmt.Errorf("failed to track OTP attempts: %w", attemptsErr)
		}
		if attempts >= int64(u.cfg.OTP.MaxAttempts) {
			if delErr := u.authRepo.DeleteChallenge(ctx, formattedPhone); delErr != nil {
				logger.Error("Failed to invalidate OTP challenge after lockout",
					logger.ErrorField(delErr),
					logger.String("phone", formattedPhone))
			}
			logger.Warn("OTP challenge locked out",
				logger.String("phone", formattedPhone),
				logger.Int64("attempts", attempts))
			return nil, auth.ErrTooManyAttempts
		}
		return nil, auth.ErrInvalidCode
	}

	customer, err := u.authRepo.GetCustomerByPhone(ctx, formattedPhone)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		// First verified login creates the principal record.
		customer = &models.Customer{
			Phone:    formattedPhone,
			IsActive: true,
		}
		if err := u.authRepo.CreateCustomer(ctx, customer); err != nil {
			return nil, fmt.Errorf("failed to create customer: %w", err)
		}
		logger.Info("Customer created on first OTP verification",
			logger.String("customer_id", customer.ID.String()))
	}

	if !customer.IsActive {
		return nil, auth.ErrPrincipalInactive
	}

	token, expiresAt, err := jwtpkg.GenerateToken(customer.ID, jwtpkg.DomainCustomer, models.RoleCustomer, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	return &models.AuthResponse{
		Token:     token,
		UserID:    customer.ID.String(),
		Domain:    jwtpkg.DomainCustomer,
		Role:      string(models.RoleCustomer),
		ExpiresAt: expiresAt,
	}, nil
}

// GetCustomerProfile returns the customer record for an authenticated id
func (u *AuthUC) GetCustomerProfile(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	customer, err := u.authRepo.GetCustomerByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}
	if customer == nil {
		return nil, auth.ErrInvalidCredentials
	}
	return customer, nil
}

// AdminLogin authenticates an admin user by email and password and issues
// an admin-domain token. Unknown email, wrong password and deactivated
// account all collapse into the same error.
func (u *AuthUC) AdminLogin(ctx context.Context, email, password string) (*models.AuthResponse, error) {
	admin, err := u.authRepo.GetAdminByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}
	if admin == nil || !admin.IsActive {
		return nil, auth.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)); err != nil {
		return nil, auth.ErrInvalidCredentials
	}

	token, expiresAt, err := jwtpkg.GenerateToken(admin.ID, jwtpkg.DomainAdmin, admin.Role, u.cfg.JWT)
	if err != nil {
		return nil, fmt.Errorf("failed to generate token: %w", err)
	}

	logger.Info("Admin logged in",
		logger.String("admin_id", admin.ID.String()),
		logger.String("role", string(admin.Role)))

	return &models.AuthResponse{
		Token:     token,
		UserID:    admin.ID.String(),
		Domain:    jwtpkg.DomainAdmin,
		Role:      string(admin.Role),
		ExpiresAt: expiresAt,
	}, nil
}

// ResolvePrincipal loads an active principal for the authentication
// middleware. Unknown and deactivated principals both resolve to
// (nil, nil): revocation takes effect on the next request, it does not
// wait for token expiry.
func (u *AuthUC) ResolvePrincipal(ctx context.Context, domain, id string) (*models.Principal, error) {
	principalID, err := uuid.Parse(id)
	if err != nil {
		return nil, nil
	}

	switch domain {
	case jwtpkg.DomainAdmin:
		admin, err := u.authRepo.GetAdminByID(ctx, principalID)
		if err != nil {
			return nil, err
		}
		if admin == nil || !admin.IsActive {
			return nil, nil
		}
		return &models.Principal{
			ID:       admin.ID,
			Domain:   jwtpkg.DomainAdmin,
			Role:     admin.Role,
			FullName: admin.FullName,
		}, nil
	case jwtpkg.DomainCustomer:
		customer, err := u.authRepo.GetCustomerByID(ctx, principalID)
		if err != nil {
			return nil, err
		}
		if customer == nil || !customer.IsActive {
			return nil, nil
		}
		return &models.Principal{
			ID:       customer.ID,
			Domain:   jwtpkg.DomainCustomer,
			Role:     models.RoleCustomer,
			FullName: customer.FullName,
		}, nil
	}

	return nil, nil
}
