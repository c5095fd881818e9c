package usecase

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/logger"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/internal/utils"
	"github.com/Roastcoder/finonest-server-sub001/services/auth"
)

// CreateAdmin creates a new admin user with a validated role and a bcrypt
// password hash. Only superadmins reach this through the route table.
func (u *AuthUC) CreateAdmin(ctx context.Context, req *models.CreateAdminRequest) (*models.AdminUser, error) {
	role, err := models.ParseAdminRole(req.Role)
	if err != nil {
		return nil, err
	}

	if !utils.ValidateEmail(req.Email) {
		return nil, fmt.Errorf("invalid email address")
	}

	existing, err := u.authRepo.GetAdminByEmail(ctx, req.Email)
	if err != nil {
		return nil, fmt.Errorf("failed to check admin email: %w", err)
	}
	if existing != nil {
		return nil, auth.ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	admin := &models.AdminUser{
		FullName:     req.FullName,
		Email:        req.Email,
		PasswordHash: string(hash),
		Role:         role,
		IsActive:     true,
	}

	if err := u.authRepo.CreateAdmin(ctx, admin); err != nil {
		return nil, fmt.Errorf("failed to create admin user: %w", err)
	}

	logger.Info("Admin user created",
		logger.String("admin_id", admin.ID.String()),
		logger.String("role", string(role)))

	return admin, nil
}

// UpdateAdminRole changes an existing admin's role within the closed set
func (u *AuthUC) UpdateAdminRole(ctx context.Context, id uuid.UUID, role string) error {
	parsed, err := models.ParseAdminRole(role)
	if err != nil {
		return err
	}

	admin, err := u.authRepo.GetAdminByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get admin user: %w", err)
	}
	if admin == nil {
		return auth.ErrAdminNotFound
	}

	if err := u.authRepo.UpdateAdminRole(ctx, id, parsed); err != nil {
		return fmt.Errorf("failed to update admin role: %w", err)
	}

	logger.Info("Admin role updated",
		logger.String("admin_id", id.String()),
		logger.String("role", string(parsed)))

	return nil
}
