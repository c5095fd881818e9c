package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

// GetAdminByID retrieves an admin user by id. Returns (nil, nil) when no
// record exists.
func (r *AuthRepo) GetAdminByID(ctx context.Context, id uuid.UUID) (*models.AdminUser, error) {
	query := `
		SELECT id, fullname, email, password_hash, role, is_active, created_at, updated_at
		FROM admin_users
		WHERE id = $1
	`

	var admin models.AdminUser
	err := r.db.GetContext(ctx, &admin, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}

	return &admin, nil
}

// GetAdminByEmail retrieves an admin user by email. Returns (nil, nil)
// when no record exists.
func (r *AuthRepo) GetAdminByEmail(ctx context.Context, email string) (*models.AdminUser, error) {
	query := `
		SELECT id, fullname, email, password_hash, role, is_active, created_at, updated_at
		FROM admin_users
		WHERE email = $1
	`

	var admin models.AdminUser
	err := r.db.GetContext(ctx, &admin, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get admin user: %w", err)
	}

	return &admin, nil
}

// CreateAdmin inserts a new admin user
func (r *AuthRepo) CreateAdmin(ctx context.Context, admin *models.AdminUser) error {
	admin.ID = uuid.New()
	now := time.Now()
	admin.CreatedAt = now
	admin.UpdatedAt = now

	query := `
		INSERT INTO admin_users (id, fullname, email, password_hash, role,
			is_active, created_at, updated_at
		) VALUES (:id, :fullname, :email, :password_hash, :role,
			:is_active, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, admin)
	if err != nil {
		return fmt.Errorf("failed to insert admin user: %w", err)
	}

	return nil
}

// UpdateAdminRole updates an admin user's role as a single-row statement
func (r *AuthRepo) UpdateAdminRole(ctx context.Context, id uuid.UUID, role models.Role) error {
	query := `
		UPDATE admin_users
		SET role = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, role, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update admin role: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return fmt.Errorf("admin user not found")
	}

	return nil
}

// GetCustomerByID retrieves a customer by id. Returns (nil, nil) when no
// record exists.
func (r *AuthRepo) GetCustomerByID(ctx context.Context, id uuid.UUID) (*models.Customer, error) {
	query := `
		SELECT id, phone, fullname, email, is_active, created_at, updated_at
		FROM customers
		WHERE id = $1
	`

	var customer models.Customer
	err := r.db.GetContext(ctx, &customer, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

// GetCustomerByPhone retrieves a customer by normalized phone number.
// Returns (nil, nil) when no record exists.
func (r *AuthRepo) GetCustomerByPhone(ctx context.Context, phone string) (*models.Customer, error) {
	query := `
		SELECT id, phone, fullname, email, is_active, created_at, updated_at
		FROM customers
		WHERE phone = $1
	`

	var customer models.Customer
	err := r.db.GetContext(ctx, &customer, query, phone)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return &customer, nil
}

// CreateCustomer inserts a new customer record
func (r *AuthRepo) CreateCustomer(ctx context.Context, customer *models.Customer) error {
	customer.ID = uuid.New()
	now := time.Now()
	customer.CreatedAt = now
	customer.UpdatedAt = now

	query := `
		INSERT INTO customers (id, phone, fullname, email, is_active, created_at, updated_at)
		VALUES (:id, :phone, :fullname, :email, :is_active, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, customer)
	if err != nil {
		return fmt.Errorf("failed to insert customer: %w", err)
	}

	return nil
}
