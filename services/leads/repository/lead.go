package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/services/leads"
)

// CreateLead inserts a new lead in status new
func (r *LeadRepo) CreateLead(ctx context.Context, lead *models.Lead) error {
	lead.ID = uuid.New()
	lead.Status = models.LeadStatusNew
	now := time.Now()
	lead.CreatedAt = now
	lead.UpdatedAt = now

	query := `
		INSERT INTO leads (id, customer_id, fullname, phone, loan_type,
			amount, status, created_at, updated_at
		) VALUES (:id, :customer_id, :fullname, :phone, :loan_type,
			:amount, :status, :created_at, :updated_at)
	`
	_, err := r.db.NamedExecContext(ctx, query, lead)
	if err != nil {
		return fmt.Errorf("failed to insert lead: %w", err)
	}

	return nil
}

// GetLeadByID retrieves a lead by id. Returns (nil, nil) when no record
// exists.
func (r *LeadRepo) GetLeadByID(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	query := `
		SELECT id, customer_id, fullname, phone, loan_type, amount, status, created_at, updated_at
		FROM leads
		WHERE id = $1
	`

	var lead models.Lead
	err := r.db.GetContext(ctx, &lead, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}

	return &lead, nil
}

// ListLeads retrieves leads newest first, optionally filtered by status
func (r *LeadRepo) ListLeads(ctx context.Context, status models.LeadStatus, limit, offset int) ([]*models.Lead, error) {
	var (
		rows []*models.Lead
		err  error
	)

	if status != "" {
		query := `
			SELECT id, customer_id, fullname, phone, loan_type, amount, status, created_at, updated_at
			FROM leads
			WHERE status = $1
			ORDER BY created_at DESC
			LIMIT $2 OFFSET $3
		`
		err = r.db.SelectContext(ctx, &rows, query, status, limit, offset)
	} else {
		query := `
			SELECT id, customer_id, fullname, phone, loan_type, amount, status, created_at, updated_at
			FROM leads
			ORDER BY created_at DESC
			LIMIT $1 OFFSET $2
		`
		err = r.db.SelectContext(ctx, &rows, query, limit, offset)
	}

	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}

	return rows, nil
}

// ListLeadsByCustomer retrieves a customer's own leads, newest first
func (r *LeadRepo) ListLeadsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Lead, error) {
	query := `
		SELECT id, customer_id, fullname, phone, loan_type, amount, status, created_at, updated_at
		FROM leads
		WHERE customer_id = $1
		ORDER BY created_at DESC
	`

	var rows []*models.Lead
	if err := r.db.SelectContext(ctx, &rows, query, customerID); err != nil {
		return nil, fmt.Errorf("failed to list customer leads: %w", err)
	}

	return rows, nil
}

// UpdateLeadStatus updates a lead's status as a single-row statement
func (r *LeadRepo) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status models.LeadStatus) error {
	query := `
		UPDATE leads
		SET status = $1, updated_at = $2
		WHERE id = $3
	`

	result, err := r.db.ExecContext(ctx, query, status, time.Now(), id)
	if err != nil {
		return fmt.Errorf("failed to update lead status: %w", err)
	}

	rows, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read affected rows: %w", err)
	}
	if rows == 0 {
		return leads.ErrLeadNotFound
	}

	return nil
}
