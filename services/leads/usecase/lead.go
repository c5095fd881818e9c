package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/logger"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/internal/utils"
	"github.com/Roastcoder/finonest-server-sub001/services/leads"
)

// Lifecycle transitions. A lead can always be rejected until it is
// disbursed; disbursed and rejected are terminal.
var allowedTransitions = map[models.LeadStatus][]models.LeadStatus{
	models.LeadStatusNew:       {models.LeadStatusContacted, models.LeadStatusRejected},
	models.LeadStatusContacted: {models.LeadStatusQualified, models.LeadStatusRejected},
	models.LeadStatusQualified: {models.LeadStatusDisbursed, models.LeadStatusRejected},
}

func transitionAllowed(from, to models.LeadStatus) bool {
	for _, s := range allowedTransitions[from] {
		if s == to {
			return true
		}
	}
	return false
}

// CreateLead records an inbound lead submission. customerID is non-nil
// when the submitter carried a valid customer token; anonymous submissions
// are accepted with it nil.
func (u *LeadUC) CreateLead(ctx context.Context, req *models.CreateLeadRequest, customerID *uuid.UUID) (*models.Lead, error) {
	isValid, formattedPhone, err := utils.ValidatePhone(req.Phone)
	if err != nil || !isValid {
		return nil, fmt.Errorf("invalid phone number")
	}

	lead := &models.Lead{
		CustomerID: customerID,
		FullName:   req.FullName,
		Phone:      formattedPhone,
		LoanType:   req.LoanType,
		Amount:     req.Amount,
	}

	if err := u.leadRepo.CreateLead(ctx, lead); err != nil {
		return nil, fmt.Errorf("failed to create lead: %w", err)
	}

	u.publishEvent(ctx, "lead.created", lead)

	logger.Info("Lead created",
		logger.String("lead_id", lead.ID.String()),
		logger.String("loan_type", lead.LoanType))

	return lead, nil
}

// GetLead retrieves a single lead
func (u *LeadUC) GetLead(ctx context.Context, id uuid.UUID) (*models.Lead, error) {
	lead, err := u.leadRepo.GetLeadByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	if lead == nil {
		return nil, leads.ErrLeadNotFound
	}
	return lead, nil
}

// ListLeads retrieves leads with an optional status filter
func (u *LeadUC) ListLeads(ctx context.Context, status models.LeadStatus, limit, offset int) ([]*models.Lead, error) {
	if status != "" && !status.Valid() {
		return nil, leads.ErrUnknownStatus
	}
	if limit <= 0 || limit > 100 {
		limit = 20
	}
	if offset < 0 {
		offset = 0
	}

	result, err := u.leadRepo.ListLeads(ctx, status, limit, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list leads: %w", err)
	}
	return result, nil
}

// ListCustomerLeads retrieves the leads linked to a customer account
func (u *LeadUC) ListCustomerLeads(ctx context.Context, customerID uuid.UUID) ([]*models.Lead, error) {
	result, err := u.leadRepo.ListLeadsByCustomer(ctx, customerID)
	if err != nil {
		return nil, fmt.Errorf("failed to list customer leads: %w", err)
	}
	return result, nil
}

// UpdateLeadStatus moves a lead through its lifecycle, enforcing the
// transition rules, and publishes the change.
func (u *LeadUC) UpdateLeadStatus(ctx context.Context, id uuid.UUID, status string) (*models.Lead, error) {
	target := models.LeadStatus(status)
	if !target.Valid() {
		return nil, leads.ErrUnknownStatus
	}

	lead, err := u.leadRepo.GetLeadByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("failed to get lead: %w", err)
	}
	if lead == nil {
		return nil, leads.ErrLeadNotFound
	}

	if !transitionAllowed(lead.Status, target) {
		return nil, fmt.Errorf("%w: %s to %s", leads.ErrInvalidTransition, lead.Status, target)
	}

	if err := u.leadRepo.UpdateLeadStatus(ctx, id, target); err != nil {
		return nil, fmt.Errorf("failed to update lead status: %w", err)
	}

	lead.Status = target
	u.publishEvent(ctx, "lead.status_changed", lead)

	logger.Info("Lead status updated",
		logger.String("lead_id", id.String()),
		logger.String("status", string(target)))

	return lead, nil
}

func (u *LeadUC) publishEvent(ctx context.Context, eventType string, lead *models.Lead) {
	event := &models.LeadEvent{
		Type:       eventType,
		LeadID:     lead.ID,
		Status:     lead.Status,
		OccurredAt: time.Now(),
	}
	if err := u.leadGW.PublishLeadEvent(ctx, event); err != nil {
		// The write already committed; consumers catch up from the queue.
		logger.Error("Failed to publish lead event",
			logger.ErrorField(err),
			logger.String("lead_id", lead.ID.String()),
			logger.String("type", eventType))
	}
}
