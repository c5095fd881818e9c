package leads

import (
	"context"

	"github.com/google/uuid"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_usecase.go -package=mocks github.com/Roastcoder/finonest-server-sub001/services/leads LeadUC

// LeadUC represents the lead management usecase interface
type LeadUC interface {
	CreateLead(ctx context.Context, req *models.CreateLeadRequest, customerID *uuid.UUID) (*models.Lead, error)
	GetLead(ctx context.Context, id uuid.UUID) (*models.Lead, error)
	ListLeads(ctx context.Context, status models.LeadStatus, limit, offset int) ([]*models.Lead, error)
	ListCustomerLeads(ctx context.Context, customerID uuid.UUID) ([]*models.Lead, error)
	UpdateLeadStatus(ctx context.Context, id uuid.UUID, status string) (*models.Lead, error)
}
