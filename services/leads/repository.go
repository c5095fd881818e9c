package leads

import (
	"context"

	"github.com/google/uuid"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_repository.go -package=mocks github.com/Roastcoder/finonest-server-sub001/services/leads LeadRepo

// LeadRepo is the lead persistence interface. GetLeadByID returns
// (nil, nil) when no record exists.
type LeadRepo interface {
	CreateLead(ctx context.Context, lead *models.Lead) error
	GetLeadByID(ctx context.Context, id uuid.UUID) (*models.Lead, error)
	ListLeads(ctx context.Context, status models.LeadStatus, limit, offset int) ([]*models.Lead, error)
	ListLeadsByCustomer(ctx context.Context, customerID uuid.UUID) ([]*models.Lead, error)
	UpdateLeadStatus(ctx context.Context, id uuid.UUID, status models.LeadStatus) error
}
