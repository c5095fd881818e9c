package usecase

import (
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
	"github.com/Roastcoder/finonest-server-sub001/services/leads"
)

// LeadUC implements the lead management usecase
type LeadUC struct {
	leadRepo leads.LeadRepo
	leadGW   leads.LeadGW
	cfg      *models.Config
}

// NewLeadUC creates a new lead usecase instance
func NewLeadUC(
	leadRepo leads.LeadRepo,
	leadGW leads.LeadGW,
	cfg *models.Config,
) *LeadUC {
	return &LeadUC{
		leadRepo: leadRepo,
		leadGW:   leadGW,
		cfg:      cfg,
	}
}
