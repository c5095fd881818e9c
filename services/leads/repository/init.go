package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

// LeadRepo handles lead persistence
type LeadRepo struct {
	cfg *models.Config
	db  *sqlx.DB
}

// NewLeadRepo creates a new lead repository instance
func NewLeadRepo(cfg *models.Config, db *sqlx.DB) *LeadRepo {
	return &LeadRepo{
		cfg: cfg,
		db:  db,
	}
}
