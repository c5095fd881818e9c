package repository

import (
	"github.com/jmoiron/sqlx"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/database"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

// AuthRepo implements the credential store adapter over Postgres and the
// OTP challenge store over Redis.
type AuthRepo struct {
	cfg         *models.Config
	db          *sqlx.DB
	redisClient *database.RedisClient
}

// NewAuthRepo creates a new auth repository instance
func NewAuthRepo(cfg *models.Config, db *sqlx.DB, redisClient *database.RedisClient) *AuthRepo {
	return &AuthRepo{
		cfg:         cfg,
		db:          db,
		redisClient: redisClient,
	}
}
