package auth

import (
	"context"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Roastcoder/finonest-server-sub001/services/auth AuthGW

// AuthGW publishes auth-related messages to downstream consumers
// (the SMS dispatch worker).
type AuthGW interface {
	NotifyOTP(ctx context.Context, notification *models.OTPNotification) error
}
