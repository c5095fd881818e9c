package gateway

import (
	"context"
	"fmt"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/constants"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

// NotifyOTP publishes an OTP notification for the SMS dispatch worker.
// The code never appears in logs, only on the queue.
func (g *AuthGW) NotifyOTP(_ context.Context, notification *models.OTPNotification) error {
	if err := g.producer.Publish(constants.TopicOTPNotifications, notification); err != nil {
		return fmt.Errorf("failed to publish OTP notification: %w", err)
	}
	return nil
}
