package gateway

import (
	"context"
	"fmt"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/constants"
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

// PublishLeadEvent publishes a lead lifecycle event for downstream
// consumers.
func (g *LeadGW) PublishLeadEvent(_ context.Context, event *models.LeadEvent) error {
	if err := g.producer.Publish(constants.TopicLeadEvents, event); err != nil {
		return fmt.Errorf("failed to publish lead event: %w", err)
	}
	return nil
}
