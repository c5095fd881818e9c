package leads

import (
	"context"

	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/models"
)

//go:generate mockgen -destination=mocks/mock_gateway.go -package=mocks github.com/Roastcoder/finonest-server-sub001/services/leads LeadGW

// LeadGW publishes lead lifecycle events to downstream consumers
// (CRM sync, notification workers).
type LeadGW interface {
	PublishLeadEvent(ctx context.Context, event *models.LeadEvent) error
}
