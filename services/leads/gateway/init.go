package gateway

import (
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/nsq"
)

// LeadGW publishes lead lifecycle events through the message queue
type LeadGW struct {
	producer *nsq.Producer
}

// NewLeadGW creates a new lead gateway instance
func NewLeadGW(producer *nsq.Producer) *LeadGW {
	return &LeadGW{
		producer: producer,
	}
}
