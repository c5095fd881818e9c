package gateway

import (
	"github.com/Roastcoder/finonest-server-sub001/internal/pkg/nsq"
)

// AuthGW publishes auth events through the message queue
type AuthGW struct {
	producer *nsq.Producer
}

// NewAuthGW creates a new auth gateway instance
func NewAuthGW(producer *nsq.Producer) *AuthGW {
	return &AuthGW{
		producer: producer,
	}
}
