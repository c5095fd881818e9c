package models

import (
	"time"

	"github.com/google/uuid"
)

// LeadStatus tracks a loan lead through its lifecycle
type LeadStatus string

const (
	LeadStatusNew       LeadStatus = "new"
	LeadStatusContacted LeadStatus = "contacted"
	LeadStatusQualified LeadStatus = "qualified"
	LeadStatusDisbursed LeadStatus = "disbursed"
	LeadStatusRejected  LeadStatus = "rejected"
)

// Valid reports whether the status is a known lifecycle state.
func (s LeadStatus) Valid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualified, LeadStatusDisbursed, LeadStatusRejected:
		return true
	}
	return false
}

// Lead represents a loan application lead
type Lead struct {
	ID         uuid.UUID  `json:"id" db:"id"`
	CustomerID *uuid.UUID `json:"customer_id,omitempty" db:"customer_id"`
	FullName   string     `json:"fullname" db:"fullname"`
	Phone      string     `json:"phone" db:"phone"`
	LoanType   string     `json:"loan_type" db:"loan_type"`
	Amount     float64    `json:"amount" db:"amount"`
	Status     LeadStatus `json:"status" db:"status"`
	CreatedAt  time.Time  `json:"created_at" db:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at" db:"updated_at"`
}

// CreateLeadRequest represents an inbound lead submission
type CreateLeadRequest struct {
	FullName string  `json:"fullname" validate:"required"`
	Phone    string  `json:"phone" validate:"required"`
	LoanType string  `json:"loan_type" validate:"required"`
	Amount   float64 `json:"amount"`
}

// UpdateLeadStatusRequest represents an admin status transition request
type UpdateLeadStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// LeadEvent is the message published on lead lifecycle changes
type LeadEvent struct {
	Type       string     `json:"type"`
	LeadID     uuid.UUID  `json:"lead_id"`
	Status     LeadStatus `json:"status"`
	OccurredAt time.Time  `json:"occurred_at"`
}
