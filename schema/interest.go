package schema

import (
	"time"

	"github.com/google/uuid"
)

type InterestState string

const (
	InterestStatePending   InterestState = "PENDING"
	InterestStateReviewing InterestState = "REVIEWING"
	InterestStateAccepted  InterestState = "ACCEPTED"
	InterestStateRejected  InterestState = "REJECTED"
	InterestStateWithdrawn InterestState = "WITHDRAWN"
)

// Interest is a helper's bid to fulfill a request. One row per
// (request, helper) pair; a withdrawn row is resurrected on re-apply instead
// of inserting a second one.
type Interest struct {
	ID           uuid.UUID     `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	RequestID    uuid.UUID     `json:"request_id" gorm:"type:uuid;not null;unique_index:idx_interest_request_helper"`
	HelperNumber string        `json:"helper_number" gorm:"not null;unique_index:idx_interest_request_helper"`
	Message      string        `json:"message"`
	Status       InterestState `json:"status" gorm:"not null" sql:"default:'PENDING'"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}

// Rejection permanently records that a seeker turned a helper down for a
// request. The interest row may later be reused; this row never is, which is
// what forecloses re-application.
type Rejection struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	RequestID    uuid.UUID `json:"request_id" gorm:"type:uuid;not null;unique_index:idx_rejection_request_helper"`
	HelperNumber string    `json:"helper_number" gorm:"not null;unique_index:idx_rejection_request_helper"`
	SeekerNumber string    `json:"seeker_number" gorm:"not null"`
	Reason       string    `json:"reason" gorm:"not null"`
	CreatedAt    time.Time `json:"created_at"`
}
