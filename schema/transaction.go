package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentState string

const (
	PaymentStatePending    PaymentState = "PENDING"
	PaymentStateProcessing PaymentState = "PROCESSING"
	PaymentStateCompleted  PaymentState = "COMPLETED"
	PaymentStateFailed     PaymentState = "FAILED"
	PaymentStateRefunded   PaymentState = "REFUNDED"
)

// PaymentClaimSources are the states a charge attempt may claim a
// transaction from. FAILED is included so a declined charge can be retried
// through the same payment call; PROCESSING is excluded so racing retries
// produce exactly one charge attempt.
var PaymentClaimSources = []PaymentState{PaymentStatePending, PaymentStateFailed}

// Claimable reports whether a charge attempt may take the transaction over
// from this payment state.
func (s PaymentState) Claimable() bool {
	for _, c := range PaymentClaimSources {
		if s == c {
			return true
		}
	}
	return false
}

type ServiceState string

const (
	ServiceStateActive    ServiceState = "ACTIVE"
	ServiceStateCompleted ServiceState = "COMPLETED"
	ServiceStateCancelled ServiceState = "CANCELLED"
	ServiceStateDisputed  ServiceState = "DISPUTED"
)

// ServiceTransaction is the settlement record created once a bargain is
// confirmed. One per conversation, enforced by the unique index; creation is
// idempotent on top of it. The payment and service axes are independent
// except that the service may only complete after the payment has.
type ServiceTransaction struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ConversationID uuid.UUID       `json:"conversation_id" gorm:"type:uuid;not null;unique_index"`
	BargainID      uuid.UUID       `json:"bargain_id" gorm:"type:uuid;not null"`
	Amount         decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	SeekerNumber   string          `json:"seeker_number" gorm:"not null;index"`
	HelperNumber   string          `json:"helper_number" gorm:"not null;index"`
	PaymentStatus  PaymentState    `json:"payment_status" gorm:"not null" sql:"default:'PENDING'"`
	PaymentMethod  string          `json:"payment_method"`
	PaymentRef     string          `json:"payment_ref"`
	ServiceStatus  ServiceState    `json:"service_status" gorm:"not null" sql:"default:'ACTIVE'"`
	CompletedAt    *time.Time      `json:"completed_at"`
	CompletedBy    string          `json:"completed_by"`

	SeekerFeedbackProvided bool       `json:"seeker_feedback_provided" sql:"default:false"`
	SeekerFeedbackAt       *time.Time `json:"seeker_feedback_at"`
	HelperFeedbackProvided bool       `json:"helper_feedback_provided" sql:"default:false"`
	HelperFeedbackAt       *time.Time `json:"helper_feedback_at"`
	BothFeedbacksCompleted bool       `json:"both_feedbacks_completed" sql:"default:false"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// FeedbackProvidedBy reports whether the given participant already submitted
// feedback for this transaction.
func (t ServiceTransaction) FeedbackProvidedBy(accountNumber string) bool {
	switch accountNumber {
	case t.SeekerNumber:
		return t.SeekerFeedbackProvided
	case t.HelperNumber:
		return t.HelperFeedbackProvided
	}
	return false
}
