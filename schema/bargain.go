package schema

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type BargainState string

const (
	BargainStatePendingHelper BargainState = "PENDING_HELPER_RESPONSE"
	BargainStatePendingSeeker BargainState = "PENDING_SEEKER_RESPONSE"
	BargainStateAgreed        BargainState = "AGREED"
	BargainStateConfirmed     BargainState = "CONFIRMED"
	BargainStateCancelled     BargainState = "CANCELLED"
)

// Bargain is the active price negotiation of a conversation. At most one
// non-cancelled bargain exists per conversation: a counter offer replaces the
// amount and approvals in place rather than creating a parallel row. Amounts
// are exact decimals, never binary floats.
type Bargain struct {
	ID             uuid.UUID       `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	ConversationID uuid.UUID       `json:"conversation_id" gorm:"type:uuid;not null;index"`
	CurrentAmount  decimal.Decimal `json:"current_amount" gorm:"type:decimal(12,2);not null"`
	InitiatedBy    string          `json:"initiated_by" gorm:"not null"`
	Status         BargainState    `json:"status" gorm:"not null"`
	HelperApproved bool            `json:"helper_approved" sql:"default:false"`
	SeekerApproved bool            `json:"seeker_approved" sql:"default:false"`
	IsConfirmed    bool            `json:"is_confirmed" sql:"default:false"`
	ConfirmedAt    *time.Time      `json:"confirmed_at"`
	CreatedAt      time.Time       `json:"created_at"`
	UpdatedAt      time.Time       `json:"updated_at"`

	Offers []BargainOffer `json:"offers" gorm:"foreignkey:BargainID"`
}

// Agreed reports whether both parties approved the current amount.
func (b Bargain) Agreed() bool {
	return b.HelperApproved && b.SeekerApproved
}

// OfferStateFor returns the waiting state a fresh offer puts the bargain in:
// the party that did not just offer owes the next response.
func OfferStateFor(conv Conversation, offerer string) BargainState {
	if offerer == conv.SeekerNumber {
		return BargainStatePendingHelper
	}
	return BargainStatePendingSeeker
}

// ApplyOffer puts a proposed amount on the table. Only the offerer's own
// approval survives: the counterpart approved a different amount, so AGREED
// stays unreachable until both sides approve the amount currently offered.
func (b *Bargain) ApplyOffer(conv Conversation, offerer string, amount decimal.Decimal) {
	b.CurrentAmount = amount
	b.InitiatedBy = offerer
	b.Status = OfferStateFor(conv, offerer)
	b.SeekerApproved = offerer == conv.SeekerNumber
	b.HelperApproved = offerer == conv.HelperNumber
	b.IsConfirmed = false
	b.ConfirmedAt = nil
}

// BargainOffer is an append-only log entry of one proposed amount. Rows are
// never mutated or deleted; they exist for history display.
type BargainOffer struct {
	ID        uuid.UUID       `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	BargainID uuid.UUID       `json:"bargain_id" gorm:"type:uuid;not null;index"`
	OfferedBy string          `json:"offered_by" gorm:"not null"`
	Amount    decimal.Decimal `json:"amount" gorm:"type:decimal(12,2);not null"`
	CreatedAt time.Time       `json:"created_at"`
}
