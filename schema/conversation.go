package schema

import (
	"time"

	"github.com/google/uuid"
)

// Conversation binds exactly one seeker and one helper to a request. It is
// created once, by interest acceptance, and its participant pair never
// changes; every bargain and settlement operation re-checks membership
// against it.
type Conversation struct {
	ID           uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	RequestID    uuid.UUID `json:"request_id" gorm:"type:uuid;not null;unique_index"`
	SeekerNumber string    `json:"seeker_number" gorm:"not null;index"`
	HelperNumber string    `json:"helper_number" gorm:"not null;index"`
	CreatedAt    time.Time `json:"created_at"`
}

// HasParticipant reports whether an account number is one of the two
// conversation members.
func (c Conversation) HasParticipant(accountNumber string) bool {
	return accountNumber == c.SeekerNumber || accountNumber == c.HelperNumber
}

// CounterpartOf returns the other member of the pair. It returns an empty
// string when the given account is not a participant.
func (c Conversation) CounterpartOf(accountNumber string) string {
	switch accountNumber {
	case c.SeekerNumber:
		return c.HelperNumber
	case c.HelperNumber:
		return c.SeekerNumber
	}
	return ""
}
