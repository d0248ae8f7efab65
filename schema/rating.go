package schema

import (
	"time"

	"github.com/google/uuid"
)

// Rating is one feedback record from one party to the other for one
// transaction. The unique index makes a second submission from the same side
// a constraint violation instead of a silent overwrite.
type Rating struct {
	ID            uuid.UUID `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	TransactionID uuid.UUID `json:"transaction_id" gorm:"type:uuid;not null;unique_index:idx_rating_tx_from_to"`
	FromNumber    string    `json:"from_number" gorm:"not null;unique_index:idx_rating_tx_from_to"`
	ToNumber      string    `json:"to_number" gorm:"not null;unique_index:idx_rating_tx_from_to;index"`
	Score         int       `json:"score" gorm:"not null"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// ValidRatingScore reports whether a score is inside the 1-5 star band.
func ValidRatingScore(score int) bool {
	return score >= 1 && score <= 5
}
