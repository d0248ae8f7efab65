package schema

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestOfferStateFor(t *testing.T) {
	conv := Conversation{
		SeekerNumber: "seeker-1",
		HelperNumber: "helper-1",
	}

	assert.Equal(t, BargainStatePendingHelper, OfferStateFor(conv, "seeker-1"))
	assert.Equal(t, BargainStatePendingSeeker, OfferStateFor(conv, "helper-1"))
}

func TestBargainAgreed(t *testing.T) {
	assert.False(t, Bargain{HelperApproved: true}.Agreed())
	assert.False(t, Bargain{SeekerApproved: true}.Agreed())
	assert.True(t, Bargain{HelperApproved: true, SeekerApproved: true}.Agreed())
}

func TestApplyOfferFirstOffer(t *testing.T) {
	conv := Conversation{
		SeekerNumber: "seeker-1",
		HelperNumber: "helper-1",
	}

	var b Bargain
	b.ApplyOffer(conv, "helper-1", decimal.RequireFromString("200.00"))

	assert.Equal(t, "helper-1", b.InitiatedBy)
	assert.Equal(t, BargainStatePendingSeeker, b.Status)
	assert.True(t, b.HelperApproved)
	assert.False(t, b.SeekerApproved)
	assert.False(t, b.Agreed())
}

// a counter offer invalidates every approval given to the previous amount,
// whatever state the negotiation had reached
func TestApplyOfferResetsApprovals(t *testing.T) {
	conv := Conversation{
		SeekerNumber: "seeker-1",
		HelperNumber: "helper-1",
	}
	now := time.Now()

	tests := []struct {
		name    string
		before  Bargain
		offerer string
	}{
		{
			name: "seeker counters a pending helper offer",
			before: Bargain{
				CurrentAmount:  decimal.RequireFromString("200.00"),
				InitiatedBy:    "helper-1",
				Status:         BargainStatePendingSeeker,
				HelperApproved: true,
			},
			offerer: "seeker-1",
		},
		{
			name: "helper counters an agreed amount",
			before: Bargain{
				CurrentAmount:  decimal.RequireFromString("180.00"),
				InitiatedBy:    "seeker-1",
				Status:         BargainStateAgreed,
				HelperApproved: true,
				SeekerApproved: true,
			},
			offerer: "helper-1",
		},
		{
			name: "stale confirmation flags do not survive a new offer",
			before: Bargain{
				CurrentAmount:  decimal.RequireFromString("180.00"),
				Status:         BargainStateAgreed,
				HelperApproved: true,
				SeekerApproved: true,
				IsConfirmed:    true,
				ConfirmedAt:    &now,
			},
			offerer: "seeker-1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			b := tt.before
			amount := decimal.RequireFromString("150.00")
			b.ApplyOffer(conv, tt.offerer, amount)

			assert.True(t, amount.Equal(b.CurrentAmount))
			assert.Equal(t, tt.offerer, b.InitiatedBy)
			assert.Equal(t, OfferStateFor(conv, tt.offerer), b.Status)
			assert.Equal(t, tt.offerer == conv.SeekerNumber, b.SeekerApproved)
			assert.Equal(t, tt.offerer == conv.HelperNumber, b.HelperApproved)
			assert.False(t, b.Agreed())
			assert.False(t, b.IsConfirmed)
			assert.Nil(t, b.ConfirmedAt)
		})
	}
}

func TestConversationParticipants(t *testing.T) {
	conv := Conversation{
		SeekerNumber: "seeker-1",
		HelperNumber: "helper-1",
	}

	assert.True(t, conv.HasParticipant("seeker-1"))
	assert.True(t, conv.HasParticipant("helper-1"))
	assert.False(t, conv.HasParticipant("stranger"))

	assert.Equal(t, "helper-1", conv.CounterpartOf("seeker-1"))
	assert.Equal(t, "seeker-1", conv.CounterpartOf("helper-1"))
	assert.Equal(t, "", conv.CounterpartOf("stranger"))
}

func TestValidRatingScore(t *testing.T) {
	assert.False(t, ValidRatingScore(0))
	assert.True(t, ValidRatingScore(1))
	assert.True(t, ValidRatingScore(5))
	assert.False(t, ValidRatingScore(6))
	assert.False(t, ValidRatingScore(-1))
}
