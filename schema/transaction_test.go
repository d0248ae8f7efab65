package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

// FAILED must stay retryable and PROCESSING must stay claimed, or racing
// payment retries could double-charge
func TestPaymentStateClaimable(t *testing.T) {
	tests := []struct {
		state     PaymentState
		claimable bool
	}{
		{PaymentStatePending, true},
		{PaymentStateFailed, true},
		{PaymentStateProcessing, false},
		{PaymentStateCompleted, false},
		{PaymentStateRefunded, false},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.claimable, tt.state.Claimable(), "state %s", tt.state)
	}

	assert.ElementsMatch(t,
		[]PaymentState{PaymentStatePending, PaymentStateFailed},
		PaymentClaimSources)
}
