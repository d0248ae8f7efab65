package payment

import (
	"context"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestSandboxChargeSettles(t *testing.T) {
	g := NewSandboxGateway()

	ref, err := g.Charge(context.Background(), Charge{
		TransactionID: "tx-1",
		AccountNumber: "seeker-1",
		Amount:        decimal.RequireFromString("150.00"),
		Method:        "card",
	})
	assert.NoError(t, err)
	assert.Contains(t, ref, "sandbox-")
}

func TestSandboxChargeDeclineAmount(t *testing.T) {
	g := NewSandboxGateway()

	ref, err := g.Charge(context.Background(), Charge{
		TransactionID: "tx-2",
		AccountNumber: "seeker-1",
		Amount:        DeclineAmount,
		Method:        "card",
	})
	assert.Equal(t, ErrChargeDeclined, err)
	assert.Empty(t, ref)
}
