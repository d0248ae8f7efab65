package payment

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	log "github.com/sirupsen/logrus"
)

const logPrefix = "payment"

var ErrChargeDeclined = fmt.Errorf("charge declined by gateway")

// DeclineAmount is the sentinel charge amount the sandbox gateway refuses,
// so a failed settlement path can be exercised end to end.
var DeclineAmount = decimal.RequireFromString("66.66")

// Charge describes one settlement attempt handed to the gateway.
type Charge struct {
	TransactionID string
	AccountNumber string
	Amount        decimal.Decimal
	Method        string
}

// Gateway is the single capability the settlement store needs from a payment
// provider: a binary settled/failed outcome plus an opaque reference string.
type Gateway interface {
	Charge(ctx context.Context, charge Charge) (string, error)
}

// SandboxGateway settles every charge locally and fabricates a payment
// reference. It stands in for a real provider integration.
type SandboxGateway struct{}

func NewSandboxGateway() *SandboxGateway {
	return &SandboxGateway{}
}

func (g *SandboxGateway) Charge(ctx context.Context, charge Charge) (string, error) {
	if charge.Amount.Equal(DeclineAmount) {
		log.WithFields(log.Fields{
			"prefix":      logPrefix,
			"transaction": charge.TransactionID,
		}).Warn("sandbox charge declined")
		return "", ErrChargeDeclined
	}

	ref := fmt.Sprintf("sandbox-%s", uuid.New().String())

	log.WithFields(log.Fields{
		"prefix":      logPrefix,
		"transaction": charge.TransactionID,
		"amount":      charge.Amount.String(),
		"method":      charge.Method,
		"ref":         ref,
	}).Info("sandbox charge settled")

	return ref, nil
}
