package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"

	"github.com/helpmate/helpmate-api/external/payment"
	"github.com/helpmate/helpmate-api/schema"
)

// helpmate main datastore
type MarketCore interface {
	Ping() error

	// Account
	CreateAccount(accountNumber, encPubKey string, isSeeker, isHelper bool, metadata map[string]interface{}) (*schema.Account, error)
	GetAccount(accountNumber string) (*schema.Account, error)
	UpdateAccountMetadata(accountNumber string, metadata map[string]interface{}) error
	UpdateAccountGeoPosition(accountNumber string, latitude, longitude float64) error

	// Request
	CreateRequest(seekerNumber, title, description string, loc schema.Location) (*schema.Request, error)
	GetRequest(requestID uuid.UUID) (*schema.Request, error)
	ListOpenRequests() ([]schema.Request, error)
	CloseRequest(seekerNumber string, requestID uuid.UUID, reason string) error
	ExpireRequests(olderThan time.Duration) (int64, error)

	// Interest
	ExpressInterest(requestID uuid.UUID, helperNumber, message string) (*schema.Interest, error)
	ListInterests(seekerNumber string, requestID uuid.UUID) ([]schema.Interest, error)
	AcceptInterest(seekerNumber string, requestID uuid.UUID, helperNumber string) (*schema.Conversation, error)
	RejectInterest(seekerNumber string, requestID uuid.UUID, helperNumber, reason string) error
	WithdrawInterest(helperNumber string, requestID uuid.UUID) error

	// Conversation
	GetConversation(accountNumber string, conversationID uuid.UUID) (*schema.Conversation, error)

	// Bargain
	CreateOffer(accountNumber string, conversationID uuid.UUID, amount decimal.Decimal) (*schema.Bargain, error)
	AcceptOffer(accountNumber string, bargainID uuid.UUID) (*schema.Bargain, error)
	ConfirmDeal(accountNumber string, bargainID uuid.UUID) (*schema.Bargain, error)
	CancelBargain(accountNumber string, bargainID uuid.UUID) error
	GetBargainHistory(accountNumber string, conversationID uuid.UUID) ([]schema.Bargain, error)

	// Settlement
	CreateServiceTransaction(accountNumber string, conversationID, bargainID uuid.UUID) (*schema.ServiceTransaction, error)
	GetServiceTransaction(accountNumber string, transactionID uuid.UUID) (*schema.ServiceTransaction, error)
	ProcessPayment(ctx context.Context, seekerNumber string, transactionID uuid.UUID, method string) (*schema.ServiceTransaction, error)
	CompleteService(accountNumber string, transactionID uuid.UUID) (*schema.ServiceTransaction, error)
	SubmitFeedback(accountNumber string, transactionID uuid.UUID, score int, comment string) (*schema.ServiceTransaction, error)
	ListPendingFeedbacks(accountNumber string) ([]schema.ServiceTransaction, error)
}

// MarketStore is an implementation of MarketCore
type MarketStore struct {
	ormDB   *gorm.DB
	mongo   MongoStore
	gateway payment.Gateway
}

func NewMarketStore(ormDB *gorm.DB, mongo MongoStore, gateway payment.Gateway) *MarketStore {
	return &MarketStore{
		ormDB:   ormDB,
		mongo:   mongo,
		gateway: gateway,
	}
}

// Ping is to check the storage health status
func (s *MarketStore) Ping() error {
	return s.ormDB.DB().Ping()
}
