package store

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/helpmate/helpmate-api/external/payment"
	"github.com/helpmate/helpmate-api/schema"
)

// CreateServiceTransaction opens the settlement record for a confirmed
// bargain. Creation is idempotent per conversation: when the unique
// constraint fires, the existing row is returned unchanged.
func (s *MarketStore) CreateServiceTransaction(accountNumber string, conversationID, bargainID uuid.UUID) (*schema.ServiceTransaction, error) {
	conv, err := getConversation(s.ormDB, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(accountNumber) {
		return nil, ErrNotParticipant
	}

	var bargain schema.Bargain
	if err := s.ormDB.
		Where("id = ? AND conversation_id = ?", bargainID, conversationID).
		First(&bargain).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrBargainNotFound
		}
		return nil, err
	}
	if bargain.Status != schema.BargainStateConfirmed {
		return nil, ErrBargainNotConfirmed
	}

	t := schema.ServiceTransaction{
		ConversationID: conversationID,
		BargainID:      bargainID,
		Amount:         bargain.CurrentAmount,
		SeekerNumber:   conv.SeekerNumber,
		HelperNumber:   conv.HelperNumber,
		PaymentStatus:  schema.PaymentStatePending,
		ServiceStatus:  schema.ServiceStateActive,
	}

	if err := s.ormDB.Create(&t).Error; err != nil {
		if !isUniqueViolation(err) {
			return nil, err
		}
		var existing schema.ServiceTransaction
		if err := s.ormDB.
			Where("conversation_id = ?", conversationID).
			First(&existing).Error; err != nil {
			return nil, err
		}
		return &existing, nil
	}

	return &t, nil
}

func (s *MarketStore) GetServiceTransaction(accountNumber string, transactionID uuid.UUID) (*schema.ServiceTransaction, error) {
	var t schema.ServiceTransaction
	if err := s.ormDB.Where("id = ?", transactionID).First(&t).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrTransactionNotFound
		}
		return nil, err
	}
	if accountNumber != t.SeekerNumber && accountNumber != t.HelperNumber {
		return nil, ErrNotParticipant
	}
	return &t, nil
}

// ProcessPayment drives one charge attempt. Claiming the transaction is a
// conditional update from PENDING or FAILED to PROCESSING, so of any number
// of racing calls exactly one reaches the gateway; FAILED being a legal
// source state is the documented retry path. A declined charge leaves the
// row FAILED and surfaces ErrPaymentFailed.
func (s *MarketStore) ProcessPayment(ctx context.Context, seekerNumber string, transactionID uuid.UUID, method string) (*schema.ServiceTransaction, error) {
	claim := s.ormDB.Model(schema.ServiceTransaction{}).
		Where("id = ? AND seeker_number = ? AND payment_status IN (?)",
			transactionID, seekerNumber, schema.PaymentClaimSources).
		Update("payment_status", schema.PaymentStateProcessing)
	if claim.Error != nil {
		return nil, claim.Error
	}
	if claim.RowsAffected == 0 {
		var t schema.ServiceTransaction
		if err := s.ormDB.Where("id = ?", transactionID).First(&t).Error; err != nil {
			if gorm.IsRecordNotFoundError(err) {
				return nil, ErrTransactionNotFound
			}
			return nil, err
		}
		if t.SeekerNumber != seekerNumber {
			return nil, ErrSeekerOnly
		}
		return nil, ErrPaymentNotAllowed
	}

	var t schema.ServiceTransaction
	if err := s.ormDB.Where("id = ?", transactionID).First(&t).Error; err != nil {
		return nil, err
	}

	ref, err := s.gateway.Charge(ctx, payment.Charge{
		TransactionID: t.ID.String(),
		AccountNumber: seekerNumber,
		Amount:        t.Amount,
		Method:        method,
	})
	if err != nil {
		if dbErr := s.ormDB.Model(schema.ServiceTransaction{}).
			Where("id = ? AND payment_status = ?", transactionID, schema.PaymentStateProcessing).
			Update("payment_status", schema.PaymentStateFailed).Error; dbErr != nil {
			return nil, dbErr
		}
		log.WithFields(log.Fields{
			"prefix":      "store",
			"transaction": transactionID,
			"error":       err,
		}).Error("payment charge declined")
		return nil, ErrPaymentFailed
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	if err := tx.Model(schema.ServiceTransaction{}).
		Where("id = ? AND payment_status = ?", transactionID, schema.PaymentStateProcessing).
		Updates(map[string]interface{}{
			"payment_status": schema.PaymentStateCompleted,
			"payment_method": method,
			"payment_ref":    ref,
		}).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	conv, err := getConversation(tx, t.ConversationID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	applied, err := applyRequestEvent(tx, conv.RequestID, schema.RequestEventPaymentCompleted, nil)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if !applied {
		log.WithFields(log.Fields{
			"prefix":  "store",
			"request": conv.RequestID,
		}).Warn("payment settled on a request no longer in bargaining")
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	t.PaymentStatus = schema.PaymentStateCompleted
	t.PaymentMethod = method
	t.PaymentRef = ref
	return &t, nil
}

// CompleteService marks the service fulfilled. Either participant may do it,
// but only while the service is active and the payment has settled; the
// conditional update enforces both at once.
func (s *MarketStore) CompleteService(accountNumber string, transactionID uuid.UUID) (*schema.ServiceTransaction, error) {
	t, err := s.GetServiceTransaction(accountNumber, transactionID)
	if err != nil {
		return nil, err
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	now := time.Now()
	result := tx.Model(schema.ServiceTransaction{}).
		Where("id = ? AND service_status = ? AND payment_status = ?",
			transactionID, schema.ServiceStateActive, schema.PaymentStateCompleted).
		Updates(map[string]interface{}{
			"service_status": schema.ServiceStateCompleted,
			"completed_at":   &now,
			"completed_by":   accountNumber,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrServiceNotCompletable
	}

	conv, err := getConversation(tx, t.ConversationID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if _, err := applyRequestEvent(tx, conv.RequestID, schema.RequestEventServiceCompleted, nil); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	t.ServiceStatus = schema.ServiceStateCompleted
	t.CompletedAt = &now
	t.CompletedBy = accountNumber
	return t, nil
}

// ListPendingFeedbacks returns the completed transactions on which the given
// account still owes feedback.
func (s *MarketStore) ListPendingFeedbacks(accountNumber string) ([]schema.ServiceTransaction, error) {
	transactions := []schema.ServiceTransaction{}
	if err := s.ormDB.
		Where("service_status = ? AND ((seeker_number = ? AND seeker_feedback_provided = ?) OR (helper_number = ? AND helper_feedback_provided = ?))",
			schema.ServiceStateCompleted, accountNumber, false, accountNumber, false).
		Order("completed_at asc").
		Find(&transactions).Error; err != nil {
		return nil, err
	}
	return transactions, nil
}
