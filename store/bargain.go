package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/shopspring/decimal"

	"github.com/helpmate/helpmate-api/schema"
)

// CreateOffer opens or counters the active bargain of a conversation. There
// is at most one non-cancelled bargain per conversation: a counter offer
// replaces amount and initiator in place and resets both approvals so that
// only the offerer's implicit approval survives. Every proposed amount is
// also appended to the immutable offer log. Offers are serialized per
// conversation by locking the conversation row; a FOR UPDATE on the bargain
// alone would lock nothing when two first offers race on an empty table. The
// partial unique index on active bargains backstops the invariant.
func (s *MarketStore) CreateOffer(accountNumber string, conversationID uuid.UUID, amount decimal.Decimal) (*schema.Bargain, error) {
	if !amount.IsPositive() {
		return nil, ErrInvalidAmount
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var conv schema.Conversation
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", conversationID).First(&conv).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrConversationNotFound
		}
		return nil, err
	}
	if !conv.HasParticipant(accountNumber) {
		tx.Rollback()
		return nil, ErrNotParticipant
	}

	var bargain schema.Bargain
	err := tx.
		Where("conversation_id = ? AND status != ?", conversationID, schema.BargainStateCancelled).
		First(&bargain).Error
	switch {
	case err == nil:
		if bargain.Status == schema.BargainStateConfirmed {
			tx.Rollback()
			return nil, ErrBargainFinalized
		}
		bargain.ApplyOffer(conv, accountNumber, amount)
		if err := tx.Save(&bargain).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	case gorm.IsRecordNotFoundError(err):
		bargain = schema.Bargain{ConversationID: conversationID}
		bargain.ApplyOffer(conv, accountNumber, amount)
		if err := tx.Create(&bargain).Error; err != nil {
			tx.Rollback()
			if isUniqueViolation(err) {
				return nil, ErrOfferConflict
			}
			return nil, err
		}
	default:
		tx.Rollback()
		return nil, err
	}

	offer := schema.BargainOffer{
		BargainID: bargain.ID,
		OfferedBy: accountNumber,
		Amount:    amount,
	}
	if err := tx.Create(&offer).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// first offer pushes the request into bargaining; once it has advanced
	// past that point the event simply finds no matching row
	if _, err := applyRequestEvent(tx, conv.RequestID, schema.RequestEventBargainStarted, nil); err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &bargain, nil
}

func (s *MarketStore) getBargainWithConversation(db *gorm.DB, bargainID uuid.UUID) (*schema.Bargain, *schema.Conversation, error) {
	var bargain schema.Bargain
	if err := db.Where("id = ?", bargainID).First(&bargain).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, nil, ErrBargainNotFound
		}
		return nil, nil, err
	}

	conv, err := getConversation(db, bargain.ConversationID)
	if err != nil {
		return nil, nil, err
	}
	return &bargain, conv, nil
}

// AcceptOffer records the caller's approval of the current amount. Approving
// twice is a no-op; once both sides approved, the bargain is AGREED.
func (s *MarketStore) AcceptOffer(accountNumber string, bargainID uuid.UUID) (*schema.Bargain, error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var bargain schema.Bargain
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", bargainID).First(&bargain).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrBargainNotFound
		}
		return nil, err
	}

	conv, err := getConversation(tx, bargain.ConversationID)
	if err != nil {
		tx.Rollback()
		return nil, err
	}
	if !conv.HasParticipant(accountNumber) {
		tx.Rollback()
		return nil, ErrNotParticipant
	}

	switch bargain.Status {
	case schema.BargainStateConfirmed, schema.BargainStateCancelled:
		tx.Rollback()
		return nil, ErrBargainFinalized
	}

	if accountNumber == conv.SeekerNumber {
		bargain.SeekerApproved = true
	} else {
		bargain.HelperApproved = true
	}
	if bargain.Agreed() {
		bargain.Status = schema.BargainStateAgreed
	}

	if err := tx.Save(&bargain).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &bargain, nil
}

// ConfirmDeal locks the agreed amount in. Only the seeker may confirm, only
// from AGREED, and the conditional update makes CONFIRMED a one-way door.
func (s *MarketStore) ConfirmDeal(accountNumber string, bargainID uuid.UUID) (*schema.Bargain, error) {
	bargain, conv, err := s.getBargainWithConversation(s.ormDB, bargainID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(accountNumber) {
		return nil, ErrNotParticipant
	}
	if accountNumber != conv.SeekerNumber {
		return nil, ErrSeekerOnly
	}

	now := time.Now()
	result := s.ormDB.Model(schema.Bargain{}).
		Where("id = ? AND status = ?", bargainID, schema.BargainStateAgreed).
		Updates(map[string]interface{}{
			"status":       schema.BargainStateConfirmed,
			"is_confirmed": true,
			"confirmed_at": &now,
		})
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, ErrBargainNotAgreed
	}

	bargain.Status = schema.BargainStateConfirmed
	bargain.IsConfirmed = true
	bargain.ConfirmedAt = &now
	return bargain, nil
}

// CancelBargain abandons a negotiation. Either participant may cancel until
// the deal is confirmed. The parent request keeps its state; a new offer
// simply starts a fresh bargain.
func (s *MarketStore) CancelBargain(accountNumber string, bargainID uuid.UUID) error {
	_, conv, err := s.getBargainWithConversation(s.ormDB, bargainID)
	if err != nil {
		return err
	}
	if !conv.HasParticipant(accountNumber) {
		return ErrNotParticipant
	}

	result := s.ormDB.Model(schema.Bargain{}).
		Where("id = ? AND status NOT IN (?)", bargainID,
			[]schema.BargainState{schema.BargainStateConfirmed, schema.BargainStateCancelled}).
		Update("status", schema.BargainStateCancelled)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return ErrBargainFinalized
	}
	return nil
}

// GetBargainHistory returns every bargain of a conversation, cancelled ones
// included, newest first, with their offer logs nested.
func (s *MarketStore) GetBargainHistory(accountNumber string, conversationID uuid.UUID) ([]schema.Bargain, error) {
	conv, err := getConversation(s.ormDB, conversationID)
	if err != nil {
		return nil, err
	}
	if !conv.HasParticipant(accountNumber) {
		return nil, ErrNotParticipant
	}

	bargains := []schema.Bargain{}
	if err := s.ormDB.
		Preload("Offers", func(db *gorm.DB) *gorm.DB {
			return db.Order("bargain_offers.created_at desc")
		}).
		Where("conversation_id = ?", conversationID).
		Order("created_at desc").
		Find(&bargains).Error; err != nil {
		return nil, err
	}
	return bargains, nil
}
