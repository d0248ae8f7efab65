package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	"github.com/lib/pq"

	"github.com/helpmate/helpmate-api/schema"
)

func isUniqueViolation(err error) bool {
	pqErr, ok := err.(*pq.Error)
	return ok && pqErr.Code == "23505"
}

// ExpressInterest registers a helper's bid on a request. A withdrawn row is
// resurrected instead of inserted again; a rejected helper is permanently
// barred by the rejection record regardless of the interest row's state.
func (s *MarketStore) ExpressInterest(requestID uuid.UUID, helperNumber, message string) (*schema.Interest, error) {
	account, err := s.GetAccount(helperNumber)
	if err != nil {
		return nil, err
	}
	if !account.Profile.IsHelper {
		return nil, ErrNotHelper
	}

	var rejectionCount int
	if err := s.ormDB.Model(schema.Rejection{}).
		Where("request_id = ? AND helper_number = ?", requestID, helperNumber).
		Count(&rejectionCount).Error; err != nil {
		return nil, err
	}
	if rejectionCount > 0 {
		return nil, ErrHelperRejected
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	// hold the request row so interest intake cannot race its transitions
	var r schema.Request
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", requestID).First(&r).Error; err != nil {
		tx.Rollback()
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	if r.Status != schema.RequestStateOpen {
		tx.Rollback()
		return nil, ErrRequestNotOpen
	}

	var interest schema.Interest
	err = tx.Where("request_id = ? AND helper_number = ?", requestID, helperNumber).
		First(&interest).Error
	switch {
	case err == nil:
		if interest.Status != schema.InterestStateWithdrawn {
			tx.Rollback()
			return nil, ErrAlreadyExpressed
		}
		interest.Status = schema.InterestStatePending
		interest.Message = message
		if err := tx.Save(&interest).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	case gorm.IsRecordNotFoundError(err):
		interest = schema.Interest{
			RequestID:    requestID,
			HelperNumber: helperNumber,
			Message:      message,
			Status:       schema.InterestStatePending,
		}
		if err := tx.Create(&interest).Error; err != nil {
			tx.Rollback()
			if isUniqueViolation(err) {
				return nil, ErrAlreadyExpressed
			}
			return nil, err
		}
	default:
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &interest, nil
}

// ListInterests returns the interests on a request, oldest first. Only the
// owning seeker may browse them.
func (s *MarketStore) ListInterests(seekerNumber string, requestID uuid.UUID) ([]schema.Interest, error) {
	r, err := s.GetRequest(requestID)
	if err != nil {
		return nil, err
	}
	if r.SeekerNumber != seekerNumber {
		return nil, ErrNotRequestOwner
	}

	interests := []schema.Interest{}
	if err := s.ormDB.
		Where("request_id = ?", requestID).
		Order("created_at asc").
		Find(&interests).Error; err != nil {
		return nil, err
	}
	return interests, nil
}

// AcceptInterest selects one helper for a request. The conditional request
// update is the tie break: of any number of concurrent accept calls, exactly
// one flips OPEN to UNDER_REVIEW; the rest fail here without touching
// anything. The winning call marks the interest accepted, creates the
// conversation, and links it back, all in one transaction.
func (s *MarketStore) AcceptInterest(seekerNumber string, requestID uuid.UUID, helperNumber string) (*schema.Conversation, error) {
	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	result := tx.Model(schema.Request{}).
		Where("id = ? AND seeker_number = ? AND status IN (?)",
			requestID, seekerNumber, schema.RequestEventSources(schema.RequestEventInterestAccepted)).
		Updates(map[string]interface{}{
			"status":        schema.RequestStateUnderReview,
			"helper_number": helperNumber,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		r, err := s.GetRequest(requestID)
		if err != nil {
			return nil, err
		}
		if r.SeekerNumber != seekerNumber {
			return nil, ErrNotRequestOwner
		}
		return nil, ErrRequestNotOpen
	}

	interestUpdate := tx.Model(schema.Interest{}).
		Where("request_id = ? AND helper_number = ? AND status IN (?)",
			requestID, helperNumber,
			[]schema.InterestState{schema.InterestStatePending, schema.InterestStateReviewing}).
		Update("status", schema.InterestStateAccepted)
	if interestUpdate.Error != nil {
		tx.Rollback()
		return nil, interestUpdate.Error
	}
	if interestUpdate.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrInterestNotPending
	}

	conversation := schema.Conversation{
		RequestID:    requestID,
		SeekerNumber: seekerNumber,
		HelperNumber: helperNumber,
	}
	if err := tx.Create(&conversation).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(schema.Request{}).
		Where("id = ?", requestID).
		Update("conversation_id", conversation.ID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}
	return &conversation, nil
}

// RejectInterest turns a helper down with a mandatory reason. The rejection
// row is immutable and permanently forecloses re-application, even after the
// interest row itself is later reused.
func (s *MarketStore) RejectInterest(seekerNumber string, requestID uuid.UUID, helperNumber, reason string) error {
	if reason == "" {
		return ErrRejectionReasonRequired
	}

	r, err := s.GetRequest(requestID)
	if err != nil {
		return err
	}
	if r.SeekerNumber != seekerNumber {
		return ErrNotRequestOwner
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return tx.Error
	}

	result := tx.Model(schema.Interest{}).
		Where("request_id = ? AND helper_number = ? AND status IN (?)",
			requestID, helperNumber,
			[]schema.InterestState{schema.InterestStatePending, schema.InterestStateReviewing}).
		Update("status", schema.InterestStateRejected)
	if result.Error != nil {
		tx.Rollback()
		return result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		var count int
		if err := s.ormDB.Model(schema.Interest{}).
			Where("request_id = ? AND helper_number = ?", requestID, helperNumber).
			Count(&count).Error; err != nil {
			return err
		}
		if count == 0 {
			return ErrInterestNotFound
		}
		return ErrInterestNotPending
	}

	rejection := schema.Rejection{
		RequestID:    requestID,
		HelperNumber: helperNumber,
		SeekerNumber: seekerNumber,
		Reason:       reason,
		CreatedAt:    time.Now(),
	}
	if err := tx.Create(&rejection).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return ErrHelperRejected
		}
		return err
	}

	return tx.Commit().Error
}

// WithdrawInterest retracts a helper's own pending bid. An accepted interest
// must be resolved by the seeker instead.
func (s *MarketStore) WithdrawInterest(helperNumber string, requestID uuid.UUID) error {
	result := s.ormDB.Model(schema.Interest{}).
		Where("request_id = ? AND helper_number = ? AND status IN (?)",
			requestID, helperNumber,
			[]schema.InterestState{schema.InterestStatePending, schema.InterestStateReviewing}).
		Update("status", schema.InterestStateWithdrawn)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	var interest schema.Interest
	err := s.ormDB.Where("request_id = ? AND helper_number = ?", requestID, helperNumber).
		First(&interest).Error
	if gorm.IsRecordNotFoundError(err) {
		return ErrInterestNotFound
	}
	if err != nil {
		return err
	}
	if interest.Status == schema.InterestStateAccepted {
		return ErrInterestAccepted
	}
	return ErrInterestNotPending
}
