package store

import (
	"time"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/helpmate/helpmate-api/schema"
)

const (
	RatingRoleHelper = "helper"
	RatingRoleSeeker = "seeker"
)

// SubmitFeedback records one party's rating of the other for a completed
// transaction. The per-role flag update and the unique rating index both
// reject a second submission; when the second side submits, the transaction
// is marked fully fed back. The rated account's running average is
// recomputed from all its rating rows afterwards.
func (s *MarketStore) SubmitFeedback(accountNumber string, transactionID uuid.UUID, score int, comment string) (*schema.ServiceTransaction, error) {
	if !schema.ValidRatingScore(score) {
		return nil, ErrInvalidRatingScore
	}

	tx := s.ormDB.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}

	var t schema.ServiceTransaction
	if err := tx.Set("gorm:query_option", "FOR UPDATE").
		Where("id = ?", transactionID).First(&t).Error; err != nil {
		tx.Rollback()
		return nil, ErrTransactionNotFound
	}
	if accountNumber != t.SeekerNumber && accountNumber != t.HelperNumber {
		tx.Rollback()
		return nil, ErrNotParticipant
	}
	if t.ServiceStatus != schema.ServiceStateCompleted {
		tx.Rollback()
		return nil, ErrServiceNotCompleted
	}

	now := time.Now()
	toNumber := t.HelperNumber
	flagColumn := "seeker_feedback_provided"
	atColumn := "seeker_feedback_at"
	ratedRole := RatingRoleHelper
	if accountNumber == t.HelperNumber {
		toNumber = t.SeekerNumber
		flagColumn = "helper_feedback_provided"
		atColumn = "helper_feedback_at"
		ratedRole = RatingRoleSeeker
	}

	result := tx.Model(schema.ServiceTransaction{}).
		Where("id = ? AND "+flagColumn+" = ?", transactionID, false).
		Updates(map[string]interface{}{
			flagColumn: true,
			atColumn:   &now,
		})
	if result.Error != nil {
		tx.Rollback()
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		tx.Rollback()
		return nil, ErrFeedbackAlreadyGiven
	}

	rating := schema.Rating{
		TransactionID: transactionID,
		FromNumber:    accountNumber,
		ToNumber:      toNumber,
		Score:         score,
		Comment:       comment,
	}
	if err := tx.Create(&rating).Error; err != nil {
		tx.Rollback()
		if isUniqueViolation(err) {
			return nil, ErrFeedbackAlreadyGiven
		}
		return nil, err
	}

	if err := tx.Model(schema.ServiceTransaction{}).
		Where("id = ? AND seeker_feedback_provided = ? AND helper_feedback_provided = ?",
			transactionID, true, true).
		Update("both_feedbacks_completed", true).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	s.refreshProfileRating(toNumber, ratedRole)

	updated, err := s.GetServiceTransaction(accountNumber, transactionID)
	if err != nil {
		return nil, err
	}
	return updated, nil
}

// refreshProfileRating recomputes the arithmetic mean of all ratings an
// account received in one role and pushes it to the discovery profile. The
// aggregate is derived data; a refresh failure is logged, never surfaced.
func (s *MarketStore) refreshProfileRating(accountNumber, role string) {
	roleColumn := "helper_number"
	if role == RatingRoleSeeker {
		roleColumn = "seeker_number"
	}

	var agg struct {
		Average float64
		Count   int64
	}
	if err := s.ormDB.Raw(
		`SELECT COALESCE(AVG(r.score), 0) AS average, COUNT(*) AS count
		FROM ratings r
		JOIN service_transactions t ON r.transaction_id = t.id
		WHERE r.to_number = ? AND t.`+roleColumn+` = r.to_number`,
		accountNumber,
	).Scan(&agg).Error; err != nil {
		log.WithFields(log.Fields{
			"prefix":         "store",
			"account_number": accountNumber,
			"error":          err,
		}).Error("recompute rating aggregate")
		return
	}

	if err := s.mongo.UpdateProfileRating(accountNumber, role, schema.RatingSummary{
		Average: agg.Average,
		Count:   agg.Count,
	}); err != nil {
		log.WithFields(log.Fields{
			"prefix":         "store",
			"account_number": accountNumber,
			"error":          err,
		}).Error("update profile rating")
	}
}
