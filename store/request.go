package store

import (
	"time"

	"github.com/google/uuid"
	"github.com/jinzhu/gorm"
	log "github.com/sirupsen/logrus"

	"github.com/helpmate/helpmate-api/schema"
	"github.com/helpmate/helpmate-api/utils"
)

const expireReason = "expired"

// applyRequestEvent moves a request forward by one lifecycle event. The WHERE
// clause carries the full set of legal source states, so the precondition and
// the transition are one atomic statement; callers that must not lose the
// race check the returned flag.
func applyRequestEvent(db *gorm.DB, requestID uuid.UUID, event schema.RequestEvent, extra map[string]interface{}) (bool, error) {
	sources := schema.RequestEventSources(event)
	target, err := schema.NextRequestState(sources[0], event)
	if err != nil {
		return false, err
	}

	updates := map[string]interface{}{"status": target}
	for k, v := range extra {
		updates[k] = v
	}

	result := db.Model(schema.Request{}).
		Where("id = ? AND status IN (?)", requestID, sources).
		Updates(updates)
	if result.Error != nil {
		return false, result.Error
	}

	return result.RowsAffected > 0, nil
}

// CreateRequest posts a new help request at OPEN. The caller must hold a
// seeker profile. Reverse geocoding of the location is best effort; a geo
// lookup failure never fails the creation.
func (s *MarketStore) CreateRequest(seekerNumber, title, description string, loc schema.Location) (*schema.Request, error) {
	account, err := s.GetAccount(seekerNumber)
	if err != nil {
		return nil, err
	}
	if !account.Profile.IsSeeker {
		return nil, ErrNotSeeker
	}

	if resolved, err := utils.PoliticalGeoInfo(loc); err == nil {
		loc = resolved
	} else {
		log.WithFields(log.Fields{
			"prefix": "store",
			"error":  err,
		}).Warn("resolve request location")
	}

	r := schema.Request{
		SeekerNumber: seekerNumber,
		Title:        title,
		Description:  description,
		Latitude:     loc.Latitude,
		Longitude:    loc.Longitude,
		Country:      loc.Country,
		County:       loc.County,
		Status:       schema.RequestStateOpen,
	}

	if err := s.ormDB.Create(&r).Error; err != nil {
		return nil, err
	}

	return &r, nil
}

func (s *MarketStore) GetRequest(requestID uuid.UUID) (*schema.Request, error) {
	var r schema.Request
	if err := s.ormDB.Where("id = ?", requestID).First(&r).Error; err != nil {
		if gorm.IsRecordNotFoundError(err) {
			return nil, ErrRequestNotFound
		}
		return nil, err
	}
	return &r, nil
}

// ListOpenRequests returns every request still accepting interests, newest
// first. Distance filtering is the caller's concern.
func (s *MarketStore) ListOpenRequests() ([]schema.Request, error) {
	requests := []schema.Request{}
	if err := s.ormDB.
		Where("status = ?", schema.RequestStateOpen).
		Order("created_at desc").
		Find(&requests).Error; err != nil {
		return nil, err
	}
	return requests, nil
}

// CloseRequest closes a request before it is confirmed. Interests on it are
// left untouched; they become moot by virtue of the request state.
func (s *MarketStore) CloseRequest(seekerNumber string, requestID uuid.UUID, reason string) error {
	now := time.Now()
	result := s.ormDB.Model(schema.Request{}).
		Where("id = ? AND seeker_number = ? AND status IN (?)",
			requestID, seekerNumber, schema.RequestEventSources(schema.RequestEventClosed)).
		Updates(map[string]interface{}{
			"status":        schema.RequestStateClosed,
			"closed_at":     &now,
			"closed_reason": reason,
		})
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected > 0 {
		return nil
	}

	// lost the conditional update; report which precondition failed
	r, err := s.GetRequest(requestID)
	if err != nil {
		return err
	}
	if r.SeekerNumber != seekerNumber {
		return ErrNotRequestOwner
	}
	return ErrRequestNotCloseable
}

// ExpireRequests closes OPEN requests older than the given window. It runs
// from the background worker only.
func (s *MarketStore) ExpireRequests(olderThan time.Duration) (int64, error) {
	now := time.Now()
	result := s.ormDB.Model(schema.Request{}).
		Set("gorm:query_option", "FOR UPDATE").
		Where("status = ? AND created_at <= ?", schema.RequestStateOpen, now.Add(-olderThan)).
		Updates(map[string]interface{}{
			"status":        schema.RequestStateClosed,
			"closed_at":     &now,
			"closed_reason": expireReason,
		})
	if result.Error != nil {
		return 0, result.Error
	}
	return result.RowsAffected, nil
}
