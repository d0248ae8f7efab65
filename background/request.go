package background

import (
	"context"

	"github.com/google/uuid"
	log "github.com/sirupsen/logrus"

	"github.com/helpmate/helpmate-api/consts"
	"github.com/helpmate/helpmate-api/schema"
	"github.com/helpmate/helpmate-api/utils"
)

// task names shared between the API enqueuer and the worker
const (
	TaskBroadcastNewRequest    = "broadcast_new_request"
	TaskNotifyInterestReceived = "notify_interest_received"
	TaskNotifyInterestAccepted = "notify_interest_accepted"
	TaskNotifyInterestRejected = "notify_interest_rejected"
	TaskNotifyNewOffer         = "notify_new_offer"
	TaskNotifyDealConfirmed    = "notify_deal_confirmed"
	TaskNotifyPaymentCompleted = "notify_payment_completed"
	TaskNotifyServiceCompleted = "notify_service_completed"
	TaskExpireRequests         = "expire_stale_requests"
)

// OneSignal template IDs
const (
	BROADCAST_NEW_REQUEST    = "5f0c7a49-2cba-4a91-85a6-1f4d8be03a52"
	NOTIFY_INTEREST_RECEIVED = "0a47cd12-9e63-4f4e-b5da-4de6940dcfd1"
	NOTIFY_INTEREST_ACCEPTED = "e0b1c7fa-3d74-4d0a-9a0e-6c2b5a714f09"
	NOTIFY_INTEREST_REJECTED = "97c5d6a8-60a1-47f1-9cbb-0e35c1d2ab64"
	NOTIFY_NEW_OFFER         = "2d8b9c3e-1f42-4a57-8a6d-bd09e75c4f18"
	NOTIFY_DEAL_CONFIRMED    = "c1a4e8d7-5b20-4f6e-9d83-7f61b2a0c495"
	NOTIFY_PAYMENT_COMPLETED = "84f2a6b0-7d15-49c8-a3e9-52c0d8b1f7e6"
	NOTIFY_SERVICE_COMPLETED = "4b7d0e92-8c36-4fa1-b5d4-91a3c6e20f78"
)

// BroadcastNewRequest is a background job to notify the helpers around a
// freshly posted request
func (m *BackgroundManager) BroadcastNewRequest(requestID string) error {
	id, err := uuid.Parse(requestID)
	if err != nil {
		return err
	}

	r, err := m.store.GetRequest(id)
	if err != nil {
		return err
	}

	helpers, err := m.mongo.NearestHelpers(consts.BROADCAST_DISTANCE_RANGE, schema.Location{
		Latitude:  r.Latitude,
		Longitude: r.Longitude,
	})
	if err != nil {
		return err
	}

	cohort := make([]string, 0, len(helpers))
	for _, h := range helpers {
		if h == r.SeekerNumber {
			continue
		}
		cohort = append(cohort, h)
	}
	if len(cohort) == 0 {
		return nil
	}

	return m.notifier.NotifyAccountsByTemplate(cohort, BROADCAST_NEW_REQUEST, map[string]interface{}{
		"notification_type": "BROADCAST_NEW_REQUEST",
		"request_id":        requestID,
	})
}

// NotifyInterestReceived is a background job to tell the seeker a helper has
// raised a hand
func (m *BackgroundManager) NotifyInterestReceived(requestID, helperNumber string) error {
	id, err := uuid.Parse(requestID)
	if err != nil {
		return err
	}

	r, err := m.store.GetRequest(id)
	if err != nil {
		return err
	}

	return m.notifier.NotifyAccountsByTemplate([]string{r.SeekerNumber}, NOTIFY_INTEREST_RECEIVED, map[string]interface{}{
		"notification_type": "NOTIFY_INTEREST_RECEIVED",
		"request_id":        requestID,
		"helper_number":     helperNumber,
	})
}

// NotifyInterestAccepted is a background job to tell the chosen helper a
// conversation is open
func (m *BackgroundManager) NotifyInterestAccepted(helperNumber, conversationID string) error {
	return m.notifier.NotifyAccountsByTemplate([]string{helperNumber}, NOTIFY_INTEREST_ACCEPTED, map[string]interface{}{
		"notification_type": "NOTIFY_INTEREST_ACCEPTED",
		"conversation_id":   conversationID,
	})
}

// NotifyInterestRejected is a background job to tell a helper the seeker
// declined
func (m *BackgroundManager) NotifyInterestRejected(helperNumber, requestID string) error {
	return m.notifier.NotifyAccountsByTemplate([]string{helperNumber}, NOTIFY_INTEREST_REJECTED, map[string]interface{}{
		"notification_type": "NOTIFY_INTEREST_REJECTED",
		"request_id":        requestID,
	})
}

// NotifyNewOffer is a background job to tell the counterpart a new amount is
// on the table
func (m *BackgroundManager) NotifyNewOffer(conversationID, offererNumber string) error {
	id, err := uuid.Parse(conversationID)
	if err != nil {
		return err
	}

	conv, err := m.store.GetConversation(offererNumber, id)
	if err != nil {
		return err
	}

	return m.notifier.NotifyAccountsByTemplate([]string{conv.CounterpartOf(offererNumber)}, NOTIFY_NEW_OFFER, map[string]interface{}{
		"notification_type": "NOTIFY_NEW_OFFER",
		"conversation_id":   conversationID,
	})
}

// NotifyDealConfirmed is a background job to tell the helper the seeker has
// locked the agreed amount
func (m *BackgroundManager) NotifyDealConfirmed(conversationID, seekerNumber string) error {
	id, err := uuid.Parse(conversationID)
	if err != nil {
		return err
	}

	conv, err := m.store.GetConversation(seekerNumber, id)
	if err != nil {
		return err
	}

	return m.notifier.NotifyAccountsByTemplate([]string{conv.HelperNumber}, NOTIFY_DEAL_CONFIRMED, map[string]interface{}{
		"notification_type": "NOTIFY_DEAL_CONFIRMED",
		"conversation_id":   conversationID,
	})
}

// NotifyPaymentCompleted is a background job to tell the helper the seeker
// has paid
func (m *BackgroundManager) NotifyPaymentCompleted(transactionID, helperNumber string) error {
	return m.notifier.NotifyAccountsByTemplate([]string{helperNumber}, NOTIFY_PAYMENT_COMPLETED, map[string]interface{}{
		"notification_type": "NOTIFY_PAYMENT_COMPLETED",
		"transaction_id":    transactionID,
	})
}

// NotifyServiceCompleted is a background job to tell the counterpart the
// service is done and feedback is expected. It also kicks off the reminder
// workflow for both participants.
func (m *BackgroundManager) NotifyServiceCompleted(transactionID, counterpartNumber string) error {
	id, err := uuid.Parse(transactionID)
	if err != nil {
		return err
	}

	tx, err := m.store.GetServiceTransaction(counterpartNumber, id)
	if err != nil {
		return err
	}

	if m.cadence != nil {
		if err := utils.TriggerFeedbackReminder(*m.cadence, context.Background(),
			[]string{tx.SeekerNumber, tx.HelperNumber}); err != nil {
			log.WithField("prefix", "background").WithError(err).Error("trigger feedback reminder")
		}
	}

	return m.notifier.NotifyAccountsByTemplate([]string{counterpartNumber}, NOTIFY_SERVICE_COMPLETED, map[string]interface{}{
		"notification_type": "NOTIFY_SERVICE_COMPLETED",
		"transaction_id":    transactionID,
	})
}

// ExpireStaleRequests is a background job to close requests that stayed open
// past the expiry window
func (m *BackgroundManager) ExpireStaleRequests() error {
	expired, err := m.store.ExpireRequests(consts.REQUEST_EXPIRY_WINDOW)
	if err != nil {
		return err
	}

	if expired > 0 {
		log.WithField("prefix", "background").Infof("expired %d stale requests", expired)
	}
	return nil
}
