package schema

import (
	"fmt"
	"time"

	"github.com/google/uuid"
)

type RequestState string

const (
	RequestStateOpen        RequestState = "OPEN"
	RequestStateUnderReview RequestState = "UNDER_REVIEW"
	RequestStateBargaining  RequestState = "BARGAINING"
	RequestStateConfirmed   RequestState = "CONFIRMED"
	RequestStateCompleted   RequestState = "COMPLETED"
	RequestStateClosed      RequestState = "CLOSED"
	RequestStateCancelled   RequestState = "CANCELLED"
)

// RequestEvent is a lifecycle event published by the interest, bargain and
// settlement stores. The request store is the only writer of Request.status;
// it applies events through NextRequestState so that every legal transition
// lives in one table.
type RequestEvent string

const (
	RequestEventInterestAccepted RequestEvent = "INTEREST_ACCEPTED"
	RequestEventBargainStarted   RequestEvent = "BARGAIN_STARTED"
	RequestEventPaymentCompleted RequestEvent = "PAYMENT_COMPLETED"
	RequestEventServiceCompleted RequestEvent = "SERVICE_COMPLETED"
	RequestEventClosed           RequestEvent = "CLOSED"
	RequestEventCancelled        RequestEvent = "CANCELLED"
)

var requestTransitions = map[RequestEvent]map[RequestState]RequestState{
	RequestEventInterestAccepted: {
		RequestStateOpen: RequestStateUnderReview,
	},
	RequestEventBargainStarted: {
		RequestStateOpen:        RequestStateBargaining,
		RequestStateUnderReview: RequestStateBargaining,
	},
	RequestEventPaymentCompleted: {
		RequestStateBargaining: RequestStateConfirmed,
	},
	RequestEventServiceCompleted: {
		RequestStateConfirmed: RequestStateCompleted,
	},
	RequestEventClosed: {
		RequestStateOpen:        RequestStateClosed,
		RequestStateUnderReview: RequestStateClosed,
		RequestStateBargaining:  RequestStateClosed,
	},
	RequestEventCancelled: {
		RequestStateOpen:        RequestStateCancelled,
		RequestStateUnderReview: RequestStateCancelled,
		RequestStateBargaining:  RequestStateCancelled,
		RequestStateConfirmed:   RequestStateCancelled,
	},
}

var ErrInvalidRequestTransition = fmt.Errorf("invalid request state transition")

// NextRequestState returns the state a request enters when an event is applied
// in the given state, or ErrInvalidRequestTransition when the event is not
// legal there.
func NextRequestState(current RequestState, event RequestEvent) (RequestState, error) {
	if next, ok := requestTransitions[event][current]; ok {
		return next, nil
	}
	return current, ErrInvalidRequestTransition
}

// RequestEventSources lists the states an event may be applied from. The store
// uses it as the WHERE clause of the conditional status update, so the
// precondition check and the transition are a single atomic statement.
func RequestEventSources(event RequestEvent) []RequestState {
	states := make([]RequestState, 0, len(requestTransitions[event]))
	for s := range requestTransitions[event] {
		states = append(states, s)
	}
	return states
}

// IsTerminal reports whether a request state accepts no further events.
func (s RequestState) IsTerminal() bool {
	switch s {
	case RequestStateCompleted, RequestStateClosed, RequestStateCancelled:
		return true
	}
	return false
}

// Request is a help request posted by a seeker at a geographic point. Terminal
// requests are retained for history, never deleted.
type Request struct {
	ID             uuid.UUID    `json:"id" gorm:"type:uuid;primary_key" sql:"default:uuid_generate_v4()"`
	SeekerNumber   string       `json:"seeker_number" gorm:"not null;index"`
	Title          string       `json:"title"`
	Description    string       `json:"description"`
	Latitude       float64      `json:"latitude"`
	Longitude      float64      `json:"longitude"`
	Country        string       `json:"country"`
	County         string       `json:"county"`
	Status         RequestState `json:"status" gorm:"not null" sql:"default:'OPEN'"`
	HelperNumber   string       `json:"helper_number"`
	ConversationID *uuid.UUID   `json:"conversation_id" gorm:"type:uuid"`
	ClosedAt       *time.Time   `json:"closed_at"`
	ClosedReason   string       `json:"closed_reason"`
	CreatedAt      time.Time    `json:"created_at"`
	UpdatedAt      time.Time    `json:"updated_at"`
}

// RequestSummary is the browse view of an open request: the request plus the
// seeker's display profile and, when the caller supplied a position, the
// great-circle distance in kilometers.
type RequestSummary struct {
	Request
	SeekerRating float64  `json:"seeker_rating"`
	DistanceKM   *float64 `json:"distance_km,omitempty"`
}
