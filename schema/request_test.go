package schema

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNextRequestStateLegalPath(t *testing.T) {
	state := RequestStateOpen

	state, err := NextRequestState(state, RequestEventInterestAccepted)
	assert.NoError(t, err)
	assert.Equal(t, RequestStateUnderReview, state)

	state, err = NextRequestState(state, RequestEventBargainStarted)
	assert.NoError(t, err)
	assert.Equal(t, RequestStateBargaining, state)

	state, err = NextRequestState(state, RequestEventPaymentCompleted)
	assert.NoError(t, err)
	assert.Equal(t, RequestStateConfirmed, state)

	state, err = NextRequestState(state, RequestEventServiceCompleted)
	assert.NoError(t, err)
	assert.Equal(t, RequestStateCompleted, state)
}

func TestNextRequestStateBargainFromOpen(t *testing.T) {
	// the first offer may arrive before any interest bookkeeping caught up
	state, err := NextRequestState(RequestStateOpen, RequestEventBargainStarted)
	assert.NoError(t, err)
	assert.Equal(t, RequestStateBargaining, state)
}

func TestNextRequestStateRejectsIllegalEvents(t *testing.T) {
	cases := []struct {
		current RequestState
		event   RequestEvent
	}{
		{RequestStateOpen, RequestEventPaymentCompleted},
		{RequestStateOpen, RequestEventServiceCompleted},
		{RequestStateUnderReview, RequestEventInterestAccepted},
		{RequestStateBargaining, RequestEventServiceCompleted},
		{RequestStateConfirmed, RequestEventClosed},
		{RequestStateCompleted, RequestEventClosed},
		{RequestStateClosed, RequestEventInterestAccepted},
		{RequestStateCancelled, RequestEventBargainStarted},
		{RequestStateCompleted, RequestEventCancelled},
	}

	for _, c := range cases {
		next, err := NextRequestState(c.current, c.event)
		assert.Equal(t, ErrInvalidRequestTransition, err, "%s on %s", c.event, c.current)
		assert.Equal(t, c.current, next)
	}
}

func TestRequestEventSourcesMatchTransitionTable(t *testing.T) {
	sources := RequestEventSources(RequestEventClosed)
	assert.Len(t, sources, 3)
	for _, s := range sources {
		next, err := NextRequestState(s, RequestEventClosed)
		assert.NoError(t, err)
		assert.Equal(t, RequestStateClosed, next)
	}
}

func TestRequestStateIsTerminal(t *testing.T) {
	assert.True(t, RequestStateCompleted.IsTerminal())
	assert.True(t, RequestStateClosed.IsTerminal())
	assert.True(t, RequestStateCancelled.IsTerminal())
	assert.False(t, RequestStateOpen.IsTerminal())
	assert.False(t, RequestStateBargaining.IsTerminal())
	assert.False(t, RequestStateConfirmed.IsTerminal())
}
