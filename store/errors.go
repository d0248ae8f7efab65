package store

import "fmt"

var (
	ErrNotSeeker  = fmt.Errorf("the account has no seeker profile")
	ErrNotHelper  = fmt.Errorf("the account has no helper profile")
	ErrSeekerOnly = fmt.Errorf("only the seeker of this request may perform this action")

	ErrRequestNotFound     = fmt.Errorf("the request does not exist")
	ErrNotRequestOwner     = fmt.Errorf("the request belongs to another seeker")
	ErrRequestNotOpen      = fmt.Errorf("the request is no longer open")
	ErrRequestNotCloseable = fmt.Errorf("the request has already reached a terminal state")

	ErrAlreadyExpressed        = fmt.Errorf("already expressed interest in this request")
	ErrHelperRejected          = fmt.Errorf("the helper was rejected for this request")
	ErrInterestNotFound        = fmt.Errorf("no interest expressed for this request")
	ErrInterestNotPending      = fmt.Errorf("the interest is not awaiting review")
	ErrInterestAccepted        = fmt.Errorf("an accepted interest can only be resolved by the seeker")
	ErrRejectionReasonRequired = fmt.Errorf("a rejection reason is required")

	ErrConversationNotFound = fmt.Errorf("the conversation does not exist")
	ErrNotParticipant       = fmt.Errorf("the account is not a participant of this conversation")

	ErrInvalidAmount       = fmt.Errorf("the offered amount must be positive")
	ErrOfferConflict       = fmt.Errorf("another offer opened a bargain for this conversation first")
	ErrBargainNotFound     = fmt.Errorf("the bargain does not exist")
	ErrBargainFinalized    = fmt.Errorf("the bargain has already been confirmed or cancelled")
	ErrBargainNotAgreed    = fmt.Errorf("the bargain has not been agreed by both parties")
	ErrBargainNotConfirmed = fmt.Errorf("the bargain has not been confirmed")

	ErrTransactionNotFound   = fmt.Errorf("the transaction does not exist")
	ErrPaymentNotAllowed     = fmt.Errorf("the transaction is not awaiting payment")
	ErrPaymentFailed         = fmt.Errorf("payment failed")
	ErrServiceNotCompletable = fmt.Errorf("the service cannot be completed before payment settles")
	ErrServiceNotCompleted   = fmt.Errorf("the service has not been completed")
	ErrFeedbackAlreadyGiven  = fmt.Errorf("feedback has already been submitted for this transaction")
	ErrInvalidRatingScore    = fmt.Errorf("the rating score must be between 1 and 5")
)
