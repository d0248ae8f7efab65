package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpmate/helpmate-api/store"
)

var (
	errorMessageMap = map[int64]string{
		999:  "internal server error",
		1000: "invalid signature",
		1001: "invalid authorization format",
		1002: "difference between the request time and the current time is too large",
		1003: "invalid token",

		1010: "invalid parameters",
		1011: "cannot parse request",

		1100: "this account has been registered or has been taken",
		1101: "account not found",
		1102: store.ErrNotSeeker.Error(),
		1103: store.ErrNotHelper.Error(),

		1200: store.ErrRequestNotFound.Error(),
		1201: store.ErrNotRequestOwner.Error(),
		1202: store.ErrRequestNotOpen.Error(),
		1203: store.ErrRequestNotCloseable.Error(),

		1300: store.ErrAlreadyExpressed.Error(),
		1301: store.ErrHelperRejected.Error(),
		1302: store.ErrInterestNotFound.Error(),
		1303: store.ErrInterestNotPending.Error(),
		1304: store.ErrInterestAccepted.Error(),
		1305: store.ErrRejectionReasonRequired.Error(),

		1400: store.ErrConversationNotFound.Error(),
		1401: store.ErrNotParticipant.Error(),

		1500: store.ErrInvalidAmount.Error(),
		1501: store.ErrBargainNotFound.Error(),
		1502: store.ErrBargainFinalized.Error(),
		1503: store.ErrBargainNotAgreed.Error(),
		1504: store.ErrBargainNotConfirmed.Error(),
		1505: store.ErrSeekerOnly.Error(),
		1506: store.ErrOfferConflict.Error(),

		1600: store.ErrTransactionNotFound.Error(),
		1601: store.ErrPaymentNotAllowed.Error(),
		1602: store.ErrPaymentFailed.Error(),
		1603: store.ErrServiceNotCompletable.Error(),
		1604: store.ErrServiceNotCompleted.Error(),
		1605: store.ErrFeedbackAlreadyGiven.Error(),
		1606: store.ErrInvalidRatingScore.Error(),
	}

	errorInternalServer             = errorJSON(999)
	errorInvalidSignature           = errorJSON(1000)
	errorInvalidAuthorizationFormat = errorJSON(1001)
	errorRequestTimeTooSkewed       = errorJSON(1002)
	errorInvalidToken               = errorJSON(1003)

	errorInvalidParameters  = errorJSON(1010)
	errorCannotParseRequest = errorJSON(1011)

	errorAccountTaken    = errorJSON(1100)
	errorAccountNotFound = errorJSON(1101)
)

type ErrorResponse struct {
	Code    int64  `json:"code"`
	Message string `json:"message"`
}

// errorJSON converts an error code to a standardized error object
func errorJSON(code int64) ErrorResponse {
	var message string
	if msg, ok := errorMessageMap[code]; ok {
		message = msg
	} else {
		message = "unknown"
	}

	return ErrorResponse{
		Code:    code,
		Message: message,
	}
}

// storeErrorStatus maps each sentinel store error to its HTTP status and
// error code. Unknown errors fall through to 500/999.
var storeErrorStatus = map[error]struct {
	status int
	code   int64
}{
	store.ErrNotSeeker:  {http.StatusForbidden, 1102},
	store.ErrNotHelper:  {http.StatusForbidden, 1103},
	store.ErrSeekerOnly: {http.StatusForbidden, 1505},

	store.ErrRequestNotFound:     {http.StatusNotFound, 1200},
	store.ErrNotRequestOwner:     {http.StatusForbidden, 1201},
	store.ErrRequestNotOpen:      {http.StatusBadRequest, 1202},
	store.ErrRequestNotCloseable: {http.StatusBadRequest, 1203},

	store.ErrAlreadyExpressed:        {http.StatusBadRequest, 1300},
	store.ErrHelperRejected:          {http.StatusBadRequest, 1301},
	store.ErrInterestNotFound:        {http.StatusNotFound, 1302},
	store.ErrInterestNotPending:      {http.StatusBadRequest, 1303},
	store.ErrInterestAccepted:        {http.StatusBadRequest, 1304},
	store.ErrRejectionReasonRequired: {http.StatusBadRequest, 1305},

	store.ErrConversationNotFound: {http.StatusNotFound, 1400},
	store.ErrNotParticipant:       {http.StatusForbidden, 1401},

	store.ErrInvalidAmount:       {http.StatusBadRequest, 1500},
	store.ErrBargainNotFound:     {http.StatusNotFound, 1501},
	store.ErrBargainFinalized:    {http.StatusBadRequest, 1502},
	store.ErrBargainNotAgreed:    {http.StatusBadRequest, 1503},
	store.ErrBargainNotConfirmed: {http.StatusBadRequest, 1504},
	store.ErrOfferConflict:       {http.StatusConflict, 1506},

	store.ErrTransactionNotFound:   {http.StatusNotFound, 1600},
	store.ErrPaymentNotAllowed:     {http.StatusBadRequest, 1601},
	store.ErrPaymentFailed:         {http.StatusInternalServerError, 1602},
	store.ErrServiceNotCompletable: {http.StatusBadRequest, 1603},
	store.ErrServiceNotCompleted:   {http.StatusBadRequest, 1604},
	store.ErrFeedbackAlreadyGiven:  {http.StatusBadRequest, 1605},
	store.ErrInvalidRatingScore:    {http.StatusBadRequest, 1606},
}

// abortWithStoreError reports a store failure with its distinct kind; only
// errors outside the sentinel set surface as a generic internal error.
func abortWithStoreError(c *gin.Context, err error) {
	if m, ok := storeErrorStatus[err]; ok {
		abortWithEncoding(c, m.status, errorJSON(m.code), err)
		return
	}
	abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer, err)
}
