package api

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"

	"github.com/helpmate/helpmate-api/api/mocks"
	"github.com/helpmate/helpmate-api/schema"
	"github.com/helpmate/helpmate-api/store"
)

func TestExpressInterest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	requestID := uuid.New()
	a.EXPECT().
		ExpressInterest(requestID, "helper-1", "I can do this today").
		Return(&schema.Interest{
			RequestID:    requestID,
			HelperNumber: "helper-1",
			Status:       schema.InterestStatePending,
		}, nil).
		Times(1)

	router := testRouter("helper-1", func(r *gin.Engine) {
		r.POST("/requests/:requestID/interests", s.expressInterest)
	})

	req := httptest.NewRequest("POST", "/requests/"+requestID.String()+"/interests",
		strings.NewReader(`{"message":"I can do this today"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.Interest `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, schema.InterestStatePending, resp.Result.Status)
}

func TestExpressInterestAfterRejection(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	requestID := uuid.New()
	a.EXPECT().
		ExpressInterest(requestID, "helper-1", gomock.Any()).
		Return(nil, store.ErrHelperRejected).
		Times(1)

	router := testRouter("helper-1", func(r *gin.Engine) {
		r.POST("/requests/:requestID/interests", s.expressInterest)
	})

	req := httptest.NewRequest("POST", "/requests/"+requestID.String()+"/interests",
		strings.NewReader(`{"message":"second try"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1301), resp.Code)
}

func TestAcceptInterest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	requestID := uuid.New()
	conversationID := uuid.New()
	a.EXPECT().
		AcceptInterest("seeker-1", requestID, "helper-1").
		Return(&schema.Conversation{
			ID:           conversationID,
			RequestID:    requestID,
			SeekerNumber: "seeker-1",
			HelperNumber: "helper-1",
		}, nil).
		Times(1)

	router := testRouter("seeker-1", func(r *gin.Engine) {
		r.PATCH("/requests/:requestID/interests/:helperNumber/accept", s.acceptInterest)
	})

	req := httptest.NewRequest("PATCH",
		"/requests/"+requestID.String()+"/interests/helper-1/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.Conversation `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, conversationID, resp.Result.ID)
	assert.Equal(t, "helper-1", resp.Result.HelperNumber)
}

func TestAcceptInterestTwice(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	requestID := uuid.New()
	a.EXPECT().
		AcceptInterest("seeker-1", requestID, "helper-2").
		Return(nil, store.ErrRequestNotOpen).
		Times(1)

	router := testRouter("seeker-1", func(r *gin.Engine) {
		r.PATCH("/requests/:requestID/interests/:helperNumber/accept", s.acceptInterest)
	})

	req := httptest.NewRequest("PATCH",
		"/requests/"+requestID.String()+"/interests/helper-2/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1202), resp.Code)
}

func TestRejectInterestWithoutReason(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	requestID := uuid.New()
	a.EXPECT().
		RejectInterest("seeker-1", requestID, "helper-1", "").
		Return(store.ErrRejectionReasonRequired).
		Times(1)

	router := testRouter("seeker-1", func(r *gin.Engine) {
		r.PATCH("/requests/:requestID/interests/:helperNumber/reject", s.rejectInterest)
	})

	req := httptest.NewRequest("PATCH",
		"/requests/"+requestID.String()+"/interests/helper-1/reject",
		strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1305), resp.Code)
}

func TestWithdrawAcceptedInterest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	requestID := uuid.New()
	a.EXPECT().
		WithdrawInterest("helper-1", requestID).
		Return(store.ErrInterestAccepted).
		Times(1)

	router := testRouter("helper-1", func(r *gin.Engine) {
		r.DELETE("/requests/:requestID/interests", s.withdrawInterest)
	})

	req := httptest.NewRequest("DELETE", "/requests/"+requestID.String()+"/interests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1304), resp.Code)
}

func TestListInterestsNotOwner(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	requestID := uuid.New()
	a.EXPECT().
		ListInterests("helper-1", requestID).
		Return(nil, store.ErrNotRequestOwner).
		Times(1)

	router := testRouter("helper-1", func(r *gin.Engine) {
		r.GET("/requests/:requestID/interests", s.listInterests)
	})

	req := httptest.NewRequest("GET", "/requests/"+requestID.String()+"/interests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")
}
