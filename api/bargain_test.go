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
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/helpmate/helpmate-api/api/mocks"
	"github.com/helpmate/helpmate-api/schema"
	"github.com/helpmate/helpmate-api/store"
)

func TestCreateOffer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	conversationID := uuid.New()
	amount := decimal.RequireFromString("150.00")
	a.EXPECT().
		CreateOffer("helper-1", conversationID, amount).
		Return(&schema.Bargain{
			ID:             uuid.New(),
			ConversationID: conversationID,
			CurrentAmount:  amount,
			InitiatedBy:    "helper-1",
			Status:         schema.BargainStatePendingSeeker,
			HelperApproved: true,
		}, nil).
		Times(1)

	router := testRouter("helper-1", func(r *gin.Engine) {
		r.POST("/conversations/:conversationID/bargains", s.createOffer)
	})

	req := httptest.NewRequest("POST", "/conversations/"+conversationID.String()+"/bargains",
		strings.NewReader(`{"amount":"150.00"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.Bargain `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, schema.BargainStatePendingSeeker, resp.Result.Status)
	assert.True(t, resp.Result.HelperApproved)
	assert.False(t, resp.Result.SeekerApproved)
}

// the second of two racing first offers loses the partial unique index on
// active bargains and must surface as a conflict, not a second bargain
func TestCreateOfferRaceLoserConflicts(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	conversationID := uuid.New()
	a.EXPECT().
		CreateOffer("helper-1", conversationID, gomock.Any()).
		Return(nil, store.ErrOfferConflict).
		Times(1)

	router := testRouter("helper-1", func(r *gin.Engine) {
		r.POST("/conversations/:conversationID/bargains", s.createOffer)
	})

	req := httptest.NewRequest("POST", "/conversations/"+conversationID.String()+"/bargains",
		strings.NewReader(`{"amount":"150.00"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusConflict, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1506), resp.Code)
}

func TestCreateOfferInvalidAmount(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	conversationID := uuid.New()
	a.EXPECT().
		CreateOffer("seeker-1", conversationID, gomock.Any()).
		Return(nil, store.ErrInvalidAmount).
		Times(1)

	router := testRouter("seeker-1", func(r *gin.Engine) {
		r.POST("/conversations/:conversationID/bargains", s.createOffer)
	})

	req := httptest.NewRequest("POST", "/conversations/"+conversationID.String()+"/bargains",
		strings.NewReader(`{"amount":"-10"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1500), resp.Code)
}

func TestAcceptOffer(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	bargainID := uuid.New()
	a.EXPECT().
		AcceptOffer("seeker-1", bargainID).
		Return(&schema.Bargain{
			ID:             bargainID,
			Status:         schema.BargainStateAgreed,
			HelperApproved: true,
			SeekerApproved: true,
		}, nil).
		Times(1)

	router := testRouter("seeker-1", func(r *gin.Engine) {
		r.PATCH("/bargains/:bargainID/accept", s.acceptOffer)
	})

	req := httptest.NewRequest("PATCH", "/bargains/"+bargainID.String()+"/accept", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.Bargain `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, schema.BargainStateAgreed, resp.Result.Status)
	assert.True(t, resp.Result.Agreed())
}

func TestConfirmDealByHelper(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	bargainID := uuid.New()
	a.EXPECT().
		ConfirmDeal("helper-1", bargainID).
		Return(nil, store.ErrSeekerOnly).
		Times(1)

	router := testRouter("helper-1", func(r *gin.Engine) {
		r.PATCH("/bargains/:bargainID/confirm", s.confirmDeal)
	})

	req := httptest.NewRequest("PATCH", "/bargains/"+bargainID.String()+"/confirm", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1505), resp.Code)
}

func TestConfirmDealNotAgreed(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	bargainID := uuid.New()
	a.EXPECT().
		ConfirmDeal("seeker-1", bargainID).
		Return(nil, store.ErrBargainNotAgreed).
		Times(1)

	router := testRouter("seeker-1", func(r *gin.Engine) {
		r.PATCH("/bargains/:bargainID/confirm", s.confirmDeal)
	})

	req := httptest.NewRequest("PATCH", "/bargains/"+bargainID.String()+"/confirm", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1503), resp.Code)
}

func TestCancelConfirmedBargain(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	bargainID := uuid.New()
	a.EXPECT().
		CancelBargain("seeker-1", bargainID).
		Return(store.ErrBargainFinalized).
		Times(1)

	router := testRouter("seeker-1", func(r *gin.Engine) {
		r.PATCH("/bargains/:bargainID/cancel", s.cancelBargain)
	})

	req := httptest.NewRequest("PATCH", "/bargains/"+bargainID.String()+"/cancel", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1502), resp.Code)
}

func TestGetBargainHistory(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	conversationID := uuid.New()
	a.EXPECT().
		GetBargainHistory("seeker-1", conversationID).
		Return([]schema.Bargain{
			{ID: uuid.New(), Status: schema.BargainStateCancelled},
			{ID: uuid.New(), Status: schema.BargainStateConfirmed},
		}, nil).
		Times(1)

	router := testRouter("seeker-1", func(r *gin.Engine) {
		r.GET("/conversations/:conversationID/bargains", s.getBargainHistory)
	})

	req := httptest.NewRequest("GET", "/conversations/"+conversationID.String()+"/bargains", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result []schema.Bargain `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Result, 2)
}
