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

// testRouter wires a handler the way setupRouter does, with an
// authenticated requester already resolved.
func testRouter(requester string, register func(*gin.Engine)) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(func(c *gin.Context) {
		c.Set("requester", requester)
		c.Next()
	})
	register(router)
	return router
}

func TestCreateRequest(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	requestID := uuid.New()
	a.EXPECT().
		CreateRequest("seeker-1", "fix sink", "kitchen sink leaks", schema.Location{Latitude: 25.03, Longitude: 121.56}).
		Return(&schema.Request{
			ID:           requestID,
			SeekerNumber: "seeker-1",
			Title:        "fix sink",
			Status:       schema.RequestStateOpen,
		}, nil).
		Times(1)

	router := testRouter("seeker-1", func(r *gin.Engine) {
		r.POST("/requests", s.createRequest)
	})

	body := `{"title":"fix sink","description":"kitchen sink leaks","latitude":25.03,"longitude":121.56}`
	req := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result schema.Request `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, requestID, resp.Result.ID)
	assert.Equal(t, schema.RequestStateOpen, resp.Result.Status)
}

func TestCreateRequestNotSeeker(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	a.EXPECT().
		CreateRequest(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil, store.ErrNotSeeker).
		Times(1)

	router := testRouter("helper-1", func(r *gin.Engine) {
		r.POST("/requests", s.createRequest)
	})

	body := `{"title":"t","description":"d","latitude":1.0,"longitude":2.0}`
	req := httptest.NewRequest("POST", "/requests", strings.NewReader(body))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusForbidden, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1102), resp.Code)
}

func TestListOpenRequestsWithDistance(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := Server{store: a, mongoStore: m}

	a.EXPECT().ListOpenRequests().Return([]schema.Request{
		{
			ID:           uuid.New(),
			SeekerNumber: "seeker-1",
			Latitude:     25.0330,
			Longitude:    121.5654,
			Status:       schema.RequestStateOpen,
		},
	}, nil).Times(1)

	m.EXPECT().GetProfiles([]string{"seeker-1"}).Return(map[string]schema.Profile{
		"seeker-1": {
			AccountNumber: "seeker-1",
			SeekerRating:  schema.RatingSummary{Average: 4.5, Count: 10},
		},
	}, nil).Times(1)

	router := testRouter("helper-1", func(r *gin.Engine) {
		r.GET("/requests", s.listOpenRequests)
	})

	req := httptest.NewRequest("GET", "/requests?lat=25.0478&lon=121.5319", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result []schema.RequestSummary `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Result, 1)
	assert.Equal(t, 4.5, resp.Result[0].SeekerRating)
	if assert.NotNil(t, resp.Result[0].DistanceKM) {
		// around 3.7 km between the two points
		assert.InDelta(t, 3.7, *resp.Result[0].DistanceKM, 0.5)
	}
}

func TestListOpenRequestsWithoutPosition(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	m := mocks.NewMockMongoStore(ctl)
	s := Server{store: a, mongoStore: m}

	a.EXPECT().ListOpenRequests().Return([]schema.Request{
		{ID: uuid.New(), SeekerNumber: "seeker-1"},
	}, nil).Times(1)
	m.EXPECT().GetProfiles(gomock.Any()).Return(map[string]schema.Profile{}, nil).Times(1)

	router := testRouter("helper-1", func(r *gin.Engine) {
		r.GET("/requests", s.listOpenRequests)
	})

	req := httptest.NewRequest("GET", "/requests", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code, "wrong status code")

	var resp struct {
		Result []schema.RequestSummary `json:"result"`
	}
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Len(t, resp.Result, 1)
	assert.Nil(t, resp.Result[0].DistanceKM)
}

func TestCloseRequestNotCloseable(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	requestID := uuid.New()
	a.EXPECT().
		CloseRequest("seeker-1", requestID, "no longer needed").
		Return(store.ErrRequestNotCloseable).
		Times(1)

	router := testRouter("seeker-1", func(r *gin.Engine) {
		r.PATCH("/requests/:requestID/close", s.closeRequest)
	})

	req := httptest.NewRequest("PATCH", "/requests/"+requestID.String()+"/close",
		strings.NewReader(`{"reason":"no longer needed"}`))
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")

	var resp ErrorResponse
	assert.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, int64(1203), resp.Code)
}

func TestGetRequestInvalidID(t *testing.T) {
	ctl := gomock.NewController(t)
	defer ctl.Finish()

	a := mocks.NewMockMarketCore(ctl)
	s := Server{store: a}

	router := testRouter("helper-1", func(r *gin.Engine) {
		r.GET("/requests/:requestID", s.getRequest)
	})

	req := httptest.NewRequest("GET", "/requests/not-a-uuid", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusBadRequest, w.Code, "wrong status code")
}
