package api

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/helpmate/helpmate-api/background"
	"github.com/helpmate/helpmate-api/geo"
	"github.com/helpmate/helpmate-api/schema"
)

func parseUUIDParam(c *gin.Context, name string) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return uuid.UUID{}, false
	}
	return id, true
}

// createRequest is the API for a seeker to post a new help request
func (s *Server) createRequest(c *gin.Context) {
	seekerNumber := c.GetString("requester")

	var params struct {
		Title       string  `json:"title"`
		Description string  `json:"description"`
		Latitude    float64 `json:"latitude" binding:"required"`
		Longitude   float64 `json:"longitude" binding:"required"`
	}

	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	r, err := s.store.CreateRequest(seekerNumber, params.Title, params.Description, schema.Location{
		Latitude:  params.Latitude,
		Longitude: params.Longitude,
	})
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.dispatchTask(background.TaskBroadcastNewRequest, r.ID.String())

	c.JSON(http.StatusOK, gin.H{"result": r})
}

// listOpenRequests is the API for browsing open requests. When the caller
// supplies its position, every row is annotated with the great-circle
// distance; filtering by range stays on the client.
func (s *Server) listOpenRequests(c *gin.Context) {
	requests, err := s.store.ListOpenRequests()
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	seekerNumbers := make([]string, 0, len(requests))
	for _, r := range requests {
		seekerNumbers = append(seekerNumbers, r.SeekerNumber)
	}
	profiles, err := s.mongoStore.GetProfiles(seekerNumbers)
	if err != nil {
		log.WithError(err).Warn("resolve seeker profiles")
		profiles = map[string]schema.Profile{}
	}

	var callerLat, callerLon float64
	var hasPosition bool
	if latStr, lonStr := c.Query("lat"), c.Query("lon"); latStr != "" && lonStr != "" {
		lat, latErr := strconv.ParseFloat(latStr, 64)
		lon, lonErr := strconv.ParseFloat(lonStr, 64)
		if latErr != nil || lonErr != nil {
			abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
			return
		}
		callerLat, callerLon = lat, lon
		hasPosition = true
	}

	summaries := make([]schema.RequestSummary, 0, len(requests))
	for _, r := range requests {
		summary := schema.RequestSummary{Request: r}
		if p, ok := profiles[r.SeekerNumber]; ok {
			summary.SeekerRating = p.SeekerRating.Average
		}
		if hasPosition {
			d := geo.Distance(callerLat, callerLon, r.Latitude, r.Longitude)
			summary.DistanceKM = &d
		}
		summaries = append(summaries, summary)
	}

	c.JSON(http.StatusOK, gin.H{"result": summaries})
}

// getRequest is the API to fetch one request
func (s *Server) getRequest(c *gin.Context) {
	requestID, ok := parseUUIDParam(c, "requestID")
	if !ok {
		return
	}

	r, err := s.store.GetRequest(requestID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": r})
}

// closeRequest is the API for the owning seeker to close a request before
// it is confirmed
func (s *Server) closeRequest(c *gin.Context) {
	seekerNumber := c.GetString("requester")
	requestID, ok := parseUUIDParam(c, "requestID")
	if !ok {
		return
	}

	var params struct {
		Reason string `json:"reason"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.store.CloseRequest(seekerNumber, requestID, params.Reason); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
