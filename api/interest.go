package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpmate/helpmate-api/background"
)

// expressInterest is the API for a helper to raise a hand on an open request
func (s *Server) expressInterest(c *gin.Context) {
	helperNumber := c.GetString("requester")
	requestID, ok := parseUUIDParam(c, "requestID")
	if !ok {
		return
	}

	var params struct {
		Message string `json:"message"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	interest, err := s.store.ExpressInterest(requestID, helperNumber, params.Message)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.dispatchTask(background.TaskNotifyInterestReceived, requestID.String(), helperNumber)

	c.JSON(http.StatusOK, gin.H{"result": interest})
}

// listInterests is the API for the owning seeker to review the interests on
// a request
func (s *Server) listInterests(c *gin.Context) {
	seekerNumber := c.GetString("requester")
	requestID, ok := parseUUIDParam(c, "requestID")
	if !ok {
		return
	}

	interests, err := s.store.ListInterests(seekerNumber, requestID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": interests})
}

// acceptInterest is the API for the owning seeker to pick one helper. The
// accepted interest opens the conversation for bargaining.
func (s *Server) acceptInterest(c *gin.Context) {
	seekerNumber := c.GetString("requester")
	requestID, ok := parseUUIDParam(c, "requestID")
	if !ok {
		return
	}
	helperNumber := c.Param("helperNumber")

	conversation, err := s.store.AcceptInterest(seekerNumber, requestID, helperNumber)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.dispatchTask(background.TaskNotifyInterestAccepted, helperNumber, conversation.ID.String())

	c.JSON(http.StatusOK, gin.H{"result": conversation})
}

// rejectInterest is the API for the owning seeker to decline a helper. A
// rejection is permanent for the request and must carry a reason.
func (s *Server) rejectInterest(c *gin.Context) {
	seekerNumber := c.GetString("requester")
	requestID, ok := parseUUIDParam(c, "requestID")
	if !ok {
		return
	}
	helperNumber := c.Param("helperNumber")

	var params struct {
		Reason string `json:"reason"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	if err := s.store.RejectInterest(seekerNumber, requestID, helperNumber, params.Reason); err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.dispatchTask(background.TaskNotifyInterestRejected, helperNumber, requestID.String())

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// withdrawInterest is the API for a helper to take back a pending interest
func (s *Server) withdrawInterest(c *gin.Context) {
	helperNumber := c.GetString("requester")
	requestID, ok := parseUUIDParam(c, "requestID")
	if !ok {
		return
	}

	if err := s.store.WithdrawInterest(helperNumber, requestID); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
