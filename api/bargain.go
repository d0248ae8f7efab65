package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"

	"github.com/helpmate/helpmate-api/background"
)

// createOffer is the API for a participant to open a bargain or counter the
// standing offer in a conversation
func (s *Server) createOffer(c *gin.Context) {
	accountNumber := c.GetString("requester")
	conversationID, ok := parseUUIDParam(c, "conversationID")
	if !ok {
		return
	}

	var params struct {
		Amount decimal.Decimal `json:"amount"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest, err)
		return
	}

	bargain, err := s.store.CreateOffer(accountNumber, conversationID, params.Amount)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.dispatchTask(background.TaskNotifyNewOffer, bargain.ConversationID.String(), accountNumber)

	c.JSON(http.StatusOK, gin.H{"result": bargain})
}

// acceptOffer is the API for the counterpart to approve the standing offer.
// Accepting is idempotent for the approving side.
func (s *Server) acceptOffer(c *gin.Context) {
	accountNumber := c.GetString("requester")
	bargainID, ok := parseUUIDParam(c, "bargainID")
	if !ok {
		return
	}

	bargain, err := s.store.AcceptOffer(accountNumber, bargainID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": bargain})
}

// confirmDeal is the API for the seeker to lock an agreed bargain
func (s *Server) confirmDeal(c *gin.Context) {
	accountNumber := c.GetString("requester")
	bargainID, ok := parseUUIDParam(c, "bargainID")
	if !ok {
		return
	}

	bargain, err := s.store.ConfirmDeal(accountNumber, bargainID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.dispatchTask(background.TaskNotifyDealConfirmed, bargain.ConversationID.String(), accountNumber)

	c.JSON(http.StatusOK, gin.H{"result": bargain})
}

// cancelBargain is the API for either participant to abandon an unconfirmed
// bargain
func (s *Server) cancelBargain(c *gin.Context) {
	accountNumber := c.GetString("requester")
	bargainID, ok := parseUUIDParam(c, "bargainID")
	if !ok {
		return
	}

	if err := s.store.CancelBargain(accountNumber, bargainID); err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}

// getBargainHistory is the API for a participant to review every bargain
// round of a conversation, newest first
func (s *Server) getBargainHistory(c *gin.Context) {
	accountNumber := c.GetString("requester")
	conversationID, ok := parseUUIDParam(c, "conversationID")
	if !ok {
		return
	}

	bargains, err := s.store.GetBargainHistory(accountNumber, conversationID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": bargains})
}
