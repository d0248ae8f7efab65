package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/helpmate/helpmate-api/background"
)

// createServiceTransaction is the API to open the settlement record for a
// confirmed bargain. Repeated calls return the existing record.
func (s *Server) createServiceTransaction(c *gin.Context) {
	accountNumber := c.GetString("requester")
	conversationID, ok := parseUUIDParam(c, "conversationID")
	if !ok {
		return
	}

	var params struct {
		BargainID uuid.UUID `json:"bargain_id" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	tx, err := s.store.CreateServiceTransaction(accountNumber, conversationID, params.BargainID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": tx})
}

// getServiceTransaction is the API for a participant to fetch a settlement
// record
func (s *Server) getServiceTransaction(c *gin.Context) {
	accountNumber := c.GetString("requester")
	transactionID, ok := parseUUIDParam(c, "transactionID")
	if !ok {
		return
	}

	tx, err := s.store.GetServiceTransaction(accountNumber, transactionID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": tx})
}

// processPayment is the API for the seeker to pay the agreed amount. A
// failed charge leaves the record retryable through the same call.
func (s *Server) processPayment(c *gin.Context) {
	seekerNumber := c.GetString("requester")
	transactionID, ok := parseUUIDParam(c, "transactionID")
	if !ok {
		return
	}

	var params struct {
		Method string `json:"method" binding:"required"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	tx, err := s.store.ProcessPayment(c.Request.Context(), seekerNumber, transactionID, params.Method)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	s.dispatchTask(background.TaskNotifyPaymentCompleted, tx.ID.String(), tx.HelperNumber)

	c.JSON(http.StatusOK, gin.H{"result": tx})
}

// completeService is the API for a participant to mark the paid service as
// delivered
func (s *Server) completeService(c *gin.Context) {
	accountNumber := c.GetString("requester")
	transactionID, ok := parseUUIDParam(c, "transactionID")
	if !ok {
		return
	}

	tx, err := s.store.CompleteService(accountNumber, transactionID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	counterpart := tx.HelperNumber
	if accountNumber == tx.HelperNumber {
		counterpart = tx.SeekerNumber
	}
	s.dispatchTask(background.TaskNotifyServiceCompleted, tx.ID.String(), counterpart)

	c.JSON(http.StatusOK, gin.H{"result": tx})
}

// submitFeedback is the API for a participant to rate the counterpart once
// the service is completed
func (s *Server) submitFeedback(c *gin.Context) {
	accountNumber := c.GetString("requester")
	transactionID, ok := parseUUIDParam(c, "transactionID")
	if !ok {
		return
	}

	var params struct {
		Score   int    `json:"score" binding:"required"`
		Comment string `json:"comment"`
	}
	if err := c.BindJSON(&params); err != nil {
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters, err)
		return
	}

	tx, err := s.store.SubmitFeedback(accountNumber, transactionID, params.Score, params.Comment)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": tx})
}

// listPendingFeedbacks is the API for an account to find completed services
// still waiting for its rating
func (s *Server) listPendingFeedbacks(c *gin.Context) {
	accountNumber := c.GetString("requester")

	txs, err := s.store.ListPendingFeedbacks(accountNumber)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": txs})
}
