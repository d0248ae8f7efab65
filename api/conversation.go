package api

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

// getConversation is the API for a participant to fetch the conversation
// opened by an accepted interest
func (s *Server) getConversation(c *gin.Context) {
	accountNumber := c.GetString("requester")
	conversationID, ok := parseUUIDParam(c, "conversationID")
	if !ok {
		return
	}

	conversation, err := s.store.GetConversation(accountNumber, conversationID)
	if err != nil {
		abortWithStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"result": conversation})
}
