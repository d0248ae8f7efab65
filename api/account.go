package api

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/helpmate/helpmate-api/schema"
)

// accountRegister is the API for register a new account
func (s *Server) accountRegister(c *gin.Context) {
	logger := log.WithField("api", "accountRegister")
	accountNumber := c.GetString("requester")

	var params struct {
		EncPubKey string                 `json:"enc_pub_key"`
		IsSeeker  bool                   `json:"is_seeker"`
		IsHelper  bool                   `json:"is_helper"`
		Metadata  map[string]interface{} `json:"metadata"`
	}

	if err := c.BindJSON(&params); err != nil {
		logger.WithError(err).Error(errorInvalidParameters.Message)
		abortWithEncoding(c, http.StatusBadRequest, errorInvalidParameters)
		return
	}

	a, err := s.store.CreateAccount(accountNumber, params.EncPubKey, params.IsSeeker, params.IsHelper, params.Metadata)
	if err != nil {
		abortWithEncoding(c, http.StatusForbidden, errorAccountTaken)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": a,
	})
}

// accountDetail is the API to query an account
func (s *Server) accountDetail(c *gin.Context) {
	a := c.MustGet("account")
	account, ok := a.(*schema.Account)
	if !ok {
		abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"result": account,
	})
}

// accountUpdateMetadata is the API to update metadata and the latest geo
// position for a user
func (s *Server) accountUpdateMetadata(c *gin.Context) {
	accountNumber := c.GetString("requester")

	var params struct {
		Metadata map[string]interface{} `json:"metadata"`
		Location *schema.Location       `json:"location"`
	}

	if err := c.BindJSON(&params); err != nil {
		c.Error(err)
		abortWithEncoding(c, http.StatusBadRequest, errorCannotParseRequest)
		return
	}

	if params.Metadata != nil {
		if err := s.store.UpdateAccountMetadata(accountNumber, params.Metadata); err != nil {
			c.Error(err)
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
			return
		}
	}

	if params.Location != nil {
		if err := s.store.UpdateAccountGeoPosition(accountNumber, params.Location.Latitude, params.Location.Longitude); err != nil {
			c.Error(err)
			abortWithEncoding(c, http.StatusInternalServerError, errorInternalServer)
			return
		}
	}

	c.JSON(http.StatusOK, gin.H{"result": "OK"})
}
