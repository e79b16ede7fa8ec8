package http

import (
	"github.com/gin-gonic/gin"
)

// processRegisterReq binds and validates the registration body.
func (h *handler) processRegisterReq(c *gin.Context) (registerReq, error) {
	var req registerReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processLoginReq binds and validates the login body.
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processUpdateSettingsReq binds the settings patch body. Absent fields
// stay nil so the use case can tell "not sent" from "clear this".
func (h *handler) processUpdateSettingsReq(c *gin.Context) (updateSettingsReq, error) {
	var req updateSettingsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, nil
}
