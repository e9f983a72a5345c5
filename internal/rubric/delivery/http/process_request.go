package http

import (
	"github.com/gin-gonic/gin"
)

// processCreateReq binds and validates the create config request body.
func (h *handler) processCreateReq(c *gin.Context) (createReq, error) {
	var req createReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}

// processUpdateReq binds and validates the update config request body + URI param.
func (h *handler) processUpdateReq(c *gin.Context) (updateReq, error) {
	var req updateReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	req.ID = c.Param("id")
	return req, req.validate()
}

// processValidateWeightsReq binds the stateless weight-check request body.
func (h *handler) processValidateWeightsReq(c *gin.Context) (validateWeightsReq, error) {
	var req validateWeightsReq
	if err := c.ShouldBindJSON(&req); err != nil {
		return req, err
	}
	return req, req.validate()
}
