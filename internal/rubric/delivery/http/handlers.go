package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"sales-coach-assistant/pkg/response"
)

// Create godoc
// @Summary     Create a rubric config draft
// @Description Creates a new draft config with the next version number. Enabled category weights must total 100.
// @Tags        Rubric
// @Accept      json
// @Produce     json
// @Param       body body createReq true "Config content"
// @Success     200 {object} configResp
// @Failure     400 {object} response.Resp "Bad Request - invalid weights"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rubrics [POST]
func (h *handler) Create(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processCreateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cfg, err := h.uc.CreateDraft(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.CreateDraft: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newConfigResp(cfg))
}

// List godoc
// @Summary     List rubric configs
// @Description Returns all configs, newest version first.
// @Tags        Rubric
// @Produce     json
// @Success     200 {object} listResp
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/rubrics [GET]
func (h *handler) List(c *gin.Context) {
	ctx := c.Request.Context()

	configs, err := h.uc.List(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.List: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, h.newListResp(configs))
}

// GetActive godoc
// @Summary     Get the active rubric config
// @Description Returns the single currently active config.
// @Tags        Rubric
// @Produce     json
// @Success     200 {object} configResp
// @Failure     404 {object} response.Resp "No active config"
// @Router      /api/v1/rubrics/active [GET]
func (h *handler) GetActive(c *gin.Context) {
	ctx := c.Request.Context()

	cfg, err := h.uc.GetActive(ctx)
	if err != nil {
		h.l.Errorf(ctx, "uc.GetActive: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newConfigResp(cfg))
}

// Detail godoc
// @Summary     Get a rubric config
// @Description Returns one config by ID.
// @Tags        Rubric
// @Produce     json
// @Param       id path string true "Config ID"
// @Success     200 {object} configResp
// @Failure     404 {object} response.Resp "Not Found"
// @Router      /api/v1/rubrics/{id} [GET]
func (h *handler) Detail(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	cfg, err := h.uc.Get(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Get: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newConfigResp(cfg))
}

// Update godoc
// @Summary     Update a draft rubric config
// @Description Replaces the content of a config that is still a draft. Activated configs are immutable.
// @Tags        Rubric
// @Accept      json
// @Produce     json
// @Param       id   path string    true "Config ID"
// @Param       body body updateReq true "New content"
// @Success     200 {object} configResp
// @Failure     400 {object} response.Resp "Bad Request - invalid weights"
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - not a draft"
// @Router      /api/v1/rubrics/{id} [PUT]
func (h *handler) Update(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processUpdateReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	cfg, err := h.uc.UpdateDraft(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.UpdateDraft: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newConfigResp(cfg))
}

// Activate godoc
// @Summary     Activate a rubric config
// @Description Promotes a draft to the active config, demoting the previous one. One-way transition.
// @Tags        Rubric
// @Produce     json
// @Param       id path string true "Config ID"
// @Success     200 {object} configResp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already activated"
// @Router      /api/v1/rubrics/{id}/activate [POST]
func (h *handler) Activate(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	cfg, err := h.uc.Activate(ctx, id)
	if err != nil {
		h.l.Errorf(ctx, "uc.Activate: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newConfigResp(cfg))
}

// Delete godoc
// @Summary     Delete a rubric config draft
// @Description Deletes a config that is still a draft and was never activated.
// @Tags        Rubric
// @Produce     json
// @Param       id path string true "Config ID"
// @Success     200 {object} response.Resp
// @Failure     404 {object} response.Resp "Not Found"
// @Failure     409 {object} response.Resp "Conflict - already activated"
// @Router      /api/v1/rubrics/{id} [DELETE]
func (h *handler) Delete(c *gin.Context) {
	ctx := c.Request.Context()

	id := c.Param("id")
	if id == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "id is required"})
		return
	}

	if err := h.uc.Delete(ctx, id); err != nil {
		h.l.Errorf(ctx, "uc.Delete: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, gin.H{"deleted": id})
}

// ValidateWeights godoc
// @Summary     Validate category weights
// @Description Stateless check that enabled category weights total 100 within tolerance.
// @Tags        Rubric
// @Accept      json
// @Produce     json
// @Param       body body validateWeightsReq true "Categories to check"
// @Success     200 {object} weightValidationResp
// @Failure     400 {object} response.Resp "Bad Request"
// @Router      /api/v1/rubrics/validate-weights [POST]
func (h *handler) ValidateWeights(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processValidateWeightsReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	v := h.uc.ValidateWeights(ctx, toCategories(req.Categories))
	response.OK(c, newWeightValidationResp(v))
}
