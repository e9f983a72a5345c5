package http

import (
	"github.com/gin-gonic/gin"

	"sales-coach-assistant/pkg/response"
)

// Chat godoc
// @Summary     Send a chat message to the coaching assistant
// @Description Classifies the message, resolves parameters and dispatches to the matching intent handler. Handler failures are reported inside the result envelope, not as HTTP errors.
// @Tags        Assistant
// @Accept      json
// @Produce     json
// @Param       body body chatReq true "User message"
// @Success     200 {object} chatResp
// @Failure     400 {object} response.Resp "Bad Request - empty message"
// @Failure     500 {object} response.Resp "Internal Server Error"
// @Router      /api/v1/assistant/chat [POST]
func (h *handler) Chat(c *gin.Context) {
	ctx := c.Request.Context()

	req, err := h.processChatReq(c)
	if err != nil {
		response.Error(c, err, nil)
		return
	}

	out, err := h.uc.Chat(ctx, req.toInput())
	if err != nil {
		h.l.Errorf(ctx, "uc.Chat: %v", err)
		response.Error(c, h.mapError(err), nil)
		return
	}

	response.OK(c, newChatResp(out))
}
