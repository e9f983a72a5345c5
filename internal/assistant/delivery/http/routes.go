package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler, middlewares ...gin.HandlerFunc) {
	rg.POST("/chat", append(middlewares, h.Chat)...)
}
