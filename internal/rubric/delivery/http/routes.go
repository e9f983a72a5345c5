package http

import (
	"github.com/gin-gonic/gin"
)

// RegisterRoutes maps HTTP verbs and paths to Handler methods.
func RegisterRoutes(rg *gin.RouterGroup, h *handler) {
	rubrics := rg.Group("/rubrics")
	{
		rubrics.POST("", h.Create)
		rubrics.GET("", h.List)
		rubrics.GET("/active", h.GetActive)
		rubrics.GET("/:id", h.Detail)
		rubrics.PUT("/:id", h.Update)
		rubrics.POST("/:id/activate", h.Activate)
		rubrics.DELETE("/:id", h.Delete)
		rubrics.POST("/validate-weights", h.ValidateWeights)
	}
}
