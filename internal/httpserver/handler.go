package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	assistantHTTP "sales-coach-assistant/internal/assistant/delivery/http"
	"sales-coach-assistant/internal/middleware"
	rubricHTTP "sales-coach-assistant/internal/rubric/delivery/http"
)

func (srv HTTPServer) mapHandlers() error {
	mw := middleware.New(srv.l, srv.config)

	srv.registerMiddlewares(mw)
	srv.registerSystemRoutes()
	srv.registerDomainRoutes(mw)

	return nil
}

func (srv HTTPServer) registerMiddlewares(mw middleware.Middleware) {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(mw.RequestLog())
}

func (srv HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

// registerDomainRoutes registers all domain routes under /api/v1.
func (srv HTTPServer) registerDomainRoutes(mw middleware.Middleware) {
	ctx := context.Background()

	api := srv.gin.Group("/api/v1")

	rubricHTTP.RegisterRoutes(api, rubricHTTP.New(srv.l, srv.rubricUC))
	srv.l.Infof(ctx, "Rubric domain registered")

	assistantHTTP.RegisterRoutes(api.Group("/assistant"),
		assistantHTTP.New(srv.l, srv.assistantUC), mw.ChatRateLimit())
	srv.l.Infof(ctx, "Assistant domain registered")
}
