package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"confluence-assistant/internal/middleware"
)

func (srv HTTPServer) mapHandlers() error {
	ctx := context.Background()

	srv.gin.Use(gin.Recovery())
	srv.registerSystemRoutes()

	userUC := srv.setupUserDomain(ctx)
	mw := middleware.New(srv.l, userUC)
	srv.gin.Use(mw.RateLimit())

	api := srv.gin.Group("/api/v1")
	srv.registerDomainRoutes(ctx, api, userUC, mw)

	return nil
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
