package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	chatHTTP "reminder-ai/internal/chat/delivery/http"
	"reminder-ai/internal/model"
	reminderHTTP "reminder-ai/internal/reminder/delivery/http"
)

func (srv *HTTPServer) mapHandlers() error {
	srv.registerMiddlewares()
	srv.registerSystemRoutes()
	srv.registerDomainRoutes()
	return nil
}

func (srv *HTTPServer) registerMiddlewares() {
	srv.gin.Use(gin.Recovery())
	srv.gin.Use(srv.middleware.Cors())
	srv.gin.Use(srv.middleware.APICompat())

	if srv.environment == string(model.EnvironmentProduction) {
		srv.l.Warn(context.Background(), "CORS allows all origins; restrict before exposing this deployment")
	}
}

func (srv *HTTPServer) registerSystemRoutes() {
	srv.gin.GET("/health", srv.healthCheck)
	srv.gin.GET("/ready", srv.readyCheck)
	srv.gin.GET("/live", srv.liveCheck)

	srv.gin.GET("/swagger/*any", ginSwagger.WrapHandler(
		swaggerFiles.Handler,
		ginSwagger.URL("doc.json"),
		ginSwagger.DefaultModelsExpandDepth(-1),
	))
}

func (srv *HTTPServer) registerDomainRoutes() {
	ctx := context.Background()
	api := srv.gin.Group("/api")

	reminderHTTP.RegisterRoutes(api, srv.reminderHandler)
	srv.l.Infof(ctx, "Reminder routes registered under /api")

	chatHTTP.RegisterRoutes(api, srv.chatHandler, srv.middleware)
	srv.l.Infof(ctx, "Chat routes registered under /api")
}
