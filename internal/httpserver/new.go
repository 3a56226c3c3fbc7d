package httpserver

import (
	"errors"

	"github.com/gin-gonic/gin"

	chatHTTP "reminder-ai/internal/chat/delivery/http"
	"reminder-ai/internal/middleware"
	reminderHTTP "reminder-ai/internal/reminder/delivery/http"
	pkgLog "reminder-ai/pkg/log"
)

// HTTPServer holds all dependencies for the HTTP server.
type HTTPServer struct {
	gin         *gin.Engine
	l           pkgLog.Logger
	port        int
	mode        string
	environment string

	middleware      middleware.Middleware
	reminderHandler reminderHTTP.Handler
	chatHandler     chatHTTP.Handler
}

// Config is the dependency bag passed to New().
type Config struct {
	Logger      pkgLog.Logger
	Port        int
	Mode        string
	Environment string

	Middleware      middleware.Middleware
	ReminderHandler reminderHTTP.Handler
	ChatHandler     chatHTTP.Handler
}

// New creates a new HTTPServer instance.
func New(logger pkgLog.Logger, cfg Config) (*HTTPServer, error) {
	gin.SetMode(cfg.Mode)

	srv := &HTTPServer{
		l:               logger,
		gin:             gin.New(),
		port:            cfg.Port,
		mode:            cfg.Mode,
		environment:     cfg.Environment,
		middleware:      cfg.Middleware,
		reminderHandler: cfg.ReminderHandler,
		chatHandler:     cfg.ChatHandler,
	}

	if err := srv.validate(); err != nil {
		return nil, err
	}

	return srv, nil
}

func (srv *HTTPServer) validate() error {
	if srv.l == nil {
		return errors.New("logger is required")
	}
	if srv.mode == "" {
		return errors.New("mode is required")
	}
	if srv.port == 0 {
		return errors.New("port is required")
	}
	if srv.reminderHandler == nil {
		return errors.New("reminder handler is required")
	}
	if srv.chatHandler == nil {
		return errors.New("chat handler is required")
	}
	return nil
}
