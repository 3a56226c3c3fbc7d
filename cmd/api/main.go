package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"reminder-ai/config"
	_ "reminder-ai/docs" // Swagger docs
	"reminder-ai/internal/agent/interpreter"
	chatHTTP "reminder-ai/internal/chat/delivery/http"
	chatRepo "reminder-ai/internal/chat/repository/sqlite"
	chatUC "reminder-ai/internal/chat/usecase"
	"reminder-ai/internal/httpserver"
	"reminder-ai/internal/middleware"
	reminderHTTP "reminder-ai/internal/reminder/delivery/http"
	reminderRepo "reminder-ai/internal/reminder/repository/sqlite"
	reminderUC "reminder-ai/internal/reminder/usecase"
	"reminder-ai/internal/router"
	"reminder-ai/internal/storage/sqlite"
	"reminder-ai/pkg/datemath"
	"reminder-ai/pkg/gemini"
	"reminder-ai/pkg/log"
)

// @title       Reminder AI Assistant API
// @description Conversational reminder assistant backed by Gemini tool calling.
// @version     1
// @host        localhost:8000
// @schemes     http
func main() {
	// 1. Configuration
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Failed to load config: ", err)
		return
	}

	// 2. Logger
	logger := log.Init(log.ZapConfig{
		Level:        cfg.Logger.Level,
		Mode:         cfg.Logger.Mode,
		Encoding:     cfg.Logger.Encoding,
		ColorEnabled: cfg.Logger.ColorEnabled,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	logger.Info(ctx, "Starting Reminder AI Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	if cfg.Gemini.APIKey == "" {
		logger.Warn(ctx, "GEMINI_API_KEY is not set; chat requests will fail upstream")
	}

	// 3. Storage
	db, err := sqlite.NewDB(ctx, cfg.Database.Path)
	if err != nil {
		logger.Errorf(ctx, "Failed to open database: %v", err)
		return
	}
	defer db.Close()

	// 4. Gemini client
	geminiClient, err := gemini.New(gemini.Config{
		APIKey: cfg.Gemini.APIKey,
		Model:  cfg.Gemini.Model,
	})
	if err != nil {
		logger.Errorf(ctx, "Failed to create Gemini client: %v", err)
		return
	}

	// 5. DateMath parser
	dateMathParser, dtErr := datemath.NewParser(cfg.Gemini.Timezone)
	if dtErr != nil {
		logger.Warnf(ctx, "Invalid timezone %q, falling back to UTC: %v", cfg.Gemini.Timezone, dtErr)
		dateMathParser, _ = datemath.NewParser("UTC")
	}

	// 6. Reminder domain
	remRepo := reminderRepo.New(db, logger)
	remUC := reminderUC.New(logger, remRepo, dateMathParser)
	reminderHandler := reminderHTTP.New(logger, remUC)

	// 7. Chat domain
	convRepo := chatRepo.New(db, logger)
	chatUseCase := chatUC.New(logger, convRepo, remUC, geminiClient, router.New(), interpreter.New(logger))
	chatHandler := chatHTTP.New(logger, chatUseCase)

	// 8. Middleware
	mw := middleware.New(logger, cfg.Chat.RateLimitRPS, cfg.Chat.RateLimitBurst)

	// 9. HTTP Server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:          logger,
		Port:            cfg.HTTPServer.Port,
		Mode:            cfg.HTTPServer.Mode,
		Environment:     cfg.Environment.Name,
		Middleware:      mw,
		ReminderHandler: reminderHandler,
		ChatHandler:     chatHandler,
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 10. Run
	if err := httpServer.Run(ctx); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
