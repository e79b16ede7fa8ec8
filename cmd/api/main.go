package main

import (
	"context"
	"fmt"

	"confluence-assistant/config"
	_ "confluence-assistant/docs" // Swagger docs
	chatUC "confluence-assistant/internal/chat/usecase"
	"confluence-assistant/internal/httpserver"
	"confluence-assistant/internal/intent"
	"confluence-assistant/internal/storage"
	"confluence-assistant/pkg/log"
	"confluence-assistant/pkg/openai"
)

// @title       Confluence Assistant API
// @description Chat-driven Confluence assistant: natural language in, wiki pages out.
// @version     1
// @host        localhost:8080
// @schemes     http
// @securityDefinitions.apikey BearerAuth
// @in   header
// @name Authorization
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

	ctx := context.Background()
	logger.Info(ctx, "Starting Confluence Assistant...")
	logger.Infof(ctx, "Environment: %s", cfg.Environment.Name)

	// 3. Storage
	db, err := storage.Open(cfg.SQLite.Path)
	if err != nil {
		logger.Error(ctx, "Failed to open database: ", err)
		return
	}
	defer db.Close()
	logger.Infof(ctx, "SQLite ready at %s", cfg.SQLite.Path)

	// 4. Intent resolution pipeline
	llm := openai.New(openai.Config{
		BaseURL: cfg.AI.BaseURL,
		Model:   cfg.AI.Model,
	})
	resolver := intent.NewResolver(intent.NewDelegate(llm, logger), logger)
	logger.Infof(ctx, "AI model: %s", llm.Model())

	// 5. HTTP server
	httpServer, err := httpserver.New(logger, httpserver.Config{
		Logger:      logger,
		Port:        cfg.HTTPServer.Port,
		Mode:        cfg.HTTPServer.Mode,
		Environment: cfg.Environment.Name,
		DB:          db,
		Resolver:    resolver,
		Defaults: chatUC.Defaults{
			ConfluenceBaseURL: cfg.Confluence.BaseURL,
			ConfluenceEmail:   cfg.Confluence.Email,
			ConfluenceToken:   cfg.Confluence.APIToken,
			AIAPIKey:          cfg.AI.APIKey,
			DefaultSpace:      cfg.Confluence.DefaultSpace,
		},
	})
	if err != nil {
		logger.Error(ctx, "Failed to initialize HTTP server: ", err)
		return
	}

	// 6. Run
	if err := httpServer.Run(); err != nil {
		logger.Error(ctx, "Failed to run server: ", err)
		return
	}

	logger.Info(ctx, "Server stopped gracefully")
}
