// Code generated manually. DO NOT EDIT.

//go:generate go run -mod=mod github.com/google/wire/cmd/wire
//go:build !wireinject
// +build !wireinject

package wire

import (
	"context"
	"fmt"

	"github.com/codelens/snippet-review/internal/app"
	"github.com/codelens/snippet-review/internal/config"
	"github.com/codelens/snippet-review/internal/db"
	"github.com/codelens/snippet-review/internal/llm"
	"github.com/codelens/snippet-review/internal/logger"
	"github.com/codelens/snippet-review/internal/server"
	"github.com/codelens/snippet-review/internal/server/handler"
	"github.com/codelens/snippet-review/internal/service"
	"github.com/codelens/snippet-review/internal/storage"
)

// InitializeApp creates and wires all application dependencies. The returned
// cleanup function closes the database pool.
func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	cfg, err := config.LoadConfig()
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load config: %w", err)
	}

	loggerConfig := provideLoggerConfig(cfg)
	logWriter := provideLogWriter()
	slogLogger := logger.NewLogger(loggerConfig, logWriter)

	dbConn, dbCleanup, err := db.NewDatabase(cfg)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	store := storage.NewStore(provideSqlxDB(dbConn))

	promptMgr, err := llm.NewPromptManager()
	if err != nil {
		dbCleanup()
		return nil, nil, fmt.Errorf("failed to initialize prompt manager: %w", err)
	}

	generator, err := provideGenerator(ctx, cfg, slogLogger)
	if err != nil {
		dbCleanup()
		return nil, nil, fmt.Errorf("failed to create model client: %w", err)
	}

	reviewService := service.New(store, generator, promptMgr, slogLogger)
	reviewHandler := handler.NewReviewHandler(reviewService, slogLogger)

	clientHandler, err := provideClientHandler()
	if err != nil {
		dbCleanup()
		return nil, nil, fmt.Errorf("failed to load client assets: %w", err)
	}

	httpServer := server.NewServer(ctx, cfg, reviewHandler, clientHandler, slogLogger)
	application := app.NewApp(ctx, cfg, httpServer, slogLogger)

	return application, dbCleanup, nil
}
