//go:build wireinject
// +build wireinject

package wire

import (
	"context"

	"github.com/google/wire"

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

func InitializeApp(ctx context.Context) (*app.App, func(), error) {
	wire.Build(
		app.NewApp,
		server.NewServer,
		handler.NewReviewHandler,
		service.New,
		storage.NewStore,
		db.NewDatabase,
		llm.NewPromptManager,
		logger.NewLogger,
		config.LoadConfig,
		provideLoggerConfig,
		provideLogWriter,
		provideSqlxDB,
		provideGenerator,
		provideClientHandler,
	)
	return &app.App{}, nil, nil
}
