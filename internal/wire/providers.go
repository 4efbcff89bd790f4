package wire

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"os"

	"github.com/jmoiron/sqlx"

	"github.com/codelens/snippet-review/internal/config"
	"github.com/codelens/snippet-review/internal/core"
	"github.com/codelens/snippet-review/internal/db"
	"github.com/codelens/snippet-review/internal/llm"
	"github.com/codelens/snippet-review/internal/logger"
	"github.com/codelens/snippet-review/internal/web"
)

func provideLoggerConfig(cfg *config.Config) logger.Config {
	return cfg.Logging
}

func provideLogWriter() io.Writer {
	return os.Stdout
}

func provideSqlxDB(dbConn *db.DB) *sqlx.DB {
	return dbConn.DB
}

func provideGenerator(ctx context.Context, cfg *config.Config, logger *slog.Logger) (core.Generator, error) {
	return llm.NewGenerator(ctx, cfg, logger)
}

func provideClientHandler() (http.Handler, error) {
	return web.Handler()
}
