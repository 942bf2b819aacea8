package repository

import (
	"context"
	"log/slog"

	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/haroldmt/resume-parser/gen/ent"
	"github.com/haroldmt/resume-parser/internal/common"
)

// DBResult bundles the opened client with its cleanup.
type DBResult struct {
	Client  *ent.Client
	Pool    *pgxpool.Pool // nil for SQLite
	Cleanup func()
}

// InitDatabase opens Postgres when a DSN is configured, otherwise
// SQLite (in-memory when inmem is set). SQLite databases get their
// schema created on open.
func InitDatabase(ctx context.Context, cfg *common.Config, inmem bool, logger *slog.Logger) (*DBResult, error) {
	if cfg.Database.DSN != "" && !inmem {
		entc, pool, err := Open(ctx, Config{
			DSN:              cfg.Database.DSN,
			MaxConns:         cfg.Database.MaxConns,
			MinConns:         cfg.Database.MinConns,
			MaxConnLifetime:  cfg.Database.MaxConnLifetime,
			MaxConnIdleTime:  cfg.Database.MaxConnIdleTime,
			DialTimeout:      cfg.Database.DialTimeout,
			StatementTimeout: cfg.Database.StatementTimeout,
		}, logger)
		if err != nil {
			return nil, err
		}
		return &DBResult{
			Client:  entc,
			Pool:    pool,
			Cleanup: func() { Close(entc, pool, logger) },
		}, nil
	}

	dsn := cfg.Database.SQLitePath
	if inmem || dsn == "" {
		dsn = "file:resume-parser?mode=memory&cache=shared"
	}
	entc, err := OpenSQLite(dsn, logger)
	if err != nil {
		return nil, err
	}
	if err := entc.Schema.Create(ctx); err != nil {
		_ = entc.Close()
		return nil, common.WrapError(err, "create schema")
	}
	return &DBResult{
		Client:  entc,
		Cleanup: func() { Close(entc, nil, logger) },
	}, nil
}
