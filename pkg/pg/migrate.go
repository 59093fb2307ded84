package pg

import (
	"context"
	"errors"
	"log/slog"
	"os"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/jackc/pgx/v5/stdlib"
	"github.com/pressly/goose/v3"
	"github.com/pressly/goose/v3/database"
)

// Migrate applies the pending goose migrations in cfg.MigrationsPath over a
// database/sql view of pool, recording versions in cfg.MigrationsTable.
// A nil log discards output.
func Migrate(ctx context.Context, pool *pgxpool.Pool, cfg Config, log *slog.Logger) error {
	if cfg.MigrationsPath == "" {
		return errors.Join(ErrFailedToApplyMigrations, ErrMigrationPathNotProvided)
	}
	if info, err := os.Stat(cfg.MigrationsPath); err != nil || !info.IsDir() {
		return errors.Join(ErrMigrationsDirNotFound, err)
	}
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}

	table := cfg.MigrationsTable
	if table == "" {
		table = "goose_version"
	}
	store, err := database.NewStore(database.DialectPostgres, table)
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	provider, err := goose.NewProvider("", stdlib.OpenDBFromPool(pool), os.DirFS(cfg.MigrationsPath),
		goose.WithStore(store),
	)
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	defer func() {
		if err := provider.Close(); err != nil {
			log.WarnContext(ctx, "failed to close migration connection", slog.Any("error", err))
		}
	}()

	results, err := provider.Up(ctx)
	for _, r := range results {
		if r.Error != nil || r.Source == nil {
			continue
		}
		log.InfoContext(ctx, "migration applied",
			slog.Int64("version", r.Source.Version),
			slog.String("file", r.Source.Path),
			slog.Duration("duration", r.Duration),
		)
	}
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}

	version, err := provider.GetDBVersion(ctx)
	if err != nil {
		return errors.Join(ErrFailedToApplyMigrations, err)
	}
	log.InfoContext(ctx, "database schema is up to date", slog.Int64("version", version))
	return nil
}
