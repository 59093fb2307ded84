package main

import (
	"context"
	"log/slog"

	"github.com/dmitrymomot/intake/pkg/httpserver"
	"github.com/dmitrymomot/intake/pkg/logger"
	"github.com/dmitrymomot/intake/pkg/mongo"
	"github.com/dmitrymomot/intake/pkg/pg"
	"github.com/dmitrymomot/intake/svc/submission"
	"github.com/dmitrymomot/intake/svc/submission/mongostore"
	"github.com/dmitrymomot/intake/svc/submission/pgstore"
)

// openStore connects the configured store. A nil store with a nil error
// means persistence is disabled. The returned close func is never nil.
func openStore(ctx context.Context, cfg config, log *slog.Logger) (submission.Store, []httpserver.Check, func(), error) {
	log = log.With(logger.Component("store"), logger.Driver(cfg.App.StoreDriver))

	switch cfg.App.StoreDriver {
	case storePostgres:
		pool, err := pg.Connect(ctx, cfg.Postgres)
		if err != nil {
			return nil, nil, func() {}, err
		}
		if cfg.Postgres.AutoMigrate {
			if err := pg.Migrate(ctx, pool, cfg.Postgres, log); err != nil {
				pool.Close()
				return nil, nil, func() {}, err
			}
		}
		log.InfoContext(ctx, "store connected")
		checks := []httpserver.Check{{Name: "postgres", Fn: pg.Healthcheck(pool)}}
		return pgstore.New(pool), checks, pool.Close, nil

	case storeMongo:
		client, err := mongo.New(ctx, cfg.Mongo)
		if err != nil {
			return nil, nil, func() {}, err
		}
		closeFn := func() {
			if err := client.Disconnect(context.Background()); err != nil {
				log.Error("failed to disconnect", logger.Error(err))
			}
		}
		store, err := mongostore.New(client.Database(cfg.Mongo.Database))
		if err != nil {
			closeFn()
			return nil, nil, func() {}, err
		}
		log.InfoContext(ctx, "store connected")
		checks := []httpserver.Check{{Name: "mongo", Fn: mongo.Healthcheck(client)}}
		return store, checks, closeFn, nil

	default:
		log.WarnContext(ctx, "persistence disabled, submissions will only be emailed")
		return nil, nil, func() {}, nil
	}
}
