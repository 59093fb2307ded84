// Package pg bootstraps PostgreSQL access with pgx/v5: a configured connection
// pool, a readiness check, and goose migrations.
//
//   - Config is populated from PG_* environment variables.
//   - Connect opens a *pgxpool.Pool, retrying with linear back-off, and pings it.
//   - Healthcheck adapts the pool to the func(context.Context) error shape used
//     by readiness probes.
//   - Migrate runs the goose migrations in Config.MigrationsPath through the
//     same pool and logs every applied version.
//
// # Usage
//
//	var cfg pg.Config
//	if err := config.Load(&cfg); err != nil {
//	    return err
//	}
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	defer pool.Close()
//
//	if cfg.AutoMigrate {
//	    if err := pg.Migrate(ctx, pool, cfg, log); err != nil {
//	        return err
//	    }
//	}
//
// The pool is safe for concurrent use and is meant to be created once per process.
package pg
