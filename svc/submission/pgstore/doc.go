// Package pgstore persists submissions in PostgreSQL through pgx.
//
// Each kind has its own table, created by the goose migrations in the
// migrations directory. Inserts return the uuid generated by the database.
//
//	pool, err := pg.Connect(ctx, cfg)
//	if err != nil {
//	    return err
//	}
//	store := pgstore.New(pool)
package pgstore
