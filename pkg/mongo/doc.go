// Package mongo connects to MongoDB using environment-driven configuration.
//
// New retries the initial connect and ping, honouring context cancellation
// between attempts. Write retries are disabled by default so a submission is
// never stored twice by the driver.
//
// # Usage
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//	db, err := mongo.NewWithDatabase(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer db.Client().Disconnect(context.Background())
package mongo
