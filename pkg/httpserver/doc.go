// Package httpserver runs the intake HTTP listener with graceful shutdown
// and serves the liveness and readiness probes.
//
// Run binds the listener before calling start hooks, so a hook sees the
// real address even when the configured port is 0. It blocks until the
// context is done, SIGINT or SIGTERM arrives, or Shutdown is called. The
// shutdown timeout bounds how long in-flight submissions may keep running.
//
//	srv := httpserver.NewFromConfig(cfg.HTTP, httpserver.WithLogger(log))
//	if err := srv.Run(ctx, router); err != nil {
//		log.Error("server stopped", logger.Error(err))
//	}
//
// ReadinessHandler runs each named Check and answers 503 if any fails.
package httpserver
