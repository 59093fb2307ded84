package main

import (
	"context"
	"log/slog"
	"net"
	"os"
	"os/signal"
	"syscall"

	"github.com/go-chi/chi/v5"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/dmitrymomot/intake/handler"
	"github.com/dmitrymomot/intake/modules/leads"
	"github.com/dmitrymomot/intake/pkg/clientip"
	pkgconfig "github.com/dmitrymomot/intake/pkg/config"
	"github.com/dmitrymomot/intake/pkg/email"
	"github.com/dmitrymomot/intake/pkg/httpserver"
	"github.com/dmitrymomot/intake/pkg/logger"
	"github.com/dmitrymomot/intake/pkg/requestid"
	"github.com/dmitrymomot/intake/svc/submission"
	"github.com/dmitrymomot/intake/svc/submission/mailtpl"
)

func main() {
	if err := run(); err != nil {
		slog.Error("server stopped with error", logger.Error(err))
		os.Exit(1)
	}
}

func run() error {
	var cfg config
	if err := pkgconfig.Load(&cfg); err != nil {
		return err
	}
	if err := cfg.validate(); err != nil {
		return err
	}

	log := logger.New(append(
		logger.FromConfig(cfg.Log),
		logger.WithContextExtractors(requestid.LogExtractor()),
	)...)
	logger.SetAsDefault(log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	store, checks, closeStore, err := openStore(ctx, cfg, log)
	if err != nil {
		return err
	}
	defer closeStore()

	sender, err := email.New(cfg.Mail)
	if err != nil {
		return err
	}
	checks = append(checks, httpserver.Check{Name: "mail", Fn: sender.Verify})

	reg := prometheus.NewRegistry()
	reg.MustRegister(
		collectors.NewGoCollector(),
		collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
	)

	pipeline, err := submission.New(submission.Options{
		Store:         store,
		Sender:        sender,
		Templates:     mailtpl.New(cfg.App.BrandName),
		OperatorEmail: cfg.App.OperatorEmail,
		Logger:        log,
		Metrics:       submission.NewMetrics(reg),
		Debug:         cfg.App.Debug,
	})
	if err != nil {
		return err
	}
	if cfg.App.Debug {
		log.Warn("debug mode enabled, internal errors are included in responses")
	}

	r := chi.NewRouter()
	r.Use(
		requestid.Middleware,
		clientip.NewResolver(cfg.ClientIP.TrustedHeaders...).Middleware,
		handler.Recoverer(log),
	)
	r.Get("/healthz", httpserver.LivenessHandler())
	r.Get("/readyz", httpserver.ReadinessHandler(log, cfg.HTTP.ProbeTimeout, checks...))
	r.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{Registry: reg}))
	r.Mount(cfg.App.APIPrefix, leads.Router(leads.RouterOptions{
		Pipeline:       pipeline,
		Logger:         log,
		AllowedOrigins: cfg.App.AllowedOrigins,
		MaxBodyBytes:   cfg.App.MaxBodyBytes,
	}))

	srv := httpserver.NewFromConfig(cfg.HTTP,
		httpserver.WithLogger(log),
		httpserver.WithStartHook(func(l *slog.Logger, addr net.Addr) {
			l.Info("server started",
				slog.String("addr", addr.String()),
				logger.Driver(string(cfg.Mail.Driver)),
				slog.String("store", cfg.App.StoreDriver))
		}),
	)
	return srv.Run(ctx, r)
}
