package httpserver

import (
	"context"
	"errors"
	"log/slog"
	"net"
	"net/http"
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"github.com/dmitrymomot/intake/pkg/logger"
)

const (
	defaultAddr              = ":8080"
	defaultReadHeaderTimeout = 5 * time.Second
	defaultShutdownTimeout   = 5 * time.Second
)

// Server runs one http.Server with signal handling and graceful shutdown.
// A Server runs at most once.
type Server struct {
	srv             *http.Server
	log             *slog.Logger
	shutdownTimeout time.Duration
	onStart         []func(*slog.Logger, net.Addr)
	onStop          []func(*slog.Logger)

	mu       sync.Mutex
	running  bool
	addr     net.Addr
	stopOnce sync.Once
}

// New returns a Server listening on :8080 unless configured otherwise.
func New(opts ...Option) *Server {
	s := &Server{
		srv: &http.Server{
			Addr:              defaultAddr,
			ReadHeaderTimeout: defaultReadHeaderTimeout,
		},
		log:             logger.Discard(),
		shutdownTimeout: defaultShutdownTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}
	s.srv.ErrorLog = slog.NewLogLogger(s.log.Handler(), slog.LevelWarn)
	return s
}

// Addr is the bound listener address, or nil before Run has bound it.
func (s *Server) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.addr
}

// Run serves handler until ctx is done, SIGINT or SIGTERM arrives, or
// Shutdown is called, then shuts down gracefully. Listen and serve
// failures wrap ErrStart.
func (s *Server) Run(ctx context.Context, handler http.Handler) error {
	if handler == nil {
		handler = http.NotFoundHandler()
	}

	s.mu.Lock()
	if s.running {
		s.mu.Unlock()
		return errors.Join(ErrStart, ErrAlreadyRunning)
	}
	s.running = true
	s.srv.Handler = handler
	s.mu.Unlock()

	ln, err := net.Listen("tcp", s.srv.Addr)
	if err != nil {
		return errors.Join(ErrStart, err)
	}
	s.mu.Lock()
	s.addr = ln.Addr()
	s.mu.Unlock()

	s.log.Info("http server listening", slog.String("addr", ln.Addr().String()))
	for _, h := range s.onStart {
		h(s.log, ln.Addr())
	}

	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(ln) }()

	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)
	defer signal.Stop(stop)

	select {
	case err := <-errCh:
		return serveError(err)
	case <-ctx.Done():
	case sig := <-stop:
		s.log.Info("shutdown signal received", slog.String("signal", sig.String()))
	}

	shutdownErr := s.Shutdown(context.Background())
	if err := serveError(<-errCh); err != nil {
		return err
	}
	return shutdownErr
}

// Shutdown stops accepting connections and waits up to the shutdown
// timeout for active requests. Calls after the first, and calls before
// Run, return nil.
func (s *Server) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	running := s.running
	s.mu.Unlock()
	if !running {
		return nil
	}

	var err error
	s.stopOnce.Do(func() {
		ctx, cancel := context.WithTimeout(ctx, s.shutdownTimeout)
		defer cancel()

		s.log.Info("http server shutting down")
		err = s.srv.Shutdown(ctx)
		for _, h := range s.onStop {
			h(s.log)
		}
	})
	if err != nil {
		return errors.Join(ErrShutdown, err)
	}
	return nil
}

func serveError(err error) error {
	if err == nil || errors.Is(err, http.ErrServerClosed) {
		return nil
	}
	return errors.Join(ErrStart, err)
}
