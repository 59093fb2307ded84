package httpserver

import (
	"log/slog"
	"net"
	"time"
)

// Option configures a Server. Empty and non-positive values are ignored,
// so zero config fields keep the defaults.
type Option func(*Server)

// WithAddr sets the listen address. Port 0 picks a free port; the bound
// address is passed to start hooks and returned by Server.Addr.
func WithAddr(addr string) Option {
	return func(s *Server) {
		if addr != "" {
			s.srv.Addr = addr
		}
	}
}

// WithReadTimeout bounds reading the entire request, body included.
func WithReadTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.srv.ReadTimeout = d
		}
	}
}

func WithReadHeaderTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.srv.ReadHeaderTimeout = d
		}
	}
}

// WithWriteTimeout bounds the whole handler run. It must exceed the time a
// submission needs to finish its mail sends.
func WithWriteTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.srv.WriteTimeout = d
		}
	}
}

func WithIdleTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.srv.IdleTimeout = d
		}
	}
}

// WithShutdownTimeout sets how long in-flight requests may run after a
// shutdown starts.
func WithShutdownTimeout(d time.Duration) Option {
	return func(s *Server) {
		if d > 0 {
			s.shutdownTimeout = d
		}
	}
}

// WithLogger sets the server logger. Nil keeps the discarding default.
func WithLogger(l *slog.Logger) Option {
	return func(s *Server) {
		if l != nil {
			s.log = l
		}
	}
}

// WithStartHook registers a callback run once the listener is bound.
func WithStartHook(h func(log *slog.Logger, addr net.Addr)) Option {
	return func(s *Server) {
		if h != nil {
			s.onStart = append(s.onStart, h)
		}
	}
}

// WithStopHook registers a callback run after a graceful shutdown.
func WithStopHook(h func(log *slog.Logger)) Option {
	return func(s *Server) {
		if h != nil {
			s.onStop = append(s.onStop, h)
		}
	}
}
