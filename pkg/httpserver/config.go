package httpserver

import "time"

// Config is the environment driven server configuration.
type Config struct {
	Addr              string        `env:"HTTP_ADDR" envDefault:":8080"`             // listen address
	ReadTimeout       time.Duration `env:"HTTP_READ_TIMEOUT" envDefault:"15s"`       // whole request, body included
	ReadHeaderTimeout time.Duration `env:"HTTP_READ_HEADER_TIMEOUT" envDefault:"5s"` // request headers only
	WriteTimeout      time.Duration `env:"HTTP_WRITE_TIMEOUT" envDefault:"90s"`      // must cover the mail sends of one submission
	IdleTimeout       time.Duration `env:"HTTP_IDLE_TIMEOUT" envDefault:"120s"`      // keep-alive idle limit
	ShutdownTimeout   time.Duration `env:"HTTP_SHUTDOWN_TIMEOUT" envDefault:"30s"`   // lets in-flight submissions finish their sends
	ProbeTimeout      time.Duration `env:"HTTP_READINESS_TIMEOUT" envDefault:"5s"`   // bounds the readiness checks
}

// NewFromConfig returns a Server built from cfg. Zero fields keep the
// defaults and opts are applied last.
func NewFromConfig(cfg Config, opts ...Option) *Server {
	return New(append([]Option{
		WithAddr(cfg.Addr),
		WithReadTimeout(cfg.ReadTimeout),
		WithReadHeaderTimeout(cfg.ReadHeaderTimeout),
		WithWriteTimeout(cfg.WriteTimeout),
		WithIdleTimeout(cfg.IdleTimeout),
		WithShutdownTimeout(cfg.ShutdownTimeout),
	}, opts...)...)
}
