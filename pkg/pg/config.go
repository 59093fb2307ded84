package pg

import "time"

// Config is read from PG_* variables when STORE_DRIVER=postgres. Zero pool
// settings keep the pgxpool defaults.
type Config struct {
	ConnectionString  string        `env:"PG_CONN_URL"`                            // credentials included
	MaxOpenConns      int32         `env:"PG_MAX_OPEN_CONNS" envDefault:"10"`
	MaxIdleConns      int32         `env:"PG_MAX_IDLE_CONNS" envDefault:"2"`       // becomes MinConns, capped at MaxOpenConns
	HealthCheckPeriod time.Duration `env:"PG_HEALTHCHECK_PERIOD" envDefault:"1m"`
	MaxConnIdleTime   time.Duration `env:"PG_MAX_CONN_IDLE_TIME" envDefault:"10m"`
	MaxConnLifetime   time.Duration `env:"PG_MAX_CONN_LIFETIME" envDefault:"30m"`
	ConnectTimeout    time.Duration `env:"PG_CONNECT_TIMEOUT" envDefault:"10s"`
	StatementTimeout  time.Duration `env:"PG_STATEMENT_TIMEOUT" envDefault:"15s"`  // sent as statement_timeout

	RetryAttempts int           `env:"PG_RETRY_ATTEMPTS" envDefault:"3"`
	RetryInterval time.Duration `env:"PG_RETRY_INTERVAL" envDefault:"2s"` // attempt n waits n×RetryInterval

	AutoMigrate     bool   `env:"PG_AUTO_MIGRATE" envDefault:"true"`
	MigrationsPath  string `env:"PG_MIGRATIONS_PATH" envDefault:"migrations"`
	MigrationsTable string `env:"PG_MIGRATIONS_TABLE" envDefault:"goose_version"`
}
