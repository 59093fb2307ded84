package mongo

import "time"

// Config is read from MONGODB_* variables when STORE_DRIVER=mongo.
type Config struct {
	ConnectionURL   string        `env:"MONGODB_URL"`                                  // credentials included
	Database        string        `env:"MONGODB_DATABASE" envDefault:"intake"`         // one collection per submission kind
	ConnectTimeout  time.Duration `env:"MONGODB_CONNECT_TIMEOUT" envDefault:"10s"`
	Timeout         time.Duration `env:"MONGODB_TIMEOUT" envDefault:"15s"`             // client-wide operation timeout
	MaxPoolSize     uint64        `env:"MONGODB_MAX_POOL_SIZE" envDefault:"20"`
	MinPoolSize     uint64        `env:"MONGODB_MIN_POOL_SIZE" envDefault:"1"`
	MaxConnIdleTime time.Duration `env:"MONGODB_MAX_CONN_IDLE_TIME" envDefault:"300s"`
	RetryWrites     bool          `env:"MONGODB_RETRY_WRITES" envDefault:"false"`      // a retried insert could store a submission twice
	RetryAttempts   int           `env:"MONGODB_RETRY_ATTEMPTS" envDefault:"3"`        // connect attempts
	RetryInterval   time.Duration `env:"MONGODB_RETRY_INTERVAL" envDefault:"2s"`
}
