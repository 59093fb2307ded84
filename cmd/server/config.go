package main

import (
	"errors"
	"fmt"

	"github.com/dmitrymomot/intake/pkg/clientip"
	"github.com/dmitrymomot/intake/pkg/email"
	"github.com/dmitrymomot/intake/pkg/httpserver"
	"github.com/dmitrymomot/intake/pkg/logger"
	"github.com/dmitrymomot/intake/pkg/mongo"
	"github.com/dmitrymomot/intake/pkg/pg"
)

// Store drivers selected by STORE_DRIVER.
const (
	storePostgres = "postgres"
	storeMongo    = "mongo"
	storeNone     = "none"
)

var errInvalidConfig = errors.New("invalid configuration")

type appConfig struct {
	StoreDriver    string   `env:"STORE_DRIVER" envDefault:"postgres"`    // postgres, mongo or none
	OperatorEmail  string   `env:"OPERATOR_EMAIL,required"`               // receives every notification
	BrandName      string   `env:"BRAND_NAME" envDefault:"Intake"`        // used to sign confirmation emails
	Debug          bool     `env:"DEBUG" envDefault:"false"`              // exposes internal error detail in responses
	APIPrefix      string   `env:"API_PREFIX" envDefault:"/api"`          // mount point of the submission endpoints
	AllowedOrigins []string `env:"CORS_ALLOWED_ORIGINS" envSeparator:","` // empty allows any origin
	MaxBodyBytes   int64    `env:"MAX_BODY_BYTES" envDefault:"1048576"`   // request body limit
}

type config struct {
	App      appConfig
	Log      logger.Config
	HTTP     httpserver.Config
	ClientIP clientip.Config
	Mail     email.Config
	Postgres pg.Config
	Mongo    mongo.Config
}

func (c config) validate() error {
	switch c.App.StoreDriver {
	case storePostgres, storeMongo, storeNone:
	default:
		return fmt.Errorf("%w: unknown STORE_DRIVER %q", errInvalidConfig, c.App.StoreDriver)
	}
	if c.App.APIPrefix == "" || c.App.APIPrefix[0] != '/' {
		return fmt.Errorf("%w: API_PREFIX must start with /", errInvalidConfig)
	}
	return nil
}
