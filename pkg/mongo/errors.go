package mongo

import "errors"

var (
	ErrEmptyConnectionURL     = errors.New("mongo: MONGODB_URL is empty")
	ErrEmptyDatabase          = errors.New("mongo: MONGODB_DATABASE is empty")
	ErrFailedToConnectToMongo = errors.New("mongo: cannot connect")
	ErrHealthcheckFailed      = errors.New("mongo: ping failed")
)
