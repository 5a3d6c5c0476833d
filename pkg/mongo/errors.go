package mongo

import "errors"

var (
	ErrFailedToConnectToMongo = errors.New("failed to connect to mongo")
	ErrHealthcheckFailed      = errors.New("mongo healthcheck failed")
	ErrInvalidConnectionURL   = errors.New("invalid mongo connection url")
	ErrFailedToDisconnect     = errors.New("failed to disconnect from mongo")
)
