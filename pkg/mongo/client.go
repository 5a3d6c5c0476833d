package mongo

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
	"go.mongodb.org/mongo-driver/v2/x/mongo/driver/connstring"
)

// New connects to MongoDB and verifies the connection with a single ping.
// There is no retry: an invalid connection string or an unreachable server
// returns an error wrapping ErrFailedToConnectToMongo.
func New(ctx context.Context, cfg Config) (*mongo.Client, error) {
	if cfg.ConnectionURL == "" {
		return nil, errors.Join(ErrFailedToConnectToMongo, ErrInvalidConnectionURL)
	}

	opts := options.Client().
		ApplyURI(cfg.ConnectionURL).
		SetMaxPoolSize(cfg.MaxPoolSize).
		SetMinPoolSize(cfg.MinPoolSize).
		SetMaxConnIdleTime(cfg.MaxConnIdleTime)
	if cfg.ConnectTimeout > 0 {
		opts = opts.
			SetConnectTimeout(cfg.ConnectTimeout).
			SetServerSelectionTimeout(cfg.ConnectTimeout)
	}

	client, err := mongo.Connect(opts)
	if err != nil {
		return nil, errors.Join(ErrFailedToConnectToMongo, err)
	}

	pingCtx := ctx
	if cfg.ConnectTimeout > 0 {
		var cancel context.CancelFunc
		pingCtx, cancel = context.WithTimeout(ctx, cfg.ConnectTimeout)
		defer cancel()
	}
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.WithoutCancel(ctx))
		return nil, errors.Join(ErrFailedToConnectToMongo, err)
	}

	return client, nil
}

// NewWithDatabase connects like New and returns the database resolved by
// DatabaseName.
func NewWithDatabase(ctx context.Context, cfg Config) (*mongo.Database, error) {
	name, err := DatabaseName(cfg)
	if err != nil {
		return nil, errors.Join(ErrFailedToConnectToMongo, err)
	}
	client, err := New(ctx, cfg)
	if err != nil {
		return nil, err
	}
	return client.Database(name), nil
}

// DatabaseName resolves the database to use: Config.Database when set,
// otherwise the path of the connection string, otherwise DefaultDatabase.
func DatabaseName(cfg Config) (string, error) {
	if cfg.Database != "" {
		return cfg.Database, nil
	}
	cs, err := connstring.ParseAndValidate(cfg.ConnectionURL)
	if err != nil {
		return "", errors.Join(ErrInvalidConnectionURL, err)
	}
	if cs.Database != "" {
		return cs.Database, nil
	}
	return DefaultDatabase, nil
}

// Close disconnects the client. A nil client is a no-op.
// Cancellation of ctx is ignored so cleanup still runs after an interrupted
// run; the disconnect is bounded by a fixed timeout instead.
func Close(ctx context.Context, client *mongo.Client) error {
	if client == nil {
		return nil
	}
	ctx = context.WithoutCancel(ctx)
	ctx, cancel := context.WithTimeout(ctx, disconnectTimeout)
	defer cancel()
	if err := client.Disconnect(ctx); err != nil {
		return errors.Join(ErrFailedToDisconnect, err)
	}
	return nil
}
