package mongo

import "time"

// Config represents the configuration for the database connection.
type Config struct {
	ConnectionURL   string        `env:"MONGO_URI,required"`                         // ConnectionURL is the MongoDB connection string.
	Database        string        `env:"MONGO_DATABASE"`                             // Database overrides the database named in the connection string.
	ConnectTimeout  time.Duration `env:"MONGO_CONNECT_TIMEOUT" envDefault:"10s"`     // ConnectTimeout bounds the initial connect and ping.
	MaxPoolSize     uint64        `env:"MONGO_MAX_POOL_SIZE" envDefault:"100"`       // MaxPoolSize is the maximum number of connections in the connection pool.
	MinPoolSize     uint64        `env:"MONGO_MIN_POOL_SIZE" envDefault:"1"`         // MinPoolSize is the minimum number of connections in the connection pool.
	MaxConnIdleTime time.Duration `env:"MONGO_MAX_CONN_IDLE_TIME" envDefault:"300s"` // MaxConnIdleTime is how long a pooled connection may stay idle.
}

// DefaultDatabase is used when neither Config.Database nor the connection
// string names a database.
const DefaultDatabase = "test"

// disconnectTimeout bounds Close when the caller's context has no deadline.
const disconnectTimeout = 10 * time.Second
