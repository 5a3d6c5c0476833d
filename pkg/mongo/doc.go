// Package mongo opens and closes the MongoDB client used by the demo.
//
// Configuration comes from the environment (see Config). MONGO_URI is the
// only required variable. New applies the connection string, pings the
// server once within ConnectTimeout and returns the client. It does not
// retry: a bad connection string or an unreachable server is reported
// immediately so the caller can exit.
//
// # Usage
//
//	var cfg mongo.Config
//	if err := config.Load(&cfg); err != nil {
//		return err
//	}
//
//	client, err := mongo.New(ctx, cfg)
//	if err != nil {
//		return err
//	}
//	defer mongo.Close(ctx, client)
//
//	name, _ := mongo.DatabaseName(cfg)
//	people := client.Database(name).Collection("people")
//
// # Error Handling
//
// Failures wrap ErrFailedToConnectToMongo, ErrInvalidConnectionURL,
// ErrHealthcheckFailed or ErrFailedToDisconnect together with the driver
// error, so both errors.Is checks and the original cause are available.
//
// # See Also
//
// Documentation for the official driver: https://pkg.go.dev/go.mongodb.org/mongo-driver/v2.
package mongo
