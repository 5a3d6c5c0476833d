// Package environment carries the current application environment
// (development, staging, production) through context.Context and into
// structured logs.
//
// Parse turns an APP_ENV value into an Environment. WithContext and
// FromContext store and read it. LoggerExtractor plugs into the logger
// package so every record gets an "env" attribute.
//
//	env, err := environment.Parse(os.Getenv("APP_ENV"))
//	if err != nil {
//	    return err
//	}
//	ctx = environment.WithContext(ctx, env)
//	if environment.IsProduction(ctx) {
//	    // production-specific behaviour
//	}
package environment
