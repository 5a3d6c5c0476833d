// Package logger builds *slog.Logger instances from functional options and
// provides attribute helpers with consistent key names.
//
// New picks the handler by Format. Text output goes through
// github.com/lmittmann/tint for readable console lines. JSON output uses
// slog.NewJSONHandler. The handler is then wrapped in LogHandlerDecorator,
// which runs every registered ContextExtractor on each record. This is how
// the run id and the environment reach every line without being passed
// around.
//
// # Usage
//
//	log := logger.New(
//	    logger.WithEnvironment(environment.Development, "mongodemo"),
//	    logger.WithContextValue("run_id", runIDKey{}),
//	    logger.WithContextExtractors(environment.LoggerExtractor()),
//	)
//	logger.SetAsDefault(log)
//
//	log.InfoContext(ctx, "step completed",
//	    logger.Step("insert_one"),
//	    logger.Duration(time.Since(start)),
//	)
//
// # Configuration
//
//   - WithDevelopment / WithStaging / WithProduction / WithEnvironment: presets.
//   - WithFormat / WithTextFormatter / WithJSONFormatter / WithNoColor: output format.
//   - WithLevel / WithHandlerOptions: level and handler tuning.
//   - WithAttr: static attributes.
//   - WithContextExtractors / WithContextValue: attributes pulled from context.
//
// Error and Errors return an empty attribute for nil errors, so
//
//	log.Info("step completed", logger.Error(err))
//
// needs no nil check.
package logger
