package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/dmitrymomot/mongodemo/internal/demo"
	"github.com/dmitrymomot/mongodemo/internal/person"
	"github.com/dmitrymomot/mongodemo/pkg/config"
	"github.com/dmitrymomot/mongodemo/pkg/environment"
	"github.com/dmitrymomot/mongodemo/pkg/logger"
	"github.com/dmitrymomot/mongodemo/pkg/mongo"
)

func main() {
	os.Exit(run())
}

// run returns the process exit code. It exists so deferred cleanup runs
// before os.Exit.
func run() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var cfg appConfig
	if err := config.Load(&cfg); err != nil {
		logger.New(logger.WithTextFormatter()).Error("failed to load configuration", logger.Error(err))
		return 1
	}

	env, err := environment.Parse(cfg.Env)
	if err != nil {
		logger.New(logger.WithTextFormatter()).Error("failed to load configuration", slog.String("APP_ENV", cfg.Env), logger.Error(err))
		return 1
	}
	ctx = environment.WithContext(ctx, env)

	log := newLogger(cfg, env)
	logger.SetAsDefault(log)

	scenario := demo.DefaultScenario()
	if cfg.ScenarioFile != "" {
		if scenario, err = demo.LoadScenario(cfg.ScenarioFile); err != nil {
			log.ErrorContext(ctx, "failed to load scenario", slog.String("path", cfg.ScenarioFile), logger.Error(err))
			return 1
		}
	}

	b, err := openBackend(ctx, cfg, log)
	if err != nil {
		log.ErrorContext(ctx, "failed to connect to MongoDB", logger.Error(err))
		return 1
	}
	defer b.close()

	runner, err := demo.New(b.store,
		demo.WithScenario(scenario),
		demo.WithReset(cfg.Reset),
		demo.WithPreflight(b.ping),
		demo.WithLogger(log),
	)
	if err != nil {
		log.ErrorContext(ctx, "failed to create demo runner", logger.Error(err))
		return 1
	}

	runCtx := ctx
	if cfg.Timeout > 0 {
		var cancel context.CancelFunc
		runCtx, cancel = context.WithTimeout(ctx, cfg.Timeout)
		defer cancel()
	}

	// Step errors are already logged by the runner and do not change the
	// exit code.
	if report := runner.Run(runCtx); report.Err != nil {
		log.InfoContext(ctx, "demo stopped early",
			slog.Int("executed", len(report.Results)),
			slog.Int("total", report.Total),
		)
	}
	return 0
}

func newLogger(cfg appConfig, env environment.Environment, extra ...logger.Option) *slog.Logger {
	opts := []logger.Option{
		logger.WithEnvironment(env, cfg.Name),
		logger.WithContextExtractors(
			environment.LoggerExtractor(),
			demo.RunIDExtractor(),
		),
	}
	if level, ok := logger.ParseLevel(cfg.LogLevel); ok {
		opts = append(opts, logger.WithLevel(level))
	}
	return logger.New(append(opts, extra...)...)
}

// backend is the store selected by DEMO_STORAGE together with its health
// check and release function. close logs the closure and is safe to defer.
type backend struct {
	store demo.Store
	ping  func(context.Context) error
	close func()
}

func openBackend(ctx context.Context, cfg appConfig, log *slog.Logger) (*backend, error) {
	switch cfg.Storage {
	case storageMemory:
		log.InfoContext(ctx, "using in-memory storage")
		return &backend{
			store: person.NewMemoryStore(),
			ping:  func(context.Context) error { return nil },
			close: func() {},
		}, nil
	case storageMongo, "":
	default:
		return nil, fmt.Errorf("unknown DEMO_STORAGE %q: must be %q or %q", cfg.Storage, storageMongo, storageMemory)
	}

	var mcfg mongo.Config
	if err := config.Load(&mcfg); err != nil {
		return nil, errors.Join(mongo.ErrFailedToConnectToMongo, err)
	}
	return connectMongo(ctx, mcfg, log)
}

func connectMongo(ctx context.Context, mcfg mongo.Config, log *slog.Logger) (*backend, error) {
	dbName, err := mongo.DatabaseName(mcfg)
	if err != nil {
		return nil, errors.Join(mongo.ErrFailedToConnectToMongo, err)
	}
	client, err := mongo.New(ctx, mcfg)
	if err != nil {
		return nil, err
	}

	log.InfoContext(ctx, "connected to MongoDB",
		logger.Database(dbName),
		logger.Collection(person.CollectionName),
	)

	return &backend{
		store: person.NewMongoStoreFromDatabase(client.Database(dbName)),
		ping:  mongo.Healthcheck(client),
		close: func() {
			if err := mongo.Close(ctx, client); err != nil {
				log.ErrorContext(ctx, "failed to close MongoDB connection", logger.Error(err))
				return
			}
			log.InfoContext(ctx, "MongoDB connection closed")
		},
	}, nil
}
