package demo

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/mongodemo/internal/person"
	"github.com/dmitrymomot/mongodemo/pkg/logger"
)

// Result is the captured outcome of one executed step.
type Result struct {
	Step     string
	Value    any
	Err      error
	Duration time.Duration
}

// Report summarizes a run.
type Report struct {
	RunID   uuid.UUID
	Results []Result
	Total   int
	Err     error
}

// Completed reports whether every step ran without error.
func (r Report) Completed() bool {
	return r.Err == nil && len(r.Results) == r.Total
}

// Result returns the captured result of the named step.
func (r Report) Result(step string) (Result, bool) {
	for _, res := range r.Results {
		if res.Step == step {
			return res, true
		}
	}
	return Result{}, false
}

// Runner executes demo steps one after another against a store.
type Runner struct {
	store    Store
	scenario Scenario
	steps    []Step
	log      *slog.Logger
	reset    bool
	check    func(context.Context) error
}

// Option configures a Runner.
type Option func(*Runner)

// WithLogger sets the logger. Nil is ignored.
func WithLogger(l *slog.Logger) Option {
	return func(r *Runner) {
		if l != nil {
			r.log = l
		}
	}
}

// WithScenario replaces the embedded scenario and rebuilds the steps from it.
func WithScenario(sc Scenario) Option {
	return func(r *Runner) {
		r.scenario = sc
		r.steps = Steps(sc)
	}
}

// WithSteps replaces the step list.
func WithSteps(steps ...Step) Option {
	return func(r *Runner) {
		r.steps = steps
	}
}

// WithReset deletes every record the scenario inserts before the first step,
// so repeated runs against the same collection see the same data.
func WithReset(reset bool) Option {
	return func(r *Runner) { r.reset = reset }
}

// WithPreflight registers a check run before anything touches the store,
// typically a database ping.
func WithPreflight(check func(context.Context) error) Option {
	return func(r *Runner) { r.check = check }
}

// New creates a runner over store with the default scenario.
func New(store Store, opts ...Option) (*Runner, error) {
	if store == nil {
		return nil, ErrNilStore
	}
	sc := DefaultScenario()
	r := &Runner{
		store:    store,
		scenario: sc,
		steps:    Steps(sc),
		log:      slog.Default(),
	}
	for _, opt := range opts {
		opt(r)
	}
	r.log = r.log.With(logger.Component("demo"))
	return r, nil
}

// Run executes the steps in order and stops at the first failure or when
// ctx is done. Steps after the failing one are never started.
func (r *Runner) Run(ctx context.Context) Report {
	report := Report{RunID: uuid.New(), Total: len(r.steps)}
	ctx = WithRunID(ctx, report.RunID)

	r.log.InfoContext(ctx, "demo started", slog.Int("steps", report.Total))

	if r.check != nil {
		if err := r.check(ctx); err != nil {
			report.Err = errors.Join(ErrPreflight, err)
			r.log.ErrorContext(ctx, "demo aborted", logger.Error(err))
			return report
		}
	}

	if r.reset {
		if err := r.resetRecords(ctx); err != nil {
			report.Err = err
			r.log.ErrorContext(ctx, "demo aborted", logger.Error(err))
			return report
		}
	}

	state := &State{}
	for _, st := range r.steps {
		if err := ctx.Err(); err != nil {
			report.Err = errors.Join(ErrStepFailed, fmt.Errorf("%s: %w", st.Name, err))
			r.log.ErrorContext(ctx, "demo interrupted", logger.Step(st.Name), logger.Error(err))
			break
		}

		start := time.Now()
		value, err := st.Run(ctx, r.store, state)
		res := Result{Step: st.Name, Err: err, Duration: time.Since(start)}
		if err == nil {
			res.Value = value
		}
		report.Results = append(report.Results, res)

		if err != nil {
			report.Err = errors.Join(ErrStepFailed, fmt.Errorf("%s: %w", st.Name, err))
			r.log.ErrorContext(ctx, "step failed",
				logger.Step(st.Name),
				logger.Duration(res.Duration),
				logger.Error(err),
			)
			break
		}
		r.log.InfoContext(ctx, "step completed",
			logger.Step(st.Name),
			logger.Duration(res.Duration),
			resultAttr(value),
		)
	}

	r.log.InfoContext(ctx, "demo finished",
		slog.Int("executed", len(report.Results)),
		slog.Bool("completed", report.Completed()),
	)
	return report
}

func (r *Runner) resetRecords(ctx context.Context) error {
	for _, name := range r.scenario.names() {
		n, err := r.store.DeleteMany(ctx, person.ByName(name))
		if err != nil {
			return errors.Join(ErrReset, err)
		}
		r.log.DebugContext(ctx, "cleared previous records", slog.String("name", name), logger.Count(n))
	}
	return nil
}

// people logs a result list as an indexed group.
type people []person.Person

func (ps people) LogValue() slog.Value {
	attrs := make([]slog.Attr, len(ps))
	for i, p := range ps {
		attrs[i] = slog.Any(fmt.Sprint(i), p)
	}
	return slog.GroupValue(attrs...)
}

func resultAttr(v any) slog.Attr {
	switch v := v.(type) {
	case *person.Person:
		return slog.Any("result", *v)
	case []person.Person:
		return logger.Group("result", logger.Count(int64(len(v))), slog.Any("people", people(v)))
	case int64:
		return logger.Group("result", slog.Int64("deletedCount", v))
	case Absent:
		return slog.String("result", v.String())
	default:
		return slog.Any("result", v)
	}
}
