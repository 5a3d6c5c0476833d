package demo

import "errors"

var (
	// ErrStepFailed wraps the error of the step that stopped a run.
	ErrStepFailed = errors.New("demo step failed")

	// ErrMissingPrerequisite is returned when a step needs a result an
	// earlier step did not produce, such as an empty name match before the
	// lookup by id.
	ErrMissingPrerequisite = errors.New("earlier step produced no usable result")

	// ErrInvalidScenario is returned for malformed scenario data.
	ErrInvalidScenario = errors.New("invalid demo scenario")

	// ErrNilStore is returned when a runner is created without a store.
	ErrNilStore = errors.New("store cannot be nil")

	// ErrPreflight is returned when the preflight check fails.
	ErrPreflight = errors.New("demo preflight check failed")

	// ErrReset is returned when clearing scenario records before a run fails.
	ErrReset = errors.New("failed to reset demo records")
)
