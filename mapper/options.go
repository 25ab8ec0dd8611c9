package mapper

import (
	"runtime"

	"github.com/katalvlaran/formation/geom"
)

// Options holds the effective configuration of Map and MapBatch.
//
// Objective – MinSum or MinMax.
// Cost      – cost function that drives the solve (never the reported cost).
// Truncate  – drop the tail of the longer point set instead of failing.
// Logger    – structured logger; NoopLogger() by default.
// Workers   – MapBatch concurrency bound, ≥ 1.
// MaxSteps  – solver step cap forwarded to hungarian.Options (0 = derived).
type Options struct {
	Objective Objective
	Cost      geom.CostFunc
	Truncate  bool
	Logger    *Logger
	Workers   int
	MaxSteps  int
}

// Option is a functional option for Map and MapBatch.
type Option func(*Options)

// DefaultOptions returns the documented defaults.
func DefaultOptions() Options {
	return Options{
		Objective: MinSum,
		Cost:      geom.Euclidean,
		Logger:    NoopLogger(),
		Workers:   runtime.GOMAXPROCS(0),
	}
}

// WithObjective selects the optimization criterion. An unknown value is
// reported by Map as ErrUnknownObjective.
func WithObjective(o Objective) Option {
	return func(opts *Options) {
		opts.Objective = o
	}
}

// WithCost sets a custom cost function. A nil fn makes Map fail with
// matrix.ErrNilCostFunc.
func WithCost(fn geom.CostFunc) Option {
	return func(opts *Options) {
		opts.Cost = fn
	}
}

// WithMetric selects one of the built-in cost functions.
// Panics on an unknown Metric.
func WithMetric(m geom.Metric) Option {
	return func(opts *Options) {
		fn := m.Func()
		if fn == nil {
			panic(geom.ErrUnknownMetric.Error())
		}
		opts.Cost = fn
	}
}

// WithTruncate pairs only the first min(len(source), len(target)) points
// of each set.
func WithTruncate() Option {
	return func(opts *Options) {
		opts.Truncate = true
	}
}

// WithLogger sets the logger; nil restores the noop logger.
func WithLogger(l *Logger) Option {
	return func(opts *Options) {
		if l == nil {
			l = NoopLogger()
		}
		opts.Logger = l
	}
}

// WithWorkers bounds MapBatch concurrency. Panics if n < 1.
func WithWorkers(n int) Option {
	return func(opts *Options) {
		if n < 1 {
			panic(ErrBadWorkers.Error())
		}
		opts.Workers = n
	}
}

// WithMaxSteps caps the min-sum state machine. Panics if n < 0.
func WithMaxSteps(n int) Option {
	return func(opts *Options) {
		if n < 0 {
			panic(ErrBadMaxSteps.Error())
		}
		opts.MaxSteps = n
	}
}

func gatherOptions(opts ...Option) Options {
	o := DefaultOptions()
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
