package slcconfig

import "log/slog"

// DefaultEpsilon is the tolerance used throughout the solver's numerical
// comparisons unless overridden.
const DefaultEpsilon = 1e-9

// Options carries the tunables consumed by matching.Engine, lp.Solver, and
// the top-level slc orchestrator.
type Options struct {
	// Epsilon is the tolerance behind the GREATER/NearZero predicates.
	Epsilon float64

	// MaxPrimalDualIterations caps the matching engine's outer loop. Zero
	// means "let the engine pick its own O(n^3) default".
	MaxPrimalDualIterations int

	// MaxConnectivityRepairs bounds the LP's connectivity-repair retry
	// loop. Zero means "use n repairs", per §7's default policy.
	MaxConnectivityRepairs int

	Logger *slog.Logger
}

// Option configures Options.
type Option func(*Options)

// WithEpsilon overrides the numerical tolerance.
func WithEpsilon(eps float64) Option {
	return func(o *Options) { o.Epsilon = eps }
}

// WithMaxPrimalDualIterations overrides the matching engine's iteration cap.
func WithMaxPrimalDualIterations(n int) Option {
	return func(o *Options) { o.MaxPrimalDualIterations = n }
}

// WithMaxConnectivityRepairs overrides the LP connectivity-repair retry bound.
func WithMaxConnectivityRepairs(n int) Option {
	return func(o *Options) { o.MaxConnectivityRepairs = n }
}

// WithLogger attaches a structured logger, propagated to every component
// the top-level orchestrator constructs.
func WithLogger(l *slog.Logger) Option {
	return func(o *Options) { o.Logger = l }
}

// New builds Options from defaults plus opts.
func New(opts ...Option) Options {
	o := Options{Epsilon: DefaultEpsilon}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
