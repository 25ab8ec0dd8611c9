// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for the numeric policy of newly
// created matrices.
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - No dead switches: each flag changes behavior and is covered by tests.
//   - Options are resolved once at construction; existing matrices keep
//     the policy they were created with.
package matrix

// DefaultValidateNaNInf toggles strict finite-value validation on Set.
const DefaultValidateNaNInf = true

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithValidateNaNInf enables strict finite-value validation (the default).
// When enabled, Set rejects NaN and ±Inf with ErrNaNInf.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables NaN/Inf validation on Set.
// Use it when the caller runs its own finite check with better context
// (the solvers do, via ValidateFinite).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies opts over the documented defaults.
// Complexity: O(len(opts)).
func gatherOptions(opts ...Option) Options {
	o := Options{validateNaNInf: DefaultValidateNaNInf}
	for _, fn := range opts {
		if fn != nil {
			fn(&o)
		}
	}

	return o
}
