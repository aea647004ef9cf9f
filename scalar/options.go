// SPDX-License-Identifier: MIT

// Package scalar: functional configuration for the numeric policy.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values).
//
// Design goals:
//   - Deterministic behavior: no global state.
//   - Safe by construction: panic only on invalid parameters (programmer error).
package scalar

import (
	"fmt"
	"math"
)

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the absolute tolerance used by ApproxEqual helpers.
	DefaultEpsilon = 1e-9

	// DefaultPrecision selects the shortest representation (%g / %d).
	DefaultPrecision = -1
)

// Options holds the resolved numeric policy. Fields are unexported; build it
// with NewOptions.
type Options struct {
	epsilon   float64 // absolute tolerance, >= 0
	precision int     // digits after the point, -1 means shortest
}

// Option mutates Options during NewOptions.
type Option func(*Options)

// defaultOptions returns the zero-configuration policy.
func defaultOptions() Options {
	return Options{
		epsilon:   DefaultEpsilon,
		precision: DefaultPrecision,
	}
}

// NewOptions resolves opts over the defaults, applied left to right.
// Complexity: O(len(opts)).
func NewOptions(opts ...Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		if opt != nil { // nil options are ignored
			opt(&o)
		}
	}

	return o
}

// Epsilon returns the configured absolute tolerance.
func (o Options) Epsilon() float64 { return o.epsilon }

// Precision returns the configured formatting precision (-1 = shortest).
func (o Options) Precision() int { return o.precision }

// WithEpsilon sets the absolute tolerance for approximate comparisons.
// Panics if eps is negative, NaN or Inf.
func WithEpsilon(eps float64) Option {
	if eps < 0 || math.IsNaN(eps) || math.IsInf(eps, 0) {
		panic(fmt.Sprintf("scalar: WithEpsilon(%v): must be finite and >= 0", eps))
	}

	return func(o *Options) { o.epsilon = eps }
}

// WithPrecision fixes the number of digits printed after the decimal point
// for floating-point components. -1 restores the shortest form.
// Panics if p < -1.
func WithPrecision(p int) Option {
	if p < DefaultPrecision {
		panic(fmt.Sprintf("scalar: WithPrecision(%d): must be >= -1", p))
	}

	return func(o *Options) { o.precision = p }
}
