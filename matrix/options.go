// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for tolerance checks and text
// rendering. This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors with strong validation (panic on nonsensical values),
//   - gatherOptions helper (internal) that resolves setters against defaults.
//
// Design goals:
//   - Deterministic behavior: no global state, no implicit randomness.
//   - No dead switches: each flag impacts AllClose or Format and is covered by tests.
//   - Safe by construction: panic only on invalid parameters (programmer error).
//
// Notes:
//   - The algebra itself (Add, Mul, Inverse, ...) takes no options: it is exact
//     in the element type. Options only shape how results are compared and printed.
package matrix

import "math"

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultEpsilon is the non-negative tolerance used by AllClose.
	DefaultEpsilon = 1e-9

	// DefaultRelative selects absolute (false) or relative (true) tolerance in AllClose.
	DefaultRelative = false

	// DefaultPrecision is the number of fractional digits used by Format;
	// -1 means the shortest representation that round-trips.
	DefaultPrecision = -1
)

// ---------- Internal panic messages (no magic strings) ----------

const (
	panicEpsilonInvalid   = "matrix: WithEpsilon: eps must be finite, non-negative"
	panicPrecisionInvalid = "matrix: WithPrecision: precision must be >= -1"
)

// ---------- Public option type (functional) ----------

// Option mutates internal options. Safe to apply repeatedly (idempotent).
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept `...Option`.
type Options struct {
	eps       float64 // >= 0; DefaultEpsilon
	relative  bool    // DefaultRelative
	precision int     // >= -1; DefaultPrecision
}

// Epsilon returns the resolved tolerance.
func (o Options) Epsilon() float64 { return o.eps }

// Relative reports whether AllClose scales the tolerance by magnitude.
func (o Options) Relative() bool { return o.relative }

// Precision returns the resolved Format precision.
func (o Options) Precision() int { return o.precision }

// ---------- Constructors (WithX) ----------

// WithEpsilon sets the tolerance eps used by AllClose.
// Implementation:
//   - Stage 1: validate eps is finite and ≥ 0.
//   - Stage 2: return a setter that writes eps into Options.
//
// Errors:
//   - Panics with a stable message when eps is invalid.
//
// AI-Hints:
//   - 1e-9 suits double-precision data; F32 matrices want something near 1e-5.
func WithEpsilon(eps float64) Option {
	if isNonFinite(eps) || eps < 0 {
		panic(panicEpsilonInvalid)
	}

	return func(o *Options) { o.eps = eps }
}

// WithRelative switches AllClose to the relative rule
// |a-b| ≤ eps·max(1, |a|, |b|).
func WithRelative() Option {
	return func(o *Options) { o.relative = true }
}

// WithAbsolute restores the absolute rule |a-b| ≤ eps (default).
func WithAbsolute() Option {
	return func(o *Options) { o.relative = false }
}

// WithPrecision sets the number of fractional digits Format prints.
// -1 selects the shortest exact representation.
//
// Errors:
//   - Panics with a stable message when p < -1.
func WithPrecision(p int) Option {
	if p < -1 {
		panic(panicPrecisionInvalid)
	}

	return func(o *Options) { o.precision = p }
}

// --------------------------- Option Resolution ---------------------------

// NewOptions resolves option setters against documented defaults.
// Useful to inspect the effective configuration; package functions call
// gatherOptions directly.
func NewOptions(opts ...Option) Options {
	return gatherOptions(opts...)
}

// gatherOptions applies user-provided Option setters on top of defaults.
// Implementation:
//   - Stage 1: start from the Default* constants.
//   - Stage 2: apply setters in order (last-writer-wins).
//
// Complexity:
//   - Time O(k), Space O(1) for k=len(user).
func gatherOptions(user ...Option) Options {
	o := Options{
		eps:       DefaultEpsilon,
		relative:  DefaultRelative,
		precision: DefaultPrecision,
	}
	for _, set := range user {
		set(&o) // apply in order; last-writer-wins semantics
	}

	return o
}

// isNonFinite reports NaN or ±Inf.
func isNonFinite(v float64) bool {
	return math.IsNaN(v) || math.IsInf(v, 0)
}
