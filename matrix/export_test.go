// SPDX-License-Identifier: MIT

package matrix

// Test-Bridge (White-Box) for private helpers.
//
// Purpose:
//   - Expose unexported helpers to matrix_test ONLY (the _test.go suffix keeps
//     them out of production builds).
//
// AI-Hints:
//   - Keep ALL test-only bridges co-located here.

var (
	// MaxInSubColumn_TestOnly exposes the pivot search on 3×3 F64 matrices.
	MaxInSubColumn_TestOnly = maxInSubColumn[F64, D3]

	// IsNonFinite_TestOnly exposes the NaN/Inf predicate.
	IsNonFinite_TestOnly = isNonFinite
)

// Panic message exports to avoid "magic strings" in tests.
const (
	PanicEpsilonInvalid_TestOnly   = panicEpsilonInvalid
	PanicPrecisionInvalid_TestOnly = panicPrecisionInvalid
)

// GatherOptions_TestOnly forwards to gatherOptions.
func GatherOptions_TestOnly(opts ...Option) Options { return gatherOptions(opts...) }
