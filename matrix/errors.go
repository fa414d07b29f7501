// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors and the shared wrapping
// helpers. Shape mismatches between operands are compile-time errors (the shape
// is part of the type), so the sentinels below cover the runtime surface only:
// index checks, numeric degeneracy, and data that arrives at runtime (YAML,
// nested slices).
//
// Panics are reserved for programmer errors (out-of-range index, a Dim whose
// Size() < 1, nonsensical option values). Panic values are always errors that
// wrap one of the sentinels below, so a recover() site can use errors.Is.

package matrix

import (
	"errors"
	"fmt"
)

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. Wrap with matrixErrorf(op, ErrX) to attach the
// operation tag; callers still use errors.Is to match.

var (
	// ErrBadShape is raised when a Dim reports Size() < 1.
	ErrBadShape = errors.New("matrix: invalid shape")

	// ErrOutOfRange indicates that an index (column or row) is outside the
	// compile-time bounds of the matrix. At/Set panic with this sentinel.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrDimensionMismatch indicates that runtime data (nested slices, YAML
	// documents) does not match the static shape of the destination type.
	ErrDimensionMismatch = errors.New("matrix: dimension mismatch")

	// ErrSingular is returned by TryInverse when elimination meets a zero pivot
	// (the determinant is zero and the inverse is meaningless).
	ErrSingular = errors.New("matrix: singular matrix")

	// ErrNonFinite signals a NaN or ±Inf cell where finite values are required.
	ErrNonFinite = errors.New("matrix: NaN or Inf encountered")
)

// Operation name constants for unified error wrapping and reducing magic strings.
const (
	opAt       = "At"
	opSet      = "Set"
	opNew      = "New"
	opFromRows = "FromRows"
	opInverse  = "Inverse"
	opYAML     = "UnmarshalYAML"
	opFinite   = "CheckFinite"
)

// matrixErrorf wraps err with an operation tag, preserving the original error via %w.
// Use only when err != nil to avoid creating a non-nil wrapper around a nil cause.
func matrixErrorf(tag string, err error) error {
	return fmt.Errorf("%s: %w", tag, err)
}

// indexPanic aborts an out-of-range access with an error value carrying the
// offending coordinates and the static shape.
func indexPanic(tag string, x, y, w, h int) {
	panic(fmt.Errorf("%s(%d,%d) on %dx%d: %w", tag, x, y, w, h, ErrOutOfRange))
}
