// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set (unified, consistent).
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm panics on user-triggered error conditions;
// panics are reserved for programmer errors in private helpers (if any).

package matrix

import "errors"

// NOTE ON NAMING & PREFIXING
// --------------------------
// Every message is prefixed with "matrix: ..." for consistency and to allow
// easy grepping across logs. DO NOT %w wrap these sentinels when returning
// directly; if context is essential, wrap with fmt.Errorf("ctx: %w", ErrX)
// at the outer boundary — callers will still use errors.Is to match.
//
// ERROR PRIORITY (documented, enforced in tests):
// nil argument -> shape (bad dimensions / empty) -> index bounds
// -> fill selector -> singularity.

// Stable numeric codes, one per failure class. The values are part of the
// public contract and must never be renumbered.
const (
	// CodeOutOfBounds — an index fell outside its extent.
	CodeOutOfBounds = 0x2

	// CodeNilArgument — a nil matrix/vector was passed where a value is required.
	CodeNilArgument = 0x3

	// CodeEmptyShape — zero rows or columns were requested, or an empty
	// operand reached a reduction that needs at least one element.
	CodeEmptyShape = 0x4

	// CodeBadDimensions — an invalid or incompatible shape: negative extents,
	// ragged input rows, mismatched operands, non-square det/inverse input.
	CodeBadDimensions = 0x5

	// CodeUnknownFill — an unrecognized fill selector.
	CodeUnknownFill = 0x6

	// CodeSingular — inverse requested for a non-invertible matrix.
	CodeSingular = 0x7
)

// Error is a sentinel error carrying a stable numeric code alongside its
// description. All package errors are *Error values; errors.Is matches them
// by identity exactly like plain errors.New sentinels.
type Error struct {
	code int    // stable numeric code (Code* constants)
	msg  string // "matrix: ..." prefixed description
}

// Error returns the prefixed description string.
func (e *Error) Error() string { return e.msg }

// ErrCode returns the stable numeric code of the sentinel.
func (e *Error) ErrCode() int { return e.code }

// Code extracts the stable numeric code from err's chain, or 0 when err does
// not wrap a matrix sentinel.
// Complexity: O(depth of the wrap chain).
func Code(err error) int {
	var e *Error
	if errors.As(err, &e) {
		return e.code
	}

	return 0
}

var (
	// ErrOutOfBounds indicates that an index (row, column or element) is
	// outside its valid extent. Public indexers (At/Set/AtVec/SetVec) MUST
	// return this, not panic. Bounds are strict: index == extent is rejected.
	ErrOutOfBounds = &Error{code: CodeOutOfBounds, msg: "matrix: index out of bounds"}

	// ErrNilMatrix indicates that a nil matrix or vector (receiver or
	// argument) was used where a value is required.
	ErrNilMatrix = &Error{code: CodeNilArgument, msg: "matrix: nil matrix"}

	// ErrEmptyShape is returned when zero rows or columns are requested at
	// construction, or when a reduction (Dot, Prod) receives nothing to reduce.
	ErrEmptyShape = &Error{code: CodeEmptyShape, msg: "matrix: empty shape"}

	// ErrBadDimensions is returned for invalid or incompatible shapes:
	// negative extents at construction, ragged nested rows, disagreeing block
	// layouts, operand shape mismatches, and non-square Det/Inv input.
	ErrBadDimensions = &Error{code: CodeBadDimensions, msg: "matrix: bad dimensions"}

	// ErrUnknownFill marks an unrecognized fill selector passed to a
	// constructor.
	ErrUnknownFill = &Error{code: CodeUnknownFill, msg: "matrix: unknown fill mode"}

	// ErrSingular is returned when the inverse of a non-invertible matrix is
	// requested. The engine detects it after paired elimination, when the
	// left side failed to reduce to the identity.
	ErrSingular = &Error{code: CodeSingular, msg: "matrix: singular matrix"}
)
