// Package errors defines the taxonomy of compile-time errors produced while
// turning a mathmap function definition into a compiled program.
//
// Runtime numeric failures are never reported through this package: they are
// absorbed into the BAD sentinel by the vm package. Only the front-end
// (variable and expression extraction, lexing, validation) fails fast, and
// it always fails with one of the codes below.
package errors

import (
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// Code identifies one member of the externally-visible error taxonomy.
type Code string

// The full set of compile-time error codes.
const (
	// CONIN means a numeric literal had invalid syntax.
	CONIN Code = "CONIN"
	// UDVOF means an identifier did not resolve to a known variable or function.
	UDVOF Code = "UDVOF"
	// DELIN means a comma appeared somewhere it isn't legal.
	DELIN Code = "DELIN"
	// MLPAR means a closing parenthesis had no matching opener.
	MLPAR Code = "MLPAR"
	// WRNFA means a function call had the wrong (or insufficient) argument count.
	WRNFA Code = "WRNFA"
	// MIOPR means an operator was expected but none was found.
	MIOPR Code = "MIOPR"
	// MIOPA means an operand was expected but none was found.
	MIOPA Code = "MIOPA"
	// MRPAR means an opening parenthesis had no matching closer.
	MRPAR Code = "MRPAR"
	// MISVN means a function's left-hand side variable name was blank.
	MISVN Code = "MISVN"
	// VARIN means a left-hand side variable name was not a valid identifier.
	VARIN Code = "VARIN"
	// DUVAR means the same variable name was declared twice within a direction.
	DUVAR Code = "DUVAR"
	// NORHS means a right-hand side was required but absent.
	NORHS Code = "NORHS"
)

// CompileError is the concrete error type returned by every fallible
// front-end operation (extractor, lexer, validator).
type CompileError struct {
	// Code is the taxonomy member this error represents.
	Code Code

	// Message is a human-readable description.
	Message string

	// Fragment is the offending source text, typically the prefix of the
	// expression up to and including the failing character.
	Fragment string

	// FuncIndex is the index, within the fwd/inv array being processed, of
	// the function that triggered the error. -1 if not applicable.
	FuncIndex int

	// cause holds a wrapped lower-level error, if any.
	cause error
}

// Error implements the error interface.
func (e *CompileError) Error() string {
	if e.FuncIndex >= 0 {
		return fmt.Sprintf("%s: %s (function %d): %q", e.Code, e.Message, e.FuncIndex, e.Fragment)
	}
	return fmt.Sprintf("%s: %s: %q", e.Code, e.Message, e.Fragment)
}

// Unwrap exposes any wrapped cause so callers can use errors.As/errors.Is
// from the standard library.
func (e *CompileError) Unwrap() error {
	return e.cause
}

// New builds a CompileError with no function index (FuncIndex is set to -1).
func New(code Code, message, fragment string) *CompileError {
	return &CompileError{Code: code, Message: message, Fragment: fragment, FuncIndex: -1}
}

// NewAt builds a CompileError naming the offending function's index.
func NewAt(code Code, message, fragment string, funcIndex int) *CompileError {
	return &CompileError{Code: code, Message: message, Fragment: fragment, FuncIndex: funcIndex}
}

// Wrap attaches source-fragment context to a lower-level cause, preserving
// it behind Unwrap so that errors.Is/errors.As from the standard library
// can reach it.
func Wrap(cause error, code Code, message, fragment string) *CompileError {
	return &CompileError{
		Code:      code,
		Message:   message,
		Fragment:  fragment,
		FuncIndex: -1,
		cause:     pkgerrors.Wrap(cause, message),
	}
}

// WithFuncIndex returns err annotated with the index of the function whose
// compilation triggered it. If err is a *CompileError its FuncIndex field is
// set in place; any other error is returned unchanged, since only the
// taxonomy defined in this package carries a function index.
func WithFuncIndex(err error, idx int) error {
	if ce, ok := err.(*CompileError); ok {
		ce.FuncIndex = idx
	}
	return err
}
