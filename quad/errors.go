package quad

import "fmt"

// internalError is an error shape (mirroring the teacher's errors.go)
// that carries the offending value and a short message. newError builds
// one, but no function in this package returns one: the errors it
// returns are the plain sentinels below.
type internalError struct {
	data any
	msg  string
}

func (e *internalError) Error() string {
	return fmt.Sprintf("quad: %s: %v", e.msg, e.data)
}

func newError(data any, msg string) error {
	return &internalError{data: data, msg: msg}
}

var (
	// ErrConversionSyntax is returned by the strict parse entry points
	// when the input does not match the accepted grammar.
	ErrConversionSyntax = fmt.Errorf("quad: conversion syntax")
	// ErrOverflow names a coefficient needing more than 38 significant
	// decimal digits. No function in this package returns it: Parse
	// accepts longer digit strings and rounds them.
	ErrOverflow = fmt.Errorf("quad: overflow")
	// ErrArgument is returned for out-of-domain arguments to functions
	// that are not part of the arithmetic core's NaN/Inf error model,
	// e.g. Round(x, digits) with digits < 0.
	ErrArgument = fmt.Errorf("quad: argument error")
	// ErrRoundingMode names an unrecognized Rounding value. No function
	// in this package returns it.
	ErrRoundingMode = fmt.Errorf("quad: unknown rounding mode")
	// ErrNegativePattern names an unrecognized negative-number format
	// pattern (valid range 0..4). Format does not return it: it renders
	// an unrecognized NegativePattern with a leading '-'.
	ErrNegativePattern = fmt.Errorf("quad: invalid negative number pattern")
	// ErrConversionRange names a value that does not fit the destination
	// type. The checked conversions (Int64, Uint64) do not return it:
	// they report an out-of-range value with a false second result.
	ErrConversionRange = fmt.Errorf("quad: value out of range for target type")
)
