// Package errors provides structured error types for tracedecode.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type carries the field path, the traced address and a cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseDecode, errors.KindOverflow).
//		Path("sys_offset", "n_samples").
//		Addr(0x7ffc1000).
//		Detail("count %d above %d", n, max).
//		Build()
//
// Traced memory readers report short and failed reads with Partial and
// Unavailable; callers test for them with IsPartial and IsUnavailable rather
// than comparing errors.
//
// All errors implement the standard error interface and support errors.Is/As.
package errors
