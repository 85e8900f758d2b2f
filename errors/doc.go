// Package errors provides structured error types for the randsrc toolkit.
//
// Errors are categorized by Phase (where the error occurred) and Kind (error category).
// The Error type includes the source name and cause chain.
//
// Use the Builder for structured error construction:
//
//	err := errors.New(errors.PhaseAcquire, errors.KindUnavailable).
//		Source("system").
//		Cause(syscallErr).
//		Detail("getrandom failed").
//		Build()
//
// Or use convenience constructors for common patterns:
//
//	err := errors.Unavailable("system", syscallErr)
//	err := errors.Exhausted("rdrand", 10)
//
// All errors implement the standard error interface and support errors.Is/As.
// Is matches on Phase and Kind, so callers can test for a category without
// caring which source produced it:
//
//	if errors.Is(err, &errors.Error{Phase: errors.PhaseAcquire, Kind: errors.KindExhausted}) {
//		// retry later
//	}
package errors
