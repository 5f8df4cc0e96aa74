// Package errs provides the typed errors shared by the shipping core.
//
// Every error kind follows the same shape:
//   - a sentinel (ErrObjectNotFound, ErrValueIsInvalid, ErrValueIsOutOfRange,
//     ErrValueIsRequired, ErrConflict) that callers match with errors.Is
//   - a struct carrying the offending parameter and an optional cause
//   - constructors with and without cause
//   - Unwrap returning the sentinel
//
// The three failure classes of the engine map onto these kinds:
//   - NotFound: ErrObjectNotFound
//   - InvalidInput: ErrValueIsRequired, ErrValueIsInvalid, ErrValueIsOutOfRange
//   - Conflict: ErrConflict (natural-key uniqueness violation surfaced from the store)
package errs
