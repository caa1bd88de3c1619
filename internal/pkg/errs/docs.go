// Package errs provides standardized error types for the order management
// application. It implements a consistent pattern for error creation,
// formatting, and unwrapping that is used throughout the codebase.
//
// The package includes error types for common failure scenarios:
//   - ValueIsRequiredError: a required value is missing
//   - ValueIsInvalidError: a value is invalid
//   - ValueIsOutOfRangeError: a value lies outside its allowed range
//   - ObjectNotFoundError: an object cannot be found
//
// Each error type follows the same pattern:
//   - A sentinel error variable (e.g. ErrValueIsRequired)
//   - A struct type carrying error details
//   - Constructor functions with and without a cause
//   - Error() for formatting and Unwrap() targeting the sentinel
//
// Domain-specific errors (insufficient stock, invalid status transition,
// no applicable shipping method) live next to the code that raises them;
// this package only holds the generic vocabulary.
package errs
