// Package apperrors implements the error values used across the library.
// Errors form chains: a root error acts as a template from which more
// specific errors are derived, and an error derived at any depth satisfies
// errors.Is against every ancestor in its chain. Errors may carry the HTTP
// status code that produced them.
package apperrors

// Error extends the standard error interface with derivation, wrapping and
// status-code accessors. All derivation methods return a new value; an
// Error is never mutated after creation.
type Error interface {
	error
	Unwrap() error // supports errors.Is / errors.As

	New(msg string) Error                   // derives a child template from this error
	Msg(msg string) Error                   // wraps this error under a new message
	MsgErr(msg string, errs ...error) Error // like Msg, attaching extra causes
	SetStatusCode(int) Error                // returns a copy carrying the status code
	StatusCode() int                        // status code, 0 when unset
}
