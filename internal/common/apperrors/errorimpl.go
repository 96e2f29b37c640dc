package apperrors

import "errors"

// appError is the single implementation of Error. The base field links an
// error to the template it was derived from, which is what makes errors.Is
// walk the whole derivation chain. The causes field holds extra errors
// attached through MsgErr.
type appError struct {
	msg    string
	base   error
	causes []error
	status int
}

// New creates a root error with the given message. Roots carry no status
// code until SetStatusCode is called.
func New(msg string) Error {
	return &appError{msg: msg}
}

func (e *appError) Error() string {
	return e.msg
}

// Unwrap returns the template this error was derived from.
func (e *appError) Unwrap() error {
	return e.base
}

// New derives a child template. The child keeps the parent's status code
// and matches the parent under errors.Is.
func (e *appError) New(msg string) Error {
	return &appError{
		msg:    msg,
		base:   e,
		status: e.status,
	}
}

// Msg wraps this error under a new message, preserving the status code.
func (e *appError) Msg(msg string) Error {
	return &appError{
		msg:    msg,
		base:   e,
		status: e.status,
	}
}

// MsgErr wraps this error under a new message and attaches additional
// causes. The result matches this error and every attached cause under
// errors.Is.
func (e *appError) MsgErr(msg string, errs ...error) Error {
	return &appError{
		msg:    msg,
		base:   e,
		causes: errs,
		status: e.status,
	}
}

// SetStatusCode returns a copy carrying the given HTTP status code.
func (e *appError) SetStatusCode(code int) Error {
	cp := *e
	cp.status = code
	return &cp
}

// StatusCode returns the HTTP status code, or 0 when none was set.
func (e *appError) StatusCode() int {
	return e.status
}

// Is reports whether target appears anywhere in the derivation chain or
// among the attached causes.
func (e *appError) Is(target error) bool {
	if target == nil {
		return false
	}
	if errors.Is(e.base, target) {
		return true
	}
	for _, cause := range e.causes {
		if errors.Is(cause, target) {
			return true
		}
	}
	return false
}
