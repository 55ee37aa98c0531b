// Package apperr carries the coded errors shared by the remote layer
// and the workflow services. Codes classify the failure for HTTP
// mapping and retry decisions; the message keeps whatever the backend
// said, verbatim, when one was given.
package apperr

import "errors"

type ErrCode string

const (
	ErrValidation      ErrCode = "VALIDATION"
	ErrConflict        ErrCode = "CONFLICT"
	ErrPrecondition    ErrCode = "PRECONDITION"
	ErrAuthorization   ErrCode = "AUTHORIZATION"
	ErrNotFound        ErrCode = "NOT_FOUND"
	ErrTransport       ErrCode = "TRANSPORT"
	ErrAlreadyReturned ErrCode = "ALREADY_RETURNED"
	ErrStatusConflict  ErrCode = "STATUS_CONFLICT"
)

type codedError struct {
	code ErrCode
	msg  string
}

func (e codedError) Error() string {
	if e.msg != "" {
		return e.msg
	}
	return string(e.code)
}
func (e codedError) Code() ErrCode { return e.code }

func New(c ErrCode, msg string) error { return codedError{code: c, msg: msg} }

// Code extracts the error code; empty for uncoded errors.
func Code(err error) ErrCode {
	var ce interface{ Code() ErrCode }
	if errors.As(err, &ce) {
		return ce.Code()
	}
	return ""
}

// Message returns the user-facing text: the coded message when there
// is one, otherwise a generic line per category so nothing leaks raw.
func Message(err error) string {
	if err == nil {
		return ""
	}
	if c := Code(err); c != "" {
		return err.Error()
	}
	return "internal error"
}
