package response

import (
	"errors"
	"fmt"

	pkgerrors "github.com/pkg/errors"
)

// ErrorContextKey is the gin.Context key holding the error object.
const ErrorContextKey = "error"

// ResponseContextKey is the gin.Context key holding the response body,
// read by the Sentry reporting path.
const ResponseContextKey = "response_body"

// Error carries an error code, a user-facing message, the original
// error chain and a stack trace for reporting.
type Error struct {
	Code    int32  `json:"code"`
	Message string `json:"msg"`
	Origin  string `json:"origin"`
	cause   error
	stack   pkgerrors.StackTrace
}

func newError(code int32, msg string) *Error {
	return &Error{
		Code:    code,
		Message: msg,
	}
}

func (e *Error) Error() string {
	return fmt.Sprintf("code:%d, msg:%s", e.Code, e.Message)
}

// GetCode implements the sentry CodedError interface.
func (e *Error) GetCode() int32 {
	return e.Code
}

// Unwrap returns the original error for errors.Unwrap and chain
// extraction during reporting.
func (e *Error) Unwrap() error {
	return e.cause
}

// StackTrace implements the pkg/errors stackTracer interface.
func (e *Error) StackTrace() pkgerrors.StackTrace {
	if e.stack != nil {
		return e.stack
	}
	if e.cause != nil {
		type stackTracer interface {
			StackTrace() pkgerrors.StackTrace
		}
		if st, ok := e.cause.(stackTracer); ok {
			return st.StackTrace()
		}
	}
	return nil
}

func (e *Error) Is(target error) bool {
	var t *Error
	ok := errors.As(target, &t)
	if !ok {
		return false
	}
	return e.Code == t.Code
}

// WithOrigin attaches the underlying error. The origin text is only
// rendered to clients in debug mode; the chain is kept either way so
// reporting can extract stacks.
func (e *Error) WithOrigin(err error) *Error {
	if err == nil {
		return e
	}

	wrappedErr := ensureStack(err)

	newErr := &Error{
		Code:    e.Code,
		Message: e.Message,
		Origin:  fmt.Sprintf("%+v", wrappedErr),
		cause:   wrappedErr,
	}

	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if st, ok := wrappedErr.(stackTracer); ok {
		newErr.stack = st.StackTrace()
	}

	return newErr
}

// WithTips appends extra user-visible detail to the message.
func (e *Error) WithTips(details ...string) *Error {
	return &Error{
		Code:    e.Code,
		Message: e.Message + " " + fmt.Sprintf("%v", details),
		cause:   e.cause,
		stack:   e.stack,
	}
}

func ensureStack(err error) error {
	if err == nil {
		return nil
	}
	type stackTracer interface {
		StackTrace() pkgerrors.StackTrace
	}
	if _, ok := err.(stackTracer); ok {
		return err
	}
	return pkgerrors.WithStack(err)
}
