// Package errorx provides coded errors that carry an HTTP status and a
// user-facing message, keeping internal error detail out of API responses.
package errorx

import (
	"errors"
	"fmt"
	"net/http"
	"sync"
)

// Coder describes an error code: the business code, the HTTP status it maps
// to, and the external (safe to expose) message.
type Coder interface {
	// Code returns the business error code.
	Code() int
	// HTTPStatus returns the associated HTTP status code.
	HTTPStatus() int
	// String returns the external, user-facing message.
	String() string
	// Reference returns a document reference for the error, if any.
	Reference() string
}

var (
	codesMu sync.RWMutex
	codes   = map[int]Coder{}
)

// unknownCoder is returned for errors that carry no registered code.
// Its message is deliberately generic.
var unknownCoder = defaultCoder{
	code: 1, http: http.StatusInternalServerError,
	msg: "An internal server error occurred",
}

type defaultCoder struct {
	code int
	http int
	msg  string
	ref  string
}

func (c defaultCoder) Code() int         { return c.code }
func (c defaultCoder) HTTPStatus() int   { return c.http }
func (c defaultCoder) String() string    { return c.msg }
func (c defaultCoder) Reference() string { return c.ref }

// Register registers a Coder, overwriting any existing one for the same code.
func Register(coder Coder) {
	if coder.Code() == unknownCoder.Code() {
		panic("code 1 is reserved as the unknown error code")
	}
	codesMu.Lock()
	defer codesMu.Unlock()
	codes[coder.Code()] = coder
}

// MustRegister registers a Coder and panics if the code is already taken.
func MustRegister(coder Coder) {
	if coder.Code() == unknownCoder.Code() {
		panic("code 1 is reserved as the unknown error code")
	}
	codesMu.Lock()
	defer codesMu.Unlock()
	if _, ok := codes[coder.Code()]; ok {
		panic(fmt.Sprintf("code %d already registered", coder.Code()))
	}
	codes[coder.Code()] = coder
}

// withCode is an error annotated with a registered code.
type withCode struct {
	err   error
	code  int
	cause error
}

func (w *withCode) Error() string {
	if w.cause != nil {
		return fmt.Sprintf("%v: %v", w.err, w.cause)
	}
	return w.err.Error()
}

func (w *withCode) Unwrap() error { return w.cause }

// WithCode creates a new coded error.
func WithCode(code int, format string, args ...interface{}) error {
	return &withCode{
		err:  fmt.Errorf(format, args...),
		code: code,
	}
}

// WrapC wraps an existing error with a code and a message.
func WrapC(err error, code int, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &withCode{
		err:   fmt.Errorf(format, args...),
		code:  code,
		cause: err,
	}
}

// IsCode reports whether any error in err's chain carries the given code.
func IsCode(err error, code int) bool {
	var coded *withCode
	for {
		if errors.As(err, &coded) {
			if coded.code == code {
				return true
			}
			err = coded.cause
			continue
		}
		return false
	}
}

// ParseCoder extracts the Coder from an error chain. Errors without a
// registered code resolve to the unknown coder (500, generic message).
func ParseCoder(err error) Coder {
	if err == nil {
		return nil
	}
	var coded *withCode
	if errors.As(err, &coded) {
		codesMu.RLock()
		defer codesMu.RUnlock()
		if coder, ok := codes[coded.code]; ok {
			return coder
		}
	}
	return unknownCoder
}
