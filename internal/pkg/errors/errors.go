package errors

import (
	"fmt"
	"net/http"
)

const (
	CodeNotFound       = "NOT_FOUND"
	CodeInvalidCursor  = "INVALID_CURSOR"
	CodeInvalidRequest = "INVALID_REQUEST"
	CodeInternalError  = "INTERNAL_ERROR"
)

var (
	// ErrInvalidCursor is returned when a pagination cursor fails to decode or carries
	// an out-of-range sort key. Callers should restart pagination from the head.
	ErrInvalidCursor = New(http.StatusBadRequest, CodeInvalidCursor, "invalid cursor: malformed pagination cursor, restart pagination from head")

	// ErrInvalidRequest is returned when a request is invalid.
	ErrInvalidRequest = New(http.StatusBadRequest, CodeInvalidRequest, "invalid request: some or all request parameters are invalid")
)

type Extras map[string]interface{}

type WarmailError struct {
	StatusCode int
	ErrorCode  string
	Message    string
	Extras     *Extras
}

func New(statusCode int, errorCode string, message string) *WarmailError {
	return &WarmailError{
		StatusCode: statusCode,
		ErrorCode:  errorCode,
		Message:    message,
	}
}

func (e WarmailError) WithMessage(format string, parts ...interface{}) *WarmailError {
	e.Message = fmt.Sprintf(format, parts...)
	return &e
}

func (e WarmailError) WithExtras(extras Extras) *WarmailError {
	e.Extras = &extras
	return &e
}

func (e *WarmailError) Error() string {
	return fmt.Sprintf("%s: %s", e.ErrorCode, e.Message)
}
