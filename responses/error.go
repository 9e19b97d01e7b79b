package responses

import (
	"fmt"
)

// Error codes of the admin api
const (
	ErrorCodeUnknownRoute = 1
	ErrorCodeInvalidJSON  = 2
	ErrorCodeRejected     = 3
)

// Error describes an error for humans and machines
type Error struct {
	Status  int    `json:"status"`
	Code    int    `json:"code"`
	Message string `json:"message"`
}

func (e Error) Error() string {
	return fmt.Sprintf("status:%d, code:%d, message:%q", e.Status, e.Code, e.Message)
}

// NewError - a brand new error
func NewError(status, code int, message string) *Error {
	return &Error{
		Status:  status,
		Code:    code,
		Message: message,
	}
}

// NewErrorf - a brand new error using fmt.Sprintf
func NewErrorf(status, code int, message string, args ...interface{}) *Error {
	return NewError(status, code, fmt.Sprintf(message, args...))
}
