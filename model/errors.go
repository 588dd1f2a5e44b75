package model

import (
	"errors"
	"fmt"
)

type ErrorCode string

const (
	ErrInvalidName  ErrorCode = "INVALID_NAME"
	ErrInvalidLabel ErrorCode = "INVALID_LABEL"
	ErrNotFound     ErrorCode = "NOT_FOUND"
	ErrUnknownCoin  ErrorCode = "UNKNOWN_COIN"
	ErrInternal     ErrorCode = "INTERNAL"
)

// CodedError is a stable error with a machine-readable code and a human message.
type CodedError struct {
	Code    ErrorCode `json:"code"`
	Message string    `json:"message"`
}

func (e *CodedError) Error() string {
	if e == nil {
		return ""
	}
	return fmt.Sprintf("%s: %s", e.Code, e.Message)
}

func NewError(code ErrorCode, message string) *CodedError {
	return &CodedError{Code: code, Message: message}
}

// CodeOf returns the code of a CodedError in err's chain, or "".
func CodeOf(err error) ErrorCode {
	var ce *CodedError
	if !errors.As(err, &ce) {
		return ""
	}
	return ce.Code
}
