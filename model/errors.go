package model

import (
	"errors"
	"fmt"

	"xdao.co/oraclereg/curve"
	"xdao.co/oraclereg/registry"
)

type ErrorCode string

const (
	ErrAlreadyRegistered       ErrorCode = "ALREADY_REGISTERED"
	ErrNotRegistered           ErrorCode = "NOT_REGISTERED"
	ErrCurveAlreadySet         ErrorCode = "CURVE_ALREADY_SET"
	ErrCurveNotSet             ErrorCode = "CURVE_NOT_SET"
	ErrParameterNotInitialized ErrorCode = "PARAMETER_NOT_INITIALIZED"
	ErrIndexOutOfRange         ErrorCode = "INDEX_OUT_OF_RANGE"
	ErrInvalidCurve            ErrorCode = "INVALID_CURVE"
	ErrInternal                ErrorCode = "INTERNAL"
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

// CodeFor maps registry and curve failures to their stable codes. Store
// failures and anything else unrecognized map to INTERNAL.
func CodeFor(err error) ErrorCode {
	var ce *curve.Error
	switch {
	case errors.Is(err, registry.ErrAlreadyRegistered):
		return ErrAlreadyRegistered
	case errors.Is(err, registry.ErrNotRegistered):
		return ErrNotRegistered
	case errors.Is(err, registry.ErrCurveAlreadySet):
		return ErrCurveAlreadySet
	case errors.Is(err, registry.ErrCurveNotSet):
		return ErrCurveNotSet
	case errors.Is(err, registry.ErrParameterNotInitialized):
		return ErrParameterNotInitialized
	case errors.Is(err, registry.ErrIndexOutOfRange):
		return ErrIndexOutOfRange
	case errors.As(err, &ce):
		return ErrInvalidCurve
	default:
		return ErrInternal
	}
}

// FromError wraps any error as a CodedError for serialization.
func FromError(err error) *CodedError {
	if err == nil {
		return nil
	}
	return &CodedError{Code: CodeFor(err), Message: err.Error()}
}
