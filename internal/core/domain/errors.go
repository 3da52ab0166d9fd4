package domain

import (
	"errors"
	"fmt"
	"net/http"
)

type ErrorKind int

const (
	KindInternal ErrorKind = iota
	KindInvalidInput
	KindConfigurationMissing
	KindUpstream
)

func (k ErrorKind) String() string {
	switch k {
	case KindInvalidInput:
		return "InvalidInput"
	case KindConfigurationMissing:
		return "ConfigurationMissing"
	case KindUpstream:
		return "UpstreamError"
	default:
		return "InternalError"
	}
}

// AppError is the error every use case returns to the handler boundary.
// Code is only meaningful for KindUpstream, where it carries the upstream
// status; Details carries the upstream body or the wrapped error text.
type AppError struct {
	Kind    ErrorKind
	Code    int
	Message string
	Details string
	Err     error
}

func (e *AppError) Error() string {
	if e.Details != "" {
		return fmt.Sprintf("%s: %s: %s", e.Kind, e.Message, e.Details)
	}
	return fmt.Sprintf("%s: %s", e.Kind, e.Message)
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// HTTPStatus maps the error kind to the status returned to the caller.
func (e *AppError) HTTPStatus() int {
	switch e.Kind {
	case KindInvalidInput:
		return http.StatusBadRequest
	case KindUpstream:
		if e.Code >= 400 && e.Code <= 599 {
			return e.Code
		}
		return http.StatusBadGateway
	default:
		return http.StatusInternalServerError
	}
}

func InvalidInput(msg string) *AppError {
	return &AppError{Kind: KindInvalidInput, Message: msg}
}

func ConfigurationMissing(msg string) *AppError {
	return &AppError{Kind: KindConfigurationMissing, Message: msg}
}

func Upstream(code int, msg, body string) *AppError {
	return &AppError{Kind: KindUpstream, Code: code, Message: msg, Details: body}
}

func Internal(msg string, err error) *AppError {
	appErr := &AppError{Kind: KindInternal, Message: msg, Err: err}
	if err != nil {
		appErr.Details = err.Error()
	}
	return appErr
}

// KindOf classifies err; anything that is not an *AppError is internal.
func KindOf(err error) ErrorKind {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr.Kind
	}
	return KindInternal
}

// AsAppError returns err as an *AppError, wrapping foreign errors as
// internal ones with fallbackMsg.
func AsAppError(err error, fallbackMsg string) *AppError {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr
	}
	return Internal(fallbackMsg, err)
}
