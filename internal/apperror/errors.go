// Package apperror defines the error kinds the API reports to callers.
package apperror

import (
	"errors"
	"fmt"
	"net/http"
)

type Kind string

const (
	KindValidation       Kind = "validation_failed"
	KindInvalidDocument  Kind = "invalid_document"
	KindPayloadTooLarge  Kind = "payload_too_large"
	KindModelUnavailable Kind = "model_unavailable"
	KindInferenceFailed  Kind = "inference_failed"
	KindInferenceTimeout Kind = "inference_timeout"
	KindNotFound         Kind = "not_found"
	KindInternal         Kind = "internal_error"
)

// AppError is an error with a stable kind and the HTTP status it maps to.
type AppError struct {
	Kind    Kind
	Code    int
	Message string
	Detail  string
	Err     error
}

func (e *AppError) Error() string {
	if e.Detail != "" {
		return fmt.Sprintf("%s: %s", e.Message, e.Detail)
	}
	return e.Message
}

func (e *AppError) Unwrap() error {
	return e.Err
}

// Describe returns the human-readable detail sent to callers.
func (e *AppError) Describe() string {
	if e.Detail != "" {
		return e.Detail
	}
	return e.Message
}

func NewValidationError(detail string) *AppError {
	return &AppError{
		Kind:    KindValidation,
		Code:    http.StatusUnprocessableEntity,
		Message: "Validation failed",
		Detail:  detail,
	}
}

func NewInvalidDocumentError(err error) *AppError {
	return &AppError{
		Kind:    KindInvalidDocument,
		Code:    http.StatusUnprocessableEntity,
		Message: "Could not read resume document",
		Detail:  err.Error(),
		Err:     err,
	}
}

func NewPayloadTooLargeError(limit int64) *AppError {
	return &AppError{
		Kind:    KindPayloadTooLarge,
		Code:    http.StatusRequestEntityTooLarge,
		Message: fmt.Sprintf("Resume file too large. Max size: %d bytes", limit),
	}
}

// NewModelUnavailableError names the model slot that failed to load.
func NewModelUnavailableError(message string, reason error) *AppError {
	return &AppError{
		Kind:    KindModelUnavailable,
		Code:    http.StatusInternalServerError,
		Message: message,
		Err:     reason,
	}
}

func NewInferenceError(model string, err error) *AppError {
	return &AppError{
		Kind:    KindInferenceFailed,
		Code:    http.StatusInternalServerError,
		Message: "Inference failed",
		Detail:  fmt.Sprintf("%s: %v", model, err),
		Err:     err,
	}
}

func NewInferenceTimeoutError(model string, err error) *AppError {
	return &AppError{
		Kind:    KindInferenceTimeout,
		Code:    http.StatusGatewayTimeout,
		Message: "Inference timed out",
		Detail:  model,
		Err:     err,
	}
}

func NewInternalError(err error) *AppError {
	return &AppError{
		Kind:    KindInternal,
		Code:    http.StatusInternalServerError,
		Message: "Internal server error",
		Err:     err,
	}
}

// KindForStatus picks a kind for framework errors that only carry a status.
func KindForStatus(code int) Kind {
	switch {
	case code == http.StatusNotFound || code == http.StatusMethodNotAllowed:
		return KindNotFound
	case code == http.StatusRequestEntityTooLarge:
		return KindPayloadTooLarge
	case code == http.StatusGatewayTimeout || code == http.StatusRequestTimeout:
		return KindInferenceTimeout
	case code >= 400 && code < 500:
		return KindValidation
	default:
		return KindInternal
	}
}

// As is a shorthand for errors.As on *AppError.
func As(err error) (*AppError, bool) {
	var appErr *AppError
	if errors.As(err, &appErr) {
		return appErr, true
	}
	return nil, false
}
