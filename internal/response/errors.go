package response

import (
	"errors"

	"github.com/stemsi/quizforge/internal/apperr"
)

// ErrCode is a typed error code enum for consistent error identification at
// the command boundary.
type ErrCode string

const (
	// ─── Storage ───────────────────────────────────────────────────────
	ErrNotFound            ErrCode = "NOT_FOUND"
	ErrConstraintViolation ErrCode = "CONSTRAINT_VIOLATION"
	ErrStorageUnavailable  ErrCode = "STORAGE_UNAVAILABLE"

	// ─── Validation ────────────────────────────────────────────────────
	ErrMalformedPayload ErrCode = "MALFORMED_PAYLOAD"
	ErrValidation       ErrCode = "VALIDATION_ERROR"
	ErrInvalidID        ErrCode = "INVALID_ID"

	// ─── Media ─────────────────────────────────────────────────────────
	ErrUnsupportedFile ErrCode = "UNSUPPORTED_FILE_TYPE"
	ErrFileTooLarge    ErrCode = "FILE_TOO_LARGE"

	// ─── Server ────────────────────────────────────────────────────────
	ErrInternal ErrCode = "INTERNAL_ERROR"
)

// GetMessage returns a human-readable message for a given error code.
func GetMessage(code ErrCode) string {
	switch code {
	// ─── Storage ───────────────────────────────────────────────────────
	case ErrNotFound:
		return "The requested record does not exist."
	case ErrConstraintViolation:
		return "The change conflicts with existing data."
	case ErrStorageUnavailable:
		return "The database is not available. Please try again."

	// ─── Validation ────────────────────────────────────────────────────
	case ErrMalformedPayload:
		return "The request payload is malformed."
	case ErrValidation:
		return "Validation failed. Please check your input."
	case ErrInvalidID:
		return "Invalid ID format."

	// ─── Media ─────────────────────────────────────────────────────────
	case ErrUnsupportedFile:
		return "Unsupported file type."
	case ErrFileTooLarge:
		return "File size exceeds the limit."

	// ─── Server ────────────────────────────────────────────────────────
	case ErrInternal:
		return "An internal error occurred."
	default:
		return "An unexpected error occurred."
	}
}

// CodeFor maps an error kind to its code. Errors without a kind are internal.
func CodeFor(err error) ErrCode {
	switch {
	case errors.Is(err, apperr.ErrNotFound):
		return ErrNotFound
	case errors.Is(err, apperr.ErrConstraintViolation):
		return ErrConstraintViolation
	case errors.Is(err, apperr.ErrStorageUnavailable):
		return ErrStorageUnavailable
	case errors.Is(err, apperr.ErrMalformedPayload):
		return ErrMalformedPayload
	default:
		return ErrInternal
	}
}
