// Package apperr defines the closed set of error kinds surfaced by the
// storage core. Lower layers wrap these sentinels with fmt.Errorf("%w: ...")
// and the boundary maps them to codes with errors.Is.
package apperr

import "errors"

var (
	// ErrNotFound means no row matched the requested id.
	ErrNotFound = errors.New("not found")

	// ErrConstraintViolation means the storage engine rejected a write
	// (foreign key, uniqueness or check constraint).
	ErrConstraintViolation = errors.New("constraint violation")

	// ErrStorageUnavailable means the exclusive storage handle could not be
	// acquired for this call.
	ErrStorageUnavailable = errors.New("storage unavailable")

	// ErrMalformedPayload means the submitted payload could not be decoded or
	// does not fit the aggregate it targets.
	ErrMalformedPayload = errors.New("malformed payload")
)
