package response

import (
	"context"
	"time"

	"github.com/google/uuid"
)

// Response is the standardized envelope returned by every boundary call.
type Response struct {
	Data     any        `json:"data"`
	Error    *ErrorBody `json:"error,omitempty"`
	Metadata Metadata   `json:"metadata"`
}

// ErrorBody represents a structured error response.
type ErrorBody struct {
	Code    ErrCode           `json:"code"`
	Message string            `json:"message"`
	Fields  map[string]string `json:"fields,omitempty"`
}

// Metadata includes request tracing and timing.
type Metadata struct {
	RequestID string `json:"requestId"`
	Timestamp string `json:"timestamp"`
}

// OK reports whether the envelope carries no error.
func (r Response) OK() bool {
	return r.Error == nil
}

// ────────────────────────────────────────────────────────────────────────────
// Helper builders
// ────────────────────────────────────────────────────────────────────────────

// Success wraps data in a successful envelope.
func Success(ctx context.Context, data any) Response {
	return Response{
		Data:     data,
		Metadata: buildMetadata(ctx),
	}
}

// Fail builds an error envelope with no field-level details.
func Fail(ctx context.Context, code ErrCode) Response {
	return Response{
		Error:    &ErrorBody{Code: code, Message: GetMessage(code)},
		Metadata: buildMetadata(ctx),
	}
}

// FailWithFields builds an error envelope with field-level details.
func FailWithFields(ctx context.Context, code ErrCode, fields map[string]string) Response {
	return Response{
		Error:    &ErrorBody{Code: code, Message: GetMessage(code), Fields: fields},
		Metadata: buildMetadata(ctx),
	}
}

// FromError builds an error envelope from an error kind. The underlying
// error text is kept under the "detail" field.
func FromError(ctx context.Context, err error) Response {
	return FailWithFields(ctx, CodeFor(err), map[string]string{"detail": err.Error()})
}

// ────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ────────────────────────────────────────────────────────────────────────────

func buildMetadata(ctx context.Context) Metadata {
	id := RequestID(ctx)
	if id == "" {
		id = uuid.New().String()
	}
	return Metadata{
		RequestID: id,
		Timestamp: time.Now().UTC().Format(time.RFC3339),
	}
}
