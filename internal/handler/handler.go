// Package handler is the request/response call boundary. Every operation
// takes string IDs and raw JSON payloads as they arrive from the command
// line and returns a response envelope; no error escapes as a Go error.
package handler

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/apperr"
	"github.com/stemsi/quizforge/internal/response"
	"github.com/stemsi/quizforge/internal/validator"
)

// parseID reads a positive row id.
func parseID(ctx context.Context, raw string) (int64, *response.Response) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		resp := response.Fail(ctx, response.ErrInvalidID)
		return 0, &resp
	}
	return id, nil
}

// parseOptionalID reads an id filter where the empty string means "all".
func parseOptionalID(ctx context.Context, raw string) (int64, *response.Response) {
	if raw == "" {
		return 0, nil
	}
	return parseID(ctx, raw)
}

// bind decodes raw into dst and validates it.
func bind(ctx context.Context, v *validator.Validator, raw []byte, dst any) *response.Response {
	if err := decodeStrict(raw, dst); err != nil {
		resp := response.FromError(ctx, fmt.Errorf("%w: %v", apperr.ErrMalformedPayload, err))
		return &resp
	}
	if fields := v.Struct(dst); fields != nil {
		resp := response.FailWithFields(ctx, response.ErrValidation, fields)
		return &resp
	}
	return nil
}

// decodeStrict accepts exactly one JSON object whose fields all exist on dst.
func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&struct{}{}); !errors.Is(err, io.EOF) {
		return errors.New("unexpected data after the JSON payload")
	}
	return nil
}

// result wraps a service outcome. Errors without a kind are logged since
// their detail would otherwise be lost behind INTERNAL_ERROR.
func result(ctx context.Context, log zerolog.Logger, data any, err error) response.Response {
	if err != nil {
		return failure(ctx, log, err)
	}
	return response.Success(ctx, data)
}

func failure(ctx context.Context, log zerolog.Logger, err error) response.Response {
	resp := response.FromError(ctx, err)
	if resp.Error.Code == response.ErrInternal {
		log.Error().Err(err).Str("request_id", resp.Metadata.RequestID).Msg("Unclassified error")
	}
	return resp
}

func deleted(ctx context.Context, log zerolog.Logger, entity string, id int64, err error) response.Response {
	if err != nil {
		return failure(ctx, log, err)
	}
	return response.Success(ctx, map[string]any{
		"id":      id,
		"message": entity + " deleted successfully",
	})
}
