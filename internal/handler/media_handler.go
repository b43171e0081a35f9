package handler

import (
	"context"
	"errors"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/response"
	"github.com/stemsi/quizforge/internal/service"
)

// MediaHandler handles image import and export.
type MediaHandler struct {
	mediaService *service.MediaService
	log          zerolog.Logger
}

// NewMediaHandler creates a new MediaHandler.
func NewMediaHandler(mediaService *service.MediaService, log zerolog.Logger) *MediaHandler {
	return &MediaHandler{mediaService: mediaService, log: log}
}

// Import copies a local image into the data directory and returns the
// relative path to store on a question, option or match.
func (h *MediaHandler) Import(ctx context.Context, srcPath string) response.Response {
	rel, err := h.mediaService.ImportImage(srcPath)
	if err != nil {
		return h.fail(ctx, err)
	}
	return response.Success(ctx, map[string]string{"path": rel})
}

// Read returns an imported image as a data URL.
func (h *MediaHandler) Read(ctx context.Context, relPath string) response.Response {
	url, err := h.mediaService.ReadImageDataURL(relPath)
	if err != nil {
		return h.fail(ctx, err)
	}
	return response.Success(ctx, map[string]string{"dataUrl": url})
}

func (h *MediaHandler) fail(ctx context.Context, err error) response.Response {
	fields := map[string]string{"detail": err.Error()}
	switch {
	case errors.Is(err, service.ErrUnsupportedFileType):
		return response.FailWithFields(ctx, response.ErrUnsupportedFile, fields)
	case errors.Is(err, service.ErrFileTooLarge):
		return response.FailWithFields(ctx, response.ErrFileTooLarge, fields)
	case errors.Is(err, service.ErrInvalidImagePath):
		return response.FailWithFields(ctx, response.ErrMalformedPayload, fields)
	default:
		return failure(ctx, h.log, err)
	}
}
