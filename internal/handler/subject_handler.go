package handler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/response"
	"github.com/stemsi/quizforge/internal/service"
	"github.com/stemsi/quizforge/internal/validator"
)

type SubjectHandler struct {
	subjectService *service.SubjectService
	validate       *validator.Validator
	log            zerolog.Logger
}

func NewSubjectHandler(subjectService *service.SubjectService, validate *validator.Validator, log zerolog.Logger) *SubjectHandler {
	return &SubjectHandler{subjectService: subjectService, validate: validate, log: log}
}

func (h *SubjectHandler) List(ctx context.Context) response.Response {
	subjects, err := h.subjectService.List(ctx)
	return result(ctx, h.log, subjects, err)
}

func (h *SubjectHandler) Get(ctx context.Context, rawID string) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	sub, err := h.subjectService.Get(ctx, id)
	return result(ctx, h.log, sub, err)
}

func (h *SubjectHandler) Create(ctx context.Context, payload []byte) response.Response {
	var req model.SubjectRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	sub, err := h.subjectService.Create(ctx, req)
	return result(ctx, h.log, sub, err)
}

func (h *SubjectHandler) Update(ctx context.Context, rawID string, payload []byte) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	var req model.SubjectRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	sub, err := h.subjectService.Update(ctx, id, req)
	return result(ctx, h.log, sub, err)
}

func (h *SubjectHandler) Delete(ctx context.Context, rawID string) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	return deleted(ctx, h.log, "subject", id, h.subjectService.Delete(ctx, id))
}
