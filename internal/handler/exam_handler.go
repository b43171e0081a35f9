package handler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/response"
	"github.com/stemsi/quizforge/internal/service"
	"github.com/stemsi/quizforge/internal/validator"
)

// ExamHandler handles topic-weighted exam operations.
type ExamHandler struct {
	examService *service.ExamService
	validate    *validator.Validator
	log         zerolog.Logger
}

func NewExamHandler(examService *service.ExamService, validate *validator.Validator, log zerolog.Logger) *ExamHandler {
	return &ExamHandler{examService: examService, validate: validate, log: log}
}

// List returns the exams of a subject.
func (h *ExamHandler) List(ctx context.Context, rawSubjectID string) response.Response {
	subjectID, fail := parseID(ctx, rawSubjectID)
	if fail != nil {
		return *fail
	}
	items, err := h.examService.List(ctx, subjectID)
	return result(ctx, h.log, items, err)
}

func (h *ExamHandler) Get(ctx context.Context, rawID string) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	item, err := h.examService.Get(ctx, id)
	return result(ctx, h.log, item, err)
}

func (h *ExamHandler) Create(ctx context.Context, payload []byte) response.Response {
	var req model.CreateExamRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	item, err := h.examService.Create(ctx, req)
	return result(ctx, h.log, item, err)
}

// Update replaces the exam settings and every topic quota.
func (h *ExamHandler) Update(ctx context.Context, rawID string, payload []byte) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	var req model.UpdateExamRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	item, err := h.examService.Update(ctx, id, req)
	return result(ctx, h.log, item, err)
}

func (h *ExamHandler) Delete(ctx context.Context, rawID string) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	return deleted(ctx, h.log, "exam", id, h.examService.Delete(ctx, id))
}
