package handler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/response"
	"github.com/stemsi/quizforge/internal/service"
	"github.com/stemsi/quizforge/internal/validator"
)

// QuizHandler handles quiz operations.
type QuizHandler struct {
	quizService *service.QuizService
	validate    *validator.Validator
	log         zerolog.Logger
}

func NewQuizHandler(quizService *service.QuizService, validate *validator.Validator, log zerolog.Logger) *QuizHandler {
	return &QuizHandler{quizService: quizService, validate: validate, log: log}
}

// List returns the quizzes of a topic.
func (h *QuizHandler) List(ctx context.Context, rawTopicID string) response.Response {
	topicID, fail := parseID(ctx, rawTopicID)
	if fail != nil {
		return *fail
	}
	items, err := h.quizService.List(ctx, topicID)
	return result(ctx, h.log, items, err)
}

func (h *QuizHandler) Get(ctx context.Context, rawID string) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	item, err := h.quizService.Get(ctx, id)
	return result(ctx, h.log, item, err)
}

func (h *QuizHandler) Create(ctx context.Context, payload []byte) response.Response {
	var req model.CreateQuizRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	item, err := h.quizService.Create(ctx, req)
	return result(ctx, h.log, item, err)
}

func (h *QuizHandler) Update(ctx context.Context, rawID string, payload []byte) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	var req model.UpdateQuizRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	item, err := h.quizService.Update(ctx, id, req)
	return result(ctx, h.log, item, err)
}

func (h *QuizHandler) Delete(ctx context.Context, rawID string) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	return deleted(ctx, h.log, "quiz", id, h.quizService.Delete(ctx, id))
}
