package handler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/response"
	"github.com/stemsi/quizforge/internal/service"
	"github.com/stemsi/quizforge/internal/validator"
)

// QuestionHandler exposes question aggregates with their answer keys.
type QuestionHandler struct {
	questionService *service.QuestionService
	validate        *validator.Validator
	log             zerolog.Logger
}

func NewQuestionHandler(questionService *service.QuestionService, validate *validator.Validator, log zerolog.Logger) *QuestionHandler {
	return &QuestionHandler{questionService: questionService, validate: validate, log: log}
}

// List returns the questions of a topic.
func (h *QuestionHandler) List(ctx context.Context, rawTopicID string) response.Response {
	topicID, fail := parseID(ctx, rawTopicID)
	if fail != nil {
		return *fail
	}
	items, err := h.questionService.List(ctx, topicID)
	return result(ctx, h.log, items, err)
}

func (h *QuestionHandler) Get(ctx context.Context, rawID string) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	item, err := h.questionService.Get(ctx, id)
	return result(ctx, h.log, item, err)
}

func (h *QuestionHandler) Create(ctx context.Context, payload []byte) response.Response {
	var req model.CreateQuestionRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	item, err := h.questionService.Create(ctx, req)
	return result(ctx, h.log, item, err)
}

// Update replaces the question content and all variant rows. The payload
// cannot change the subject, topic or type.
func (h *QuestionHandler) Update(ctx context.Context, rawID string, payload []byte) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	var req model.UpdateQuestionRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	item, err := h.questionService.Update(ctx, id, req)
	return result(ctx, h.log, item, err)
}

func (h *QuestionHandler) Delete(ctx context.Context, rawID string) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	return deleted(ctx, h.log, "question", id, h.questionService.Delete(ctx, id))
}
