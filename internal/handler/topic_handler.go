package handler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/response"
	"github.com/stemsi/quizforge/internal/service"
	"github.com/stemsi/quizforge/internal/validator"
)

type TopicHandler struct {
	topicService *service.TopicService
	validate     *validator.Validator
	log          zerolog.Logger
}

func NewTopicHandler(topicService *service.TopicService, validate *validator.Validator, log zerolog.Logger) *TopicHandler {
	return &TopicHandler{topicService: topicService, validate: validate, log: log}
}

// List returns the topics of a subject.
func (h *TopicHandler) List(ctx context.Context, rawSubjectID string) response.Response {
	subjectID, fail := parseID(ctx, rawSubjectID)
	if fail != nil {
		return *fail
	}
	items, err := h.topicService.List(ctx, subjectID)
	return result(ctx, h.log, items, err)
}

func (h *TopicHandler) Get(ctx context.Context, rawID string) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	item, err := h.topicService.Get(ctx, id)
	return result(ctx, h.log, item, err)
}

func (h *TopicHandler) Create(ctx context.Context, payload []byte) response.Response {
	var req model.CreateTopicRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	item, err := h.topicService.Create(ctx, req)
	return result(ctx, h.log, item, err)
}

func (h *TopicHandler) Update(ctx context.Context, rawID string, payload []byte) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	var req model.UpdateTopicRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	item, err := h.topicService.Update(ctx, id, req)
	return result(ctx, h.log, item, err)
}

func (h *TopicHandler) Delete(ctx context.Context, rawID string) response.Response {
	id, fail := parseID(ctx, rawID)
	if fail != nil {
		return *fail
	}
	return deleted(ctx, h.log, "topic", id, h.topicService.Delete(ctx, id))
}
