package handler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/response"
	"github.com/stemsi/quizforge/internal/service"
	"github.com/stemsi/quizforge/internal/validator"
)

// AttemptHandler records and lists quiz and exam attempts.
type AttemptHandler struct {
	attemptService *service.AttemptService
	validate       *validator.Validator
	log            zerolog.Logger
}

// NewAttemptHandler creates a new AttemptHandler.
func NewAttemptHandler(attemptService *service.AttemptService, validate *validator.Validator, log zerolog.Logger) *AttemptHandler {
	return &AttemptHandler{attemptService: attemptService, validate: validate, log: log}
}

func (h *AttemptHandler) SaveQuiz(ctx context.Context, payload []byte) response.Response {
	var req model.SaveQuizAttemptRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	a, err := h.attemptService.SaveQuiz(ctx, req)
	return result(ctx, h.log, a, err)
}

func (h *AttemptHandler) SaveExam(ctx context.Context, payload []byte) response.Response {
	var req model.SaveExamAttemptRequest
	if fail := bind(ctx, h.validate, payload, &req); fail != nil {
		return *fail
	}
	a, err := h.attemptService.SaveExam(ctx, req)
	return result(ctx, h.log, a, err)
}

// ListQuiz lists attempts of one quiz, or of every quiz when rawQuizID is empty.
func (h *AttemptHandler) ListQuiz(ctx context.Context, rawQuizID string) response.Response {
	quizID, fail := parseOptionalID(ctx, rawQuizID)
	if fail != nil {
		return *fail
	}
	attempts, err := h.attemptService.ListQuiz(ctx, quizID)
	return result(ctx, h.log, attempts, err)
}

// ListExam lists attempts of one exam, or of every exam when rawExamID is empty.
func (h *AttemptHandler) ListExam(ctx context.Context, rawExamID string) response.Response {
	examID, fail := parseOptionalID(ctx, rawExamID)
	if fail != nil {
		return *fail
	}
	attempts, err := h.attemptService.ListExam(ctx, examID)
	return result(ctx, h.log, attempts, err)
}
