package handler

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/response"
	"github.com/stemsi/quizforge/internal/service"
)

// PerformanceHandler serves the dashboard reports.
type PerformanceHandler struct {
	performanceService *service.PerformanceService
	log                zerolog.Logger
}

// NewPerformanceHandler creates a new PerformanceHandler.
func NewPerformanceHandler(performanceService *service.PerformanceService, log zerolog.Logger) *PerformanceHandler {
	return &PerformanceHandler{performanceService: performanceService, log: log}
}

func (h *PerformanceHandler) Subjects(ctx context.Context) response.Response {
	stats, err := h.performanceService.Subjects(ctx)
	return result(ctx, h.log, stats, err)
}

func (h *PerformanceHandler) Topics(ctx context.Context) response.Response {
	stats, err := h.performanceService.Topics(ctx)
	return result(ctx, h.log, stats, err)
}

// Report returns both summaries in one envelope.
func (h *PerformanceHandler) Report(ctx context.Context) response.Response {
	report, err := h.performanceService.Report(ctx)
	return result(ctx, h.log, report, err)
}
