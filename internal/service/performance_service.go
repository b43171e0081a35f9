package service

import (
	"context"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/repository"
)

// PerformanceReport consolidates both summaries for a dashboard.
type PerformanceReport struct {
	Subjects []model.SubjectPerformance `json:"subjects"`
	Topics   []model.TopicPerformance   `json:"topics"`
}

// PerformanceService handles dashboard statistics.
type PerformanceService struct {
	repo *repository.PerformanceRepository
}

// NewPerformanceService creates a new PerformanceService.
func NewPerformanceService(repo *repository.PerformanceRepository) *PerformanceService {
	return &PerformanceService{repo: repo}
}

// Subjects returns per-subject exam performance.
func (s *PerformanceService) Subjects(ctx context.Context) ([]model.SubjectPerformance, error) {
	return s.repo.BySubject(ctx)
}

// Topics returns per-topic quiz performance.
func (s *PerformanceService) Topics(ctx context.Context) ([]model.TopicPerformance, error) {
	return s.repo.ByTopic(ctx)
}

// Report fetches both summaries sequentially.
func (s *PerformanceService) Report(ctx context.Context) (*PerformanceReport, error) {
	subjects, err := s.repo.BySubject(ctx)
	if err != nil {
		return nil, err
	}

	topics, err := s.repo.ByTopic(ctx)
	if err != nil {
		return nil, err
	}

	return &PerformanceReport{Subjects: subjects, Topics: topics}, nil
}
