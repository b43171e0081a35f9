package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/repository"
)

// ExamService handles topic-weighted exam business logic.
type ExamService struct {
	examRepo *repository.ExamRepository
	log      zerolog.Logger
}

// NewExamService creates a new ExamService.
func NewExamService(examRepo *repository.ExamRepository, log zerolog.Logger) *ExamService {
	return &ExamService{
		examRepo: examRepo,
		log:      log.With().Str("component", "exam_service").Logger(),
	}
}

// List retrieves the exams of a subject with their topic quotas.
func (s *ExamService) List(ctx context.Context, subjectID int64) ([]model.ExamWithTopics, error) {
	return s.examRepo.ListBySubject(ctx, subjectID)
}

// Get retrieves a single exam with its topic quotas.
func (s *ExamService) Get(ctx context.Context, id int64) (*model.ExamWithTopics, error) {
	return s.examRepo.GetByID(ctx, id)
}

// Create stores an exam and its topic quotas atomically.
func (s *ExamService) Create(ctx context.Context, req model.CreateExamRequest) (*model.ExamWithTopics, error) {
	e, err := s.examRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Int64("exam_id", e.ID).
		Int64("subject_id", e.SubjectID).
		Int("topics", len(e.Topics)).
		Msg("Exam created")
	return e, nil
}

// Update overwrites an exam and replaces its topic quotas.
func (s *ExamService) Update(ctx context.Context, id int64, req model.UpdateExamRequest) (*model.ExamWithTopics, error) {
	e, err := s.examRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int64("exam_id", id).Int("topics", len(e.Topics)).Msg("Exam updated")
	return e, nil
}

// Delete removes an exam with its quotas and attempts.
func (s *ExamService) Delete(ctx context.Context, id int64) error {
	if err := s.examRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug().Int64("exam_id", id).Msg("Exam deleted")
	return nil
}
