package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/repository"
)

// AttemptService records finished quiz and exam attempts. Scores arrive
// already computed by the caller.
type AttemptService struct {
	attemptRepo *repository.AttemptRepository
	log         zerolog.Logger
}

// NewAttemptService creates a new AttemptService.
func NewAttemptService(attemptRepo *repository.AttemptRepository, log zerolog.Logger) *AttemptService {
	return &AttemptService{
		attemptRepo: attemptRepo,
		log:         log.With().Str("component", "attempt_service").Logger(),
	}
}

// SaveQuiz appends a quiz attempt.
func (s *AttemptService) SaveQuiz(ctx context.Context, req model.SaveQuizAttemptRequest) (*model.QuizAttempt, error) {
	a, err := s.attemptRepo.SaveQuiz(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Int64("attempt_id", a.ID).
		Int64("quiz_id", a.QuizID).
		Float64("percentage", a.Percentage).
		Msg("Quiz attempt saved")
	return a, nil
}

// SaveExam appends an exam attempt.
func (s *AttemptService) SaveExam(ctx context.Context, req model.SaveExamAttemptRequest) (*model.ExamAttempt, error) {
	a, err := s.attemptRepo.SaveExam(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Int64("attempt_id", a.ID).
		Int64("exam_id", a.ExamID).
		Float64("percentage", a.Percentage).
		Msg("Exam attempt saved")
	return a, nil
}

// ListQuiz returns quiz attempts, all of them when quizID is 0.
func (s *AttemptService) ListQuiz(ctx context.Context, quizID int64) ([]model.QuizAttemptDetail, error) {
	return s.attemptRepo.ListQuiz(ctx, quizID)
}

// ListExam returns exam attempts, all of them when examID is 0.
func (s *AttemptService) ListExam(ctx context.Context, examID int64) ([]model.ExamAttemptDetail, error) {
	return s.attemptRepo.ListExam(ctx, examID)
}
