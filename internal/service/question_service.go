package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/repository"
)

// QuestionService handles question business logic.
type QuestionService struct {
	questionRepo *repository.QuestionRepository
	log          zerolog.Logger
}

// NewQuestionService creates a new QuestionService.
func NewQuestionService(questionRepo *repository.QuestionRepository, log zerolog.Logger) *QuestionService {
	return &QuestionService{
		questionRepo: questionRepo,
		log:          log.With().Str("component", "question_service").Logger(),
	}
}

// List retrieves every question of a topic with its variant rows.
func (s *QuestionService) List(ctx context.Context, topicID int64) ([]model.QuestionWithDetails, error) {
	return s.questionRepo.ListByTopic(ctx, topicID)
}

// Get retrieves a single question aggregate.
func (s *QuestionService) Get(ctx context.Context, id int64) (*model.QuestionWithDetails, error) {
	return s.questionRepo.GetByID(ctx, id)
}

// Create stores a question and its answer key atomically.
func (s *QuestionService) Create(ctx context.Context, req model.CreateQuestionRequest) (*model.QuestionWithDetails, error) {
	q, err := s.questionRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().
		Int64("question_id", q.ID).
		Str("type", string(q.QuestionType)).
		Int("options", len(q.Options)).
		Int("blanks", len(q.Blanks)).
		Int("order_items", len(q.OrderItems)).
		Int("matches", len(q.Matches)).
		Msg("Question created")
	return q, nil
}

// Update replaces a question's content and every variant row.
func (s *QuestionService) Update(ctx context.Context, id int64, req model.UpdateQuestionRequest) (*model.QuestionWithDetails, error) {
	q, err := s.questionRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int64("question_id", id).Msg("Question updated")
	return q, nil
}

// Delete removes a question and its variant rows.
func (s *QuestionService) Delete(ctx context.Context, id int64) error {
	if err := s.questionRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug().Int64("question_id", id).Msg("Question deleted")
	return nil
}
