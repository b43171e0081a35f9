package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/repository"
)

// QuizService handles quiz business logic.
type QuizService struct {
	quizRepo *repository.QuizRepository
	log      zerolog.Logger
}

// NewQuizService creates a new QuizService.
func NewQuizService(quizRepo *repository.QuizRepository, log zerolog.Logger) *QuizService {
	return &QuizService{
		quizRepo: quizRepo,
		log:      log.With().Str("component", "quiz_service").Logger(),
	}
}

func (s *QuizService) List(ctx context.Context, topicID int64) ([]model.Quiz, error) {
	return s.quizRepo.ListByTopic(ctx, topicID)
}

func (s *QuizService) Get(ctx context.Context, id int64) (*model.Quiz, error) {
	return s.quizRepo.GetByID(ctx, id)
}

func (s *QuizService) Create(ctx context.Context, req model.CreateQuizRequest) (*model.Quiz, error) {
	z, err := s.quizRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int64("quiz_id", z.ID).Int64("topic_id", z.TopicID).Msg("Quiz created")
	return z, nil
}

func (s *QuizService) Update(ctx context.Context, id int64, req model.UpdateQuizRequest) (*model.Quiz, error) {
	z, err := s.quizRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int64("quiz_id", id).Msg("Quiz updated")
	return z, nil
}

func (s *QuizService) Delete(ctx context.Context, id int64) error {
	if err := s.quizRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug().Int64("quiz_id", id).Msg("Quiz deleted")
	return nil
}
