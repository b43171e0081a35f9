package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/repository"
)

type TopicService struct {
	topicRepo *repository.TopicRepository
	log       zerolog.Logger
}

func NewTopicService(topicRepo *repository.TopicRepository, log zerolog.Logger) *TopicService {
	return &TopicService{
		topicRepo: topicRepo,
		log:       log.With().Str("component", "topic_service").Logger(),
	}
}

func (s *TopicService) List(ctx context.Context, subjectID int64) ([]model.Topic, error) {
	return s.topicRepo.ListBySubject(ctx, subjectID)
}

func (s *TopicService) Get(ctx context.Context, id int64) (*model.Topic, error) {
	return s.topicRepo.GetByID(ctx, id)
}

func (s *TopicService) Create(ctx context.Context, req model.CreateTopicRequest) (*model.Topic, error) {
	t, err := s.topicRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int64("topic_id", t.ID).Int64("subject_id", t.SubjectID).Msg("Topic created")
	return t, nil
}

func (s *TopicService) Update(ctx context.Context, id int64, req model.UpdateTopicRequest) (*model.Topic, error) {
	t, err := s.topicRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int64("topic_id", id).Msg("Topic updated")
	return t, nil
}

func (s *TopicService) Delete(ctx context.Context, id int64) error {
	if err := s.topicRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug().Int64("topic_id", id).Msg("Topic deleted")
	return nil
}
