package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/stemsi/quizforge/internal/model"
	"github.com/stemsi/quizforge/internal/repository"
)

type SubjectService struct {
	subjectRepo *repository.SubjectRepository
	log         zerolog.Logger
}

func NewSubjectService(subjectRepo *repository.SubjectRepository, log zerolog.Logger) *SubjectService {
	return &SubjectService{
		subjectRepo: subjectRepo,
		log:         log.With().Str("component", "subject_service").Logger(),
	}
}

func (s *SubjectService) List(ctx context.Context) ([]model.Subject, error) {
	return s.subjectRepo.List(ctx)
}

func (s *SubjectService) Get(ctx context.Context, id int64) (*model.Subject, error) {
	return s.subjectRepo.GetByID(ctx, id)
}

func (s *SubjectService) Create(ctx context.Context, req model.SubjectRequest) (*model.Subject, error) {
	sub, err := s.subjectRepo.Create(ctx, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int64("subject_id", sub.ID).Msg("Subject created")
	return sub, nil
}

func (s *SubjectService) Update(ctx context.Context, id int64, req model.SubjectRequest) (*model.Subject, error) {
	sub, err := s.subjectRepo.Update(ctx, id, req)
	if err != nil {
		return nil, err
	}
	s.log.Debug().Int64("subject_id", id).Msg("Subject updated")
	return sub, nil
}

func (s *SubjectService) Delete(ctx context.Context, id int64) error {
	if err := s.subjectRepo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Debug().Int64("subject_id", id).Msg("Subject deleted")
	return nil
}
