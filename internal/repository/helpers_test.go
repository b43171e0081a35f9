package repository

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/quizforge/internal/database"
	"github.com/stemsi/quizforge/internal/model"
)

type repos struct {
	db          *database.Handle
	subjects    *SubjectRepository
	topics      *TopicRepository
	questions   *QuestionRepository
	quizzes     *QuizRepository
	exams       *ExamRepository
	attempts    *AttemptRepository
	performance *PerformanceRepository
}

func newRepos(t *testing.T) *repos {
	t.Helper()
	db, err := database.Open(context.Background(), filepath.Join(t.TempDir(), "quizforge.db"), zerolog.Nop())
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })

	return &repos{
		db:          db,
		subjects:    NewSubjectRepository(db),
		topics:      NewTopicRepository(db),
		questions:   NewQuestionRepository(db),
		quizzes:     NewQuizRepository(db),
		exams:       NewExamRepository(db),
		attempts:    NewAttemptRepository(db),
		performance: NewPerformanceRepository(db),
	}
}

func ptr[T any](v T) *T { return &v }

func (r *repos) subject(t *testing.T, name string) *model.Subject {
	t.Helper()
	s, err := r.subjects.Create(context.Background(), model.SubjectRequest{Name: name})
	require.NoError(t, err)
	return s
}

func (r *repos) topic(t *testing.T, subjectID int64, name string) *model.Topic {
	t.Helper()
	tp, err := r.topics.Create(context.Background(), model.CreateTopicRequest{
		SubjectID:          subjectID,
		UpdateTopicRequest: model.UpdateTopicRequest{Name: name},
	})
	require.NoError(t, err)
	return tp
}

func settings(passing int) model.AssessmentSettings {
	return model.AssessmentSettings{
		ShuffleQuestions:    true,
		ShowAnswersAfter:    model.ShowAnswersEndOfQuiz,
		PassingScorePercent: passing,
	}
}

func (r *repos) quiz(t *testing.T, topicID int64, passing int) *model.Quiz {
	t.Helper()
	z, err := r.quizzes.Create(context.Background(), model.CreateQuizRequest{
		TopicID: topicID,
		UpdateQuizRequest: model.UpdateQuizRequest{
			Name:               "Quiz",
			QuestionCount:      10,
			AssessmentSettings: settings(passing),
		},
	})
	require.NoError(t, err)
	return z
}

func (r *repos) exam(t *testing.T, subjectID int64, passing int, topics ...model.ExamTopicInput) *model.ExamWithTopics {
	t.Helper()
	e, err := r.exams.Create(context.Background(), model.CreateExamRequest{
		SubjectID: subjectID,
		UpdateExamRequest: model.UpdateExamRequest{
			Name:               "Midterm",
			TotalQuestionCount: 20,
			Topics:             topics,
			AssessmentSettings: settings(passing),
		},
	})
	require.NoError(t, err)
	return e
}

func multipleChoice(subjectID, topicID int64, orders ...int) model.CreateQuestionRequest {
	req := model.CreateQuestionRequest{
		SubjectID:    subjectID,
		TopicID:      topicID,
		QuestionType: model.QuestionTypeMultipleChoice,
		QuestionContent: model.QuestionContent{
			QuestionText: "Pick one",
			Difficulty:   model.DifficultyMedium,
			Points:       1,
		},
	}
	for i, order := range orders {
		req.Options = append(req.Options, model.OptionInput{
			OptionText:   optionText(order),
			IsCorrect:    i == 0,
			DisplayOrder: order,
		})
	}
	return req
}

func optionText(order int) string {
	return string(rune('A' + order))
}

func (r *repos) count(t *testing.T, query string, args ...any) int {
	t.Helper()
	var n int
	err := r.db.Do(context.Background(), func(ctx context.Context, q database.Querier) error {
		return q.QueryRowContext(ctx, query, args...).Scan(&n)
	})
	require.NoError(t, err)
	return n
}
