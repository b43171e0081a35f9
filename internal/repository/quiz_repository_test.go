package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/quizforge/internal/apperr"
	"github.com/stemsi/quizforge/internal/model"
)

func TestQuizCRUD(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")

	z, err := r.quizzes.Create(ctx, model.CreateQuizRequest{
		TopicID: tp.ID,
		UpdateQuizRequest: model.UpdateQuizRequest{
			Name:          "Warmup",
			QuestionCount: 5,
			AssessmentSettings: model.AssessmentSettings{
				TimeLimitMinutes:    ptr(15),
				ShuffleOptions:      true,
				ShowAnswersAfter:    model.ShowAnswersEachQuestion,
				PassingScorePercent: 70,
			},
		},
	})
	require.NoError(t, err)
	assert.Equal(t, tp.ID, z.TopicID)
	assert.Equal(t, 15, *z.TimeLimitMinutes)
	assert.False(t, z.ShuffleQuestions)
	assert.True(t, z.ShuffleOptions)
	assert.Equal(t, model.ShowAnswersEachQuestion, z.ShowAnswersAfter)

	updated, err := r.quizzes.Update(ctx, z.ID, model.UpdateQuizRequest{
		Name:               "Warmup 2",
		QuestionCount:      8,
		AssessmentSettings: settings(50),
	})
	require.NoError(t, err)
	assert.Equal(t, "Warmup 2", updated.Name)
	assert.Nil(t, updated.TimeLimitMinutes)
	assert.Equal(t, 50, updated.PassingScorePercent)

	list, err := r.quizzes.ListByTopic(ctx, tp.ID)
	require.NoError(t, err)
	require.Len(t, list, 1)

	require.NoError(t, r.quizzes.Delete(ctx, z.ID))
	_, err = r.quizzes.GetByID(ctx, z.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)

	_, err = r.quizzes.Update(ctx, z.ID, model.UpdateQuizRequest{Name: "x", AssessmentSettings: settings(50)})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestQuizRejectsUnknownShowAnswers(t *testing.T) {
	r := newRepos(t)
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")

	_, err := r.quizzes.Create(context.Background(), model.CreateQuizRequest{
		TopicID: tp.ID,
		UpdateQuizRequest: model.UpdateQuizRequest{
			Name:               "Bad",
			AssessmentSettings: model.AssessmentSettings{ShowAnswersAfter: "SOMETIMES"},
		},
	})
	assert.ErrorIs(t, err, apperr.ErrConstraintViolation)
}
