package repository

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/quizforge/internal/apperr"
	"github.com/stemsi/quizforge/internal/model"
)

func TestSaveQuizAttemptDerivesStart(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")
	z := r.quiz(t, tp.ID, 60)

	a, err := r.attempts.SaveQuiz(ctx, model.SaveQuizAttemptRequest{
		QuizID: z.ID,
		AttemptResult: model.AttemptResult{
			Score: 8, MaxScore: 10, Percentage: 80, TimeTakenSeconds: 120,
		},
	})
	require.NoError(t, err)
	assert.Equal(t, z.ID, a.QuizID)
	assert.Equal(t, 8, a.Score)
	assert.InDelta(t, 80, a.Percentage, 1e-9)
	assert.False(t, a.CompletedAt.IsZero())
	assert.WithinDuration(t, a.CompletedAt.Add(-120*time.Second), a.StartedAt, 2*time.Second)
}

func TestSaveExamAttemptKeepsCallerStart(t *testing.T) {
	r := newRepos(t)
	s := r.subject(t, "Math")
	e := r.exam(t, s.ID, 60)
	started := time.Date(2024, 3, 1, 9, 30, 0, 0, time.UTC)

	a, err := r.attempts.SaveExam(context.Background(), model.SaveExamAttemptRequest{
		ExamID: e.ID,
		AttemptResult: model.AttemptResult{
			StartedAt: &started, Score: 40, MaxScore: 50, Percentage: 80, TimeTakenSeconds: 3600,
		},
	})
	require.NoError(t, err)
	assert.True(t, started.Equal(a.StartedAt), "got %s", a.StartedAt)
}

func TestSaveAttemptUnknownParent(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	_, err := r.attempts.SaveQuiz(ctx, model.SaveQuizAttemptRequest{QuizID: 999})
	assert.ErrorIs(t, err, apperr.ErrConstraintViolation)

	_, err = r.attempts.SaveExam(ctx, model.SaveExamAttemptRequest{ExamID: 999})
	assert.ErrorIs(t, err, apperr.ErrConstraintViolation)
}

func TestListAttemptsDerivesPassed(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")
	z := r.quiz(t, tp.ID, 60)
	e := r.exam(t, s.ID, 60)

	for _, pct := range []float64{59.9, 60} {
		_, err := r.attempts.SaveQuiz(ctx, model.SaveQuizAttemptRequest{QuizID: z.ID, AttemptResult: model.AttemptResult{Percentage: pct}})
		require.NoError(t, err)
		_, err = r.attempts.SaveExam(ctx, model.SaveExamAttemptRequest{ExamID: e.ID, AttemptResult: model.AttemptResult{Percentage: pct}})
		require.NoError(t, err)
	}

	quizAttempts, err := r.attempts.ListQuiz(ctx, 0)
	require.NoError(t, err)
	require.Len(t, quizAttempts, 2)
	assert.InDelta(t, 60, quizAttempts[0].Percentage, 1e-9)
	assert.True(t, quizAttempts[0].Passed)
	assert.False(t, quizAttempts[1].Passed)
	assert.Equal(t, "Quiz", quizAttempts[0].QuizName)
	assert.Equal(t, "Algebra", quizAttempts[0].TopicName)
	assert.Equal(t, "Math", quizAttempts[0].SubjectName)

	examAttempts, err := r.attempts.ListExam(ctx, e.ID)
	require.NoError(t, err)
	require.Len(t, examAttempts, 2)
	assert.True(t, examAttempts[0].Passed)
	assert.Equal(t, "Midterm", examAttempts[0].ExamName)

	// Raising the bar reclassifies stored attempts.
	_, err = r.quizzes.Update(ctx, z.ID, model.UpdateQuizRequest{Name: "Quiz", AssessmentSettings: settings(90)})
	require.NoError(t, err)
	quizAttempts, err = r.attempts.ListQuiz(ctx, z.ID)
	require.NoError(t, err)
	assert.False(t, quizAttempts[0].Passed)

	none, err := r.attempts.ListExam(ctx, e.ID+1)
	require.NoError(t, err)
	assert.Empty(t, none)
}
