package repository

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/quizforge/internal/model"
)

func TestSubjectPerformance(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	math := r.subject(t, "Math")
	e := r.exam(t, math.ID, 60)
	for _, pct := range []float64{90, 40, 70} {
		_, err := r.attempts.SaveExam(ctx, model.SaveExamAttemptRequest{ExamID: e.ID, AttemptResult: model.AttemptResult{Percentage: pct}})
		require.NoError(t, err)
	}

	art := r.subject(t, "Art")
	artExam := r.exam(t, art.ID, 50)
	_, err := r.attempts.SaveExam(ctx, model.SaveExamAttemptRequest{ExamID: artExam.ID, AttemptResult: model.AttemptResult{Percentage: 95}})
	require.NoError(t, err)

	// No attempts: excluded rather than reported as zero.
	r.subject(t, "History")

	stats, err := r.performance.BySubject(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 2)

	assert.Equal(t, "Art", stats[0].SubjectName)
	assert.InDelta(t, 100, stats[0].PassRate, 0.01)

	assert.Equal(t, math.ID, stats[1].SubjectID)
	assert.Equal(t, 3, stats[1].Attempts)
	assert.InDelta(t, 66.67, stats[1].AverageScore, 0.01)
	assert.InDelta(t, 66.67, stats[1].PassRate, 0.01)
}

func TestTopicPerformance(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()

	s := r.subject(t, "Math")
	algebra := r.topic(t, s.ID, "Algebra")
	r.topic(t, s.ID, "Geometry")
	z := r.quiz(t, algebra.ID, 60)
	for _, pct := range []float64{50, 100} {
		_, err := r.attempts.SaveQuiz(ctx, model.SaveQuizAttemptRequest{QuizID: z.ID, AttemptResult: model.AttemptResult{Percentage: pct}})
		require.NoError(t, err)
	}

	stats, err := r.performance.ByTopic(ctx)
	require.NoError(t, err)
	require.Len(t, stats, 1)
	assert.Equal(t, "Algebra", stats[0].TopicName)
	assert.Equal(t, "Math", stats[0].SubjectName)
	assert.Equal(t, 2, stats[0].Attempts)
	assert.InDelta(t, 75, stats[0].AverageScore, 0.01)
	assert.InDelta(t, 50, stats[0].PassRate, 0.01)
}

func TestPerformanceEmpty(t *testing.T) {
	r := newRepos(t)

	subjects, err := r.performance.BySubject(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, subjects)
	assert.Empty(t, subjects)

	topics, err := r.performance.ByTopic(context.Background())
	require.NoError(t, err)
	assert.Empty(t, topics)
}
