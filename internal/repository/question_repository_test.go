package repository

import (
	"context"
	"encoding/json"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/stemsi/quizforge/internal/apperr"
	"github.com/stemsi/quizforge/internal/model"
)

func TestQuestionOptionsOrderedByDisplayOrder(t *testing.T) {
	r := newRepos(t)
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")

	q, err := r.questions.Create(context.Background(), multipleChoice(s.ID, tp.ID, 2, 0, 1))
	require.NoError(t, err)

	require.Len(t, q.Options, 3)
	for i, o := range q.Options {
		assert.Equal(t, i, o.DisplayOrder)
		assert.Equal(t, optionText(i), o.OptionText)
		assert.Equal(t, q.ID, o.QuestionID)
	}
	// The first submitted option (display order 2) was marked correct.
	assert.True(t, q.Options[2].IsCorrect)
	assert.Empty(t, q.Blanks)
	assert.NotNil(t, q.Blanks)
	assert.NotNil(t, q.OrderItems)
	assert.NotNil(t, q.Matches)
	assert.False(t, q.CreatedAt.IsZero())
}

func TestQuestionRoundTripPerType(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	s := r.subject(t, "Chemistry")
	tp := r.topic(t, s.ID, "Elements")

	tests := []struct {
		name    string
		qt      model.QuestionType
		content model.QuestionContent
	}{
		{"fill blank", model.QuestionTypeFillBlank, model.QuestionContent{Blanks: []model.BlankInput{
			{BlankIndex: 0, CorrectAnswer: "H2O", AcceptableAnswers: ptr(`["water"]`)},
			{BlankIndex: 1, CorrectAnswer: "gas", InputType: model.InputTypeDropdown, DropdownOptions: ptr(`["gas","solid"]`)},
		}}},
		{"ordering", model.QuestionTypeOrdering, model.QuestionContent{OrderItems: []model.OrderItemInput{
			{Text: "H", CorrectPosition: 1},
			{Text: "He", CorrectPosition: 2},
			{Text: "Li", CorrectPosition: 3},
		}}},
		{"matching", model.QuestionTypeMatching, model.QuestionContent{MatchPairs: []model.MatchPairInput{
			{LeftItem: "Na", RightItem: "Sodium"},
			{LeftItem: "K", RightItem: "Potassium", RightImagePath: ptr("assets/images/k.png")},
		}}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.content.QuestionText = tt.name
			tt.content.Difficulty = model.DifficultyHard
			req := model.CreateQuestionRequest{SubjectID: s.ID, TopicID: tp.ID, QuestionType: tt.qt, QuestionContent: tt.content}

			got, err := r.questions.Create(ctx, req)
			require.NoError(t, err)
			_, want := model.Decompose(req)

			require.Len(t, got.Blanks, len(want.Blanks))
			for i, b := range got.Blanks {
				assert.Equal(t, want.Blanks[i].BlankIndex, b.BlankIndex)
				assert.Equal(t, want.Blanks[i].CorrectAnswer, b.CorrectAnswer)
				assert.Equal(t, want.Blanks[i].AcceptableAnswers, b.AcceptableAnswers)
				assert.Equal(t, want.Blanks[i].InputType, b.InputType)
				assert.Equal(t, want.Blanks[i].DropdownOptions, b.DropdownOptions)
			}
			require.Len(t, got.OrderItems, len(want.OrderItems))
			for i, item := range got.OrderItems {
				assert.Equal(t, want.OrderItems[i].ItemText, item.ItemText)
				assert.Equal(t, want.OrderItems[i].CorrectPosition, item.CorrectPosition)
			}
			require.Len(t, got.Matches, len(want.Matches))
			for i, m := range got.Matches {
				assert.Equal(t, want.Matches[i].LeftItem, m.LeftItem)
				assert.Equal(t, want.Matches[i].RightItem, m.RightItem)
				assert.Equal(t, want.Matches[i].RightImagePath, m.RightImagePath)
				assert.Equal(t, i, m.DisplayOrder)
			}
		})
	}
}

func TestQuestionNumericBlankSynthesis(t *testing.T) {
	r := newRepos(t)
	s := r.subject(t, "Physics")
	tp := r.topic(t, s.ID, "Gravity")

	q, err := r.questions.Create(context.Background(), model.CreateQuestionRequest{
		SubjectID:    s.ID,
		TopicID:      tp.ID,
		QuestionType: model.QuestionTypeNumeric,
		QuestionContent: model.QuestionContent{
			QuestionText: "Acceleration due to gravity?",
			Difficulty:   model.DifficultyEasy,
			Points:       2,
			NumericData:  &model.NumericInput{CorrectAnswer: "9.8", Tolerance: "0.2", Unit: ptr("m/s²")},
		},
	})
	require.NoError(t, err)

	require.Len(t, q.Blanks, 1)
	b := q.Blanks[0]
	assert.Equal(t, 0, b.BlankIndex)
	assert.Equal(t, "9.8", b.CorrectAnswer)
	assert.True(t, b.IsNumeric)
	require.NotNil(t, b.NumericTolerance)
	assert.InDelta(t, 0.2, *b.NumericTolerance, 1e-9)
	assert.Equal(t, model.InputTypeInput, b.InputType)
	assert.Equal(t, "m/s²", *b.Unit)
}

func TestQuestionMalformedToleranceDefaults(t *testing.T) {
	r := newRepos(t)
	s := r.subject(t, "Physics")
	tp := r.topic(t, s.ID, "Gravity")

	q, err := r.questions.Create(context.Background(), model.CreateQuestionRequest{
		SubjectID:    s.ID,
		TopicID:      tp.ID,
		QuestionType: model.QuestionTypeNumeric,
		QuestionContent: model.QuestionContent{
			QuestionText: "g?",
			Difficulty:   model.DifficultyEasy,
			NumericData:  &model.NumericInput{CorrectAnswer: "9.8", Tolerance: "abc"},
		},
	})
	require.NoError(t, err)
	require.Len(t, q.Blanks, 1)
	assert.InDelta(t, model.DefaultNumericTolerance, *q.Blanks[0].NumericTolerance, 1e-9)
}

func TestQuestionNonFiniteToleranceDefaults(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	s := r.subject(t, "Physics")
	tp := r.topic(t, s.ID, "Gravity")

	for _, tol := range []string{"inf", "-Inf", "NaN"} {
		q, err := r.questions.Create(ctx, model.CreateQuestionRequest{
			SubjectID:    s.ID,
			TopicID:      tp.ID,
			QuestionType: model.QuestionTypeNumeric,
			QuestionContent: model.QuestionContent{
				QuestionText: "g?",
				Difficulty:   model.DifficultyEasy,
				NumericData:  &model.NumericInput{CorrectAnswer: "9.8", Tolerance: tol},
			},
		})
		require.NoError(t, err, tol)

		got, err := r.questions.GetByID(ctx, q.ID)
		require.NoError(t, err, tol)
		require.Len(t, got.Blanks, 1)
		require.NotNil(t, got.Blanks[0].NumericTolerance, tol)
		assert.InDelta(t, model.DefaultNumericTolerance, *got.Blanks[0].NumericTolerance, 1e-9, tol)
	}

	list, err := r.questions.ListByTopic(ctx, tp.ID)
	require.NoError(t, err)
	require.Len(t, list, 3)
	_, err = json.Marshal(list)
	assert.NoError(t, err)
}

func TestQuestionUpdateReplacesVariants(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")

	q, err := r.questions.Create(ctx, multipleChoice(s.ID, tp.ID, 0, 1, 2, 3))
	require.NoError(t, err)
	require.Len(t, q.Options, 4)

	replacement := multipleChoice(s.ID, tp.ID, 0, 1)
	replacement.QuestionText = "Pick again"
	updated, err := r.questions.Update(ctx, q.ID, model.UpdateQuestionRequest{QuestionContent: replacement.QuestionContent})
	require.NoError(t, err)

	assert.Equal(t, "Pick again", updated.QuestionText)
	assert.Equal(t, model.QuestionTypeMultipleChoice, updated.QuestionType)
	assert.Len(t, updated.Options, 2)
	assert.Equal(t, 2, r.count(t, `SELECT COUNT(*) FROM question_options WHERE question_id = ?`, q.ID))
}

func TestQuestionUpdateMissing(t *testing.T) {
	r := newRepos(t)

	_, err := r.questions.Update(context.Background(), 404, model.UpdateQuestionRequest{
		QuestionContent: model.QuestionContent{QuestionText: "x", Difficulty: model.DifficultyEasy},
	})
	assert.ErrorIs(t, err, apperr.ErrNotFound)
}

func TestQuestionCreateIsAtomic(t *testing.T) {
	r := newRepos(t)
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")

	_, err := r.questions.Create(context.Background(), model.CreateQuestionRequest{
		SubjectID:    s.ID,
		TopicID:      tp.ID,
		QuestionType: model.QuestionTypeFillBlank,
		QuestionContent: model.QuestionContent{
			QuestionText: "Fill",
			Difficulty:   model.DifficultyEasy,
			Blanks: []model.BlankInput{
				{BlankIndex: 0, CorrectAnswer: "a"},
				{BlankIndex: 1, CorrectAnswer: "b"},
				{BlankIndex: 2, CorrectAnswer: "c", InputType: "BOGUS"},
			},
		},
	})
	assert.ErrorIs(t, err, apperr.ErrConstraintViolation)

	assert.Zero(t, r.count(t, `SELECT COUNT(*) FROM questions`))
	assert.Zero(t, r.count(t, `SELECT COUNT(*) FROM question_blanks`))
}

func TestQuestionUpdateIsAtomic(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")

	orig, err := r.questions.Create(ctx, model.CreateQuestionRequest{
		SubjectID:    s.ID,
		TopicID:      tp.ID,
		QuestionType: model.QuestionTypeFillBlank,
		QuestionContent: model.QuestionContent{
			QuestionText: "Original",
			Difficulty:   model.DifficultyEasy,
			Blanks:       []model.BlankInput{{BlankIndex: 0, CorrectAnswer: "keep"}},
		},
	})
	require.NoError(t, err)

	_, err = r.questions.Update(ctx, orig.ID, model.UpdateQuestionRequest{QuestionContent: model.QuestionContent{
		QuestionText: "Changed",
		Difficulty:   model.DifficultyHard,
		Blanks: []model.BlankInput{
			{BlankIndex: 0, CorrectAnswer: "new"},
			{BlankIndex: 1, CorrectAnswer: "bad", InputType: "BOGUS"},
		},
	}})
	assert.ErrorIs(t, err, apperr.ErrConstraintViolation)

	got, err := r.questions.GetByID(ctx, orig.ID)
	require.NoError(t, err)
	assert.Equal(t, "Original", got.QuestionText)
	assert.Equal(t, model.DifficultyEasy, got.Difficulty)
	require.Len(t, got.Blanks, 1)
	assert.Equal(t, "keep", got.Blanks[0].CorrectAnswer)
}

func TestQuestionWrongArmRejected(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")

	req := multipleChoice(s.ID, tp.ID, 0, 1)
	req.Blanks = []model.BlankInput{{CorrectAnswer: "stray"}}

	_, err := r.questions.Create(ctx, req)
	assert.ErrorIs(t, err, apperr.ErrMalformedPayload)
	assert.Zero(t, r.count(t, `SELECT COUNT(*) FROM questions`))

	q, err := r.questions.Create(ctx, multipleChoice(s.ID, tp.ID, 0, 1))
	require.NoError(t, err)

	_, err = r.questions.Update(ctx, q.ID, model.UpdateQuestionRequest{QuestionContent: model.QuestionContent{
		QuestionText: "Now ordering?",
		Difficulty:   model.DifficultyEasy,
		OrderItems:   []model.OrderItemInput{{Text: "x", CorrectPosition: 0}},
	}})
	assert.ErrorIs(t, err, apperr.ErrMalformedPayload)

	got, err := r.questions.GetByID(ctx, q.ID)
	require.NoError(t, err)
	assert.Len(t, got.Options, 2)
	assert.Empty(t, got.OrderItems)
}

func TestQuestionUnknownTopic(t *testing.T) {
	r := newRepos(t)
	s := r.subject(t, "Math")

	_, err := r.questions.Create(context.Background(), multipleChoice(s.ID, 999, 0))
	assert.ErrorIs(t, err, apperr.ErrConstraintViolation)
}

func TestQuestionListByTopic(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")
	other := r.topic(t, s.ID, "Geometry")

	empty, err := r.questions.ListByTopic(ctx, tp.ID)
	require.NoError(t, err)
	assert.NotNil(t, empty)
	assert.Empty(t, empty)

	first, err := r.questions.Create(ctx, multipleChoice(s.ID, tp.ID, 0, 1))
	require.NoError(t, err)
	second, err := r.questions.Create(ctx, multipleChoice(s.ID, tp.ID, 1, 0, 2))
	require.NoError(t, err)
	_, err = r.questions.Create(ctx, multipleChoice(s.ID, other.ID, 0))
	require.NoError(t, err)

	list, err := r.questions.ListByTopic(ctx, tp.ID)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, second.ID, list[0].ID)
	assert.Equal(t, first.ID, list[1].ID)
	assert.Len(t, list[0].Options, 3)
	assert.Equal(t, 0, list[0].Options[0].DisplayOrder)
}

func TestQuestionDelete(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")

	q, err := r.questions.Create(ctx, multipleChoice(s.ID, tp.ID, 0, 1, 2))
	require.NoError(t, err)

	require.NoError(t, r.questions.Delete(ctx, q.ID))
	require.NoError(t, r.questions.Delete(ctx, q.ID))

	_, err = r.questions.GetByID(ctx, q.ID)
	assert.ErrorIs(t, err, apperr.ErrNotFound)
	assert.Zero(t, r.count(t, `SELECT COUNT(*) FROM question_options`))
}

func TestConcurrentCreatesDoNotDeadlock(t *testing.T) {
	r := newRepos(t)
	ctx := context.Background()
	s := r.subject(t, "Math")
	tp := r.topic(t, s.ID, "Algebra")

	var wg sync.WaitGroup
	for i := 0; i < 12; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := r.questions.Create(ctx, multipleChoice(s.ID, tp.ID, 0, 1))
			assert.NoError(t, err)
			_, err = r.exams.Create(ctx, model.CreateExamRequest{
				SubjectID: s.ID,
				UpdateExamRequest: model.UpdateExamRequest{
					Name:               "Exam",
					Topics:             []model.ExamTopicInput{{TopicID: tp.ID, QuestionCount: 1}},
					AssessmentSettings: settings(60),
				},
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	assert.Equal(t, 12, r.count(t, `SELECT COUNT(*) FROM questions`))
	assert.Equal(t, 24, r.count(t, `SELECT COUNT(*) FROM question_options`))
	assert.Equal(t, 12, r.count(t, `SELECT COUNT(*) FROM exam_topics`))
}
