package validator

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/stemsi/quizforge/internal/model"
)

func TestValidPayloadPasses(t *testing.T) {
	v := New()

	fields := v.Struct(model.CreateQuestionRequest{
		SubjectID:    1,
		TopicID:      1,
		QuestionType: model.QuestionTypeMultipleChoice,
		QuestionContent: model.QuestionContent{
			QuestionText: "2 + 2?",
			Difficulty:   model.DifficultyEasy,
			Options:      []model.OptionInput{{OptionText: "4", IsCorrect: true}},
		},
	})
	assert.Nil(t, fields)
}

func TestFieldPathsUseJSONNames(t *testing.T) {
	v := New()

	fields := v.Struct(model.CreateQuestionRequest{
		SubjectID:    1,
		TopicID:      1,
		QuestionType: "ESSAY",
		QuestionContent: model.QuestionContent{
			Difficulty: model.DifficultyEasy,
			Options:    []model.OptionInput{{OptionText: "ok"}, {}},
		},
	})

	assert.Contains(t, fields, "questionType")
	assert.Contains(t, fields, "questionText")
	assert.Contains(t, fields, "options[1].optionText")
	assert.NotContains(t, fields, "options[0].optionText")
	assert.Contains(t, fields["questionText"], "required")
}

func TestAssessmentSettingsBounds(t *testing.T) {
	v := New()

	fields := v.Struct(model.CreateQuizRequest{
		TopicID: 1,
		UpdateQuizRequest: model.UpdateQuizRequest{
			Name: "Quiz",
			AssessmentSettings: model.AssessmentSettings{
				ShowAnswersAfter:    model.ShowAnswersNever,
				PassingScorePercent: 101,
			},
		},
	})
	assert.Contains(t, fields, "passingScorePercent")
}

func TestSubjectColor(t *testing.T) {
	v := New()

	assert.Nil(t, v.Struct(model.SubjectRequest{Name: "Math"}))
	assert.Nil(t, v.Struct(model.SubjectRequest{Name: "Math", Color: "#3B82F6"}))
	assert.Contains(t, v.Struct(model.SubjectRequest{Name: "Math", Color: "blue"}), "color")
}

func TestTranslateNonValidationError(t *testing.T) {
	fields := New().TranslateErrors(assert.AnError)
	assert.Equal(t, assert.AnError.Error(), fields["detail"])
}
