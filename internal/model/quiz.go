package model

import "time"

// ShowAnswersAfter controls when answers are revealed while taking an assessment.
type ShowAnswersAfter string

const (
	ShowAnswersEachQuestion ShowAnswersAfter = "EACH_QUESTION"
	ShowAnswersEndOfQuiz    ShowAnswersAfter = "END_OF_QUIZ"
	ShowAnswersNever        ShowAnswersAfter = "NEVER"
)

// AssessmentSettings is shared by quizzes and exams.
type AssessmentSettings struct {
	TimeLimitMinutes    *int             `json:"timeLimitMinutes,omitempty" validate:"omitempty,gt=0"`
	ShuffleQuestions    bool             `json:"shuffleQuestions"`
	ShuffleOptions      bool             `json:"shuffleOptions"`
	ShowAnswersAfter    ShowAnswersAfter `json:"showAnswersAfter" validate:"required,oneof=EACH_QUESTION END_OF_QUIZ NEVER"`
	PassingScorePercent int              `json:"passingScorePercent" validate:"gte=0,lte=100"`
}

// Quiz draws questions from a single topic.
type Quiz struct {
	ID            int64   `json:"id"`
	TopicID       int64   `json:"topicId"`
	Name          string  `json:"name"`
	Description   *string `json:"description,omitempty"`
	QuestionCount int     `json:"questionCount"`
	AssessmentSettings
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

type CreateQuizRequest struct {
	TopicID int64 `json:"topicId" validate:"required,gt=0"`
	UpdateQuizRequest
}

type UpdateQuizRequest struct {
	Name          string  `json:"name" validate:"required,max=255"`
	Description   *string `json:"description"`
	QuestionCount int     `json:"questionCount" validate:"gte=0"`
	AssessmentSettings
}
