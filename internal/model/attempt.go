package model

import "time"

// QuizAttempt is an immutable record of one completed quiz.
type QuizAttempt struct {
	ID               int64     `json:"id"`
	QuizID           int64     `json:"quizId"`
	StartedAt        time.Time `json:"startedAt"`
	CompletedAt      time.Time `json:"completedAt"`
	Score            int       `json:"score"`
	MaxScore         int       `json:"maxScore"`
	Percentage       float64   `json:"percentage"`
	TimeTakenSeconds int       `json:"timeTakenSeconds"`
}

// ExamAttempt is an immutable record of one completed exam.
type ExamAttempt struct {
	ID               int64     `json:"id"`
	ExamID           int64     `json:"examId"`
	StartedAt        time.Time `json:"startedAt"`
	CompletedAt      time.Time `json:"completedAt"`
	Score            int       `json:"score"`
	MaxScore         int       `json:"maxScore"`
	Percentage       float64   `json:"percentage"`
	TimeTakenSeconds int       `json:"timeTakenSeconds"`
}

// QuizAttemptDetail is a quiz attempt joined with its context. Passed is
// derived from the quiz's current passing score.
type QuizAttemptDetail struct {
	QuizAttempt
	QuizName    string `json:"quizName"`
	TopicName   string `json:"topicName"`
	SubjectName string `json:"subjectName"`
	Passed      bool   `json:"passed"`
}

type ExamAttemptDetail struct {
	ExamAttempt
	ExamName    string `json:"examName"`
	SubjectName string `json:"subjectName"`
	Passed      bool   `json:"passed"`
}

// AttemptResult is the caller-computed outcome. The score is stored
// verbatim and never recomputed. A nil StartedAt is derived as
// completion time minus TimeTakenSeconds.
type AttemptResult struct {
	StartedAt        *time.Time `json:"startedAt"`
	Score            int        `json:"score" validate:"gte=0"`
	MaxScore         int        `json:"maxScore" validate:"gte=0"`
	Percentage       float64    `json:"percentage" validate:"gte=0"`
	TimeTakenSeconds int        `json:"timeTakenSeconds" validate:"gte=0"`
}

type SaveQuizAttemptRequest struct {
	QuizID int64 `json:"quizId" validate:"required,gt=0"`
	AttemptResult
}

type SaveExamAttemptRequest struct {
	ExamID int64 `json:"examId" validate:"required,gt=0"`
	AttemptResult
}
