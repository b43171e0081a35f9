package model

import "time"

// Exam draws a per-topic question quota from topics of one subject.
type Exam struct {
	ID                 int64   `json:"id"`
	SubjectID          int64   `json:"subjectId"`
	Name               string  `json:"name"`
	Description        *string `json:"description,omitempty"`
	TotalQuestionCount int     `json:"totalQuestionCount"`
	AssessmentSettings
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// ExamTopic is one quota row of an exam.
type ExamTopic struct {
	ID            int64  `json:"id"`
	ExamID        int64  `json:"examId"`
	TopicID       int64  `json:"topicId"`
	TopicName     string `json:"topicName"`
	QuestionCount int    `json:"questionCount"`
}

// ExamWithTopics is the exam aggregate, topics ordered by topic name.
type ExamWithTopics struct {
	Exam
	Topics []ExamTopic `json:"topics"`
}

// ExamTopicInput is a requested quota. The quota is not checked against the
// number of questions the topic holds.
type ExamTopicInput struct {
	TopicID       int64 `json:"topicId" validate:"required,gt=0"`
	QuestionCount int   `json:"questionCount" validate:"gte=0"`
}

type CreateExamRequest struct {
	SubjectID int64 `json:"subjectId" validate:"required,gt=0"`
	UpdateExamRequest
}

type UpdateExamRequest struct {
	Name               string           `json:"name" validate:"required,max=255"`
	Description        *string          `json:"description"`
	TotalQuestionCount int              `json:"totalQuestionCount" validate:"gte=0"`
	Topics             []ExamTopicInput `json:"topics" validate:"dive"`
	AssessmentSettings
}
