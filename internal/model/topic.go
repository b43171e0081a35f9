package model

import "time"

// Topic groups questions and quizzes inside one subject.
type Topic struct {
	ID          int64     `json:"id"`
	SubjectID   int64     `json:"subjectId"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	WeekNumber  *int      `json:"weekNumber,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// CreateTopicRequest is the payload for creating a topic.
type CreateTopicRequest struct {
	SubjectID int64 `json:"subjectId" validate:"required,gt=0"`
	UpdateTopicRequest
}

// UpdateTopicRequest is the payload for updating a topic. A topic never
// moves between subjects.
type UpdateTopicRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	WeekNumber  *int    `json:"weekNumber" validate:"omitempty,gte=0"`
}
