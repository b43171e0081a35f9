package model

import "time"

// DefaultSubjectColor is used when a subject is created without a color.
const DefaultSubjectColor = "#3B82F6"

// Subject represents an academic course or subject. It is the root of the
// content hierarchy.
type Subject struct {
	ID          int64     `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Color       string    `json:"color"`
	Icon        *string   `json:"icon,omitempty"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// SubjectRequest is the payload for creating or updating a subject.
type SubjectRequest struct {
	Name        string  `json:"name" validate:"required,max=255"`
	Description *string `json:"description"`
	Color       string  `json:"color" validate:"omitempty,hexcolor"`
	Icon        *string `json:"icon"`
}
