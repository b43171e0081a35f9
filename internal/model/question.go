package model

import "time"

// QuestionType selects which variant row set of a question is authoritative.
type QuestionType string

const (
	QuestionTypeMultipleChoice QuestionType = "MULTIPLE_CHOICE"
	QuestionTypeFillBlank      QuestionType = "FILL_BLANK"
	QuestionTypeNumeric        QuestionType = "NUMERIC"
	QuestionTypeOrdering       QuestionType = "ORDERING"
	QuestionTypeMatching       QuestionType = "MATCHING"
)

type Difficulty string

const (
	DifficultyEasy   Difficulty = "EASY"
	DifficultyMedium Difficulty = "MEDIUM"
	DifficultyHard   Difficulty = "HARD"
)

// InputType is how a blank is answered.
type InputType string

const (
	InputTypeInput    InputType = "INPUT"
	InputTypeDropdown InputType = "DROPDOWN"
)

// Question is the base record shared by every question type.
type Question struct {
	ID                int64        `json:"id"`
	SubjectID         int64        `json:"subjectId"`
	TopicID           int64        `json:"topicId"`
	QuestionType      QuestionType `json:"questionType"`
	QuestionText      string       `json:"questionText"`
	QuestionImagePath *string      `json:"questionImagePath,omitempty"`
	Explanation       *string      `json:"explanation,omitempty"`
	Difficulty        Difficulty   `json:"difficulty"`
	Points            int          `json:"points"`
	Source            *string      `json:"source,omitempty"`
	CreatedAt         time.Time    `json:"createdAt"`
	UpdatedAt         time.Time    `json:"updatedAt"`
}

// QuestionOption is one choice of a MULTIPLE_CHOICE question.
type QuestionOption struct {
	ID              int64   `json:"id"`
	QuestionID      int64   `json:"questionId"`
	OptionText      string  `json:"optionText"`
	OptionImagePath *string `json:"optionImagePath,omitempty"`
	IsCorrect       bool    `json:"isCorrect"`
	DisplayOrder    int     `json:"displayOrder"`
}

// QuestionBlank is one answer slot of a FILL_BLANK question, or the single
// synthetic slot (BlankIndex 0, IsNumeric) of a NUMERIC question.
// AcceptableAnswers and DropdownOptions are serialized lists stored opaquely.
type QuestionBlank struct {
	ID                int64     `json:"id"`
	QuestionID        int64     `json:"questionId"`
	BlankIndex        int       `json:"blankIndex"`
	CorrectAnswer     string    `json:"correctAnswer"`
	AcceptableAnswers *string   `json:"acceptableAnswers,omitempty"`
	IsNumeric         bool      `json:"isNumeric"`
	NumericTolerance  *float64  `json:"numericTolerance,omitempty"`
	Unit              *string   `json:"unit,omitempty"`
	InputType         InputType `json:"inputType"`
	DropdownOptions   *string   `json:"dropdownOptions,omitempty"`
}

// QuestionOrderItem is one item of an ORDERING question; CorrectPosition is
// the answer key.
type QuestionOrderItem struct {
	ID              int64  `json:"id"`
	QuestionID      int64  `json:"questionId"`
	ItemText        string `json:"itemText"`
	CorrectPosition int    `json:"correctPosition"`
}

// QuestionMatch is one left/right pair of a MATCHING question.
type QuestionMatch struct {
	ID             int64   `json:"id"`
	QuestionID     int64   `json:"questionId"`
	LeftItem       string  `json:"leftItem"`
	RightItem      string  `json:"rightItem"`
	LeftImagePath  *string `json:"leftImagePath,omitempty"`
	RightImagePath *string `json:"rightImagePath,omitempty"`
	DisplayOrder   int     `json:"displayOrder"`
}

// QuestionWithDetails is the question aggregate. All four variant arrays are
// always present (empty where inapplicable) so consumers can dispatch on
// QuestionType uniformly.
type QuestionWithDetails struct {
	Question
	Options    []QuestionOption    `json:"options"`
	Blanks     []QuestionBlank     `json:"blanks"`
	OrderItems []QuestionOrderItem `json:"orderItems"`
	Matches    []QuestionMatch     `json:"matches"`
}

// ─── Request payloads ──────────────────────────────────────────────────────

// CreateQuestionRequest is the payload for creating a question.
type CreateQuestionRequest struct {
	SubjectID    int64        `json:"subjectId" validate:"required,gt=0"`
	TopicID      int64        `json:"topicId" validate:"required,gt=0"`
	QuestionType QuestionType `json:"questionType" validate:"required,oneof=MULTIPLE_CHOICE FILL_BLANK NUMERIC ORDERING MATCHING"`
	QuestionContent
}

// UpdateQuestionRequest is the payload for updating a question. Subject,
// topic and type are fixed at creation.
type UpdateQuestionRequest struct {
	QuestionContent
}

// QuestionContent is the editable part of a question: base fields plus the
// submitted variant rows.
type QuestionContent struct {
	QuestionText      string     `json:"questionText" validate:"required"`
	QuestionImagePath *string    `json:"questionImagePath"`
	Explanation       *string    `json:"explanation"`
	Difficulty        Difficulty `json:"difficulty" validate:"required,oneof=EASY MEDIUM HARD"`
	Points            int        `json:"points" validate:"gte=0"`
	Source            *string    `json:"source"`

	Options     []OptionInput    `json:"options" validate:"dive"`
	Blanks      []BlankInput     `json:"blanks" validate:"dive"`
	NumericData *NumericInput    `json:"numericData"`
	OrderItems  []OrderItemInput `json:"orderItems" validate:"dive"`
	MatchPairs  []MatchPairInput `json:"matchPairs" validate:"dive"`
}

type OptionInput struct {
	OptionText      string  `json:"optionText" validate:"required"`
	OptionImagePath *string `json:"optionImagePath"`
	IsCorrect       bool    `json:"isCorrect"`
	DisplayOrder    int     `json:"displayOrder"`
}

type BlankInput struct {
	BlankIndex        int       `json:"blankIndex" validate:"gte=0"`
	CorrectAnswer     string    `json:"correctAnswer" validate:"required"`
	AcceptableAnswers *string   `json:"acceptableAnswers"`
	IsNumeric         bool      `json:"isNumeric"`
	NumericTolerance  *float64  `json:"numericTolerance"`
	Unit              *string   `json:"unit"`
	InputType         InputType `json:"inputType" validate:"omitempty,oneof=INPUT DROPDOWN"`
	DropdownOptions   *string   `json:"dropdownOptions"`
}

// NumericInput is the legacy standalone numeric answer. Tolerance arrives as
// free text from the editor.
type NumericInput struct {
	CorrectAnswer string  `json:"correctAnswer" validate:"required"`
	Tolerance     string  `json:"tolerance"`
	Unit          *string `json:"unit"`
}

type OrderItemInput struct {
	Text            string `json:"text" validate:"required"`
	CorrectPosition int    `json:"correctPosition"`
}

// MatchPairInput carries no display order; pairs are numbered by their
// position in the payload.
type MatchPairInput struct {
	LeftItem       string  `json:"leftItem" validate:"required"`
	RightItem      string  `json:"rightItem" validate:"required"`
	LeftImagePath  *string `json:"leftImagePath"`
	RightImagePath *string `json:"rightImagePath"`
}
