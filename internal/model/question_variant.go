package model

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/stemsi/quizforge/internal/apperr"
)

// DefaultNumericTolerance is stored when a numeric tolerance does not parse.
const DefaultNumericTolerance = 0.1

// VariantArm names the variant row set a question type owns.
type VariantArm string

const (
	ArmNone       VariantArm = ""
	ArmOptions    VariantArm = "options"
	ArmBlanks     VariantArm = "blanks"
	ArmOrderItems VariantArm = "orderItems"
	ArmMatches    VariantArm = "matches"
)

// Arm returns the variant arm selected by t, or ArmNone for an unknown type.
func (t QuestionType) Arm() VariantArm {
	switch t {
	case QuestionTypeMultipleChoice:
		return ArmOptions
	case QuestionTypeFillBlank, QuestionTypeNumeric:
		return ArmBlanks
	case QuestionTypeOrdering:
		return ArmOrderItems
	case QuestionTypeMatching:
		return ArmMatches
	default:
		return ArmNone
	}
}

// VariantSet holds the decomposed variant rows of one question. Row IDs and
// QuestionID are zero until persisted.
type VariantSet struct {
	Options    []QuestionOption
	Blanks     []QuestionBlank
	OrderItems []QuestionOrderItem
	Matches    []QuestionMatch
}

// Populated lists the arms carrying at least one row, in write order.
func (v VariantSet) Populated() []VariantArm {
	var arms []VariantArm
	if len(v.Options) > 0 {
		arms = append(arms, ArmOptions)
	}
	if len(v.Blanks) > 0 {
		arms = append(arms, ArmBlanks)
	}
	if len(v.OrderItems) > 0 {
		arms = append(arms, ArmOrderItems)
	}
	if len(v.Matches) > 0 {
		arms = append(arms, ArmMatches)
	}
	return arms
}

// CheckArm rejects a set that populates any arm other than the one t selects.
// An empty set is accepted for every known type.
func (v VariantSet) CheckArm(t QuestionType) error {
	want := t.Arm()
	if want == ArmNone {
		return fmt.Errorf("%w: unknown question type %q", apperr.ErrMalformedPayload, t)
	}
	for _, arm := range v.Populated() {
		if arm != want {
			return fmt.Errorf("%w: %s question cannot carry %s", apperr.ErrMalformedPayload, t, arm)
		}
	}
	return nil
}

// ParseTolerance reads a free-text numeric tolerance. Anything that is not a
// finite float, including the empty string, "inf" and "NaN", yields
// DefaultNumericTolerance.
func ParseTolerance(s string) float64 {
	v, err := strconv.ParseFloat(strings.TrimSpace(s), 64)
	if err != nil || math.IsInf(v, 0) || math.IsNaN(v) {
		return DefaultNumericTolerance
	}
	return v
}

// Decompose splits a create payload into its base row and variant rows.
func Decompose(req CreateQuestionRequest) (Question, VariantSet) {
	base := Question{
		SubjectID:    req.SubjectID,
		TopicID:      req.TopicID,
		QuestionType: req.QuestionType,
	}
	req.QuestionContent.applyTo(&base)
	return base, req.QuestionContent.Variants()
}

func (c QuestionContent) applyTo(q *Question) {
	q.QuestionText = c.QuestionText
	q.QuestionImagePath = c.QuestionImagePath
	q.Explanation = c.Explanation
	q.Difficulty = c.Difficulty
	q.Points = c.Points
	q.Source = c.Source
}

// Variants converts the submitted variant inputs to rows. Explicit blanks come
// first; a numericData answer is folded into one extra blank at index 0.
// Match pairs are numbered by payload position.
func (c QuestionContent) Variants() VariantSet {
	var v VariantSet

	for _, o := range c.Options {
		v.Options = append(v.Options, QuestionOption{
			OptionText:      o.OptionText,
			OptionImagePath: o.OptionImagePath,
			IsCorrect:       o.IsCorrect,
			DisplayOrder:    o.DisplayOrder,
		})
	}

	for _, b := range c.Blanks {
		inputType := b.InputType
		if inputType == "" {
			inputType = InputTypeInput
		}
		v.Blanks = append(v.Blanks, QuestionBlank{
			BlankIndex:        b.BlankIndex,
			CorrectAnswer:     b.CorrectAnswer,
			AcceptableAnswers: b.AcceptableAnswers,
			IsNumeric:         b.IsNumeric,
			NumericTolerance:  b.NumericTolerance,
			Unit:              b.Unit,
			InputType:         inputType,
			DropdownOptions:   b.DropdownOptions,
		})
	}

	if n := c.NumericData; n != nil {
		tolerance := ParseTolerance(n.Tolerance)
		v.Blanks = append(v.Blanks, QuestionBlank{
			BlankIndex:       0,
			CorrectAnswer:    n.CorrectAnswer,
			IsNumeric:        true,
			NumericTolerance: &tolerance,
			Unit:             n.Unit,
			InputType:        InputTypeInput,
		})
	}

	for _, item := range c.OrderItems {
		v.OrderItems = append(v.OrderItems, QuestionOrderItem{
			ItemText:        item.Text,
			CorrectPosition: item.CorrectPosition,
		})
	}

	for i, m := range c.MatchPairs {
		v.Matches = append(v.Matches, QuestionMatch{
			LeftItem:       m.LeftItem,
			RightItem:      m.RightItem,
			LeftImagePath:  m.LeftImagePath,
			RightImagePath: m.RightImagePath,
			DisplayOrder:   i,
		})
	}

	return v
}

// Compose assembles the question aggregate. Every arm is non-nil and sorted
// by its order key; rows with equal keys keep their relative order.
func Compose(base Question, v VariantSet) QuestionWithDetails {
	q := QuestionWithDetails{
		Question:   base,
		Options:    append([]QuestionOption{}, v.Options...),
		Blanks:     append([]QuestionBlank{}, v.Blanks...),
		OrderItems: append([]QuestionOrderItem{}, v.OrderItems...),
		Matches:    append([]QuestionMatch{}, v.Matches...),
	}

	sort.SliceStable(q.Options, func(i, j int) bool {
		return q.Options[i].DisplayOrder < q.Options[j].DisplayOrder
	})
	sort.SliceStable(q.Blanks, func(i, j int) bool {
		return q.Blanks[i].BlankIndex < q.Blanks[j].BlankIndex
	})
	sort.SliceStable(q.OrderItems, func(i, j int) bool {
		return q.OrderItems[i].CorrectPosition < q.OrderItems[j].CorrectPosition
	})
	sort.SliceStable(q.Matches, func(i, j int) bool {
		return q.Matches[i].DisplayOrder < q.Matches[j].DisplayOrder
	})

	return q
}
