package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stemsi/quizforge/internal/database"
	"github.com/stemsi/quizforge/internal/model"
)

const questionColumns = `id, subject_id, topic_id, question_type, question_text, question_image_path,
	explanation, difficulty, points, source, created_at, updated_at`

// QuestionRepository stores questions together with their variant rows.
type QuestionRepository struct {
	db *database.Handle
}

// NewQuestionRepository creates a new QuestionRepository.
func NewQuestionRepository(db *database.Handle) *QuestionRepository {
	return &QuestionRepository{db: db}
}

func scanQuestion(row rowScanner, q *model.Question) error {
	return row.Scan(&q.ID, &q.SubjectID, &q.TopicID, &q.QuestionType, &q.QuestionText, &q.QuestionImagePath,
		&q.Explanation, &q.Difficulty, &q.Points, &q.Source, ts(&q.CreatedAt), ts(&q.UpdatedAt))
}

// ListByTopic returns the question aggregates of a topic, newest first.
func (r *QuestionRepository) ListByTopic(ctx context.Context, topicID int64) ([]model.QuestionWithDetails, error) {
	questions := []model.QuestionWithDetails{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		bases, err := listQuestions(ctx, q, topicID)
		if err != nil {
			return err
		}
		for _, base := range bases {
			v, err := loadVariants(ctx, q, base.ID)
			if err != nil {
				return err
			}
			questions = append(questions, model.Compose(base, v))
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return questions, nil
}

// listQuestions drains the base rows before any variant query runs on the
// shared connection.
func listQuestions(ctx context.Context, q database.Querier, topicID int64) ([]model.Question, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+questionColumns+` FROM questions
		 WHERE topic_id = ?
		 ORDER BY created_at DESC, id DESC`, topicID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var bases []model.Question
	for rows.Next() {
		var base model.Question
		if err := scanQuestion(rows, &base); err != nil {
			return nil, err
		}
		bases = append(bases, base)
	}
	return bases, rows.Err()
}

// GetByID returns the question aggregate.
func (r *QuestionRepository) GetByID(ctx context.Context, id int64) (*model.QuestionWithDetails, error) {
	var out model.QuestionWithDetails
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		var base model.Question
		err := scanQuestion(q.QueryRowContext(ctx,
			`SELECT `+questionColumns+` FROM questions WHERE id = ?`, id), &base)
		if err != nil {
			return err
		}
		v, err := loadVariants(ctx, q, id)
		if err != nil {
			return err
		}
		out = model.Compose(base, v)
		return nil
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("question", id)
	}
	if err != nil {
		return nil, classify(err)
	}
	return &out, nil
}

// Create writes the base row and the variant rows in one transaction, then
// reads the aggregate back. A payload populating an arm the question type
// does not own is rejected before anything is written.
func (r *QuestionRepository) Create(ctx context.Context, req model.CreateQuestionRequest) (*model.QuestionWithDetails, error) {
	base, variants := model.Decompose(req)
	if err := variants.CheckArm(base.QuestionType); err != nil {
		return nil, err
	}

	var id int64
	err := r.db.Tx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO questions
			 (subject_id, topic_id, question_type, question_text, question_image_path, explanation, difficulty, points, source)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			base.SubjectID, base.TopicID, base.QuestionType, base.QuestionText, base.QuestionImagePath,
			base.Explanation, base.Difficulty, base.Points, base.Source,
		)
		if err != nil {
			return err
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		return insertVariants(ctx, tx, id, variants)
	})
	if err != nil {
		return nil, classify(err)
	}
	return r.GetByID(ctx, id)
}

// Update replaces the base fields and every variant row of a question in
// one transaction. The question type is fixed at creation.
func (r *QuestionRepository) Update(ctx context.Context, id int64, req model.UpdateQuestionRequest) (*model.QuestionWithDetails, error) {
	variants := req.Variants()

	err := r.db.Tx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if err := deleteVariants(ctx, tx, id); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE questions
			 SET question_text = ?, question_image_path = ?, explanation = ?, difficulty = ?,
			     points = ?, source = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			req.QuestionText, req.QuestionImagePath, req.Explanation, req.Difficulty,
			req.Points, req.Source, id,
		)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		if err := expectAffected(n, "question", id); err != nil {
			return err
		}

		var qt model.QuestionType
		if err := tx.QueryRowContext(ctx, `SELECT question_type FROM questions WHERE id = ?`, id).Scan(&qt); err != nil {
			return err
		}
		if err := variants.CheckArm(qt); err != nil {
			return err
		}
		return insertVariants(ctx, tx, id, variants)
	})
	if err != nil {
		return nil, classify(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the question and its variant rows.
func (r *QuestionRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "questions", id)
}

var variantTables = []string{
	"question_options",
	"question_blanks",
	"question_order_items",
	"question_matches",
}

func deleteVariants(ctx context.Context, q database.Querier, questionID int64) error {
	for _, table := range variantTables {
		if _, err := q.ExecContext(ctx, `DELETE FROM `+table+` WHERE question_id = ?`, questionID); err != nil {
			return err
		}
	}
	return nil
}

// insertVariants writes options, then blanks, then order items, then matches.
func insertVariants(ctx context.Context, q database.Querier, questionID int64, v model.VariantSet) error {
	for _, o := range v.Options {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO question_options (question_id, option_text, option_image_path, is_correct, display_order)
			 VALUES (?, ?, ?, ?, ?)`,
			questionID, o.OptionText, o.OptionImagePath, o.IsCorrect, o.DisplayOrder,
		); err != nil {
			return err
		}
	}

	for _, b := range v.Blanks {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO question_blanks
			 (question_id, blank_index, correct_answer, acceptable_answers, is_numeric, numeric_tolerance, unit, input_type, dropdown_options)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			questionID, b.BlankIndex, b.CorrectAnswer, b.AcceptableAnswers, b.IsNumeric, b.NumericTolerance,
			b.Unit, b.InputType, b.DropdownOptions,
		); err != nil {
			return err
		}
	}

	for _, item := range v.OrderItems {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO question_order_items (question_id, item_text, correct_position) VALUES (?, ?, ?)`,
			questionID, item.ItemText, item.CorrectPosition,
		); err != nil {
			return err
		}
	}

	for _, m := range v.Matches {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO question_matches (question_id, left_item, right_item, left_image_path, right_image_path, display_order)
			 VALUES (?, ?, ?, ?, ?, ?)`,
			questionID, m.LeftItem, m.RightItem, m.LeftImagePath, m.RightImagePath, m.DisplayOrder,
		); err != nil {
			return err
		}
	}
	return nil
}

func loadVariants(ctx context.Context, q database.Querier, questionID int64) (model.VariantSet, error) {
	var v model.VariantSet

	err := queryEach(ctx, q,
		`SELECT id, question_id, option_text, option_image_path, is_correct, display_order
		 FROM question_options WHERE question_id = ? ORDER BY display_order, id`,
		questionID, func(rows *sql.Rows) error {
			var o model.QuestionOption
			if err := rows.Scan(&o.ID, &o.QuestionID, &o.OptionText, &o.OptionImagePath, &o.IsCorrect, &o.DisplayOrder); err != nil {
				return err
			}
			v.Options = append(v.Options, o)
			return nil
		})
	if err != nil {
		return v, err
	}

	err = queryEach(ctx, q,
		`SELECT id, question_id, blank_index, correct_answer, acceptable_answers, is_numeric,
		        numeric_tolerance, unit, input_type, dropdown_options
		 FROM question_blanks WHERE question_id = ? ORDER BY blank_index, id`,
		questionID, func(rows *sql.Rows) error {
			var b model.QuestionBlank
			if err := rows.Scan(&b.ID, &b.QuestionID, &b.BlankIndex, &b.CorrectAnswer, &b.AcceptableAnswers, &b.IsNumeric,
				&b.NumericTolerance, &b.Unit, &b.InputType, &b.DropdownOptions); err != nil {
				return err
			}
			v.Blanks = append(v.Blanks, b)
			return nil
		})
	if err != nil {
		return v, err
	}

	err = queryEach(ctx, q,
		`SELECT id, question_id, item_text, correct_position
		 FROM question_order_items WHERE question_id = ? ORDER BY correct_position, id`,
		questionID, func(rows *sql.Rows) error {
			var item model.QuestionOrderItem
			if err := rows.Scan(&item.ID, &item.QuestionID, &item.ItemText, &item.CorrectPosition); err != nil {
				return err
			}
			v.OrderItems = append(v.OrderItems, item)
			return nil
		})
	if err != nil {
		return v, err
	}

	err = queryEach(ctx, q,
		`SELECT id, question_id, left_item, right_item, left_image_path, right_image_path, display_order
		 FROM question_matches WHERE question_id = ? ORDER BY display_order, id`,
		questionID, func(rows *sql.Rows) error {
			var m model.QuestionMatch
			if err := rows.Scan(&m.ID, &m.QuestionID, &m.LeftItem, &m.RightItem, &m.LeftImagePath, &m.RightImagePath, &m.DisplayOrder); err != nil {
				return err
			}
			v.Matches = append(v.Matches, m)
			return nil
		})
	return v, err
}

// queryEach runs query and calls fn for every row.
func queryEach(ctx context.Context, q database.Querier, query string, arg any, fn func(*sql.Rows) error) error {
	rows, err := q.QueryContext(ctx, query, arg)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		if err := fn(rows); err != nil {
			return err
		}
	}
	return rows.Err()
}
