package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stemsi/quizforge/internal/database"
	"github.com/stemsi/quizforge/internal/model"
)

const quizColumns = `id, topic_id, name, description, question_count, time_limit_minutes,
	shuffle_questions, shuffle_options, show_answers_after, passing_score_percent, created_at, updated_at`

// QuizRepository handles quiz data access.
type QuizRepository struct {
	db *database.Handle
}

// NewQuizRepository creates a new QuizRepository.
func NewQuizRepository(db *database.Handle) *QuizRepository {
	return &QuizRepository{db: db}
}

func scanQuiz(row rowScanner, z *model.Quiz) error {
	return row.Scan(&z.ID, &z.TopicID, &z.Name, &z.Description, &z.QuestionCount, &z.TimeLimitMinutes,
		&z.ShuffleQuestions, &z.ShuffleOptions, &z.ShowAnswersAfter, &z.PassingScorePercent,
		ts(&z.CreatedAt), ts(&z.UpdatedAt))
}

// ListByTopic returns the quizzes of a topic, newest first.
func (r *QuizRepository) ListByTopic(ctx context.Context, topicID int64) ([]model.Quiz, error) {
	quizzes := []model.Quiz{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		rows, err := q.QueryContext(ctx,
			`SELECT `+quizColumns+` FROM quizzes
			 WHERE topic_id = ?
			 ORDER BY created_at DESC, id DESC`, topicID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var z model.Quiz
			if err := scanQuiz(rows, &z); err != nil {
				return err
			}
			quizzes = append(quizzes, z)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, classify(err)
	}
	return quizzes, nil
}

// GetByID retrieves a quiz by its ID.
func (r *QuizRepository) GetByID(ctx context.Context, id int64) (*model.Quiz, error) {
	z := &model.Quiz{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		return scanQuiz(q.QueryRowContext(ctx,
			`SELECT `+quizColumns+` FROM quizzes WHERE id = ?`, id), z)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("quiz", id)
	}
	if err != nil {
		return nil, classify(err)
	}
	return z, nil
}

// Create inserts a new quiz and returns it as stored.
func (r *QuizRepository) Create(ctx context.Context, req model.CreateQuizRequest) (*model.Quiz, error) {
	var id int64
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx,
			`INSERT INTO quizzes
			 (topic_id, name, description, question_count, time_limit_minutes,
			  shuffle_questions, shuffle_options, show_answers_after, passing_score_percent)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			req.TopicID, req.Name, req.Description, req.QuestionCount, req.TimeLimitMinutes,
			req.ShuffleQuestions, req.ShuffleOptions, req.ShowAnswersAfter, req.PassingScorePercent,
		)
		if err != nil {
			return err
		}
		id, err = res.LastInsertId()
		return err
	})
	if err != nil {
		return nil, classify(err)
	}
	return r.GetByID(ctx, id)
}

// Update overwrites a quiz's settings. A quiz stays on its topic.
func (r *QuizRepository) Update(ctx context.Context, id int64, req model.UpdateQuizRequest) (*model.Quiz, error) {
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx,
			`UPDATE quizzes
			 SET name = ?, description = ?, question_count = ?, time_limit_minutes = ?,
			     shuffle_questions = ?, shuffle_options = ?, show_answers_after = ?,
			     passing_score_percent = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			req.Name, req.Description, req.QuestionCount, req.TimeLimitMinutes,
			req.ShuffleQuestions, req.ShuffleOptions, req.ShowAnswersAfter,
			req.PassingScorePercent, id,
		)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		return expectAffected(n, "quiz", id)
	})
	if err != nil {
		return nil, classify(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the quiz and its attempts.
func (r *QuizRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "quizzes", id)
}
