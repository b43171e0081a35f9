package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/stemsi/quizforge/internal/database"
	"github.com/stemsi/quizforge/internal/model"
)

// AttemptRepository appends quiz and exam attempts. Attempts are never
// updated; they go away only with their quiz or exam.
type AttemptRepository struct {
	db *database.Handle
}

// NewAttemptRepository creates a new AttemptRepository.
func NewAttemptRepository(db *database.Handle) *AttemptRepository {
	return &AttemptRepository{db: db}
}

// startedAtArgs yields the two parameters of
// COALESCE(?, datetime('now', ?)): the caller's start time, or an offset
// back from completion by the time taken.
func startedAtArgs(res model.AttemptResult) (any, string) {
	offset := fmt.Sprintf("-%d seconds", res.TimeTakenSeconds)
	if res.StartedAt == nil {
		return nil, offset
	}
	return sqliteTime(*res.StartedAt), offset
}

// SaveQuiz records a completed quiz attempt. An unknown quiz is a
// constraint violation.
func (r *AttemptRepository) SaveQuiz(ctx context.Context, req model.SaveQuizAttemptRequest) (*model.QuizAttempt, error) {
	a := &model.QuizAttempt{}
	started, offset := startedAtArgs(req.AttemptResult)

	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx,
			`INSERT INTO quiz_attempts
			 (quiz_id, started_at, completed_at, score, max_score, percentage, time_taken_seconds)
			 VALUES (?, COALESCE(?, datetime('now', ?)), CURRENT_TIMESTAMP, ?, ?, ?, ?)`,
			req.QuizID, started, offset, req.Score, req.MaxScore, req.Percentage, req.TimeTakenSeconds,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		return q.QueryRowContext(ctx,
			`SELECT id, quiz_id, started_at, completed_at, COALESCE(score, 0), COALESCE(max_score, 0),
			        COALESCE(percentage, 0), COALESCE(time_taken_seconds, 0)
			 FROM quiz_attempts WHERE id = ?`, id,
		).Scan(&a.ID, &a.QuizID, ts(&a.StartedAt), ts(&a.CompletedAt), &a.Score, &a.MaxScore, &a.Percentage, &a.TimeTakenSeconds)
	})
	if err != nil {
		return nil, classify(err)
	}
	return a, nil
}

// SaveExam records a completed exam attempt.
func (r *AttemptRepository) SaveExam(ctx context.Context, req model.SaveExamAttemptRequest) (*model.ExamAttempt, error) {
	a := &model.ExamAttempt{}
	started, offset := startedAtArgs(req.AttemptResult)

	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx,
			`INSERT INTO exam_attempts
			 (exam_id, started_at, completed_at, score, max_score, percentage, time_taken_seconds)
			 VALUES (?, COALESCE(?, datetime('now', ?)), CURRENT_TIMESTAMP, ?, ?, ?, ?)`,
			req.ExamID, started, offset, req.Score, req.MaxScore, req.Percentage, req.TimeTakenSeconds,
		)
		if err != nil {
			return err
		}
		id, err := res.LastInsertId()
		if err != nil {
			return err
		}
		return q.QueryRowContext(ctx,
			`SELECT id, exam_id, started_at, completed_at, COALESCE(score, 0), COALESCE(max_score, 0),
			        COALESCE(percentage, 0), COALESCE(time_taken_seconds, 0)
			 FROM exam_attempts WHERE id = ?`, id,
		).Scan(&a.ID, &a.ExamID, ts(&a.StartedAt), ts(&a.CompletedAt), &a.Score, &a.MaxScore, &a.Percentage, &a.TimeTakenSeconds)
	})
	if err != nil {
		return nil, classify(err)
	}
	return a, nil
}

// ListQuiz returns quiz attempts newest first, optionally for one quiz
// (quizID 0 lists all). Passed is judged against the quiz's current
// passing score.
func (r *AttemptRepository) ListQuiz(ctx context.Context, quizID int64) ([]model.QuizAttemptDetail, error) {
	attempts := []model.QuizAttemptDetail{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		return queryEach(ctx, q,
			`SELECT qa.id, qa.quiz_id, qa.started_at, qa.completed_at, COALESCE(qa.score, 0), COALESCE(qa.max_score, 0),
			        COALESCE(qa.percentage, 0), COALESCE(qa.time_taken_seconds, 0),
			        z.name, t.name, s.name,
			        COALESCE(qa.percentage, 0) >= z.passing_score_percent
			 FROM quiz_attempts qa
			 JOIN quizzes z ON z.id = qa.quiz_id
			 JOIN topics t ON t.id = z.topic_id
			 JOIN subjects s ON s.id = t.subject_id
			 WHERE ?1 = 0 OR qa.quiz_id = ?1
			 ORDER BY qa.completed_at DESC, qa.id DESC`,
			quizID, func(rows *sql.Rows) error {
				var a model.QuizAttemptDetail
				if err := rows.Scan(&a.ID, &a.QuizID, ts(&a.StartedAt), ts(&a.CompletedAt), &a.Score, &a.MaxScore,
					&a.Percentage, &a.TimeTakenSeconds, &a.QuizName, &a.TopicName, &a.SubjectName, &a.Passed); err != nil {
					return err
				}
				attempts = append(attempts, a)
				return nil
			})
	})
	if err != nil {
		return nil, classify(err)
	}
	return attempts, nil
}

// ListExam returns exam attempts newest first, optionally for one exam.
func (r *AttemptRepository) ListExam(ctx context.Context, examID int64) ([]model.ExamAttemptDetail, error) {
	attempts := []model.ExamAttemptDetail{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		return queryEach(ctx, q,
			`SELECT ea.id, ea.exam_id, ea.started_at, ea.completed_at, COALESCE(ea.score, 0), COALESCE(ea.max_score, 0),
			        COALESCE(ea.percentage, 0), COALESCE(ea.time_taken_seconds, 0),
			        e.name, s.name,
			        COALESCE(ea.percentage, 0) >= e.passing_score_percent
			 FROM exam_attempts ea
			 JOIN exams e ON e.id = ea.exam_id
			 JOIN subjects s ON s.id = e.subject_id
			 WHERE ?1 = 0 OR ea.exam_id = ?1
			 ORDER BY ea.completed_at DESC, ea.id DESC`,
			examID, func(rows *sql.Rows) error {
				var a model.ExamAttemptDetail
				if err := rows.Scan(&a.ID, &a.ExamID, ts(&a.StartedAt), ts(&a.CompletedAt), &a.Score, &a.MaxScore,
					&a.Percentage, &a.TimeTakenSeconds, &a.ExamName, &a.SubjectName, &a.Passed); err != nil {
					return err
				}
				attempts = append(attempts, a)
				return nil
			})
	})
	if err != nil {
		return nil, classify(err)
	}
	return attempts, nil
}
