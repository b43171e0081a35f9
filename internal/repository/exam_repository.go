package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stemsi/quizforge/internal/database"
	"github.com/stemsi/quizforge/internal/model"
)

const examColumns = `id, subject_id, name, description, total_question_count, time_limit_minutes,
	shuffle_questions, shuffle_options, show_answers_after, passing_score_percent, created_at, updated_at`

// ExamRepository handles exam data access. Exams own their topic quota rows.
type ExamRepository struct {
	db *database.Handle
}

// NewExamRepository creates a new ExamRepository.
func NewExamRepository(db *database.Handle) *ExamRepository {
	return &ExamRepository{db: db}
}

func scanExam(row rowScanner, e *model.Exam) error {
	return row.Scan(&e.ID, &e.SubjectID, &e.Name, &e.Description, &e.TotalQuestionCount, &e.TimeLimitMinutes,
		&e.ShuffleQuestions, &e.ShuffleOptions, &e.ShowAnswersAfter, &e.PassingScorePercent,
		ts(&e.CreatedAt), ts(&e.UpdatedAt))
}

// ListBySubject returns the exam aggregates of a subject, newest first.
func (r *ExamRepository) ListBySubject(ctx context.Context, subjectID int64) ([]model.ExamWithTopics, error) {
	exams := []model.ExamWithTopics{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		bases, err := listExams(ctx, q, subjectID)
		if err != nil {
			return err
		}
		for _, base := range bases {
			topics, err := loadExamTopics(ctx, q, base.ID)
			if err != nil {
				return err
			}
			exams = append(exams, model.ExamWithTopics{Exam: base, Topics: topics})
		}
		return nil
	})
	if err != nil {
		return nil, classify(err)
	}
	return exams, nil
}

func listExams(ctx context.Context, q database.Querier, subjectID int64) ([]model.Exam, error) {
	rows, err := q.QueryContext(ctx,
		`SELECT `+examColumns+` FROM exams
		 WHERE subject_id = ?
		 ORDER BY created_at DESC, id DESC`, subjectID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var exams []model.Exam
	for rows.Next() {
		var e model.Exam
		if err := scanExam(rows, &e); err != nil {
			return nil, err
		}
		exams = append(exams, e)
	}
	return exams, rows.Err()
}

// GetByID retrieves an exam with its topic quotas.
func (r *ExamRepository) GetByID(ctx context.Context, id int64) (*model.ExamWithTopics, error) {
	out := &model.ExamWithTopics{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		if err := scanExam(q.QueryRowContext(ctx,
			`SELECT `+examColumns+` FROM exams WHERE id = ?`, id), &out.Exam); err != nil {
			return err
		}
		topics, err := loadExamTopics(ctx, q, id)
		out.Topics = topics
		return err
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("exam", id)
	}
	if err != nil {
		return nil, classify(err)
	}
	return out, nil
}

// Create inserts the exam and its topic quotas in one transaction. The
// transaction is finished before the aggregate is read back.
func (r *ExamRepository) Create(ctx context.Context, req model.CreateExamRequest) (*model.ExamWithTopics, error) {
	var id int64
	err := r.db.Tx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		res, err := tx.ExecContext(ctx,
			`INSERT INTO exams
			 (subject_id, name, description, total_question_count, time_limit_minutes,
			  shuffle_questions, shuffle_options, show_answers_after, passing_score_percent)
			 VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`,
			req.SubjectID, req.Name, req.Description, req.TotalQuestionCount, req.TimeLimitMinutes,
			req.ShuffleQuestions, req.ShuffleOptions, req.ShowAnswersAfter, req.PassingScorePercent,
		)
		if err != nil {
			return err
		}
		if id, err = res.LastInsertId(); err != nil {
			return err
		}
		return insertExamTopics(ctx, tx, id, req.Topics)
	})
	if err != nil {
		return nil, classify(err)
	}
	return r.GetByID(ctx, id)
}

// Update overwrites the exam and replaces all of its topic quotas.
func (r *ExamRepository) Update(ctx context.Context, id int64, req model.UpdateExamRequest) (*model.ExamWithTopics, error) {
	err := r.db.Tx(ctx, func(ctx context.Context, tx *sql.Tx) error {
		if _, err := tx.ExecContext(ctx, `DELETE FROM exam_topics WHERE exam_id = ?`, id); err != nil {
			return err
		}

		res, err := tx.ExecContext(ctx,
			`UPDATE exams
			 SET name = ?, description = ?, total_question_count = ?, time_limit_minutes = ?,
			     shuffle_questions = ?, shuffle_options = ?, show_answers_after = ?,
			     passing_score_percent = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			req.Name, req.Description, req.TotalQuestionCount, req.TimeLimitMinutes,
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
		if err := expectAffected(n, "exam", id); err != nil {
			return err
		}
		return insertExamTopics(ctx, tx, id, req.Topics)
	})
	if err != nil {
		return nil, classify(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the exam, its topic quotas and its attempts.
func (r *ExamRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "exams", id)
}

func insertExamTopics(ctx context.Context, q database.Querier, examID int64, topics []model.ExamTopicInput) error {
	for _, t := range topics {
		if _, err := q.ExecContext(ctx,
			`INSERT INTO exam_topics (exam_id, topic_id, question_count) VALUES (?, ?, ?)`,
			examID, t.TopicID, t.QuestionCount,
		); err != nil {
			return err
		}
	}
	return nil
}

func loadExamTopics(ctx context.Context, q database.Querier, examID int64) ([]model.ExamTopic, error) {
	topics := []model.ExamTopic{}
	err := queryEach(ctx, q,
		`SELECT et.id, et.exam_id, et.topic_id, t.name, et.question_count
		 FROM exam_topics et
		 JOIN topics t ON t.id = et.topic_id
		 WHERE et.exam_id = ?
		 ORDER BY t.name, et.id`,
		examID, func(rows *sql.Rows) error {
			var t model.ExamTopic
			if err := rows.Scan(&t.ID, &t.ExamID, &t.TopicID, &t.TopicName, &t.QuestionCount); err != nil {
				return err
			}
			topics = append(topics, t)
			return nil
		})
	return topics, err
}
