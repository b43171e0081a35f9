package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stemsi/quizforge/internal/database"
	"github.com/stemsi/quizforge/internal/model"
)

const subjectColumns = `id, name, description, color, icon, created_at, updated_at`

type SubjectRepository struct {
	db *database.Handle
}

func NewSubjectRepository(db *database.Handle) *SubjectRepository {
	return &SubjectRepository{db: db}
}

func scanSubject(row rowScanner, s *model.Subject) error {
	return row.Scan(&s.ID, &s.Name, &s.Description, &s.Color, &s.Icon, ts(&s.CreatedAt), ts(&s.UpdatedAt))
}

func subjectColor(req model.SubjectRequest) string {
	if req.Color == "" {
		return model.DefaultSubjectColor
	}
	return req.Color
}

// List returns every subject, newest first.
func (r *SubjectRepository) List(ctx context.Context) ([]model.Subject, error) {
	subjects := []model.Subject{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		rows, err := q.QueryContext(ctx,
			`SELECT `+subjectColumns+` FROM subjects ORDER BY created_at DESC, id DESC`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var s model.Subject
			if err := scanSubject(rows, &s); err != nil {
				return err
			}
			subjects = append(subjects, s)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, classify(err)
	}
	return subjects, nil
}

func (r *SubjectRepository) GetByID(ctx context.Context, id int64) (*model.Subject, error) {
	s := &model.Subject{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		return scanSubject(q.QueryRowContext(ctx,
			`SELECT `+subjectColumns+` FROM subjects WHERE id = ?`, id), s)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("subject", id)
	}
	if err != nil {
		return nil, classify(err)
	}
	return s, nil
}

func (r *SubjectRepository) Create(ctx context.Context, req model.SubjectRequest) (*model.Subject, error) {
	var id int64
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx,
			`INSERT INTO subjects (name, description, color, icon) VALUES (?, ?, ?, ?)`,
			req.Name, req.Description, subjectColor(req), req.Icon)
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

func (r *SubjectRepository) Update(ctx context.Context, id int64, req model.SubjectRequest) (*model.Subject, error) {
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx,
			`UPDATE subjects
			 SET name = ?, description = ?, color = ?, icon = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			req.Name, req.Description, subjectColor(req), req.Icon, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		return expectAffected(n, "subject", id)
	})
	if err != nil {
		return nil, classify(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the subject with its topics, questions, quizzes, exams and
// their attempts.
func (r *SubjectRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "subjects", id)
}
