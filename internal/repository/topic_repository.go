package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/stemsi/quizforge/internal/database"
	"github.com/stemsi/quizforge/internal/model"
)

const topicColumns = `id, subject_id, name, description, week_number, created_at, updated_at`

type TopicRepository struct {
	db *database.Handle
}

func NewTopicRepository(db *database.Handle) *TopicRepository {
	return &TopicRepository{db: db}
}

func scanTopic(row rowScanner, t *model.Topic) error {
	return row.Scan(&t.ID, &t.SubjectID, &t.Name, &t.Description, &t.WeekNumber, ts(&t.CreatedAt), ts(&t.UpdatedAt))
}

// ListBySubject returns the topics of a subject by week, then newest first.
// A subject without topics, or an unknown subject, yields an empty slice.
func (r *TopicRepository) ListBySubject(ctx context.Context, subjectID int64) ([]model.Topic, error) {
	topics := []model.Topic{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		rows, err := q.QueryContext(ctx,
			`SELECT `+topicColumns+` FROM topics
			 WHERE subject_id = ?
			 ORDER BY week_number ASC, created_at DESC, id DESC`, subjectID)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var t model.Topic
			if err := scanTopic(rows, &t); err != nil {
				return err
			}
			topics = append(topics, t)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, classify(err)
	}
	return topics, nil
}

func (r *TopicRepository) GetByID(ctx context.Context, id int64) (*model.Topic, error) {
	t := &model.Topic{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		return scanTopic(q.QueryRowContext(ctx,
			`SELECT `+topicColumns+` FROM topics WHERE id = ?`, id), t)
	})
	if errors.Is(err, sql.ErrNoRows) {
		return nil, notFound("topic", id)
	}
	if err != nil {
		return nil, classify(err)
	}
	return t, nil
}

func (r *TopicRepository) Create(ctx context.Context, req model.CreateTopicRequest) (*model.Topic, error) {
	var id int64
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx,
			`INSERT INTO topics (subject_id, name, description, week_number) VALUES (?, ?, ?, ?)`,
			req.SubjectID, req.Name, req.Description, req.WeekNumber)
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

func (r *TopicRepository) Update(ctx context.Context, id int64, req model.UpdateTopicRequest) (*model.Topic, error) {
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		res, err := q.ExecContext(ctx,
			`UPDATE topics
			 SET name = ?, description = ?, week_number = ?, updated_at = CURRENT_TIMESTAMP
			 WHERE id = ?`,
			req.Name, req.Description, req.WeekNumber, id)
		if err != nil {
			return err
		}
		n, err := res.RowsAffected()
		if err != nil {
			return err
		}
		return expectAffected(n, "topic", id)
	})
	if err != nil {
		return nil, classify(err)
	}
	return r.GetByID(ctx, id)
}

// Delete removes the topic with its questions and quizzes.
func (r *TopicRepository) Delete(ctx context.Context, id int64) error {
	return deleteByID(ctx, r.db, "topics", id)
}
