package repository

import (
	"context"

	"github.com/stemsi/quizforge/internal/database"
	"github.com/stemsi/quizforge/internal/model"
)

// PerformanceRepository computes read-only pass-rate summaries over
// completed attempts. Groups without attempts are left out, so every
// division below has a positive denominator.
type PerformanceRepository struct {
	db *database.Handle
}

// NewPerformanceRepository creates a new PerformanceRepository.
func NewPerformanceRepository(db *database.Handle) *PerformanceRepository {
	return &PerformanceRepository{db: db}
}

// BySubject summarizes exam attempts per subject, best average first.
func (r *PerformanceRepository) BySubject(ctx context.Context) ([]model.SubjectPerformance, error) {
	stats := []model.SubjectPerformance{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		rows, err := q.QueryContext(ctx,
			`SELECT s.id, s.name, COUNT(ea.id), AVG(ea.percentage),
			        SUM(CASE WHEN ea.percentage >= e.passing_score_percent THEN 1 ELSE 0 END) * 100.0 / COUNT(ea.id)
			 FROM subjects s
			 JOIN exams e ON e.subject_id = s.id
			 JOIN exam_attempts ea ON ea.exam_id = e.id
			 WHERE ea.completed_at IS NOT NULL AND ea.percentage IS NOT NULL
			 GROUP BY s.id, s.name
			 HAVING COUNT(ea.id) > 0
			 ORDER BY 4 DESC, s.id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p model.SubjectPerformance
			if err := rows.Scan(&p.SubjectID, &p.SubjectName, &p.Attempts, &p.AverageScore, &p.PassRate); err != nil {
				return err
			}
			stats = append(stats, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, classify(err)
	}
	return stats, nil
}

// ByTopic summarizes quiz attempts per topic, best average first.
func (r *PerformanceRepository) ByTopic(ctx context.Context) ([]model.TopicPerformance, error) {
	stats := []model.TopicPerformance{}
	err := r.db.Do(ctx, func(ctx context.Context, q database.Querier) error {
		rows, err := q.QueryContext(ctx,
			`SELECT t.id, t.name, s.name, COUNT(qa.id), AVG(qa.percentage),
			        SUM(CASE WHEN qa.percentage >= z.passing_score_percent THEN 1 ELSE 0 END) * 100.0 / COUNT(qa.id)
			 FROM topics t
			 JOIN subjects s ON s.id = t.subject_id
			 JOIN quizzes z ON z.topic_id = t.id
			 JOIN quiz_attempts qa ON qa.quiz_id = z.id
			 WHERE qa.completed_at IS NOT NULL AND qa.percentage IS NOT NULL
			 GROUP BY t.id, t.name, s.name
			 HAVING COUNT(qa.id) > 0
			 ORDER BY 5 DESC, t.id`)
		if err != nil {
			return err
		}
		defer rows.Close()

		for rows.Next() {
			var p model.TopicPerformance
			if err := rows.Scan(&p.TopicID, &p.TopicName, &p.SubjectName, &p.Attempts, &p.AverageScore, &p.PassRate); err != nil {
				return err
			}
			stats = append(stats, p)
		}
		return rows.Err()
	})
	if err != nil {
		return nil, classify(err)
	}
	return stats, nil
}
