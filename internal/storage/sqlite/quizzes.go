package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"quiz-platform/internal/quiz"
)

func (s *Store) ListQuizzes(ctx context.Context) ([]quiz.QuizSummary, error) {
	// completed_count is derived per read: distinct users with a result.
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT q.id, q.title, q.description, q.created_at_unix,
			(SELECT COUNT(DISTINCT r.user_id) FROM results r WHERE r.quiz_id = q.id) AS completed_count
		 FROM quizzes q
		 ORDER BY q.created_at_unix DESC, q.id DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	summaries := make([]quiz.QuizSummary, 0)
	for rows.Next() {
		var (
			item          quiz.QuizSummary
			createdAtUnix int64
		)
		if err := rows.Scan(&item.ID, &item.Title, &item.Description, &createdAtUnix, &item.CompletedCount); err != nil {
			return nil, err
		}
		item.CreatedAt = time.Unix(0, createdAtUnix).UTC()
		summaries = append(summaries, item)
	}

	return summaries, rows.Err()
}

func (s *Store) GetQuiz(ctx context.Context, id int64) (quiz.Quiz, error) {
	var (
		item          quiz.Quiz
		createdAtUnix int64
	)
	err := s.db.QueryRowContext(
		ctx,
		`SELECT id, title, description, created_at_unix FROM quizzes WHERE id = ?`,
		id,
	).Scan(&item.ID, &item.Title, &item.Description, &createdAtUnix)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return quiz.Quiz{}, quiz.ErrQuizNotFound
		}
		return quiz.Quiz{}, err
	}

	item.CreatedAt = time.Unix(0, createdAtUnix).UTC()
	return item, nil
}

func (s *Store) CreateQuiz(ctx context.Context, q quiz.Quiz) (quiz.Quiz, error) {
	if q.CreatedAt.IsZero() {
		q.CreatedAt = time.Now().UTC()
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO quizzes (title, description, created_at_unix) VALUES (?, ?, ?)`,
		q.Title,
		q.Description,
		q.CreatedAt.UnixNano(),
	)
	if err != nil {
		return quiz.Quiz{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return quiz.Quiz{}, err
	}
	q.ID = id
	return q, nil
}

func (s *Store) UpdateQuiz(ctx context.Context, q quiz.Quiz) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE quizzes SET title = ?, description = ? WHERE id = ?`,
		q.Title,
		q.Description,
		q.ID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return quiz.ErrQuizNotFound
	}
	return nil
}

// DeleteQuiz removes the quiz's questions and results together with the quiz
// row in one transaction, so a fault cannot leave orphaned children behind.
func (s *Store) DeleteQuiz(ctx context.Context, id int64) error {
	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM questions WHERE quiz_id = ?`, id); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM results WHERE quiz_id = ?`, id); err != nil {
		return err
	}

	res, err := tx.ExecContext(ctx, `DELETE FROM quizzes WHERE id = ?`, id)
	if err != nil {
		return err
	}
	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		// Rolls back via the deferred Rollback.
		return quiz.ErrQuizNotFound
	}

	return tx.Commit()
}
