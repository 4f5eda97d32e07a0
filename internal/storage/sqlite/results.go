package sqlite

import (
	"context"
	"time"

	"quiz-platform/internal/result"
)

// UpsertResult runs as a single statement keyed by the unique (user_id,
// quiz_id) index, so concurrent submissions for the same pair cannot produce a
// second row; sqlite keeps the original rowid on the conflict path.
func (s *Store) UpsertResult(ctx context.Context, res result.Result) (result.Result, error) {
	if res.CompletedAt.IsZero() {
		res.CompletedAt = time.Now().UTC()
	}

	_, err := s.db.ExecContext(
		ctx,
		`INSERT INTO results (user_id, quiz_id, score, completed_at_unix)
		 VALUES (?, ?, ?, ?)
		 ON CONFLICT(user_id, quiz_id) DO UPDATE SET
			score = excluded.score,
			completed_at_unix = excluded.completed_at_unix`,
		res.UserID,
		res.QuizID,
		res.Score,
		res.CompletedAt.UnixNano(),
	)
	if err != nil {
		return result.Result{}, err
	}

	// LastInsertId is not meaningful on the conflict path; read the surviving
	// row back to report the retained identifier.
	var completedAtUnix int64
	err = s.db.QueryRowContext(
		ctx,
		`SELECT id, score, completed_at_unix FROM results WHERE user_id = ? AND quiz_id = ?`,
		res.UserID,
		res.QuizID,
	).Scan(&res.ID, &res.Score, &completedAtUnix)
	if err != nil {
		return result.Result{}, err
	}

	res.CompletedAt = time.Unix(0, completedAtUnix).UTC()
	return res, nil
}

func (s *Store) ListResultsForUser(ctx context.Context, userID int64) ([]result.Result, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, user_id, quiz_id, score, completed_at_unix FROM results WHERE user_id = ?`,
		userID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]result.Result, 0)
	for rows.Next() {
		var (
			item            result.Result
			completedAtUnix int64
		)
		if err := rows.Scan(&item.ID, &item.UserID, &item.QuizID, &item.Score, &completedAtUnix); err != nil {
			return nil, err
		}
		item.CompletedAt = time.Unix(0, completedAtUnix).UTC()
		results = append(results, item)
	}

	return results, rows.Err()
}

func (s *Store) ListAllResults(ctx context.Context) ([]result.DetailedResult, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT r.id, r.user_id, r.quiz_id, r.score, r.completed_at_unix,
			u.name, u.email, q.title
		 FROM results r
		 JOIN users u ON u.id = r.user_id
		 JOIN quizzes q ON q.id = r.quiz_id
		 ORDER BY r.user_id ASC, r.completed_at_unix DESC`,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	results := make([]result.DetailedResult, 0)
	for rows.Next() {
		var (
			item            result.DetailedResult
			completedAtUnix int64
		)
		if err := rows.Scan(
			&item.ID,
			&item.UserID,
			&item.QuizID,
			&item.Score,
			&completedAtUnix,
			&item.UserName,
			&item.UserEmail,
			&item.QuizTitle,
		); err != nil {
			return nil, err
		}
		item.CompletedAt = time.Unix(0, completedAtUnix).UTC()
		results = append(results, item)
	}

	return results, rows.Err()
}

func (s *Store) UpdateResultScore(ctx context.Context, resultID int64, score int) error {
	res, err := s.db.ExecContext(
		ctx,
		`UPDATE results SET score = ? WHERE id = ?`,
		score,
		resultID,
	)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return result.ErrResultNotFound
	}
	return nil
}

func (s *Store) QuizRoster(ctx context.Context, quizID int64) ([]result.RosterEntry, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT u.name, r.score, r.completed_at_unix
		 FROM results r
		 JOIN users u ON u.id = r.user_id
		 WHERE r.quiz_id = ?
		 ORDER BY r.completed_at_unix DESC`,
		quizID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	roster := make([]result.RosterEntry, 0)
	for rows.Next() {
		var (
			entry           result.RosterEntry
			completedAtUnix int64
		)
		if err := rows.Scan(&entry.Name, &entry.Score, &completedAtUnix); err != nil {
			return nil, err
		}
		entry.CompletedAt = time.Unix(0, completedAtUnix).UTC()
		roster = append(roster, entry)
	}

	return roster, rows.Err()
}
