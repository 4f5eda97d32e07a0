package sqlite

import (
	"context"
)

func (s *Store) initSchema(ctx context.Context) error {
	// No FK constraints; ownership is enforced by the application so the
	// transactional cascade delete stays fully under its control.
	statements := []string{
		`CREATE TABLE IF NOT EXISTS users (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			name TEXT NOT NULL,
			email TEXT NOT NULL UNIQUE,
			password TEXT NOT NULL,
			role TEXT NOT NULL DEFAULT 'user' CHECK(role IN ('admin', 'user')),
			created_at_unix INTEGER NOT NULL,
			updated_at_unix INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS quizzes (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			title TEXT NOT NULL,
			description TEXT NOT NULL,
			created_at_unix INTEGER NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS questions (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			quiz_id INTEGER NOT NULL,
			question_text TEXT NOT NULL,
			options_json TEXT NOT NULL,
			correct_answer TEXT NOT NULL
		);`,
		`CREATE TABLE IF NOT EXISTS results (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			user_id INTEGER NOT NULL,
			quiz_id INTEGER NOT NULL,
			score INTEGER NOT NULL,
			completed_at_unix INTEGER NOT NULL,
			-- Backs the single-statement upsert: one result per (user, quiz).
			UNIQUE (user_id, quiz_id)
		);`,
		`CREATE INDEX IF NOT EXISTS idx_questions_quiz ON questions(quiz_id);`,
		`CREATE INDEX IF NOT EXISTS idx_results_quiz ON results(quiz_id);`,
		`CREATE INDEX IF NOT EXISTS idx_quizzes_created_at ON quizzes(created_at_unix DESC);`,
	}

	for _, stmt := range statements {
		if _, err := s.db.ExecContext(ctx, stmt); err != nil {
			return err
		}
	}
	return nil
}
