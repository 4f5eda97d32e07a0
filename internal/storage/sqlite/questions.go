package sqlite

import (
	"context"
	"encoding/json"

	"quiz-platform/internal/quiz"
)

// Options are persisted as one JSON-encoded text column and decoded back to a
// slice on every read.

func encodeOptions(options []string) (string, error) {
	encoded, err := json.Marshal(options)
	if err != nil {
		return "", err
	}
	return string(encoded), nil
}

func decodeOptions(encoded string) ([]string, error) {
	var options []string
	if err := json.Unmarshal([]byte(encoded), &options); err != nil {
		return nil, err
	}
	return options, nil
}

func (s *Store) ListQuestions(ctx context.Context, quizID int64) ([]quiz.Question, error) {
	rows, err := s.db.QueryContext(
		ctx,
		`SELECT id, quiz_id, question_text, options_json, correct_answer
		 FROM questions
		 WHERE quiz_id = ?
		 ORDER BY id ASC`,
		quizID,
	)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	// An unknown quiz yields an empty slice, not an error.
	questions := make([]quiz.Question, 0)
	for rows.Next() {
		var (
			question    quiz.Question
			optionsJSON string
		)
		if err := rows.Scan(&question.ID, &question.QuizID, &question.Text, &optionsJSON, &question.CorrectAnswer); err != nil {
			return nil, err
		}

		question.Options, err = decodeOptions(optionsJSON)
		if err != nil {
			return nil, err
		}
		questions = append(questions, question)
	}

	return questions, rows.Err()
}

func (s *Store) CreateQuestion(ctx context.Context, q quiz.Question) (quiz.Question, error) {
	optionsJSON, err := encodeOptions(q.Options)
	if err != nil {
		return quiz.Question{}, err
	}

	res, err := s.db.ExecContext(
		ctx,
		`INSERT INTO questions (quiz_id, question_text, options_json, correct_answer)
		 VALUES (?, ?, ?, ?)`,
		q.QuizID,
		q.Text,
		optionsJSON,
		q.CorrectAnswer,
	)
	if err != nil {
		return quiz.Question{}, err
	}

	id, err := res.LastInsertId()
	if err != nil {
		return quiz.Question{}, err
	}
	q.ID = id
	return q, nil
}

func (s *Store) UpdateQuestion(ctx context.Context, q quiz.Question) error {
	optionsJSON, err := encodeOptions(q.Options)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(
		ctx,
		`UPDATE questions SET question_text = ?, options_json = ?, correct_answer = ? WHERE id = ?`,
		q.Text,
		optionsJSON,
		q.CorrectAnswer,
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
		return quiz.ErrQuestionNotFound
	}
	return nil
}

func (s *Store) DeleteQuestion(ctx context.Context, id int64) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM questions WHERE id = ?`, id)
	if err != nil {
		return err
	}

	affected, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return quiz.ErrQuestionNotFound
	}
	return nil
}
