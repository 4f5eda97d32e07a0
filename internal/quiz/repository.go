package quiz

import "context"

type Repository interface {
	ListQuizzes(ctx context.Context) ([]QuizSummary, error)
	GetQuiz(ctx context.Context, id int64) (Quiz, error)
	CreateQuiz(ctx context.Context, q Quiz) (Quiz, error)
	// UpdateQuiz returns ErrQuizNotFound when no row was affected.
	UpdateQuiz(ctx context.Context, q Quiz) error
	// DeleteQuiz removes the quiz together with its questions and results in
	// one transaction. ErrQuizNotFound when the quiz row is absent.
	DeleteQuiz(ctx context.Context, id int64) error

	// ListQuestions returns an empty slice for a quiz with no questions,
	// including a quiz that does not exist.
	ListQuestions(ctx context.Context, quizID int64) ([]Question, error)
	CreateQuestion(ctx context.Context, q Question) (Question, error)
	UpdateQuestion(ctx context.Context, q Question) error
	DeleteQuestion(ctx context.Context, id int64) error
}
