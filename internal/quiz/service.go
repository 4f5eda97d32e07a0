package quiz

import (
	"context"
	"fmt"
	"strings"
	"time"
)

// Service manages the quiz aggregate: a quiz and the questions it owns.
type Service struct {
	quizzes Repository
}

func NewService(quizzes Repository) *Service {
	return &Service{quizzes: quizzes}
}

func (s *Service) ListQuizzes(ctx context.Context) ([]QuizSummary, error) {
	return s.quizzes.ListQuizzes(ctx)
}

func (s *Service) GetQuiz(ctx context.Context, id int64) (Quiz, error) {
	return s.quizzes.GetQuiz(ctx, id)
}

func (s *Service) CreateQuiz(ctx context.Context, title, description string) (Quiz, error) {
	title, description, err := validateQuiz(title, description)
	if err != nil {
		return Quiz{}, err
	}

	return s.quizzes.CreateQuiz(ctx, Quiz{
		Title:       title,
		Description: description,
		CreatedAt:   time.Now().UTC(),
	})
}

func (s *Service) UpdateQuiz(ctx context.Context, id int64, title, description string) (Quiz, error) {
	title, description, err := validateQuiz(title, description)
	if err != nil {
		return Quiz{}, err
	}

	if err := s.quizzes.UpdateQuiz(ctx, Quiz{ID: id, Title: title, Description: description}); err != nil {
		return Quiz{}, err
	}
	return s.quizzes.GetQuiz(ctx, id)
}

// DeleteQuiz cascades to the quiz's questions and results. The repository runs
// the cascade as one transaction, so a quiz never loses only part of its
// children.
func (s *Service) DeleteQuiz(ctx context.Context, id int64) error {
	return s.quizzes.DeleteQuiz(ctx, id)
}

// ListQuestions returns an empty slice for an unknown quiz. The admin edit
// screen iterates the result and relies on empty meaning "nothing to show".
func (s *Service) ListQuestions(ctx context.Context, quizID int64) ([]Question, error) {
	return s.quizzes.ListQuestions(ctx, quizID)
}

func (s *Service) CreateQuestion(ctx context.Context, quizID int64, text string, options []string, correctAnswer string) (Question, error) {
	question := Question{
		QuizID:        quizID,
		Text:          strings.TrimSpace(text),
		Options:       options,
		CorrectAnswer: correctAnswer,
	}
	if err := validateQuestion(question); err != nil {
		return Question{}, err
	}
	return s.quizzes.CreateQuestion(ctx, question)
}

func (s *Service) UpdateQuestion(ctx context.Context, id int64, text string, options []string, correctAnswer string) (Question, error) {
	question := Question{
		ID:            id,
		Text:          strings.TrimSpace(text),
		Options:       options,
		CorrectAnswer: correctAnswer,
	}
	if err := validateQuestion(question); err != nil {
		return Question{}, err
	}
	if err := s.quizzes.UpdateQuestion(ctx, question); err != nil {
		return Question{}, err
	}
	return question, nil
}

func (s *Service) DeleteQuestion(ctx context.Context, id int64) error {
	return s.quizzes.DeleteQuestion(ctx, id)
}

func validateQuiz(title, description string) (string, string, error) {
	title = strings.TrimSpace(title)
	description = strings.TrimSpace(description)
	if title == "" || description == "" {
		return "", "", fmt.Errorf("%w: title and description are required", ErrInvalidQuiz)
	}
	return title, description, nil
}

// validateQuestion enforces the aggregate invariants: prompt and correct
// answer present, exactly OptionCount options. Membership of the correct
// answer in the options stays with the editing client, matching the original
// behavior.
func validateQuestion(question Question) error {
	if question.Text == "" || strings.TrimSpace(question.CorrectAnswer) == "" {
		return fmt.Errorf("%w: question text and correct answer are required", ErrInvalidQuestion)
	}
	if len(question.Options) != OptionCount {
		return fmt.Errorf("%w: exactly %d options are required, got %d", ErrInvalidQuestion, OptionCount, len(question.Options))
	}
	return nil
}
