package result

import (
	"context"
	"fmt"
	"time"

	"quiz-platform/internal/quiz"
)

// QuestionSource provides the stored questions of a quiz so a submission can
// be rescored on the server from its answer map.
type QuestionSource interface {
	ListQuestions(ctx context.Context, quizID int64) ([]quiz.Question, error)
}

type Service struct {
	results   Repository
	questions QuestionSource
}

func NewService(results Repository, questions QuestionSource) *Service {
	return &Service{
		results:   results,
		questions: questions,
	}
}

// Submit records or updates the caller's score for a quiz. When the answer map
// is present the score is recomputed from the stored correct answers and the
// client-computed number is ignored; otherwise the submitted score is taken as
// is, as the original application did.
func (s *Service) Submit(ctx context.Context, userID, quizID int64, score int, answers map[int64]string) (Result, error) {
	if userID <= 0 || quizID <= 0 {
		return Result{}, fmt.Errorf("%w: user and quiz are required", ErrInvalidSubmission)
	}

	if len(answers) > 0 {
		questions, err := s.questions.ListQuestions(ctx, quizID)
		if err != nil {
			return Result{}, err
		}
		score = quiz.Score(questions, answers)
	}
	if score < 0 {
		return Result{}, ErrInvalidScore
	}

	return s.results.UpsertResult(ctx, Result{
		UserID:      userID,
		QuizID:      quizID,
		Score:       score,
		CompletedAt: time.Now().UTC(),
	})
}

func (s *Service) ListForUser(ctx context.Context, userID int64) ([]Result, error) {
	return s.results.ListResultsForUser(ctx, userID)
}

func (s *Service) ListAll(ctx context.Context) ([]DetailedResult, error) {
	return s.results.ListAllResults(ctx)
}

// UpdateScore is the admin correction path.
func (s *Service) UpdateScore(ctx context.Context, resultID int64, score int) error {
	if score < 0 {
		return ErrInvalidScore
	}
	return s.results.UpdateResultScore(ctx, resultID, score)
}

func (s *Service) QuizRoster(ctx context.Context, quizID int64) ([]RosterEntry, error) {
	return s.results.QuizRoster(ctx, quizID)
}
