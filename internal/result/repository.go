package result

import (
	"context"
	"errors"
	"time"
)

var (
	ErrResultNotFound    = errors.New("result not found")
	ErrInvalidScore      = errors.New("score must be a non-negative integer")
	ErrInvalidSubmission = errors.New("invalid submission")
)

// Result records one user's score for one quiz. At most one row exists per
// (user, quiz) pair; resubmission updates the row in place.
type Result struct {
	ID          int64
	UserID      int64
	QuizID      int64
	Score       int
	CompletedAt time.Time
}

// DetailedResult joins a result with the submitting user and the quiz, for
// administrative review.
type DetailedResult struct {
	Result
	UserName  string
	UserEmail string
	QuizTitle string
}

// RosterEntry is one completing user on a quiz's roster.
type RosterEntry struct {
	Name        string
	Score       int
	CompletedAt time.Time
}

type Repository interface {
	// UpsertResult inserts the result or, when a row for (user, quiz) already
	// exists, updates its score and completion time keeping the original id.
	// The write is a single statement guarded by a unique index, so there is
	// no window in which two rows for the pair can appear.
	UpsertResult(ctx context.Context, res Result) (Result, error)
	ListResultsForUser(ctx context.Context, userID int64) ([]Result, error)
	ListAllResults(ctx context.Context) ([]DetailedResult, error)
	// UpdateResultScore returns ErrResultNotFound when no row was affected.
	UpdateResultScore(ctx context.Context, resultID int64, score int) error
	QuizRoster(ctx context.Context, quizID int64) ([]RosterEntry, error)
}
