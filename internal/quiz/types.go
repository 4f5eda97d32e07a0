package quiz

import (
	"errors"
	"time"
)

// OptionCount is the fixed number of answer options per question.
const OptionCount = 4

var (
	ErrQuizNotFound     = errors.New("quiz not found")
	ErrQuestionNotFound = errors.New("question not found")
	ErrInvalidQuiz      = errors.New("invalid quiz")
	ErrInvalidQuestion  = errors.New("invalid question")
)

type Quiz struct {
	ID          int64
	Title       string
	Description string
	CreatedAt   time.Time
}

// QuizSummary is a quiz plus its completion count, derived at read time from
// the distinct users holding a result for the quiz.
type QuizSummary struct {
	Quiz
	CompletedCount int
}

type Question struct {
	ID            int64
	QuizID        int64
	Text          string
	Options       []string
	CorrectAnswer string
}

// Score counts the questions whose selected option matches the stored correct
// answer. Unanswered questions score zero; there is no partial credit.
func Score(questions []Question, answers map[int64]string) int {
	score := 0
	for _, question := range questions {
		if selected, ok := answers[question.ID]; ok && selected == question.CorrectAnswer {
			score++
		}
	}
	return score
}
