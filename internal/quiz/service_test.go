package quiz

import (
	"context"
	"errors"
	"testing"
)

type fakeRepo struct {
	quizzes   map[int64]Quiz
	questions map[int64]Question
	nextID    int64

	createQuizCalls     int
	createQuestionCalls int
	deleteQuizCalls     int
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		quizzes:   make(map[int64]Quiz),
		questions: make(map[int64]Question),
		nextID:    1,
	}
}

func (f *fakeRepo) ListQuizzes(_ context.Context) ([]QuizSummary, error) {
	out := make([]QuizSummary, 0, len(f.quizzes))
	for _, item := range f.quizzes {
		out = append(out, QuizSummary{Quiz: item})
	}
	return out, nil
}

func (f *fakeRepo) GetQuiz(_ context.Context, id int64) (Quiz, error) {
	item, ok := f.quizzes[id]
	if !ok {
		return Quiz{}, ErrQuizNotFound
	}
	return item, nil
}

func (f *fakeRepo) CreateQuiz(_ context.Context, q Quiz) (Quiz, error) {
	f.createQuizCalls++
	q.ID = f.nextID
	f.nextID++
	f.quizzes[q.ID] = q
	return q, nil
}

func (f *fakeRepo) UpdateQuiz(_ context.Context, q Quiz) error {
	existing, ok := f.quizzes[q.ID]
	if !ok {
		return ErrQuizNotFound
	}
	existing.Title = q.Title
	existing.Description = q.Description
	f.quizzes[q.ID] = existing
	return nil
}

func (f *fakeRepo) DeleteQuiz(_ context.Context, id int64) error {
	f.deleteQuizCalls++
	if _, ok := f.quizzes[id]; !ok {
		return ErrQuizNotFound
	}
	delete(f.quizzes, id)
	for questionID, question := range f.questions {
		if question.QuizID == id {
			delete(f.questions, questionID)
		}
	}
	return nil
}

func (f *fakeRepo) ListQuestions(_ context.Context, quizID int64) ([]Question, error) {
	out := make([]Question, 0)
	for _, question := range f.questions {
		if question.QuizID == quizID {
			out = append(out, question)
		}
	}
	return out, nil
}

func (f *fakeRepo) CreateQuestion(_ context.Context, q Question) (Question, error) {
	f.createQuestionCalls++
	q.ID = f.nextID
	f.nextID++
	f.questions[q.ID] = q
	return q, nil
}

func (f *fakeRepo) UpdateQuestion(_ context.Context, q Question) error {
	if _, ok := f.questions[q.ID]; !ok {
		return ErrQuestionNotFound
	}
	f.questions[q.ID] = q
	return nil
}

func (f *fakeRepo) DeleteQuestion(_ context.Context, id int64) error {
	if _, ok := f.questions[id]; !ok {
		return ErrQuestionNotFound
	}
	delete(f.questions, id)
	return nil
}

func fourOptions() []string {
	return []string{"A", "B", "C", "D"}
}

func TestCreateQuizRequiresTitleAndDescription(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo)
	ctx := context.Background()

	if _, err := service.CreateQuiz(ctx, "  ", "desc"); !errors.Is(err, ErrInvalidQuiz) {
		t.Fatalf("missing title error = %v, want ErrInvalidQuiz", err)
	}
	if _, err := service.CreateQuiz(ctx, "title", ""); !errors.Is(err, ErrInvalidQuiz) {
		t.Fatalf("missing description error = %v, want ErrInvalidQuiz", err)
	}
	if repo.createQuizCalls != 0 {
		t.Fatalf("repo reached on invalid input: %d calls", repo.createQuizCalls)
	}

	created, err := service.CreateQuiz(ctx, " Go Basics ", " intro ")
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}
	if created.Title != "Go Basics" || created.Description != "intro" {
		t.Fatalf("created quiz = %+v, want trimmed fields", created)
	}
	if created.CreatedAt.IsZero() {
		t.Fatalf("expected creation timestamp to be set")
	}
}

func TestCreateQuestionEnforcesOptionCount(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo)
	ctx := context.Background()

	created, err := service.CreateQuiz(ctx, "T", "D")
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	cases := [][]string{
		nil,
		{"A"},
		{"A", "B", "C"},
		{"A", "B", "C", "D", "E"},
	}
	for _, options := range cases {
		if _, err := service.CreateQuestion(ctx, created.ID, "text", options, "A"); !errors.Is(err, ErrInvalidQuestion) {
			t.Fatalf("options %v error = %v, want ErrInvalidQuestion", options, err)
		}
	}
	if repo.createQuestionCalls != 0 {
		t.Fatalf("repo reached on invalid options: %d calls", repo.createQuestionCalls)
	}

	question, err := service.CreateQuestion(ctx, created.ID, "text", fourOptions(), "B")
	if err != nil {
		t.Fatalf("valid CreateQuestion failed: %v", err)
	}
	if question.ID == 0 || question.QuizID != created.ID {
		t.Fatalf("created question = %+v", question)
	}
}

func TestCreateQuestionRequiresTextAndAnswer(t *testing.T) {
	service := NewService(newFakeRepo())
	ctx := context.Background()

	if _, err := service.CreateQuestion(ctx, 1, "  ", fourOptions(), "A"); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("missing text error = %v, want ErrInvalidQuestion", err)
	}
	if _, err := service.CreateQuestion(ctx, 1, "text", fourOptions(), " "); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("missing answer error = %v, want ErrInvalidQuestion", err)
	}
}

func TestUpdateQuestionValidatesBeforeRepo(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo)
	ctx := context.Background()

	if _, err := service.UpdateQuestion(ctx, 1, "text", []string{"A", "B"}, "A"); !errors.Is(err, ErrInvalidQuestion) {
		t.Fatalf("short options error = %v, want ErrInvalidQuestion", err)
	}
	if _, err := service.UpdateQuestion(ctx, 999, "text", fourOptions(), "A"); !errors.Is(err, ErrQuestionNotFound) {
		t.Fatalf("absent question error = %v, want ErrQuestionNotFound", err)
	}
}

func TestUpdateQuizReturnsFreshCopy(t *testing.T) {
	repo := newFakeRepo()
	service := NewService(repo)
	ctx := context.Background()

	created, err := service.CreateQuiz(ctx, "Old", "old desc")
	if err != nil {
		t.Fatalf("CreateQuiz failed: %v", err)
	}

	updated, err := service.UpdateQuiz(ctx, created.ID, "New", "new desc")
	if err != nil {
		t.Fatalf("UpdateQuiz failed: %v", err)
	}
	if updated.Title != "New" || updated.Description != "new desc" {
		t.Fatalf("updated quiz = %+v", updated)
	}
	if !updated.CreatedAt.Equal(created.CreatedAt) {
		t.Fatalf("update must not change the creation time")
	}

	if _, err := service.UpdateQuiz(ctx, 777, "T", "D"); !errors.Is(err, ErrQuizNotFound) {
		t.Fatalf("absent quiz error = %v, want ErrQuizNotFound", err)
	}
}

func TestScoreCountsExactMatches(t *testing.T) {
	questions := []Question{
		{ID: 1, CorrectAnswer: "Paris"},
		{ID: 2, CorrectAnswer: "4"},
		{ID: 3, CorrectAnswer: "Blue"},
	}

	cases := []struct {
		name    string
		answers map[int64]string
		want    int
	}{
		{"all correct", map[int64]string{1: "Paris", 2: "4", 3: "Blue"}, 3},
		{"one wrong", map[int64]string{1: "Paris", 2: "5", 3: "Blue"}, 2},
		{"unanswered question scores zero", map[int64]string{1: "Paris"}, 1},
		{"no answers", nil, 0},
		{"answer for unknown question ignored", map[int64]string{99: "Paris"}, 0},
		{"comparison is exact", map[int64]string{1: "paris"}, 0},
	}
	for _, tc := range cases {
		if got := Score(questions, tc.answers); got != tc.want {
			t.Fatalf("%s: Score = %d, want %d", tc.name, got, tc.want)
		}
	}
}
