package result

import (
	"context"
	"errors"
	"testing"

	"quiz-platform/internal/quiz"
)

type fakeResultRepo struct {
	byPair map[[2]int64]Result
	nextID int64

	upsertCalls int
	updateCalls int
}

func newFakeResultRepo() *fakeResultRepo {
	return &fakeResultRepo{
		byPair: make(map[[2]int64]Result),
		nextID: 1,
	}
}

func (f *fakeResultRepo) UpsertResult(_ context.Context, res Result) (Result, error) {
	f.upsertCalls++
	key := [2]int64{res.UserID, res.QuizID}
	if existing, ok := f.byPair[key]; ok {
		existing.Score = res.Score
		existing.CompletedAt = res.CompletedAt
		f.byPair[key] = existing
		return existing, nil
	}
	res.ID = f.nextID
	f.nextID++
	f.byPair[key] = res
	return res, nil
}

func (f *fakeResultRepo) ListResultsForUser(_ context.Context, userID int64) ([]Result, error) {
	out := make([]Result, 0)
	for _, res := range f.byPair {
		if res.UserID == userID {
			out = append(out, res)
		}
	}
	return out, nil
}

func (f *fakeResultRepo) ListAllResults(_ context.Context) ([]DetailedResult, error) {
	out := make([]DetailedResult, 0)
	for _, res := range f.byPair {
		out = append(out, DetailedResult{Result: res})
	}
	return out, nil
}

func (f *fakeResultRepo) UpdateResultScore(_ context.Context, resultID int64, score int) error {
	f.updateCalls++
	for key, res := range f.byPair {
		if res.ID == resultID {
			res.Score = score
			f.byPair[key] = res
			return nil
		}
	}
	return ErrResultNotFound
}

func (f *fakeResultRepo) QuizRoster(_ context.Context, quizID int64) ([]RosterEntry, error) {
	out := make([]RosterEntry, 0)
	for _, res := range f.byPair {
		if res.QuizID == quizID {
			out = append(out, RosterEntry{Score: res.Score})
		}
	}
	return out, nil
}

type fakeQuestionSource struct {
	questions map[int64][]quiz.Question
	err       error
	calls     int
}

func (f *fakeQuestionSource) ListQuestions(_ context.Context, quizID int64) ([]quiz.Question, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.questions[quizID], nil
}

func newTestService(repo *fakeResultRepo, questions *fakeQuestionSource) *Service {
	return NewService(repo, questions)
}

func TestSubmitRejectsInvalidIdentifiers(t *testing.T) {
	repo := newFakeResultRepo()
	service := newTestService(repo, &fakeQuestionSource{})
	ctx := context.Background()

	cases := []struct {
		name   string
		userID int64
		quizID int64
	}{
		{"zero user", 0, 1},
		{"zero quiz", 1, 0},
		{"negative user", -1, 1},
	}
	for _, tc := range cases {
		if _, err := service.Submit(ctx, tc.userID, tc.quizID, 3, nil); !errors.Is(err, ErrInvalidSubmission) {
			t.Fatalf("%s: Submit error = %v, want ErrInvalidSubmission", tc.name, err)
		}
	}
	if repo.upsertCalls != 0 {
		t.Fatalf("repo reached on invalid submission: %d calls", repo.upsertCalls)
	}
}

func TestSubmitRejectsNegativeScore(t *testing.T) {
	service := newTestService(newFakeResultRepo(), &fakeQuestionSource{})

	if _, err := service.Submit(context.Background(), 1, 1, -1, nil); !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("Submit error = %v, want ErrInvalidScore", err)
	}
}

func TestSubmitTakesClientScoreWithoutAnswers(t *testing.T) {
	repo := newFakeResultRepo()
	questions := &fakeQuestionSource{}
	service := newTestService(repo, questions)

	res, err := service.Submit(context.Background(), 1, 2, 3, nil)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if res.Score != 3 {
		t.Fatalf("score = %d, want the submitted 3", res.Score)
	}
	if questions.calls != 0 {
		t.Fatalf("questions fetched %d times without an answer map", questions.calls)
	}
	if res.CompletedAt.IsZero() {
		t.Fatalf("expected a completion timestamp")
	}
}

func TestSubmitRecomputesScoreFromAnswers(t *testing.T) {
	repo := newFakeResultRepo()
	questions := &fakeQuestionSource{
		questions: map[int64][]quiz.Question{
			2: {
				{ID: 10, CorrectAnswer: "A"},
				{ID: 11, CorrectAnswer: "B"},
				{ID: 12, CorrectAnswer: "C"},
			},
		},
	}
	service := newTestService(repo, questions)

	// Client claims a perfect score but only one answer is right.
	res, err := service.Submit(context.Background(), 1, 2, 3, map[int64]string{
		10: "A",
		11: "D",
		12: "D",
	})
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if res.Score != 1 {
		t.Fatalf("recomputed score = %d, want 1", res.Score)
	}
}

func TestSubmitPropagatesQuestionSourceError(t *testing.T) {
	repo := newFakeResultRepo()
	sourceErr := errors.New("storage down")
	service := newTestService(repo, &fakeQuestionSource{err: sourceErr})

	if _, err := service.Submit(context.Background(), 1, 2, 0, map[int64]string{1: "A"}); !errors.Is(err, sourceErr) {
		t.Fatalf("Submit error = %v, want the source error", err)
	}
	if repo.upsertCalls != 0 {
		t.Fatalf("upsert reached after question fetch failure")
	}
}

func TestResubmitUpdatesExistingResult(t *testing.T) {
	repo := newFakeResultRepo()
	service := newTestService(repo, &fakeQuestionSource{})
	ctx := context.Background()

	first, err := service.Submit(ctx, 1, 2, 3, nil)
	if err != nil {
		t.Fatalf("first Submit failed: %v", err)
	}
	second, err := service.Submit(ctx, 1, 2, 5, nil)
	if err != nil {
		t.Fatalf("second Submit failed: %v", err)
	}
	if second.ID != first.ID {
		t.Fatalf("resubmission id = %d, want the original %d", second.ID, first.ID)
	}
	if second.Score != 5 {
		t.Fatalf("resubmission score = %d, want 5", second.Score)
	}
	if len(repo.byPair) != 1 {
		t.Fatalf("result rows = %d, want 1", len(repo.byPair))
	}
}

func TestUpdateScoreValidation(t *testing.T) {
	repo := newFakeResultRepo()
	service := newTestService(repo, &fakeQuestionSource{})
	ctx := context.Background()

	if err := service.UpdateScore(ctx, 1, -5); !errors.Is(err, ErrInvalidScore) {
		t.Fatalf("negative score error = %v, want ErrInvalidScore", err)
	}
	if repo.updateCalls != 0 {
		t.Fatalf("repo reached on invalid score")
	}

	if err := service.UpdateScore(ctx, 999, 5); !errors.Is(err, ErrResultNotFound) {
		t.Fatalf("absent result error = %v, want ErrResultNotFound", err)
	}

	created, err := service.Submit(ctx, 1, 2, 3, nil)
	if err != nil {
		t.Fatalf("Submit failed: %v", err)
	}
	if err := service.UpdateScore(ctx, created.ID, 4); err != nil {
		t.Fatalf("UpdateScore failed: %v", err)
	}
	updated, err := service.ListForUser(ctx, 1)
	if err != nil {
		t.Fatalf("ListForUser failed: %v", err)
	}
	if len(updated) != 1 || updated[0].Score != 4 {
		t.Fatalf("results after correction = %+v, want one row with score 4", updated)
	}
}
