package httpapi

import (
	"net/http"

	"quiz-platform/internal/quiz"
)

func (a *API) HandleListQuizzes(w http.ResponseWriter, r *http.Request) {
	summaries, err := a.quizzes.ListQuizzes(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]quizSummaryResponse, 0, len(summaries))
	for _, summary := range summaries {
		items = append(items, quizSummaryResponse{
			quizResponse:   toQuizResponse(summary.Quiz),
			CompletedCount: summary.CompletedCount,
		})
	}

	writeJSON(w, http.StatusOK, items)
}

func (a *API) HandleGetQuiz(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	item, err := a.quizzes.GetQuiz(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuizResponse(item))
}

func (a *API) HandleCreateQuiz(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	var req quizRequest
	if err := a.decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	item, err := a.quizzes.CreateQuiz(r.Context(), req.Title, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuizResponse(item))
}

func (a *API) HandleUpdateQuiz(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var req quizRequest
	if err := a.decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	item, err := a.quizzes.UpdateQuiz(r.Context(), id, req.Title, req.Description)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuizResponse(item))
}

func (a *API) HandleDeleteQuiz(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := a.quizzes.DeleteQuiz(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "quiz deleted"})
}

func (a *API) HandleListQuestions(w http.ResponseWriter, r *http.Request) {
	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	questions, err := a.quizzes.ListQuestions(r.Context(), id)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]questionResponse, 0, len(questions))
	for _, question := range questions {
		items = append(items, toQuestionResponse(question))
	}

	writeJSON(w, http.StatusOK, items)
}

func (a *API) HandleCreateQuestion(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	quizID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var req questionRequest
	if err := a.decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	question, err := a.quizzes.CreateQuestion(r.Context(), quizID, req.QuestionText, req.Options, req.CorrectAnswer)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toQuestionResponse(question))
}

func (a *API) HandleUpdateQuestion(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var req questionRequest
	if err := a.decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	question, err := a.quizzes.UpdateQuestion(r.Context(), id, req.QuestionText, req.Options, req.CorrectAnswer)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toQuestionResponse(question))
}

func (a *API) HandleDeleteQuestion(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := a.quizzes.DeleteQuestion(r.Context(), id); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "question deleted"})
}

func toQuizResponse(item quiz.Quiz) quizResponse {
	return quizResponse{
		ID:          item.ID,
		Title:       item.Title,
		Description: item.Description,
		CreatedAt:   item.CreatedAt,
	}
}

func toQuestionResponse(question quiz.Question) questionResponse {
	return questionResponse{
		ID:            question.ID,
		QuizID:        question.QuizID,
		QuestionText:  question.Text,
		Options:       question.Options,
		CorrectAnswer: question.CorrectAnswer,
	}
}
