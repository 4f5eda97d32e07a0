package httpapi

import (
	"net/http"

	"github.com/gorilla/mux"
)

func NewRouter(api *API) http.Handler {
	r := mux.NewRouter()
	r.Use(requestLogger)
	r.Use(api.requireToken)

	r.HandleFunc("/healthz", handleHealth).Methods(http.MethodGet)

	r.HandleFunc("/api/register", api.HandleRegister).Methods(http.MethodPost)
	r.HandleFunc("/api/login", api.HandleLogin).Methods(http.MethodPost)

	r.HandleFunc("/api/quizzes", api.HandleListQuizzes).Methods(http.MethodGet)
	r.HandleFunc("/api/quizzes", api.HandleCreateQuiz).Methods(http.MethodPost)
	r.HandleFunc("/api/quizzes/{id}", api.HandleGetQuiz).Methods(http.MethodGet)
	r.HandleFunc("/api/quizzes/{id}", api.HandleUpdateQuiz).Methods(http.MethodPut)
	r.HandleFunc("/api/quizzes/{id}", api.HandleDeleteQuiz).Methods(http.MethodDelete)
	r.HandleFunc("/api/quizzes/{id}/questions", api.HandleListQuestions).Methods(http.MethodGet)
	r.HandleFunc("/api/quizzes/{id}/questions", api.HandleCreateQuestion).Methods(http.MethodPost)
	r.HandleFunc("/api/quizzes/{id}/results", api.HandleQuizRoster).Methods(http.MethodGet)
	r.HandleFunc("/api/questions/{id}", api.HandleUpdateQuestion).Methods(http.MethodPut)
	r.HandleFunc("/api/questions/{id}", api.HandleDeleteQuestion).Methods(http.MethodDelete)

	r.HandleFunc("/api/results", api.HandleSubmitResult).Methods(http.MethodPost)
	r.HandleFunc("/api/results/{id}", api.HandleUpdateScore).Methods(http.MethodPut)
	r.HandleFunc("/api/my-results/{userId}", api.HandleMyResults).Methods(http.MethodGet)
	r.HandleFunc("/api/all-results", api.HandleAllResults).Methods(http.MethodGet)

	return r
}

func handleHealth(w http.ResponseWriter, _ *http.Request) {
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte("OK"))
}
