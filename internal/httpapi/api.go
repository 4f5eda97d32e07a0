package httpapi

import (
	"github.com/go-playground/validator/v10"

	"quiz-platform/internal/identity"
	"quiz-platform/internal/quiz"
	"quiz-platform/internal/result"
)

type API struct {
	identity *identity.Service
	quizzes  *quiz.Service
	results  *result.Service
	tokens   *identity.TokenIssuer
	validate *validator.Validate
}

func NewAPI(identitySvc *identity.Service, quizSvc *quiz.Service, resultSvc *result.Service, tokens *identity.TokenIssuer) *API {
	return &API{
		identity: identitySvc,
		quizzes:  quizSvc,
		results:  resultSvc,
		tokens:   tokens,
		validate: validator.New(),
	}
}
