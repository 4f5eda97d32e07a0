package httpapi

import (
	"net/http"

	"quiz-platform/internal/identity"
)

func (a *API) HandleRegister(w http.ResponseWriter, r *http.Request) {
	var req registerRequest
	if err := a.decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	session, err := a.identity.Register(r.Context(), req.Name, req.Email, req.Password, req.Role)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusCreated, toSessionResponse(session))
}

func (a *API) HandleLogin(w http.ResponseWriter, r *http.Request) {
	var req loginRequest
	if err := a.decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	session, err := a.identity.Login(r.Context(), req.Email, req.Password)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toSessionResponse(session))
}

func toSessionResponse(session identity.Session) sessionResponse {
	return sessionResponse{
		ID:    session.User.ID,
		Name:  session.User.Name,
		Email: session.User.Email,
		Role:  session.User.Role,
		Token: session.Token,
	}
}
