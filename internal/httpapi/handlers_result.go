package httpapi

import (
	"net/http"

	"quiz-platform/internal/identity"
	"quiz-platform/internal/result"
)

func (a *API) HandleSubmitResult(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	var req submitResultRequest
	if err := a.decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	// The caller's identity comes from the token. A body user id is accepted
	// only when it matches, or when an admin submits on a student's behalf.
	userID := claims.UserID()
	if req.UserID != 0 && req.UserID != userID {
		if claims.Role != identity.RoleAdmin {
			writeJSON(w, http.StatusForbidden, errorResponse{Error: "cannot submit a result for another user"})
			return
		}
		userID = req.UserID
	}

	item, err := a.results.Submit(r.Context(), userID, req.QuizID, req.Score, req.Answers)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, toResultResponse(item))
}

func (a *API) HandleMyResults(w http.ResponseWriter, r *http.Request) {
	claims := claimsFrom(r)

	userID, err := pathID(r, "userId")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}
	if userID != claims.UserID() && claims.Role != identity.RoleAdmin {
		writeJSON(w, http.StatusForbidden, errorResponse{Error: "cannot read another user's results"})
		return
	}

	results, err := a.results.ListForUser(r.Context(), userID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]resultResponse, 0, len(results))
	for _, item := range results {
		items = append(items, toResultResponse(item))
	}

	writeJSON(w, http.StatusOK, items)
}

func (a *API) HandleAllResults(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	results, err := a.results.ListAll(r.Context())
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]detailedResultResponse, 0, len(results))
	for _, item := range results {
		items = append(items, detailedResultResponse{
			resultResponse: toResultResponse(item.Result),
			UserName:       item.UserName,
			UserEmail:      item.UserEmail,
			QuizTitle:      item.QuizTitle,
		})
	}

	writeJSON(w, http.StatusOK, items)
}

func (a *API) HandleUpdateScore(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	id, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	var req updateScoreRequest
	if err := a.decodeValid(r, &req); err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	if err := a.results.UpdateScore(r.Context(), id, *req.Score); err != nil {
		writeServiceError(w, err)
		return
	}

	writeJSON(w, http.StatusOK, map[string]string{"message": "score updated"})
}

func (a *API) HandleQuizRoster(w http.ResponseWriter, r *http.Request) {
	if !a.requireAdmin(w, r) {
		return
	}

	quizID, err := pathID(r, "id")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: err.Error()})
		return
	}

	roster, err := a.results.QuizRoster(r.Context(), quizID)
	if err != nil {
		writeServiceError(w, err)
		return
	}

	items := make([]rosterEntryResponse, 0, len(roster))
	for _, entry := range roster {
		items = append(items, rosterEntryResponse{
			Name:        entry.Name,
			Score:       entry.Score,
			CompletedAt: entry.CompletedAt,
		})
	}

	writeJSON(w, http.StatusOK, items)
}

func toResultResponse(item result.Result) resultResponse {
	return resultResponse{
		ID:          item.ID,
		UserID:      item.UserID,
		QuizID:      item.QuizID,
		Score:       item.Score,
		CompletedAt: item.CompletedAt,
	}
}
