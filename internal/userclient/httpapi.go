package userclient

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
)

var ErrServiceUnavailable = errors.New("quiz service unavailable")

type APIError struct {
	StatusCode int
	Message    string
}

func (e *APIError) Error() string {
	if strings.TrimSpace(e.Message) == "" {
		return fmt.Sprintf("request failed with status %d", e.StatusCode)
	}
	return e.Message
}

// HTTPClient is the typed client for the quiz server. After login the session
// token is attached to every request.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
	token      string
}

type sessionPayload struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

type quizItem struct {
	ID             int64  `json:"id"`
	Title          string `json:"title"`
	Description    string `json:"description"`
	CreatedAt      string `json:"created_at"`
	CompletedCount int    `json:"completed_count"`
}

type questionItem struct {
	ID            int64    `json:"id"`
	QuizID        int64    `json:"quiz_id"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type resultItem struct {
	ID          int64  `json:"id"`
	UserID      int64  `json:"user_id"`
	QuizID      int64  `json:"quiz_id"`
	Score       int    `json:"score"`
	CompletedAt string `json:"completed_at"`
}

type registerPayload struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

type loginPayload struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type submitResultPayload struct {
	QuizID  int64            `json:"quizId"`
	Score   int              `json:"score"`
	Answers map[int64]string `json:"answers,omitempty"`
}

type errorPayload struct {
	Error string `json:"error"`
}

func NewHTTPClient(baseURL string, httpClient *http.Client) *HTTPClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = "http://127.0.0.1:8080"
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}

	return &HTTPClient{
		baseURL:    baseURL,
		httpClient: httpClient,
	}
}

func (c *HTTPClient) SetToken(token string) {
	c.token = token
}

func (c *HTTPClient) Register(ctx context.Context, name, email, password string) (sessionPayload, error) {
	var payload sessionPayload
	err := c.doJSON(ctx, http.MethodPost, "/api/register", registerPayload{
		Name:     name,
		Email:    email,
		Password: password,
	}, &payload)
	return payload, err
}

func (c *HTTPClient) Login(ctx context.Context, email, password string) (sessionPayload, error) {
	var payload sessionPayload
	err := c.doJSON(ctx, http.MethodPost, "/api/login", loginPayload{
		Email:    email,
		Password: password,
	}, &payload)
	return payload, err
}

func (c *HTTPClient) ListQuizzes(ctx context.Context) ([]quizItem, error) {
	var payload []quizItem
	if err := c.doJSON(ctx, http.MethodGet, "/api/quizzes", nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *HTTPClient) ListQuestions(ctx context.Context, quizID int64) ([]questionItem, error) {
	var payload []questionItem
	path := "/api/quizzes/" + strconv.FormatInt(quizID, 10) + "/questions"
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *HTTPClient) SubmitResult(ctx context.Context, quizID int64, score int, answers map[int64]string) (resultItem, error) {
	var payload resultItem
	err := c.doJSON(ctx, http.MethodPost, "/api/results", submitResultPayload{
		QuizID:  quizID,
		Score:   score,
		Answers: answers,
	}, &payload)
	return payload, err
}

func (c *HTTPClient) MyResults(ctx context.Context, userID int64) ([]resultItem, error) {
	var payload []resultItem
	path := "/api/my-results/" + strconv.FormatInt(userID, 10)
	if err := c.doJSON(ctx, http.MethodGet, path, nil, &payload); err != nil {
		return nil, err
	}
	return payload, nil
}

func (c *HTTPClient) doJSON(ctx context.Context, method, path string, requestBody any, responseBody any) error {
	fullURL := c.baseURL + path

	var body io.Reader
	if requestBody != nil {
		encoded, err := json.Marshal(requestBody)
		if err != nil {
			return err
		}
		body = bytes.NewReader(encoded)
	}

	request, err := http.NewRequestWithContext(ctx, method, fullURL, body)
	if err != nil {
		return err
	}
	if requestBody != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if c.token != "" {
		request.Header.Set("Authorization", "Bearer "+c.token)
	}

	response, err := c.httpClient.Do(request)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrServiceUnavailable, err)
	}
	defer response.Body.Close()

	if response.StatusCode < http.StatusOK || response.StatusCode >= http.StatusMultipleChoices {
		apiErr := APIError{StatusCode: response.StatusCode}
		var payload errorPayload
		if err := json.NewDecoder(response.Body).Decode(&payload); err == nil && strings.TrimSpace(payload.Error) != "" {
			apiErr.Message = payload.Error
		}
		if apiErr.Message == "" {
			apiErr.Message = response.Status
		}
		return &apiErr
	}

	if responseBody == nil {
		return nil
	}
	return json.NewDecoder(response.Body).Decode(responseBody)
}
