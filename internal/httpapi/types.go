package httpapi

import "time"

type registerRequest struct {
	Name     string `json:"name" validate:"required"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
	Role     string `json:"role" validate:"omitempty,oneof=admin user"`
}

type loginRequest struct {
	Email    string `json:"email" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type sessionResponse struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
	Token string `json:"token"`
}

type quizRequest struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description" validate:"required"`
}

type quizResponse struct {
	ID          int64     `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	CreatedAt   time.Time `json:"created_at"`
}

type quizSummaryResponse struct {
	quizResponse
	CompletedCount int `json:"completed_count"`
}

type questionRequest struct {
	QuestionText  string   `json:"question_text" validate:"required"`
	Options       []string `json:"options" validate:"required,len=4"`
	CorrectAnswer string   `json:"correct_answer" validate:"required"`
}

type questionResponse struct {
	ID            int64    `json:"id"`
	QuizID        int64    `json:"quiz_id"`
	QuestionText  string   `json:"question_text"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correct_answer"`
}

type submitResultRequest struct {
	UserID int64 `json:"userId"`
	QuizID int64 `json:"quizId" validate:"required,gt=0"`
	Score  int   `json:"score" validate:"gte=0"`
	// Optional answer map (question id -> selected option). When present the
	// server recomputes the score from stored correct answers.
	Answers map[int64]string `json:"answers"`
}

type updateScoreRequest struct {
	Score *int `json:"score" validate:"required,gte=0"`
}

type resultResponse struct {
	ID          int64     `json:"id"`
	UserID      int64     `json:"user_id"`
	QuizID      int64     `json:"quiz_id"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

type detailedResultResponse struct {
	resultResponse
	UserName  string `json:"user_name"`
	UserEmail string `json:"user_email"`
	QuizTitle string `json:"quiz_title"`
}

type rosterEntryResponse struct {
	Name        string    `json:"name"`
	Score       int       `json:"score"`
	CompletedAt time.Time `json:"completed_at"`
}

type errorResponse struct {
	Error string `json:"error"`
}
