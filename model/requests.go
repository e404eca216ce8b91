package model

// SubmitBusinessRequest is the body of POST /submissions.
type SubmitBusinessRequest struct {
	Name        string   `json:"name" validate:"required"`
	Description string   `json:"description"`
	Category    string   `json:"category" validate:"required"`
	Address     string   `json:"address" validate:"required"`
	Tags        []string `json:"tags"`
	Website     string   `json:"website"`
}

// SubmitBusinessResponse confirms a stored submission.
type SubmitBusinessResponse struct {
	Status       string `json:"status"`
	Message      string `json:"message"`
	SubmissionID string `json:"submission_id"`
}

// StartSwipeSessionRequest is the body of POST /swipe/sessions.
type StartSwipeSessionRequest struct {
	UserID string `json:"user_id" validate:"required"`
}

// StartSwipeSessionResponse returns the opened session.
type StartSwipeSessionResponse struct {
	SessionID string `json:"session_id"`
	Index     int    `json:"index"`
	Total     int    `json:"total"`
}

// SwipeRequest is the body of POST /swipe/sessions/:id/swipe.
type SwipeRequest struct {
	Direction string `json:"direction" validate:"required,oneof=like dislike"`
	ProductID string `json:"product_id"`
}

// SignInRequest is the body of POST /auth/signin.
type SignInRequest struct {
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

// SignInResponse returns the session token from the auth service.
type SignInResponse struct {
	AccessToken string `json:"access_token"`
}
