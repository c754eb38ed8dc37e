package model

import (
	"time"

	"github.com/google/uuid"
)

// User represents a customer account.
type User struct {
	ID           uuid.UUID `json:"id"`
	Username     string    `json:"username"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}

// SignUpRequest represents the request payload for creating an account.
type SignUpRequest struct {
	Username string `json:"username" validate:"required,min=3,max=50"`
	Email    string `json:"email" validate:"required,email"`
	Password string `json:"password" validate:"required,min=6"`
}

// LogInRequest represents the request payload for logging in. GuestCartID,
// when present, is merged into the user's cart.
type LogInRequest struct {
	Username    string `json:"username" validate:"required"`
	Password    string `json:"password" validate:"required"`
	GuestCartID string `json:"guestCartId,omitempty"`
}

// LogInResponse is returned after a successful login.
type LogInResponse struct {
	User User     `json:"user"`
	Cart CartView `json:"cart"`
}

// Review is a customer's rating of the restaurant.
type Review struct {
	ID        uuid.UUID `json:"id"`
	Username  string    `json:"username"`
	Rating    int       `json:"rating"`
	Text      string    `json:"text"`
	CreatedAt time.Time `json:"timestamp"`
}

// ReviewRequest represents the request payload for submitting a review.
type ReviewRequest struct {
	Username string `json:"username" validate:"required,max=100"`
	Rating   int    `json:"rating" validate:"required"`
	Text     string `json:"text" validate:"required,max=5000"`
}
