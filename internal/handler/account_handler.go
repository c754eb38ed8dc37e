package handler

import (
	"net/http"

	"vineyard/internal/model"
	"vineyard/internal/service"

	"github.com/rs/zerolog"
)

// AccountHandler handles sign-up, login and review HTTP requests.
type AccountHandler struct {
	accounts service.AccountService
	reviews  service.ReviewService
	logger   zerolog.Logger
}

// NewAccountHandler creates a new account handler.
func NewAccountHandler(accounts service.AccountService, reviews service.ReviewService, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{
		accounts: accounts,
		reviews:  reviews,
		logger:   logger.With().Str("handler", "account").Logger(),
	}
}

// SignUp handles POST /api/accounts/signup requests.
func (h *AccountHandler) SignUp(w http.ResponseWriter, r *http.Request) {
	var req model.SignUpRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	user, err := h.accounts.SignUp(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, user)
}

// LogIn handles POST /api/accounts/login requests.
func (h *AccountHandler) LogIn(w http.ResponseWriter, r *http.Request) {
	var req model.LogInRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	resp, err := h.accounts.LogIn(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, resp)
}

// ListReviews handles GET /api/reviews requests.
func (h *AccountHandler) ListReviews(w http.ResponseWriter, r *http.Request) {
	reviews, err := h.reviews.List(r.Context())
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusOK, reviews)
}

// SubmitReview handles POST /api/reviews requests.
func (h *AccountHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	var req model.ReviewRequest
	if err := decodeJSON(w, r, &req); err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	review, err := h.reviews.Submit(r.Context(), &req)
	if err != nil {
		writeServiceError(w, err, h.logger)
		return
	}

	writeJSON(w, http.StatusCreated, review)
}
