package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vineyard/internal/model"
	"vineyard/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// reviewListLimit caps how many reviews List returns.
const reviewListLimit = 100

// reviewService implements ReviewService.
type reviewService struct {
	reviewRepo repository.ReviewRepository
	logger     zerolog.Logger
}

// NewReviewService creates a new review service.
func NewReviewService(reviewRepo repository.ReviewRepository, logger zerolog.Logger) ReviewService {
	return &reviewService{
		reviewRepo: reviewRepo,
		logger:     logger.With().Str("service", "review").Logger(),
	}
}

// Submit stores a review. All fields are required and the rating must be 1 to 5.
func (s *reviewService) Submit(ctx context.Context, req *model.ReviewRequest) (*model.Review, error) {
	username := strings.TrimSpace(req.Username)
	text := strings.TrimSpace(req.Text)
	switch {
	case username == "":
		return nil, &model.InvalidInputError{Field: "username", Reason: "must not be blank"}
	case text == "":
		return nil, &model.InvalidInputError{Field: "text", Reason: "must not be blank"}
	case req.Rating < 1 || req.Rating > 5:
		return nil, model.ErrInvalidRating
	}

	review := &model.Review{
		ID:        uuid.New(),
		Username:  username,
		Rating:    req.Rating,
		Text:      text,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.reviewRepo.Create(ctx, review); err != nil {
		s.logger.Error().Err(err).Str("username", username).Msg("failed to store review")
		return nil, fmt.Errorf("failed to submit review: %w", err)
	}

	s.logger.Info().
		Str("review_id", review.ID.String()).
		Int("rating", review.Rating).
		Msg("review submitted")

	return review, nil
}

// List retrieves the most recent reviews, newest first.
func (s *reviewService) List(ctx context.Context) ([]model.Review, error) {
	reviews, err := s.reviewRepo.List(ctx, reviewListLimit)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list reviews")
		return nil, fmt.Errorf("failed to list reviews: %w", err)
	}
	return reviews, nil
}
