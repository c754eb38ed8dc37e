package repository

import (
	"context"
	"fmt"

	"vineyard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// reviewRepository implements the ReviewRepository interface using PostgreSQL.
type reviewRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReviewRepository creates a new PostgreSQL-backed review repository.
func NewReviewRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReviewRepository {
	return &reviewRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "review").Logger(),
	}
}

// Create inserts a review.
func (r *reviewRepository) Create(ctx context.Context, review *model.Review) error {
	query := `
		INSERT INTO reviews (id, username, rating, text, created_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := r.pool.Exec(ctx, query, review.ID, review.Username, review.Rating, review.Text, review.CreatedAt)
	if err != nil {
		r.logger.Error().Err(err).Str("username", review.Username).Msg("failed to create review")
		return fmt.Errorf("failed to create review: %w", err)
	}

	return nil
}

// List retrieves reviews newest first.
func (r *reviewRepository) List(ctx context.Context, limit int) ([]model.Review, error) {
	query := `
		SELECT id, username, rating, text, created_at
		FROM reviews
		ORDER BY created_at DESC
		LIMIT $1
	`

	rows, err := r.pool.Query(ctx, query, limit)
	if err != nil {
		r.logger.Error().Err(err).Int("limit", limit).Msg("failed to query reviews")
		return nil, fmt.Errorf("failed to query reviews: %w", err)
	}

	reviews, err := pgx.CollectRows(rows, func(row pgx.CollectableRow) (model.Review, error) {
		var rv model.Review
		err := row.Scan(&rv.ID, &rv.Username, &rv.Rating, &rv.Text, &rv.CreatedAt)
		return rv, err
	})
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to scan review rows")
		return nil, fmt.Errorf("failed to scan reviews: %w", err)
	}

	return reviews, nil
}
