package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"vineyard/internal/model"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
)

// cartRepository implements the CartRepository interface using PostgreSQL.
// Lines are stored as a JSONB array in cart order.
type cartRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewCartRepository creates a new PostgreSQL-backed cart repository.
func NewCartRepository(pool *pgxpool.Pool, logger zerolog.Logger) CartRepository {
	return &cartRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "cart").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *cartRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Get retrieves the cart of an owner.
func (r *cartRepository) Get(ctx context.Context, ownerID string) (*model.Cart, error) {
	return r.get(ctx, r.pool, ownerID, `SELECT owner_id, lines, updated_at FROM carts WHERE owner_id = $1`)
}

// GetForUpdate retrieves and row-locks the cart of an owner within tx.
func (r *cartRepository) GetForUpdate(ctx context.Context, tx pgx.Tx, ownerID string) (*model.Cart, error) {
	return r.get(ctx, tx, ownerID, `SELECT owner_id, lines, updated_at FROM carts WHERE owner_id = $1 FOR UPDATE`)
}

func (r *cartRepository) get(ctx context.Context, q querier, ownerID, query string) (*model.Cart, error) {
	var (
		c     model.Cart
		lines []byte
	)

	err := q.QueryRow(ctx, query, ownerID).Scan(&c.OwnerID, &lines, &c.UpdatedAt)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("owner_id", ownerID).Msg("cart not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to query cart")
		return nil, fmt.Errorf("failed to query cart: %w", err)
	}

	if err := json.Unmarshal(lines, &c.Lines); err != nil {
		r.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to decode cart lines")
		return nil, fmt.Errorf("failed to decode cart lines: %w", err)
	}
	if len(c.Lines) == 0 {
		c.Lines = nil
	}

	return &c, nil
}

// Save upserts a cart.
func (r *cartRepository) Save(ctx context.Context, c *model.Cart) error {
	return r.save(ctx, r.pool, c)
}

// SaveTx upserts a cart within the provided transaction.
func (r *cartRepository) SaveTx(ctx context.Context, tx pgx.Tx, c *model.Cart) error {
	return r.save(ctx, tx, c)
}

func (r *cartRepository) save(ctx context.Context, q querier, c *model.Cart) error {
	lines := c.Lines
	if lines == nil {
		lines = []model.CartLine{}
	}
	encoded, err := json.Marshal(lines)
	if err != nil {
		return fmt.Errorf("failed to encode cart lines: %w", err)
	}

	query := `
		INSERT INTO carts (owner_id, lines, updated_at)
		VALUES ($1, $2, $3)
		ON CONFLICT (owner_id) DO UPDATE
		SET lines = EXCLUDED.lines, updated_at = EXCLUDED.updated_at
	`

	if _, err := q.Exec(ctx, query, c.OwnerID, encoded, c.UpdatedAt); err != nil {
		r.logger.Error().Err(err).Str("owner_id", c.OwnerID).Msg("failed to save cart")
		return fmt.Errorf("failed to save cart: %w", err)
	}

	r.logger.Debug().
		Str("owner_id", c.OwnerID).
		Int("lines", len(c.Lines)).
		Msg("cart saved")

	return nil
}

// Delete removes the cart of an owner.
func (r *cartRepository) Delete(ctx context.Context, ownerID string) error {
	return r.delete(ctx, r.pool, ownerID)
}

// DeleteTx removes the cart of an owner within the provided transaction.
func (r *cartRepository) DeleteTx(ctx context.Context, tx pgx.Tx, ownerID string) error {
	return r.delete(ctx, tx, ownerID)
}

func (r *cartRepository) delete(ctx context.Context, q querier, ownerID string) error {
	if _, err := q.Exec(ctx, `DELETE FROM carts WHERE owner_id = $1`, ownerID); err != nil {
		r.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to delete cart")
		return fmt.Errorf("failed to delete cart: %w", err)
	}
	return nil
}
