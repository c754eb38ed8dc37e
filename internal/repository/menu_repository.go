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
	"github.com/shopspring/decimal"
)

const menuItemColumns = `id, key_text, name, description, image, price::text, food_type, ingredients, created_at`

// menuItemRepository implements the MenuItemRepository interface using PostgreSQL.
type menuItemRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewMenuItemRepository creates a new PostgreSQL-backed menu item repository.
func NewMenuItemRepository(pool *pgxpool.Pool, logger zerolog.Logger) MenuItemRepository {
	return &menuItemRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "menu_item").Logger(),
	}
}

// GetAll retrieves all menu items, optionally restricted to one food type.
func (r *menuItemRepository) GetAll(ctx context.Context, foodType string) ([]model.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE ($1 = '' OR food_type = $1)
		ORDER BY food_type, name
	`

	rows, err := r.pool.Query(ctx, query, foodType)
	if err != nil {
		r.logger.Error().Err(err).Str("food_type", foodType).Msg("failed to query menu items")
		return nil, fmt.Errorf("failed to query menu items: %w", err)
	}
	defer rows.Close()

	items := []model.MenuItem{}
	for rows.Next() {
		item, err := scanMenuItem(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan menu item row")
			return nil, fmt.Errorf("failed to scan menu item: %w", err)
		}
		items = append(items, *item)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating menu item rows")
		return nil, fmt.Errorf("error iterating menu items: %w", err)
	}

	return items, nil
}

// GetByKeyText retrieves a single menu item by its key text.
func (r *menuItemRepository) GetByKeyText(ctx context.Context, keyText string) (*model.MenuItem, error) {
	query := `
		SELECT ` + menuItemColumns + `
		FROM menu_items
		WHERE key_text = $1
	`

	item, err := scanMenuItem(r.pool.QueryRow(ctx, query, keyText))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("key_text", keyText).Msg("menu item not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("key_text", keyText).Msg("failed to query menu item")
		return nil, fmt.Errorf("failed to query menu item: %w", err)
	}

	return item, nil
}

// ListKeyTexts returns every key text currently in the catalogue.
func (r *menuItemRepository) ListKeyTexts(ctx context.Context) ([]string, error) {
	rows, err := r.pool.Query(ctx, `SELECT key_text FROM menu_items`)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to query key texts")
		return nil, fmt.Errorf("failed to query key texts: %w", err)
	}

	keys, err := pgx.CollectRows(rows, pgx.RowTo[string])
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to collect key texts")
		return nil, fmt.Errorf("failed to collect key texts: %w", err)
	}

	return keys, nil
}

// Count returns the number of menu items.
func (r *menuItemRepository) Count(ctx context.Context) (int, error) {
	var count int
	if err := r.pool.QueryRow(ctx, `SELECT COUNT(*) FROM menu_items`).Scan(&count); err != nil {
		r.logger.Error().Err(err).Msg("failed to count menu items")
		return 0, fmt.Errorf("failed to count menu items: %w", err)
	}
	return count, nil
}

// Create inserts a single menu item.
func (r *menuItemRepository) Create(ctx context.Context, item *model.MenuItem) error {
	if err := insertMenuItem(ctx, r.pool, item); err != nil {
		r.logger.Error().Err(err).Str("key_text", item.KeyText).Msg("failed to create menu item")
		return err
	}

	r.logger.Debug().Str("key_text", item.KeyText).Msg("menu item created successfully")
	return nil
}

// CreateMany inserts menu items in one transaction.
func (r *menuItemRepository) CreateMany(ctx context.Context, items []model.MenuItem) error {
	if len(items) == 0 {
		return nil
	}

	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer func() {
		_ = tx.Rollback(ctx)
	}()

	for i := range items {
		if err := insertMenuItem(ctx, tx, &items[i]); err != nil {
			r.logger.Error().
				Err(err).
				Str("key_text", items[i].KeyText).
				Msg("failed to create menu item")
			return err
		}
	}

	if err := tx.Commit(ctx); err != nil {
		r.logger.Error().Err(err).Msg("failed to commit transaction")
		return fmt.Errorf("failed to commit menu items: %w", err)
	}

	r.logger.Debug().Int("count", len(items)).Msg("menu items created successfully")
	return nil
}

// Delete removes a menu item by key text and reports whether it existed.
func (r *menuItemRepository) Delete(ctx context.Context, keyText string) (bool, error) {
	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE key_text = $1`, keyText)
	if err != nil {
		r.logger.Error().Err(err).Str("key_text", keyText).Msg("failed to delete menu item")
		return false, fmt.Errorf("failed to delete menu item: %w", err)
	}
	return tag.RowsAffected() > 0, nil
}

// DeleteMany removes the menu items with the given key texts.
func (r *menuItemRepository) DeleteMany(ctx context.Context, keyTexts []string) (int64, error) {
	if len(keyTexts) == 0 {
		return 0, nil
	}

	tag, err := r.pool.Exec(ctx, `DELETE FROM menu_items WHERE key_text = ANY($1)`, keyTexts)
	if err != nil {
		r.logger.Error().Err(err).Int("count", len(keyTexts)).Msg("failed to delete menu items")
		return 0, fmt.Errorf("failed to delete menu items: %w", err)
	}

	r.logger.Debug().
		Int("requested", len(keyTexts)).
		Int64("deleted", tag.RowsAffected()).
		Msg("menu items deleted")

	return tag.RowsAffected(), nil
}

func insertMenuItem(ctx context.Context, q querier, item *model.MenuItem) error {
	ingredients, err := json.Marshal(item.Ingredients)
	if err != nil {
		return fmt.Errorf("failed to encode ingredients: %w", err)
	}

	query := `
		INSERT INTO menu_items (id, key_text, name, description, image, price, food_type, ingredients, created_at)
		VALUES ($1, $2, $3, $4, $5, $6::numeric, $7, $8, $9)
	`

	_, err = q.Exec(ctx, query,
		item.ID,
		item.KeyText,
		item.Name,
		item.Description,
		item.Image,
		item.Price.String(),
		item.FoodType,
		ingredients,
		item.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create menu item %s: %w", item.KeyText, err)
	}
	return nil
}

func scanMenuItem(row pgx.Row) (*model.MenuItem, error) {
	var (
		item        model.MenuItem
		price       string
		ingredients []byte
	)

	err := row.Scan(
		&item.ID,
		&item.KeyText,
		&item.Name,
		&item.Description,
		&item.Image,
		&price,
		&item.FoodType,
		&ingredients,
		&item.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	if item.Price, err = decimal.NewFromString(price); err != nil {
		return nil, fmt.Errorf("failed to parse price of %s: %w", item.KeyText, err)
	}
	if err := json.Unmarshal(ingredients, &item.Ingredients); err != nil {
		return nil, fmt.Errorf("failed to decode ingredients of %s: %w", item.KeyText, err)
	}

	return &item, nil
}
