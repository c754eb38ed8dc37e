package repository

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Schema is the DDL for every table the repositories use. It is safe to
// apply repeatedly.
const Schema = `
	CREATE TABLE IF NOT EXISTS menu_items (
		id UUID PRIMARY KEY,
		key_text TEXT NOT NULL UNIQUE,
		name TEXT NOT NULL,
		description TEXT NOT NULL DEFAULT '',
		image TEXT NOT NULL DEFAULT '',
		price NUMERIC(10,2) NOT NULL CHECK (price >= 0),
		food_type TEXT NOT NULL,
		ingredients JSONB NOT NULL DEFAULT '[]',
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_menu_items_food_type ON menu_items(food_type);

	CREATE TABLE IF NOT EXISTS carts (
		owner_id TEXT PRIMARY KEY,
		lines JSONB NOT NULL DEFAULT '[]',
		updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS receipts (
		id UUID PRIMARY KEY,
		owner_id TEXT NOT NULL,
		items JSONB NOT NULL,
		subtotal NUMERIC(12,2) NOT NULL,
		tax_amount NUMERIC(12,2) NOT NULL,
		tip_amount NUMERIC(12,2) NOT NULL,
		total NUMERIC(12,2) NOT NULL,
		purchased BOOLEAN NOT NULL DEFAULT FALSE,
		customer_name TEXT NOT NULL DEFAULT '',
		payment_type TEXT NOT NULL DEFAULT '',
		card JSONB,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW(),
		purchased_at TIMESTAMPTZ
	);
	CREATE INDEX IF NOT EXISTS idx_receipts_owner_purchased ON receipts(owner_id, purchased_at DESC);

	CREATE TABLE IF NOT EXISTS users (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL UNIQUE,
		email TEXT NOT NULL,
		password_hash TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);

	CREATE TABLE IF NOT EXISTS reviews (
		id UUID PRIMARY KEY,
		username TEXT NOT NULL,
		rating SMALLINT NOT NULL CHECK (rating BETWEEN 1 AND 5),
		text TEXT NOT NULL,
		created_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
	);
	CREATE INDEX IF NOT EXISTS idx_reviews_created_at ON reviews(created_at DESC);
`

// EnsureSchema creates any missing tables and indexes.
func EnsureSchema(ctx context.Context, pool *pgxpool.Pool) error {
	if _, err := pool.Exec(ctx, Schema); err != nil {
		return fmt.Errorf("failed to apply schema: %w", err)
	}
	return nil
}
