package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"vineyard/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

const receiptColumns = `id, owner_id, items, subtotal::text, tax_amount::text, tip_amount::text, total::text,
	purchased, customer_name, payment_type, card, created_at, purchased_at`

// receiptRepository implements the ReceiptRepository interface using PostgreSQL.
type receiptRepository struct {
	pool   *pgxpool.Pool
	logger zerolog.Logger
}

// NewReceiptRepository creates a new PostgreSQL-backed receipt repository.
func NewReceiptRepository(pool *pgxpool.Pool, logger zerolog.Logger) ReceiptRepository {
	return &receiptRepository{
		pool:   pool,
		logger: logger.With().Str("repository", "receipt").Logger(),
	}
}

// BeginTx starts a new database transaction.
func (r *receiptRepository) BeginTx(ctx context.Context) (pgx.Tx, error) {
	tx, err := r.pool.Begin(ctx)
	if err != nil {
		r.logger.Error().Err(err).Msg("failed to begin transaction")
		return nil, fmt.Errorf("failed to begin transaction: %w", err)
	}
	return tx, nil
}

// Create inserts a pending receipt.
func (r *receiptRepository) Create(ctx context.Context, receipt *model.Receipt) error {
	items, err := json.Marshal(receipt.Items)
	if err != nil {
		return fmt.Errorf("failed to encode receipt items: %w", err)
	}

	query := `
		INSERT INTO receipts (id, owner_id, items, subtotal, tax_amount, tip_amount, total, purchased, created_at)
		VALUES ($1, $2, $3, $4::numeric, $5::numeric, $6::numeric, $7::numeric, FALSE, $8)
	`

	_, err = r.pool.Exec(ctx, query,
		receipt.ID,
		receipt.OwnerID,
		items,
		receipt.Subtotal.String(),
		receipt.TaxAmount.String(),
		receipt.TipAmount.String(),
		receipt.Total.String(),
		receipt.CreatedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("receipt_id", receipt.ID.String()).
			Msg("failed to create receipt")
		return fmt.Errorf("failed to create receipt: %w", err)
	}

	r.logger.Debug().
		Str("receipt_id", receipt.ID.String()).
		Str("owner_id", receipt.OwnerID).
		Msg("receipt created successfully")

	return nil
}

// GetByID retrieves a receipt by its ID.
func (r *receiptRepository) GetByID(ctx context.Context, id uuid.UUID) (*model.Receipt, error) {
	query := `SELECT ` + receiptColumns + ` FROM receipts WHERE id = $1`

	receipt, err := scanReceipt(r.pool.QueryRow(ctx, query, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			r.logger.Debug().Str("receipt_id", id.String()).Msg("receipt not found")
			return nil, nil
		}
		r.logger.Error().Err(err).Str("receipt_id", id.String()).Msg("failed to query receipt")
		return nil, fmt.Errorf("failed to query receipt: %w", err)
	}

	return receipt, nil
}

// MarkPurchased records the purchase details of a pending receipt within tx.
// The purchased flag is only ever flipped from false to true.
func (r *receiptRepository) MarkPurchased(ctx context.Context, tx pgx.Tx, receipt *model.Receipt) error {
	var card []byte
	if receipt.Card != nil {
		var err error
		if card, err = json.Marshal(receipt.Card); err != nil {
			return fmt.Errorf("failed to encode card summary: %w", err)
		}
	}

	query := `
		UPDATE receipts
		SET purchased = TRUE, customer_name = $2, payment_type = $3, card = $4, purchased_at = $5
		WHERE id = $1 AND purchased = FALSE
	`

	tag, err := tx.Exec(ctx, query,
		receipt.ID,
		receipt.CustomerName,
		receipt.PaymentType,
		card,
		receipt.PurchasedAt,
	)
	if err != nil {
		r.logger.Error().
			Err(err).
			Str("receipt_id", receipt.ID.String()).
			Msg("failed to mark receipt purchased")
		return fmt.Errorf("failed to mark receipt purchased: %w", err)
	}

	if tag.RowsAffected() == 0 {
		r.logger.Warn().
			Str("receipt_id", receipt.ID.String()).
			Msg("receipt already purchased")
		return model.ErrReceiptFinalized
	}

	return nil
}

// ListPurchased retrieves an owner's purchased receipts, newest first.
// Search matches the customer name case-insensitively or the purchase date
// formatted as YYYY-MM-DD.
func (r *receiptRepository) ListPurchased(ctx context.Context, ownerID string, filter model.OrderFilter) ([]model.Receipt, error) {
	query := `
		SELECT ` + receiptColumns + `
		FROM receipts
		WHERE owner_id = $1
		  AND purchased
		  AND ($2 = '' OR payment_type = $2)
		  AND ($3 = '' OR customer_name ILIKE '%' || $3 || '%' OR to_char(purchased_at, 'YYYY-MM-DD') LIKE $3 || '%')
		ORDER BY purchased_at DESC
	`

	search := strings.TrimSpace(filter.Search)
	rows, err := r.pool.Query(ctx, query, ownerID, filter.PaymentType, search)
	if err != nil {
		r.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to query receipts")
		return nil, fmt.Errorf("failed to query receipts: %w", err)
	}
	defer rows.Close()

	receipts := []model.Receipt{}
	for rows.Next() {
		receipt, err := scanReceipt(rows)
		if err != nil {
			r.logger.Error().Err(err).Msg("failed to scan receipt row")
			return nil, fmt.Errorf("failed to scan receipt: %w", err)
		}
		receipts = append(receipts, *receipt)
	}

	if err := rows.Err(); err != nil {
		r.logger.Error().Err(err).Msg("error iterating receipt rows")
		return nil, fmt.Errorf("error iterating receipts: %w", err)
	}

	return receipts, nil
}

func scanReceipt(row pgx.Row) (*model.Receipt, error) {
	var (
		receipt                   model.Receipt
		items, card               []byte
		subtotal, tax, tip, total string
	)

	err := row.Scan(
		&receipt.ID,
		&receipt.OwnerID,
		&items,
		&subtotal,
		&tax,
		&tip,
		&total,
		&receipt.Purchased,
		&receipt.CustomerName,
		&receipt.PaymentType,
		&card,
		&receipt.CreatedAt,
		&receipt.PurchasedAt,
	)
	if err != nil {
		return nil, err
	}

	amounts := []struct {
		dst *decimal.Decimal
		src string
	}{
		{&receipt.Subtotal, subtotal},
		{&receipt.TaxAmount, tax},
		{&receipt.TipAmount, tip},
		{&receipt.Total, total},
	}
	for _, a := range amounts {
		if *a.dst, err = decimal.NewFromString(a.src); err != nil {
			return nil, fmt.Errorf("failed to parse amount %q: %w", a.src, err)
		}
	}

	if err := json.Unmarshal(items, &receipt.Items); err != nil {
		return nil, fmt.Errorf("failed to decode receipt items: %w", err)
	}
	if len(card) > 0 {
		receipt.Card = &model.CardSummary{}
		if err := json.Unmarshal(card, receipt.Card); err != nil {
			return nil, fmt.Errorf("failed to decode card summary: %w", err)
		}
	}

	return &receipt, nil
}
