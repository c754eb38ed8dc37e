package repository

import (
	"context"

	"vineyard/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// querier is satisfied by both *pgxpool.Pool and pgx.Tx.
type querier interface {
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
}

// MenuItemRepository defines the interface for menu item data access operations.
type MenuItemRepository interface {
	// GetAll retrieves all menu items, optionally restricted to one food type.
	GetAll(ctx context.Context, foodType string) ([]model.MenuItem, error)

	// GetByKeyText retrieves a single menu item by its key text.
	// Returns nil when no item matches.
	GetByKeyText(ctx context.Context, keyText string) (*model.MenuItem, error)

	// ListKeyTexts returns every key text currently in the catalogue.
	ListKeyTexts(ctx context.Context) ([]string, error)

	// Count returns the number of menu items.
	Count(ctx context.Context) (int, error)

	// Create inserts a single menu item.
	Create(ctx context.Context, item *model.MenuItem) error

	// CreateMany inserts menu items in one transaction.
	CreateMany(ctx context.Context, items []model.MenuItem) error

	// Delete removes a menu item by key text and reports whether it existed.
	Delete(ctx context.Context, keyText string) (bool, error)

	// DeleteMany removes the menu items with the given key texts and returns
	// how many rows were deleted.
	DeleteMany(ctx context.Context, keyTexts []string) (int64, error)
}

// CartRepository defines the interface for cart data access operations.
type CartRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Get retrieves the cart of an owner. Returns nil when the owner has no cart.
	Get(ctx context.Context, ownerID string) (*model.Cart, error)

	// GetForUpdate retrieves and row-locks the cart of an owner within tx.
	GetForUpdate(ctx context.Context, tx pgx.Tx, ownerID string) (*model.Cart, error)

	// Save upserts a cart.
	Save(ctx context.Context, cart *model.Cart) error

	// SaveTx upserts a cart within the provided transaction.
	SaveTx(ctx context.Context, tx pgx.Tx, cart *model.Cart) error

	// Delete removes the cart of an owner.
	Delete(ctx context.Context, ownerID string) error

	// DeleteTx removes the cart of an owner within the provided transaction.
	DeleteTx(ctx context.Context, tx pgx.Tx, ownerID string) error
}

// ReceiptRepository defines the interface for receipt data access operations.
type ReceiptRepository interface {
	// BeginTx starts a new database transaction.
	BeginTx(ctx context.Context) (pgx.Tx, error)

	// Create inserts a pending receipt.
	Create(ctx context.Context, receipt *model.Receipt) error

	// GetByID retrieves a receipt by its ID. Returns nil when not found.
	GetByID(ctx context.Context, id uuid.UUID) (*model.Receipt, error)

	// MarkPurchased records the purchase details of a pending receipt within tx.
	// Returns model.ErrReceiptFinalized when the receipt was already purchased.
	MarkPurchased(ctx context.Context, tx pgx.Tx, receipt *model.Receipt) error

	// ListPurchased retrieves an owner's purchased receipts, newest first.
	ListPurchased(ctx context.Context, ownerID string, filter model.OrderFilter) ([]model.Receipt, error)
}

// UserRepository defines the interface for account data access operations.
type UserRepository interface {
	// Create inserts a user. Returns model.ErrUsernameTaken on a duplicate username.
	Create(ctx context.Context, user *model.User) error

	// GetByUsername retrieves a user by username. Returns nil when not found.
	GetByUsername(ctx context.Context, username string) (*model.User, error)
}

// ReviewRepository defines the interface for review data access operations.
type ReviewRepository interface {
	// Create inserts a review.
	Create(ctx context.Context, review *model.Review) error

	// List retrieves reviews newest first.
	List(ctx context.Context, limit int) ([]model.Review, error)
}
