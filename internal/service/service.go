package service

import (
	"context"

	"vineyard/internal/catalog"
	"vineyard/internal/model"

	"github.com/google/uuid"
)

// MenuService defines operations for catalogue management.
type MenuService interface {
	// Seed inserts the given entries when the catalogue is empty and returns
	// how many items were created.
	Seed(ctx context.Context, raw []catalog.RawItem) (int, error)

	// List retrieves menu items, optionally restricted to one food type.
	List(ctx context.Context, foodType string) ([]model.MenuItem, error)

	// Get retrieves a single menu item by key text.
	Get(ctx context.Context, keyText string) (*model.MenuItem, error)

	// Create adds a menu item with a freshly generated key text.
	Create(ctx context.Context, req *model.MenuItemRequest) (*model.MenuItem, error)

	// Delete removes a menu item by key text.
	Delete(ctx context.Context, keyText string) error

	// DeleteMany removes several menu items and returns how many existed.
	DeleteMany(ctx context.Context, keyTexts []string) (int64, error)
}

// CartService defines operations on live carts. Every result carries totals
// recomputed from the stored lines.
type CartService interface {
	// NewGuestID issues an owner id for an anonymous visitor.
	NewGuestID() string

	// Get retrieves an owner's cart. A missing cart is returned empty.
	Get(ctx context.Context, ownerID string) (*model.CartView, error)

	// AddItem adds quantity units of a menu item to the cart.
	AddItem(ctx context.Context, ownerID, keyText string, quantity int) (*model.CartView, error)

	// UpdateQuantity replaces the quantity of an existing line.
	UpdateQuantity(ctx context.Context, ownerID, keyText string, quantity int) (*model.CartView, error)

	// RemoveLine drops a line from the cart.
	RemoveLine(ctx context.Context, ownerID, keyText string) (*model.CartView, error)

	// Clear empties the cart.
	Clear(ctx context.Context, ownerID string) error
}

// AccountService defines sign-up and login.
type AccountService interface {
	// SignUp creates an account.
	SignUp(ctx context.Context, req *model.SignUpRequest) (*model.User, error)

	// LogIn verifies credentials and merges the guest cart, if any, into the
	// user's cart.
	LogIn(ctx context.Context, req *model.LogInRequest) (*model.LogInResponse, error)
}

// CheckoutService defines receipt creation, purchase and order history.
type CheckoutService interface {
	// Checkout snapshots the owner's cart into a pending receipt.
	Checkout(ctx context.Context, ownerID string, req *model.CheckoutRequest) (*model.Receipt, error)

	// Purchase finalises a pending receipt and clears the owner's cart.
	Purchase(ctx context.Context, id uuid.UUID, req *model.PurchaseRequest) (*model.Receipt, error)

	// GetReceipt retrieves a receipt by ID.
	GetReceipt(ctx context.Context, id uuid.UUID) (*model.Receipt, error)

	// History retrieves an owner's purchased receipts, newest first.
	History(ctx context.Context, ownerID string, filter model.OrderFilter) ([]model.Receipt, error)
}

// ReviewService defines operations on restaurant reviews.
type ReviewService interface {
	// Submit stores a review.
	Submit(ctx context.Context, req *model.ReviewRequest) (*model.Review, error)

	// List retrieves the most recent reviews, newest first.
	List(ctx context.Context) ([]model.Review, error)
}
