package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// CartLine is one entry of a cart. Name and Price are a snapshot of the
// menu item taken when it was first added.
type CartLine struct {
	KeyText  string          `json:"keyText"`
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

// Cart is an ordered list of lines owned by one guest or user.
// At most one line exists per KeyText.
type Cart struct {
	OwnerID   string     `json:"ownerId"`
	Lines     []CartLine `json:"lines"`
	UpdatedAt time.Time  `json:"updatedAt"`
}

// Totals holds the derived monetary figures of a cart.
type Totals struct {
	Subtotal  decimal.Decimal `json:"subtotal"`
	TaxAmount decimal.Decimal `json:"taxAmount"`
	TipAmount decimal.Decimal `json:"tipAmount"`
	Total     decimal.Decimal `json:"total"`
}

// CartView is a cart together with its freshly computed totals.
type CartView struct {
	Cart   Cart   `json:"cart"`
	Totals Totals `json:"totals"`
}

// AddCartItemRequest represents the request payload for adding an item to a cart.
type AddCartItemRequest struct {
	KeyText  string `json:"keyText" validate:"required"`
	Quantity int    `json:"quantity" validate:"omitempty,min=1"`
}

// UpdateQuantityRequest represents the request payload for changing a line quantity.
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity"`
}

// GuestCartResponse is returned when a new guest cart id is issued.
type GuestCartResponse struct {
	OwnerID string `json:"ownerId"`
}
