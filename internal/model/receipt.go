package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Payment types accepted at purchase time.
const (
	PaymentCash       = "Cash"
	PaymentCreditCard = "Credit Card"
	PaymentDebitCard  = "Debit Card"
)

// Receipt is the snapshot of a cart taken at checkout. Once Purchased is
// true no field may change.
type Receipt struct {
	ID           uuid.UUID       `json:"id"`
	OwnerID      string          `json:"ownerId"`
	Items        []ReceiptLine   `json:"items"`
	Subtotal     decimal.Decimal `json:"subtotal"`
	TaxAmount    decimal.Decimal `json:"taxAmount"`
	TipAmount    decimal.Decimal `json:"tipAmount"`
	Total        decimal.Decimal `json:"total"`
	Purchased    bool            `json:"purchased"`
	CustomerName string          `json:"name,omitempty"`
	PaymentType  string          `json:"paymentType,omitempty"`
	Card         *CardSummary    `json:"card,omitempty"`
	CreatedAt    time.Time       `json:"createdAt"`
	PurchasedAt  *time.Time      `json:"purchasedAt,omitempty"`
}

// ReceiptLine is a cart line with its computed line total.
type ReceiptLine struct {
	CartLine
	LineTotal decimal.Decimal `json:"lineTotal"`
}

// CardSummary keeps the non-sensitive part of a payment card.
type CardSummary struct {
	Brand      string `json:"brand"`
	Last4      string `json:"last4"`
	Expiry     string `json:"exp"`
	NameOnCard string `json:"nameOnCard"`
}

// CheckoutRequest represents the request payload for proceeding to checkout.
// At most one of TipRate (a fraction of the subtotal, 0.15 for 15%) and
// TipAmount may be set.
type CheckoutRequest struct {
	TipRate   *decimal.Decimal `json:"tipRate,omitempty"`
	TipAmount *decimal.Decimal `json:"tipAmount,omitempty"`
}

// PurchaseRequest represents the customer and payment details that finalise a receipt.
type PurchaseRequest struct {
	Name        string `json:"name" validate:"required,max=255"`
	PaymentType string `json:"paymentType" validate:"required,oneof='Cash' 'Credit Card' 'Debit Card'"`
	CardNumber  string `json:"cardNumber,omitempty"`
	CardExpiry  string `json:"cardExp,omitempty"`
	NameOnCard  string `json:"cardName,omitempty"`
}

// OrderFilter narrows an order history listing.
type OrderFilter struct {
	Search      string
	PaymentType string
}
