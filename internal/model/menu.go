package model

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MenuItem represents a purchasable entry in the restaurant catalogue.
type MenuItem struct {
	ID          uuid.UUID       `json:"id" db:"id"`
	Name        string          `json:"name" db:"name"`
	Description string          `json:"description" db:"description"`
	Image       string          `json:"image,omitempty" db:"image"`
	Price       decimal.Decimal `json:"price" db:"price"`
	KeyText     string          `json:"keyText" db:"key_text"`
	FoodType    string          `json:"foodType" db:"food_type"`
	Ingredients []Ingredient    `json:"ingredients" db:"ingredients"`
	CreatedAt   time.Time       `json:"createdAt" db:"created_at"`
}

// Ingredient describes one component of a menu item. Either Quantity or
// Type is normally set.
type Ingredient struct {
	Name     string `json:"name"`
	Quantity string `json:"quantity,omitempty"`
	Type     string `json:"type,omitempty"`
}

// MenuItemRequest represents the request payload for creating a menu item.
type MenuItemRequest struct {
	Name        string          `json:"name" validate:"required,max=255"`
	Description string          `json:"description" validate:"max=2000"`
	Image       string          `json:"image"`
	Price       decimal.Decimal `json:"price"`
	FoodType    string          `json:"foodType" validate:"required,max=100"`
	Ingredients []Ingredient    `json:"ingredients" validate:"dive"`
}

// BulkDeleteRequest represents the request payload for deleting several menu items.
type BulkDeleteRequest struct {
	KeyTexts []string `json:"keyTexts" validate:"required,min=1,dive,required"`
}
