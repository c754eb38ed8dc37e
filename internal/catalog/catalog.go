// Package catalog loads menu seed data and turns it into menu items with
// generated key texts.
package catalog

import (
	"context"

	"vineyard/internal/model"

	"github.com/shopspring/decimal"
)

// RawItem is a menu entry as it appears in a seed file. Older exports use
// "title" instead of "name" and "type" instead of "foodType"; both spellings
// are accepted and normalised by Normalize.
type RawItem struct {
	Name        string             `json:"name,omitempty"`
	Title       string             `json:"title,omitempty"`
	Description string             `json:"description,omitempty"`
	Image       string             `json:"image,omitempty"`
	Price       decimal.Decimal    `json:"price"`
	FoodType    string             `json:"foodType,omitempty"`
	Type        string             `json:"type,omitempty"`
	Ingredients []model.Ingredient `json:"ingredients,omitempty"`
}

// Loader defines the interface for loading menu seed files.
type Loader interface {
	// Load reads a gzipped JSON-lines seed file and returns its entries in file order.
	Load(ctx context.Context, path string) ([]RawItem, error)
}
