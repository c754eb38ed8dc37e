package catalog

import (
	"fmt"
	"strings"

	"vineyard/internal/keytext"
	"vineyard/internal/model"
)

// Normalize maps a raw seed entry onto the canonical menu item fields.
func Normalize(raw RawItem) model.MenuItem {
	name := strings.TrimSpace(raw.Name)
	if name == "" {
		name = strings.TrimSpace(raw.Title)
	}
	foodType := strings.TrimSpace(raw.FoodType)
	if foodType == "" {
		foodType = strings.TrimSpace(raw.Type)
	}

	ingredients := raw.Ingredients
	if ingredients == nil {
		ingredients = []model.Ingredient{}
	}

	return model.MenuItem{
		Name:        name,
		Description: raw.Description,
		Image:       raw.Image,
		Price:       raw.Price,
		FoodType:    foodType,
		Ingredients: ingredients,
	}
}

// Build normalises raw entries and assigns each a key text unique within
// existing. Every generated key is added to existing before the next entry
// is processed, so existing ends up holding the whole catalogue's keys.
func Build(raw []RawItem, existing keytext.Set) ([]model.MenuItem, error) {
	items := make([]model.MenuItem, 0, len(raw))

	for i, r := range raw {
		item := Normalize(r)
		if item.Price.IsNegative() {
			return nil, fmt.Errorf("menu entry %d (%s): %w", i, item.Name, model.ErrInvalidPrice)
		}

		key, err := keytext.Generate(item.Name, existing)
		if err != nil {
			return nil, fmt.Errorf("menu entry %d: %w", i, err)
		}
		existing.Add(key)

		item.KeyText = key
		items = append(items, item)
	}

	return items, nil
}
