// Package cart holds the pure cart operations: reconciliation of two carts
// and the line mutations applied by the cart UI. Every function returns a
// new cart and leaves its arguments untouched.
package cart

import (
	"vineyard/internal/model"
)

// Reconcile merges source into destination.
//
// Lines sharing a KeyText have their quantities summed and keep the
// destination's name and price. Destination order is preserved and lines
// only present in source are appended in source order.
func Reconcile(destination, source model.Cart) model.Cart {
	merged := clone(destination)

	index := make(map[string]int, len(merged.Lines))
	for i, line := range merged.Lines {
		index[line.KeyText] = i
	}

	for _, line := range source.Lines {
		if i, ok := index[line.KeyText]; ok {
			merged.Lines[i].Quantity += line.Quantity
			continue
		}
		index[line.KeyText] = len(merged.Lines)
		merged.Lines = append(merged.Lines, line)
	}

	return merged
}

// Add puts quantity units of item into the cart. An existing line for the
// same KeyText is incremented; otherwise a new line snapshots the item's
// current name and price.
func Add(c model.Cart, item model.MenuItem, quantity int) (model.Cart, error) {
	if quantity < 1 {
		return model.Cart{}, model.ErrInvalidQuantity
	}

	updated := clone(c)
	for i := range updated.Lines {
		if updated.Lines[i].KeyText == item.KeyText {
			updated.Lines[i].Quantity += quantity
			return updated, nil
		}
	}

	updated.Lines = append(updated.Lines, model.CartLine{
		KeyText:  item.KeyText,
		Name:     item.Name,
		Price:    item.Price,
		Quantity: quantity,
	})
	return updated, nil
}

// SetQuantity replaces the quantity of the line with the given KeyText.
func SetQuantity(c model.Cart, keyText string, quantity int) (model.Cart, error) {
	if quantity < 1 {
		return model.Cart{}, model.ErrInvalidQuantity
	}

	updated := clone(c)
	for i := range updated.Lines {
		if updated.Lines[i].KeyText == keyText {
			updated.Lines[i].Quantity = quantity
			return updated, nil
		}
	}
	return model.Cart{}, model.ErrLineNotFound
}

// Remove drops the line with the given KeyText.
func Remove(c model.Cart, keyText string) (model.Cart, error) {
	updated := clone(c)
	for i := range updated.Lines {
		if updated.Lines[i].KeyText == keyText {
			updated.Lines = append(updated.Lines[:i], updated.Lines[i+1:]...)
			return updated, nil
		}
	}
	return model.Cart{}, model.ErrLineNotFound
}

// Find returns the line with the given KeyText.
func Find(c model.Cart, keyText string) (model.CartLine, bool) {
	for _, line := range c.Lines {
		if line.KeyText == keyText {
			return line, true
		}
	}
	return model.CartLine{}, false
}

// QuantitySum returns the total number of units across all lines.
func QuantitySum(c model.Cart) int {
	sum := 0
	for _, line := range c.Lines {
		sum += line.Quantity
	}
	return sum
}

// IsEmpty reports whether the cart has no lines.
func IsEmpty(c model.Cart) bool {
	return len(c.Lines) == 0
}

func clone(c model.Cart) model.Cart {
	out := c
	if c.Lines == nil {
		return out
	}
	out.Lines = make([]model.CartLine, len(c.Lines), len(c.Lines)+1)
	copy(out.Lines, c.Lines)
	return out
}
