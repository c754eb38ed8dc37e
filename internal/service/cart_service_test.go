package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	"vineyard/internal/model"

	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testTaxRate = decimal.RequireFromString("0.07")

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func line(key, name, price string, qty int) model.CartLine {
	return model.CartLine{KeyText: key, Name: name, Price: dec(price), Quantity: qty}
}

func newTestCartService(cartRepo *MockCartRepository, menuRepo *MockMenuItemRepository) CartService {
	return NewCartService(cartRepo, menuRepo, testTaxRate, zerolog.Nop())
}

func TestCartService_NewGuestID(t *testing.T) {
	svc := newTestCartService(new(MockCartRepository), new(MockMenuItemRepository))

	a := svc.NewGuestID()
	b := svc.NewGuestID()

	assert.True(t, strings.HasPrefix(a, "guest-"))
	assert.NotEqual(t, a, b)
}

func TestCartService_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("Missing cart is empty", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		cartRepo.On("Get", ctx, "guest-1").Return(nil, nil)

		view, err := newTestCartService(cartRepo, new(MockMenuItemRepository)).Get(ctx, "guest-1")

		require.NoError(t, err)
		assert.Equal(t, "guest-1", view.Cart.OwnerID)
		assert.Empty(t, view.Cart.Lines)
		assert.True(t, view.Totals.Total.IsZero())
	})

	t.Run("Totals are recomputed", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		cartRepo.On("Get", ctx, "guest-1").Return(&model.Cart{
			OwnerID: "guest-1",
			Lines:   []model.CartLine{line("lasagna", "Lasagna", "14.99", 1), line("garlicb", "Garlic Bread", "4.49", 1)},
		}, nil)

		view, err := newTestCartService(cartRepo, new(MockMenuItemRepository)).Get(ctx, "guest-1")

		require.NoError(t, err)
		assert.Equal(t, "19.48", view.Totals.Subtotal.StringFixed(2))
		assert.Equal(t, "1.36", view.Totals.TaxAmount.StringFixed(2))
		assert.Equal(t, "20.84", view.Totals.Total.StringFixed(2))
	})

	t.Run("Blank owner", func(t *testing.T) {
		_, err := newTestCartService(new(MockCartRepository), new(MockMenuItemRepository)).Get(ctx, " ")

		var inputErr *model.InvalidInputError
		require.ErrorAs(t, err, &inputErr)
		assert.Equal(t, "owner", inputErr.Field)
	})

	t.Run("Repository failure", func(t *testing.T) {
		cartRepo := new(MockCartRepository)
		cartRepo.On("Get", ctx, "guest-1").Return(nil, errors.New("timeout"))

		_, err := newTestCartService(cartRepo, new(MockMenuItemRepository)).Get(ctx, "guest-1")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failed to load cart")
	})
}

func TestCartService_AddItem(t *testing.T) {
	ctx := context.Background()
	lasagna := &model.MenuItem{KeyText: "lasagna", Name: "Lasagna", Price: dec("14.99")}

	tests := []struct {
		name          string
		existing      *model.Cart
		keyText       string
		quantity      int
		item          *model.MenuItem
		expectedErr   error
		expectedLines []model.CartLine
	}{
		{
			name:          "New line snapshots the menu item",
			keyText:       "lasagna",
			quantity:      2,
			item:          lasagna,
			expectedLines: []model.CartLine{line("lasagna", "Lasagna", "14.99", 2)},
		},
		{
			name:          "Existing line is incremented",
			existing:      &model.Cart{OwnerID: "guest-1", Lines: []model.CartLine{line("lasagna", "Lasagna", "13.99", 1)}},
			keyText:       "lasagna",
			quantity:      1,
			item:          lasagna,
			expectedLines: []model.CartLine{line("lasagna", "Lasagna", "13.99", 2)},
		},
		{
			name:        "Unknown menu item",
			keyText:     "nothing",
			quantity:    1,
			expectedErr: model.ErrMenuItemNotFound,
		},
		{
			name:        "Zero quantity",
			keyText:     "lasagna",
			quantity:    0,
			item:        lasagna,
			expectedErr: model.ErrInvalidQuantity,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cartRepo := new(MockCartRepository)
			menuRepo := new(MockMenuItemRepository)

			if tt.existing != nil {
				cartRepo.On("Get", ctx, "guest-1").Return(tt.existing, nil)
			} else {
				cartRepo.On("Get", ctx, "guest-1").Return(nil, nil)
			}
			if tt.item != nil {
				menuRepo.On("GetByKeyText", ctx, tt.keyText).Return(tt.item, nil)
			} else {
				menuRepo.On("GetByKeyText", ctx, tt.keyText).Return(nil, nil)
			}
			cartRepo.On("Save", ctx, mock.AnythingOfType("*model.Cart")).Return(nil)

			view, err := newTestCartService(cartRepo, menuRepo).AddItem(ctx, "guest-1", tt.keyText, tt.quantity)

			if tt.expectedErr != nil {
				assert.ErrorIs(t, err, tt.expectedErr)
				cartRepo.AssertNotCalled(t, "Save", mock.Anything, mock.Anything)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.expectedLines, view.Cart.Lines)
			assert.Equal(t, "guest-1", view.Cart.OwnerID)
			assert.False(t, view.Cart.UpdatedAt.IsZero())
			cartRepo.AssertExpectations(t)
		})
	}
}

func TestCartService_UpdateQuantityAndRemove(t *testing.T) {
	ctx := context.Background()
	stored := &model.Cart{
		OwnerID: "user-1",
		Lines:   []model.CartLine{line("water", "Water", "1.99", 1), line("coke", "Coke", "2.99", 1)},
	}

	cartRepo := new(MockCartRepository)
	cartRepo.On("Get", ctx, "user-1").Return(stored, nil)
	cartRepo.On("Save", ctx, mock.AnythingOfType("*model.Cart")).Return(nil)

	svc := newTestCartService(cartRepo, new(MockMenuItemRepository))

	view, err := svc.UpdateQuantity(ctx, "user-1", "water", 4)
	require.NoError(t, err)
	assert.Equal(t, 4, view.Cart.Lines[0].Quantity)
	assert.Equal(t, "10.95", view.Totals.Subtotal.StringFixed(2))
	assert.Equal(t, 1, stored.Lines[0].Quantity, "stored cart is not mutated")

	_, err = svc.UpdateQuantity(ctx, "user-1", "water", 0)
	assert.ErrorIs(t, err, model.ErrInvalidQuantity)

	_, err = svc.UpdateQuantity(ctx, "user-1", "gelato", 2)
	assert.ErrorIs(t, err, model.ErrLineNotFound)

	view, err = svc.RemoveLine(ctx, "user-1", "water")
	require.NoError(t, err)
	require.Len(t, view.Cart.Lines, 1)
	assert.Equal(t, "coke", view.Cart.Lines[0].KeyText)

	_, err = svc.RemoveLine(ctx, "user-1", "gelato")
	assert.ErrorIs(t, err, model.ErrLineNotFound)
}

func TestCartService_Clear(t *testing.T) {
	ctx := context.Background()

	cartRepo := new(MockCartRepository)
	cartRepo.On("Delete", ctx, "user-1").Return(nil)
	cartRepo.On("Delete", ctx, "user-2").Return(errors.New("boom"))

	svc := newTestCartService(cartRepo, new(MockMenuItemRepository))

	assert.NoError(t, svc.Clear(ctx, "user-1"))
	assert.Error(t, svc.Clear(ctx, "user-2"))
	assert.Error(t, svc.Clear(ctx, ""))
}
