package integration

import (
	"context"
	"errors"
	"sync"
	"testing"

	"vineyard/internal/catalog"
	"vineyard/internal/model"
	"vineyard/internal/repository"
	"vineyard/internal/service"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMenuSeeding_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	logger := zerolog.Nop()
	ctx := context.Background()

	menuRepo := repository.NewMenuItemRepository(testDB.Pool, logger)
	menu := service.NewMenuService(menuRepo, nil, logger)

	t.Run("Default menu seeds once", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		n, err := menu.Seed(ctx, catalog.DefaultItems())
		require.NoError(t, err)
		assert.Equal(t, len(catalog.DefaultItems()), n)

		n, err = menu.Seed(ctx, catalog.DefaultItems())
		require.NoError(t, err)
		assert.Zero(t, n)

		count, err := menuRepo.Count(ctx)
		require.NoError(t, err)
		assert.Equal(t, len(catalog.DefaultItems()), count)
	})

	t.Run("Default menu keys are unique and stable", func(t *testing.T) {
		CleanupDB(t, testDB.Pool)

		_, err := menu.Seed(ctx, catalog.DefaultItems())
		require.NoError(t, err)

		keys, err := menuRepo.ListKeyTexts(ctx)
		require.NoError(t, err)
		assert.Len(t, keys, len(catalog.DefaultItems()))
		assert.Contains(t, keys, "chickena")
		assert.Contains(t, keys, "chickenp")
		assert.Contains(t, keys, "chickent")

		item, err := menu.Get(ctx, "chickena")
		require.NoError(t, err)
		assert.Equal(t, "Chicken Alfredo Pasta", item.Name)
	})
}

func TestConcurrentPurchase_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	CleanupDB(t, testDB.Pool)
	SeedMenu(t, testDB.Pool)

	logger := zerolog.Nop()
	ctx := context.Background()

	menuRepo := repository.NewMenuItemRepository(testDB.Pool, logger)
	cartRepo := repository.NewCartRepository(testDB.Pool, logger)
	receiptRepo := repository.NewReceiptRepository(testDB.Pool, logger)
	carts := service.NewCartService(cartRepo, menuRepo, testTaxRate, logger)
	checkout := service.NewCheckoutService(cartRepo, receiptRepo, testTaxRate, nil, logger)

	_, err := carts.AddItem(ctx, "guest-race", "lasagna", 2)
	require.NoError(t, err)

	receipt, err := checkout.Checkout(ctx, "guest-race", &model.CheckoutRequest{})
	require.NoError(t, err)

	const attempts = 8
	var (
		wg        sync.WaitGroup
		mu        sync.Mutex
		succeeded int
		finalized int
	)
	for i := 0; i < attempts; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := checkout.Purchase(ctx, receipt.ID, &model.PurchaseRequest{Name: "Ada", PaymentType: model.PaymentCash})

			mu.Lock()
			defer mu.Unlock()
			switch {
			case err == nil:
				succeeded++
			case errors.Is(err, model.ErrReceiptFinalized):
				finalized++
			default:
				t.Errorf("unexpected purchase error: %v", err)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, 1, succeeded)
	assert.Equal(t, attempts-1, finalized)

	stored, err := checkout.GetReceipt(ctx, receipt.ID)
	require.NoError(t, err)
	assert.True(t, stored.Purchased)
	assert.Equal(t, "Ada", stored.CustomerName)
	assert.True(t, stored.Total.Equal(receipt.Total))
}

func TestGuestLogin_Integration(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test")
	}

	testDB := SetupTestDB(t)
	CleanupDB(t, testDB.Pool)
	SeedMenu(t, testDB.Pool)

	logger := zerolog.Nop()
	ctx := context.Background()

	menuRepo := repository.NewMenuItemRepository(testDB.Pool, logger)
	cartRepo := repository.NewCartRepository(testDB.Pool, logger)
	userRepo := repository.NewUserRepository(testDB.Pool, logger)
	carts := service.NewCartService(cartRepo, menuRepo, testTaxRate, logger)
	accounts := service.NewAccountService(userRepo, cartRepo, testTaxRate, logger)

	_, err := accounts.SignUp(ctx, &model.SignUpRequest{Username: "grace", Email: "grace@example.com", Password: "hopper"})
	require.NoError(t, err)

	guestID := carts.NewGuestID()
	_, err = carts.AddItem(ctx, guestID, "gelato", 2)
	require.NoError(t, err)

	t.Run("Unknown guest cart leaves user cart empty", func(t *testing.T) {
		resp, err := accounts.LogIn(ctx, &model.LogInRequest{Username: "grace", Password: "hopper", GuestCartID: "guest-unknown"})
		require.NoError(t, err)
		assert.Empty(t, resp.Cart.Cart.Lines)
		assert.True(t, resp.Cart.Totals.Total.IsZero())
	})

	t.Run("Guest cart is merged and discarded", func(t *testing.T) {
		resp, err := accounts.LogIn(ctx, &model.LogInRequest{Username: "grace", Password: "hopper", GuestCartID: guestID})
		require.NoError(t, err)
		require.Len(t, resp.Cart.Cart.Lines, 1)
		assert.Equal(t, "gelato", resp.Cart.Cart.Lines[0].KeyText)
		assert.Equal(t, 2, resp.Cart.Cart.Lines[0].Quantity)

		guest, err := cartRepo.Get(ctx, guestID)
		require.NoError(t, err)
		assert.Nil(t, guest)
	})

	t.Run("Logging in again with the same guest id is a no-op", func(t *testing.T) {
		resp, err := accounts.LogIn(ctx, &model.LogInRequest{Username: "grace", Password: "hopper", GuestCartID: guestID})
		require.NoError(t, err)
		require.Len(t, resp.Cart.Cart.Lines, 1)
		assert.Equal(t, 2, resp.Cart.Cart.Lines[0].Quantity)
	})
}
