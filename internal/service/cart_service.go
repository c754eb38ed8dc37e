package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"vineyard/internal/cart"
	"vineyard/internal/model"
	"vineyard/internal/pricing"
	"vineyard/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/shopspring/decimal"
)

// guestPrefix marks owner ids issued to anonymous visitors.
const guestPrefix = "guest-"

// cartService implements CartService.
type cartService struct {
	cartRepo repository.CartRepository
	menuRepo repository.MenuItemRepository
	taxRate  decimal.Decimal
	logger   zerolog.Logger
}

// NewCartService creates a new cart service.
func NewCartService(
	cartRepo repository.CartRepository,
	menuRepo repository.MenuItemRepository,
	taxRate decimal.Decimal,
	logger zerolog.Logger,
) CartService {
	return &cartService{
		cartRepo: cartRepo,
		menuRepo: menuRepo,
		taxRate:  taxRate,
		logger:   logger.With().Str("service", "cart").Logger(),
	}
}

// NewGuestID issues an owner id for an anonymous visitor.
func (s *cartService) NewGuestID() string {
	return guestPrefix + uuid.NewString()
}

// Get retrieves an owner's cart.
func (s *cartService) Get(ctx context.Context, ownerID string) (*model.CartView, error) {
	c, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}
	return viewOf(c, s.taxRate)
}

// AddItem adds quantity units of a menu item, snapshotting its current
// name and price on a new line.
func (s *cartService) AddItem(ctx context.Context, ownerID, keyText string, quantity int) (*model.CartView, error) {
	c, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	item, err := s.menuRepo.GetByKeyText(ctx, keyText)
	if err != nil {
		s.logger.Error().Err(err).Str("key_text", keyText).Msg("failed to look up menu item")
		return nil, fmt.Errorf("failed to add item: %w", err)
	}
	if item == nil {
		s.logger.Debug().Str("key_text", keyText).Msg("menu item not found")
		return nil, model.ErrMenuItemNotFound
	}

	updated, err := cart.Add(c, *item, quantity)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, &updated); err != nil {
		return nil, err
	}

	s.logger.Debug().
		Str("owner_id", ownerID).
		Str("key_text", keyText).
		Int("quantity", quantity).
		Msg("item added to cart")

	return viewOf(updated, s.taxRate)
}

// UpdateQuantity replaces the quantity of an existing line.
func (s *cartService) UpdateQuantity(ctx context.Context, ownerID, keyText string, quantity int) (*model.CartView, error) {
	c, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	updated, err := cart.SetQuantity(c, keyText, quantity)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, &updated); err != nil {
		return nil, err
	}
	return viewOf(updated, s.taxRate)
}

// RemoveLine drops a line from the cart.
func (s *cartService) RemoveLine(ctx context.Context, ownerID, keyText string) (*model.CartView, error) {
	c, err := s.load(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	updated, err := cart.Remove(c, keyText)
	if err != nil {
		return nil, err
	}

	if err := s.save(ctx, &updated); err != nil {
		return nil, err
	}
	return viewOf(updated, s.taxRate)
}

// Clear empties the cart.
func (s *cartService) Clear(ctx context.Context, ownerID string) error {
	if err := validateOwner(ownerID); err != nil {
		return err
	}
	if err := s.cartRepo.Delete(ctx, ownerID); err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to clear cart")
		return fmt.Errorf("failed to clear cart: %w", err)
	}
	return nil
}

func (s *cartService) load(ctx context.Context, ownerID string) (model.Cart, error) {
	if err := validateOwner(ownerID); err != nil {
		return model.Cart{}, err
	}

	c, err := s.cartRepo.Get(ctx, ownerID)
	if err != nil {
		s.logger.Error().Err(err).Str("owner_id", ownerID).Msg("failed to load cart")
		return model.Cart{}, fmt.Errorf("failed to load cart: %w", err)
	}
	if c == nil {
		return model.Cart{OwnerID: ownerID}, nil
	}
	return *c, nil
}

func (s *cartService) save(ctx context.Context, c *model.Cart) error {
	c.UpdatedAt = time.Now().UTC()
	if err := s.cartRepo.Save(ctx, c); err != nil {
		s.logger.Error().Err(err).Str("owner_id", c.OwnerID).Msg("failed to save cart")
		return fmt.Errorf("failed to save cart: %w", err)
	}
	return nil
}

// viewOf pairs a cart with totals computed at the given tax rate and no tip.
func viewOf(c model.Cart, taxRate decimal.Decimal) (*model.CartView, error) {
	totals, err := pricing.Compute(c, taxRate, pricing.NoTip())
	if err != nil {
		return nil, err
	}
	return &model.CartView{Cart: c, Totals: totals}, nil
}

func validateOwner(ownerID string) error {
	if strings.TrimSpace(ownerID) == "" {
		return &model.InvalidInputError{Field: "owner", Reason: "must not be blank"}
	}
	return nil
}
