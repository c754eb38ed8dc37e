package service

import (
	"context"
	"fmt"
	"time"

	"vineyard/internal/catalog"
	"vineyard/internal/keytext"
	"vineyard/internal/metrics"
	"vineyard/internal/model"
	"vineyard/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// menuService implements MenuService.
type menuService struct {
	menuRepo repository.MenuItemRepository
	metrics  *metrics.Metrics
	logger   zerolog.Logger
}

// NewMenuService creates a new menu service.
func NewMenuService(menuRepo repository.MenuItemRepository, m *metrics.Metrics, logger zerolog.Logger) MenuService {
	return &menuService{
		menuRepo: menuRepo,
		metrics:  m,
		logger:   logger.With().Str("service", "menu").Logger(),
	}
}

// Seed inserts the given entries when the catalogue is empty.
func (s *menuService) Seed(ctx context.Context, raw []catalog.RawItem) (int, error) {
	count, err := s.menuRepo.Count(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to count menu items")
		return 0, fmt.Errorf("failed to seed menu: %w", err)
	}
	if count > 0 {
		s.logger.Info().Int("existing", count).Msg("menu already populated, skipping seed")
		return 0, nil
	}

	items, err := catalog.Build(raw, keytext.NewSet())
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to build menu from seed entries")
		return 0, fmt.Errorf("failed to seed menu: %w", err)
	}

	now := time.Now().UTC()
	for i := range items {
		items[i].ID = uuid.New()
		items[i].CreatedAt = now
	}

	if err := s.menuRepo.CreateMany(ctx, items); err != nil {
		s.logger.Error().Err(err).Int("count", len(items)).Msg("failed to store seeded menu")
		return 0, fmt.Errorf("failed to seed menu: %w", err)
	}

	s.metrics.AddMenuSeeded(len(items))
	s.logger.Info().Int("count", len(items)).Msg("menu seeded")

	return len(items), nil
}

// List retrieves menu items, optionally restricted to one food type.
func (s *menuService) List(ctx context.Context, foodType string) ([]model.MenuItem, error) {
	items, err := s.menuRepo.GetAll(ctx, foodType)
	if err != nil {
		s.logger.Error().Err(err).Str("food_type", foodType).Msg("failed to list menu items")
		return nil, fmt.Errorf("failed to get menu items: %w", err)
	}

	s.logger.Debug().
		Int("count", len(items)).
		Str("food_type", foodType).
		Msg("retrieved menu items")

	return items, nil
}

// Get retrieves a single menu item by key text.
func (s *menuService) Get(ctx context.Context, keyText string) (*model.MenuItem, error) {
	if keyText == "" {
		return nil, model.ErrMenuItemNotFound
	}

	item, err := s.menuRepo.GetByKeyText(ctx, keyText)
	if err != nil {
		s.logger.Error().Err(err).Str("key_text", keyText).Msg("failed to get menu item")
		return nil, fmt.Errorf("failed to get menu item: %w", err)
	}

	if item == nil {
		s.logger.Debug().Str("key_text", keyText).Msg("menu item not found")
		return nil, model.ErrMenuItemNotFound
	}

	return item, nil
}

// Create adds a menu item. Its key text is generated against every key
// already in the catalogue and never changes afterwards.
func (s *menuService) Create(ctx context.Context, req *model.MenuItemRequest) (*model.MenuItem, error) {
	keys, err := s.menuRepo.ListKeyTexts(ctx)
	if err != nil {
		s.logger.Error().Err(err).Msg("failed to list key texts")
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	built, err := catalog.Build([]catalog.RawItem{{
		Name:        req.Name,
		Description: req.Description,
		Image:       req.Image,
		Price:       req.Price,
		FoodType:    req.FoodType,
		Ingredients: req.Ingredients,
	}}, keytext.NewSet(keys...))
	if err != nil {
		s.logger.Warn().Err(err).Str("name", req.Name).Msg("rejected menu item")
		return nil, err
	}

	item := built[0]
	item.ID = uuid.New()
	item.CreatedAt = time.Now().UTC()

	if err := s.menuRepo.Create(ctx, &item); err != nil {
		s.logger.Error().Err(err).Str("key_text", item.KeyText).Msg("failed to create menu item")
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	s.logger.Info().
		Str("key_text", item.KeyText).
		Str("name", item.Name).
		Msg("menu item created")

	return &item, nil
}

// Delete removes a menu item by key text.
func (s *menuService) Delete(ctx context.Context, keyText string) error {
	deleted, err := s.menuRepo.Delete(ctx, keyText)
	if err != nil {
		s.logger.Error().Err(err).Str("key_text", keyText).Msg("failed to delete menu item")
		return fmt.Errorf("failed to delete menu item: %w", err)
	}
	if !deleted {
		return model.ErrMenuItemNotFound
	}

	s.logger.Info().Str("key_text", keyText).Msg("menu item deleted")
	return nil
}

// DeleteMany removes several menu items and returns how many existed.
func (s *menuService) DeleteMany(ctx context.Context, keyTexts []string) (int64, error) {
	n, err := s.menuRepo.DeleteMany(ctx, keyTexts)
	if err != nil {
		s.logger.Error().Err(err).Int("count", len(keyTexts)).Msg("failed to delete menu items")
		return 0, fmt.Errorf("failed to delete menu items: %w", err)
	}

	s.logger.Info().
		Int("requested", len(keyTexts)).
		Int64("deleted", n).
		Msg("menu items deleted")

	return n, nil
}
