package menu

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"dabbaMarket/domain"
	"dabbaMarket/pkg/logger"

	"github.com/google/uuid"
)

// MenuRepository contract interface
type MenuRepository interface {
	Create(ctx context.Context, item *domain.MenuItem) error
	FindByID(ctx context.Context, id string) (domain.MenuItem, error)
	FindAll(ctx context.Context) ([]domain.MenuItem, error)
	FindByProvider(ctx context.Context, providerID string) ([]domain.MenuItem, error)
	Update(ctx context.Context, item *domain.MenuItem) error
	SetAvailability(ctx context.Context, id string, available bool) error
	Delete(ctx context.Context, id string) error
}

type menuService struct {
	menuRepo MenuRepository
}

func NewMenuService(menuRepo MenuRepository) *menuService {
	return &menuService{
		menuRepo: menuRepo,
	}
}

func (s *menuService) GetAllItems(ctx context.Context) ([]domain.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when getting all menu items")
		return nil, fmt.Errorf("context error: %w", err)
	}

	items, err := s.menuRepo.FindAll(ctx)
	if err != nil {
		logger.Error("Failed to find all menu items", err)
		return nil, err
	}

	return items, nil
}

func (s *menuService) GetItemByID(ctx context.Context, id string) (*domain.MenuItem, error) {
	if id == "" {
		logger.Error("invalid menu item id")
		return nil, errors.New("invalid menu item id")
	}

	item, err := s.menuRepo.FindByID(ctx, id)
	if err != nil {
		logger.Error("failed to find menu item by id", err)
		return nil, err
	}

	return &item, nil
}

func (s *menuService) GetProviderItems(ctx context.Context, providerID string) ([]domain.MenuItem, error) {
	if providerID == "" {
		logger.Error("invalid provider id")
		return nil, errors.New("invalid provider id")
	}

	items, err := s.menuRepo.FindByProvider(ctx, providerID)
	if err != nil {
		logger.Error("Failed to find provider menu items", err)
		return nil, err
	}

	return items, nil
}

func (s *menuService) CreateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when creating menu item")
		return nil, fmt.Errorf("context error: %w", err)
	}

	// Validation
	if item.Name == "" {
		logger.Error("Invalid menu item: name is required")
		return nil, errors.New("name is required")
	}

	if item.Cuisine == "" {
		logger.Error("Invalid menu item: cuisine is required")
		return nil, errors.New("cuisine is required")
	}

	if item.Price <= 0 {
		logger.Error("Invalid menu item: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	if item.ID == "" {
		item.ID = "MEAL-" + uuid.NewString()
	}
	item.City = strings.ToLower(item.City)
	item.IsAvailable = true

	if err := s.menuRepo.Create(ctx, item); err != nil {
		logger.Error("failed to create menu item", err)
		return nil, fmt.Errorf("failed to create menu item: %w", err)
	}

	logger.Info("menu item created", "meal_id", item.ID)

	return item, nil
}

func (s *menuService) UpdateItem(ctx context.Context, item *domain.MenuItem) (*domain.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		logger.Error("context error when updating menu item")
		return nil, fmt.Errorf("context error: %w", err)
	}

	if item.ID == "" {
		logger.Error("Invalid menu item: ID is required")
		return nil, errors.New("menu item ID is required")
	}

	if item.Name == "" {
		logger.Error("Invalid menu item: name is required")
		return nil, errors.New("name is required")
	}

	if item.Price <= 0 {
		logger.Error("Invalid menu item: price must be greater than 0")
		return nil, errors.New("price must be greater than 0")
	}

	// Verify item exists
	if _, err := s.menuRepo.FindByID(ctx, item.ID); err != nil {
		logger.Error("menu item not found", err)
		return nil, errors.New("menu item not found")
	}

	item.City = strings.ToLower(item.City)
	if err := s.menuRepo.Update(ctx, item); err != nil {
		logger.Error("failed to update menu item", err)
		return nil, fmt.Errorf("failed to update menu item: %w", err)
	}

	updated, err := s.menuRepo.FindByID(ctx, item.ID)
	if err != nil {
		logger.Error("failed to fetch updated menu item", err)
		return nil, fmt.Errorf("failed to fetch updated menu item: %w", err)
	}

	logger.Info("menu item updated", "meal_id", item.ID)

	return &updated, nil
}

func (s *menuService) SetAvailability(ctx context.Context, id string, available bool) error {
	if id == "" {
		logger.Error("invalid menu item id")
		return errors.New("invalid menu item id")
	}

	if err := s.menuRepo.SetAvailability(ctx, id, available); err != nil {
		logger.Error("failed to set menu item availability", err)
		return err
	}

	return nil
}

func (s *menuService) DeleteItem(ctx context.Context, id string) error {
	if id == "" {
		logger.Error("invalid menu item id when deleting")
		return errors.New("invalid menu item id")
	}

	if _, err := s.menuRepo.FindByID(ctx, id); err != nil {
		logger.Error("menu item not found", err)
		return errors.New("menu item not found")
	}

	if err := s.menuRepo.Delete(ctx, id); err != nil {
		logger.Error("failed to delete menu item", err)
		return fmt.Errorf("failed to delete menu item: %w", err)
	}

	logger.Info("menu item deleted", "meal_id", id)

	return nil
}
