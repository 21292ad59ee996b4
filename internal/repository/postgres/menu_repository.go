package postgres

import (
	"context"
	"errors"
	"fmt"

	"dabbaMarket/domain"

	"gorm.io/gorm"
)

type MenuRepository struct {
	DB *gorm.DB
}

func NewMenuRepository(db *gorm.DB) *MenuRepository {
	return &MenuRepository{
		DB: db,
	}
}

func (r *MenuRepository) Create(ctx context.Context, item *domain.MenuItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(item).Error; err != nil {
		return fmt.Errorf("failed to create menu item: %w", err)
	}

	return nil
}

func (r *MenuRepository) FindByID(ctx context.Context, id string) (domain.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return domain.MenuItem{}, fmt.Errorf("context error: %w", err)
	}

	var item domain.MenuItem

	err := r.DB.WithContext(ctx).First(&item, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.MenuItem{}, errors.New("menu item not found")
		}
		return domain.MenuItem{}, fmt.Errorf("failed to find menu item: %w", err)
	}

	return item, nil
}

func (r *MenuRepository) FindAll(ctx context.Context) ([]domain.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.MenuItem
	err := r.DB.WithContext(ctx).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find menu items: %w", err)
	}

	return items, nil
}

func (r *MenuRepository) FindByProvider(ctx context.Context, providerID string) ([]domain.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.MenuItem
	err := r.DB.WithContext(ctx).Where("provider_id = ?", providerID).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find provider menu items: %w", err)
	}

	return items, nil
}

func (r *MenuRepository) Update(ctx context.Context, item *domain.MenuItem) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	var existing domain.MenuItem
	if err := r.DB.WithContext(ctx).First(&existing, "id = ?", item.ID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return errors.New("menu item not found")
		}
		return fmt.Errorf("failed to find menu item: %w", err)
	}

	updateData := map[string]interface{}{
		"name":           item.Name,
		"description":    item.Description,
		"cuisine":        item.Cuisine,
		"price":          item.Price,
		"is_vegetarian":  item.IsVegetarian,
		"is_vegan":       item.IsVegan,
		"is_gluten_free": item.IsGlutenFree,
		"tags":           item.Tags,
		"ingredients":    item.Ingredients,
		"city":           item.City,
		"meal_time":      item.MealTime,
	}

	result := r.DB.WithContext(ctx).Model(&domain.MenuItem{}).Where("id = ?", item.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("menu item not found or already deleted")
	}

	return nil
}

func (r *MenuRepository) SetAvailability(ctx context.Context, id string, available bool) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Model(&domain.MenuItem{}).Where("id = ?", id).Update("is_available", available)
	if result.Error != nil {
		return fmt.Errorf("failed to set menu item availability: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("menu item not found")
	}

	return nil
}

func (r *MenuRepository) Delete(ctx context.Context, id string) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	result := r.DB.WithContext(ctx).Delete(&domain.MenuItem{}, "id = ?", id)
	if result.Error != nil {
		return fmt.Errorf("failed to delete menu item: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("menu item not found or already deleted")
	}

	return nil
}
