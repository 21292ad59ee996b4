package postgres

import (
	"context"
	"fmt"

	"dabbaMarket/domain"

	"gorm.io/gorm"
)

// CatalogRepository is the recommendation engine's view of storage: the
// available menu, historical ratings, and the interaction event log.
type CatalogRepository struct {
	DB *gorm.DB
}

func NewCatalogRepository(db *gorm.DB) *CatalogRepository {
	return &CatalogRepository{
		DB: db,
	}
}

func (r *CatalogRepository) LoadAvailableItems(ctx context.Context) ([]domain.MenuItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var items []domain.MenuItem
	err := r.DB.WithContext(ctx).Where("is_available = ?", true).Find(&items).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load available menu items: %w", err)
	}

	return items, nil
}

func (r *CatalogRepository) LoadRatings(ctx context.Context) ([]domain.MealRating, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var ratings []domain.MealRating
	err := r.DB.WithContext(ctx).Find(&ratings).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load ratings: %w", err)
	}

	return ratings, nil
}

func (r *CatalogRepository) AppendInteraction(ctx context.Context, event domain.InteractionEvent) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(&event).Error; err != nil {
		return fmt.Errorf("failed to append interaction event: %w", err)
	}

	return nil
}

func (r *CatalogRepository) RecentInteractions(ctx context.Context, limit int) ([]domain.InteractionEvent, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var events []domain.InteractionEvent
	err := r.DB.WithContext(ctx).Order("created_at DESC").Limit(limit).Find(&events).Error
	if err != nil {
		return nil, fmt.Errorf("failed to load recent interactions: %w", err)
	}

	return events, nil
}
