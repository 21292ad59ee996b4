package postgres

import (
	"context"
	"errors"
	"fmt"

	"dabbaMarket/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type PreferenceRepository struct {
	DB *gorm.DB
}

func NewPreferenceRepository(db *gorm.DB) *PreferenceRepository {
	return &PreferenceRepository{
		DB: db,
	}
}

func (r *PreferenceRepository) Get(ctx context.Context, userID uint) (domain.CustomerPreferences, error) {
	if err := ctx.Err(); err != nil {
		return domain.CustomerPreferences{}, fmt.Errorf("context error: %w", err)
	}

	var prefs domain.CustomerPreferences

	err := r.DB.WithContext(ctx).First(&prefs, "user_id = ?", userID).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CustomerPreferences{}, errors.New("preferences not found")
		}
		return domain.CustomerPreferences{}, fmt.Errorf("failed to find preferences: %w", err)
	}

	return prefs, nil
}

func (r *PreferenceRepository) Upsert(ctx context.Context, prefs *domain.CustomerPreferences) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	err := r.DB.WithContext(ctx).Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		UpdateAll: true,
	}).Create(prefs).Error
	if err != nil {
		return fmt.Errorf("failed to save preferences: %w", err)
	}

	return nil
}
