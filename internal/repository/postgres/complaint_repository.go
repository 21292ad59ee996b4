package postgres

import (
	"context"
	"errors"
	"fmt"

	"dabbaMarket/domain"

	"gorm.io/gorm"
)

type ComplaintRepository struct {
	DB *gorm.DB
}

func NewComplaintRepository(db *gorm.DB) *ComplaintRepository {
	return &ComplaintRepository{
		DB: db,
	}
}

func (r *ComplaintRepository) Create(ctx context.Context, complaint *domain.Complaint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	if err := r.DB.WithContext(ctx).Create(complaint).Error; err != nil {
		return fmt.Errorf("failed to create complaint: %w", err)
	}

	return nil
}

func (r *ComplaintRepository) FindByID(ctx context.Context, id string) (domain.Complaint, error) {
	if err := ctx.Err(); err != nil {
		return domain.Complaint{}, fmt.Errorf("context error: %w", err)
	}

	var complaint domain.Complaint

	err := r.DB.WithContext(ctx).First(&complaint, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.Complaint{}, errors.New("complaint not found")
		}
		return domain.Complaint{}, fmt.Errorf("failed to find complaint: %w", err)
	}

	return complaint, nil
}

func (r *ComplaintRepository) FindByUser(ctx context.Context, userID uint) ([]domain.Complaint, error) {
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("context error: %w", err)
	}

	var complaints []domain.Complaint
	err := r.DB.WithContext(ctx).Where("user_id = ?", userID).Order("created_at DESC").Find(&complaints).Error
	if err != nil {
		return nil, fmt.Errorf("failed to find user complaints: %w", err)
	}

	return complaints, nil
}

func (r *ComplaintRepository) Update(ctx context.Context, complaint *domain.Complaint) error {
	if err := ctx.Err(); err != nil {
		return fmt.Errorf("context error: %w", err)
	}

	updateData := map[string]interface{}{
		"status":   complaint.Status,
		"messages": complaint.Messages,
	}

	result := r.DB.WithContext(ctx).Model(&domain.Complaint{}).Where("id = ?", complaint.ID).Updates(updateData)
	if result.Error != nil {
		return fmt.Errorf("failed to update complaint: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return errors.New("complaint not found")
	}

	return nil
}
