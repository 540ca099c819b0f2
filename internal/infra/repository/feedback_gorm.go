package repository

import (
	"context"

	"restaurant/internal/domain/model"

	"gorm.io/gorm"
)

type FeedbackGormRepository struct {
	db *gorm.DB
}

func NewFeedbackGormRepository(db *gorm.DB) *FeedbackGormRepository {
	return &FeedbackGormRepository{db: db}
}

func (r *FeedbackGormRepository) Create(ctx context.Context, f model.Feedback) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&f).Error; err != nil {
		return 0, err
	}
	return f.ID, nil
}

func (r *FeedbackGormRepository) ListByOrderID(ctx context.Context, orderID int64) ([]model.Feedback, error) {
	var items []model.Feedback
	err := r.db.WithContext(ctx).Where("order_id = ?", orderID).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.Feedback{}, err
	}
	return items, nil
}
