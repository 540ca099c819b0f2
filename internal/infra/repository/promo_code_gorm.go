package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"gorm.io/gorm"
)

type PromoCodeGormRepository struct {
	db *gorm.DB
}

func NewPromoCodeGormRepository(db *gorm.DB) *PromoCodeGormRepository {
	return &PromoCodeGormRepository{db: db}
}

func (r *PromoCodeGormRepository) FindByCode(ctx context.Context, code string) (model.PromoCode, error) {
	var pc model.PromoCode
	err := r.db.WithContext(ctx).Where("code = ?", code).First(&pc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.PromoCode{}, repo.ErrNotFound
	}
	if err != nil {
		return model.PromoCode{}, err
	}
	return pc, nil
}

func (r *PromoCodeGormRepository) List(ctx context.Context) ([]model.PromoCode, error) {
	var items []model.PromoCode
	err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.PromoCode{}, err
	}
	return items, nil
}

func (r *PromoCodeGormRepository) Create(ctx context.Context, pc model.PromoCode) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&pc).Error; err != nil {
		return 0, err
	}
	return pc.ID, nil
}

func (r *PromoCodeGormRepository) Save(ctx context.Context, pc model.PromoCode) error {
	return r.db.WithContext(ctx).Save(&pc).Error
}
