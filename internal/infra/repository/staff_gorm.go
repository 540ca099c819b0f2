package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"gorm.io/gorm"
)

type StaffGormRepository struct {
	db *gorm.DB
}

func NewStaffGormRepository(db *gorm.DB) *StaffGormRepository {
	return &StaffGormRepository{db: db}
}

func (r *StaffGormRepository) FindByEmail(ctx context.Context, email string) (model.Staff, error) {
	var s model.Staff
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&s).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Staff{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Staff{}, err
	}
	return s, nil
}

func (r *StaffGormRepository) Create(ctx context.Context, s model.Staff) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&s).Error; err != nil {
		return 0, err
	}
	return s.ID, nil
}
