package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"gorm.io/gorm"
)

type IngredientGormRepository struct {
	db *gorm.DB
}

func NewIngredientGormRepository(db *gorm.DB) *IngredientGormRepository {
	return &IngredientGormRepository{db: db}
}

func (r *IngredientGormRepository) List(ctx context.Context) ([]model.Ingredient, error) {
	var items []model.Ingredient
	err := r.db.WithContext(ctx).Order("id asc").Find(&items).Error
	if err != nil {
		return []model.Ingredient{}, err
	}
	return items, nil
}

func (r *IngredientGormRepository) FindByID(ctx context.Context, ingredientID int64) (model.Ingredient, error) {
	var ing model.Ingredient
	err := r.db.WithContext(ctx).Where("id = ?", ingredientID).First(&ing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Ingredient{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Ingredient{}, err
	}
	return ing, nil
}

func (r *IngredientGormRepository) FindByName(ctx context.Context, name string) (model.Ingredient, error) {
	var ing model.Ingredient
	err := r.db.WithContext(ctx).Where("name = ?", name).First(&ing).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return model.Ingredient{}, repo.ErrNotFound
	}
	if err != nil {
		return model.Ingredient{}, err
	}
	return ing, nil
}

func (r *IngredientGormRepository) Create(ctx context.Context, ing model.Ingredient) (int64, error) {
	if err := r.db.WithContext(ctx).Create(&ing).Error; err != nil {
		return 0, err
	}
	return ing.ID, nil
}

func (r *IngredientGormRepository) Save(ctx context.Context, ing model.Ingredient) error {
	return r.db.WithContext(ctx).Save(&ing).Error
}

func (r *IngredientGormRepository) Delete(ctx context.Context, ingredientID int64) error {
	res := r.db.WithContext(ctx).Where("id = ?", ingredientID).Delete(&model.Ingredient{})
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return repo.ErrNotFound
	}
	return nil
}

// 在庫が足りるときだけ減らす。
// 条件付きUPDATEなので同時注文が重なっても負の在庫にはならない。
func (r *IngredientGormRepository) DecreaseIfEnough(ctx context.Context, name string, qty int64) (bool, error) {
	res := r.db.WithContext(ctx).
		Model(&model.Ingredient{}).
		Where("name = ? AND quantity >= ?", name, qty).
		Update("quantity", gorm.Expr("quantity - ?", qty))

	if res.Error != nil {
		return false, res.Error
	}
	if res.RowsAffected == 0 {
		return false, nil
	}
	return true, nil
}

// 手動調整の履歴作成
func (r *IngredientGormRepository) CreateAdjustment(ctx context.Context, adj model.IngredientAdjustment) error {
	if err := r.db.WithContext(ctx).Create(&adj).Error; err != nil {
		return err
	}
	return nil
}
