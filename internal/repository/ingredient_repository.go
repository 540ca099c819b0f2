package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

type IngredientRepository interface {
	List(ctx context.Context) ([]model.Ingredient, error)
	FindByID(ctx context.Context, ingredientID int64) (model.Ingredient, error)
	FindByName(ctx context.Context, name string) (model.Ingredient, error)
	Create(ctx context.Context, ing model.Ingredient) (int64, error)
	Save(ctx context.Context, ing model.Ingredient) error
	Delete(ctx context.Context, ingredientID int64) error

	// 在庫が足りるときだけ減算。足りなければfalse。
	DecreaseIfEnough(ctx context.Context, name string, qty int64) (bool, error)

	// 手動調整の履歴作成
	CreateAdjustment(ctx context.Context, adj model.IngredientAdjustment) error
}
