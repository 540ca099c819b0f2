package usecase

import (
	"context"
	"fmt"
	"strings"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
)

type IngredientUsecase struct {
	ingredientRepo repo.IngredientRepository
}

func NewIngredientUsecase(ingredientRepo repo.IngredientRepository) *IngredientUsecase {
	return &IngredientUsecase{ingredientRepo: ingredientRepo}
}

type CreateIngredientInput struct {
	Name     string
	Quantity int64
}

type UpdateIngredientInput struct {
	Name     *string
	Quantity *int64
}

func (u *IngredientUsecase) Create(ctx context.Context, in CreateIngredientInput) (model.Ingredient, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Ingredient{}, NewError(KindInvalidRequest, "name is required")
	}
	if in.Quantity < 0 {
		return model.Ingredient{}, NewError(KindInvalidRequest, "quantity must not be negative")
	}

	// 名前はユニーク
	if _, err := u.ingredientRepo.FindByName(ctx, name); err == nil {
		return model.Ingredient{}, NewError(KindInvalidRequest, fmt.Sprintf("ingredient %q already exists", name))
	} else if err != repo.ErrNotFound {
		return model.Ingredient{}, NewError(KindTransactionFailure, "db error")
	}

	ing := model.Ingredient{Name: name, Quantity: in.Quantity}
	id, err := u.ingredientRepo.Create(ctx, ing)
	if err != nil {
		return model.Ingredient{}, NewError(KindTransactionFailure, "db error")
	}
	ing.ID = id
	return ing, nil
}

func (u *IngredientUsecase) List(ctx context.Context) ([]model.Ingredient, error) {
	items, err := u.ingredientRepo.List(ctx)
	if err != nil {
		return []model.Ingredient{}, NewError(KindTransactionFailure, "db error")
	}
	return items, nil
}

func (u *IngredientUsecase) Get(ctx context.Context, ingredientID int64) (model.Ingredient, error) {
	if ingredientID <= 0 {
		return model.Ingredient{}, NewError(KindInvalidRequest, "invalid id")
	}

	ing, err := u.ingredientRepo.FindByID(ctx, ingredientID)
	if err == repo.ErrNotFound {
		return model.Ingredient{}, NewError(KindNotFound, fmt.Sprintf("ingredient %d not found", ingredientID))
	}
	if err != nil {
		return model.Ingredient{}, NewError(KindTransactionFailure, "db error")
	}
	return ing, nil
}

// 管理者の手動編集。数量を変えたときは調整履歴も残す。
func (u *IngredientUsecase) Update(ctx context.Context, staffID int64, ingredientID int64, in UpdateIngredientInput) (model.Ingredient, error) {
	if ingredientID <= 0 {
		return model.Ingredient{}, NewError(KindInvalidRequest, "invalid id")
	}

	ing, err := u.ingredientRepo.FindByID(ctx, ingredientID)
	if err == repo.ErrNotFound {
		return model.Ingredient{}, NewError(KindNotFound, fmt.Sprintf("ingredient %d not found", ingredientID))
	}
	if err != nil {
		return model.Ingredient{}, NewError(KindTransactionFailure, "db error")
	}

	var delta int64
	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.Ingredient{}, NewError(KindInvalidRequest, "name is required")
		}
		ing.Name = name
	}
	if in.Quantity != nil {
		if *in.Quantity < 0 {
			return model.Ingredient{}, NewError(KindInvalidRequest, "quantity must not be negative")
		}
		delta = *in.Quantity - ing.Quantity
		ing.Quantity = *in.Quantity
	}

	if err := u.ingredientRepo.Save(ctx, ing); err != nil {
		return model.Ingredient{}, NewError(KindTransactionFailure, "db error")
	}

	if delta != 0 {
		adj := model.IngredientAdjustment{
			IngredientID: ing.ID,
			StaffID:      staffID,
			Delta:        delta,
			Reason:       "manual edit",
		}
		if err := u.ingredientRepo.CreateAdjustment(ctx, adj); err != nil {
			return model.Ingredient{}, NewError(KindTransactionFailure, "db error")
		}
	}

	return ing, nil
}

func (u *IngredientUsecase) Delete(ctx context.Context, ingredientID int64) (model.Ingredient, error) {
	if ingredientID <= 0 {
		return model.Ingredient{}, NewError(KindInvalidRequest, "invalid id")
	}

	ing, err := u.ingredientRepo.FindByID(ctx, ingredientID)
	if err == repo.ErrNotFound {
		return model.Ingredient{}, NewError(KindNotFound, fmt.Sprintf("ingredient %d not found", ingredientID))
	}
	if err != nil {
		return model.Ingredient{}, NewError(KindTransactionFailure, "db error")
	}

	if err := u.ingredientRepo.Delete(ctx, ingredientID); err != nil {
		return model.Ingredient{}, NewError(KindTransactionFailure, "db error")
	}

	// 削除した行を確認用に返す
	return ing, nil
}
