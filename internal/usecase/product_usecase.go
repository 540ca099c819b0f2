package usecase

import (
	"context"
	"fmt"
	"strings"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
)

type ProductUsecase struct {
	productRepo repo.ProductRepository
}

func NewProductUsecase(productRepo repo.ProductRepository) *ProductUsecase {
	return &ProductUsecase{productRepo: productRepo}
}

type CreateProductInput struct {
	Name        string
	Price       int64
	Promotion   int64
	DietaryType string
	Ingredients []model.RecipeItem
}

type UpdateProductInput struct {
	Name        *string
	Price       *int64
	Promotion   *int64
	DietaryType *string
	Ingredients []model.RecipeItem
}

func validDietaryType(t model.DietaryType) bool {
	switch t {
	case model.DietarySpicy, model.DietaryKids, model.DietaryVegetarian, model.DietaryLowFat, model.DietaryRegular:
		return true
	default:
		return false
	}
}

// レシピはDB境界より手前で検証する。素のJSONを信用しない。
func validateRecipe(items []model.RecipeItem) error {
	for _, it := range items {
		if strings.TrimSpace(it.Name) == "" {
			return NewError(KindInvalidRequest, "recipe item name is required")
		}
		if it.Quantity <= 0 {
			return NewError(KindInvalidRequest, fmt.Sprintf("recipe item %q must have positive quantity", it.Name))
		}
	}
	return nil
}

func (u *ProductUsecase) Create(ctx context.Context, in CreateProductInput) (model.Product, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return model.Product{}, NewError(KindInvalidRequest, "name is required")
	}
	if in.Price < 0 {
		return model.Product{}, NewError(KindInvalidRequest, "price must not be negative")
	}
	if in.Promotion < 0 || in.Promotion > 100 {
		return model.Product{}, NewError(KindInvalidRequest, "promotion must be between 0 and 100")
	}
	dt := model.DietaryType(in.DietaryType)
	if in.DietaryType == "" {
		dt = model.DietaryRegular
	}
	if !validDietaryType(dt) {
		return model.Product{}, NewError(KindInvalidRequest, "invalid dietary_type")
	}
	if err := validateRecipe(in.Ingredients); err != nil {
		return model.Product{}, err
	}

	p := model.Product{
		Name:        name,
		Price:       in.Price,
		Promotion:   in.Promotion,
		DietaryType: dt,
		Ingredients: in.Ingredients,
	}

	id, err := u.productRepo.Create(ctx, p)
	if err != nil {
		return model.Product{}, NewError(KindTransactionFailure, "db error")
	}
	p.ID = id
	return p, nil
}

func (u *ProductUsecase) List(ctx context.Context) ([]model.Product, error) {
	items, err := u.productRepo.List(ctx)
	if err != nil {
		return []model.Product{}, NewError(KindTransactionFailure, "db error")
	}
	return items, nil
}

func (u *ProductUsecase) Get(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewError(KindInvalidRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewError(KindNotFound, fmt.Sprintf("product %d not found", productID))
	}
	if err != nil {
		return model.Product{}, NewError(KindTransactionFailure, "db error")
	}
	return p, nil
}

// 注意: ここでの変更は既存注文のスナップショットには波及しない。
func (u *ProductUsecase) Update(ctx context.Context, productID int64, in UpdateProductInput) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewError(KindInvalidRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewError(KindNotFound, fmt.Sprintf("product %d not found", productID))
	}
	if err != nil {
		return model.Product{}, NewError(KindTransactionFailure, "db error")
	}

	if in.Name != nil {
		name := strings.TrimSpace(*in.Name)
		if name == "" {
			return model.Product{}, NewError(KindInvalidRequest, "name is required")
		}
		p.Name = name
	}
	if in.Price != nil {
		if *in.Price < 0 {
			return model.Product{}, NewError(KindInvalidRequest, "price must not be negative")
		}
		p.Price = *in.Price
	}
	if in.Promotion != nil {
		if *in.Promotion < 0 || *in.Promotion > 100 {
			return model.Product{}, NewError(KindInvalidRequest, "promotion must be between 0 and 100")
		}
		p.Promotion = *in.Promotion
	}
	if in.DietaryType != nil {
		dt := model.DietaryType(*in.DietaryType)
		if !validDietaryType(dt) {
			return model.Product{}, NewError(KindInvalidRequest, "invalid dietary_type")
		}
		p.DietaryType = dt
	}
	if in.Ingredients != nil {
		if err := validateRecipe(in.Ingredients); err != nil {
			return model.Product{}, err
		}
		p.Ingredients = in.Ingredients
	}

	if err := u.productRepo.Save(ctx, p); err != nil {
		return model.Product{}, NewError(KindTransactionFailure, "db error")
	}
	return p, nil
}

func (u *ProductUsecase) Delete(ctx context.Context, productID int64) (model.Product, error) {
	if productID <= 0 {
		return model.Product{}, NewError(KindInvalidRequest, "invalid id")
	}

	p, err := u.productRepo.FindByID(ctx, productID)
	if err == repo.ErrNotFound {
		return model.Product{}, NewError(KindNotFound, fmt.Sprintf("product %d not found", productID))
	}
	if err != nil {
		return model.Product{}, NewError(KindTransactionFailure, "db error")
	}

	if err := u.productRepo.Delete(ctx, productID); err != nil {
		return model.Product{}, NewError(KindTransactionFailure, "db error")
	}
	return p, nil
}
