package unit

import (
	"context"
	"testing"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
	"restaurant/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestProductUsecase_Create_Success(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r)

	r.On("Create", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		return p.Name == "pizza" && p.Price == 1200 && p.DietaryType == model.DietaryRegular
	})).Return(int64(1), nil)

	p, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:  "pizza",
		Price: 1200,
		Ingredients: []model.RecipeItem{
			{Name: "flour", Quantity: 2},
			{Name: "cheese", Quantity: 1},
		},
	})
	assert.NoError(t, err)
	assert.Equal(t, int64(1), p.ID)
	// dietary_type未指定はregular
	assert.Equal(t, model.DietaryRegular, p.DietaryType)
	r.AssertExpectations(t)
}

func TestProductUsecase_Create_InvalidDietaryType(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r)

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:        "pizza",
		Price:       1200,
		DietaryType: "keto",
	})
	assertKind(t, err, usecase.KindInvalidRequest)
	r.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestProductUsecase_Create_RecipeItemWithoutName(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r)

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:        "pizza",
		Price:       1200,
		Ingredients: []model.RecipeItem{{Name: " ", Quantity: 2}},
	})
	assertKind(t, err, usecase.KindInvalidRequest)
}

func TestProductUsecase_Create_RecipeItemNonPositiveQuantity(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r)

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:        "pizza",
		Price:       1200,
		Ingredients: []model.RecipeItem{{Name: "flour", Quantity: 0}},
	})
	assertKind(t, err, usecase.KindInvalidRequest)
}

func TestProductUsecase_Create_PromotionOutOfRange(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r)

	_, err := uc.Create(context.Background(), usecase.CreateProductInput{
		Name:      "pizza",
		Price:     1200,
		Promotion: 120,
	})
	assertKind(t, err, usecase.KindInvalidRequest)
}

func TestProductUsecase_Update_PartialFields(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r)

	r.On("FindByID", mock.Anything, int64(1)).Return(model.Product{
		ID: 1, Name: "pizza", Price: 1200, DietaryType: model.DietaryRegular,
		Ingredients: []model.RecipeItem{{Name: "flour", Quantity: 2}},
	}, nil)
	r.On("Save", mock.Anything, mock.MatchedBy(func(p model.Product) bool {
		// 価格だけ変わってレシピはそのまま
		return p.Price == 1500 && len(p.Ingredients) == 1 && p.Name == "pizza"
	})).Return(nil)

	price := int64(1500)
	p, err := uc.Update(context.Background(), 1, usecase.UpdateProductInput{Price: &price})
	assert.NoError(t, err)
	assert.Equal(t, int64(1500), p.Price)
	r.AssertExpectations(t)
}

func TestProductUsecase_Update_NotFound(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r)

	r.On("FindByID", mock.Anything, int64(404)).Return(model.Product{}, repo.ErrNotFound)

	price := int64(1500)
	_, err := uc.Update(context.Background(), 404, usecase.UpdateProductInput{Price: &price})
	assertKind(t, err, usecase.KindNotFound)
}

func TestProductUsecase_Delete_ReturnsDeletedRow(t *testing.T) {
	r := new(ProductRepoMock)
	uc := usecase.NewProductUsecase(r)

	r.On("FindByID", mock.Anything, int64(1)).Return(model.Product{ID: 1, Name: "pizza"}, nil)
	r.On("Delete", mock.Anything, int64(1)).Return(nil)

	p, err := uc.Delete(context.Background(), 1)
	assert.NoError(t, err)
	assert.Equal(t, "pizza", p.Name)
	r.AssertExpectations(t)
}
