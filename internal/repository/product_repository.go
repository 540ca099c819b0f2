package repository

import (
	"context"
	"errors"

	"restaurant/internal/domain/model"
)

var ErrNotFound = errors.New("not found")

type ProductRepository interface {
	FindByID(ctx context.Context, productID int64) (model.Product, error)
	List(ctx context.Context) ([]model.Product, error)
	Create(ctx context.Context, p model.Product) (int64, error)
	Save(ctx context.Context, p model.Product) error
	Delete(ctx context.Context, productID int64) error
}
