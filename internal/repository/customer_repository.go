package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

type CustomerRepository interface {
	FindByID(ctx context.Context, customerID int64) (model.Customer, error)
	List(ctx context.Context) ([]model.Customer, error)
	Create(ctx context.Context, c model.Customer) (int64, error)
	Save(ctx context.Context, c model.Customer) error
	Delete(ctx context.Context, customerID int64) error
}
