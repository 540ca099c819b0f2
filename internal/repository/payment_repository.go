package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

type PaymentRepository interface {
	Create(ctx context.Context, p model.Payment) (int64, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.Payment, error)
}
