package repository

import (
	"context"
	"time"

	"restaurant/internal/domain/model"
)

type OrderRepository interface {
	FindByID(ctx context.Context, orderID int64) (model.Order, error)
	List(ctx context.Context) ([]model.Order, error)
	Create(ctx context.Context, order model.Order) (int64, error)
	// type/statusの差し替え（注文更新用）
	Update(ctx context.Context, order model.Order) error
	UpdateStatus(ctx context.Context, orderID int64, status model.OrderStatus) error
	SetPromoCode(ctx context.Context, orderID int64, code string) error
	Delete(ctx context.Context, orderID int64) error

	// order_dateが[from, to)に入る注文
	ListByDateRange(ctx context.Context, from time.Time, to time.Time) ([]model.Order, error)
}
