package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

type OrderItemRepository interface {
	CreateBulk(ctx context.Context, orderID int64, items []model.OrderItem) error
	ListByOrderID(ctx context.Context, orderID int64) ([]model.OrderItem, error)
	DeleteByOrderID(ctx context.Context, orderID int64) error

	// スナップショット単価に割引率を適用する。
	// 常にUnitPriceSnapshotから計算するので何度適用しても結果は同じ。
	ApplyDiscount(ctx context.Context, orderID int64, percentage int64) error
}
