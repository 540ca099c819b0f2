package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

type PromoCodeRepository interface {
	FindByCode(ctx context.Context, code string) (model.PromoCode, error)
	List(ctx context.Context) ([]model.PromoCode, error)
	Create(ctx context.Context, pc model.PromoCode) (int64, error)
	Save(ctx context.Context, pc model.PromoCode) error
}
