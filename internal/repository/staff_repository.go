package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

type StaffRepository interface {
	FindByEmail(ctx context.Context, email string) (model.Staff, error)
	Create(ctx context.Context, s model.Staff) (int64, error)
}
