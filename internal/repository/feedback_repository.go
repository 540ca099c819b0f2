package repository

import (
	"context"

	"restaurant/internal/domain/model"
)

type FeedbackRepository interface {
	Create(ctx context.Context, f model.Feedback) (int64, error)
	ListByOrderID(ctx context.Context, orderID int64) ([]model.Feedback, error)
}
