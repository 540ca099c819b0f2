package usecase

import (
	"context"
	"fmt"
	"strings"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
)

type FeedbackUsecase struct {
	feedbackRepo repo.FeedbackRepository
	orderRepo    repo.OrderRepository
	customerRepo repo.CustomerRepository
}

func NewFeedbackUsecase(
	feedbackRepo repo.FeedbackRepository,
	orderRepo repo.OrderRepository,
	customerRepo repo.CustomerRepository,
) *FeedbackUsecase {
	return &FeedbackUsecase{
		feedbackRepo: feedbackRepo,
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
	}
}

type CreateFeedbackInput struct {
	CustomerID int64
	OrderID    int64
	Rating     int
	Comments   string
}

func (u *FeedbackUsecase) Create(ctx context.Context, in CreateFeedbackInput) (model.Feedback, error) {
	if in.Rating < 1 || in.Rating > 5 {
		return model.Feedback{}, NewError(KindInvalidRequest, "rating must be between 1 and 5")
	}
	if len(in.Comments) > 500 {
		return model.Feedback{}, NewError(KindInvalidRequest, "comments too long")
	}

	// 注文と顧客の存在確認
	if _, err := u.orderRepo.FindByID(ctx, in.OrderID); err != nil {
		if err == repo.ErrNotFound {
			return model.Feedback{}, NewError(KindNotFound, fmt.Sprintf("order %d not found", in.OrderID))
		}
		return model.Feedback{}, NewError(KindTransactionFailure, "db error")
	}
	if _, err := u.customerRepo.FindByID(ctx, in.CustomerID); err != nil {
		if err == repo.ErrNotFound {
			return model.Feedback{}, NewError(KindNotFound, fmt.Sprintf("customer %d not found", in.CustomerID))
		}
		return model.Feedback{}, NewError(KindTransactionFailure, "db error")
	}

	f := model.Feedback{
		CustomerID: in.CustomerID,
		OrderID:    in.OrderID,
		Rating:     in.Rating,
		Comments:   strings.TrimSpace(in.Comments),
	}

	id, err := u.feedbackRepo.Create(ctx, f)
	if err != nil {
		return model.Feedback{}, NewError(KindTransactionFailure, "db error")
	}
	f.ID = id
	return f, nil
}

func (u *FeedbackUsecase) ListByOrder(ctx context.Context, orderID int64) ([]model.Feedback, error) {
	if orderID <= 0 {
		return []model.Feedback{}, NewError(KindInvalidRequest, "invalid id")
	}

	items, err := u.feedbackRepo.ListByOrderID(ctx, orderID)
	if err != nil {
		return []model.Feedback{}, NewError(KindTransactionFailure, "db error")
	}
	return items, nil
}
