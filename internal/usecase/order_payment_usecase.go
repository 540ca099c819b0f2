package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
)

type PayOrderInput struct {
	Method string
}

// 支払い。すでにpaidなら失敗する（二重払い防止）。
func (u *OrderUsecase) PayOrder(ctx context.Context, orderID int64, in PayOrderInput) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewError(KindInvalidRequest, "invalid id")
	}

	method := strings.TrimSpace(in.Method)
	if method == "" {
		method = "cash"
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewError(KindNotFound, fmt.Sprintf("order %d not found", orderID))
		}
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		if o.OrderStatus == model.OrderStatusPaid {
			return NewError(KindAlreadyPaid, fmt.Sprintf("order %d is already paid", orderID))
		}

		if err := r.Orders().UpdateStatus(ctx, orderID, model.OrderStatusPaid); err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		var total int64
		for _, it := range items {
			total += it.EffectiveUnitPrice * it.Quantity
		}

		if _, err := r.Payments().Create(ctx, model.Payment{
			OrderID: orderID,
			Amount:  total,
			Method:  method,
			Status:  model.PaymentStatusCompleted,
		}); err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		o.OrderStatus = model.OrderStatusPaid
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// プロモ適用。割引は凍結済みの元単価から計算するので再適用しても重ならない。
func (u *OrderUsecase) ApplyPromoCode(ctx context.Context, orderID int64, code string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewError(KindInvalidRequest, "invalid id")
	}
	code = strings.TrimSpace(code)
	if code == "" {
		return OrderOutput{}, NewError(KindInvalidRequest, "promo code is required")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewError(KindNotFound, fmt.Sprintf("order %d not found", orderID))
		}
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		pc, err := r.PromoCodes().FindByCode(ctx, code)
		if err == repo.ErrNotFound {
			return NewError(KindNotFound, fmt.Sprintf("promo code %q not found", code))
		}
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		if !pc.Usable(time.Now()) {
			return NewError(KindInvalidOrExpired, fmt.Sprintf("promo code %q is inactive or expired", code))
		}

		if err := r.OrderItems().ApplyDiscount(ctx, orderID, pc.DiscountPercentage); err != nil {
			return NewError(KindTransactionFailure, "db error")
		}
		if err := r.Orders().SetPromoCode(ctx, orderID, pc.Code); err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		o.PromoCode = pc.Code
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// ステータス遷移。prepping→finished、任意→paid。後戻りはできない。
func (u *OrderUsecase) UpdateStatus(ctx context.Context, orderID int64, status string) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewError(KindInvalidRequest, "invalid id")
	}

	newStatus := model.OrderStatus(strings.TrimSpace(status))
	if !model.ValidOrderStatus(newStatus) {
		return OrderOutput{}, NewError(KindInvalidStatus, fmt.Sprintf("unknown status %q", status))
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		o, err := r.Orders().FindByID(ctx, orderID)
		if err == repo.ErrNotFound {
			return NewError(KindNotFound, fmt.Sprintf("order %d not found", orderID))
		}
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		if newStatus == model.OrderStatusPaid && o.OrderStatus == model.OrderStatusPaid {
			return NewError(KindAlreadyPaid, fmt.Sprintf("order %d is already paid", orderID))
		}
		if !model.CanTransition(o.OrderStatus, newStatus) {
			return NewError(KindInvalidStatus, fmt.Sprintf("cannot change status from %s to %s", o.OrderStatus, newStatus))
		}

		if o.OrderStatus != newStatus {
			if err := r.Orders().UpdateStatus(ctx, orderID, newStatus); err != nil {
				return NewError(KindTransactionFailure, "db error")
			}
			o.OrderStatus = newStatus
		}

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

// 注文の支払い履歴
func (u *OrderUsecase) ListPayments(ctx context.Context, orderID int64) ([]model.Payment, error) {
	if orderID <= 0 {
		return []model.Payment{}, NewError(KindInvalidRequest, "invalid id")
	}

	var payments []model.Payment

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		if _, err := r.Orders().FindByID(ctx, orderID); err != nil {
			if err == repo.ErrNotFound {
				return NewError(KindNotFound, fmt.Sprintf("order %d not found", orderID))
			}
			return NewError(KindTransactionFailure, "db error")
		}

		var err error
		payments, err = r.Payments().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}
		return nil
	})

	if err != nil {
		return []model.Payment{}, err
	}
	return payments, nil
}
