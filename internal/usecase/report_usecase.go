package usecase

import (
	"context"
	"time"

	repo "restaurant/internal/repository"
)

type ReportUsecase struct {
	tx repo.TransactionManager
}

func NewReportUsecase(tx repo.TransactionManager) *ReportUsecase {
	return &ReportUsecase{tx: tx}
}

type DailyRevenueOutput struct {
	Date    string `json:"date"`
	Revenue int64  `json:"revenue"`
}

// startとendは日付（その日の0時）。endの日も含む。
func (u *ReportUsecase) ListOrdersByDateRange(ctx context.Context, start time.Time, end time.Time) ([]OrderOutput, error) {
	if start.After(end) {
		return []OrderOutput{}, NewError(KindInvalidRequest, "start date is after end date")
	}

	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByDateRange(ctx, start, end.AddDate(0, 0, 1))
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		outs = make([]OrderOutput, 0, len(orders))
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewError(KindTransactionFailure, "db error")
			}
			outs = append(outs, toOrderOutput(o, items))
		}
		return nil
	})

	if err != nil {
		return []OrderOutput{}, err
	}
	return outs, nil
}

// その日の売上。Σ(適用後単価×数量)、セント単位。
func (u *ReportUsecase) DailyRevenue(ctx context.Context, date time.Time) (DailyRevenueOutput, error) {
	var out DailyRevenueOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().ListByDateRange(ctx, date, date.AddDate(0, 0, 1))
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		var total int64
		for _, o := range orders {
			items, err := r.OrderItems().ListByOrderID(ctx, o.ID)
			if err != nil {
				return NewError(KindTransactionFailure, "db error")
			}
			for _, it := range items {
				total += it.EffectiveUnitPrice * it.Quantity
			}
		}

		out = DailyRevenueOutput{
			Date:    date.Format("2006-01-02"),
			Revenue: total,
		}
		return nil
	})

	if err != nil {
		return DailyRevenueOutput{}, err
	}
	return out, nil
}
