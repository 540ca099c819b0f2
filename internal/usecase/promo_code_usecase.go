package usecase

import (
	"context"
	"fmt"
	"strings"
	"time"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
)

// プロモコードの管理系（作成/一覧/停止）。注文への適用はOrderUsecase側。
type PromoCodeUsecase struct {
	promoRepo repo.PromoCodeRepository
}

func NewPromoCodeUsecase(promoRepo repo.PromoCodeRepository) *PromoCodeUsecase {
	return &PromoCodeUsecase{promoRepo: promoRepo}
}

type CreatePromoCodeInput struct {
	Code               string
	DiscountPercentage int64
	ExpirationDate     time.Time
}

func (u *PromoCodeUsecase) Create(ctx context.Context, in CreatePromoCodeInput) (model.PromoCode, error) {
	code := strings.TrimSpace(in.Code)
	if code == "" || len(code) > 20 {
		return model.PromoCode{}, NewError(KindInvalidRequest, "invalid code")
	}
	if in.DiscountPercentage < 1 || in.DiscountPercentage > 100 {
		return model.PromoCode{}, NewError(KindInvalidRequest, "discount_percentage must be between 1 and 100")
	}
	if in.ExpirationDate.IsZero() {
		return model.PromoCode{}, NewError(KindInvalidRequest, "expiration_date is required")
	}

	if _, err := u.promoRepo.FindByCode(ctx, code); err == nil {
		return model.PromoCode{}, NewError(KindInvalidRequest, fmt.Sprintf("promo code %q already exists", code))
	} else if err != repo.ErrNotFound {
		return model.PromoCode{}, NewError(KindTransactionFailure, "db error")
	}

	pc := model.PromoCode{
		Code:               code,
		DiscountPercentage: in.DiscountPercentage,
		ExpirationDate:     in.ExpirationDate,
		IsActive:           true,
	}

	id, err := u.promoRepo.Create(ctx, pc)
	if err != nil {
		return model.PromoCode{}, NewError(KindTransactionFailure, "db error")
	}
	pc.ID = id
	return pc, nil
}

func (u *PromoCodeUsecase) List(ctx context.Context) ([]model.PromoCode, error) {
	items, err := u.promoRepo.List(ctx)
	if err != nil {
		return []model.PromoCode{}, NewError(KindTransactionFailure, "db error")
	}
	return items, nil
}

// 停止。既に適用済みの注文のスナップショットには影響しない。
func (u *PromoCodeUsecase) Deactivate(ctx context.Context, code string) (model.PromoCode, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return model.PromoCode{}, NewError(KindInvalidRequest, "invalid code")
	}

	pc, err := u.promoRepo.FindByCode(ctx, code)
	if err == repo.ErrNotFound {
		return model.PromoCode{}, NewError(KindNotFound, fmt.Sprintf("promo code %q not found", code))
	}
	if err != nil {
		return model.PromoCode{}, NewError(KindTransactionFailure, "db error")
	}

	if pc.IsActive {
		pc.IsActive = false
		if err := u.promoRepo.Save(ctx, pc); err != nil {
			return model.PromoCode{}, NewError(KindTransactionFailure, "db error")
		}
	}
	return pc, nil
}
