package unit

import (
	"context"
	"testing"
	"time"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"
	"restaurant/internal/usecase"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

// =====================
// PayOrder tests
// =====================

func TestOrderUsecase_PayOrder_Success(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, OrderType: model.OrderTypeTakeout, OrderStatus: model.OrderStatusFinished,
	}, nil)
	e.orders.On("UpdateStatus", mock.Anything, int64(7), model.OrderStatusPaid).Return(nil)
	e.items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{
		{OrderID: 7, ProductID: 1, UnitPriceSnapshot: 1200, EffectiveUnitPrice: 1080, Quantity: 2},
	}, nil)
	// 支払額は適用後単価の合計
	e.payments.On("Create", mock.Anything, mock.MatchedBy(func(p model.Payment) bool {
		return p.OrderID == 7 && p.Amount == 2160 && p.Method == "card" && p.Status == model.PaymentStatusCompleted
	})).Return(int64(1), nil)

	out, err := e.uc.PayOrder(context.Background(), 7, usecase.PayOrderInput{Method: "card"})
	assert.NoError(t, err)
	assert.Equal(t, "paid", out.OrderStatus)
	assert.Equal(t, int64(2160), out.TotalPrice)

	e.orders.AssertExpectations(t)
	e.payments.AssertExpectations(t)
}

func TestOrderUsecase_PayOrder_DefaultsToCash(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, OrderStatus: model.OrderStatusPrepping,
	}, nil)
	e.orders.On("UpdateStatus", mock.Anything, int64(7), model.OrderStatusPaid).Return(nil)
	e.items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{}, nil)
	e.payments.On("Create", mock.Anything, mock.MatchedBy(func(p model.Payment) bool {
		return p.Method == "cash"
	})).Return(int64(1), nil)

	_, err := e.uc.PayOrder(context.Background(), 7, usecase.PayOrderInput{})
	assert.NoError(t, err)
	e.payments.AssertExpectations(t)
}

// 二重払いは409相当で弾く。2回目はステータス更新も支払い行も作らない。
func TestOrderUsecase_PayOrder_AlreadyPaid(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, OrderStatus: model.OrderStatusPaid,
	}, nil)

	_, err := e.uc.PayOrder(context.Background(), 7, usecase.PayOrderInput{Method: "card"})
	ue := assertKind(t, err, usecase.KindAlreadyPaid)
	if ue != nil {
		assert.Contains(t, ue.Message, "already paid")
	}

	e.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
	e.payments.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestOrderUsecase_PayOrder_OrderNotFound(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(404)).Return(model.Order{}, repo.ErrNotFound)

	_, err := e.uc.PayOrder(context.Background(), 404, usecase.PayOrderInput{})
	assertKind(t, err, usecase.KindNotFound)
}

// =====================
// ApplyPromoCode tests
// =====================

func TestOrderUsecase_ApplyPromoCode_Success(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, OrderStatus: model.OrderStatusPrepping,
	}, nil)
	e.promos.On("FindByCode", mock.Anything, "WELCOME10").Return(model.PromoCode{
		ID: 1, Code: "WELCOME10", DiscountPercentage: 10,
		ExpirationDate: time.Now().AddDate(0, 1, 0), IsActive: true,
	}, nil)
	e.items.On("ApplyDiscount", mock.Anything, int64(7), int64(10)).Return(nil)
	e.orders.On("SetPromoCode", mock.Anything, int64(7), "WELCOME10").Return(nil)
	e.items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{
		{OrderID: 7, ProductID: 1, UnitPriceSnapshot: 1200, EffectiveUnitPrice: 1080, Quantity: 2},
	}, nil)

	out, err := e.uc.ApplyPromoCode(context.Background(), 7, "WELCOME10")
	assert.NoError(t, err)
	assert.Equal(t, "WELCOME10", out.PromoCode)
	assert.Equal(t, int64(2160), out.TotalPrice)
	assert.Equal(t, int64(1200), out.Items[0].UnitPrice)
	assert.Equal(t, int64(1080), out.Items[0].EffectivePrice)

	e.items.AssertExpectations(t)
	e.orders.AssertExpectations(t)
}

// 再適用しても割引は元単価からの計算なので重ならない。
// usecaseは毎回同じ引数でApplyDiscountを呼ぶだけ。
func TestOrderUsecase_ApplyPromoCode_Idempotent(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, OrderStatus: model.OrderStatusPrepping, PromoCode: "WELCOME10",
	}, nil)
	e.promos.On("FindByCode", mock.Anything, "WELCOME10").Return(model.PromoCode{
		ID: 1, Code: "WELCOME10", DiscountPercentage: 10,
		ExpirationDate: time.Now().AddDate(0, 1, 0), IsActive: true,
	}, nil)
	e.items.On("ApplyDiscount", mock.Anything, int64(7), int64(10)).Return(nil)
	e.orders.On("SetPromoCode", mock.Anything, int64(7), "WELCOME10").Return(nil)
	e.items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{
		{OrderID: 7, ProductID: 1, UnitPriceSnapshot: 1200, EffectiveUnitPrice: 1080, Quantity: 2},
	}, nil)

	out1, err1 := e.uc.ApplyPromoCode(context.Background(), 7, "WELCOME10")
	out2, err2 := e.uc.ApplyPromoCode(context.Background(), 7, "WELCOME10")

	assert.NoError(t, err1)
	assert.NoError(t, err2)
	assert.Equal(t, out1.TotalPrice, out2.TotalPrice)
	e.items.AssertNumberOfCalls(t, "ApplyDiscount", 2)
}

func TestOrderUsecase_ApplyPromoCode_Expired(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, OrderStatus: model.OrderStatusPrepping,
	}, nil)
	e.promos.On("FindByCode", mock.Anything, "OLD").Return(model.PromoCode{
		ID: 2, Code: "OLD", DiscountPercentage: 50,
		ExpirationDate: time.Now().AddDate(0, 0, -1), IsActive: true,
	}, nil)

	_, err := e.uc.ApplyPromoCode(context.Background(), 7, "OLD")
	assertKind(t, err, usecase.KindInvalidOrExpired)

	// 期限切れは価格に触らない
	e.items.AssertNotCalled(t, "ApplyDiscount", mock.Anything, mock.Anything, mock.Anything)
	e.orders.AssertNotCalled(t, "SetPromoCode", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_ApplyPromoCode_Inactive(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, OrderStatus: model.OrderStatusPrepping,
	}, nil)
	e.promos.On("FindByCode", mock.Anything, "KILLED").Return(model.PromoCode{
		ID: 3, Code: "KILLED", DiscountPercentage: 20,
		ExpirationDate: time.Now().AddDate(0, 1, 0), IsActive: false,
	}, nil)

	_, err := e.uc.ApplyPromoCode(context.Background(), 7, "KILLED")
	assertKind(t, err, usecase.KindInvalidOrExpired)
	e.items.AssertNotCalled(t, "ApplyDiscount", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_ApplyPromoCode_CodeNotFound(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{ID: 7}, nil)
	e.promos.On("FindByCode", mock.Anything, "NOPE").Return(model.PromoCode{}, repo.ErrNotFound)

	_, err := e.uc.ApplyPromoCode(context.Background(), 7, "NOPE")
	assertKind(t, err, usecase.KindNotFound)
}

func TestOrderUsecase_ApplyPromoCode_EmptyCode(t *testing.T) {
	e := newOrderEnv()

	_, err := e.uc.ApplyPromoCode(context.Background(), 7, "  ")
	assertKind(t, err, usecase.KindInvalidRequest)
	e.tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

// =====================
// UpdateStatus tests
// =====================

func TestOrderUsecase_UpdateStatus_PreppingToFinished(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, OrderStatus: model.OrderStatusPrepping,
	}, nil)
	e.orders.On("UpdateStatus", mock.Anything, int64(7), model.OrderStatusFinished).Return(nil)
	e.items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{}, nil)

	out, err := e.uc.UpdateStatus(context.Background(), 7, "finished")
	assert.NoError(t, err)
	assert.Equal(t, "finished", out.OrderStatus)
	e.orders.AssertExpectations(t)
}

func TestOrderUsecase_UpdateStatus_SameStatusIsNoop(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, OrderStatus: model.OrderStatusPrepping,
	}, nil)
	e.items.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.OrderItem{}, nil)

	out, err := e.uc.UpdateStatus(context.Background(), 7, "prepping")
	assert.NoError(t, err)
	assert.Equal(t, "prepping", out.OrderStatus)
	e.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_UpdateStatus_BackwardRejected(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, OrderStatus: model.OrderStatusFinished,
	}, nil)

	_, err := e.uc.UpdateStatus(context.Background(), 7, "prepping")
	assertKind(t, err, usecase.KindInvalidStatus)
	e.orders.AssertNotCalled(t, "UpdateStatus", mock.Anything, mock.Anything, mock.Anything)
}

func TestOrderUsecase_UpdateStatus_PaidToPaidIsAlreadyPaid(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{
		ID: 7, OrderStatus: model.OrderStatusPaid,
	}, nil)

	_, err := e.uc.UpdateStatus(context.Background(), 7, "paid")
	assertKind(t, err, usecase.KindAlreadyPaid)
}

func TestOrderUsecase_UpdateStatus_UnknownStatus(t *testing.T) {
	e := newOrderEnv()

	_, err := e.uc.UpdateStatus(context.Background(), 7, "cancelled")
	assertKind(t, err, usecase.KindInvalidStatus)
	e.tx.AssertNotCalled(t, "WithinTx", mock.Anything)
}

// =====================
// ListPayments tests
// =====================

func TestOrderUsecase_ListPayments_Success(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(7)).Return(model.Order{ID: 7}, nil)
	e.payments.On("ListByOrderID", mock.Anything, int64(7)).Return([]model.Payment{
		{ID: 1, OrderID: 7, Amount: 2160, Method: "card", Status: model.PaymentStatusCompleted},
	}, nil)

	payments, err := e.uc.ListPayments(context.Background(), 7)
	assert.NoError(t, err)
	if assert.Equal(t, 1, len(payments)) {
		assert.Equal(t, int64(2160), payments[0].Amount)
	}
}

func TestOrderUsecase_ListPayments_OrderNotFound(t *testing.T) {
	e := newOrderEnv()

	e.orders.On("FindByID", mock.Anything, int64(404)).Return(model.Order{}, repo.ErrNotFound)

	_, err := e.uc.ListPayments(context.Background(), 404)
	assertKind(t, err, usecase.KindNotFound)
}
