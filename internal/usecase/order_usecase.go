package usecase

import (
	"context"
	"fmt"
	"time"

	"restaurant/internal/domain/model"
	repo "restaurant/internal/repository"

	"github.com/google/uuid"
)

type OrderUsecase struct {
	tx repo.TransactionManager
}

func NewOrderUsecase(tx repo.TransactionManager) *OrderUsecase {
	return &OrderUsecase{tx: tx}
}

type CreateOrderInput struct {
	OrderType   string
	OrderStatus string
	ProductIDs  []int64
}

type OrderItemOutput struct {
	ProductID      int64  `json:"product_id"`
	Name           string `json:"name"`
	UnitPrice      int64  `json:"unit_price"`
	EffectivePrice int64  `json:"effective_price"`
	Quantity       int64  `json:"quantity"`
}

type OrderOutput struct {
	ID          int64             `json:"id"`
	OrderNumber string            `json:"order_number"`
	OrderType   string            `json:"order_type"`
	OrderStatus string            `json:"order_status"`
	OrderDate   time.Time         `json:"order_date"`
	PromoCode   string            `json:"promo_code,omitempty"`
	TotalPrice  int64             `json:"total_price"`
	Items       []OrderItemOutput `json:"items"`
}

// 注文確定の本体。集計→検査→引当て→スナップショットをこの順で行う。
// 必ずトランザクション内で呼ぶこと。途中で失敗したら呼び出し側のtxごと巻き戻る。
func buildOrderItems(ctx context.Context, r repo.TxRepos, productIDs []int64) ([]model.OrderItem, error) {
	if len(productIDs) == 0 {
		return nil, NewError(KindInvalidRequest, "order must contain at least one product")
	}

	// 商品ごとの注文数。重複IDは1出現＝1個の意味。
	counts := make(map[int64]int64, len(productIDs))
	uniqueIDs := make([]int64, 0, len(productIDs))
	for _, id := range productIDs {
		if _, seen := counts[id]; !seen {
			uniqueIDs = append(uniqueIDs, id)
		}
		counts[id]++
	}

	products := make(map[int64]model.Product, len(uniqueIDs))
	for _, id := range uniqueIDs {
		p, err := r.Products().FindByID(ctx, id)
		if err == repo.ErrNotFound {
			return nil, NewError(KindNotFound, fmt.Sprintf("product %d not found", id))
		}
		if err != nil {
			return nil, NewError(KindTransactionFailure, "db error")
		}
		products[id] = p
	}

	// 必要量の集計（材料名→合計）。namesで順序を固定する。
	required := make(map[string]int64)
	names := make([]string, 0)
	for _, id := range uniqueIDs {
		for _, ri := range products[id].Ingredients {
			if _, seen := required[ri.Name]; !seen {
				names = append(names, ri.Name)
			}
			required[ri.Name] += ri.Quantity * counts[id]
		}
	}

	// 全材料を先に検査してから減らす。検査が終わるまで一切書き込まない。
	for _, name := range names {
		ing, err := r.Ingredients().FindByName(ctx, name)
		if err == repo.ErrNotFound {
			// 未登録の材料は在庫0扱い
			return nil, NewInsufficientStock(name, required[name], 0)
		}
		if err != nil {
			return nil, NewError(KindTransactionFailure, "db error")
		}
		if ing.Quantity < required[name] {
			return nil, NewInsufficientStock(name, required[name], ing.Quantity)
		}
	}

	// 引当て。並行注文と競合すると条件付きUPDATEが外れるので、
	// そのときは不足として返してtxごとロールバックさせる。
	for _, name := range names {
		ok, err := r.Ingredients().DecreaseIfEnough(ctx, name, required[name])
		if err != nil {
			return nil, NewError(KindTransactionFailure, "db error")
		}
		if !ok {
			avail := int64(0)
			if ing, err2 := r.Ingredients().FindByName(ctx, name); err2 == nil {
				avail = ing.Quantity
			}
			return nil, NewInsufficientStock(name, required[name], avail)
		}
	}

	// スナップショット行。数量は元リストの出現回数をそのまま残す。
	// 価格はここで凍結する。以後のProductの変更は既存注文に波及しない。
	items := make([]model.OrderItem, 0, len(uniqueIDs))
	for _, id := range uniqueIDs {
		p := products[id]
		items = append(items, model.OrderItem{
			ProductID:           p.ID,
			ProductNameSnapshot: p.Name,
			UnitPriceSnapshot:   p.Price,
			EffectiveUnitPrice:  p.Price,
			Quantity:            counts[id],
		})
	}
	return items, nil
}

func (u *OrderUsecase) CreateOrder(ctx context.Context, in CreateOrderInput) (OrderOutput, error) {
	orderType := model.OrderType(in.OrderType)
	if !model.ValidOrderType(orderType) {
		return OrderOutput{}, NewError(KindInvalidRequest, "invalid order_type")
	}

	status := model.OrderStatus(in.OrderStatus)
	if in.OrderStatus == "" {
		status = model.OrderStatusPrepping
	}
	if !model.ValidOrderStatus(status) {
		return OrderOutput{}, NewError(KindInvalidStatus, "invalid order_status")
	}

	var out OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		items, err := buildOrderItems(ctx, r, in.ProductIDs)
		if err != nil {
			return err
		}

		now := time.Now()
		order := model.Order{
			OrderNumber: uuid.NewString(),
			OrderType:   orderType,
			OrderStatus: status,
			OrderDate:   now,
		}

		orderID, err := r.Orders().Create(ctx, order)
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		order.ID = orderID
		out = toOrderOutput(order, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func (u *OrderUsecase) GetOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewError(KindInvalidRequest, "invalid id")
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

func (u *OrderUsecase) ListOrders(ctx context.Context) ([]OrderOutput, error) {
	var outs []OrderOutput

	err := u.tx.WithinTx(ctx, func(r repo.TxRepos) error {
		orders, err := r.Orders().List(ctx)
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

// 注文の差し替え。新しい商品リストで確定処理をやり直す。
// 以前のスナップショット分の在庫は戻さない（既知のギャップ、削除と同じ扱い）。
func (u *OrderUsecase) UpdateOrder(ctx context.Context, orderID int64, in CreateOrderInput) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewError(KindInvalidRequest, "invalid id")
	}

	orderType := model.OrderType(in.OrderType)
	if !model.ValidOrderType(orderType) {
		return OrderOutput{}, NewError(KindInvalidRequest, "invalid order_type")
	}
	status := model.OrderStatus(in.OrderStatus)
	if !model.ValidOrderStatus(status) {
		return OrderOutput{}, NewError(KindInvalidStatus, "invalid order_status")
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

		// ステータスは前方向のみ
		if !model.CanTransition(o.OrderStatus, status) {
			return NewError(KindInvalidStatus, fmt.Sprintf("cannot change status from %s to %s", o.OrderStatus, status))
		}

		items, err := buildOrderItems(ctx, r, in.ProductIDs)
		if err != nil {
			return err
		}

		// スナップショットを作り直す。適用済みプロモは新しい明細には引き継がない。
		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return NewError(KindTransactionFailure, "db error")
		}
		if err := r.OrderItems().CreateBulk(ctx, orderID, items); err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		o.OrderType = orderType
		o.OrderStatus = status
		o.PromoCode = ""
		if err := r.Orders().Update(ctx, o); err != nil {
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

// 削除は在庫を戻さない（既知のギャップ。製品側の判断待ち）。
func (u *OrderUsecase) DeleteOrder(ctx context.Context, orderID int64) (OrderOutput, error) {
	if orderID <= 0 {
		return OrderOutput{}, NewError(KindInvalidRequest, "invalid id")
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

		items, err := r.OrderItems().ListByOrderID(ctx, orderID)
		if err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		if err := r.OrderItems().DeleteByOrderID(ctx, orderID); err != nil {
			return NewError(KindTransactionFailure, "db error")
		}
		if err := r.Orders().Delete(ctx, orderID); err != nil {
			return NewError(KindTransactionFailure, "db error")
		}

		// 削除した注文を確認用に返す
		out = toOrderOutput(o, items)
		return nil
	})

	if err != nil {
		return OrderOutput{}, err
	}
	return out, nil
}

func toOrderOutput(o model.Order, items []model.OrderItem) OrderOutput {
	outItems := make([]OrderItemOutput, 0, len(items))
	var total int64
	for _, it := range items {
		outItems = append(outItems, OrderItemOutput{
			ProductID:      it.ProductID,
			Name:           it.ProductNameSnapshot,
			UnitPrice:      it.UnitPriceSnapshot,
			EffectivePrice: it.EffectiveUnitPrice,
			Quantity:       it.Quantity,
		})
		total += it.EffectiveUnitPrice * it.Quantity
	}

	return OrderOutput{
		ID:          o.ID,
		OrderNumber: o.OrderNumber,
		OrderType:   string(o.OrderType),
		OrderStatus: string(o.OrderStatus),
		OrderDate:   o.OrderDate,
		PromoCode:   o.PromoCode,
		TotalPrice:  total,
		Items:       outItems,
	}
}
