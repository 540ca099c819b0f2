package model

import "time"

// 注文明細。作成時点の商品情報を凍結して持つ。
// 後からProductの価格を変えても既存注文には影響しない。
// EffectiveUnitPriceはプロモ適用後の単価。適用前はUnitPriceSnapshotと同じ。
type OrderItem struct {
	ID                  int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID             int64     `gorm:"not null;index" json:"order_id"`
	ProductID           int64     `gorm:"not null;index" json:"product_id"`
	ProductNameSnapshot string    `gorm:"type:varchar(100);not null" json:"product_name_snapshot"`
	UnitPriceSnapshot   int64     `gorm:"not null" json:"unit_price_snapshot"`
	EffectiveUnitPrice  int64     `gorm:"not null" json:"effective_unit_price"`
	Quantity            int64     `gorm:"not null" json:"quantity"`
	CreatedAt           time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
