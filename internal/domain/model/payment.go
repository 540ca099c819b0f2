package model

import "time"

type PaymentStatus string

const (
	PaymentStatusCompleted PaymentStatus = "completed"
)

// 支払い記録。payOrder成功時に1件作る。
type Payment struct {
	ID        int64         `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderID   int64         `gorm:"not null;index" json:"order_id"`
	Amount    int64         `gorm:"not null" json:"amount"`
	Method    string        `gorm:"type:varchar(50);not null" json:"method"`
	Status    PaymentStatus `gorm:"type:varchar(20);not null" json:"status"`
	CreatedAt time.Time     `gorm:"not null;autoCreateTime" json:"created_at"`
}
