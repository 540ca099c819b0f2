package model

import "time"

type OrderType string

const (
	OrderTypeTakeout  OrderType = "takeout"
	OrderTypeDelivery OrderType = "delivery"
)

type OrderStatus string

const (
	OrderStatusPrepping OrderStatus = "prepping"
	OrderStatusFinished OrderStatus = "finished"
	OrderStatusPaid     OrderStatus = "paid"
)

func ValidOrderType(t OrderType) bool {
	return t == OrderTypeTakeout || t == OrderTypeDelivery
}

func ValidOrderStatus(s OrderStatus) bool {
	return s == OrderStatusPrepping || s == OrderStatusFinished || s == OrderStatusPaid
}

// ステータスは前にしか進まない。prepping→finished、任意→paid。
func CanTransition(from OrderStatus, to OrderStatus) bool {
	if from == to {
		return true
	}
	switch to {
	case OrderStatusFinished:
		return from == OrderStatusPrepping
	case OrderStatusPaid:
		return from != OrderStatusPaid
	default:
		return false
	}
}

// 注文。購入内容はOrderItemのスナップショットが唯一の真実。
type Order struct {
	ID          int64       `gorm:"primaryKey;autoIncrement" json:"id"`
	OrderNumber string      `gorm:"type:varchar(50);not null;uniqueIndex" json:"order_number"`
	OrderType   OrderType   `gorm:"type:varchar(20);not null" json:"order_type"`
	OrderStatus OrderStatus `gorm:"type:varchar(20);not null;index" json:"order_status"`
	OrderDate   time.Time   `gorm:"not null;index" json:"order_date"`
	PromoCode   string      `gorm:"type:varchar(20);not null;default:''" json:"promo_code"`
	CreatedAt   time.Time   `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
