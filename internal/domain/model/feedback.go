package model

import "time"

// 注文へのフィードバック。Ratingは1〜5。
type Feedback struct {
	ID         int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	CustomerID int64     `gorm:"not null;index" json:"customer_id"`
	OrderID    int64     `gorm:"not null;index" json:"order_id"`
	Rating     int       `gorm:"not null" json:"rating"`
	Comments   string    `gorm:"type:varchar(500)" json:"comments"`
	CreatedAt  time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
