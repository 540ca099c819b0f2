package model

import "time"

// 在庫の手動調整の履歴。注文による引当てとは別に残す。
type IngredientAdjustment struct {
	ID           int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	IngredientID int64     `gorm:"not null;index" json:"ingredient_id"`
	StaffID      int64     `gorm:"not null;index" json:"staff_id"`
	Delta        int64     `gorm:"not null" json:"delta"`
	Reason       string    `gorm:"type:varchar(255);not null" json:"reason"`
	CreatedAt    time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
}
