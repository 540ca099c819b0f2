package model

import "time"

// プロモコード。適用は注文スナップショットの単価を書き換える。
// Product自体の価格は触らない。
type PromoCode struct {
	ID                 int64     `gorm:"primaryKey;autoIncrement" json:"id"`
	Code               string    `gorm:"type:varchar(20);not null;uniqueIndex" json:"code"`
	DiscountPercentage int64     `gorm:"not null" json:"discount_percentage"`
	ExpirationDate     time.Time `gorm:"not null" json:"expiration_date"`
	IsActive           bool      `gorm:"not null;default:true" json:"is_active"`
	CreatedAt          time.Time `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time `gorm:"not null;autoUpdateTime" json:"updated_at"`
}

// 今の時点で使えるか
func (p PromoCode) Usable(now time.Time) bool {
	return p.IsActive && !now.After(p.ExpirationDate)
}
