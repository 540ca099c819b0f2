package model

import "time"

type DietaryType string

const (
	DietarySpicy      DietaryType = "spicy"
	DietaryKids       DietaryType = "kids"
	DietaryVegetarian DietaryType = "vegetarian"
	DietaryLowFat     DietaryType = "low_fat"
	DietaryRegular    DietaryType = "regular"
)

// レシピの1行。素のJSONではなく型で持つ。
type RecipeItem struct {
	Name     string `json:"name"`
	Quantity int64  `json:"quantity"`
}

// 商品。注文確定中は読み取り専用の参照データ。
// Priceはセント単位の整数。
type Product struct {
	ID          int64        `gorm:"primaryKey;autoIncrement" json:"id"`
	Name        string       `gorm:"type:varchar(100);not null;uniqueIndex" json:"name"`
	Price       int64        `gorm:"not null" json:"price"`
	Promotion   int64        `gorm:"not null;default:0" json:"promotion"`
	DietaryType DietaryType  `gorm:"type:varchar(20);not null" json:"dietary_type"`
	Ingredients []RecipeItem `gorm:"type:jsonb;serializer:json" json:"ingredients"`
	CreatedAt   time.Time    `gorm:"not null;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time    `gorm:"not null;autoUpdateTime" json:"updated_at"`
}
