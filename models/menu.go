package models

import (
	"gorm.io/gorm"
)

type MenuCategory struct {
	gorm.Model
	RestaurantID uint       `json:"restaurant_id"`
	Name         string     `json:"name"`
	Description  string     `json:"description"`
	SortOrder    int        `json:"sort_order"`
	Items        []MenuItem `json:"items,omitempty" gorm:"foreignKey:CategoryID"`
}

type MenuItem struct {
	gorm.Model
	RestaurantID    uint    `json:"restaurant_id"`
	CategoryID      uint    `json:"category_id"`
	Name            string  `json:"name"`
	Description     string  `json:"description"`
	Price           float64 `json:"price"`
	Discount        float64 `json:"discount"` // Discount percentage
	DiscountedPrice float64 `json:"discounted_price" gorm:"-"`
	ImageURL        string  `json:"image_url"`
	Available       bool    `json:"available" gorm:"default:true"`
}

func (m *MenuItem) AfterFind(tx *gorm.DB) (err error) {
	m.DiscountedPrice = m.Price - (m.Price * m.Discount / 100)
	return
}
