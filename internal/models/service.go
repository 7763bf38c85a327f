package models

import "time"

// Service is a bookable offering of a shop. Duration is in minutes.
type Service struct {
	ID     uint `gorm:"primaryKey" json:"id"`
	ShopID uint `gorm:"index;not null" json:"shopId"`

	Name        string  `gorm:"size:100;not null" json:"name"`
	Description string  `gorm:"size:255" json:"description"`
	Price       float64 `gorm:"not null" json:"price"`
	Duration    int     `gorm:"not null" json:"duration"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
