package models

import "time"

type Shop struct {
	ID uint `gorm:"primaryKey" json:"id"`

	BarberID uint  `gorm:"uniqueIndex;not null" json:"barberId"`
	Barber   *User `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"barber,omitempty"`

	Name        string `gorm:"size:100;not null" json:"name"`
	Description string `gorm:"size:500" json:"description"`
	Address     string `gorm:"size:255" json:"address"`
	City        string `gorm:"size:100" json:"city"`
	State       string `gorm:"size:50" json:"state"`
	ZipCode     string `gorm:"size:20" json:"zipCode"`
	Phone       string `gorm:"size:20" json:"phone"`
	Email       string `gorm:"size:100" json:"email"`

	Latitude  *float64 `json:"latitude"`
	Longitude *float64 `json:"longitude"`
	ImageURL  string   `gorm:"size:500" json:"imageUrl"`

	Rating   float64 `gorm:"default:0" json:"rating"`
	IsActive bool    `gorm:"default:true" json:"isActive"`

	Services []Service `gorm:"constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"services"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}
