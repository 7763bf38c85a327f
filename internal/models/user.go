package models

import "time"

const (
	RoleCustomer = "customer"
	RoleBarber   = "barber"
)

type User struct {
	ID uint `gorm:"primaryKey" json:"id"`

	Email        string  `gorm:"size:100;uniqueIndex;not null" json:"email"`
	PasswordHash string  `gorm:"size:255;not null" json:"-"`
	Name         *string `gorm:"size:100" json:"name"`
	Role         string  `gorm:"size:20;default:'customer'" json:"role"`

	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`
}

// PublicUser is the projection returned to clients. The password hash never
// leaves the model (json:"-"), but responses also omit UpdatedAt.
type PublicUser struct {
	ID        uint      `json:"id"`
	Email     string    `json:"email"`
	Name      *string   `json:"name"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"createdAt"`
}

func (u *User) Public() PublicUser {
	return PublicUser{
		ID:        u.ID,
		Email:     u.Email,
		Name:      u.Name,
		Role:      u.Role,
		CreatedAt: u.CreatedAt,
	}
}
