package models

import (
	"time"
)

type User struct {
	ID           uint          `json:"id" gorm:"primaryKey"`
	Name         string        `json:"name"`
	Email        string        `json:"email" gorm:"unique"`
	Password     string        `json:"password,omitempty"`
	RoleID       uint          `json:"role_id"`
	Role         Role          `json:"role,omitempty" gorm:"foreignKey:RoleID"`
	Restaurants  []Restaurant  `json:"restaurants,omitempty" gorm:"foreignKey:OwnerID"`
	Orders       []Order       `json:"orders,omitempty" gorm:"foreignKey:CustomerID"`
	Reservations []Reservation `json:"reservations,omitempty" gorm:"foreignKey:CustomerID"`
	CreatedAt    time.Time     `json:"created_at"`
	UpdatedAt    time.Time     `json:"updated_at"`
}
