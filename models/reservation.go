package models

import (
	"fmt"

	"gorm.io/gorm"
)

type ReservationStatus string

const (
	ReservationPending   ReservationStatus = "pending"
	ReservationConfirmed ReservationStatus = "confirmed"
	ReservationCanceled  ReservationStatus = "canceled"
	ReservationCompleted ReservationStatus = "completed"
)

type Reservation struct {
	gorm.Model
	RestaurantID  uint       `json:"restaurant_id"`
	Restaurant    Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	CustomerID    *uint      `json:"customer_id"`
	Customer      *User      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone string     `json:"customer_phone"`

	PartySize int    `json:"party_size"`
	Date      string `json:"date"` // "YYYY-MM-DD"
	Time      string `json:"time"` // "HH:MM" 24h
	Notes     string `json:"notes"`

	Status ReservationStatus `json:"status"`
}

func (r *Reservation) BeforeCreate(tx *gorm.DB) error {
	if r.Status == "" {
		r.Status = ReservationPending
	}
	return nil
}

// UpdateStatus applies a guarded status transition and saves the reservation.
func (r *Reservation) UpdateStatus(tx *gorm.DB, newStatus ReservationStatus) error {
	switch r.Status {
	case ReservationPending:
		if newStatus != ReservationConfirmed && newStatus != ReservationCanceled {
			return fmt.Errorf("invalid transition from pending to %s", newStatus)
		}
	case ReservationConfirmed:
		if newStatus != ReservationCompleted && newStatus != ReservationCanceled {
			return fmt.Errorf("invalid transition from confirmed to %s", newStatus)
		}
	case ReservationCompleted, ReservationCanceled:
		return fmt.Errorf("no transitions allowed from %s", r.Status)
	}

	r.Status = newStatus
	return tx.Save(r).Error
}
