package models

import (
	"fmt"
	"time"

	"gorm.io/gorm"
)

type OrderStatus string

const (
	StatusPending   OrderStatus = "pending"
	StatusConfirmed OrderStatus = "confirmed"
	StatusReady     OrderStatus = "ready"
	StatusCompleted OrderStatus = "completed"
	StatusCanceled  OrderStatus = "canceled"
)

type PickupOption string

const (
	PickupASAP      PickupOption = "asap"
	PickupScheduled PickupOption = "scheduled"
)

type Order struct {
	gorm.Model
	RestaurantID  uint       `json:"restaurant_id"`
	Restaurant    Restaurant `json:"restaurant,omitempty" gorm:"foreignKey:RestaurantID"`
	CustomerID    *uint      `json:"customer_id"` // nil for guest checkout
	Customer      *User      `json:"customer,omitempty" gorm:"foreignKey:CustomerID"`
	CustomerName  string     `json:"customer_name"`
	CustomerEmail string     `json:"customer_email"`
	CustomerPhone string     `json:"customer_phone"`

	Items    []OrderItem `json:"items" gorm:"foreignKey:OrderID"`
	Subtotal float64     `json:"subtotal"`
	Total    float64     `json:"total"`

	PickupOption        PickupOption `json:"pickup_option"`
	PickupDate          string       `json:"pickup_date"` // "YYYY-MM-DD", empty for asap
	PickupTime          string       `json:"pickup_time"` // display slot, e.g. "2:30 PM"
	EstimatedPickupTime *time.Time   `json:"estimated_pickup_time"`

	ConfirmationCode string      `json:"confirmation_code"`
	Status           OrderStatus `json:"status"`
}

type OrderItem struct {
	gorm.Model
	OrderID    uint     `json:"order_id"`
	MenuItemID uint     `json:"menu_item_id"`
	MenuItem   MenuItem `json:"menu_item,omitempty" gorm:"foreignKey:MenuItemID"`
	Name       string   `json:"name"` // snapshot of the menu item name at order time
	Quantity   int      `json:"quantity"`
	UnitPrice  float64  `json:"unit_price"`
	LineTotal  float64  `json:"line_total"`
}

func (o *Order) BeforeCreate(tx *gorm.DB) error {
	if o.Status == "" {
		o.Status = StatusPending
	}
	return nil
}

// ValidateStatusTransition enforces the order lifecycle:
// pending -> confirmed | canceled
// confirmed -> ready | canceled
// ready -> completed
func ValidateStatusTransition(from, to OrderStatus) error {
	switch from {
	case StatusPending:
		if to != StatusConfirmed && to != StatusCanceled {
			return fmt.Errorf("invalid transition from pending to %s", to)
		}
	case StatusConfirmed:
		if to != StatusReady && to != StatusCanceled {
			return fmt.Errorf("invalid transition from confirmed to %s", to)
		}
	case StatusReady:
		if to != StatusCompleted {
			return fmt.Errorf("invalid transition from ready to %s", to)
		}
	case StatusCompleted, StatusCanceled:
		return fmt.Errorf("no transitions allowed from %s", from)
	}
	return nil
}

// UpdateStatus applies a guarded status transition and saves the order.
func (o *Order) UpdateStatus(tx *gorm.DB, newStatus OrderStatus) error {
	if err := ValidateStatusTransition(o.Status, newStatus); err != nil {
		return err
	}
	o.Status = newStatus
	return tx.Save(o).Error
}
