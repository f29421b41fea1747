package models

import (
	"fmt"
	"strings"
	"time"

	"gorm.io/gorm"
)

type Weekday int

const (
	Sunday Weekday = iota
	Monday
	Tuesday
	Wednesday
	Thursday
	Friday
	Saturday
)

var weekdayNames = [...]string{
	"sunday", "monday", "tuesday", "wednesday", "thursday", "friday", "saturday",
}

func (w Weekday) String() string {
	if w < Sunday || w > Saturday {
		return fmt.Sprintf("weekday(%d)", int(w))
	}
	return weekdayNames[w]
}

// ParseWeekday normalizes a day name coming from the API or stored config.
// Matching is case-insensitive and ignores surrounding whitespace; anything
// else is rejected so bad names never reach the database.
func ParseWeekday(name string) (Weekday, error) {
	n := strings.ToLower(strings.TrimSpace(name))
	for i, candidate := range weekdayNames {
		if n == candidate {
			return Weekday(i), nil
		}
	}
	return 0, fmt.Errorf("unknown weekday %q", name)
}

type Restaurant struct {
	gorm.Model
	OwnerID      uint           `json:"owner_id"`
	Owner        User           `json:"owner,omitempty" gorm:"foreignKey:OwnerID"`
	Name         string         `json:"name"`
	Description  string         `json:"description"`
	Address      string         `json:"address"`
	City         string         `json:"city"`
	ZipCode      string         `json:"zip_code"`
	PhoneNumber  string         `json:"phone_number"`
	Email        string         `json:"email"`
	LogoURL      string         `json:"logo_url"`
	TimeZone     string         `json:"time_zone"` // IANA name, e.g. "Europe/Oslo"
	OpeningHours []OpeningHours `json:"opening_hours,omitempty" gorm:"foreignKey:RestaurantID"`
}

// Location resolves the restaurant's IANA timezone, falling back to the
// server's local zone when unset or invalid.
func (r *Restaurant) Location() *time.Location {
	if r.TimeZone == "" {
		return time.Local
	}
	loc, err := time.LoadLocation(r.TimeZone)
	if err != nil {
		return time.Local
	}
	return loc
}

// OpeningHours holds one weekday's pickup window. Exactly one row exists per
// weekday per restaurant; Open and Close are "HH:MM" 24h local times and are
// only meaningful when Closed is false.
type OpeningHours struct {
	gorm.Model
	RestaurantID uint    `json:"restaurant_id" gorm:"uniqueIndex:idx_restaurant_weekday"`
	Weekday      Weekday `json:"weekday" gorm:"uniqueIndex:idx_restaurant_weekday"`
	Open         string  `json:"open"`
	Close        string  `json:"close"`
	Closed       bool    `json:"closed" gorm:"default:false"`
}
