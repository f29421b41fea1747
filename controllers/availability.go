package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Vikas94a/restaurant-dashboard/availability"
	"github.com/Vikas94a/restaurant-dashboard/db"
	"github.com/Vikas94a/restaurant-dashboard/models"
	"github.com/Vikas94a/restaurant-dashboard/utils"
)

// loadRestaurantHours fetches a restaurant, its hours table and the current
// instant in the restaurant's own timezone. The engine itself never reads
// the clock, so this is the single place "now" is resolved for availability.
func loadRestaurantHours(id string) (*models.Restaurant, []models.OpeningHours, time.Time, error) {
	var restaurant models.Restaurant
	if err := db.DB.First(&restaurant, id).Error; err != nil {
		return nil, nil, time.Time{}, err
	}
	var hours []models.OpeningHours
	if err := db.DB.Where("restaurant_id = ?", restaurant.ID).Find(&hours).Error; err != nil {
		return nil, nil, time.Time{}, err
	}
	now := time.Now().In(restaurant.Location())
	return &restaurant, hours, now, nil
}

// GetAvailability returns the asap flag, the selectable pickup dates and the
// default selection for a restaurant.
func GetAvailability(c *fiber.Ctx) error {
	_, hours, now, err := loadRestaurantHours(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Restaurant not found",
			Error:   err.Error(),
		})
	}

	dates := availability.AvailableDates(hours, now, availability.DefaultLookaheadDays)
	dateStrings := make([]string, 0, len(dates))
	for _, d := range dates {
		dateStrings = append(dateStrings, d.Format(availability.DateLayout))
	}

	return c.JSON(fiber.Map{
		"asap_available":    availability.IsAsapAvailable(hours, now),
		"dates":             dateStrings,
		"default_selection": availability.DefaultSelection(hours, now),
	})
}

// GetPickupSlots returns the pickup slots for ?date=YYYY-MM-DD.
func GetPickupSlots(c *fiber.Ctx) error {
	_, hours, now, err := loadRestaurantHours(c.Params("id"))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Restaurant not found",
			Error:   err.Error(),
		})
	}

	dateParam := c.Query("date")
	date, err := time.ParseInLocation(availability.DateLayout, dateParam, now.Location())
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date, expected YYYY-MM-DD",
			Error:   err.Error(),
		})
	}

	slots := availability.PickupTimeSlots(hours, now, date, availability.SlotInterval)
	if slots == nil {
		slots = []string{}
	}
	return c.JSON(fiber.Map{
		"date":  dateParam,
		"slots": slots,
	})
}
