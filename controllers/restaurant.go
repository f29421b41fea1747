package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Vikas94a/restaurant-dashboard/db"
	"github.com/Vikas94a/restaurant-dashboard/models"
	"github.com/Vikas94a/restaurant-dashboard/utils"
)

// GetAllRestaurants returns all restaurants
func GetAllRestaurants(c *fiber.Ctx) error {
	var restaurants []models.Restaurant
	if err := db.DB.Find(&restaurants).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch restaurants",
			Error:   err.Error(),
		})
	}
	return c.JSON(restaurants)
}

// GetRestaurant returns one restaurant with its opening hours
func GetRestaurant(c *fiber.Ctx) error {
	id := c.Params("id")
	var restaurant models.Restaurant
	if err := db.DB.Preload("OpeningHours").First(&restaurant, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Restaurant not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(restaurant)
}

// CreateRestaurant creates a restaurant owned by the authenticated user
func CreateRestaurant(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}

	restaurant := new(models.Restaurant)
	if err := c.BodyParser(restaurant); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	restaurant.OwnerID = userID

	if err := db.DB.Create(restaurant).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create restaurant",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(restaurant)
}

// UpdateRestaurant updates the restaurant profile
func UpdateRestaurant(c *fiber.Ctx) error {
	id := c.Params("id")
	var restaurant models.Restaurant
	if err := db.DB.First(&restaurant, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Restaurant not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&restaurant); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&restaurant).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update restaurant",
			Error:   err.Error(),
		})
	}
	return c.JSON(restaurant)
}

// GetOpeningHours returns the weekly hours table for a restaurant
func GetOpeningHours(c *fiber.Ctx) error {
	id := c.Params("id")
	var hours []models.OpeningHours
	if err := db.DB.Where("restaurant_id = ?", id).Order("weekday").Find(&hours).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch opening hours",
			Error:   err.Error(),
		})
	}
	return c.JSON(hours)
}

// hourInput is the write shape for one weekday; day names are normalized
// here so only valid weekday enums reach the database.
type hourInput struct {
	Day    string `json:"day"`
	Open   string `json:"open"`
	Close  string `json:"close"`
	Closed bool   `json:"closed"`
}

// UpdateOpeningHours upserts the submitted weekdays of a restaurant's hours
// table. The body carries up to 7 entries keyed by day name; weekdays absent
// from the payload keep their stored row.
func UpdateOpeningHours(c *fiber.Ctx) error {
	id := c.Params("id")
	var restaurant models.Restaurant
	if err := db.DB.First(&restaurant, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Restaurant not found",
			Error:   err.Error(),
		})
	}

	var inputs []hourInput
	if err := c.BodyParser(&inputs); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	seen := map[models.Weekday]bool{}
	for _, in := range inputs {
		weekday, err := models.ParseWeekday(in.Day)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Invalid weekday name",
				Error:   err.Error(),
			})
		}
		if seen[weekday] {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Duplicate weekday in hours table",
				Error:   weekday.String(),
			})
		}
		seen[weekday] = true

		// Open/close only matter on open days. Overnight-spanning hours are
		// not supported: close must be later than open on the same day.
		if !in.Closed {
			open, err := time.Parse("15:04", in.Open)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
					Message: "Invalid open time, expected HH:MM",
					Error:   err.Error(),
				})
			}
			closeTime, err := time.Parse("15:04", in.Close)
			if err != nil {
				return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
					Message: "Invalid close time, expected HH:MM",
					Error:   err.Error(),
				})
			}
			if !closeTime.After(open) {
				return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
					Message: "Close time must be later than open time",
				})
			}
		}

		var row models.OpeningHours
		existing := db.DB.Where("restaurant_id = ? AND weekday = ?", restaurant.ID, weekday).First(&row).RowsAffected > 0
		row.RestaurantID = restaurant.ID
		row.Weekday = weekday
		row.Open = in.Open
		row.Close = in.Close
		row.Closed = in.Closed

		var saveErr error
		if existing {
			saveErr = db.DB.Save(&row).Error
		} else {
			saveErr = db.DB.Create(&row).Error
		}
		if saveErr != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
				Message: "Failed to save opening hours",
				Error:   saveErr.Error(),
			})
		}
	}

	var hours []models.OpeningHours
	db.DB.Where("restaurant_id = ?", restaurant.ID).Order("weekday").Find(&hours)
	return c.JSON(hours)
}
