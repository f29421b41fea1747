package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Vikas94a/restaurant-dashboard/db"
	"github.com/Vikas94a/restaurant-dashboard/models"
	"github.com/Vikas94a/restaurant-dashboard/utils"
)

// CreateReservation books a table
func CreateReservation(c *fiber.Ctx) error {
	reservation := new(models.Reservation)
	if err := c.BodyParser(reservation); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if reservation.PartySize <= 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Party size must be positive",
		})
	}
	if reservation.CustomerName == "" || reservation.CustomerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Customer name and email are required",
		})
	}
	if _, err := time.Parse("2006-01-02 15:04", reservation.Date+" "+reservation.Time); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid date or time, expected YYYY-MM-DD and HH:MM",
			Error:   err.Error(),
		})
	}

	var restaurant models.Restaurant
	if err := db.DB.First(&restaurant, reservation.RestaurantID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Restaurant not found",
			Error:   err.Error(),
		})
	}

	if userID, ok := c.Locals("userID").(uint); ok {
		reservation.CustomerID = &userID
	}

	if err := db.DB.Create(reservation).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create reservation",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(reservation)
}

// GetAllReservations returns reservations, optionally filtered
func GetAllReservations(c *fiber.Ctx) error {
	query := db.DB.Order("date, time")
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}
	if date := c.Query("date"); date != "" {
		query = query.Where("date = ?", date)
	}

	var reservations []models.Reservation
	if err := query.Find(&reservations).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch reservations",
			Error:   err.Error(),
		})
	}
	return c.JSON(reservations)
}

// GetReservation returns a reservation by ID
func GetReservation(c *fiber.Ctx) error {
	id := c.Params("id")
	var reservation models.Reservation
	if err := db.DB.First(&reservation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Reservation not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(reservation)
}

// UpdateReservationStatus confirms, cancels or completes a reservation
func UpdateReservationStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var reservation models.Reservation
	if err := db.DB.First(&reservation, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Reservation not found",
			Error:   err.Error(),
		})
	}

	var input struct {
		Status models.ReservationStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := reservation.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	if input.Status == models.ReservationConfirmed {
		subject := "Your reservation is confirmed"
		body := "<p>Dear " + reservation.CustomerName + ",</p>" +
			"<p>Your table for " + reservation.Date + " at " + reservation.Time + " is confirmed.</p>"
		utils.SendEmailAsync(reservation.CustomerEmail, subject, body)
	}

	return c.JSON(reservation)
}
