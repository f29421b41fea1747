package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vikas94a/restaurant-dashboard/controllers"
	"github.com/Vikas94a/restaurant-dashboard/middleware"
)

// SetupReservationRoutes configures reservation routes
func SetupReservationRoutes(app *fiber.App) {
	reservation := app.Group("/reservations")
	reservation.Post("/", controllers.CreateReservation)
	reservation.Get("/", middleware.Protected(), middleware.RequirePermission("reservations", "read"), controllers.GetAllReservations)
	reservation.Get("/:id", controllers.GetReservation)
	reservation.Patch("/:id/status", middleware.Protected(), middleware.RequirePermission("reservations", "update"), controllers.UpdateReservationStatus)
}
