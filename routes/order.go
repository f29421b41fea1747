package routes

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Vikas94a/restaurant-dashboard/controllers"
	"github.com/Vikas94a/restaurant-dashboard/middleware"
)

// SetupOrderRoutes configures checkout and order management routes
func SetupOrderRoutes(app *fiber.App) {
	order := app.Group("/orders")

	// Checkout is open to guests but rate-limited per IP.
	order.Post("/", middleware.RateLimit(10, time.Minute), controllers.CreateOrder)

	order.Get("/", middleware.Protected(), middleware.RequirePermission("orders", "read"), controllers.GetAllOrders)
	order.Get("/:id", controllers.GetOrder)
	order.Patch("/:id/status", middleware.Protected(), middleware.RequirePermission("orders", "update"), controllers.UpdateOrderStatus)
}
