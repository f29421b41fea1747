package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vikas94a/restaurant-dashboard/controllers"
	"github.com/Vikas94a/restaurant-dashboard/middleware"
)

// SetupRestaurantRoutes configures restaurant profile, hours and
// availability routes
func SetupRestaurantRoutes(app *fiber.App) {
	restaurant := app.Group("/restaurants")
	restaurant.Get("/", controllers.GetAllRestaurants)
	restaurant.Get("/:id", controllers.GetRestaurant)
	restaurant.Post("/", middleware.Protected(), middleware.RequirePermission("restaurants", "create"), controllers.CreateRestaurant)
	restaurant.Patch("/:id", middleware.Protected(), middleware.RequirePermission("restaurants", "update"), controllers.UpdateRestaurant)

	// Weekly hours table
	restaurant.Get("/:id/hours", controllers.GetOpeningHours)
	restaurant.Put("/:id/hours", middleware.Protected(), middleware.RequirePermission("restaurants", "update"), controllers.UpdateOpeningHours)

	// Storefront availability queries
	restaurant.Get("/:id/availability", controllers.GetAvailability)
	restaurant.Get("/:id/availability/slots", controllers.GetPickupSlots)

	// Storefront menu
	restaurant.Get("/:id/menu", controllers.GetMenu)
	restaurant.Post("/:id/categories", middleware.Protected(), middleware.RequirePermission("menu", "create"), controllers.CreateCategory)
}
