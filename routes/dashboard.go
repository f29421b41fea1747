package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vikas94a/restaurant-dashboard/controllers"
	"github.com/Vikas94a/restaurant-dashboard/middleware"
)

// SetupDashboardRoutes configures owner dashboard routes
func SetupDashboardRoutes(app *fiber.App) {
	dashboard := app.Group("/dashboard", middleware.Protected())
	dashboard.Get("/overview", middleware.RequirePermission("dashboard", "read"), controllers.GetDashboardOverview)
}
