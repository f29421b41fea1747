package routes

import (
	"github.com/gofiber/fiber/v2"

	"github.com/Vikas94a/restaurant-dashboard/controllers"
	"github.com/Vikas94a/restaurant-dashboard/middleware"
)

// SetupMenuRoutes configures menu management routes for the dashboard
func SetupMenuRoutes(app *fiber.App) {
	categories := app.Group("/categories", middleware.Protected())
	categories.Patch("/:id", middleware.RequirePermission("menu", "update"), controllers.UpdateCategory)
	categories.Delete("/:id", middleware.RequirePermission("menu", "delete"), controllers.DeleteCategory)

	items := app.Group("/menu-items", middleware.Protected())
	items.Post("/", middleware.RequirePermission("menu", "create"), controllers.CreateMenuItem)
	items.Patch("/:id", middleware.RequirePermission("menu", "update"), controllers.UpdateMenuItem)
	items.Delete("/:id", middleware.RequirePermission("menu", "delete"), controllers.DeleteMenuItem)
	items.Post("/:id/image", middleware.RequirePermission("menu", "update"), controllers.UploadMenuItemImage)
}
