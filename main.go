package main

import (
	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"

	"github.com/Vikas94a/restaurant-dashboard/cron"
	"github.com/Vikas94a/restaurant-dashboard/db"
	"github.com/Vikas94a/restaurant-dashboard/redis"
	"github.com/Vikas94a/restaurant-dashboard/routes"
)

func main() {
	app := fiber.New()
	db.Init()
	redis.InitRedis()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
	}))

	routes.SetupAuthRoutes(app)
	routes.SetupRestaurantRoutes(app)
	routes.SetupMenuRoutes(app)
	routes.SetupOrderRoutes(app)
	routes.SetupReservationRoutes(app)
	routes.SetupDashboardRoutes(app)

	cron.StartCronJobs()

	app.Listen(":8000")
}
