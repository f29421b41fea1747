package controllers

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Vikas94a/restaurant-dashboard/db"
	"github.com/Vikas94a/restaurant-dashboard/models"
)

// GetDashboardOverview returns order and reservation statistics for the
// owner dashboard. Owners see their own restaurants; staff see the
// restaurant passed as ?restaurant_id.
func GetDashboardOverview(c *fiber.Ctx) error {
	userID, ok := c.Locals("userID").(uint)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User ID not found in context",
		})
	}
	role, ok := c.Locals("role").(string)
	if !ok {
		return c.Status(fiber.StatusUnauthorized).JSON(fiber.Map{
			"error": "User role not found in context",
		})
	}

	var statistics struct {
		TotalOrders          int64     `json:"total_orders"`
		PendingCount         int64     `json:"pending_count"`
		ConfirmedCount       int64     `json:"confirmed_count"`
		ReadyCount           int64     `json:"ready_count"`
		CompletedCount       int64     `json:"completed_count"`
		CanceledCount        int64     `json:"canceled_count"`
		TotalRevenue         float64   `json:"total_revenue"`
		TotalMenuItems       int64     `json:"total_menu_items"`
		TotalReservations    int64     `json:"total_reservations"`
		UpcomingReservations int64     `json:"upcoming_reservations"`
		LastUpdated          time.Time `json:"last_updated"`
	}

	restaurantID := c.Query("restaurant_id")
	var ownedSub *gorm.DB
	if restaurantID == "" && role == "owner" {
		ownedSub = db.DB.Model(&models.Restaurant{}).Select("id").Where("owner_id = ?", userID)
	}

	// Each count needs its own query: chained Where conditions accumulate on
	// a shared *gorm.DB, so reusing one instance would leak every previous
	// status filter into the next count.
	scoped := func(model interface{}) *gorm.DB {
		q := db.DB.Model(model)
		if restaurantID != "" {
			return q.Where("restaurant_id = ?", restaurantID)
		}
		if ownedSub != nil {
			return q.Where("restaurant_id IN (?)", ownedSub)
		}
		return q
	}

	scoped(&models.Order{}).Count(&statistics.TotalOrders)
	scoped(&models.Order{}).Where("status = ?", models.StatusPending).Count(&statistics.PendingCount)
	scoped(&models.Order{}).Where("status = ?", models.StatusConfirmed).Count(&statistics.ConfirmedCount)
	scoped(&models.Order{}).Where("status = ?", models.StatusReady).Count(&statistics.ReadyCount)
	scoped(&models.Order{}).Where("status = ?", models.StatusCompleted).Count(&statistics.CompletedCount)
	scoped(&models.Order{}).Where("status = ?", models.StatusCanceled).Count(&statistics.CanceledCount)

	type revenueResult struct {
		TotalRevenue float64
	}
	var revenue revenueResult
	scoped(&models.Order{}).Where("status = ?", models.StatusCompleted).
		Select("COALESCE(SUM(total), 0) AS total_revenue").
		Scan(&revenue)
	statistics.TotalRevenue = revenue.TotalRevenue

	scoped(&models.MenuItem{}).Count(&statistics.TotalMenuItems)

	scoped(&models.Reservation{}).Count(&statistics.TotalReservations)
	today := time.Now().Format("2006-01-02")
	scoped(&models.Reservation{}).Where("status IN (?)", []models.ReservationStatus{
		models.ReservationPending, models.ReservationConfirmed,
	}).Where("date >= ?", today).Count(&statistics.UpcomingReservations)

	statistics.LastUpdated = time.Now()

	return c.JSON(statistics)
}
