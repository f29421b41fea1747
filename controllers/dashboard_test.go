package controllers

import (
	"encoding/json"
	"net/http/httptest"
	"testing"

	"github.com/glebarez/sqlite"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Vikas94a/restaurant-dashboard/db"
	"github.com/Vikas94a/restaurant-dashboard/models"
)

func setupTestDB(t *testing.T) {
	t.Helper()
	gdb, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	err = gdb.AutoMigrate(
		&models.Restaurant{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
	if err != nil {
		t.Fatalf("migrate: %v", err)
	}
	db.DB = gdb
}

func dashboardApp() *fiber.App {
	app := fiber.New()
	app.Get("/dashboard/overview", func(c *fiber.Ctx) error {
		c.Locals("userID", uint(1))
		c.Locals("role", "staff")
		return GetDashboardOverview(c)
	})
	return app
}

type overviewResponse struct {
	TotalOrders    int64   `json:"total_orders"`
	PendingCount   int64   `json:"pending_count"`
	ConfirmedCount int64   `json:"confirmed_count"`
	ReadyCount     int64   `json:"ready_count"`
	CompletedCount int64   `json:"completed_count"`
	CanceledCount  int64   `json:"canceled_count"`
	TotalRevenue   float64 `json:"total_revenue"`
}

func TestDashboardOverviewCountsEachStatusIndependently(t *testing.T) {
	setupTestDB(t)
	orders := []models.Order{
		{RestaurantID: 1, Status: models.StatusPending},
		{RestaurantID: 1, Status: models.StatusConfirmed},
		{RestaurantID: 1, Status: models.StatusCompleted, Total: 10},
	}
	for i := range orders {
		if err := db.DB.Create(&orders[i]).Error; err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	resp, err := dashboardApp().Test(httptest.NewRequest("GET", "/dashboard/overview", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}
	if resp.StatusCode != fiber.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}

	var stats overviewResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode response: %v", err)
	}

	if stats.TotalOrders != 3 {
		t.Fatalf("expected 3 total orders, got %d", stats.TotalOrders)
	}
	// One order per status: a leaked filter from an earlier count would
	// zero out the later ones.
	if stats.PendingCount != 1 {
		t.Fatalf("expected 1 pending order, got %d", stats.PendingCount)
	}
	if stats.ConfirmedCount != 1 {
		t.Fatalf("expected 1 confirmed order, got %d", stats.ConfirmedCount)
	}
	if stats.CompletedCount != 1 {
		t.Fatalf("expected 1 completed order, got %d", stats.CompletedCount)
	}
	if stats.ReadyCount != 0 || stats.CanceledCount != 0 {
		t.Fatalf("expected no ready/canceled orders, got %d/%d", stats.ReadyCount, stats.CanceledCount)
	}
	if stats.TotalRevenue != 10 {
		t.Fatalf("expected revenue 10 from the completed order, got %v", stats.TotalRevenue)
	}
}

func TestDashboardOverviewFiltersByRestaurant(t *testing.T) {
	setupTestDB(t)
	orders := []models.Order{
		{RestaurantID: 1, Status: models.StatusCompleted, Total: 10},
		{RestaurantID: 2, Status: models.StatusCompleted, Total: 25},
	}
	for i := range orders {
		if err := db.DB.Create(&orders[i]).Error; err != nil {
			t.Fatalf("seed order: %v", err)
		}
	}

	resp, err := dashboardApp().Test(httptest.NewRequest("GET", "/dashboard/overview?restaurant_id=2", nil))
	if err != nil {
		t.Fatalf("request: %v", err)
	}

	var stats overviewResponse
	if err := json.NewDecoder(resp.Body).Decode(&stats); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if stats.TotalOrders != 1 {
		t.Fatalf("expected 1 order for restaurant 2, got %d", stats.TotalOrders)
	}
	if stats.TotalRevenue != 25 {
		t.Fatalf("expected revenue 25 for restaurant 2, got %v", stats.TotalRevenue)
	}
}
