package db

import (
	"fmt"
	"log"

	"github.com/Vikas94a/restaurant-dashboard/models"
)

func Migrate() {
	// Initialize DB connection
	Init()

	err := DB.AutoMigrate(
		&models.User{},
		&models.Role{},
		&models.Permission{},
		&models.Restaurant{},
		&models.OpeningHours{},
		&models.MenuCategory{},
		&models.MenuItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Reservation{},
	)
	if err != nil {
		log.Fatal("Failed to run migrations: ", err)
	}

	seedRolesAndPermissions()

	fmt.Println("✅ Migrations applied successfully!")
}

// seedRolesAndPermissions creates the fixed restaurant roles and their
// permissions if they don't exist yet.
func seedRolesAndPermissions() {
	roles := []models.Role{
		{Name: "owner", Description: "Restaurant owner with full access"},
		{Name: "staff", Description: "Staff who manage orders and reservations"},
		{Name: "customer", Description: "Customer who places pickup orders"},
	}
	for _, role := range roles {
		var existing models.Role
		if DB.Where("name = ?", role.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&role)
		}
	}

	permissions := []models.Permission{
		{Name: "create_restaurant", Description: "Create restaurants", Resource: "restaurants", Action: "create"},
		{Name: "update_restaurant", Description: "Update restaurant profile and hours", Resource: "restaurants", Action: "update"},

		{Name: "create_menu", Description: "Create menu categories and items", Resource: "menu", Action: "create"},
		{Name: "update_menu", Description: "Update menu categories and items", Resource: "menu", Action: "update"},
		{Name: "delete_menu", Description: "Delete menu categories and items", Resource: "menu", Action: "delete"},

		{Name: "read_orders", Description: "View incoming orders", Resource: "orders", Action: "read"},
		{Name: "update_order", Description: "Move orders through their lifecycle", Resource: "orders", Action: "update"},

		{Name: "read_reservations", Description: "View reservations", Resource: "reservations", Action: "read"},
		{Name: "update_reservation", Description: "Confirm or cancel reservations", Resource: "reservations", Action: "update"},

		{Name: "read_dashboard", Description: "View dashboard statistics", Resource: "dashboard", Action: "read"},
	}
	for _, permission := range permissions {
		var existing models.Permission
		if DB.Where("name = ?", permission.Name).First(&existing).RowsAffected == 0 {
			DB.Create(&permission)
		}
	}

	// Owner gets everything.
	var ownerRole models.Role
	if DB.Where("name = ?", "owner").First(&ownerRole).RowsAffected > 0 {
		var all []models.Permission
		DB.Find(&all)
		DB.Model(&ownerRole).Association("Permissions").Clear()
		DB.Model(&ownerRole).Association("Permissions").Append(all)
	}

	// Staff handle day-to-day orders and reservations but not the menu or
	// restaurant profile.
	var staffRole models.Role
	if DB.Where("name = ?", "staff").First(&staffRole).RowsAffected > 0 {
		var staffPerms []models.Permission
		DB.Where("resource IN (?)", []string{"orders", "reservations", "dashboard"}).Find(&staffPerms)
		DB.Model(&staffRole).Association("Permissions").Clear()
		DB.Model(&staffRole).Association("Permissions").Append(staffPerms)
	}
}
