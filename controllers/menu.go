package controllers

import (
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/Vikas94a/restaurant-dashboard/db"
	"github.com/Vikas94a/restaurant-dashboard/models"
	"github.com/Vikas94a/restaurant-dashboard/utils"
)

// GetMenu returns a restaurant's categories with their items, in menu order
func GetMenu(c *fiber.Ctx) error {
	id := c.Params("id")
	var categories []models.MenuCategory
	if err := db.DB.Where("restaurant_id = ?", id).
		Order("sort_order").
		Preload("Items", "available = ?", true).
		Find(&categories).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch menu",
			Error:   err.Error(),
		})
	}
	return c.JSON(categories)
}

// CreateCategory adds a menu category to a restaurant
func CreateCategory(c *fiber.Ctx) error {
	id, err := c.ParamsInt("id")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Invalid restaurant ID",
			Error:   err.Error(),
		})
	}

	category := new(models.MenuCategory)
	if err := c.BodyParser(category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	category.RestaurantID = uint(id)

	if err := db.DB.Create(category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create category",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(category)
}

// UpdateCategory updates a menu category
func UpdateCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.MenuCategory
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&category); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update category",
			Error:   err.Error(),
		})
	}
	return c.JSON(category)
}

// DeleteCategory deletes a category and its items
func DeleteCategory(c *fiber.Ctx) error {
	id := c.Params("id")
	var category models.MenuCategory
	if err := db.DB.First(&category, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}
	db.DB.Where("category_id = ?", category.ID).Delete(&models.MenuItem{})
	if err := db.DB.Delete(&category).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete category",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// CreateMenuItem adds an item to a category
func CreateMenuItem(c *fiber.Ctx) error {
	item := new(models.MenuItem)
	if err := c.BodyParser(item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	var category models.MenuCategory
	if err := db.DB.First(&category, item.CategoryID).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Category not found",
			Error:   err.Error(),
		})
	}
	item.RestaurantID = category.RestaurantID

	if err := db.DB.Create(item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to create menu item",
			Error:   err.Error(),
		})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// UpdateMenuItem updates a menu item
func UpdateMenuItem(c *fiber.Ctx) error {
	id := c.Params("id")
	var item models.MenuItem
	if err := db.DB.First(&item, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Menu item not found",
			Error:   err.Error(),
		})
	}
	if err := c.BodyParser(&item); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to update menu item",
			Error:   err.Error(),
		})
	}
	return c.JSON(item)
}

// DeleteMenuItem deletes a menu item
func DeleteMenuItem(c *fiber.Ctx) error {
	id := c.Params("id")
	if err := db.DB.Where("id = ?", id).Delete(&models.MenuItem{}).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to delete menu item",
			Error:   err.Error(),
		})
	}
	return c.SendStatus(fiber.StatusNoContent)
}

// UploadMenuItemImage uploads an item photo to Cloudinary and stores the URL
func UploadMenuItemImage(c *fiber.Ctx) error {
	id := c.Params("id")
	var item models.MenuItem
	if err := db.DB.First(&item, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Menu item not found",
			Error:   err.Error(),
		})
	}

	fileHeader, err := c.FormFile("image")
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Missing image file",
			Error:   err.Error(),
		})
	}
	file, err := fileHeader.Open()
	if err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to open uploaded file",
			Error:   err.Error(),
		})
	}
	defer file.Close()

	url, err := utils.UploadMenuImage(file, fmt.Sprintf("menu-item-%d", item.ID))
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to upload image",
			Error:   err.Error(),
		})
	}

	item.ImageURL = url
	if err := db.DB.Save(&item).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to save image URL",
			Error:   err.Error(),
		})
	}
	return c.JSON(item)
}
