package controllers

import (
	"fmt"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"github.com/Vikas94a/restaurant-dashboard/availability"
	"github.com/Vikas94a/restaurant-dashboard/db"
	"github.com/Vikas94a/restaurant-dashboard/models"
	"github.com/Vikas94a/restaurant-dashboard/utils"
)

type orderItemInput struct {
	MenuItemID uint `json:"menu_item_id"`
	Quantity   int  `json:"quantity"`
}

type checkoutInput struct {
	RestaurantID  uint                         `json:"restaurant_id"`
	CustomerName  string                       `json:"customer_name"`
	CustomerEmail string                       `json:"customer_email"`
	CustomerPhone string                       `json:"customer_phone"`
	Items         []orderItemInput             `json:"items"`
	Pickup        availability.PickupSelection `json:"pickup"`
}

// availabilityFailure maps an engine validation error to its HTTP response.
// All four kinds are expected customer-facing conditions: the customer picks
// a new selection, nothing retries.
func availabilityFailure(c *fiber.Ctx, err error) error {
	var code string
	switch err {
	case availability.ErrNoHoursConfigured:
		code = "no_hours_configured"
	case availability.ErrAsapUnavailable:
		code = "asap_unavailable"
	case availability.ErrDateClosed:
		code = "date_closed"
	case availability.ErrTimeUnavailable:
		code = "time_unavailable"
	default:
		code = "selection_invalid"
	}
	return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
		Message: "Pickup selection is no longer available",
		Error:   err.Error(),
		Code:    code,
	})
}

// CreateOrder is the checkout endpoint. The pickup selection is re-validated
// against the current hours and clock inside this request, regardless of
// what the storefront displayed earlier; only then is the order persisted.
func CreateOrder(c *fiber.Ctx) error {
	input := new(checkoutInput)
	if err := c.BodyParser(input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}
	if len(input.Items) == 0 {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Order has no items",
		})
	}
	if input.CustomerName == "" || input.CustomerEmail == "" {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Customer name and email are required",
		})
	}

	if input.Pickup.Mode != models.PickupASAP && input.Pickup.Mode != models.PickupScheduled {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Unknown pickup mode",
		})
	}

	restaurant, hours, now, err := loadRestaurantHours(fmt.Sprint(input.RestaurantID))
	if err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Restaurant not found",
			Error:   err.Error(),
		})
	}

	if err := availability.ValidateSelection(hours, now, input.Pickup); err != nil {
		return availabilityFailure(c, err)
	}

	order := models.Order{
		RestaurantID:  restaurant.ID,
		CustomerName:  input.CustomerName,
		CustomerEmail: input.CustomerEmail,
		CustomerPhone: input.CustomerPhone,
		PickupOption:  input.Pickup.Mode,
	}
	if userID, ok := c.Locals("userID").(uint); ok {
		order.CustomerID = &userID
	}

	if input.Pickup.Mode == models.PickupASAP {
		estimate := now.Add(availability.SameDayLead)
		order.EstimatedPickupTime = &estimate
	} else {
		order.PickupDate = input.Pickup.Date
		order.PickupTime = input.Pickup.Time
		if est, err := pickupInstant(input.Pickup, now.Location()); err == nil {
			order.EstimatedPickupTime = &est
		}
	}

	// Price items from the menu, not from the client.
	for _, item := range input.Items {
		if item.Quantity <= 0 {
			return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
				Message: "Item quantity must be positive",
			})
		}
		var menuItem models.MenuItem
		if err := db.DB.First(&menuItem, item.MenuItemID).Error; err != nil {
			return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
				Message: "Menu item not found",
				Error:   err.Error(),
			})
		}
		if menuItem.RestaurantID != restaurant.ID || !menuItem.Available {
			return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
				Message: fmt.Sprintf("Menu item %q is not available", menuItem.Name),
			})
		}
		unit := menuItem.DiscountedPrice
		line := unit * float64(item.Quantity)
		order.Items = append(order.Items, models.OrderItem{
			MenuItemID: menuItem.ID,
			Name:       menuItem.Name,
			Quantity:   item.Quantity,
			UnitPrice:  unit,
			LineTotal:  line,
		})
		order.Subtotal += line
	}
	order.Total = order.Subtotal
	order.ConfirmationCode = utils.GenerateConfirmationCode()

	// Order and items commit together or not at all. If the write fails the
	// customer is never told the order was placed.
	if err := db.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&order).Error
	}); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to place order, please try again",
			Error:   err.Error(),
		})
	}

	sendOrderConfirmation(restaurant, &order)

	return c.Status(fiber.StatusCreated).JSON(order)
}

// pickupInstant turns a scheduled selection into a wall-clock instant.
func pickupInstant(sel availability.PickupSelection, loc *time.Location) (time.Time, error) {
	return time.ParseInLocation(availability.DateLayout+" "+availability.SlotLayout, sel.Date+" "+sel.Time, loc)
}

// sendOrderConfirmation emails the customer fire-and-forget. A mail failure
// is logged by the sender and never fails the committed order.
func sendOrderConfirmation(restaurant *models.Restaurant, order *models.Order) {
	pickup := "as soon as possible"
	if order.PickupOption == models.PickupScheduled {
		pickup = fmt.Sprintf("%s at %s", order.PickupDate, order.PickupTime)
	}
	subject := fmt.Sprintf("Order confirmation - %s", restaurant.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>Thank you for your order at %s.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Confirmation code:</strong> %s</li>
			<li><strong>Pickup:</strong> %s</li>
			<li><strong>Total:</strong> %.2f</li>
		</ul>
		<p>We will let you know when your order is ready.</p>
		<p>Best regards,</p>
		<p>%s</p>
	`, order.CustomerName, restaurant.Name, order.ConfirmationCode, pickup, order.Total, restaurant.Name)

	utils.SendEmailAsync(order.CustomerEmail, subject, body)
}

// GetAllOrders returns orders, optionally filtered by restaurant and status
func GetAllOrders(c *fiber.Ctx) error {
	query := db.DB.Preload("Items").Order("created_at DESC")
	if restaurantID := c.Query("restaurant_id"); restaurantID != "" {
		query = query.Where("restaurant_id = ?", restaurantID)
	}
	if status := c.Query("status"); status != "" {
		query = query.Where("status = ?", status)
	}

	var orders []models.Order
	if err := query.Find(&orders).Error; err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(utils.ErrorResponse{
			Message: "Failed to fetch orders",
			Error:   err.Error(),
		})
	}
	return c.JSON(orders)
}

// GetOrder returns an order by ID
func GetOrder(c *fiber.Ctx) error {
	id := c.Params("id")
	var order models.Order
	if err := db.DB.Preload("Items").Preload("Restaurant").First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
			Error:   err.Error(),
		})
	}
	return c.JSON(order)
}

// UpdateOrderStatus moves an order through its lifecycle
func UpdateOrderStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var order models.Order
	if err := db.DB.First(&order, id).Error; err != nil {
		return c.Status(fiber.StatusNotFound).JSON(utils.ErrorResponse{
			Message: "Order not found",
			Error:   err.Error(),
		})
	}

	var input struct {
		Status models.OrderStatus `json:"status"`
	}
	if err := c.BodyParser(&input); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(utils.ErrorResponse{
			Message: "Failed to parse request body",
			Error:   err.Error(),
		})
	}

	if err := order.UpdateStatus(db.DB, input.Status); err != nil {
		return c.Status(fiber.StatusConflict).JSON(utils.ErrorResponse{
			Message: "Invalid status transition",
			Error:   err.Error(),
		})
	}

	if input.Status == models.StatusReady {
		subject := "Your order is ready for pickup"
		body := fmt.Sprintf(`
			<p>Dear %s,</p>
			<p>Your order %s is ready. See you soon!</p>
		`, order.CustomerName, order.ConfirmationCode)
		utils.SendEmailAsync(order.CustomerEmail, subject, body)
	}

	return c.JSON(order)
}
