package cron

import (
	"fmt"
	"log"
	"time"

	"github.com/robfig/cron/v3"

	"github.com/Vikas94a/restaurant-dashboard/db"
	"github.com/Vikas94a/restaurant-dashboard/models"
	"github.com/Vikas94a/restaurant-dashboard/utils"
)

// StartCronJobs initializes and starts the cron scheduler for pickup
// reminders and reservation cleanup
func StartCronJobs() {
	c := cron.New()
	// Run every minute to check for pickups due in the next hour
	_, err := c.AddFunc("* * * * *", sendPickupReminders)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	// Close out yesterday's reservations once a day
	_, err = c.AddFunc("0 4 * * *", completePastReservations)
	if err != nil {
		log.Fatalf("Failed to add cron job: %v", err)
	}
	c.Start()
	log.Println("Cron job scheduler started for pickup reminders")
}

// sendPickupReminders emails customers whose confirmed orders are due for
// pickup in about an hour
func sendPickupReminders() {
	var orders []models.Order
	now := time.Now()
	startWindow := now.Add(55 * time.Minute)
	endWindow := now.Add(65 * time.Minute)

	err := db.DB.Preload("Restaurant").
		Where("status = ? AND estimated_pickup_time BETWEEN ? AND ?", models.StatusConfirmed, startWindow, endWindow).
		Find(&orders).Error
	if err != nil {
		log.Printf("Error fetching orders for reminders: %v", err)
		return
	}

	for _, order := range orders {
		if err := sendReminderEmail(&order); err != nil {
			log.Printf("Failed to send reminder for order %d: %v", order.ID, err)
			continue
		}
		log.Printf("Sent pickup reminder for order %d to %s", order.ID, order.CustomerEmail)
	}
}

// sendReminderEmail constructs and sends the reminder email
func sendReminderEmail(order *models.Order) error {
	subject := fmt.Sprintf("Reminder: Pickup at %s", order.Restaurant.Name)
	body := fmt.Sprintf(`
		<p>Dear %s,</p>
		<p>This is a reminder that your order is scheduled for pickup in about one hour.</p>
		<p><strong>Details:</strong></p>
		<ul>
			<li><strong>Confirmation code:</strong> %s</li>
			<li><strong>Pickup time:</strong> %s</li>
			<li><strong>Restaurant:</strong> %s</li>
		</ul>
		<p>See you soon!</p>
		<p>%s</p>
	`, order.CustomerName, order.ConfirmationCode,
		order.EstimatedPickupTime.Format("2006-01-02 15:04"),
		order.Restaurant.Name, order.Restaurant.Name)

	return utils.SendEmail(order.CustomerEmail, subject, body)
}

// completePastReservations marks confirmed reservations whose date has
// passed as completed
func completePastReservations() {
	today := time.Now().Format("2006-01-02")
	result := db.DB.Model(&models.Reservation{}).
		Where("status = ? AND date < ?", models.ReservationConfirmed, today).
		Update("status", models.ReservationCompleted)
	if result.Error != nil {
		log.Printf("Error completing past reservations: %v", result.Error)
		return
	}
	if result.RowsAffected > 0 {
		log.Printf("Marked %d past reservations completed", result.RowsAffected)
	}
}
