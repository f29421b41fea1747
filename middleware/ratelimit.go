package middleware

import (
	"fmt"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/Vikas94a/restaurant-dashboard/redis"
)

// RateLimit bounds requests per client IP within a rolling window. The
// counter lives in Redis with an expiry rather than process memory, so the
// limit holds across instances.
func RateLimit(max int, window time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		key := fmt.Sprintf("ratelimit:%s:%s", c.Path(), c.IP())

		count, err := redis.Client.Incr(redis.Ctx, key).Result()
		if err != nil {
			// Redis being down must not block checkout.
			log.Printf("rate limit check failed: %v", err)
			return c.Next()
		}
		if count == 1 {
			redis.Client.Expire(redis.Ctx, key, window)
		}

		if count > int64(max) {
			return c.Status(fiber.StatusTooManyRequests).JSON(fiber.Map{
				"error": "Too many requests, please try again later",
			})
		}

		return c.Next()
	}
}
