package services

import (
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/lac-hong-legacy/rehab_api/shared"
	log "github.com/sirupsen/logrus"
)

// RequestLogger tags each request with an id and logs it once it completes.
// Server errors log at error level, client errors at warn, the rest at debug.
func RequestLogger() fiber.Handler {
	return func(c *fiber.Ctx) error {
		start := time.Now()

		requestID := c.Get(shared.HeaderRequestID)
		if requestID == "" {
			requestID = uuid.NewString()
		}
		c.Locals(shared.RequestID, requestID)
		c.Set(shared.HeaderRequestID, requestID)

		err := c.Next()

		status := c.Response().StatusCode()
		if err != nil {
			status = statusForError(err)
		}

		entry := log.WithFields(log.Fields{
			"request_id": requestID,
			"method":     c.Method(),
			"path":       c.Path(),
			"status":     status,
			"latency":    time.Since(start).String(),
			"client_ip":  c.IP(),
		})

		switch {
		case status >= 500:
			if err != nil {
				entry = entry.WithError(err)
			}
			entry.Error("Server error")
		case status >= 400:
			entry.Warn("Client error")
		default:
			entry.Debug("Request processed")
		}

		return err
	}
}
