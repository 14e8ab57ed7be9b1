package http

import (
	"context"
	"time"

	"github.com/gofiber/fiber/v2"
)

// Deadline aplica um prazo por requisição, propagado até o banco via
// UserContext. O cancelamento interrompe a consulta em andamento no pgx.
func Deadline(d time.Duration) fiber.Handler {
	return func(c *fiber.Ctx) error {
		ctx, cancel := context.WithTimeout(c.UserContext(), d)
		defer cancel()
		c.SetUserContext(ctx)
		return c.Next()
	}
}
