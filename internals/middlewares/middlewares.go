package middlewares

import (
	"github.com/gofiber/fiber/v2"

	"gerejaku_backend/internals/middlewares/logger"
)

// SetupMiddlewares wires the base chain. Order matters: recover first so a
// panic in any later handler still becomes a 500 response.
func SetupMiddlewares(app *fiber.App) {
	app.Use(RecoveryMiddleware())
	app.Use(CorsMiddleware())
	app.Use(logger.LoggerMiddleware())
	app.Use(GlobalRateLimiter())
}
