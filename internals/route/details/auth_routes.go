package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authController "gerejaku_backend/internals/features/users/auth/controller"
	"gerejaku_backend/internals/middlewares"
	authMw "gerejaku_backend/internals/middlewares/auth"
)

// AuthRoutes wires login/logout/me. Login carries its own, stricter limiter.
func AuthRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := authController.NewAuthController(db)

	api.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)

	session := api.Group("", authMw.AuthMiddleware(db))
	session.Post("/logout", ctrl.Logout)
	session.Get("/me", ctrl.Me)
}
