package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	unitStore "gerejaku_backend/internals/features/support/store"
	authMw "gerejaku_backend/internals/middlewares/auth"
	"gerejaku_backend/internals/route/details"
)

// SetupRoutes mounts the public surface under /api and every mutation under
// /api/a behind a session check. Role gates live in the detail files.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	units := unitStore.NewUnitStore()

	api := app.Group("/api")

	details.AuthRoutes(api, db)
	details.FinancePublicRoutes(api, db)
	details.AnnouncementPublicRoutes(api, db)
	details.SupportPublicRoutes(api, units)

	admin := api.Group("/a", authMw.AuthMiddleware(db))

	details.FinanceAdminRoutes(admin, db)
	details.AnnouncementAdminRoutes(admin, db)
	details.SupportAdminRoutes(admin, units)
}
