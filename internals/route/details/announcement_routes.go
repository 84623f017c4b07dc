package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	annController "gerejaku_backend/internals/features/announcements/controller"
	authMw "gerejaku_backend/internals/middlewares/auth"
)

// AnnouncementPublicRoutes: anyone may read the board.
func AnnouncementPublicRoutes(api fiber.Router, db *gorm.DB) {
	ctrl := annController.NewAnnouncementController(db)

	api.Get("/announcements", ctrl.List)
	api.Get("/announcements/:id", ctrl.GetByID)
}

// AnnouncementAdminRoutes: either admin role may publish and edit.
func AnnouncementAdminRoutes(admin fiber.Router, db *gorm.DB) {
	ctrl := annController.NewAnnouncementController(db)

	ann := admin.Group("/announcements",
		authMw.OnlyRoles(constants.RoleErrorAdmin("announcements"), constants.AdminRoles...),
	)

	ann.Post("/", ctrl.Create)
	ann.Put("/:id", ctrl.Update)
	ann.Patch("/:id/pin", ctrl.TogglePin)
	ann.Delete("/:id", ctrl.Delete)
}
