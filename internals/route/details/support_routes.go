package details

import (
	"github.com/gofiber/fiber/v2"

	"gerejaku_backend/internals/constants"
	unitController "gerejaku_backend/internals/features/support/controller"
	unitStore "gerejaku_backend/internals/features/support/store"
	authMw "gerejaku_backend/internals/middlewares/auth"
)

// SupportPublicRoutes: the directory is readable by anyone.
func SupportPublicRoutes(api fiber.Router, store *unitStore.UnitStore) {
	ctrl := unitController.NewUnitController(store)

	api.Get("/support/units", ctrl.List)
	api.Get("/support/units/:id", ctrl.GetByID)
}

// SupportAdminRoutes: either admin role may edit the directory.
func SupportAdminRoutes(admin fiber.Router, store *unitStore.UnitStore) {
	ctrl := unitController.NewUnitController(store)

	sup := admin.Group("/support",
		authMw.OnlyRoles(constants.RoleErrorAdmin("the support directory"), constants.AdminRoles...),
	)

	sup.Post("/units", ctrl.Create)
	sup.Put("/units/:id", ctrl.Update)
	sup.Delete("/units/:id", ctrl.Delete)
}
