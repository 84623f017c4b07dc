package details

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/constants"
	balController "gerejaku_backend/internals/features/finance/balances/controller"
	contribController "gerejaku_backend/internals/features/finance/contributions/controller"
	donController "gerejaku_backend/internals/features/finance/donations/controller"
	expController "gerejaku_backend/internals/features/finance/expenses/controller"
	memberController "gerejaku_backend/internals/features/finance/members/controller"
	payController "gerejaku_backend/internals/features/finance/payments/controller"
	reportController "gerejaku_backend/internals/features/finance/reports/controller"
	authMw "gerejaku_backend/internals/middlewares/auth"
)

// FinancePublicRoutes: read-only, no session required.
func FinancePublicRoutes(api fiber.Router, db *gorm.DB) {
	memberCtrl := memberController.NewMemberController(db)
	payCtrl := payController.NewMemberPaymentController(db)
	contribCtrl := contribController.NewContributionController(db)
	donCtrl := donController.NewDonationController(db)
	expCtrl := expController.NewExpenseController(db)
	balCtrl := balController.NewBalanceController(db)
	reportCtrl := reportController.NewReportController(db)

	fin := api.Group("/finance")

	fin.Get("/members", memberCtrl.List)
	fin.Get("/members/:id", memberCtrl.GetByID)
	fin.Get("/members/:id/payments", memberCtrl.GetDuesVector)

	fin.Get("/payments", payCtrl.List)

	fin.Get("/contributions", contribCtrl.List)
	fin.Get("/contributions/:id", contribCtrl.GetByID)

	fin.Get("/donations", donCtrl.List)
	fin.Get("/donations/:id", donCtrl.GetByID)

	fin.Get("/expenses", expCtrl.List)
	fin.Get("/expenses/:id", expCtrl.GetByID)

	fin.Get("/balances", balCtrl.List)
	fin.Get("/balances/:year", balCtrl.GetByYear)

	fin.Get("/reports/yearly", reportCtrl.Yearly)
	fin.Get("/reports/monthly", reportCtrl.Monthly)
}

// FinanceAdminRoutes: every financial mutation is full-admin only. The
// announcement admin can read finance data but never change it.
func FinanceAdminRoutes(admin fiber.Router, db *gorm.DB) {
	memberCtrl := memberController.NewMemberController(db)
	payCtrl := payController.NewMemberPaymentController(db)
	contribCtrl := contribController.NewContributionController(db)
	donCtrl := donController.NewDonationController(db)
	expCtrl := expController.NewExpenseController(db)
	balCtrl := balController.NewBalanceController(db)

	fin := admin.Group("/finance",
		authMw.OnlyRoles(constants.RoleErrorFullAdmin("financial records"), constants.FullAdminOnly...),
	)

	fin.Post("/members", memberCtrl.Create)
	fin.Put("/members/:id", memberCtrl.Update)
	fin.Delete("/members/:id", memberCtrl.Delete)

	fin.Post("/payments", payCtrl.Upsert)
	fin.Post("/payments/toggle", payCtrl.Toggle)
	fin.Delete("/payments/:id", payCtrl.Delete)

	fin.Post("/contributions", contribCtrl.Create)
	fin.Put("/contributions/:id", contribCtrl.Update)
	fin.Delete("/contributions/:id", contribCtrl.Delete)

	fin.Post("/donations", donCtrl.Create)
	fin.Put("/donations/:id", donCtrl.Update)
	fin.Delete("/donations/:id", donCtrl.Delete)

	fin.Post("/expenses", expCtrl.Create)
	fin.Put("/expenses/:id", expCtrl.Update)
	fin.Delete("/expenses/:id", expCtrl.Delete)

	fin.Put("/balances", balCtrl.Upsert)
	fin.Delete("/balances/:year", balCtrl.DeleteByYear)
}
