package routes

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"schoolpayment_backend/internals/configs"
	paymentTypeRoute "schoolpayment_backend/internals/features/finance/payment_types/route"
	paymentRoute "schoolpayment_backend/internals/features/finance/payments/route"
	classRoute "schoolpayment_backend/internals/features/school/classes/route"
	schoolYearRoute "schoolpayment_backend/internals/features/school/school_years/route"
	studentRoute "schoolpayment_backend/internals/features/school/students/route"
	authRoute "schoolpayment_backend/internals/features/users/auth/route"
	userRoute "schoolpayment_backend/internals/features/users/user/route"
	authMiddleware "schoolpayment_backend/internals/middlewares/auth"
)

// SetupRoutes merakit seluruh endpoint di bawah /api.
// Urutan gate: verifikasi token (identity) → tabel kebijakan role.
func SetupRoutes(app *fiber.App, db *gorm.DB) {
	api := app.Group("/api",
		authMiddleware.AuthMiddleware(authMiddleware.AuthOpts{
			Secret:       configs.JWTSecret,
			Policy:       authMiddleware.DefaultPolicy,
			UserResolver: authMiddleware.GormUserResolver(db),
		}),
		authMiddleware.RequirePolicy(authMiddleware.DefaultPolicy),
	)

	authRoute.AuthRoutes(api, db)
	userRoute.UserRoutes(api, db)
	studentRoute.StudentRoutes(api, db)
	classRoute.ClassRoutes(api, db)
	schoolYearRoute.SchoolYearRoutes(api, db)
	paymentTypeRoute.PaymentTypeRoutes(api, db)
	paymentRoute.PaymentRoutes(api, db)
}
