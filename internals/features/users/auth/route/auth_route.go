package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authCtrl "schoolpayment_backend/internals/features/users/auth/controller"
	"schoolpayment_backend/internals/middlewares"
)

func AuthRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := authCtrl.NewAuthController(db)

	users := r.Group("/users")
	users.Post("/register", middlewares.RegisterRateLimiter(), ctrl.Register)
	users.Post("/login", middlewares.LoginRateLimiter(), ctrl.Login)
	users.Put("/change-password", ctrl.ChangePassword)
	users.Get("/me", ctrl.Me)
}
