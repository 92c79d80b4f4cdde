package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	userCtrl "schoolpayment_backend/internals/features/users/user/controller"
)

func UserRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := userCtrl.NewUserController(db)

	users := r.Group("/users")
	users.Get("/", ctrl.GetUsers)
	users.Get("/filter", ctrl.GetUsersByRole)
	users.Get("/profile-picture", ctrl.GetProfilePicture)
	users.Put("/update", ctrl.UpdateProfile)
	users.Put("/role/:id", ctrl.UpdateRole)
	users.Put("/delete/:id", ctrl.SoftDeleteUser)
	users.Delete("/:id", ctrl.HardDeleteUser)
}
