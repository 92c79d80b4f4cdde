package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	classCtrl "schoolpayment_backend/internals/features/school/classes/controller"
)

func ClassRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := classCtrl.NewClassController(db)

	classes := r.Group("/classes")
	classes.Get("/all", ctrl.GetAll)
	classes.Get("/search", ctrl.Search)
	classes.Post("/create", ctrl.Create)
	classes.Put("/update/:id", ctrl.Update)
	classes.Delete("/delete/:id", ctrl.Delete)
}
