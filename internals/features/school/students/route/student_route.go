package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentCtrl "schoolpayment_backend/internals/features/school/students/controller"
)

func StudentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := studentCtrl.NewStudentController(db)

	students := r.Group("/students")
	students.Get("/", ctrl.GetAll)
	students.Get("/search", ctrl.Search)
	students.Get("/:id", ctrl.GetByID)
	students.Post("/", ctrl.Create)
	students.Put("/delete/:id", ctrl.SoftDelete)
	students.Put("/:id", ctrl.Update)
	students.Delete("/:id", ctrl.HardDelete)
}
