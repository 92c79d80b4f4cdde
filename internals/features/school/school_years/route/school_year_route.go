package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	schoolYearCtrl "schoolpayment_backend/internals/features/school/school_years/controller"
)

func SchoolYearRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := schoolYearCtrl.NewSchoolYearController(db)

	years := r.Group("/school-years")
	years.Get("/all", ctrl.GetAll)
	years.Get("/search", ctrl.Search)
	years.Post("/create", ctrl.Create)
	years.Put("/update/:id", ctrl.Update)
	years.Put("/delete/:id", ctrl.SoftDelete)
	years.Put("/restore/:id", ctrl.Restore)
	years.Delete("/delete/:id", ctrl.HardDelete)
}
