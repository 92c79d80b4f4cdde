package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentTypeCtrl "schoolpayment_backend/internals/features/finance/payment_types/controller"
)

func PaymentTypeRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentTypeCtrl.NewPaymentTypeController(db)

	types := r.Group("/payment-types")
	types.Get("/", ctrl.GetAll)
	types.Get("/:id", ctrl.GetByID)
	types.Post("/", ctrl.Create)
	types.Put("/:id", ctrl.Update)
	types.Delete("/hard/:id", ctrl.HardDelete)
	types.Delete("/:id", ctrl.SoftDelete)
}
