package route

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	paymentCtrl "schoolpayment_backend/internals/features/finance/payments/controller"
)

func PaymentRoutes(r fiber.Router, db *gorm.DB) {
	ctrl := paymentCtrl.NewPaymentController(db)

	payments := r.Group("/payments")
	payments.Post("/notification", ctrl.HandleNotification)
	payments.Get("/my", ctrl.GetMyPayments)
	payments.Get("/export", ctrl.Export)
	payments.Get("/", ctrl.GetAll)
	payments.Post("/", ctrl.Create)
	payments.Post("/:id/checkout", ctrl.Checkout)
	payments.Put("/status/:id", ctrl.UpdateStatus)
	payments.Get("/:id", ctrl.GetByID)
	payments.Delete("/:id", ctrl.SoftDelete)
}
