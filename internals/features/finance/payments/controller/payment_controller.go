package controller

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolpayment_backend/internals/configs"
	"schoolpayment_backend/internals/constants"
	paymentTypeModel "schoolpayment_backend/internals/features/finance/payment_types/model"
	"schoolpayment_backend/internals/features/finance/payments/dto"
	"schoolpayment_backend/internals/features/finance/payments/model"
	"schoolpayment_backend/internals/features/finance/payments/repository"
	"schoolpayment_backend/internals/features/finance/payments/service"
	studentModel "schoolpayment_backend/internals/features/school/students/model"
	userModel "schoolpayment_backend/internals/features/users/user/model"
	helper "schoolpayment_backend/internals/helpers"
)

type PaymentController struct {
	DB *gorm.DB
}

func NewPaymentController(db *gorm.DB) *PaymentController {
	return &PaymentController{DB: db}
}

var validate = validator.New()

// Jenis tagihan yang boleh dibuat lewat endpoint pembayaran.
var allowedPaymentTypeNames = []string{"SPP", "UTS", "UAS", "Ekstrakurikuler", "Lainnya"}

func isAllowedPaymentTypeName(name string) bool {
	for _, v := range allowedPaymentTypeNames {
		if strings.EqualFold(v, name) {
			return true
		}
	}
	return false
}

// =============================
// ➕ CREATE (user login)
// =============================
func (pc *PaymentController) Create(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var req dto.CreatePaymentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user userModel.UserModel
	if err := pc.DB.Where("user_id = ? AND deleted_at IS NULL", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "User not found")
	}

	var pt paymentTypeModel.PaymentTypeModel
	if err := pc.DB.Where("payment_type_id = ? AND deleted_at IS NULL", req.PaymentTypeID).First(&pt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payment type not found")
	}
	if !isAllowedPaymentTypeName(pt.Name) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Payment type is not payable")
	}

	// Tagihan ditautkan ke data siswa lewat NIS akun, bila ada.
	var studentID *uuid.UUID
	if user.NIS != nil {
		var student studentModel.StudentModel
		if err := pc.DB.Where("nis = ? AND deleted_at IS NULL", *user.NIS).First(&student).Error; err == nil {
			studentID = &student.ID
		}
	}

	payment := model.PaymentModel{
		UserID:        user.ID,
		StudentID:     studentID,
		PaymentTypeID: pt.ID,
		PaymentName:   req.PaymentName,
		Description:   req.Description,
		Amount:        req.Amount,
		Status:        model.PaymentStatusPending,
		OrderID:       fmt.Sprintf("PAY-%s", uuid.NewString()),
	}
	if err := pc.DB.Create(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment")
	}

	pc.DB.Preload("PaymentType").Preload("Student").First(&payment, "payment_id = ?", payment.ID)
	return helper.JsonCreated(c, "Payment created successfully", dto.FromModel(payment))
}

// =============================
// 💳 CHECKOUT ke gateway (pemilik atau ADMIN)
// =============================
func (pc *PaymentController) Checkout(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment ID")
	}

	var payment model.PaymentModel
	if err := pc.DB.Where("payment_id = ? AND deleted_at IS NULL", id).First(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
	}

	role := helper.GetRoleFromToken(c)
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}
	if role != constants.RoleAdmin && payment.UserID != userID {
		return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: you are not authorized to access this resource")
	}

	if payment.Status != model.PaymentStatusPending {
		return helper.JsonError(c, fiber.StatusBadRequest, "Only pending payments can be checked out")
	}

	// Snap token lama masih berlaku → kembalikan yang sama, jangan buat
	// transaksi gateway kedua untuk order yang sama.
	if payment.SnapToken == nil || *payment.SnapToken == "" {
		var user userModel.UserModel
		if err := pc.DB.Where("user_id = ? AND deleted_at IS NULL", payment.UserID).First(&user).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to load payer")
		}

		token, redirectURL, err := service.GenerateSnapToken(payment, user)
		if err != nil {
			return helper.JsonError(c, fiber.StatusBadGateway, "Failed to create gateway transaction")
		}
		payment.SnapToken = &token
		payment.RedirectURL = &redirectURL
		if err := pc.DB.Model(&payment).Updates(map[string]interface{}{
			"snap_token":   token,
			"redirect_url": redirectURL,
		}).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save checkout data")
		}
	}

	return helper.JsonOK(c, "Checkout ready", fiber.Map{
		"payment_id":   payment.ID,
		"order_id":     payment.OrderID,
		"snap_token":   payment.SnapToken,
		"redirect_url": payment.RedirectURL,
	})
}

// =============================
// 🔍 GET All (ADMIN, filterable)
// =============================
func (pc *PaymentController) GetAll(c *fiber.Ctx) error {
	crit := dto.ParseFilterCriteria(c)

	plan, err := repository.BuildFilterPlan(crit)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSortField) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build filter")
	}

	payments, total, err := repository.FindPayments(pc.DB, plan, crit.Page, crit.Size)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return helper.JsonList(c, "Payments fetched successfully",
		dto.FromModels(payments),
		helper.BuildPagination(total, crit.Page, crit.Size, len(payments)))
}

// =============================
// 🔍 GET My Payments (user login)
// =============================
func (pc *PaymentController) GetMyPayments(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	paging := helper.ResolvePaging(c)

	var total int64
	if err := pc.DB.Model(&model.PaymentModel{}).
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count payments")
	}

	var payments []model.PaymentModel
	if err := pc.DB.
		Preload("PaymentType").
		Preload("Student").
		Where("user_id = ? AND deleted_at IS NULL", userID).
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&payments).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	return helper.JsonList(c, "Payments fetched successfully",
		dto.FromModels(payments),
		helper.BuildPagination(total, paging.Page, paging.Size, len(payments)))
}

// =============================
// 🔍 GET by ID (pemilik atau ADMIN)
// =============================
func (pc *PaymentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment ID")
	}

	var payment model.PaymentModel
	if err := pc.DB.
		Preload("User").
		Preload("Student").
		Preload("PaymentType").
		Where("payment_id = ? AND deleted_at IS NULL", id).
		First(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
	}

	role := helper.GetRoleFromToken(c)
	if role != constants.RoleAdmin {
		userID, err := helper.GetUserIDFromToken(c)
		if err != nil {
			return err
		}
		if payment.UserID != userID {
			return helper.JsonError(c, fiber.StatusForbidden, "Forbidden: you are not authorized to access this resource")
		}
	}

	return helper.JsonOK(c, "Payment fetched successfully", dto.FromModel(payment))
}

// =============================
// ✏️ UPDATE Status (ADMIN)
// =============================
func (pc *PaymentController) UpdateStatus(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment ID")
	}

	var req dto.UpdatePaymentStatusRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}

	status := strings.ToUpper(strings.TrimSpace(req.Status))
	if !model.IsValidPaymentStatus(status) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment status")
	}

	var payment model.PaymentModel
	if err := pc.DB.Where("payment_id = ? AND deleted_at IS NULL", id).First(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
	}

	payment.Status = status
	if status == model.PaymentStatusPaid && payment.PaidAt == nil {
		now := time.Now()
		payment.PaidAt = &now
	}
	if err := pc.DB.Save(&payment).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update payment status")
	}

	return helper.JsonUpdated(c, "Payment status updated successfully", dto.FromModel(payment))
}

// =============================
// 🗑️ SOFT DELETE (ADMIN)
// =============================
func (pc *PaymentController) SoftDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment ID")
	}

	res := pc.DB.Model(&model.PaymentModel{}).
		Where("payment_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete payment")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment not found")
	}

	return helper.JsonDeleted(c, "Payment deleted successfully", nil)
}

// =============================
// 🔔 WEBHOOK Midtrans (PUBLIC, diverifikasi via signature)
// =============================
func (pc *PaymentController) HandleNotification(c *fiber.Ctx) error {
	var body map[string]interface{}
	if err := c.BodyParser(&body); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}

	if err := service.HandlePaymentNotification(pc.DB, configs.MidtransServerKey, body); err != nil {
		if errors.Is(err, service.ErrInvalidSignature) {
			return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid signature")
		}
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	return helper.JsonOK(c, "Notification processed", nil)
}

// =============================
// 📄 EXPORT Excel (ADMIN)
// =============================
func (pc *PaymentController) Export(c *fiber.Ctx) error {
	crit := dto.ParseFilterCriteria(c)

	plan, err := repository.BuildFilterPlan(crit)
	if err != nil {
		if errors.Is(err, repository.ErrInvalidSortField) {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to build filter")
	}

	// Export mengabaikan paginasi: seluruh hasil filter diekspor.
	payments, _, err := repository.FindPayments(pc.DB, plan, 0, 10000)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payments")
	}

	buf, err := service.ExportPaymentsToExcel(payments)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to generate export")
	}

	filename := fmt.Sprintf("payments_%s.xlsx", time.Now().Format("20060102_150405"))
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf(`attachment; filename=%q`, filename))
	return c.Send(buf.Bytes())
}
