package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolpayment_backend/internals/features/finance/payment_types/dto"
	"schoolpayment_backend/internals/features/finance/payment_types/model"
	helper "schoolpayment_backend/internals/helpers"
)

type PaymentTypeController struct {
	DB *gorm.DB
}

func NewPaymentTypeController(db *gorm.DB) *PaymentTypeController {
	return &PaymentTypeController{DB: db}
}

var validate = validator.New()

// =============================
// 🔍 GET All / search (paginated)
// =============================
func (ptc *PaymentTypeController) GetAll(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	paging := helper.ResolvePaging(c)

	query := ptc.DB.Model(&model.PaymentTypeModel{}).Where("deleted_at IS NULL")
	if name != "" {
		query = query.Where("LOWER(payment_type_name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count payment types")
	}

	var types []model.PaymentTypeModel
	if err := query.
		Order("payment_type_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&types).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch payment types")
	}

	return helper.JsonList(c, "Payment types fetched successfully",
		dto.FromModels(types),
		helper.BuildPagination(total, paging.Page, paging.Size, len(types)))
}

// =============================
// 🔍 GET by ID
// =============================
func (ptc *PaymentTypeController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment type ID")
	}

	var pt model.PaymentTypeModel
	if err := ptc.DB.Where("payment_type_id = ? AND deleted_at IS NULL", id).First(&pt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment type not found")
	}

	return helper.JsonOK(c, "Payment type fetched successfully", dto.FromModel(pt))
}

// =============================
// ➕ CREATE
// =============================
func (ptc *PaymentTypeController) Create(c *fiber.Ctx) error {
	var req dto.CreatePaymentTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var dup int64
	if err := ptc.DB.Model(&model.PaymentTypeModel{}).
		Where("LOWER(payment_type_name) = ? AND deleted_at IS NULL", strings.ToLower(req.Name)).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check payment type")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Payment type already exists")
	}

	pt := model.PaymentTypeModel{
		Name:        req.Name,
		Description: req.Description,
	}
	if err := ptc.DB.Create(&pt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create payment type")
	}

	return helper.JsonCreated(c, "Payment type created successfully", dto.FromModel(pt))
}

// =============================
// ✏️ UPDATE
// =============================
func (ptc *PaymentTypeController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment type ID")
	}

	var req dto.UpdatePaymentTypeRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var pt model.PaymentTypeModel
	if err := ptc.DB.Where("payment_type_id = ? AND deleted_at IS NULL", id).First(&pt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment type not found")
	}

	if req.Name != nil {
		var dup int64
		if err := ptc.DB.Model(&model.PaymentTypeModel{}).
			Where("LOWER(payment_type_name) = ? AND payment_type_id <> ? AND deleted_at IS NULL",
				strings.ToLower(*req.Name), id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check payment type")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Payment type already exists")
		}
		pt.Name = *req.Name
	}
	if req.Description != nil {
		pt.Description = req.Description
	}

	if err := ptc.DB.Save(&pt).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update payment type")
	}

	return helper.JsonUpdated(c, "Payment type updated successfully", dto.FromModel(pt))
}

// =============================
// 🗑️ SOFT DELETE
// =============================
func (ptc *PaymentTypeController) SoftDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment type ID")
	}

	res := ptc.DB.Model(&model.PaymentTypeModel{}).
		Where("payment_type_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete payment type")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment type not found")
	}

	return helper.JsonDeleted(c, "Payment type deleted successfully", nil)
}

// =============================
// 🗑️ HARD DELETE
// =============================
func (ptc *PaymentTypeController) HardDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payment type ID")
	}

	res := ptc.DB.Unscoped().Where("payment_type_id = ?", id).Delete(&model.PaymentTypeModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete payment type")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Payment type not found")
	}

	return helper.JsonDeleted(c, "Payment type permanently deleted", nil)
}
