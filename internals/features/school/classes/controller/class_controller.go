package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolpayment_backend/internals/features/school/classes/dto"
	"schoolpayment_backend/internals/features/school/classes/model"
	schoolYearModel "schoolpayment_backend/internals/features/school/school_years/model"
	helper "schoolpayment_backend/internals/helpers"
)

type ClassController struct {
	DB *gorm.DB
}

func NewClassController(db *gorm.DB) *ClassController {
	return &ClassController{DB: db}
}

var validate = validator.New()

// =============================
// 🔍 GET All (paginated)
// =============================
func (cc *ClassController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	var total int64
	if err := cc.DB.Model(&model.ClassModel{}).
		Where("deleted_at IS NULL").
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var classes []model.ClassModel
	if err := cc.DB.
		Preload("SchoolYear").
		Where("deleted_at IS NULL").
		Order("class_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch classes")
	}

	return helper.JsonList(c, "Classes fetched successfully",
		dto.FromModels(classes),
		helper.BuildPagination(total, paging.Page, paging.Size, len(classes)))
}

// =============================
// 🔍 SEARCH by name
// =============================
func (cc *ClassController) Search(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	paging := helper.ResolvePaging(c)

	query := cc.DB.Model(&model.ClassModel{}).Where("deleted_at IS NULL")
	if name != "" {
		query = query.Where("LOWER(class_name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count classes")
	}

	var classes []model.ClassModel
	if err := query.
		Preload("SchoolYear").
		Order("class_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&classes).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to search classes")
	}

	return helper.JsonList(c, "Classes fetched successfully",
		dto.FromModels(classes),
		helper.BuildPagination(total, paging.Page, paging.Size, len(classes)))
}

// =============================
// ➕ CREATE
// =============================
func (cc *ClassController) Create(c *fiber.Ctx) error {
	var req dto.CreateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	if req.SchoolYearID != nil {
		var count int64
		if err := cc.DB.Model(&schoolYearModel.SchoolYearModel{}).
			Where("school_year_id = ? AND deleted_at IS NULL", *req.SchoolYearID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check school year")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "School year not found")
		}
	}

	class := model.ClassModel{
		Name:         req.Name,
		SchoolYearID: req.SchoolYearID,
	}
	if err := cc.DB.Create(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create class")
	}

	cc.DB.Preload("SchoolYear").First(&class, "class_id = ?", class.ID)
	return helper.JsonCreated(c, "Class created successfully", dto.FromModel(class))
}

// =============================
// ✏️ UPDATE
// =============================
func (cc *ClassController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	var req dto.UpdateClassRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var class model.ClassModel
	if err := cc.DB.Where("class_id = ? AND deleted_at IS NULL", id).First(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	if req.Name != nil {
		class.Name = *req.Name
	}
	if req.SchoolYearID != nil {
		var count int64
		if err := cc.DB.Model(&schoolYearModel.SchoolYearModel{}).
			Where("school_year_id = ? AND deleted_at IS NULL", *req.SchoolYearID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check school year")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "School year not found")
		}
		class.SchoolYearID = req.SchoolYearID
	}

	if err := cc.DB.Save(&class).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update class")
	}

	cc.DB.Preload("SchoolYear").First(&class, "class_id = ?", class.ID)
	return helper.JsonUpdated(c, "Class updated successfully", dto.FromModel(class))
}

// =============================
// 🗑️ DELETE (soft)
// =============================
func (cc *ClassController) Delete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid class ID")
	}

	res := cc.DB.Model(&model.ClassModel{}).
		Where("class_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete class")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Class not found")
	}

	return helper.JsonDeleted(c, "Class deleted successfully", nil)
}
