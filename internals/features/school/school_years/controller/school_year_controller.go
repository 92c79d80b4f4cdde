package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolpayment_backend/internals/features/school/school_years/dto"
	"schoolpayment_backend/internals/features/school/school_years/model"
	helper "schoolpayment_backend/internals/helpers"
)

type SchoolYearController struct {
	DB *gorm.DB
}

func NewSchoolYearController(db *gorm.DB) *SchoolYearController {
	return &SchoolYearController{DB: db}
}

var validate = validator.New()

const dateLayout = "2006-01-02"

// =============================
// 🔍 GET All (paginated)
// =============================
func (syc *SchoolYearController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	var total int64
	if err := syc.DB.Model(&model.SchoolYearModel{}).
		Where("deleted_at IS NULL").
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count school years")
	}

	var years []model.SchoolYearModel
	if err := syc.DB.
		Where("deleted_at IS NULL").
		Order("start_date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&years).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch school years")
	}

	return helper.JsonList(c, "School years fetched successfully",
		dto.FromModels(years),
		helper.BuildPagination(total, paging.Page, paging.Size, len(years)))
}

// =============================
// 🔍 SEARCH by name
// =============================
func (syc *SchoolYearController) Search(c *fiber.Ctx) error {
	name := strings.TrimSpace(c.Query("name"))
	paging := helper.ResolvePaging(c)

	query := syc.DB.Model(&model.SchoolYearModel{}).Where("deleted_at IS NULL")
	if name != "" {
		query = query.Where("LOWER(school_year_name) LIKE ?", "%"+strings.ToLower(name)+"%")
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count school years")
	}

	var years []model.SchoolYearModel
	if err := query.
		Order("start_date DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&years).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to search school years")
	}

	return helper.JsonList(c, "School years fetched successfully",
		dto.FromModels(years),
		helper.BuildPagination(total, paging.Page, paging.Size, len(years)))
}

// =============================
// ➕ CREATE
// =============================
func (syc *SchoolYearController) Create(c *fiber.Ctx) error {
	var req dto.CreateSchoolYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	start, _ := time.Parse(dateLayout, req.StartDate)
	end, _ := time.Parse(dateLayout, req.EndDate)
	if end.Before(start) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End date must be after start date")
	}

	var dup int64
	if err := syc.DB.Model(&model.SchoolYearModel{}).
		Where("school_year_name = ? AND deleted_at IS NULL", req.Name).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check school year")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "School year already exists")
	}

	year := model.SchoolYearModel{
		Name:      req.Name,
		StartDate: start,
		EndDate:   end,
	}
	if err := syc.DB.Create(&year).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create school year")
	}

	return helper.JsonCreated(c, "School year created successfully", dto.FromModel(year))
}

// =============================
// ✏️ UPDATE
// =============================
func (syc *SchoolYearController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school year ID")
	}

	var req dto.UpdateSchoolYearRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var year model.SchoolYearModel
	if err := syc.DB.Where("school_year_id = ? AND deleted_at IS NULL", id).First(&year).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "School year not found")
	}

	if req.Name != nil {
		year.Name = *req.Name
	}
	if req.StartDate != nil {
		start, _ := time.Parse(dateLayout, *req.StartDate)
		year.StartDate = start
	}
	if req.EndDate != nil {
		end, _ := time.Parse(dateLayout, *req.EndDate)
		year.EndDate = end
	}
	if year.EndDate.Before(year.StartDate) {
		return helper.JsonError(c, fiber.StatusBadRequest, "End date must be after start date")
	}

	if err := syc.DB.Save(&year).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update school year")
	}

	return helper.JsonUpdated(c, "School year updated successfully", dto.FromModel(year))
}

// =============================
// 🗑️ SOFT DELETE
// =============================
func (syc *SchoolYearController) SoftDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school year ID")
	}

	res := syc.DB.Model(&model.SchoolYearModel{}).
		Where("school_year_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete school year")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "School year not found")
	}

	return helper.JsonDeleted(c, "School year deleted successfully", nil)
}

// =============================
// ♻️ RESTORE
// =============================
func (syc *SchoolYearController) Restore(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school year ID")
	}

	res := syc.DB.Model(&model.SchoolYearModel{}).
		Where("school_year_id = ? AND deleted_at IS NOT NULL", id).
		Update("deleted_at", nil)
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to restore school year")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Deleted school year not found")
	}

	return helper.JsonUpdated(c, "School year restored successfully", nil)
}

// =============================
// 🗑️ HARD DELETE
// =============================
func (syc *SchoolYearController) HardDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid school year ID")
	}

	res := syc.DB.Unscoped().Where("school_year_id = ?", id).Delete(&model.SchoolYearModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete school year")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "School year not found")
	}

	return helper.JsonDeleted(c, "School year permanently deleted", nil)
}
