package controller

import (
	"strconv"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	classModel "schoolpayment_backend/internals/features/school/classes/model"
	"schoolpayment_backend/internals/features/school/students/dto"
	"schoolpayment_backend/internals/features/school/students/model"
	helper "schoolpayment_backend/internals/helpers"
)

type StudentController struct {
	DB *gorm.DB
}

func NewStudentController(db *gorm.DB) *StudentController {
	return &StudentController{DB: db}
}

var validate = validator.New()

const dateLayout = "2006-01-02"

// =============================
// 🔍 GET All (paginated)
// =============================
func (sc *StudentController) GetAll(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	var total int64
	if err := sc.DB.Model(&model.StudentModel{}).
		Where("deleted_at IS NULL").
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.StudentModel
	if err := sc.DB.
		Preload("Class").
		Where("deleted_at IS NULL").
		Order("student_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch students")
	}

	return helper.JsonList(c, "Students fetched successfully",
		dto.FromModels(students),
		helper.BuildPagination(total, paging.Page, paging.Size, len(students)))
}

// =============================
// 🔍 SEARCH by name / NIS
// =============================
func (sc *StudentController) Search(c *fiber.Ctx) error {
	keyword := strings.TrimSpace(c.Query("q"))
	paging := helper.ResolvePaging(c)

	query := sc.DB.Model(&model.StudentModel{}).Where("deleted_at IS NULL")
	if keyword != "" {
		if nis, err := strconv.ParseInt(keyword, 10, 64); err == nil {
			query = query.Where("nis = ? OR LOWER(student_name) LIKE ?", nis, "%"+strings.ToLower(keyword)+"%")
		} else {
			query = query.Where("LOWER(student_name) LIKE ?", "%"+strings.ToLower(keyword)+"%")
		}
	}

	var total int64
	if err := query.Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count students")
	}

	var students []model.StudentModel
	if err := query.
		Preload("Class").
		Order("student_name ASC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&students).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to search students")
	}

	return helper.JsonList(c, "Students fetched successfully",
		dto.FromModels(students),
		helper.BuildPagination(total, paging.Page, paging.Size, len(students)))
}

// =============================
// 🔍 GET by ID
// =============================
func (sc *StudentController) GetByID(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var student model.StudentModel
	if err := sc.DB.
		Preload("Class").
		Where("student_id = ? AND deleted_at IS NULL", id).
		First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonOK(c, "Student fetched successfully", dto.FromModel(student))
}

// =============================
// ➕ CREATE
// =============================
func (sc *StudentController) Create(c *fiber.Ctx) error {
	var req dto.CreateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var dup int64
	if err := sc.DB.Model(&model.StudentModel{}).
		Where("nis = ? AND deleted_at IS NULL", req.NIS).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check NIS")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "NIS already registered")
	}

	if req.ClassID != nil {
		var count int64
		if err := sc.DB.Model(&classModel.ClassModel{}).
			Where("class_id = ? AND deleted_at IS NULL", *req.ClassID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Class not found")
		}
	}

	student := model.StudentModel{
		NIS:     req.NIS,
		Name:    req.Name,
		Address: req.Address,
		Phone:   req.Phone,
		ClassID: req.ClassID,
	}
	if req.Birthdate != nil {
		b, _ := time.Parse(dateLayout, *req.Birthdate)
		student.Birthdate = &b
	}
	if err := sc.DB.Create(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create student")
	}

	sc.DB.Preload("Class").First(&student, "student_id = ?", student.ID)
	return helper.JsonCreated(c, "Student created successfully", dto.FromModel(student))
}

// =============================
// ✏️ UPDATE
// =============================
func (sc *StudentController) Update(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	var req dto.UpdateStudentRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var student model.StudentModel
	if err := sc.DB.Where("student_id = ? AND deleted_at IS NULL", id).First(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	if req.NIS != nil && *req.NIS != student.NIS {
		var dup int64
		if err := sc.DB.Model(&model.StudentModel{}).
			Where("nis = ? AND student_id <> ? AND deleted_at IS NULL", *req.NIS, id).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check NIS")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "NIS already registered")
		}
		student.NIS = *req.NIS
	}
	if req.Name != nil {
		student.Name = *req.Name
	}
	if req.Address != nil {
		student.Address = req.Address
	}
	if req.Phone != nil {
		student.Phone = req.Phone
	}
	if req.Birthdate != nil {
		b, _ := time.Parse(dateLayout, *req.Birthdate)
		student.Birthdate = &b
	}
	if req.ClassID != nil {
		var count int64
		if err := sc.DB.Model(&classModel.ClassModel{}).
			Where("class_id = ? AND deleted_at IS NULL", *req.ClassID).
			Count(&count).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check class")
		}
		if count == 0 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Class not found")
		}
		student.ClassID = req.ClassID
	}

	if err := sc.DB.Save(&student).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update student")
	}

	sc.DB.Preload("Class").First(&student, "student_id = ?", student.ID)
	return helper.JsonUpdated(c, "Student updated successfully", dto.FromModel(student))
}

// =============================
// 🗑️ SOFT DELETE
// =============================
func (sc *StudentController) SoftDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	res := sc.DB.Model(&model.StudentModel{}).
		Where("student_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonDeleted(c, "Student deleted successfully", nil)
}

// =============================
// 🗑️ HARD DELETE
// =============================
func (sc *StudentController) HardDelete(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid student ID")
	}

	res := sc.DB.Unscoped().Where("student_id = ?", id).Delete(&model.StudentModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete student")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "Student not found")
	}

	return helper.JsonDeleted(c, "Student permanently deleted", nil)
}
