package service

import (
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	studentModel "schoolpayment_backend/internals/features/school/students/model"
	userDTO "schoolpayment_backend/internals/features/users/user/dto"
	userModel "schoolpayment_backend/internals/features/users/user/model"
	helper "schoolpayment_backend/internals/helpers"
)

var validate = validator.New()

// ========================== REGISTER ==========================
// Registrasi hanya untuk siswa yang NIS-nya sudah terdaftar di tabel students.
func Register(db *gorm.DB, c *fiber.Ctx) error {
	var req userDTO.RegisterUserRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}
	if req.Password != req.ConfirmPassword {
		return helper.JsonError(c, fiber.StatusBadRequest, "Password and confirm password do not match")
	}

	// NIS wajib milik siswa yang sudah terdaftar
	var studentCount int64
	if err := db.Model(&studentModel.StudentModel{}).
		Where("nis = ? AND deleted_at IS NULL", req.NIS).
		Count(&studentCount).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check student data")
	}
	if studentCount == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "NIS is not registered as a student")
	}

	var dup int64
	if err := db.Model(&userModel.UserModel{}).
		Where("(email = ? OR nis = ?) AND deleted_at IS NULL", strings.ToLower(req.Email), req.NIS).
		Count(&dup).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check existing users")
	}
	if dup > 0 {
		return helper.JsonError(c, fiber.StatusConflict, "Email or NIS already registered")
	}

	hashed, err := HashPassword(req.Password)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
	}

	nis := req.NIS
	user := userModel.UserModel{
		NIS:      &nis,
		Name:     req.Name,
		Email:    strings.ToLower(req.Email),
		Password: hashed,
		Role:     "STUDENT",
	}
	if err := db.Create(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to create user")
	}

	return helper.JsonCreated(c, "Registration successful", userDTO.FromModel(user))
}

// ========================== LOGIN ==========================
// Identifier boleh berupa email atau NIS.
func Login(db *gorm.DB, c *fiber.Ctx, jwtSecret string) error {
	var req userDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	identifier := strings.TrimSpace(req.Identifier)

	var user userModel.UserModel
	query := db.Where("deleted_at IS NULL")
	if nis, err := strconv.ParseInt(identifier, 10, 64); err == nil {
		query = query.Where("email = ? OR nis = ?", strings.ToLower(identifier), nis)
	} else {
		query = query.Where("email = ?", strings.ToLower(identifier))
	}
	if err := query.First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email/NIS or password")
	}

	if err := CheckPasswordHash(user.Password, req.Password); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Invalid email/NIS or password")
	}

	token, err := IssueAccessToken(jwtSecret, &user)
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue token")
	}

	return helper.JsonOK(c, "Login successful", fiber.Map{
		"access_token": token,
		"token_type":   "Bearer",
		"user":         userDTO.FromModel(user),
	})
}
