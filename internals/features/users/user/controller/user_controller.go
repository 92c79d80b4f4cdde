package controller

import (
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"schoolpayment_backend/internals/configs"
	"schoolpayment_backend/internals/constants"
	authService "schoolpayment_backend/internals/features/users/auth/service"
	"schoolpayment_backend/internals/features/users/user/dto"
	"schoolpayment_backend/internals/features/users/user/model"
	helper "schoolpayment_backend/internals/helpers"
)

type UserController struct {
	DB *gorm.DB
}

func NewUserController(db *gorm.DB) *UserController {
	return &UserController{DB: db}
}

var validate = validator.New()

// =============================
// 🔍 GET All Users (paginated)
// =============================
func (uc *UserController) GetUsers(c *fiber.Ctx) error {
	paging := helper.ResolvePaging(c)

	var total int64
	if err := uc.DB.Model(&model.UserModel{}).
		Where("deleted_at IS NULL").
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := uc.DB.
		Where("deleted_at IS NULL").
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonList(c, "Users fetched successfully",
		dto.FromModels(users),
		helper.BuildPagination(total, paging.Page, paging.Size, len(users)))
}

// =============================
// 🔍 GET Users filtered by role
// =============================
func (uc *UserController) GetUsersByRole(c *fiber.Ctx) error {
	role := strings.ToUpper(strings.TrimSpace(c.Query("role")))
	if !constants.IsValidRole(role) {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid role filter")
	}

	paging := helper.ResolvePaging(c)

	var total int64
	if err := uc.DB.Model(&model.UserModel{}).
		Where("role = ? AND deleted_at IS NULL", role).
		Count(&total).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to count users")
	}

	var users []model.UserModel
	if err := uc.DB.
		Where("role = ? AND deleted_at IS NULL", role).
		Order("created_at DESC").
		Limit(paging.Limit).
		Offset(paging.Offset).
		Find(&users).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to fetch users")
	}

	return helper.JsonList(c, "Users fetched successfully",
		dto.FromModels(users),
		helper.BuildPagination(total, paging.Page, paging.Size, len(users)))
}

// =============================
// ✏️ UPDATE Role (ADMIN)
// =============================
func (uc *UserController) UpdateRole(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	var req dto.UpdateRoleRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid input format")
	}
	if err := validate.Struct(req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
	}

	var user model.UserModel
	if err := uc.DB.Where("user_id = ? AND deleted_at IS NULL", id).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	if err := uc.DB.Model(&user).Update("role", strings.ToUpper(req.Role)).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update role")
	}

	user.Role = strings.ToUpper(req.Role)
	return helper.JsonUpdated(c, "Role updated successfully", dto.FromModel(user))
}

// =============================
// ✏️ UPDATE Profile (self, multipart)
// =============================
func (uc *UserController) UpdateProfile(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := uc.DB.Where("user_id = ? AND deleted_at IS NULL", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	updates := map[string]interface{}{}

	if email := strings.TrimSpace(c.FormValue("email")); email != "" {
		var dup int64
		if err := uc.DB.Model(&model.UserModel{}).
			Where("email = ? AND user_id <> ? AND deleted_at IS NULL", strings.ToLower(email), userID).
			Count(&dup).Error; err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to check email")
		}
		if dup > 0 {
			return helper.JsonError(c, fiber.StatusConflict, "Email already in use")
		}
		updates["email"] = strings.ToLower(email)
	}

	if password := c.FormValue("password"); password != "" {
		if len(password) < 8 {
			return helper.JsonError(c, fiber.StatusBadRequest, "Password must be at least 8 characters")
		}
		if password != c.FormValue("confirm_password") {
			return helper.JsonError(c, fiber.StatusBadRequest, "Password and confirm password do not match")
		}
		hashed, err := authService.HashPassword(password)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to hash password")
		}
		updates["password"] = hashed
	}

	if fh, err := c.FormFile("profile_picture"); err == nil && fh != nil {
		if err := helper.ValidateImageFile(fh); err != nil {
			return helper.JsonError(c, fiber.StatusBadRequest, err.Error())
		}
		rel, err := helper.SaveImageFile(configs.MediaDirectory, fh)
		if err != nil {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to save profile picture")
		}
		updates["profile_picture"] = rel
	}

	if len(updates) == 0 {
		return helper.JsonError(c, fiber.StatusBadRequest, "No fields to update")
	}

	if err := uc.DB.Model(&user).Updates(updates).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to update profile")
	}

	if err := uc.DB.Where("user_id = ?", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to reload profile")
	}
	return helper.JsonUpdated(c, "Profile updated successfully", dto.FromModel(user))
}

// =============================
// 🖼️ GET Profile Picture (self)
// =============================
func (uc *UserController) GetProfilePicture(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user model.UserModel
	if err := uc.DB.Where("user_id = ? AND deleted_at IS NULL", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}
	if user.ProfilePicture == nil || *user.ProfilePicture == "" {
		return helper.JsonError(c, fiber.StatusNotFound, "Profile picture not set")
	}

	return c.SendFile(configs.MediaDirectory + "/" + *user.ProfilePicture)
}

// =============================
// 🗑️ SOFT DELETE (ADMIN)
// =============================
func (uc *UserController) SoftDeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	res := uc.DB.Model(&model.UserModel{}).
		Where("user_id = ? AND deleted_at IS NULL", id).
		Update("deleted_at", time.Now())
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User deleted successfully", nil)
}

// =============================
// 🗑️ HARD DELETE (ADMIN)
// =============================
func (uc *UserController) HardDeleteUser(c *fiber.Ctx) error {
	id, err := uuid.Parse(c.Params("id"))
	if err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid user ID")
	}

	res := uc.DB.Unscoped().Where("user_id = ?", id).Delete(&model.UserModel{})
	if res.Error != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to delete user")
	}
	if res.RowsAffected == 0 {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonDeleted(c, "User permanently deleted", nil)
}
