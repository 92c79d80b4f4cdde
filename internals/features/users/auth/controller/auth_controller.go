package controller

import (
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	authService "schoolpayment_backend/internals/features/users/auth/service"
	userDTO "schoolpayment_backend/internals/features/users/user/dto"
	userModel "schoolpayment_backend/internals/features/users/user/model"
	helper "schoolpayment_backend/internals/helpers"
	"schoolpayment_backend/internals/configs"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

// POST /api/users/register
func (ac *AuthController) Register(c *fiber.Ctx) error {
	return authService.Register(ac.DB, c)
}

// POST /api/users/login
func (ac *AuthController) Login(c *fiber.Ctx) error {
	return authService.Login(ac.DB, c, configs.JWTSecret)
}

// PUT /api/users/change-password
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	return authService.ChangePassword(ac.DB, c)
}

// GET /api/users/me
func (ac *AuthController) Me(c *fiber.Ctx) error {
	userID, err := helper.GetUserIDFromToken(c)
	if err != nil {
		return err
	}

	var user userModel.UserModel
	if err := ac.DB.Where("user_id = ? AND deleted_at IS NULL", userID).First(&user).Error; err != nil {
		return helper.JsonError(c, fiber.StatusNotFound, "User not found")
	}

	return helper.JsonOK(c, "Profile fetched successfully", userDTO.FromModel(user))
}
