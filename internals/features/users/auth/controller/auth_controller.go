package controller

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"gorm.io/gorm"

	"gerejaku_backend/internals/configs"
	authDTO "gerejaku_backend/internals/features/users/auth/dto"
	authModel "gerejaku_backend/internals/features/users/auth/model"
	authService "gerejaku_backend/internals/features/users/auth/service"
	helper "gerejaku_backend/internals/helpers"
)

type AuthController struct {
	DB *gorm.DB
}

func NewAuthController(db *gorm.DB) *AuthController {
	return &AuthController{DB: db}
}

var validateAuth = validator.New()

// POST /api/login
func (h *AuthController) Login(c *fiber.Ctx) error {
	var req authDTO.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helper.JsonError(c, fiber.StatusBadRequest, "Invalid payload")
	}
	if err := validateAuth.Struct(req); err != nil {
		return helper.JsonValidationError(c, err)
	}

	var account authModel.AdminAccountModel
	err := h.DB.
		Where("LOWER(admin_account_email) = LOWER(?)", strings.TrimSpace(req.Email)).
		First(&account).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// same message as a bad password: do not reveal which field was wrong
			return helper.JsonError(c, fiber.StatusUnauthorized, authService.ErrInvalidCredentials.Error())
		}
		return helper.JsonError(c, fiber.StatusInternalServerError, "Login failed")
	}

	if err := authService.Authenticate(&account, req.Email, req.Password, req.Role); err != nil {
		return helper.JsonError(c, fiber.StatusUnauthorized, authService.ErrInvalidCredentials.Error())
	}

	token, err := authService.IssueSessionToken(configs.JWTSecret, &account, time.Now())
	if err != nil {
		return helper.JsonError(c, fiber.StatusInternalServerError, "Failed to issue session token")
	}

	return helper.JsonOK(c, "Login successful", authDTO.LoginResponse{
		AccessToken: token,
		Email:       account.AdminAccountEmail,
		Role:        account.AdminAccountRole,
		ExpiresIn:   int64(authService.SessionTTL.Seconds()),
	})
}

// POST /api/logout (authenticated)
func (h *AuthController) Logout(c *fiber.Ctx) error {
	tokenString, _ := c.Locals("token_string").(string)
	if tokenString == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}

	claims, err := authService.ParseSessionToken(configs.JWTSecret, tokenString)
	expiredAt := time.Now().Add(authService.SessionTTL)
	if err == nil {
		expiredAt = claims.ExpiresAt
	}

	entry := authModel.TokenBlacklist{Token: tokenString, ExpiredAt: expiredAt}
	if err := h.DB.Create(&entry).Error; err != nil {
		// duplicate insert means the token was already logged out; treat as success
		if !isUniqueErr(err) {
			return helper.JsonError(c, fiber.StatusInternalServerError, "Logout failed")
		}
	}

	return helper.JsonOK(c, "Logged out", nil)
}

// GET /api/me (authenticated) — session restore for the client.
func (h *AuthController) Me(c *fiber.Ctx) error {
	email := helper.GetEmailFromToken(c)
	role := helper.GetRoleFromToken(c)
	if email == "" || role == "" {
		return helper.JsonError(c, fiber.StatusUnauthorized, "Unauthorized")
	}
	return helper.JsonOK(c, "OK", authDTO.MeResponse{Email: email, Role: role})
}

func isUniqueErr(err error) bool {
	if err == nil {
		return false
	}
	s := strings.ToLower(err.Error())
	return strings.Contains(s, "duplicate key") || strings.Contains(s, "unique constraint")
}
