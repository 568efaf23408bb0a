package controllers

import (
	"strings"
	"time"

	"Backend-CourseSignin/src/models"
	"Backend-CourseSignin/src/services/auth"
	"Backend-CourseSignin/src/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

var validate = validator.New()

// AuthController 登入 / 登出 / 帳號管理
type AuthController struct {
	svc *auth.Service
}

func NewAuthController(svc *auth.Service) *AuthController {
	return &AuthController{svc: svc}
}

// Login godoc
// @Summary      Login
// @Description  Login with username and password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body models.LoginRequest true "Credentials"
// @Success      200  {object}  models.LoginResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/login [post]
func (ac *AuthController) Login(c *fiber.Ctx) error {
	var req models.LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "請輸入帳號密碼")
	}

	user, err := ac.svc.Authenticate(c.Context(), req.Username, req.Password)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, err.Error())
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Username, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}

	// refresh token 放 Redis, 沒有 Redis 時回空字串 (dev mode)
	refreshToken := utils.GenerateRandomString(32)
	if err := utils.StoreRefreshToken(user.ID.Hex(), refreshToken, 7*24*time.Hour); err != nil {
		refreshToken = ""
	}

	return c.JSON(models.LoginResponse{
		Token:        token,
		RefreshToken: refreshToken,
		Username:     user.Username,
		Role:         user.Role,
	})
}

// RefreshToken godoc
// @Summary      Refresh access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body body object{userId=string,refreshToken=string} true "Refresh request"
// @Success      200  {object}  models.LoginResponse
// @Failure      401  {object}  models.ErrorResponse
// @Router       /auth/refresh [post]
func (ac *AuthController) RefreshToken(c *fiber.Ctx) error {
	var req struct {
		UserID       string `json:"userId"`
		RefreshToken string `json:"refreshToken"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}

	ok, err := utils.ValidateRefreshToken(req.UserID, req.RefreshToken)
	if err != nil || !ok {
		return utils.HandleError(c, fiber.StatusUnauthorized, "Refresh token 無效或已過期")
	}

	id, err := primitive.ObjectIDFromHex(req.UserID)
	if err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid user ID")
	}
	user, err := ac.svc.FindByID(c.Context(), id)
	if err != nil {
		return utils.HandleError(c, fiber.StatusUnauthorized, "查無使用者")
	}

	token, err := utils.GenerateJWT(user.ID.Hex(), user.Username, user.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, "Token generation failed")
	}
	return c.JSON(models.LoginResponse{Token: token, RefreshToken: req.RefreshToken, Username: user.Username, Role: user.Role})
}

// Logout godoc
// @Summary      Logout
// @Description  Blacklist the current token and drop the refresh token
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {object}  models.SuccessResponse
// @Router       /auth/logout [post]
func (ac *AuthController) Logout(c *fiber.Ctx) error {
	token := strings.TrimPrefix(c.Get("Authorization"), "Bearer ")
	if token != "" {
		// 黑名單放到 access token 過期為止
		_ = utils.BlacklistToken(token, 24*time.Hour)
	}
	if userID, ok := c.Locals("userId").(string); ok {
		_ = utils.DeleteRefreshToken(userID)
	}
	return c.JSON(models.SuccessResponse{Message: "已登出"})
}

// CreateUser godoc
// @Summary      Create a user
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body object{username=string,password=string,role=string} true "User"
// @Success      201  {object}  models.User
// @Failure      400  {object}  models.ErrorResponse
// @Failure      409  {object}  models.ErrorResponse
// @Router       /auth/users [post]
func (ac *AuthController) CreateUser(c *fiber.Ctx) error {
	var req struct {
		Username string `json:"username" validate:"required,min=3"`
		Password string `json:"password" validate:"required,min=6"`
		Role     string `json:"role" validate:"required,oneof=admin user"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "帳號至少 3 碼, 密碼至少 6 碼, 角色限 admin/user")
	}

	user, err := ac.svc.CreateUser(c.Context(), req.Username, req.Password, req.Role)
	if err != nil {
		return utils.HandleError(c, fiber.StatusConflict, err.Error())
	}
	return c.Status(fiber.StatusCreated).JSON(user)
}

// ChangePassword godoc
// @Summary      Change own password
// @Tags         auth
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body body object{oldPassword=string,newPassword=string} true "Passwords"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Router       /auth/password [put]
func (ac *AuthController) ChangePassword(c *fiber.Ctx) error {
	var req struct {
		OldPassword string `json:"oldPassword" validate:"required"`
		NewPassword string `json:"newPassword" validate:"required,min=6"`
	}
	if err := c.BodyParser(&req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "Invalid input: "+err.Error())
	}
	if err := validate.Struct(req); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, "新密碼至少 6 碼")
	}

	username, _ := c.Locals("username").(string)
	if err := ac.svc.ChangePassword(c.Context(), username, req.OldPassword, req.NewPassword); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "密碼已更新"})
}

// ListUsers godoc
// @Summary      List users
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}  models.User
// @Router       /auth/users [get]
func (ac *AuthController) ListUsers(c *fiber.Ctx) error {
	users, err := ac.svc.ListUsers(c.Context())
	if err != nil {
		return utils.HandleError(c, fiber.StatusInternalServerError, err.Error())
	}
	return c.JSON(users)
}

// DeleteUser godoc
// @Summary      Delete a user
// @Tags         auth
// @Produce      json
// @Security     BearerAuth
// @Param        username path string true "Username"
// @Success      200  {object}  models.SuccessResponse
// @Failure      400  {object}  models.ErrorResponse
// @Failure      404  {object}  models.ErrorResponse
// @Router       /auth/users/{username} [delete]
func (ac *AuthController) DeleteUser(c *fiber.Ctx) error {
	username := c.Params("username")
	if err := ac.svc.DeleteUser(c.Context(), username); err != nil {
		return utils.HandleError(c, fiber.StatusBadRequest, err.Error())
	}
	return c.JSON(models.SuccessResponse{Message: "使用者已刪除"})
}
