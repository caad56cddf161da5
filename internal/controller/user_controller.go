package controller

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"malama_health_backend/internal/model"
	"malama_health_backend/internal/service"
	"malama_health_backend/internal/util"
)

type UserController struct {
	AuthService *service.AuthService
	UserService *service.UserService
}

func NewUserController(authService *service.AuthService, userService *service.UserService) *UserController {
	return &UserController{AuthService: authService, UserService: userService}
}

// swagger:model RegisterRequest
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Language string `json:"language"`
}

// swagger:model LoginRequest
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// AuthResponse carries the sanitized account plus its bearer token.
// swagger:model AuthResponse
type AuthResponse struct {
	User  model.User `json:"user"`
	Token string     `json:"token"`
}

// GetUsers godoc
// @Summary List users
// @Tags users
// @Produce json
// @Success 200 {array} model.User
// @Router /users [get]
func (c *UserController) GetUsers(ctx *gin.Context) {
	users, err := c.UserService.GetAll()
	if err != nil {
		util.LogInternalError(ctx, err)
		return
	}

	sanitized := make([]model.User, 0, len(users))
	for _, u := range users {
		sanitized = append(sanitized, u.Sanitized())
	}
	ctx.JSON(http.StatusOK, sanitized)
}

// GetUser godoc
// @Summary Get a user by id
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} model.User
// @Failure 404 {object} util.ErrorResponse
// @Router /users/{id} [get]
func (c *UserController) GetUser(ctx *gin.Context) {
	user, err := c.UserService.GetByID(ctx.Param("id"))
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, user.Sanitized())
}

// Register godoc
// @Summary Register a new account
// @Tags users
// @Accept json
// @Produce json
// @Param body body RegisterRequest true "Registration payload"
// @Success 201 {object} AuthResponse
// @Failure 400 {object} util.ErrorResponse
// @Router /users/register [post]
func (c *UserController) Register(ctx *gin.Context) {
	var req RegisterRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "All fields are required")
		return
	}

	user, token, err := c.AuthService.Register(req.Username, req.Email, req.Password, req.Name, req.Language)
	if err != nil {
		if errors.Is(err, util.ErrDuplicateUser) {
			util.BadRequest(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusCreated, AuthResponse{User: user.Sanitized(), Token: token})
}

// Login godoc
// @Summary Authenticate and issue a token
// @Tags users
// @Accept json
// @Produce json
// @Param body body LoginRequest true "Credentials"
// @Success 200 {object} AuthResponse
// @Failure 401 {object} util.ErrorResponse
// @Router /users/login [post]
func (c *UserController) Login(ctx *gin.Context) {
	var req LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		util.BadRequest(ctx, "Email and password are required")
		return
	}

	user, token, err := c.AuthService.Login(req.Email, req.Password)
	if err != nil {
		if errors.Is(err, util.ErrInvalidCredentials) {
			util.Unauthorized(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}

	ctx.JSON(http.StatusOK, AuthResponse{User: user.Sanitized(), Token: token})
}

// UpdateUser godoc
// @Summary Merge-patch a user
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} model.User
// @Failure 404 {object} util.ErrorResponse
// @Router /users/{id} [put]
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var patch map[string]interface{}
	if err := ctx.ShouldBindJSON(&patch); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	user, err := c.UserService.Update(ctx.Param("id"), patch)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, user.Sanitized())
}

// UpdatePreferences godoc
// @Summary Merge fields into the user's preference block
// @Tags users
// @Accept json
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} model.User
// @Failure 404 {object} util.ErrorResponse
// @Router /users/{id}/preferences [put]
func (c *UserController) UpdatePreferences(ctx *gin.Context) {
	var prefs map[string]interface{}
	if err := ctx.ShouldBindJSON(&prefs); err != nil {
		util.BadRequest(ctx, "Invalid request body")
		return
	}

	user, err := c.UserService.UpdatePreferences(ctx.Param("id"), prefs)
	if err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, user.Sanitized())
}

// DeleteUser godoc
// @Summary Delete a user
// @Tags users
// @Produce json
// @Param id path string true "User id"
// @Success 200 {object} map[string]string
// @Failure 404 {object} util.ErrorResponse
// @Router /users/{id} [delete]
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.UserService.Delete(ctx.Param("id")); err != nil {
		if errors.Is(err, util.ErrUserNotFound) {
			util.NotFound(ctx, err.Error())
		} else {
			util.LogInternalError(ctx, err)
		}
		return
	}
	ctx.JSON(http.StatusOK, gin.H{"message": "User deleted successfully"})
}
