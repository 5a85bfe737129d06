package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/app/models/dto"
	"github.com/retriever-essentials/pantry/internal/app/services"
	"github.com/retriever-essentials/pantry/internal/middleware"
)

// UserController handles registration, authentication and user management
type UserController struct {
	userService services.UserService
}

// NewUserController creates a new UserController
func NewUserController(userService services.UserService) *UserController {
	return &UserController{
		userService: userService,
	}
}

// Signup registers a new user and returns the generated user ID
func (c *UserController) Signup(ctx *gin.Context) {
	var req dto.SignupRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid signup data").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	user := &models.User{
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Status:    req.Status,
		Role:      models.RoleType(req.Role),
	}

	userID, err := c.userService.Signup(ctx, user, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusCreated, dto.SignupResponse{
		Message: "User registered successfully",
		UserID:  userID,
	})
}

// Login authenticates a user and issues an access token
func (c *UserController) Login(ctx *gin.Context) {
	var req dto.LoginRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid login data").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	result, err := c.userService.Login(ctx, req.Email, req.Password)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.LoginResponse{
		Message:   "Login successful",
		User:      result.User,
		Token:     result.Token,
		ExpiresIn: result.ExpiresIn,
	})
}

// GetUserByID retrieves a user by their campus ID
func (c *UserController) GetUserByID(ctx *gin.Context) {
	user, err := c.userService.GetUserByID(ctx, ctx.Param("id"))
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// GetAllUsers retrieves all registered users
func (c *UserController) GetAllUsers(ctx *gin.Context) {
	users, err := c.userService.GetAllUsers(ctx)
	if err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, users)
}

// UpdateUser replaces a user's mutable fields
func (c *UserController) UpdateUser(ctx *gin.Context) {
	var req dto.UpdateUserRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest,
			dto.NewErrorResponse("Invalid user data").WithDetails(middleware.FormatValidationError(err)))
		return
	}

	user := &models.User{
		UserID:    ctx.Param("id"),
		FirstName: req.FirstName,
		LastName:  req.LastName,
		Email:     req.Email,
		Status:    req.Status,
		Role:      models.RoleType(req.Role),
	}

	if err := c.userService.UpdateUser(ctx, user); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, user)
}

// DeleteUser removes a user account
func (c *UserController) DeleteUser(ctx *gin.Context) {
	if err := c.userService.DeleteUser(ctx, ctx.Param("id")); err != nil {
		middleware.HandleAPIError(ctx, err)
		return
	}

	ctx.JSON(http.StatusOK, dto.MessageResponse{Message: "User deleted successfully"})
}
