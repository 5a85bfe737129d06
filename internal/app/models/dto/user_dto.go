package dto

import "github.com/retriever-essentials/pantry/internal/app/models"

// SignupRequest carries the fields required to register a user
type SignupRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=6"`
	Status    string `json:"status" binding:"required"`
	Role      string `json:"role"`
}

// SignupResponse returns the generated user id
type SignupResponse struct {
	Message string `json:"message"`
	UserID  string `json:"user_id"`
}

// LoginRequest carries login credentials
type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// LoginResponse returns the authenticated user (without password) and an
// access token for role-gated endpoints.
type LoginResponse struct {
	Message   string       `json:"message"`
	User      *models.User `json:"user"`
	Token     string       `json:"token"`
	ExpiresIn int          `json:"expires_in"`
}

// UpdateUserRequest replaces a user's mutable fields
type UpdateUserRequest struct {
	FirstName string `json:"first_name" binding:"required"`
	LastName  string `json:"last_name" binding:"required"`
	Email     string `json:"email" binding:"required,email"`
	Status    string `json:"status" binding:"required"`
	Role      string `json:"role"`
}
