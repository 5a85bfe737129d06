package services

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"strings"
	"unicode"

	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/app/repositories"
	"github.com/retriever-essentials/pantry/internal/pkg/apperrors"
	"github.com/retriever-essentials/pantry/internal/pkg/auth"
)

// UserStore is the user persistence surface the service needs.
type UserStore interface {
	CreateUser(ctx context.Context, user *models.User) error
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID string) error
}

// LoginResult bundles the authenticated user with its access token.
type LoginResult struct {
	User      *models.User
	Token     string
	ExpiresIn int
}

// UserService defines the interface for user-related operations
type UserService interface {
	Signup(ctx context.Context, user *models.User, password string) (string, error)
	Login(ctx context.Context, email, password string) (*LoginResult, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetAllUsers(ctx context.Context) ([]*models.User, error)
	UpdateUser(ctx context.Context, user *models.User) error
	DeleteUser(ctx context.Context, userID string) error
}

// userServiceImpl implements the UserService interface
type userServiceImpl struct {
	users UserStore
	jwt   *auth.JWTService
}

// NewUserService creates a new user service instance
func NewUserService(users UserStore, jwt *auth.JWTService) UserService {
	return &userServiceImpl{
		users: users,
		jwt:   jwt,
	}
}

// GenerateUserID builds a user id from name initials plus five random
// digits, e.g. "JD48213".
func GenerateUserID(firstName, lastName string) string {
	return initial(firstName) + initial(lastName) + fmt.Sprintf("%05d", 10000+rand.Intn(90000))
}

func initial(name string) string {
	for _, r := range strings.TrimSpace(name) {
		return string(unicode.ToUpper(r))
	}
	return "X"
}

// validStatus accepts the two known statuses case-insensitively.
func validStatus(status string) bool {
	switch models.NormalizeStatus(status) {
	case models.StatusUndergraduate, models.StatusGraduate:
		return true
	}
	return false
}

// Signup registers a new user with a generated id and a hashed password.
// A generated-id collision is retried once with an extra random digit.
func (s *userServiceImpl) Signup(ctx context.Context, user *models.User, password string) (string, error) {
	if user == nil {
		return "", fmt.Errorf("%w: user is nil", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(user.FirstName) == "" || strings.TrimSpace(user.LastName) == "" {
		return "", fmt.Errorf("%w: first and last name are required", apperrors.ErrValidationFailed)
	}
	if strings.TrimSpace(user.Email) == "" {
		return "", fmt.Errorf("%w: email is required", apperrors.ErrValidationFailed)
	}
	if password == "" {
		return "", fmt.Errorf("%w: password is required", apperrors.ErrValidationFailed)
	}
	if !validStatus(user.Status) {
		return "", fmt.Errorf("%w: status must be undergraduate or graduate", apperrors.ErrValidationFailed)
	}

	hashed, err := auth.HashPassword(password)
	if err != nil {
		return "", fmt.Errorf("error hashing password: %w", err)
	}
	user.Password = hashed

	if user.Role == "" {
		user.Role = models.RoleStudent
	}

	user.UserID = GenerateUserID(user.FirstName, user.LastName)
	err = s.users.CreateUser(ctx, user)
	if errors.Is(err, repositories.ErrUserIDAlreadyExists) {
		// Collision on the generated id: try once more with an extra digit.
		user.UserID = GenerateUserID(user.FirstName, user.LastName) + fmt.Sprintf("%d", rand.Intn(10))
		err = s.users.CreateUser(ctx, user)
	}
	if err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return "", apperrors.ErrEmailAlreadyExists
		}
		return "", fmt.Errorf("error creating user: %w", err)
	}

	return user.UserID, nil
}

// Login checks credentials and returns the user (password cleared) with an
// access token carrying the user's role.
func (s *userServiceImpl) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrInvalidCredentials
		}
		return nil, fmt.Errorf("error during authentication: %w", err)
	}

	if !auth.CheckPassword(user.Password, password) {
		return nil, apperrors.ErrInvalidCredentials
	}

	token, expiresIn, err := s.jwt.GenerateToken(user.UserID, user.Email, string(user.Role))
	if err != nil {
		return nil, fmt.Errorf("error generating token: %w", err)
	}

	user.Password = ""
	return &LoginResult{User: user, Token: token, ExpiresIn: expiresIn}, nil
}

// GetUserByID retrieves a user by ID with the password cleared
func (s *userServiceImpl) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return nil, apperrors.ErrUserNotFound
		}
		return nil, fmt.Errorf("error retrieving user: %w", err)
	}
	user.Password = ""
	return user, nil
}

// GetAllUsers retrieves all users with passwords cleared
func (s *userServiceImpl) GetAllUsers(ctx context.Context) ([]*models.User, error) {
	users, err := s.users.GetAllUsers(ctx)
	if err != nil {
		return nil, fmt.Errorf("error retrieving users: %w", err)
	}
	for _, u := range users {
		u.Password = ""
	}
	return users, nil
}

// UpdateUser updates a user's profile fields
func (s *userServiceImpl) UpdateUser(ctx context.Context, user *models.User) error {
	if user == nil || strings.TrimSpace(user.UserID) == "" {
		return fmt.Errorf("%w: user ID is required", apperrors.ErrValidationFailed)
	}
	if !validStatus(user.Status) {
		return fmt.Errorf("%w: status must be undergraduate or graduate", apperrors.ErrValidationFailed)
	}

	if err := s.users.UpdateUser(ctx, user); err != nil {
		if errors.Is(err, repositories.ErrEmailAlreadyExists) {
			return apperrors.ErrEmailAlreadyExists
		}
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error updating user: %w", err)
	}
	return nil
}

// DeleteUser deletes a user by ID
func (s *userServiceImpl) DeleteUser(ctx context.Context, userID string) error {
	if err := s.users.DeleteUser(ctx, userID); err != nil {
		if errors.Is(err, repositories.ErrNotFound) {
			return apperrors.ErrUserNotFound
		}
		return fmt.Errorf("error deleting user: %w", err)
	}
	return nil
}
