package services

import (
	"context"
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"

	"github.com/retriever-essentials/pantry/internal/app/models"
	"github.com/retriever-essentials/pantry/internal/app/repositories"
	"github.com/retriever-essentials/pantry/internal/pkg/apperrors"
	"github.com/retriever-essentials/pantry/internal/pkg/auth"
)

func newTestUserService(users *mockUserStore) UserService {
	jwt := auth.NewJWTService(auth.JWTConfig{
		SecretKey:      "test-secret",
		AccessTokenExp: time.Hour,
		TokenIssuer:    "test",
	})
	return NewUserService(users, jwt)
}

func signupUser() *models.User {
	return &models.User{
		FirstName: "Jane",
		LastName:  "Doe",
		Email:     "jane@example.edu",
		Status:    "Undergraduate",
	}
}

func TestGenerateUserIDFormat(t *testing.T) {
	pattern := regexp.MustCompile(`^[A-Z]{2}\d{5}$`)
	for i := 0; i < 50; i++ {
		id := GenerateUserID("Jane", "Doe")
		assert.Regexp(t, pattern, id)
		assert.Equal(t, "JD", id[:2])
	}

	// Blank names fall back to a placeholder initial.
	assert.Equal(t, "XD", GenerateUserID("", "Doe")[:2])
}

func TestSignupHashesPasswordAndDefaultsRole(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestUserService(users)

	var created *models.User
	users.On("CreateUser", mock.Anything, mock.Anything).Run(func(args mock.Arguments) {
		created = args.Get(1).(*models.User)
	}).Return(nil).Once()

	id, err := svc.Signup(context.Background(), signupUser(), "hunter22")
	require.NoError(t, err)
	require.NotNil(t, created)

	assert.Equal(t, id, created.UserID)
	assert.Equal(t, models.RoleStudent, created.Role)
	assert.NotEqual(t, "hunter22", created.Password)
	assert.True(t, auth.CheckPassword(created.Password, "hunter22"))
}

func TestSignupRetriesOnceOnIDCollision(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestUserService(users)

	users.On("CreateUser", mock.Anything, mock.Anything).
		Return(repositories.ErrUserIDAlreadyExists).Once()
	users.On("CreateUser", mock.Anything, mock.Anything).
		Return(nil).Once()

	id, err := svc.Signup(context.Background(), signupUser(), "hunter22")
	require.NoError(t, err)
	// Retry appends one extra digit.
	assert.Regexp(t, `^[A-Z]{2}\d{6}$`, id)
	users.AssertNumberOfCalls(t, "CreateUser", 2)
}

func TestSignupDuplicateEmail(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestUserService(users)

	users.On("CreateUser", mock.Anything, mock.Anything).
		Return(repositories.ErrEmailAlreadyExists).Once()

	_, err := svc.Signup(context.Background(), signupUser(), "hunter22")
	assert.ErrorIs(t, err, apperrors.ErrEmailAlreadyExists)
}

func TestSignupRejectsUnknownStatus(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestUserService(users)

	user := signupUser()
	user.Status = "faculty"

	_, err := svc.Signup(context.Background(), user, "hunter22")
	assert.ErrorIs(t, err, apperrors.ErrValidationFailed)
	users.AssertNotCalled(t, "CreateUser", mock.Anything, mock.Anything)
}

func TestLoginSuccessClearsPassword(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestUserService(users)

	hashed, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	users.On("GetUserByEmail", mock.Anything, "jane@example.edu").Return(&models.User{
		UserID:   "JD12345",
		Email:    "jane@example.edu",
		Password: hashed,
		Role:     models.RoleStudent,
	}, nil).Once()

	result, err := svc.Login(context.Background(), "jane@example.edu", "hunter22")
	require.NoError(t, err)
	assert.Empty(t, result.User.Password)
	assert.NotEmpty(t, result.Token)
	assert.Greater(t, result.ExpiresIn, 0)
}

func TestLoginWrongPassword(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestUserService(users)

	hashed, err := auth.HashPassword("hunter22")
	require.NoError(t, err)

	users.On("GetUserByEmail", mock.Anything, "jane@example.edu").
		Return(&models.User{Email: "jane@example.edu", Password: hashed}, nil).Once()

	_, err = svc.Login(context.Background(), "jane@example.edu", "wrong")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}

func TestLoginUnknownEmail(t *testing.T) {
	users := new(mockUserStore)
	svc := newTestUserService(users)

	users.On("GetUserByEmail", mock.Anything, "nobody@example.edu").
		Return(nil, repositories.ErrNotFound).Once()

	// Unknown email and wrong password are indistinguishable to the caller.
	_, err := svc.Login(context.Background(), "nobody@example.edu", "hunter22")
	assert.ErrorIs(t, err, apperrors.ErrInvalidCredentials)
}
