package auth

import (
	"context"
	"testing"

	"scraply/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Mock User Repository implementing the interface
type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	args := m.Called(ctx, email)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

// Mock JWT service
type mockJWTService struct {
	mock.Mock
}

func (m *mockJWTService) GenerateToken(userID int64, role string) (string, error) {
	args := m.Called(userID, role)
	return args.String(0), args.Error(1)
}

func TestService_Register_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("ExistsByEmail", mock.Anything, "test@example.com").Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, "tester").Return(false, nil)
	userRepo.On("Create", mock.Anything, mock.Anything).Return(nil)

	service := NewService(userRepo, jwtSvc)

	user, err := service.Register(context.Background(), RegisterRequest{
		Username: "tester",
		FullName: "Test User",
		Email:    "test@example.com",
		Password: "securepass123",
	})

	assert.NoError(t, err)
	assert.NotNil(t, user)
	assert.Equal(t, domain.RoleUser, user.Role)
	assert.Empty(t, user.PasswordHash)

	userRepo.AssertExpectations(t)
}

func TestService_Register_EmailExists(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	// Email is reported first even if the username is also taken.
	userRepo.On("ExistsByEmail", mock.Anything, "exists@example.com").Return(true, nil)

	service := NewService(userRepo, jwtSvc)

	_, err := service.Register(context.Background(), RegisterRequest{
		Username: "taken",
		Email:    "exists@example.com",
		Password: "securepass123",
	})

	assert.ErrorIs(t, err, ErrEmailExists)
	userRepo.AssertNotCalled(t, "ExistsByUsername", mock.Anything, mock.Anything)
}

func TestService_Register_UsernameExists(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("ExistsByEmail", mock.Anything, "new@example.com").Return(false, nil)
	userRepo.On("ExistsByUsername", mock.Anything, "taken").Return(true, nil)

	service := NewService(userRepo, jwtSvc)

	_, err := service.Register(context.Background(), RegisterRequest{
		Username: "taken",
		Email:    "new@example.com",
		Password: "securepass123",
	})

	assert.ErrorIs(t, err, ErrUsernameExists)
}

func TestService_Login_Success(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("password123"), bcrypt.DefaultCost)
	existingUser := &domain.User{
		ID:           10,
		Email:        "user@example.com",
		PasswordHash: string(hashed),
		Role:         domain.RoleUser,
	}

	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existingUser, nil)
	jwtSvc.On("GenerateToken", int64(10), "user").Return("login-token", nil)

	service := NewService(userRepo, jwtSvc)

	user, token, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "password123",
	})

	assert.NoError(t, err)
	assert.Equal(t, "login-token", token)
	assert.Empty(t, user.PasswordHash)
}

func TestService_Login_UnknownEmail(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	userRepo.On("GetByEmail", mock.Anything, "nobody@example.com").Return(nil, gorm.ErrRecordNotFound)

	service := NewService(userRepo, jwtSvc)

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "nobody@example.com",
		Password: "whatever123",
	})

	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestService_Login_WrongPassword(t *testing.T) {
	userRepo := new(mockUserRepo)
	jwtSvc := new(mockJWTService)

	hashed, _ := bcrypt.GenerateFromPassword([]byte("correct-password"), bcrypt.DefaultCost)
	existingUser := &domain.User{
		ID:           10,
		Email:        "user@example.com",
		PasswordHash: string(hashed),
		Role:         domain.RoleUser,
	}

	userRepo.On("GetByEmail", mock.Anything, "user@example.com").Return(existingUser, nil)

	service := NewService(userRepo, jwtSvc)

	_, _, err := service.Login(context.Background(), LoginRequest{
		Email:    "user@example.com",
		Password: "wrong-password",
	})

	assert.ErrorIs(t, err, ErrInvalidCredentials)
	jwtSvc.AssertNotCalled(t, "GenerateToken", mock.Anything, mock.Anything)
}
