package user

import (
	"context"
	"testing"

	"scraply/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

type mockUserRepo struct {
	mock.Mock
}

func (m *mockUserRepo) Create(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.User), args.Error(1)
}

func (m *mockUserRepo) List(ctx context.Context) ([]domain.User, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.User), args.Error(1)
}

func (m *mockUserRepo) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	args := m.Called(ctx, email)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	args := m.Called(ctx, username)
	return args.Bool(0), args.Error(1)
}

func (m *mockUserRepo) Update(ctx context.Context, u *domain.User) error {
	args := m.Called(ctx, u)
	return args.Error(0)
}

func (m *mockUserRepo) Delete(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func TestService_Get_Self(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{
		ID:           5,
		Role:         domain.RoleUser,
		PasswordHash: "secret-hash",
	}, nil)

	service := NewService(repo)

	u, err := service.Get(context.Background(), 5, domain.RoleUser, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)
	assert.Empty(t, u.PasswordHash)
}

func TestService_Get_OtherUserForbidden(t *testing.T) {
	repo := new(mockUserRepo)
	service := NewService(repo)

	_, err := service.Get(context.Background(), 6, domain.RoleUser, 5)

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "GetByID", mock.Anything, mock.Anything)
}

func TestService_Get_AdminCanReadAnyone(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("GetByID", mock.Anything, int64(5)).Return(&domain.User{ID: 5}, nil)

	service := NewService(repo)

	u, err := service.Get(context.Background(), 1, domain.RoleAdmin, 5)

	assert.NoError(t, err)
	assert.Equal(t, int64(5), u.ID)
}

func TestService_Delete_OtherUserForbidden(t *testing.T) {
	repo := new(mockUserRepo)
	service := NewService(repo)

	err := service.Delete(context.Background(), 6, domain.RoleUser, 5)

	assert.ErrorIs(t, err, ErrForbidden)
	repo.AssertNotCalled(t, "Delete", mock.Anything, mock.Anything)
}

func TestService_Create_DuplicateEmail(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("ExistsByEmail", mock.Anything, "dupe@example.com").Return(true, nil)

	service := NewService(repo)

	_, err := service.Create(context.Background(), CreateUserRequest{
		Username: "dupe",
		Email:    "dupe@example.com",
		Password: "password123",
	})

	assert.ErrorIs(t, err, ErrEmailExists)
}

func TestService_List_StripsPasswordHashes(t *testing.T) {
	repo := new(mockUserRepo)
	repo.On("List", mock.Anything).Return([]domain.User{
		{ID: 1, PasswordHash: "hash1"},
		{ID: 2, PasswordHash: "hash2"},
	}, nil)

	service := NewService(repo)

	users, err := service.List(context.Background())

	assert.NoError(t, err)
	for _, u := range users {
		assert.Empty(t, u.PasswordHash)
	}
}
