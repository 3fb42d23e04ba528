package user

import (
	"context"
	"errors"
	"strings"

	"scraply/internal/domain"
	"scraply/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// Service contains the business logic for user management
type Service struct {
	users UserRepositoryInterface
}

func NewService(users UserRepositoryInterface) *Service {
	return &Service{users: users}
}

// canAccess reports whether the actor may read or mutate the target user.
// Only the owning user or an admin qualifies.
func canAccess(actorID int64, actorRole domain.UserRole, targetID int64) bool {
	return actorID == targetID || actorRole == domain.RoleAdmin
}

func (s *Service) Create(ctx context.Context, req CreateUserRequest) (*domain.User, error) {
	if exists, err := s.users.ExistsByEmail(ctx, req.Email); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrEmailExists
	}
	if exists, err := s.users.ExistsByUsername(ctx, req.Username); err != nil {
		return nil, err
	} else if exists {
		return nil, ErrUsernameExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	role := domain.RoleUser
	if req.Role == string(domain.RoleAdmin) {
		role = domain.RoleAdmin
	}

	u := &domain.User{
		Username:     strings.TrimSpace(req.Username),
		FullName:     req.FullName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Photo:        req.Photo,
		Role:         role,
	}

	if err := s.users.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicate) {
			return nil, ErrEmailExists
		}
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) List(ctx context.Context) ([]domain.User, error) {
	users, err := s.users.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *Service) Get(ctx context.Context, actorID int64, actorRole domain.UserRole, id int64) (*domain.User, error) {
	if !canAccess(actorID, actorRole, id) {
		return nil, ErrForbidden
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) Update(ctx context.Context, actorID int64, actorRole domain.UserRole, id int64, req UpdateUserRequest) (*domain.User, error) {
	if !canAccess(actorID, actorRole, id) {
		return nil, ErrForbidden
	}

	u, err := s.users.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	if req.FullName != "" {
		u.FullName = req.FullName
	}
	if req.PhoneNumber != "" {
		u.PhoneNumber = req.PhoneNumber
	}
	if req.Photo != "" {
		u.Photo = req.Photo
	}
	if req.Password != "" {
		hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		u.PasswordHash = string(hash)
	}

	if err := s.users.Update(ctx, u); err != nil {
		return nil, err
	}

	u.PasswordHash = ""
	return u, nil
}

func (s *Service) Delete(ctx context.Context, actorID int64, actorRole domain.UserRole, id int64) error {
	if !canAccess(actorID, actorRole, id) {
		return ErrForbidden
	}

	if err := s.users.Delete(ctx, id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrNotFound
		}
		return err
	}
	return nil
}
