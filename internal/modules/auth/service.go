package auth

import (
	"context"
	"errors"
	"strings"

	"scraply/internal/domain"
	"scraply/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

type jwtService interface {
	GenerateToken(userID int64, role string) (string, error)
}

// Service contains all business logic for registration and login
type Service struct {
	users UserRepositoryInterface
	jwt   jwtService
}

func NewService(users UserRepositoryInterface, jwt jwtService) *Service {
	return &Service{
		users: users,
		jwt:   jwt,
	}
}

func (s *Service) Register(ctx context.Context, req RegisterRequest) (*domain.User, error) {
	// Email checked before username; the error ordering is part of the
	// API contract the frontend relies on.
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

	user := &domain.User{
		Username:     strings.TrimSpace(req.Username),
		FullName:     req.FullName,
		Email:        strings.ToLower(strings.TrimSpace(req.Email)),
		PhoneNumber:  req.PhoneNumber,
		PasswordHash: string(hash),
		Photo:        req.Photo,
		Role:         role,
	}

	if err := s.users.Create(ctx, user); err != nil {
		// The unique indexes close the race between the two pre-checks
		// and a concurrent registration.
		if errors.Is(err, repository.ErrDuplicate) {
			if exists, checkErr := s.users.ExistsByEmail(ctx, user.Email); checkErr == nil && exists {
				return nil, ErrEmailExists
			}
			return nil, ErrUsernameExists
		}
		return nil, err
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) Login(ctx context.Context, req LoginRequest) (*domain.User, string, error) {
	user, err := s.users.GetByEmail(ctx, strings.ToLower(strings.TrimSpace(req.Email)))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrUserNotFound
		}
		return nil, "", err
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, "", ErrInvalidCredentials
	}

	token, err := s.jwt.GenerateToken(user.ID, string(user.Role))
	if err != nil {
		return nil, "", err
	}

	user.PasswordHash = ""
	return user, token, nil
}
