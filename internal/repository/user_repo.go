package repository

import (
	"context"
	"errors"
	"strings"
	"time"

	"scraply/internal/domain"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

// ErrDuplicate is returned when an insert violates a unique index. The
// caller decides which field collided via ExistsByEmail/ExistsByUsername.
var ErrDuplicate = errors.New("duplicate unique field")

type UserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *UserRepository {
	return &UserRepository{db: db}
}

type userModel struct {
	ID           int64     `gorm:"column:id;primaryKey"`
	Username     string    `gorm:"column:username;uniqueIndex"`
	FullName     string    `gorm:"column:full_name"`
	Email        string    `gorm:"column:email;uniqueIndex"`
	PhoneNumber  *string   `gorm:"column:phone_number"`
	PasswordHash string    `gorm:"column:password_hash"`
	Photo        *string   `gorm:"column:photo"`
	Role         string    `gorm:"column:role"`
	CreatedAt    time.Time `gorm:"column:created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at"`
}

func (userModel) TableName() string { return "users" }

func toDomainUser(m userModel) *domain.User {
	var phone, photo string
	if m.PhoneNumber != nil {
		phone = *m.PhoneNumber
	}
	if m.Photo != nil {
		photo = *m.Photo
	}

	return &domain.User{
		ID:           m.ID,
		Username:     m.Username,
		FullName:     m.FullName,
		Email:        m.Email,
		PhoneNumber:  phone,
		PasswordHash: m.PasswordHash,
		Photo:        photo,
		Role:         domain.UserRole(m.Role),
		CreatedAt:    m.CreatedAt,
		UpdatedAt:    m.UpdatedAt,
	}
}

func toUserModel(u *domain.User) userModel {
	email := strings.TrimSpace(strings.ToLower(u.Email))

	var phone, photo *string
	if u.PhoneNumber != "" {
		v := u.PhoneNumber
		phone = &v
	}
	if u.Photo != "" {
		v := u.Photo
		photo = &v
	}

	return userModel{
		ID:           u.ID,
		Username:     u.Username,
		FullName:     u.FullName,
		Email:        email,
		PhoneNumber:  phone,
		PasswordHash: u.PasswordHash,
		Photo:        photo,
		Role:         string(u.Role),
		CreatedAt:    u.CreatedAt,
		UpdatedAt:    u.UpdatedAt,
	}
}

func (r *UserRepository) Create(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Create(&m)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrDuplicate
		}
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).First(&m, id)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*domain.User, error) {
	var m userModel
	tx := r.db.WithContext(ctx).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		First(&m)
	if tx.Error != nil {
		return nil, tx.Error
	}
	return toDomainUser(m), nil
}

func (r *UserRepository) List(ctx context.Context) ([]domain.User, error) {
	var ms []userModel
	tx := r.db.WithContext(ctx).Order("created_at DESC").Find(&ms)
	if tx.Error != nil {
		return nil, tx.Error
	}
	out := make([]domain.User, 0, len(ms))
	for _, m := range ms {
		out = append(out, *toDomainUser(m))
	}
	return out, nil
}

func (r *UserRepository) ExistsByEmail(ctx context.Context, email string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("LOWER(email) = ?", strings.ToLower(strings.TrimSpace(email))).
		Count(&count)
	return count > 0, tx.Error
}

func (r *UserRepository) ExistsByUsername(ctx context.Context, username string) (bool, error) {
	var count int64
	tx := r.db.WithContext(ctx).Model(&userModel{}).
		Where("username = ?", strings.TrimSpace(username)).
		Count(&count)
	return count > 0, tx.Error
}

func (r *UserRepository) Update(ctx context.Context, u *domain.User) error {
	m := toUserModel(u)
	tx := r.db.WithContext(ctx).Save(&m)
	if tx.Error != nil {
		if isUniqueViolation(tx.Error) {
			return ErrDuplicate
		}
		return tx.Error
	}
	*u = *toDomainUser(m)
	return nil
}

func (r *UserRepository) Delete(ctx context.Context, id int64) error {
	tx := r.db.WithContext(ctx).Delete(&userModel{}, id)
	if tx.Error != nil {
		return tx.Error
	}
	if tx.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

// isUniqueViolation reports whether err is a unique-index violation on
// either backend (PostgreSQL 23505, SQLite "UNIQUE constraint failed").
func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == "23505"
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return true
	}
	return strings.Contains(err.Error(), "UNIQUE constraint failed")
}
