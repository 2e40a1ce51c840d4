package repositories

import (
	"context"
	"errors"
	"time"

	"gorm.io/gorm"

	"github.com/estospaces/realtysvc/domain"
)

// UserRepositoryImpl implements domain.UserRepository using GORM
type UserRepositoryImpl struct {
	db *gorm.DB
}

// DBUser represents the database model for User (with GORM tags)
type DBUser struct {
	ID            uint      `gorm:"primaryKey"`
	Email         string    `gorm:"uniqueIndex;size:255"`
	Phone         string    `gorm:"uniqueIndex;size:32"`
	PasswordHash  string    `gorm:"column:password"`
	FullName      string    `gorm:"size:255"`
	Country       string    `gorm:"index;size:64"`
	Role          string    `gorm:"index;size:64"`
	Active        bool      `gorm:"index"`
	EmailVerified bool      `gorm:"index"`
	CreatedAt     time.Time `gorm:"index"`
	UpdatedAt     time.Time
}

// TableName returns the table name for GORM
func (DBUser) TableName() string {
	return "users"
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *gorm.DB) domain.UserRepository {
	return &UserRepositoryImpl{db: db}
}

// Create implements domain.UserRepository. A duplicate-key violation
// is translated to the taken-field sentinel so the unique indexes act
// as the final guard behind the racy pre-insert checks.
func (r *UserRepositoryImpl) Create(ctx context.Context, user *domain.User) error {
	dbUser := r.domainToDB(user)
	if err := r.db.WithContext(ctx).Create(dbUser).Error; err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return r.classifyDuplicate(ctx, user)
		}
		return err
	}
	user.ID = dbUser.ID
	user.CreatedAt = dbUser.CreatedAt
	user.UpdatedAt = dbUser.UpdatedAt
	return nil
}

func (r *UserRepositoryImpl) classifyDuplicate(ctx context.Context, user *domain.User) error {
	var count int64
	if err := r.db.WithContext(ctx).Model(&DBUser{}).Where("email = ?", user.Email).Count(&count).Error; err == nil && count > 0 {
		return domain.ErrEmailTaken
	}
	return domain.ErrPhoneTaken
}

// FindByEmail implements domain.UserRepository
func (r *UserRepositoryImpl) FindByEmail(ctx context.Context, email string) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("email = ?", email).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// FindByID implements domain.UserRepository
func (r *UserRepositoryImpl) FindByID(ctx context.Context, id uint) (*domain.User, error) {
	var dbUser DBUser
	err := r.db.WithContext(ctx).Where("id = ?", id).First(&dbUser).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrUserNotFound
		}
		return nil, err
	}
	return r.dbToDomain(&dbUser), nil
}

// PhoneExists implements domain.UserRepository
func (r *UserRepositoryImpl) PhoneExists(ctx context.Context, phone string) (bool, error) {
	var count int64
	err := r.db.WithContext(ctx).Model(&DBUser{}).Where("phone = ?", phone).Count(&count).Error
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// Activate implements domain.UserRepository. Idempotent.
func (r *UserRepositoryImpl) Activate(ctx context.Context, userID uint) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).
		Updates(map[string]interface{}{"active": true, "email_verified": true}).Error
}

// UpdatePassword implements domain.UserRepository
func (r *UserRepositoryImpl) UpdatePassword(ctx context.Context, userID uint, passwordHash string) error {
	return r.db.WithContext(ctx).Model(&DBUser{}).Where("id = ?", userID).
		Update("password", passwordHash).Error
}

func (r *UserRepositoryImpl) domainToDB(user *domain.User) *DBUser {
	return &DBUser{
		ID:            user.ID,
		Email:         user.Email,
		Phone:         user.Phone,
		PasswordHash:  user.PasswordHash,
		FullName:      user.FullName,
		Country:       user.Country,
		Role:          user.Role,
		Active:        user.Active,
		EmailVerified: user.EmailVerified,
	}
}

func (r *UserRepositoryImpl) dbToDomain(dbUser *DBUser) *domain.User {
	return &domain.User{
		ID:            dbUser.ID,
		Email:         dbUser.Email,
		Phone:         dbUser.Phone,
		PasswordHash:  dbUser.PasswordHash,
		FullName:      dbUser.FullName,
		Country:       dbUser.Country,
		Role:          dbUser.Role,
		Active:        dbUser.Active,
		EmailVerified: dbUser.EmailVerified,
		CreatedAt:     dbUser.CreatedAt,
		UpdatedAt:     dbUser.UpdatedAt,
	}
}
