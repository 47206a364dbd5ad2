package repository

import (
	"errors"

	"doctorsportal/cmd/internal/domain/entity"
	"doctorsportal/cmd/internal/utils"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type DefaultUserRepository struct {
	db *gorm.DB
}

func NewUserRepository(db *gorm.DB) *DefaultUserRepository {
	return &DefaultUserRepository{db: db}
}

func (u *DefaultUserRepository) FindByEmail(email string) (*entity.User, error) {
	var user entity.User
	err := u.db.First(&user, "email = ?", email).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &user, err
}

func (u *DefaultUserRepository) FindAll() ([]*entity.User, error) {
	var users []*entity.User
	err := u.db.Order("created_at asc").Find(&users).Error
	return users, err
}

func (u *DefaultUserRepository) ExistsByEmail(email string) (bool, error) {
	var count int64
	err := u.db.Model(&entity.User{}).
		Where("email = ?", email).
		Count(&count).Error
	return count > 0, err
}

// Upsert keeps signup idempotent: a repeated signup refreshes the name
// but never clears an already granted role.
func (u *DefaultUserRepository) Upsert(user *entity.User) error {
	return u.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "email"}},
		DoUpdates: clause.AssignmentColumns([]string{"name", "updated_at"}),
	}).Create(user).Error
}

// SetRole updates an existing user's role and reports how many rows
// matched, so callers can distinguish an unknown email.
func (u *DefaultUserRepository) SetRole(email, role string) (int64, error) {
	result := u.db.Model(&entity.User{}).
		Where("email = ?", email).
		Updates(map[string]any{
			"role":       role,
			"updated_at": utils.NowUTC(),
		})
	return result.RowsAffected, result.Error
}
