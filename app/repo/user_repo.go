package repo

import (
	"time"

	"scripthaven/app/models"

	"gorm.io/gorm"
)

type UserRepository struct{ db *gorm.DB }

func NewUserRepository(db *gorm.DB) *UserRepository { return &UserRepository{db: db} }

func (r *UserRepository) CountByUsername(username string) (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Where("username = ?", username).Count(&count).Error
}

func (r *UserRepository) Create(u *models.User) error { return r.db.Create(u).Error }

func (r *UserRepository) FindByUsername(username string) (*models.User, error) {
	var u models.User
	if err := r.db.Where("username = ?", username).First(&u).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) FindByID(id uint) (*models.User, error) {
	var u models.User
	if err := r.db.First(&u, id).Error; err != nil {
		return nil, err
	}
	return &u, nil
}

func (r *UserRepository) ListAll() ([]models.User, error) {
	var users []models.User
	return users, r.db.Order("id").Find(&users).Error
}

func (r *UserRepository) UpdatePasswordHash(id uint, hash string) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("password_hash", hash).Error
}

func (r *UserRepository) UpdateProfile(id uint, fields map[string]any) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Updates(fields).Error
}

func (r *UserRepository) UpdateRole(id uint, role models.Role) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("role", role).Error
}

func (r *UserRepository) SetBanned(id uint, banned bool) error {
	return r.db.Model(&models.User{}).Where("id = ?", id).Update("banned", banned).Error
}

func (r *UserRepository) CountAll() (int64, error) {
	var count int64
	return count, r.db.Model(&models.User{}).Count(&count).Error
}

// CreatedSince returns users registered at or after the cutoff. Grouping by
// day happens in the service layer to stay portable across SQL dialects.
func (r *UserRepository) CreatedSince(cutoff time.Time) ([]models.User, error) {
	var users []models.User
	return users, r.db.Where("created_at >= ?", cutoff).Find(&users).Error
}
