package repo

import (
	"scripthaven/app/models"

	"gorm.io/gorm"
)

type ScriptRepository struct{ db *gorm.DB }

func NewScriptRepository(db *gorm.DB) *ScriptRepository { return &ScriptRepository{db: db} }

type ScriptFilter struct {
	Game   string
	Search string
	Limit  int
	Offset int
}

func (r *ScriptRepository) Create(s *models.Script) error { return r.db.Create(s).Error }

func (r *ScriptRepository) FindByID(id uint) (*models.Script, error) {
	var s models.Script
	if err := r.db.First(&s, id).Error; err != nil {
		return nil, err
	}
	return &s, nil
}

func (r *ScriptRepository) List(f ScriptFilter) ([]models.Script, error) {
	q := r.db.Model(&models.Script{})
	if f.Game != "" {
		q = q.Where("game = ?", f.Game)
	}
	if f.Search != "" {
		like := "%" + f.Search + "%"
		q = q.Where("title LIKE ? OR description LIKE ?", like, like)
	}
	if f.Limit <= 0 || f.Limit > 100 {
		f.Limit = 50
	}
	var scripts []models.Script
	err := q.Order("created_at DESC").Limit(f.Limit).Offset(f.Offset).
		Omit("code").Find(&scripts).Error
	return scripts, err
}

func (r *ScriptRepository) Update(s *models.Script) error { return r.db.Save(s).Error }

func (r *ScriptRepository) Delete(id uint) error {
	return r.db.Delete(&models.Script{}, id).Error
}

func (r *ScriptRepository) IncrementViews(id uint) error {
	return r.db.Model(&models.Script{}).Where("id = ?", id).
		UpdateColumn("views", gorm.Expr("views + 1")).Error
}

func (r *ScriptRepository) CountAll() (int64, error) {
	var count int64
	return count, r.db.Model(&models.Script{}).Count(&count).Error
}

func (r *ScriptRepository) TopByViews(limit int) ([]models.Script, error) {
	var scripts []models.Script
	err := r.db.Order("views DESC").Limit(limit).Omit("code").Find(&scripts).Error
	return scripts, err
}

// Favorites

func (r *ScriptRepository) AddFavorite(userID, scriptID uint) error {
	var count int64
	if err := r.db.Model(&models.Favorite{}).
		Where("user_id = ? AND script_id = ?", userID, scriptID).
		Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	return r.db.Create(&models.Favorite{UserID: userID, ScriptID: scriptID}).Error
}

func (r *ScriptRepository) RemoveFavorite(userID, scriptID uint) error {
	return r.db.Where("user_id = ? AND script_id = ?", userID, scriptID).
		Delete(&models.Favorite{}).Error
}

func (r *ScriptRepository) ListFavorites(userID uint) ([]models.Script, error) {
	var scripts []models.Script
	err := r.db.
		Joins("JOIN favorites ON favorites.script_id = scripts.id").
		Where("favorites.user_id = ?", userID).
		Order("favorites.created_at DESC").
		Omit("code").
		Find(&scripts).Error
	return scripts, err
}

func (r *ScriptRepository) CountFavorites() (int64, error) {
	var count int64
	return count, r.db.Model(&models.Favorite{}).Count(&count).Error
}
