package repo

import (
	"scripthaven/app/models"

	"gorm.io/gorm"
)

type AffiliateRepository struct{ db *gorm.DB }

func NewAffiliateRepository(db *gorm.DB) *AffiliateRepository {
	return &AffiliateRepository{db: db}
}

func (r *AffiliateRepository) Create(l *models.AffiliateLink) error { return r.db.Create(l).Error }

func (r *AffiliateRepository) FindByCode(code string) (*models.AffiliateLink, error) {
	var l models.AffiliateLink
	if err := r.db.Where("code = ?", code).First(&l).Error; err != nil {
		return nil, err
	}
	return &l, nil
}

func (r *AffiliateRepository) ListByOwner(ownerID uint) ([]models.AffiliateLink, error) {
	var ls []models.AffiliateLink
	return ls, r.db.Where("owner_id = ?", ownerID).Order("id").Find(&ls).Error
}

func (r *AffiliateRepository) ListAll() ([]models.AffiliateLink, error) {
	var ls []models.AffiliateLink
	return ls, r.db.Order("id").Find(&ls).Error
}

// RecordClick bumps the counter and keeps a per-click row for analytics.
func (r *AffiliateRepository) RecordClick(linkID uint, ip string) error {
	if err := r.db.Model(&models.AffiliateLink{}).Where("id = ?", linkID).
		UpdateColumn("clicks", gorm.Expr("clicks + 1")).Error; err != nil {
		return err
	}
	return r.db.Create(&models.AffiliateClick{LinkID: linkID, IP: ip}).Error
}

func (r *AffiliateRepository) CountClicks() (int64, error) {
	var count int64
	return count, r.db.Model(&models.AffiliateClick{}).Count(&count).Error
}
