package repo

import (
	"time"

	"scripthaven/app/models"

	"gorm.io/gorm"
)

type AdRepository struct{ db *gorm.DB }

func NewAdRepository(db *gorm.DB) *AdRepository { return &AdRepository{db: db} }

func (r *AdRepository) CreateCampaign(c *models.AdCampaign) error { return r.db.Create(c).Error }

func (r *AdRepository) FindCampaign(id uint) (*models.AdCampaign, error) {
	var c models.AdCampaign
	if err := r.db.Preload("Banners").First(&c, id).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *AdRepository) ListCampaigns() ([]models.AdCampaign, error) {
	var cs []models.AdCampaign
	return cs, r.db.Preload("Banners").Order("id").Find(&cs).Error
}

func (r *AdRepository) UpdateCampaign(c *models.AdCampaign) error { return r.db.Save(c).Error }

func (r *AdRepository) DeleteCampaign(id uint) error {
	if err := r.db.Where("campaign_id = ?", id).Delete(&models.AdBanner{}).Error; err != nil {
		return err
	}
	return r.db.Delete(&models.AdCampaign{}, id).Error
}

func (r *AdRepository) CreateBanner(b *models.AdBanner) error { return r.db.Create(b).Error }

func (r *AdRepository) FindBanner(id uint) (*models.AdBanner, error) {
	var b models.AdBanner
	if err := r.db.First(&b, id).Error; err != nil {
		return nil, err
	}
	return &b, nil
}

func (r *AdRepository) DeleteBanner(id uint) error {
	return r.db.Delete(&models.AdBanner{}, id).Error
}

// ActiveBanners returns banners for a placement whose campaign is active and
// whose date window contains now.
func (r *AdRepository) ActiveBanners(placement string, now time.Time) ([]models.AdBanner, error) {
	var banners []models.AdBanner
	err := r.db.
		Joins("JOIN ad_campaigns ON ad_campaigns.id = ad_banners.campaign_id").
		Where("ad_banners.placement = ?", placement).
		Where("ad_campaigns.active = ?", true).
		Where("ad_campaigns.starts_at <= ? AND ad_campaigns.ends_at >= ?", now, now).
		Find(&banners).Error
	return banners, err
}

func (r *AdRepository) IncrementImpressions(id uint) error {
	return r.db.Model(&models.AdBanner{}).Where("id = ?", id).
		UpdateColumn("impressions", gorm.Expr("impressions + 1")).Error
}

func (r *AdRepository) IncrementClicks(id uint) error {
	return r.db.Model(&models.AdBanner{}).Where("id = ?", id).
		UpdateColumn("clicks", gorm.Expr("clicks + 1")).Error
}

func (r *AdRepository) Totals() (impressions, clicks int64, err error) {
	type sums struct {
		Impressions int64
		Clicks      int64
	}
	var s sums
	err = r.db.Model(&models.AdBanner{}).
		Select("COALESCE(SUM(impressions),0) AS impressions, COALESCE(SUM(clicks),0) AS clicks").
		Scan(&s).Error
	return s.Impressions, s.Clicks, err
}
