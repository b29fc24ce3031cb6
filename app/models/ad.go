package models

import "time"

type AdCampaign struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:191;not null" json:"name"`
	Active    bool      `gorm:"not null;default:true" json:"active"`
	StartsAt  time.Time `json:"startsAt"`
	EndsAt    time.Time `json:"endsAt"`
	CreatedAt time.Time `json:"createdAt"`
	UpdatedAt time.Time `json:"updatedAt"`

	Banners []AdBanner `gorm:"foreignKey:CampaignID;constraint:OnDelete:CASCADE" json:"banners,omitempty"`
}

type AdBanner struct {
	ID          uint      `gorm:"primaryKey" json:"id"`
	CampaignID  uint      `gorm:"index;not null" json:"campaignId"`
	Placement   string    `gorm:"size:64;index;not null" json:"placement"`
	ImageURL    string    `gorm:"size:512;not null" json:"imageUrl"`
	TargetURL   string    `gorm:"size:512;not null" json:"targetUrl"`
	Impressions int64     `gorm:"not null;default:0" json:"impressions"`
	Clicks      int64     `gorm:"not null;default:0" json:"clicks"`
	CreatedAt   time.Time `json:"createdAt"`
}
