package models

import "time"

type AffiliateLink struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	OwnerID   uint      `gorm:"index;not null" json:"ownerId"`
	Code      string    `gorm:"uniqueIndex;size:64;not null" json:"code"`
	TargetURL string    `gorm:"size:512;not null" json:"targetUrl"`
	Clicks    int64     `gorm:"not null;default:0" json:"clicks"`
	CreatedAt time.Time `json:"createdAt"`
}

type AffiliateClick struct {
	ID        uint   `gorm:"primaryKey"`
	LinkID    uint   `gorm:"index;not null"`
	IP        string `gorm:"size:64"`
	CreatedAt time.Time
}
