package models

import "time"

type Script struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	OwnerID      uint      `gorm:"index;not null" json:"ownerId"`
	Title        string    `gorm:"size:191;not null" json:"title"`
	Description  string    `gorm:"size:2048" json:"description,omitempty"`
	Code         string    `gorm:"type:text;not null" json:"code,omitempty"`
	Game         string    `gorm:"size:191;index" json:"game,omitempty"`
	ThumbnailURL string    `gorm:"size:512" json:"thumbnailUrl,omitempty"`
	Views        int64     `gorm:"not null;default:0" json:"views"`
	CreatedAt    time.Time `json:"createdAt"`
	UpdatedAt    time.Time `json:"updatedAt"`
}

// Favorite is a user<->script bookmark. One row per pair.
type Favorite struct {
	ID        uint `gorm:"primaryKey"`
	UserID    uint `gorm:"uniqueIndex:idx_fav_user_script;not null"`
	ScriptID  uint `gorm:"uniqueIndex:idx_fav_user_script;not null"`
	CreatedAt time.Time
}
