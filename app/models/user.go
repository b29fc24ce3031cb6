package models

import "time"

type User struct {
	ID              uint      `gorm:"primaryKey" json:"id"`
	Username        string    `gorm:"uniqueIndex;size:191;not null" json:"username"`
	PasswordHash    string    `gorm:"size:255;not null" json:"-"`
	Email           string    `gorm:"size:255" json:"email,omitempty"`
	Role            Role      `gorm:"size:32;not null;default:user" json:"role"`
	Bio             string    `gorm:"size:1024" json:"bio,omitempty"`
	AvatarURL       string    `gorm:"size:512" json:"avatarUrl,omitempty"`
	DiscordUsername string    `gorm:"size:191" json:"discordUsername,omitempty"`
	Banned          bool      `gorm:"not null;default:false" json:"banned"`
	CreatedAt       time.Time `json:"createdAt"`
	UpdatedAt       time.Time `json:"updatedAt"`
}

// Redacted returns a copy safe to hand to callers outside the credential
// store: the stored hash never leaves the service layer.
func (u User) Redacted() *User {
	u.PasswordHash = ""
	return &u
}
