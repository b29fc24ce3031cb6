package dto

import "scripthaven/app/models"

type RegisterRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
}

type LoginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

type UserResponse struct {
	User *models.User `json:"user"`
}

type ProfileUpdateRequest struct {
	Bio             *string `json:"bio,omitempty"`
	Email           *string `json:"email,omitempty"`
	AvatarURL       *string `json:"avatarUrl,omitempty"`
	DiscordUsername *string `json:"discordUsername,omitempty"`
}

type ChangePasswordRequest struct {
	CurrentPassword string `json:"currentPassword"`
	NewPassword     string `json:"newPassword"`
}

type MessageResponse struct {
	Message string `json:"message"`
}
