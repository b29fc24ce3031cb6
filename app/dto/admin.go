package dto

import "scripthaven/app/models"

type AdminCreateUserRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email,omitempty"`
	IsAdmin  bool   `json:"isAdmin,omitempty"`
}

type AdminCreateUserResponse struct {
	Message string       `json:"message"`
	User    *models.User `json:"user"`
}

type SetRoleRequest struct {
	UserID uint   `json:"userId"`
	Role   string `json:"role"`
}

type SetBanRequest struct {
	UserID uint `json:"userId"`
	Banned bool `json:"banned"`
}
