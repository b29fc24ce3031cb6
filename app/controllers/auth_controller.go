package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"scripthaven/app/dto"
	"scripthaven/app/httpx"
	"scripthaven/app/middleware"
	"scripthaven/app/services"
	"scripthaven/app/session"
	"scripthaven/global"
)

type AuthController struct {
	Users    *services.UserService
	Sessions *session.Manager
}

func NewAuthController(users *services.UserService, sessions *session.Manager) *AuthController {
	return &AuthController{Users: users, Sessions: sessions}
}

func (c *AuthController) Register(w http.ResponseWriter, r *http.Request) {
	var req dto.RegisterRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	u, err := c.Users.Register(req.Username, req.Password, req.Email, "")
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrPasswordTooShort) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		if req.Username == "" || req.Password == "" {
			httpx.Error(w, http.StatusBadRequest, "username and password are required")
			return
		}
		global.Logger.Error().Err(err).Msg("register")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := c.Sessions.Issue(r.Context(), w, u.ID); err != nil {
		global.Logger.Error().Err(err).Msg("issue session")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusCreated, dto.UserResponse{User: u})
}

func (c *AuthController) Login(w http.ResponseWriter, r *http.Request) {
	var req dto.LoginRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "missing credentials")
		return
	}
	u, err := c.Users.Verify(req.Username, req.Password)
	if err != nil {
		if errors.Is(err, services.ErrInvalidCredentials) {
			httpx.Error(w, http.StatusUnauthorized, services.ErrInvalidCredentials.Error())
			return
		}
		global.Logger.Error().Err(err).Msg("login")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if err := c.Sessions.Issue(r.Context(), w, u.ID); err != nil {
		global.Logger.Error().Err(err).Msg("issue session")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, dto.UserResponse{User: u})
}

// Logout is idempotent: a second call with no live session still returns 200.
func (c *AuthController) Logout(w http.ResponseWriter, r *http.Request) {
	if err := c.Sessions.Clear(r.Context(), w, r); err != nil {
		global.Logger.Error().Err(err).Msg("logout")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.WriteHeader(http.StatusOK)
}

func (c *AuthController) CurrentUser(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	httpx.JSON(w, http.StatusOK, dto.UserResponse{User: u})
}

func (c *AuthController) UpdateProfile(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	var req dto.ProfileUpdateRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	updated, err := c.Users.UpdateProfile(u.ID, services.ProfileUpdate{
		Bio:             req.Bio,
		Email:           req.Email,
		AvatarURL:       req.AvatarURL,
		DiscordUsername: req.DiscordUsername,
	})
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			httpx.Error(w, http.StatusNotFound, "user not found")
			return
		}
		global.Logger.Error().Err(err).Msg("update profile")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, dto.UserResponse{User: updated})
}

func (c *AuthController) ChangePassword(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	var req dto.ChangePasswordRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.CurrentPassword == "" || req.NewPassword == "" {
		httpx.Error(w, http.StatusBadRequest, "currentPassword and newPassword are required")
		return
	}
	if len(req.NewPassword) < services.MinPasswordLen {
		httpx.Error(w, http.StatusBadRequest, services.ErrPasswordTooShort.Error())
		return
	}
	ok, err := c.Users.VerifyByID(u.ID, req.CurrentPassword)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			httpx.Error(w, http.StatusNotFound, "user not found")
			return
		}
		global.Logger.Error().Err(err).Msg("change password")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	if !ok {
		// The stored hash is untouched on a failed verification.
		httpx.Error(w, http.StatusBadRequest, "current password is incorrect")
		return
	}
	if err := c.Users.ChangePassword(u.ID, req.NewPassword); err != nil {
		global.Logger.Error().Err(err).Msg("change password")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, dto.MessageResponse{Message: "password updated"})
}
