package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"scripthaven/app/dto"
	"scripthaven/app/httpx"
	"scripthaven/app/models"
	"scripthaven/app/services"
	"scripthaven/global"
)

type AdminController struct{ Users *services.UserService }

func NewAdminController(users *services.UserService) *AdminController {
	return &AdminController{Users: users}
}

func (c *AdminController) CreateUser(w http.ResponseWriter, r *http.Request) {
	var req dto.AdminCreateUserRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.Username == "" || req.Password == "" {
		httpx.Error(w, http.StatusBadRequest, "username and password are required")
		return
	}
	role := models.RoleUser
	if req.IsAdmin {
		role = models.RoleAdmin
	}
	u, err := c.Users.Register(req.Username, req.Password, req.Email, role)
	if err != nil {
		if errors.Is(err, services.ErrUsernameTaken) || errors.Is(err, services.ErrPasswordTooShort) {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		global.Logger.Error().Err(err).Msg("admin create user")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusCreated, dto.AdminCreateUserResponse{Message: "user created", User: u})
}

func (c *AdminController) ListUsers(w http.ResponseWriter, r *http.Request) {
	users, err := c.Users.ListUsers()
	if err != nil {
		global.Logger.Error().Err(err).Msg("list users")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, users)
}

func (c *AdminController) SetRole(w http.ResponseWriter, r *http.Request) {
	var req dto.SetRoleRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	role, err := models.ParseRole(req.Role)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	u, err := c.Users.SetRole(req.UserID, role)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			httpx.Error(w, http.StatusNotFound, "user not found")
			return
		}
		global.Logger.Error().Err(err).Msg("set role")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, dto.UserResponse{User: u})
}

func (c *AdminController) SetBan(w http.ResponseWriter, r *http.Request) {
	var req dto.SetBanRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.UserID == 0 {
		httpx.Error(w, http.StatusBadRequest, "userId is required")
		return
	}
	u, err := c.Users.SetBanned(req.UserID, req.Banned)
	if err != nil {
		if errors.Is(err, services.ErrUserNotFound) {
			httpx.Error(w, http.StatusNotFound, "user not found")
			return
		}
		global.Logger.Error().Err(err).Msg("set ban")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, dto.UserResponse{User: u})
}
