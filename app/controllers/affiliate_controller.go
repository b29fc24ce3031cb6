package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"scripthaven/app/dto"
	"scripthaven/app/httpx"
	"scripthaven/app/middleware"
	"scripthaven/app/services"
	"scripthaven/global"
)

type AffiliateController struct{ Links *services.AffiliateService }

func NewAffiliateController(links *services.AffiliateService) *AffiliateController {
	return &AffiliateController{Links: links}
}

// Own lists or creates the caller's affiliate links.
func (c *AffiliateController) Own(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	switch r.Method {
	case http.MethodGet:
		ls, err := c.Links.ListOwn(u.ID)
		if err != nil {
			global.Logger.Error().Err(err).Msg("list affiliates")
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.JSON(w, http.StatusOK, ls)
	case http.MethodPost:
		var req dto.CreateAffiliateRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		l, err := c.Links.Create(u.ID, req.TargetURL)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		httpx.JSON(w, http.StatusCreated, l)
	default:
		httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (c *AffiliateController) ListAll(w http.ResponseWriter, r *http.Request) {
	ls, err := c.Links.ListAll()
	if err != nil {
		global.Logger.Error().Err(err).Msg("list all affiliates")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, ls)
}

// Follow is the public redirect endpoint behind shared affiliate URLs.
func (c *AffiliateController) Follow(w http.ResponseWriter, r *http.Request) {
	code := r.URL.Query().Get("code")
	if code == "" {
		httpx.Error(w, http.StatusBadRequest, "code is required")
		return
	}
	target, err := c.Links.Follow(code, r.RemoteAddr)
	if err != nil {
		if errors.Is(err, services.ErrAffiliateNotFound) {
			httpx.Error(w, http.StatusNotFound, "unknown code")
			return
		}
		global.Logger.Error().Err(err).Msg("affiliate follow")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	http.Redirect(w, r, target, http.StatusFound)
}
