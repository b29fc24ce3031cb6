package controllers

import (
	"encoding/json"
	"errors"
	"net/http"

	"scripthaven/app/dto"
	"scripthaven/app/httpx"
	"scripthaven/app/services"
	"scripthaven/global"
)

type AdController struct{ Ads *services.AdService }

func NewAdController(ads *services.AdService) *AdController { return &AdController{Ads: ads} }

// Campaigns dispatches admin campaign CRUD on one path.
func (c *AdController) Campaigns(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodGet:
		cs, err := c.Ads.ListCampaigns()
		if err != nil {
			global.Logger.Error().Err(err).Msg("list campaigns")
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.JSON(w, http.StatusOK, cs)
	case http.MethodPost:
		var req dto.CampaignRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		campaign, err := c.Ads.CreateCampaign(req.Name, req.Active, req.StartsAt, req.EndsAt)
		if err != nil {
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		httpx.JSON(w, http.StatusCreated, campaign)
	case http.MethodPut:
		var req dto.CampaignRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		if req.ID == 0 {
			httpx.Error(w, http.StatusBadRequest, "id is required")
			return
		}
		campaign, err := c.Ads.UpdateCampaign(req.ID, req.Name, req.Active, req.StartsAt, req.EndsAt)
		if err != nil {
			if errors.Is(err, services.ErrCampaignNotFound) {
				httpx.Error(w, http.StatusNotFound, "campaign not found")
				return
			}
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		httpx.JSON(w, http.StatusOK, campaign)
	case http.MethodDelete:
		id, ok := parseID(r, "id")
		if !ok {
			httpx.Error(w, http.StatusBadRequest, "id is required")
			return
		}
		if err := c.Ads.DeleteCampaign(id); err != nil {
			if errors.Is(err, services.ErrCampaignNotFound) {
				httpx.Error(w, http.StatusNotFound, "campaign not found")
				return
			}
			global.Logger.Error().Err(err).Msg("delete campaign")
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.JSON(w, http.StatusOK, dto.MessageResponse{Message: "campaign deleted"})
	default:
		httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (c *AdController) Banners(w http.ResponseWriter, r *http.Request) {
	switch r.Method {
	case http.MethodPost:
		var req dto.BannerRequest
		_ = json.NewDecoder(r.Body).Decode(&req)
		b, err := c.Ads.CreateBanner(req.CampaignID, req.Placement, req.ImageURL, req.TargetURL)
		if err != nil {
			if errors.Is(err, services.ErrCampaignNotFound) {
				httpx.Error(w, http.StatusNotFound, "campaign not found")
				return
			}
			httpx.Error(w, http.StatusBadRequest, err.Error())
			return
		}
		httpx.JSON(w, http.StatusCreated, b)
	case http.MethodDelete:
		id, ok := parseID(r, "id")
		if !ok {
			httpx.Error(w, http.StatusBadRequest, "id is required")
			return
		}
		if err := c.Ads.DeleteBanner(id); err != nil {
			if errors.Is(err, services.ErrBannerNotFound) {
				httpx.Error(w, http.StatusNotFound, "banner not found")
				return
			}
			global.Logger.Error().Err(err).Msg("delete banner")
			httpx.Error(w, http.StatusInternalServerError, "internal error")
			return
		}
		httpx.JSON(w, http.StatusOK, dto.MessageResponse{Message: "banner deleted"})
	default:
		httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
	}
}

func (c *AdController) Serve(w http.ResponseWriter, r *http.Request) {
	placement := r.URL.Query().Get("placement")
	if placement == "" {
		httpx.Error(w, http.StatusBadRequest, "placement is required")
		return
	}
	b, err := c.Ads.Serve(placement)
	if err != nil {
		if errors.Is(err, services.ErrNoBanner) {
			httpx.Error(w, http.StatusNotFound, "no banner")
			return
		}
		global.Logger.Error().Err(err).Msg("serve ad")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, dto.ServeAdResponse{BannerID: b.ID, ImageURL: b.ImageURL, TargetURL: b.TargetURL})
}

func (c *AdController) Click(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "id is required")
		return
	}
	target, err := c.Ads.Click(id)
	if err != nil {
		if errors.Is(err, services.ErrBannerNotFound) {
			httpx.Error(w, http.StatusNotFound, "banner not found")
			return
		}
		global.Logger.Error().Err(err).Msg("ad click")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, dto.AdClickResponse{TargetURL: target})
}
