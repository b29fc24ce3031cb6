package controllers

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"scripthaven/app/dto"
	"scripthaven/app/httpx"
	jwtutil "scripthaven/app/jwt"
	"scripthaven/app/middleware"
	"scripthaven/app/models"
	"scripthaven/app/repo"
	"scripthaven/app/services"
	"scripthaven/global"
)

type ScriptController struct {
	Scripts *services.ScriptService
	Signer  *jwtutil.Signer
}

func NewScriptController(scripts *services.ScriptService, signer *jwtutil.Signer) *ScriptController {
	return &ScriptController{Scripts: scripts, Signer: signer}
}

func parseID(r *http.Request, key string) (uint, bool) {
	raw := r.URL.Query().Get(key)
	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, false
	}
	return uint(id), true
}

func (c *ScriptController) List(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()
	limit, _ := strconv.Atoi(q.Get("limit"))
	offset, _ := strconv.Atoi(q.Get("offset"))
	scripts, err := c.Scripts.List(repo.ScriptFilter{
		Game:   q.Get("game"),
		Search: q.Get("search"),
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		global.Logger.Error().Err(err).Msg("list scripts")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, scripts)
}

func (c *ScriptController) Get(w http.ResponseWriter, r *http.Request) {
	id, ok := parseID(r, "id")
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "id is required")
		return
	}
	sc, err := c.Scripts.Get(id)
	if err != nil {
		if errors.Is(err, services.ErrScriptNotFound) {
			httpx.Error(w, http.StatusNotFound, "script not found")
			return
		}
		global.Logger.Error().Err(err).Msg("get script")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, sc)
}

func (c *ScriptController) Create(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	var req dto.CreateScriptRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	sc, err := c.Scripts.Create(u, req.Title, req.Description, req.Code, req.Game, req.ThumbnailURL)
	if err != nil {
		httpx.Error(w, http.StatusBadRequest, err.Error())
		return
	}
	httpx.JSON(w, http.StatusCreated, sc)
}

func (c *ScriptController) Update(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	var req dto.UpdateScriptRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ID == 0 {
		httpx.Error(w, http.StatusBadRequest, "id is required")
		return
	}
	sc, err := c.Scripts.Update(u, req.ID, func(sc *models.Script) {
		if req.Title != nil {
			sc.Title = *req.Title
		}
		if req.Description != nil {
			sc.Description = *req.Description
		}
		if req.Code != nil {
			sc.Code = *req.Code
		}
		if req.Game != nil {
			sc.Game = *req.Game
		}
		if req.ThumbnailURL != nil {
			sc.ThumbnailURL = *req.ThumbnailURL
		}
	})
	if err != nil {
		switch {
		case errors.Is(err, services.ErrScriptNotFound):
			httpx.Error(w, http.StatusNotFound, "script not found")
		case errors.Is(err, services.ErrNotOwner):
			httpx.Error(w, http.StatusForbidden, "forbidden")
		default:
			httpx.Error(w, http.StatusBadRequest, err.Error())
		}
		return
	}
	httpx.JSON(w, http.StatusOK, sc)
}

func (c *ScriptController) Delete(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	id, ok := parseID(r, "id")
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "id is required")
		return
	}
	if err := c.Scripts.Delete(u, id); err != nil {
		switch {
		case errors.Is(err, services.ErrScriptNotFound):
			httpx.Error(w, http.StatusNotFound, "script not found")
		case errors.Is(err, services.ErrNotOwner):
			httpx.Error(w, http.StatusForbidden, "forbidden")
		default:
			global.Logger.Error().Err(err).Msg("delete script")
			httpx.Error(w, http.StatusInternalServerError, "internal error")
		}
		return
	}
	httpx.JSON(w, http.StatusOK, dto.MessageResponse{Message: "script deleted"})
}

func (c *ScriptController) Favorite(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	var req dto.FavoriteRequest
	_ = json.NewDecoder(r.Body).Decode(&req)
	if req.ScriptID == 0 {
		httpx.Error(w, http.StatusBadRequest, "scriptId is required")
		return
	}
	var err error
	switch r.Method {
	case http.MethodDelete:
		err = c.Scripts.Unfavorite(u.ID, req.ScriptID)
	case http.MethodPost:
		err = c.Scripts.Favorite(u.ID, req.ScriptID)
	default:
		httpx.Error(w, http.StatusMethodNotAllowed, "method not allowed")
		return
	}
	if err != nil {
		if errors.Is(err, services.ErrScriptNotFound) {
			httpx.Error(w, http.StatusNotFound, "script not found")
			return
		}
		global.Logger.Error().Err(err).Msg("favorite")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, dto.MessageResponse{Message: "ok"})
}

func (c *ScriptController) Favorites(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	scripts, err := c.Scripts.Favorites(u.ID)
	if err != nil {
		global.Logger.Error().Err(err).Msg("list favorites")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, scripts)
}

// DownloadToken mints a short-lived signed token for fetching raw code.
func (c *ScriptController) DownloadToken(w http.ResponseWriter, r *http.Request) {
	u := middleware.GetUser(r.Context())
	id, ok := parseID(r, "id")
	if !ok {
		httpx.Error(w, http.StatusBadRequest, "id is required")
		return
	}
	if _, err := c.Scripts.Raw(id); err != nil {
		if errors.Is(err, services.ErrScriptNotFound) {
			httpx.Error(w, http.StatusNotFound, "script not found")
			return
		}
		global.Logger.Error().Err(err).Msg("download token")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	token, err := c.Signer.Sign(id, u.ID)
	if err != nil {
		global.Logger.Error().Err(err).Msg("sign download token")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, dto.DownloadTokenResponse{Token: token})
}

// Raw serves script code for a valid download token. No session required;
// the token itself is the authorization.
func (c *ScriptController) Raw(w http.ResponseWriter, r *http.Request) {
	tokenStr := r.URL.Query().Get("token")
	if tokenStr == "" {
		httpx.Error(w, http.StatusBadRequest, "token is required")
		return
	}
	claims, err := c.Signer.Parse(tokenStr)
	if err != nil {
		httpx.Error(w, http.StatusUnauthorized, "invalid or expired token")
		return
	}
	code, err := c.Scripts.Raw(claims.ScriptID)
	if err != nil {
		if errors.Is(err, services.ErrScriptNotFound) {
			httpx.Error(w, http.StatusNotFound, "script not found")
			return
		}
		global.Logger.Error().Err(err).Msg("raw script")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	_, _ = w.Write([]byte(code))
}
