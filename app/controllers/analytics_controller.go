package controllers

import (
	"net/http"

	"scripthaven/app/httpx"
	"scripthaven/app/services"
	"scripthaven/global"
)

type AnalyticsController struct{ Analytics *services.AnalyticsService }

func NewAnalyticsController(analytics *services.AnalyticsService) *AnalyticsController {
	return &AnalyticsController{Analytics: analytics}
}

func (c *AnalyticsController) Summary(w http.ResponseWriter, r *http.Request) {
	summary, err := c.Analytics.Summary()
	if err != nil {
		global.Logger.Error().Err(err).Msg("analytics summary")
		httpx.Error(w, http.StatusInternalServerError, "internal error")
		return
	}
	httpx.JSON(w, http.StatusOK, summary)
}
