package dto

import "time"

type CampaignRequest struct {
	ID       uint      `json:"id,omitempty"`
	Name     string    `json:"name"`
	Active   bool      `json:"active"`
	StartsAt time.Time `json:"startsAt"`
	EndsAt   time.Time `json:"endsAt"`
}

type BannerRequest struct {
	CampaignID uint   `json:"campaignId"`
	Placement  string `json:"placement"`
	ImageURL   string `json:"imageUrl"`
	TargetURL  string `json:"targetUrl"`
}

type ServeAdResponse struct {
	BannerID  uint   `json:"bannerId"`
	ImageURL  string `json:"imageUrl"`
	TargetURL string `json:"targetUrl"`
}

type AdClickResponse struct {
	TargetURL string `json:"targetUrl"`
}
