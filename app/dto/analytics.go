package dto

import "scripthaven/app/models"

type AnalyticsSummary struct {
	Users           int64            `json:"users"`
	Scripts         int64            `json:"scripts"`
	Favorites       int64            `json:"favorites"`
	AffiliateClicks int64            `json:"affiliateClicks"`
	AdImpressions   int64            `json:"adImpressions"`
	AdClicks        int64            `json:"adClicks"`
	TopScripts      []models.Script  `json:"topScripts"`
	SignupsPerDay   map[string]int64 `json:"signupsPerDay"`
}
