package services

import (
	"scripthaven/app/dto"
	"scripthaven/app/repo"
)

type AnalyticsService struct {
	users      *UserService
	scripts    *repo.ScriptRepository
	ads        *repo.AdRepository
	affiliates *repo.AffiliateRepository
}

func NewAnalyticsService(users *UserService, scripts *repo.ScriptRepository, ads *repo.AdRepository, affiliates *repo.AffiliateRepository) *AnalyticsService {
	return &AnalyticsService{users: users, scripts: scripts, ads: ads, affiliates: affiliates}
}

func (s *AnalyticsService) Summary() (*dto.AnalyticsSummary, error) {
	users, err := s.users.CountUsers()
	if err != nil {
		return nil, err
	}
	scripts, err := s.scripts.CountAll()
	if err != nil {
		return nil, err
	}
	favorites, err := s.scripts.CountFavorites()
	if err != nil {
		return nil, err
	}
	affClicks, err := s.affiliates.CountClicks()
	if err != nil {
		return nil, err
	}
	impressions, adClicks, err := s.ads.Totals()
	if err != nil {
		return nil, err
	}
	top, err := s.scripts.TopByViews(10)
	if err != nil {
		return nil, err
	}
	signups, err := s.users.SignupsPerDay(14)
	if err != nil {
		return nil, err
	}
	return &dto.AnalyticsSummary{
		Users:           users,
		Scripts:         scripts,
		Favorites:       favorites,
		AffiliateClicks: affClicks,
		AdImpressions:   impressions,
		AdClicks:        adClicks,
		TopScripts:      top,
		SignupsPerDay:   signups,
	}, nil
}
