package services

import (
	"errors"
	"math/rand"
	"time"

	"scripthaven/app/models"
	"scripthaven/app/repo"

	"gorm.io/gorm"
)

var (
	ErrCampaignNotFound = errors.New("campaign not found")
	ErrBannerNotFound   = errors.New("banner not found")
	ErrNoBanner         = errors.New("no active banner for placement")
)

type AdService struct{ ads *repo.AdRepository }

func NewAdService(ads *repo.AdRepository) *AdService { return &AdService{ads: ads} }

func (s *AdService) CreateCampaign(name string, active bool, startsAt, endsAt time.Time) (*models.AdCampaign, error) {
	if name == "" {
		return nil, errors.New("campaign name is required")
	}
	if !endsAt.After(startsAt) {
		return nil, errors.New("campaign end must be after start")
	}
	c := &models.AdCampaign{Name: name, Active: active, StartsAt: startsAt, EndsAt: endsAt}
	if err := s.ads.CreateCampaign(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *AdService) ListCampaigns() ([]models.AdCampaign, error) { return s.ads.ListCampaigns() }

func (s *AdService) UpdateCampaign(id uint, name string, active bool, startsAt, endsAt time.Time) (*models.AdCampaign, error) {
	c, err := s.ads.FindCampaign(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	if name != "" {
		c.Name = name
	}
	c.Active = active
	if !startsAt.IsZero() {
		c.StartsAt = startsAt
	}
	if !endsAt.IsZero() {
		c.EndsAt = endsAt
	}
	if err := s.ads.UpdateCampaign(c); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *AdService) DeleteCampaign(id uint) error {
	if _, err := s.ads.FindCampaign(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrCampaignNotFound
		}
		return err
	}
	return s.ads.DeleteCampaign(id)
}

func (s *AdService) CreateBanner(campaignID uint, placement, imageURL, targetURL string) (*models.AdBanner, error) {
	if placement == "" || imageURL == "" || targetURL == "" {
		return nil, errors.New("placement, imageUrl and targetUrl are required")
	}
	if _, err := s.ads.FindCampaign(campaignID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrCampaignNotFound
		}
		return nil, err
	}
	b := &models.AdBanner{CampaignID: campaignID, Placement: placement, ImageURL: imageURL, TargetURL: targetURL}
	if err := s.ads.CreateBanner(b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *AdService) DeleteBanner(id uint) error {
	if _, err := s.ads.FindBanner(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrBannerNotFound
		}
		return err
	}
	return s.ads.DeleteBanner(id)
}

// Serve picks a random banner active for the placement right now and counts
// the impression.
func (s *AdService) Serve(placement string) (*models.AdBanner, error) {
	banners, err := s.ads.ActiveBanners(placement, time.Now())
	if err != nil {
		return nil, err
	}
	if len(banners) == 0 {
		return nil, ErrNoBanner
	}
	b := banners[rand.Intn(len(banners))]
	if err := s.ads.IncrementImpressions(b.ID); err != nil {
		return nil, err
	}
	return &b, nil
}

// Click counts a banner click and returns the target URL.
func (s *AdService) Click(id uint) (string, error) {
	b, err := s.ads.FindBanner(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrBannerNotFound
		}
		return "", err
	}
	if err := s.ads.IncrementClicks(id); err != nil {
		return "", err
	}
	return b.TargetURL, nil
}
