package services

import (
	"errors"
	"strings"

	"scripthaven/app/models"
	"scripthaven/app/repo"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

var ErrAffiliateNotFound = errors.New("affiliate link not found")

type AffiliateService struct{ links *repo.AffiliateRepository }

func NewAffiliateService(links *repo.AffiliateRepository) *AffiliateService {
	return &AffiliateService{links: links}
}

func (s *AffiliateService) Create(ownerID uint, targetURL string) (*models.AffiliateLink, error) {
	if targetURL == "" {
		return nil, errors.New("targetUrl is required")
	}
	// Short uuid-derived code; uniqueness is backed by the DB index.
	code := strings.ReplaceAll(uuid.NewString(), "-", "")[:12]
	l := &models.AffiliateLink{OwnerID: ownerID, Code: code, TargetURL: targetURL}
	if err := s.links.Create(l); err != nil {
		return nil, err
	}
	return l, nil
}

func (s *AffiliateService) ListOwn(ownerID uint) ([]models.AffiliateLink, error) {
	return s.links.ListByOwner(ownerID)
}

func (s *AffiliateService) ListAll() ([]models.AffiliateLink, error) {
	return s.links.ListAll()
}

// Follow resolves a code to its target and records the click.
func (s *AffiliateService) Follow(code, ip string) (string, error) {
	l, err := s.links.FindByCode(code)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrAffiliateNotFound
		}
		return "", err
	}
	if err := s.links.RecordClick(l.ID, ip); err != nil {
		return "", err
	}
	return l.TargetURL, nil
}
