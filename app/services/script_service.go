package services

import (
	"errors"

	"scripthaven/app/models"
	"scripthaven/app/repo"

	"gorm.io/gorm"
)

var (
	ErrScriptNotFound = errors.New("script not found")
	ErrNotOwner       = errors.New("not the script owner")
)

type ScriptService struct{ scripts *repo.ScriptRepository }

func NewScriptService(scripts *repo.ScriptRepository) *ScriptService {
	return &ScriptService{scripts: scripts}
}

func (s *ScriptService) Create(owner *models.User, title, description, code, game, thumbnailURL string) (*models.Script, error) {
	if title == "" || code == "" {
		return nil, errors.New("title and code are required")
	}
	sc := &models.Script{
		OwnerID:      owner.ID,
		Title:        title,
		Description:  description,
		Code:         code,
		Game:         game,
		ThumbnailURL: thumbnailURL,
	}
	if err := s.scripts.Create(sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *ScriptService) List(f repo.ScriptFilter) ([]models.Script, error) {
	return s.scripts.List(f)
}

// Get returns one script and counts the view.
func (s *ScriptService) Get(id uint) (*models.Script, error) {
	sc, err := s.scripts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScriptNotFound
		}
		return nil, err
	}
	if err := s.scripts.IncrementViews(id); err != nil {
		return nil, err
	}
	sc.Views++
	return sc, nil
}

// canManage: owners manage their own scripts, moderators and admins manage any.
func canManage(u *models.User, sc *models.Script) bool {
	return sc.OwnerID == u.ID || u.Role.HasCapability(models.RoleModerator)
}

func (s *ScriptService) Update(u *models.User, id uint, apply func(*models.Script)) (*models.Script, error) {
	sc, err := s.scripts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrScriptNotFound
		}
		return nil, err
	}
	if !canManage(u, sc) {
		return nil, ErrNotOwner
	}
	apply(sc)
	if sc.Title == "" || sc.Code == "" {
		return nil, errors.New("title and code are required")
	}
	if err := s.scripts.Update(sc); err != nil {
		return nil, err
	}
	return sc, nil
}

func (s *ScriptService) Delete(u *models.User, id uint) error {
	sc, err := s.scripts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScriptNotFound
		}
		return err
	}
	if !canManage(u, sc) {
		return ErrNotOwner
	}
	return s.scripts.Delete(id)
}

// Raw returns the script code without counting a view, for token downloads.
func (s *ScriptService) Raw(id uint) (string, error) {
	sc, err := s.scripts.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return "", ErrScriptNotFound
		}
		return "", err
	}
	return sc.Code, nil
}

func (s *ScriptService) Favorite(userID, scriptID uint) error {
	if _, err := s.scripts.FindByID(scriptID); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return ErrScriptNotFound
		}
		return err
	}
	return s.scripts.AddFavorite(userID, scriptID)
}

func (s *ScriptService) Unfavorite(userID, scriptID uint) error {
	return s.scripts.RemoveFavorite(userID, scriptID)
}

func (s *ScriptService) Favorites(userID uint) ([]models.Script, error) {
	return s.scripts.ListFavorites(userID)
}
