package services

import (
	"errors"
	"fmt"
	"time"

	"scripthaven/app/models"
	"scripthaven/app/repo"

	"gorm.io/gorm"
)

const MinPasswordLen = 6

var (
	// ErrInvalidCredentials covers both unknown username and wrong password,
	// so a login response never reveals which one it was.
	ErrInvalidCredentials = errors.New("invalid username or password")
	ErrUsernameTaken      = errors.New("username already exists")
	ErrPasswordTooShort   = fmt.Errorf("password must be at least %d characters", MinPasswordLen)
	ErrUserNotFound       = errors.New("user not found")
)

type UserService struct{ users *repo.UserRepository }

func NewUserService(users *repo.UserRepository) *UserService { return &UserService{users: users} }

func (s *UserService) EnsureAdmin(username, password string) error {
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	_, err = s.Register(username, password, "", models.RoleAdmin)
	return err
}

// Register creates a user with a freshly hashed password. Username collisions
// are reported as ErrUsernameTaken; registration deliberately reveals
// existence, login does not.
func (s *UserService) Register(username, password, email string, role models.Role) (*models.User, error) {
	if username == "" || password == "" {
		return nil, errors.New("username and password are required")
	}
	if len(password) < MinPasswordLen {
		return nil, ErrPasswordTooShort
	}
	count, err := s.users.CountByUsername(username)
	if err != nil {
		return nil, err
	}
	if count > 0 {
		return nil, ErrUsernameTaken
	}
	hash, err := HashPassword(password)
	if err != nil {
		return nil, err
	}
	if role == "" {
		role = models.RoleUser
	}
	u := &models.User{Username: username, PasswordHash: hash, Email: email, Role: role}
	if err := s.users.Create(u); err != nil {
		return nil, err
	}
	return u.Redacted(), nil
}

// Verify checks a username/password pair. Unknown usernames, wrong passwords
// and banned accounts all come back as ErrInvalidCredentials.
func (s *UserService) Verify(username, password string) (*models.User, error) {
	u, err := s.users.FindByUsername(username)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrInvalidCredentials
		}
		return nil, err
	}
	ok, err := comparePassword(u.PasswordHash, password)
	if err != nil {
		return nil, err
	}
	if !ok || u.Banned {
		return nil, ErrInvalidCredentials
	}
	return u.Redacted(), nil
}

// VerifyByID re-checks a password for an already-identified user, used by the
// change-password flow.
func (s *UserService) VerifyByID(id uint, password string) (bool, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return false, ErrUserNotFound
		}
		return false, err
	}
	return comparePassword(u.PasswordHash, password)
}

// ChangePassword re-hashes and overwrites. The handler is responsible for
// having re-verified the current password first; nothing is written on a
// failed verification.
func (s *UserService) ChangePassword(id uint, newPassword string) error {
	if len(newPassword) < MinPasswordLen {
		return ErrPasswordTooShort
	}
	hash, err := HashPassword(newPassword)
	if err != nil {
		return err
	}
	return s.users.UpdatePasswordHash(id, hash)
}

func (s *UserService) GetByID(id uint) (*models.User, error) {
	u, err := s.users.FindByID(id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	return u.Redacted(), nil
}

type ProfileUpdate struct {
	Bio             *string
	Email           *string
	AvatarURL       *string
	DiscordUsername *string
}

func (s *UserService) UpdateProfile(id uint, p ProfileUpdate) (*models.User, error) {
	if _, err := s.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	fields := map[string]any{}
	if p.Bio != nil {
		fields["bio"] = *p.Bio
	}
	if p.Email != nil {
		fields["email"] = *p.Email
	}
	if p.AvatarURL != nil {
		fields["avatar_url"] = *p.AvatarURL
	}
	if p.DiscordUsername != nil {
		fields["discord_username"] = *p.DiscordUsername
	}
	if len(fields) > 0 {
		if err := s.users.UpdateProfile(id, fields); err != nil {
			return nil, err
		}
	}
	return s.GetByID(id)
}

func (s *UserService) ListUsers() ([]models.User, error) {
	users, err := s.users.ListAll()
	if err != nil {
		return nil, err
	}
	for i := range users {
		users[i].PasswordHash = ""
	}
	return users, nil
}

func (s *UserService) SetRole(id uint, role models.Role) (*models.User, error) {
	if _, err := s.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.users.UpdateRole(id, role); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *UserService) SetBanned(id uint, banned bool) (*models.User, error) {
	if _, err := s.users.FindByID(id); err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, err
	}
	if err := s.users.SetBanned(id, banned); err != nil {
		return nil, err
	}
	return s.GetByID(id)
}

func (s *UserService) CountUsers() (int64, error) { return s.users.CountAll() }

// SignupsPerDay buckets recent registrations by calendar day (UTC).
func (s *UserService) SignupsPerDay(days int) (map[string]int64, error) {
	cutoff := time.Now().UTC().AddDate(0, 0, -days)
	users, err := s.users.CreatedSince(cutoff)
	if err != nil {
		return nil, err
	}
	buckets := make(map[string]int64)
	for _, u := range users {
		buckets[u.CreatedAt.UTC().Format("2006-01-02")]++
	}
	return buckets, nil
}
