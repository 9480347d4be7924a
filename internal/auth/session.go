package auth

import (
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/services"
	"gorm.io/gorm"
)

// CookieName is the session cookie the middleware reads.
const CookieName = "session"

type SessionService struct {
	DB  *gorm.DB
	TTL time.Duration
}

func NewSessionService(db *gorm.DB, ttl time.Duration) *SessionService {
	return &SessionService{DB: db, TTL: ttl}
}

// Create mints an opaque token for the user and persists it.
func (s *SessionService) Create(userID uint) (*models.Session, error) {
	session := &models.Session{
		Token:     uuid.NewString(),
		UserID:    userID,
		ExpiresAt: time.Now().Add(s.TTL),
	}
	if err := s.DB.Create(session).Error; err != nil {
		return nil, err
	}
	return session, nil
}

// Resolve returns the user id behind a live token. An expired session is
// deleted on the spot and reported the same as an unknown token.
func (s *SessionService) Resolve(token string) (uint, error) {
	if token == "" {
		return 0, services.ErrInvalidCredentials
	}
	var session models.Session
	err := s.DB.Where("token = ?", token).First(&session).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, services.ErrInvalidCredentials
	}
	if err != nil {
		return 0, err
	}
	if time.Now().After(session.ExpiresAt) {
		_ = s.DB.Delete(&session).Error
		return 0, services.ErrInvalidCredentials
	}
	return session.UserID, nil
}

// Destroy forgets a token. Unknown tokens are a no-op so logout is
// idempotent.
func (s *SessionService) Destroy(token string) error {
	return s.DB.Where("token = ?", token).Delete(&models.Session{}).Error
}
