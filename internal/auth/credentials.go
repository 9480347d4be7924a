package auth

import (
	"errors"
	"fmt"

	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/services"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

// dummyHash is compared against when the username does not exist, so a
// failed login costs the same whether or not the account is real.
var dummyHash = func() []byte {
	h, err := bcrypt.GenerateFromPassword([]byte("timing-equalizer"), bcrypt.DefaultCost)
	if err != nil {
		panic(err)
	}
	return h
}()

type CredentialStore struct {
	DB   *gorm.DB
	Cost int
}

func NewCredentialStore(db *gorm.DB, cost int) *CredentialStore {
	if cost < bcrypt.MinCost || cost > bcrypt.MaxCost {
		cost = bcrypt.DefaultCost
	}
	return &CredentialStore{DB: db, Cost: cost}
}

// Register stores a new user with a bcrypt hash of the password. The
// plaintext is never persisted.
func (s *CredentialStore) Register(username, password string) (uint, error) {
	if username == "" {
		return 0, fmt.Errorf("%w: username is required", services.ErrValidation)
	}
	if password == "" {
		return 0, fmt.Errorf("%w: password is required", services.ErrValidation)
	}

	var existing models.User
	err := s.DB.Where("username = ?", username).First(&existing).Error
	if err == nil {
		return 0, services.ErrDuplicateUsername
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		return 0, err
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.Cost)
	if err != nil {
		return 0, err
	}
	user := models.User{Username: username, PasswordHash: string(hash)}
	if err := s.DB.Create(&user).Error; err != nil {
		// The unique index backstops the pre-check under concurrent registers.
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return 0, services.ErrDuplicateUsername
		}
		return 0, err
	}
	return user.ID, nil
}

// Authenticate verifies a username/password pair and returns the user id.
// Unknown usernames still pay for a bcrypt comparison.
func (s *CredentialStore) Authenticate(username, password string) (uint, error) {
	var user models.User
	err := s.DB.Where("username = ?", username).First(&user).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
		return 0, services.ErrInvalidCredentials
	}
	if err != nil {
		return 0, err
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return 0, services.ErrInvalidCredentials
	}
	return user.ID, nil
}
