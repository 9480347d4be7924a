package services

import (
	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"gorm.io/gorm"
)

type UserService struct {
	DB *gorm.DB
}

func NewUserService(db *gorm.DB) *UserService {
	return &UserService{DB: db}
}

// Delete removes the user's account and everything it owns: companies and
// their children, free-standing tasks/documents/memos, and any live
// sessions. One transaction, all or nothing.
func (s *UserService) Delete(userID uint) error {
	return s.DB.Transaction(func(tx *gorm.DB) error {
		for _, child := range []interface{}{
			&models.Interview{}, &models.Task{}, &models.Document{}, &models.Memo{},
		} {
			if err := tx.Where("user_id = ?", userID).Delete(child).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Company{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&models.Session{}).Error; err != nil {
			return err
		}
		return tx.Delete(&models.User{}, userID).Error
	})
}
