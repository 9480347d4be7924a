package services

import (
	"errors"
	"fmt"

	"github.com/shirasagi-dev/shukatsu-tracker/internal/dtos"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"gorm.io/gorm"
)

type MemoService struct {
	DB        *gorm.DB
	companies *CompanyService
}

func NewMemoService(db *gorm.DB) *MemoService {
	return &MemoService{DB: db, companies: NewCompanyService(db)}
}

func (s *MemoService) owned(userID, id uint) (*models.Memo, error) {
	var memo models.Memo
	err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&memo).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFoundOrForbidden
	}
	if err != nil {
		return nil, err
	}
	return &memo, nil
}

func (s *MemoService) Create(userID uint, companyID *uint, req *dtos.MemoRequest) (*models.Memo, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if companyID != nil {
		if _, err := s.companies.ownedCompany(userID, *companyID); err != nil {
			return nil, err
		}
	}
	memo := &models.Memo{
		UserID:    userID,
		CompanyID: companyID,
		Title:     req.Title,
		Content:   req.Content,
	}
	if err := s.DB.Create(memo).Error; err != nil {
		return nil, err
	}
	return memo, nil
}

// List returns the caller's memos ordered by title, id as tiebreak.
func (s *MemoService) List(userID uint) ([]models.Memo, error) {
	var memos []models.Memo
	err := s.DB.Where("user_id = ?", userID).
		Order("title").Order("id").
		Find(&memos).Error
	if err != nil {
		return nil, err
	}
	return memos, nil
}

func (s *MemoService) Update(userID, id uint, req *dtos.MemoRequest) (*models.Memo, error) {
	if req.Title == "" {
		return nil, fmt.Errorf("%w: title is required", ErrValidation)
	}
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	memo, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}
	memo.Title = req.Title
	memo.Content = req.Content
	if err := s.DB.Save(memo).Error; err != nil {
		return nil, err
	}
	return memo, nil
}

func (s *MemoService) Delete(userID, id uint) error {
	memo, err := s.owned(userID, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(memo).Error
}
