package services

import (
	"errors"
	"fmt"

	"github.com/shirasagi-dev/shukatsu-tracker/internal/dtos"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"gorm.io/gorm"
)

type DocumentService struct {
	DB        *gorm.DB
	companies *CompanyService
}

func NewDocumentService(db *gorm.DB) *DocumentService {
	return &DocumentService{DB: db, companies: NewCompanyService(db)}
}

func (s *DocumentService) owned(userID, id uint) (*models.Document, error) {
	var doc models.Document
	err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&doc).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFoundOrForbidden
	}
	if err != nil {
		return nil, err
	}
	return &doc, nil
}

func (s *DocumentService) Create(userID uint, companyID *uint, req *dtos.DocumentRequest) (*models.Document, error) {
	if req.DocumentName == "" {
		return nil, fmt.Errorf("%w: document_name is required", ErrValidation)
	}
	if companyID != nil {
		if _, err := s.companies.ownedCompany(userID, *companyID); err != nil {
			return nil, err
		}
	}
	doc := &models.Document{
		UserID:         userID,
		CompanyID:      companyID,
		DocumentName:   req.DocumentName,
		SubmissionDate: req.SubmissionDate,
		Status:         req.Status,
		FilePath:       req.FilePath,
	}
	if err := s.DB.Create(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

// List returns the caller's documents ordered by name, id as tiebreak.
func (s *DocumentService) List(userID uint) ([]models.Document, error) {
	var docs []models.Document
	err := s.DB.Where("user_id = ?", userID).
		Order("document_name").Order("id").
		Find(&docs).Error
	if err != nil {
		return nil, err
	}
	return docs, nil
}

func (s *DocumentService) Update(userID, id uint, req *dtos.DocumentRequest) (*models.Document, error) {
	if req.DocumentName == "" {
		return nil, fmt.Errorf("%w: document_name is required", ErrValidation)
	}
	doc, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}
	doc.DocumentName = req.DocumentName
	doc.SubmissionDate = req.SubmissionDate
	doc.Status = req.Status
	doc.FilePath = req.FilePath
	if err := s.DB.Save(doc).Error; err != nil {
		return nil, err
	}
	return doc, nil
}

func (s *DocumentService) Delete(userID, id uint) error {
	doc, err := s.owned(userID, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(doc).Error
}
