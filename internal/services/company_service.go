package services

import (
	"errors"
	"fmt"

	"github.com/shirasagi-dev/shukatsu-tracker/internal/dtos"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"gorm.io/gorm"
)

type CompanyService struct {
	DB *gorm.DB
}

func NewCompanyService(db *gorm.DB) *CompanyService {
	return &CompanyService{DB: db}
}

// ownedCompany resolves a company scoped to its owner. Missing and
// foreign rows are indistinguishable to the caller.
func (s *CompanyService) ownedCompany(userID, companyID uint) (*models.Company, error) {
	var company models.Company
	err := s.DB.Where("id = ? AND user_id = ?", companyID, userID).First(&company).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFoundOrForbidden
	}
	if err != nil {
		return nil, err
	}
	return &company, nil
}

func (s *CompanyService) Create(userID uint, req *dtos.CompanyRequest) (*models.Company, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	company := &models.Company{
		UserID:          userID,
		Name:            req.Name,
		Industry:        req.Industry,
		URL:             req.URL,
		Notes:           req.Notes,
		ApplicationDate: req.ApplicationDate,
		SelectionStage:  req.SelectionStage,
		Result:          req.Result,
	}
	if err := s.DB.Create(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// List returns the caller's companies ordered by name, id as tiebreak.
func (s *CompanyService) List(userID uint) ([]models.Company, error) {
	var companies []models.Company
	err := s.DB.Where("user_id = ?", userID).
		Order("name").Order("id").
		Find(&companies).Error
	if err != nil {
		return nil, err
	}
	return companies, nil
}

// Detail is the /company/:id view: the company plus its four child lists,
// each in its natural order.
func (s *CompanyService) Detail(userID, companyID uint) (*dtos.CompanyDetail, error) {
	company, err := s.ownedCompany(userID, companyID)
	if err != nil {
		return nil, err
	}

	detail := &dtos.CompanyDetail{Company: *company}
	if err := s.DB.Where("company_id = ?", company.ID).
		Order("date_time DESC").Order("id").
		Find(&detail.Interviews).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("company_id = ?", company.ID).
		Order("deadline").Order("id").
		Find(&detail.Tasks).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("company_id = ?", company.ID).
		Order("document_name").Order("id").
		Find(&detail.Documents).Error; err != nil {
		return nil, err
	}
	if err := s.DB.Where("company_id = ?", company.ID).
		Order("title").Order("id").
		Find(&detail.Memos).Error; err != nil {
		return nil, err
	}
	return detail, nil
}

func (s *CompanyService) Update(userID, companyID uint, req *dtos.CompanyRequest) (*models.Company, error) {
	if req.Name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrValidation)
	}
	company, err := s.ownedCompany(userID, companyID)
	if err != nil {
		return nil, err
	}
	company.Name = req.Name
	company.Industry = req.Industry
	company.URL = req.URL
	company.Notes = req.Notes
	company.ApplicationDate = req.ApplicationDate
	company.SelectionStage = req.SelectionStage
	company.Result = req.Result
	if err := s.DB.Save(company).Error; err != nil {
		return nil, err
	}
	return company, nil
}

// Delete removes a company and every interview, task, document and memo
// that references it, in one transaction. A partially applied cascade is
// never observable.
func (s *CompanyService) Delete(userID, companyID uint) error {
	company, err := s.ownedCompany(userID, companyID)
	if err != nil {
		return err
	}
	return s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("company_id = ?", company.ID).Delete(&models.Interview{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", company.ID).Delete(&models.Task{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", company.ID).Delete(&models.Document{}).Error; err != nil {
			return err
		}
		if err := tx.Where("company_id = ?", company.ID).Delete(&models.Memo{}).Error; err != nil {
			return err
		}
		return tx.Delete(company).Error
	})
}
