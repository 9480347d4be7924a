package services

import (
	"errors"

	"github.com/shirasagi-dev/shukatsu-tracker/internal/dtos"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"gorm.io/gorm"
)

type InterviewService struct {
	DB        *gorm.DB
	companies *CompanyService
}

func NewInterviewService(db *gorm.DB) *InterviewService {
	return &InterviewService{DB: db, companies: NewCompanyService(db)}
}

func (s *InterviewService) owned(userID, id uint) (*models.Interview, error) {
	var interview models.Interview
	err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&interview).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFoundOrForbidden
	}
	if err != nil {
		return nil, err
	}
	return &interview, nil
}

// Create adds an interview under a company the caller owns. The interview's
// user_id is stamped from the company's owner, so the two always agree.
func (s *InterviewService) Create(userID, companyID uint, req *dtos.InterviewRequest) (*models.Interview, error) {
	company, err := s.companies.ownedCompany(userID, companyID)
	if err != nil {
		return nil, err
	}
	interview := &models.Interview{
		CompanyID: company.ID,
		UserID:    company.UserID,
		DateTime:  req.DateTime,
		Location:  req.Location,
		Person:    req.Person,
		URL:       req.URL,
		Notes:     req.Notes,
	}
	if err := s.DB.Create(interview).Error; err != nil {
		return nil, err
	}
	return interview, nil
}

// List returns the caller's interviews, newest first.
func (s *InterviewService) List(userID uint) ([]models.Interview, error) {
	var interviews []models.Interview
	err := s.DB.Where("user_id = ?", userID).
		Order("date_time DESC").Order("id").
		Find(&interviews).Error
	if err != nil {
		return nil, err
	}
	return interviews, nil
}

func (s *InterviewService) Update(userID, id uint, req *dtos.InterviewRequest) (*models.Interview, error) {
	interview, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}
	interview.DateTime = req.DateTime
	interview.Location = req.Location
	interview.Person = req.Person
	interview.URL = req.URL
	interview.Notes = req.Notes
	if err := s.DB.Save(interview).Error; err != nil {
		return nil, err
	}
	return interview, nil
}

func (s *InterviewService) Delete(userID, id uint) error {
	interview, err := s.owned(userID, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(interview).Error
}
