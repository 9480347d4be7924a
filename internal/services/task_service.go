package services

import (
	"errors"
	"fmt"

	"github.com/shirasagi-dev/shukatsu-tracker/internal/dtos"
	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"gorm.io/gorm"
)

type TaskService struct {
	DB        *gorm.DB
	companies *CompanyService
}

func NewTaskService(db *gorm.DB) *TaskService {
	return &TaskService{DB: db, companies: NewCompanyService(db)}
}

func (s *TaskService) owned(userID, id uint) (*models.Task, error) {
	var task models.Task
	err := s.DB.Where("id = ? AND user_id = ?", id, userID).First(&task).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFoundOrForbidden
	}
	if err != nil {
		return nil, err
	}
	return &task, nil
}

// Create adds a task. companyID may be nil for a free-standing task; when
// set, the company must belong to the caller.
func (s *TaskService) Create(userID uint, companyID *uint, req *dtos.TaskRequest) (*models.Task, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	if companyID != nil {
		if _, err := s.companies.ownedCompany(userID, *companyID); err != nil {
			return nil, err
		}
	}
	task := &models.Task{
		UserID:    userID,
		CompanyID: companyID,
		Content:   req.Content,
		Deadline:  req.Deadline,
		Status:    models.TaskIncomplete,
	}
	if err := s.DB.Create(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// List returns the caller's tasks ordered by deadline, id as tiebreak.
func (s *TaskService) List(userID uint) ([]models.Task, error) {
	var tasks []models.Task
	err := s.DB.Where("user_id = ?", userID).
		Order("deadline").Order("id").
		Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	return tasks, nil
}

func (s *TaskService) Update(userID, id uint, req *dtos.TaskRequest) (*models.Task, error) {
	if req.Content == "" {
		return nil, fmt.Errorf("%w: content is required", ErrValidation)
	}
	task, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}
	task.Content = req.Content
	task.Deadline = req.Deadline
	if err := s.DB.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

// Toggle flips the status between incomplete and complete. An unexpected
// stored value lands on incomplete.
func (s *TaskService) Toggle(userID, id uint) (*models.Task, error) {
	task, err := s.owned(userID, id)
	if err != nil {
		return nil, err
	}
	if task.Status == models.TaskIncomplete {
		task.Status = models.TaskComplete
	} else {
		task.Status = models.TaskIncomplete
	}
	if err := s.DB.Save(task).Error; err != nil {
		return nil, err
	}
	return task, nil
}

func (s *TaskService) Delete(userID, id uint) error {
	task, err := s.owned(userID, id)
	if err != nil {
		return err
	}
	return s.DB.Delete(task).Error
}
