package services

import (
	"fmt"

	"github.com/shirasagi-dev/shukatsu-tracker/internal/models"
	"gorm.io/gorm"
)

// taskTitleRunes is how much of a task's content makes it onto a calendar
// label before it is cut off.
const taskTitleRunes = 10

// Event is a read-only projection of a dated field onto the dashboard
// calendar. Date is carried verbatim from the source record; only the
// interview category may include a time-of-day component.
type Event struct {
	Title    string `json:"title"`
	Date     string `json:"date"`
	Link     string `json:"link"`
	Category string `json:"category"`
}

type CalendarService struct {
	DB *gorm.DB
}

func NewCalendarService(db *gorm.DB) *CalendarService {
	return &CalendarService{DB: db}
}

// Aggregate scans the caller's companies, interviews, incomplete tasks and
// documents, in that order, and emits one event per record with a
// non-empty date. Records without a date are skipped, not errors. No sort
// beyond the scan order; the client sorts chronologically if it wants to.
func (s *CalendarService) Aggregate(userID uint) ([]Event, error) {
	events := []Event{}

	var companies []models.Company
	if err := s.DB.Where("user_id = ?", userID).Order("id").Find(&companies).Error; err != nil {
		return nil, err
	}
	companyNames := make(map[uint]string, len(companies))
	for _, c := range companies {
		companyNames[c.ID] = c.Name
		if c.ApplicationDate == "" {
			continue
		}
		events = append(events, Event{
			Title:    c.Name,
			Date:     c.ApplicationDate,
			Link:     fmt.Sprintf("/company/%d", c.ID),
			Category: "application",
		})
	}

	var interviews []models.Interview
	if err := s.DB.Where("user_id = ?", userID).Order("id").Find(&interviews).Error; err != nil {
		return nil, err
	}
	for _, iv := range interviews {
		if iv.DateTime == "" {
			continue
		}
		events = append(events, Event{
			Title:    companyNames[iv.CompanyID],
			Date:     iv.DateTime,
			Link:     fmt.Sprintf("/company/%d", iv.CompanyID),
			Category: "interview",
		})
	}

	var tasks []models.Task
	err := s.DB.Where("user_id = ? AND status = ?", userID, models.TaskIncomplete).
		Order("id").Find(&tasks).Error
	if err != nil {
		return nil, err
	}
	for _, t := range tasks {
		if t.Deadline == "" {
			continue
		}
		link := "/dashboard"
		if t.CompanyID != nil {
			link = fmt.Sprintf("/company/%d", *t.CompanyID)
		}
		events = append(events, Event{
			Title:    truncateRunes(t.Content, taskTitleRunes),
			Date:     t.Deadline,
			Link:     link,
			Category: "task",
		})
	}

	var docs []models.Document
	if err := s.DB.Where("user_id = ?", userID).Order("id").Find(&docs).Error; err != nil {
		return nil, err
	}
	for _, d := range docs {
		if d.SubmissionDate == "" {
			continue
		}
		link := "/dashboard"
		if d.CompanyID != nil {
			link = fmt.Sprintf("/company/%d", *d.CompanyID)
		}
		events = append(events, Event{
			Title:    d.DocumentName,
			Date:     d.SubmissionDate,
			Link:     link,
			Category: "document",
		})
	}

	return events, nil
}

// truncateRunes cuts at rune boundaries; task content is routinely
// multi-byte.
func truncateRunes(s string, n int) string {
	runes := []rune(s)
	if len(runes) <= n {
		return s
	}
	return string(runes[:n])
}
