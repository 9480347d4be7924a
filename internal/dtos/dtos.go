package dtos

import "github.com/shirasagi-dev/shukatsu-tracker/internal/models"

type RegisterRequest struct {
	Username        string `json:"username" binding:"required"`
	Password        string `json:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" binding:"required"`
}

type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// CompanyRequest is shared by create and edit. Name is the only required
// field; everything else is free text, dates included.
type CompanyRequest struct {
	Name            string `json:"name" binding:"required"`
	Industry        string `json:"industry"`
	URL             string `json:"url"`
	Notes           string `json:"notes"`
	ApplicationDate string `json:"application_date"`
	SelectionStage  string `json:"selection_stage"`
	Result          string `json:"result"`
}

type InterviewRequest struct {
	DateTime string `json:"date_time"`
	Location string `json:"location"`
	Person   string `json:"person"`
	URL      string `json:"url"`
	Notes    string `json:"notes"`
}

type TaskRequest struct {
	Content  string `json:"content" binding:"required"`
	Deadline string `json:"deadline"`
}

type DocumentRequest struct {
	DocumentName   string `json:"document_name" binding:"required"`
	SubmissionDate string `json:"submission_date"`
	Status         string `json:"status"`
	FilePath       string `json:"file_path"`
}

type MemoRequest struct {
	Title   string `json:"title" binding:"required"`
	Content string `json:"content" binding:"required"`
}

// CompanyDetail is the /company/:id response: the company with its child
// records, each list in its display order.
type CompanyDetail struct {
	Company    models.Company     `json:"company"`
	Interviews []models.Interview `json:"interviews"`
	Tasks      []models.Task      `json:"tasks"`
	Documents  []models.Document  `json:"documents"`
	Memos      []models.Memo      `json:"memos"`
}
