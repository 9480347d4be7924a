package models

import (
	"time"
)

// Task status values. The column stays free text in the schema but the
// application only ever writes these two.
const (
	TaskIncomplete = "incomplete"
	TaskComplete   = "complete"
)

type User struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	Username     string `gorm:"uniqueIndex;not null" json:"username"`
	PasswordHash string `gorm:"not null" json:"-"`

	// 'omitempty' prevents cycles when serializing a User with children.
	Companies []Company `gorm:"constraint:OnDelete:CASCADE" json:"companies,omitempty"`
	Sessions  []Session `gorm:"constraint:OnDelete:CASCADE" json:"-"`
}

type Company struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	// Foreign Key: the owning user. Every company query is scoped by it.
	UserID uint `gorm:"not null;index" json:"user_id"`

	Name            string `gorm:"not null" json:"name"`
	Industry        string `json:"industry"`
	URL             string `json:"url"`
	Notes           string `gorm:"type:text" json:"notes"`
	ApplicationDate string `json:"application_date"`
	SelectionStage  string `json:"selection_stage"`
	Result          string `json:"result"`

	Interviews []Interview `gorm:"constraint:OnDelete:CASCADE" json:"interviews,omitempty"`
	Tasks      []Task      `gorm:"constraint:OnDelete:CASCADE" json:"tasks,omitempty"`
	Documents  []Document  `gorm:"constraint:OnDelete:CASCADE" json:"documents,omitempty"`
	Memos      []Memo      `gorm:"constraint:OnDelete:CASCADE" json:"memos,omitempty"`
}

// Interview always hangs off a company. UserID is denormalized from the
// company's owner; the services keep the two in agreement.
type Interview struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	CompanyID uint `gorm:"not null;index" json:"company_id"`
	UserID    uint `gorm:"not null;index" json:"user_id"`

	DateTime string `json:"date_time"`
	Location string `json:"location"`
	Person   string `json:"person"`
	URL      string `json:"url"`
	Notes    string `gorm:"type:text" json:"notes"`
}

// Task may or may not be tied to a company; a nil CompanyID means a
// free-standing personal task.
type Task struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    uint  `gorm:"not null;index" json:"user_id"`
	CompanyID *uint `gorm:"index" json:"company_id"`

	Content  string `gorm:"type:text;not null" json:"content"`
	Deadline string `json:"deadline"`
	Status   string `gorm:"default:'incomplete'" json:"status"`
}

type Document struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    uint  `gorm:"not null;index" json:"user_id"`
	CompanyID *uint `gorm:"index" json:"company_id"`

	DocumentName   string `gorm:"not null" json:"document_name"`
	SubmissionDate string `json:"submission_date"`
	Status         string `json:"status"`
	// FilePath is an opaque URL or note, not an upload.
	FilePath string `json:"file_path"`
}

type Memo struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`

	UserID    uint  `gorm:"not null;index" json:"user_id"`
	CompanyID *uint `gorm:"index" json:"company_id"`

	Title   string `gorm:"not null" json:"title"`
	Content string `gorm:"type:text;not null" json:"content"`
}

// Session maps an opaque cookie token to a user, server-side. Expired rows
// are deleted lazily when touched.
type Session struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	CreatedAt time.Time `json:"created_at"`

	Token     string    `gorm:"uniqueIndex;not null" json:"-"`
	UserID    uint      `gorm:"not null;index" json:"user_id"`
	ExpiresAt time.Time `json:"expires_at"`
}
