// File: internal/application/model.go
package application

import (
	"time"

	"talento_backend/internal/common"

	"github.com/google/uuid"
)

// CandidateApplication is a submitted job application. When CV metadata is
// present, the referenced file was uploaded successfully before this record
// was created.
type CandidateApplication struct {
	common.BaseModel         // Embeds ID, CreatedAt, UpdatedAt
	FullName        string  `gorm:"type:varchar(255);not null"`
	Citizenship     string  `gorm:"type:varchar(100);not null"`
	Phone           string  `gorm:"type:varchar(50);not null"`
	Email           string  `gorm:"type:varchar(255);not null;index"`
	MainRole        string  `gorm:"type:varchar(255);not null"`
	BusinessSector  string  `gorm:"type:varchar(255);not null"`
	JobTitle        string  `gorm:"type:varchar(255);not null"`
	CurrentEmployer string  `gorm:"type:varchar(255);not null"`
	LinkedinURL     string  `gorm:"type:text;not null"`
	CVFilePath      *string `gorm:"type:text"`
	CVFileName      *string `gorm:"type:varchar(255)"`
	CVFileSize      *int64
	CVFileType      *string `gorm:"type:varchar(255)"`
}

// TableName specifies the table name for the CandidateApplication model.
func (CandidateApplication) TableName() string {
	return "candidate_applications"
}

// --- DTOs (Data Transfer Objects) for API requests/responses ---

// SubmitRequest carries the application form fields. The CV file, if any,
// arrives as a separate multipart file part.
type SubmitRequest struct {
	FullName        string `form:"full_name" json:"full_name" binding:"required,max=255"`
	Citizenship     string `form:"citizenship" json:"citizenship" binding:"required,max=100"`
	Phone           string `form:"phone" json:"phone" binding:"required,max=50"`
	Email           string `form:"email" json:"email" binding:"required,email"`
	MainRole        string `form:"main_role" json:"main_role" binding:"required,max=255"`
	BusinessSector  string `form:"business_sector" json:"business_sector" binding:"required,max=255"`
	JobTitle        string `form:"job_title" json:"job_title" binding:"required,max=255"`
	CurrentEmployer string `form:"current_employer" json:"current_employer" binding:"required,max=255"`
	LinkedinURL     string `form:"linkedin_url" json:"linkedin_url" binding:"required,url"`
}

// ApplicationResponse defines the structure for application data in API responses.
type ApplicationResponse struct {
	ID              uuid.UUID `json:"id"`
	FullName        string    `json:"full_name"`
	Citizenship     string    `json:"citizenship"`
	Phone           string    `json:"phone"`
	Email           string    `json:"email"`
	MainRole        string    `json:"main_role"`
	BusinessSector  string    `json:"business_sector"`
	JobTitle        string    `json:"job_title"`
	CurrentEmployer string    `json:"current_employer"`
	LinkedinURL     string    `json:"linkedin_url"`
	CVFilePath      *string   `json:"cv_file_path,omitempty"`
	CVFileName      *string   `json:"cv_file_name,omitempty"`
	CVFileSize      *int64    `json:"cv_file_size,omitempty"`
	CVFileType      *string   `json:"cv_file_type,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
}

// ToApplicationResponse converts a CandidateApplication model to its DTO.
func ToApplicationResponse(a *CandidateApplication) ApplicationResponse {
	return ApplicationResponse{
		ID:              a.ID,
		FullName:        a.FullName,
		Citizenship:     a.Citizenship,
		Phone:           a.Phone,
		Email:           a.Email,
		MainRole:        a.MainRole,
		BusinessSector:  a.BusinessSector,
		JobTitle:        a.JobTitle,
		CurrentEmployer: a.CurrentEmployer,
		LinkedinURL:     a.LinkedinURL,
		CVFilePath:      a.CVFilePath,
		CVFileName:      a.CVFileName,
		CVFileSize:      a.CVFileSize,
		CVFileType:      a.CVFileType,
		CreatedAt:       a.CreatedAt,
	}
}
