// File: internal/contact/model.go
package contact

import (
	"time"

	"talento_backend/internal/common"

	"github.com/google/uuid"
)

// ContactForm is a message submitted from the public landing page.
type ContactForm struct {
	common.BaseModel         // Embeds ID, CreatedAt, UpdatedAt
	FullName string  `gorm:"type:varchar(255);not null"`
	Email    string  `gorm:"type:varchar(255);not null"`
	Company  *string `gorm:"type:varchar(255)"`
	Message  string  `gorm:"type:text;not null"`
}

// TableName specifies the table name for the ContactForm model.
func (ContactForm) TableName() string {
	return "contact_forms"
}

// SubmitRequest carries a contact form submission.
type SubmitRequest struct {
	FullName string `json:"full_name" binding:"required,max=255"`
	Email    string `json:"email" binding:"required,email"`
	Company  string `json:"company" binding:"omitempty,max=255"`
	Message  string `json:"message" binding:"required"`
}

// ContactFormResponse defines the structure for contact form data in API responses.
type ContactFormResponse struct {
	ID        uuid.UUID `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Company   *string   `json:"company,omitempty"`
	Message   string    `json:"message"`
	CreatedAt time.Time `json:"created_at"`
}

// ToContactFormResponse converts a ContactForm model to its DTO.
func ToContactFormResponse(f *ContactForm) ContactFormResponse {
	return ContactFormResponse{
		ID:        f.ID,
		FullName:  f.FullName,
		Email:     f.Email,
		Company:   f.Company,
		Message:   f.Message,
		CreatedAt: f.CreatedAt,
	}
}
