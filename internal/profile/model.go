// File: internal/profile/model.go
package profile

import (
	"time"
)

// Profile is the per-user profile record. Its primary key is the identity
// provider's UID, so a profile never exists without an auth identity.
type Profile struct {
	ID              string   `gorm:"type:varchar(128);primaryKey"`
	FullName        *string  `gorm:"type:varchar(255)"`
	ProfilePhotoURL *string  `gorm:"type:text"`
	Phone           *string  `gorm:"type:varchar(50)"`
	Location        *string  `gorm:"type:varchar(255)"`
	Bio             *string  `gorm:"type:text"`
	Experience      *string  `gorm:"type:text"`
	Education       *string  `gorm:"type:text"`
	Skills          []string `gorm:"type:text;serializer:json"`
	Role            string   `gorm:"type:varchar(50);not null;default:'user'"`
	CreatedAt       time.Time `gorm:"column:created_at;not null;default:current_timestamp"`
	UpdatedAt       time.Time `gorm:"column:updated_at;not null;default:current_timestamp"`
}

// TableName specifies the table name for the Profile model.
func (Profile) TableName() string {
	return "profiles"
}

// --- DTOs (Data Transfer Objects) for API requests/responses ---

// UpdateProfileRequest carries a partial profile update. Nil fields are
// left untouched; updates are last-write-wins with no conflict detection.
type UpdateProfileRequest struct {
	FullName   *string   `json:"full_name,omitempty" binding:"omitempty,max=255"`
	Phone      *string   `json:"phone,omitempty" binding:"omitempty,max=50"`
	Location   *string   `json:"location,omitempty" binding:"omitempty,max=255"`
	Bio        *string   `json:"bio,omitempty"`
	Experience *string   `json:"experience,omitempty"`
	Education  *string   `json:"education,omitempty"`
	Skills     *[]string `json:"skills,omitempty"`
}

// ProfileResponse defines the structure for profile data sent in API responses.
type ProfileResponse struct {
	ID              string    `json:"id"`
	FullName        *string   `json:"full_name,omitempty"`
	ProfilePhotoURL *string   `json:"profile_photo_url,omitempty"`
	Phone           *string   `json:"phone,omitempty"`
	Location        *string   `json:"location,omitempty"`
	Bio             *string   `json:"bio,omitempty"`
	Experience      *string   `json:"experience,omitempty"`
	Education       *string   `json:"education,omitempty"`
	Skills          []string  `json:"skills,omitempty"`
	CreatedAt       time.Time `json:"created_at"`
	UpdatedAt       time.Time `json:"updated_at"`
}

// ToProfileResponse converts a Profile model to a ProfileResponse DTO.
func ToProfileResponse(p *Profile) ProfileResponse {
	return ProfileResponse{
		ID:              p.ID,
		FullName:        p.FullName,
		ProfilePhotoURL: p.ProfilePhotoURL,
		Phone:           p.Phone,
		Location:        p.Location,
		Bio:             p.Bio,
		Experience:      p.Experience,
		Education:       p.Education,
		Skills:          p.Skills,
		CreatedAt:       p.CreatedAt,
		UpdatedAt:       p.UpdatedAt,
	}
}

// CompletionResponse pairs the percentage with the per-item breakdown.
type CompletionResponse struct {
	Percentage int              `json:"percentage"`
	Items      []CompletionItem `json:"items"`
}
