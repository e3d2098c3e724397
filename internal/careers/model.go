// File: internal/careers/model.go
package careers

import "time"

// JobPosting describes a single open role on the careers page.
type JobPosting struct {
	ID               string   `json:"id"`
	Title            string   `json:"title"`
	Department       string   `json:"department"`
	Location         string   `json:"location"`
	Type             string   `json:"type"`
	SalaryRange      string   `json:"salary_range,omitempty"`
	Remote           bool     `json:"remote"`
	Deadline         string   `json:"deadline"` // YYYY-MM-DD
	Description      string   `json:"description"`
	Responsibilities []string `json:"responsibilities"`
	Required         []string `json:"required"`
	Preferred        []string `json:"preferred"`
	Benefits         []string `json:"benefits"`
}

// DeadlineTime parses the posting deadline. A zero time is returned when
// the deadline is missing or malformed.
func (j JobPosting) DeadlineTime() time.Time {
	t, err := time.Parse("2006-01-02", j.Deadline)
	if err != nil {
		return time.Time{}
	}
	return t
}

// JobPostingResponse is the API shape for a posting, including
// configuration-derived links.
type JobPostingResponse struct {
	JobPosting
	Active    bool   `json:"active"`
	ShareLink string `json:"share_link"`
	ShareText string `json:"share_text"`
	ApplyURI  string `json:"apply_uri"`
}

// SiteLinksResponse groups the external links the site surfaces.
type SiteLinksResponse struct {
	SchedulingLink string `json:"scheduling_link"`
	CareersPortal  string `json:"careers_portal"`
	CareersPage    string `json:"careers_page"`
}
