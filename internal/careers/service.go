// File: internal/careers/service.go
package careers

import (
	"fmt"
	"net/url"
	"strings"
	"time"

	"talento_backend/internal/common"
	"talento_backend/internal/config"

	"go.uber.org/zap"
)

// fragmentPrefix is the URL hash convention for deep-linking a posting.
const fragmentPrefix = "#careers/"

// Service exposes the job catalog and the link/mailto helpers built on it.
type Service interface {
	List(now time.Time) []JobPostingResponse
	Get(id string, now time.Time) (*JobPostingResponse, error)
	SiteLinks() SiteLinksResponse
}

type service struct {
	cfg    *config.Config
	logger *zap.Logger
}

// NewService creates a new careers service.
func NewService(cfg *config.Config, logger *zap.Logger) Service {
	return &service{cfg: cfg, logger: logger.Named("CareersService")}
}

func (s *service) List(now time.Time) []JobPostingResponse {
	out := make([]JobPostingResponse, 0, len(catalog))
	for _, job := range catalog {
		out = append(out, s.toResponse(job, now))
	}
	return out
}

func (s *service) Get(id string, now time.Time) (*JobPostingResponse, error) {
	job, ok := Lookup(id)
	if !ok {
		return nil, common.ErrNotFound.WithDetails(fmt.Sprintf("Job posting with ID '%s' not found.", id))
	}
	resp := s.toResponse(*job, now)
	return &resp, nil
}

func (s *service) SiteLinks() SiteLinksResponse {
	return SiteLinksResponse{
		SchedulingLink: s.cfg.SchedulingLinkURL,
		CareersPortal:  s.cfg.CareersPortalURL,
		CareersPage:    s.cfg.SiteBaseURL,
	}
}

func (s *service) toResponse(job JobPosting, now time.Time) JobPostingResponse {
	return JobPostingResponse{
		JobPosting: job,
		Active:     IsActive(job, now),
		ShareLink:  ShareLink(s.cfg.SiteBaseURL, job.ID),
		ShareText:  fmt.Sprintf("Check out this job opportunity: %s at %s", job.Title, job.Department),
		ApplyURI:   MailtoURI(s.cfg.ApplyEmail, job),
	}
}

// Lookup finds a posting by ID in the catalog.
func Lookup(id string) (*JobPosting, bool) {
	for i := range catalog {
		if catalog[i].ID == id {
			return &catalog[i], true
		}
	}
	return nil, false
}

// IsActive reports whether a posting is still accepting applications.
// The deadline day itself still counts as active.
func IsActive(job JobPosting, now time.Time) bool {
	deadline := job.DeadlineTime()
	if deadline.IsZero() {
		return false
	}
	return !now.After(deadline.Add(24*time.Hour - time.Nanosecond))
}

// ShareLink builds the deep link for a posting, e.g.
// https://talento.agency/careerspage#careers/sr-executive-recruitment.
func ShareLink(siteBaseURL, jobID string) string {
	return siteBaseURL + fragmentPrefix + jobID
}

// ParseShareFragment extracts the job ID from a "#careers/{id}" URL hash.
// It returns false for any other fragment, including a bare "#careers/".
func ParseShareFragment(fragment string) (string, bool) {
	if !strings.HasPrefix(fragment, fragmentPrefix) {
		return "", false
	}
	id := fragment[len(fragmentPrefix):]
	if id == "" {
		return "", false
	}
	return id, true
}

// MailtoURI composes the apply-by-email link for a posting. Spaces are
// percent-encoded so the URI survives being dropped into an href.
func MailtoURI(applyEmail string, job JobPosting) string {
	subject := fmt.Sprintf("Application for %s Position", job.Title)
	body := fmt.Sprintf(`Dear TALENTO Hiring Team,
I am writing to express my interest in the %s position in the %s department.
Please find my resume attached. I look forward to discussing how my skills and experience align with your requirements.
Best regards,
[Your Name]`, job.Title, job.Department)

	return fmt.Sprintf("mailto:%s?subject=%s&body=%s", applyEmail, escapeComponent(subject), escapeComponent(body))
}

// escapeComponent percent-encodes a mailto query component. QueryEscape
// emits "+" for spaces, which mail clients do not decode.
func escapeComponent(s string) string {
	return strings.ReplaceAll(url.QueryEscape(s), "+", "%20")
}
