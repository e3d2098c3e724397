package integration

import (
	"net/http"
	"testing"

	"talento_backend/internal/careers"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCareersAPI_ListJobs(t *testing.T) {
	app := setupTestApp(t)

	rr := app.doJSON(t, http.MethodGet, "/api/v1/careers/jobs", "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Data []careers.JobPostingResponse `json:"data"`
	}
	decodeBody(t, rr, &resp)
	require.Len(t, resp.Data, 2)

	ids := []string{resp.Data[0].ID, resp.Data[1].ID}
	assert.Contains(t, ids, "sr-executive-recruitment")
	for _, job := range resp.Data {
		assert.Contains(t, job.ShareLink, "#careers/"+job.ID)
		assert.Contains(t, job.ApplyURI, "mailto:apply2@talento.agency")
	}
}

func TestCareersAPI_GetJob(t *testing.T) {
	app := setupTestApp(t)

	rr := app.doJSON(t, http.MethodGet, "/api/v1/careers/jobs/sr-executive-recruitment", "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Data careers.JobPostingResponse `json:"data"`
	}
	decodeBody(t, rr, &resp)
	assert.Equal(t, "Sr. Executive - Recruitment and Employer Branding", resp.Data.Title)
	assert.Equal(t, "https://talento.agency/careerspage#careers/sr-executive-recruitment", resp.Data.ShareLink)
	assert.NotEmpty(t, resp.Data.Responsibilities)
}

func TestCareersAPI_GetUnknownJob(t *testing.T) {
	app := setupTestApp(t)

	rr := app.doJSON(t, http.MethodGet, "/api/v1/careers/jobs/does-not-exist", "", nil)
	assert.Equal(t, http.StatusNotFound, rr.Code)
}

func TestCareersAPI_SiteLinks(t *testing.T) {
	app := setupTestApp(t)

	rr := app.doJSON(t, http.MethodGet, "/api/v1/site/links", "", nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Data careers.SiteLinksResponse `json:"data"`
	}
	decodeBody(t, rr, &resp)
	assert.Equal(t, "https://calendly.com/talentoagency2/30min", resp.Data.SchedulingLink)
	assert.Equal(t, "https://talento.agency/careerspage", resp.Data.CareersPortal)
}

func TestHealthEndpoint(t *testing.T) {
	app := setupTestApp(t)

	rr := app.doJSON(t, http.MethodGet, "/health", "", nil)
	require.Equal(t, http.StatusOK, rr.Code)
	assert.Contains(t, rr.Body.String(), "healthy")
}
