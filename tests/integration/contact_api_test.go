package integration

import (
	"net/http"
	"testing"

	"talento_backend/internal/common"
	"talento_backend/internal/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactAPI_Submit(t *testing.T) {
	app := setupTestApp(t)

	rr := app.doJSON(t, http.MethodPost, "/api/v1/contact-forms", "", contact.SubmitRequest{
		FullName: "Abebe Bikila",
		Email:    "abebe@example.com",
		Company:  "Marathon Ltd",
		Message:  "We need help hiring ten engineers.",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var row contact.ContactForm
	require.NoError(t, app.db.First(&row, "email = ?", "abebe@example.com").Error)
	assert.Equal(t, "Abebe Bikila", row.FullName)
	require.NotNil(t, row.Company)
	assert.Equal(t, "Marathon Ltd", *row.Company)
}

func TestContactAPI_SubmitWithoutCompany(t *testing.T) {
	app := setupTestApp(t)

	rr := app.doJSON(t, http.MethodPost, "/api/v1/contact-forms", "", contact.SubmitRequest{
		FullName: "Sara T",
		Email:    "sara@example.com",
		Message:  "Looking for a data labelling role.",
	})
	require.Equal(t, http.StatusCreated, rr.Code, rr.Body.String())

	var row contact.ContactForm
	require.NoError(t, app.db.First(&row, "email = ?", "sara@example.com").Error)
	assert.Nil(t, row.Company)
}

func TestContactAPI_SubmitValidation(t *testing.T) {
	app := setupTestApp(t)

	rr := app.doJSON(t, http.MethodPost, "/api/v1/contact-forms", "", contact.SubmitRequest{
		FullName: "No Email",
		Message:  "Missing the address.",
	})
	assert.Equal(t, http.StatusBadRequest, rr.Code)

	var count int64
	require.NoError(t, app.db.Model(&contact.ContactForm{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestContactAPI_ListIsAdminOnly(t *testing.T) {
	app := setupTestApp(t)

	rr := app.doJSON(t, http.MethodPost, "/api/v1/contact-forms", "", contact.SubmitRequest{
		FullName: "Abebe Bikila",
		Email:    "abebe@example.com",
		Message:  "Hello",
	})
	require.Equal(t, http.StatusCreated, rr.Code)

	rr = app.doJSON(t, http.MethodGet, "/api/v1/contact-forms", "", nil)
	assert.Equal(t, http.StatusUnauthorized, rr.Code)

	rr = app.doJSON(t, http.MethodGet, "/api/v1/contact-forms", userTestToken, nil)
	assert.Equal(t, http.StatusForbidden, rr.Code)

	rr = app.doJSON(t, http.MethodGet, "/api/v1/contact-forms", adminTestToken, nil)
	require.Equal(t, http.StatusOK, rr.Code, rr.Body.String())

	var resp struct {
		Data       []contact.ContactFormResponse `json:"data"`
		Pagination *common.Pagination            `json:"pagination"`
	}
	decodeBody(t, rr, &resp)
	require.Len(t, resp.Data, 1)
	assert.Equal(t, "abebe@example.com", resp.Data[0].Email)
}
