package integration

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"testing"
	"time"

	"talento_backend/internal/app"
	"talento_backend/internal/application"
	"talento_backend/internal/careers"
	"talento_backend/internal/common"
	"talento_backend/internal/config"
	"talento_backend/internal/contact"
	"talento_backend/internal/filestorage"
	fb "talento_backend/internal/firebase"
	"talento_backend/internal/gateway"
	"talento_backend/internal/jobs"
	"talento_backend/internal/profile"

	firebaseauth "firebase.google.com/go/v4/auth"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"
)

const (
	adminTestToken = "admin_test_token"
	userTestToken  = "user_test_token"

	adminTestUID = "test-admin-uid"
	userTestUID  = "test-user-uid"
)

// MockFirebaseService stands in for the identity provider. Two well-known
// tokens resolve to fixed identities; everything else is rejected.
type MockFirebaseService struct{}

var _ fb.Service = (*MockFirebaseService)(nil)

func (m *MockFirebaseService) VerifyIDToken(ctx context.Context, idToken string) (*firebaseauth.Token, error) {
	switch idToken {
	case adminTestToken:
		return &firebaseauth.Token{
			UID:    adminTestUID,
			Claims: map[string]interface{}{"email": "admin@integration.test", "name": "Admin Test"},
		}, nil
	case userTestToken:
		return &firebaseauth.Token{
			UID:    userTestUID,
			Claims: map[string]interface{}{"email": "user@integration.test", "name": "Regular User"},
		}, nil
	}
	return nil, fmt.Errorf("mock firebase: invalid token")
}

func (m *MockFirebaseService) CreateUser(ctx context.Context, email, password, displayName string) (*firebaseauth.UserRecord, error) {
	if strings.Contains(email, "taken") {
		return nil, fmt.Errorf("mock firebase: email already exists")
	}
	return &firebaseauth.UserRecord{
		UserInfo: &firebaseauth.UserInfo{UID: "new-" + email, Email: email, DisplayName: displayName},
	}, nil
}

func (m *MockFirebaseService) GetUser(ctx context.Context, uid string) (*firebaseauth.UserRecord, error) {
	return &firebaseauth.UserRecord{UserInfo: &firebaseauth.UserInfo{UID: uid}}, nil
}

func (m *MockFirebaseService) PasswordResetLink(ctx context.Context, email string) (string, error) {
	if strings.Contains(email, "unknown") {
		return "", fb.ErrUserNotFound
	}
	return "https://example.test/reset", nil
}

func (m *MockFirebaseService) RevokeRefreshTokens(ctx context.Context, uid string) error {
	return nil
}

func (m *MockFirebaseService) UpdatePassword(ctx context.Context, uid, newPassword string) error {
	return nil
}

func (m *MockFirebaseService) UpdateEmail(ctx context.Context, uid, newEmail string) error {
	return nil
}

// testApp bundles what the test cases need: the router to drive requests
// through and the database to assert persisted state against.
type testApp struct {
	router http.Handler
	db     *gorm.DB
	cfg    *config.Config
}

// setupTestApp wires the full server against an in-memory sqlite database
// and the mock identity provider. Each test gets its own database.
func setupTestApp(t *testing.T) *testApp {
	t.Helper()
	gin.SetMode(gin.TestMode)

	cfg := &config.Config{
		GinMode:             gin.TestMode,
		ServerHost:          "127.0.0.1",
		ServerPort:          "0",
		StoragePath:         t.TempDir(),
		PublicBaseURL:       "http://localhost:8080/files",
		SiteBaseURL:         "https://talento.agency/careerspage",
		ApplyEmail:          "apply2@talento.agency",
		SchedulingLinkURL:   "https://calendly.com/talentoagency2/30min",
		CareersPortalURL:    "https://talento.agency/careerspage",
		CVOrphanGracePeriod: time.Hour,
	}

	appLogger := zap.NewNop()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	require.NoError(t, err, "Failed to open test database")
	t.Cleanup(func() {
		if sqlDB, dbErr := db.DB(); dbErr == nil {
			sqlDB.Close()
		}
	})

	storage, err := filestorage.NewService(cfg.StoragePath, cfg.PublicBaseURL, appLogger)
	require.NoError(t, err, "Failed to initialize file storage")

	var firebaseService fb.Service = &MockFirebaseService{}

	profileRepo := profile.NewGORMRepository(db)
	profileService := profile.NewService(profileRepo, storage, cfg, appLogger)
	profileHandler := profile.NewHandler(profileService, appLogger)

	applicationRepo := application.NewGORMRepository(db)
	applicationService := application.NewService(applicationRepo, storage, appLogger)
	applicationHandler := application.NewHandler(applicationService, appLogger)

	contactRepo := contact.NewGORMRepository(db)
	contactService := contact.NewService(contactRepo, appLogger)
	contactHandler := contact.NewHandler(contactService, appLogger)

	careersService := careers.NewService(cfg, appLogger)
	careersHandler := careers.NewHandler(careersService, appLogger)

	gw := gateway.New(firebaseService, profileService, applicationService, contactService, storage, appLogger)
	gatewayHandler := gateway.NewHandler(gw, appLogger)

	cvCleanupJob := jobs.NewCVCleanupJob(applicationRepo, storage, appLogger, cfg)

	server, err := app.NewServer(
		cfg, appLogger,
		gatewayHandler, profileHandler, applicationHandler, contactHandler, careersHandler,
		cvCleanupJob, db, firebaseService, profileService,
	)
	require.NoError(t, err, "Failed to build test server")

	// The auth middleware provisions profiles with the default role; the
	// admin identity must be seeded up front for role-gated routes.
	adminName := "Admin Test"
	err = profileRepo.Create(context.Background(), &profile.Profile{
		ID:       adminTestUID,
		FullName: &adminName,
		Role:     common.RoleAdmin,
	})
	require.NoError(t, err, "Failed to seed admin profile")

	return &testApp{router: server.Router(), db: db, cfg: cfg}
}

func (a *testApp) doJSON(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(payload)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

// multipartBody assembles a multipart form from plain fields plus an
// optional file part named "cv".
func multipartBody(t *testing.T, fields map[string]string, cvName, cvContentType string, cvContent []byte) (*bytes.Buffer, string) {
	t.Helper()
	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	for k, v := range fields {
		require.NoError(t, w.WriteField(k, v))
	}
	if cvName != "" {
		header := textproto.MIMEHeader{}
		header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="cv"; filename="%s"`, cvName))
		header.Set("Content-Type", cvContentType)
		part, err := w.CreatePart(header)
		require.NoError(t, err)
		_, err = part.Write(cvContent)
		require.NoError(t, err)
	}
	require.NoError(t, w.Close())
	return &buf, w.FormDataContentType()
}

func (a *testApp) doMultipart(t *testing.T, path string, body *bytes.Buffer, contentType string) *httptest.ResponseRecorder {
	t.Helper()
	req := httptest.NewRequest(http.MethodPost, path, body)
	req.Header.Set("Content-Type", contentType)
	rr := httptest.NewRecorder()
	a.router.ServeHTTP(rr, req)
	return rr
}

func decodeBody(t *testing.T, rr *httptest.ResponseRecorder, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(rr.Body.Bytes(), out), "Failed to decode response: %s", rr.Body.String())
}

// envelope mirrors the gateway's wire shape with the data left raw so each
// test can decode it into the type it expects.
type envelope struct {
	Success bool            `json:"success"`
	Data    json.RawMessage `json:"data,omitempty"`
	Error   string          `json:"error,omitempty"`
}

func sampleApplicationForm() map[string]string {
	return map[string]string{
		"full_name":        "Jane Candidate",
		"citizenship":      "Ethiopian",
		"phone":            "+251911000000",
		"email":            "jane@example.com",
		"main_role":        "HR",
		"business_sector":  "Technology",
		"job_title":        "HR Manager",
		"current_employer": "Acme Corp",
		"linkedin_url":     "https://linkedin.com/in/janecandidate",
	}
}
