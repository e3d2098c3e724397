package application

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"net/textproto"
	"testing"

	"talento_backend/internal/common"
	"talento_backend/internal/filestorage"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockApplicationRepository is a mock type for application.Repository
type MockApplicationRepository struct {
	mock.Mock
}

func (m *MockApplicationRepository) Create(ctx context.Context, app *CandidateApplication) error {
	args := m.Called(ctx, app)
	return args.Error(0)
}

func (m *MockApplicationRepository) FindAll(ctx context.Context, offset, limit int) ([]CandidateApplication, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]CandidateApplication), args.Get(1).(int64), args.Error(2)
}

func (m *MockApplicationRepository) ExistsByCVPath(ctx context.Context, cvFilePath string) (bool, error) {
	args := m.Called(ctx, cvFilePath)
	return args.Bool(0), args.Error(1)
}

func newTestFileHeader(t *testing.T, filename, contentType string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	header := make(textproto.MIMEHeader)
	header.Set("Content-Disposition", fmt.Sprintf(`form-data; name="file"; filename="%s"`, filename))
	header.Set("Content-Type", contentType)
	part, err := w.CreatePart(header)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, w.Close())

	reader := multipart.NewReader(&buf, w.Boundary())
	form, err := reader.ReadForm(32 << 20)
	require.NoError(t, err)
	t.Cleanup(func() { form.RemoveAll() })

	files := form.File["file"]
	require.Len(t, files, 1)
	return files[0]
}

func newTestService(t *testing.T) (Service, *MockApplicationRepository, *filestorage.Service) {
	t.Helper()
	mockRepo := new(MockApplicationRepository)
	storage, err := filestorage.NewService(t.TempDir(), "http://localhost:8080/files", zap.NewNop())
	require.NoError(t, err)
	return NewService(mockRepo, storage, zap.NewNop()), mockRepo, storage
}

func sampleRequest() SubmitRequest {
	return SubmitRequest{
		FullName:        "Jane Doe",
		Citizenship:     "Swedish",
		Phone:           "+46 70 123 45 67",
		Email:           "jane@example.com",
		MainRole:        "Engineering",
		BusinessSector:  "Technology",
		JobTitle:        "Staff Engineer",
		CurrentEmployer: "Acme AB",
		LinkedinURL:     "https://www.linkedin.com/in/janedoe",
	}
}

func TestSubmit_WithoutCV(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(app *CandidateApplication) bool {
		return app.Email == "jane@example.com" && app.CVFilePath == nil
	})).Return(nil).Once()

	app, err := svc.Submit(ctx, sampleRequest(), nil)
	require.NoError(t, err)
	assert.Nil(t, app.CVFilePath)
	mockRepo.AssertExpectations(t)
}

func TestSubmit_UploadPrecedesInsert(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(app *CandidateApplication) bool {
		// CV metadata must already be attached when the insert runs.
		return app.CVFilePath != nil && app.CVFileName != nil &&
			*app.CVFileName == "resume.pdf" &&
			app.CVFileSize != nil && *app.CVFileSize > 0 &&
			app.CVFileType != nil && *app.CVFileType == "application/pdf"
	})).Return(nil).Once()

	cv := newTestFileHeader(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	app, err := svc.Submit(ctx, sampleRequest(), cv)
	require.NoError(t, err)
	require.NotNil(t, app.CVFilePath)
	assert.Contains(t, *app.CVFilePath, "candidate-files/cvs/")
	mockRepo.AssertExpectations(t)
}

func TestSubmit_UploadFailureAbortsSubmission(t *testing.T) {
	svc, mockRepo, storage := newTestService(t)
	ctx := context.Background()

	// Unsupported type fails validation during the upload phase.
	cv := newTestFileHeader(t, "resume.txt", "text/plain", []byte("nope"))
	_, err := svc.Submit(ctx, sampleRequest(), cv)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrUnsupportedFileType)

	// No insert may happen and no file may remain.
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	files, err := storage.ListCVFiles()
	require.NoError(t, err)
	assert.Empty(t, files)
}

func TestSubmit_OversizedCVAborts(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)

	cv := newTestFileHeader(t, "big.pdf", "application/pdf", []byte("x"))
	cv.Size = filestorage.MaxCVSizeBytes + 1

	_, err := svc.Submit(context.Background(), sampleRequest(), cv)
	require.Error(t, err)
	assert.ErrorIs(t, err, common.ErrFileTooLarge)
	mockRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
}

func TestSubmit_InsertFailureLeavesFileForSweeper(t *testing.T) {
	svc, mockRepo, storage := newTestService(t)
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

	cv := newTestFileHeader(t, "resume.pdf", "application/pdf", []byte("%PDF-1.4"))
	_, err := svc.Submit(ctx, sampleRequest(), cv)
	require.Error(t, err)

	// The uploaded file stays behind as an orphan; cleanup is out-of-band.
	files, listErr := storage.ListCVFiles()
	require.NoError(t, listErr)
	assert.Len(t, files, 1)
	mockRepo.AssertExpectations(t)
}

func TestRecord_MergesMetadataWithFormData(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)
	ctx := context.Background()

	info := &filestorage.CVFileInfo{
		FilePath: "candidate-files/cvs/jane@example.com-1748779200000.pdf",
		FileName: "resume.pdf",
		FileSize: 1234,
		FileType: "application/pdf",
	}
	mockRepo.On("Create", ctx, mock.MatchedBy(func(app *CandidateApplication) bool {
		return app.CVFilePath != nil && *app.CVFilePath == info.FilePath &&
			*app.CVFileSize == int64(1234) && app.FullName == "Jane Doe"
	})).Return(nil).Once()

	app, err := svc.Record(ctx, sampleRequest(), info)
	require.NoError(t, err)
	assert.Equal(t, info.FilePath, *app.CVFilePath)
	mockRepo.AssertExpectations(t)
}

func TestList_Paginates(t *testing.T) {
	svc, mockRepo, _ := newTestService(t)
	ctx := context.Background()

	rows := []CandidateApplication{{FullName: "A"}, {FullName: "B"}}
	mockRepo.On("FindAll", ctx, 0, 10).Return(rows, int64(12), nil).Once()

	apps, pagination, err := svc.List(ctx, 1, 10)
	require.NoError(t, err)
	assert.Len(t, apps, 2)
	require.NotNil(t, pagination)
	assert.Equal(t, int64(12), pagination.TotalItems)
	assert.Equal(t, 2, pagination.TotalPages)
	mockRepo.AssertExpectations(t)
}
