package contact

import (
	"context"
	"errors"
	"testing"

	"talento_backend/internal/common"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

// MockContactRepository is a mock type for contact.Repository
type MockContactRepository struct {
	mock.Mock
}

func (m *MockContactRepository) Create(ctx context.Context, form *ContactForm) error {
	args := m.Called(ctx, form)
	return args.Error(0)
}

func (m *MockContactRepository) FindAll(ctx context.Context, offset, limit int) ([]ContactForm, int64, error) {
	args := m.Called(ctx, offset, limit)
	if args.Get(0) == nil {
		return nil, 0, args.Error(2)
	}
	return args.Get(0).([]ContactForm), args.Get(1).(int64), args.Error(2)
}

func TestSubmit_InsertsForm(t *testing.T) {
	mockRepo := new(MockContactRepository)
	svc := NewService(mockRepo, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(f *ContactForm) bool {
		return f.FullName == "Jane Doe" && f.Email == "jane@example.com" &&
			f.Company != nil && *f.Company == "Acme AB" && f.Message == "Hello"
	})).Return(nil).Once()

	form, err := svc.Submit(ctx, SubmitRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Company:  "Acme AB",
		Message:  "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, "Jane Doe", form.FullName)
	mockRepo.AssertExpectations(t)
}

func TestSubmit_EmptyCompanyStoredAsNull(t *testing.T) {
	mockRepo := new(MockContactRepository)
	svc := NewService(mockRepo, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.MatchedBy(func(f *ContactForm) bool {
		return f.Company == nil
	})).Return(nil).Once()

	_, err := svc.Submit(ctx, SubmitRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Message:  "Hello",
	})
	require.NoError(t, err)
	mockRepo.AssertExpectations(t)
}

func TestSubmit_InsertFailure(t *testing.T) {
	mockRepo := new(MockContactRepository)
	svc := NewService(mockRepo, zap.NewNop())
	ctx := context.Background()

	mockRepo.On("Create", ctx, mock.Anything).Return(errors.New("insert failed")).Once()

	_, err := svc.Submit(ctx, SubmitRequest{
		FullName: "Jane Doe",
		Email:    "jane@example.com",
		Message:  "Hello",
	})
	require.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, common.ErrInternalServer.StatusCode, apiErr.StatusCode)
	mockRepo.AssertExpectations(t)
}

func TestList_Paginates(t *testing.T) {
	mockRepo := new(MockContactRepository)
	svc := NewService(mockRepo, zap.NewNop())
	ctx := context.Background()

	rows := []ContactForm{{FullName: "A"}, {FullName: "B"}}
	mockRepo.On("FindAll", ctx, 10, 10).Return(rows, int64(25), nil).Once()

	forms, pagination, err := svc.List(ctx, 2, 10)
	require.NoError(t, err)
	assert.Len(t, forms, 2)
	require.NotNil(t, pagination)
	assert.Equal(t, int64(25), pagination.TotalItems)
	assert.Equal(t, 3, pagination.TotalPages)
	assert.Equal(t, 2, pagination.CurrentPage)
	mockRepo.AssertExpectations(t)
}
