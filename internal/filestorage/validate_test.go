package filestorage

import (
	"mime/multipart"
	"net/textproto"
	"testing"

	"talento_backend/internal/common"

	"github.com/stretchr/testify/assert"
)

// fakeFileHeader builds a FileHeader without backing content; the validators
// only look at the declared Content-Type and size.
func fakeFileHeader(filename, contentType string, size int64) *multipart.FileHeader {
	header := make(textproto.MIMEHeader)
	header.Set("Content-Type", contentType)
	return &multipart.FileHeader{
		Filename: filename,
		Header:   header,
		Size:     size,
	}
}

func TestValidateCVFile(t *testing.T) {
	tests := []struct {
		name    string
		fh      *multipart.FileHeader
		wantErr error
	}{
		{
			name:    "PDF under limit is accepted",
			fh:      fakeFileHeader("resume.pdf", "application/pdf", 1024),
			wantErr: nil,
		},
		{
			name:    "DOC is accepted",
			fh:      fakeFileHeader("resume.doc", "application/msword", 1024),
			wantErr: nil,
		},
		{
			name:    "DOCX is accepted",
			fh:      fakeFileHeader("resume.docx", "application/vnd.openxmlformats-officedocument.wordprocessingml.document", 1024),
			wantErr: nil,
		},
		{
			name:    "exactly at the size ceiling is accepted",
			fh:      fakeFileHeader("resume.pdf", "application/pdf", MaxCVSizeBytes),
			wantErr: nil,
		},
		{
			name:    "one byte over the ceiling is rejected",
			fh:      fakeFileHeader("resume.pdf", "application/pdf", MaxCVSizeBytes+1),
			wantErr: common.ErrFileTooLarge,
		},
		{
			name:    "6MB PDF is rejected",
			fh:      fakeFileHeader("big.pdf", "application/pdf", 6*1024*1024),
			wantErr: common.ErrFileTooLarge,
		},
		{
			name:    "plain text is rejected regardless of size",
			fh:      fakeFileHeader("resume.txt", "text/plain", 10),
			wantErr: common.ErrUnsupportedFileType,
		},
		{
			name:    "image is rejected for CV slot",
			fh:      fakeFileHeader("resume.png", "image/png", 10),
			wantErr: common.ErrUnsupportedFileType,
		},
		{
			name: "type is checked before size",
			// An oversized unsupported file should surface the type error.
			fh:      fakeFileHeader("big.txt", "text/plain", MaxCVSizeBytes+1),
			wantErr: common.ErrUnsupportedFileType,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateCVFile(tt.fh)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}

func TestValidateCVFile_NilFile(t *testing.T) {
	err := ValidateCVFile(nil)
	assert.Error(t, err)
	apiErr, ok := common.IsAPIError(err)
	assert.True(t, ok)
	assert.Equal(t, common.ErrBadRequest.Code, apiErr.Code)
}

func TestValidatePhotoFile(t *testing.T) {
	tests := []struct {
		name    string
		fh      *multipart.FileHeader
		wantErr error
	}{
		{
			name:    "JPEG is accepted",
			fh:      fakeFileHeader("me.jpg", "image/jpeg", 1024),
			wantErr: nil,
		},
		{
			name:    "any image subtype is accepted",
			fh:      fakeFileHeader("me.webp", "image/webp", 1024),
			wantErr: nil,
		},
		{
			name:    "exactly at the size ceiling is accepted",
			fh:      fakeFileHeader("me.png", "image/png", MaxPhotoSizeBytes),
			wantErr: nil,
		},
		{
			name:    "over the ceiling is rejected",
			fh:      fakeFileHeader("me.png", "image/png", MaxPhotoSizeBytes+1),
			wantErr: common.ErrPhotoTooLarge,
		},
		{
			name:    "PDF is not an image",
			fh:      fakeFileHeader("me.pdf", "application/pdf", 1024),
			wantErr: common.ErrPhotoNotImage,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidatePhotoFile(tt.fh)
			if tt.wantErr == nil {
				assert.NoError(t, err)
			} else {
				assert.ErrorIs(t, err, tt.wantErr)
			}
		})
	}
}
