package filestorage

import (
	"mime/multipart"
	"strings"

	"talento_backend/internal/common"
)

// Size ceilings enforced before anything touches the network or disk.
const (
	MaxCVSizeBytes    = 5 * 1024 * 1024 // 5,242,880
	MaxPhotoSizeBytes = 2 * 1024 * 1024 // 2,097,152
)

// allowedCVTypes maps accepted CV MIME types to a canonical file extension,
// used when the uploaded filename carries none.
var allowedCVTypes = map[string]string{
	"application/pdf":    ".pdf",
	"application/msword": ".doc",
	"application/vnd.openxmlformats-officedocument.wordprocessingml.document": ".docx",
}

// ValidateCVFile checks a candidate CV upload before it is stored.
// Only PDF and Word documents up to 5MB are accepted; the declared
// Content-Type decides, not the filename extension.
func ValidateCVFile(fh *multipart.FileHeader) error {
	if fh == nil {
		return common.ErrBadRequest.WithDetails("No file was provided.")
	}
	contentType := fh.Header.Get("Content-Type")
	if _, ok := allowedCVTypes[contentType]; !ok {
		return common.ErrUnsupportedFileType
	}
	if fh.Size > MaxCVSizeBytes {
		return common.ErrFileTooLarge
	}
	return nil
}

// ValidatePhotoFile checks a profile photo upload: any image type, up to 2MB.
func ValidatePhotoFile(fh *multipart.FileHeader) error {
	if fh == nil {
		return common.ErrBadRequest.WithDetails("No file was provided.")
	}
	contentType := fh.Header.Get("Content-Type")
	if !strings.HasPrefix(contentType, "image/") {
		return common.ErrPhotoNotImage
	}
	if fh.Size > MaxPhotoSizeBytes {
		return common.ErrPhotoTooLarge
	}
	return nil
}
