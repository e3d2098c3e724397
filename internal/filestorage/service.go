package filestorage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Bucket names, mirrored as sub-directories under the storage path.
const (
	ProfilePhotoBucket  = "profile-photos"
	CandidateFileBucket = "candidate-files"
	cvSubDir            = "cvs"
)

// CVFileInfo describes a stored CV. It is returned to the caller so a
// subsequent application submission can reference the upload.
type CVFileInfo struct {
	FilePath string `json:"file_path"`
	FileName string `json:"file_name"`
	FileSize int64  `json:"file_size"`
	FileType string `json:"file_type"`
}

// StoredCV is a stored CV file as seen by the orphan sweeper.
type StoredCV struct {
	RelPath string
	ModTime time.Time
}

// Service provides operations for storing and deleting uploaded files.
type Service struct {
	storagePath   string // Base path for storing files, e.g., "./storage"
	publicBaseURL string
	logger        *zap.Logger
}

// NewService creates a new file storage Service rooted at storagePath.
func NewService(storagePath, publicBaseURL string, logger *zap.Logger) (*Service, error) {
	if storagePath == "" {
		return nil, fmt.Errorf("storage path cannot be empty")
	}
	if err := os.MkdirAll(storagePath, os.ModePerm); err != nil {
		logger.Error("Failed to create storage path directory", zap.String("path", storagePath), zap.Error(err))
		return nil, fmt.Errorf("failed to create storage path %s: %w", storagePath, err)
	}
	logger.Info("File storage service initialized", zap.String("storagePath", storagePath))
	return &Service{storagePath: storagePath, publicBaseURL: strings.TrimRight(publicBaseURL, "/"), logger: logger}, nil
}

// PublicURL maps a stored file's relative path to its public URL.
func (s *Service) PublicURL(relPath string) string {
	return s.publicBaseURL + "/" + filepath.ToSlash(relPath)
}

// StoragePath returns the base directory files are stored under.
func (s *Service) StoragePath() string {
	return s.storagePath
}

// SaveProfilePhoto stores a profile photo at the user's fixed path
// ({bucket}/{userID}/profile.{ext}), replacing any previous photo so the
// path stays stable. Returns the relative path of the saved file.
func (s *Service) SaveProfilePhoto(fh *multipart.FileHeader, userID string) (string, error) {
	if err := ValidatePhotoFile(fh); err != nil {
		return "", err
	}
	if strings.ContainsAny(userID, "/\\.") || userID == "" {
		return "", fmt.Errorf("invalid user ID for photo path: %q", userID)
	}

	ext := extensionFor(fh, map[string]string{
		"image/jpeg": ".jpg",
		"image/png":  ".png",
		"image/gif":  ".gif",
		"image/webp": ".webp",
	})
	if ext == "" {
		return "", fmt.Errorf("could not determine image extension for content type %q", fh.Header.Get("Content-Type"))
	}

	userDir := filepath.Join(s.storagePath, ProfilePhotoBucket, userID)
	if err := os.MkdirAll(userDir, os.ModePerm); err != nil {
		s.logger.Error("Failed to create photo directory", zap.String("path", userDir), zap.Error(err))
		return "", fmt.Errorf("failed to create directory %s: %w", userDir, err)
	}

	// A user has exactly one photo slot; drop stale files with other extensions.
	if stale, err := filepath.Glob(filepath.Join(userDir, "profile.*")); err == nil {
		for _, f := range stale {
			os.Remove(f)
		}
	}

	relPath := filepath.ToSlash(filepath.Join(ProfilePhotoBucket, userID, "profile"+ext))
	if err := s.writeFile(fh, filepath.Join(userDir, "profile"+ext), true); err != nil {
		return "", err
	}

	s.logger.Info("Profile photo saved", zap.String("path", relPath))
	return relPath, nil
}

// SaveCV stores a candidate CV at a time-stamped unique path
// ({bucket}/cvs/{email}-{epoch_ms}.{ext}). Existing files are never
// overwritten. Returns the stored file's metadata.
func (s *Service) SaveCV(fh *multipart.FileHeader, candidateEmail string, now time.Time) (*CVFileInfo, error) {
	if err := ValidateCVFile(fh); err != nil {
		return nil, err
	}

	ext := extensionFor(fh, allowedCVTypes)
	name := fmt.Sprintf("%s-%d%s", sanitizePathComponent(candidateEmail), now.UnixMilli(), ext)
	relPath := filepath.ToSlash(filepath.Join(CandidateFileBucket, cvSubDir, name))

	dir := filepath.Join(s.storagePath, CandidateFileBucket, cvSubDir)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		s.logger.Error("Failed to create CV directory", zap.String("path", dir), zap.Error(err))
		return nil, fmt.Errorf("failed to create directory %s: %w", dir, err)
	}

	if err := s.writeFile(fh, filepath.Join(dir, name), false); err != nil {
		return nil, err
	}

	s.logger.Info("CV saved", zap.String("path", relPath), zap.Int64("size", fh.Size))
	return &CVFileInfo{
		FilePath: relPath,
		FileName: filepath.Base(fh.Filename),
		FileSize: fh.Size,
		FileType: fh.Header.Get("Content-Type"),
	}, nil
}

// ListCVFiles enumerates stored CVs for the orphan sweeper.
func (s *Service) ListCVFiles() ([]StoredCV, error) {
	dir := filepath.Join(s.storagePath, CandidateFileBucket, cvSubDir)
	entries, err := os.ReadDir(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to list CV directory: %w", err)
	}

	var files []StoredCV
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		info, err := e.Info()
		if err != nil {
			continue
		}
		files = append(files, StoredCV{
			RelPath: filepath.ToSlash(filepath.Join(CandidateFileBucket, cvSubDir, e.Name())),
			ModTime: info.ModTime(),
		})
	}
	return files, nil
}

// DeleteFile deletes a file given its path relative to the storage path.
func (s *Service) DeleteFile(relPath string) error {
	if relPath == "" {
		return fmt.Errorf("relative path cannot be empty")
	}

	cleanRelPath := filepath.Clean(relPath)
	if strings.Contains(cleanRelPath, "..") {
		s.logger.Warn("Attempt to delete file with path traversal", zap.String("relativePath", relPath))
		return fmt.Errorf("invalid file path for deletion")
	}

	fullPath := filepath.Join(s.storagePath, cleanRelPath)

	if _, err := os.Stat(fullPath); os.IsNotExist(err) {
		s.logger.Warn("Attempt to delete non-existent file", zap.String("path", fullPath))
		return nil
	}

	if err := os.Remove(fullPath); err != nil {
		s.logger.Error("Failed to delete file", zap.String("path", fullPath), zap.Error(err))
		return fmt.Errorf("failed to delete file %s: %w", fullPath, err)
	}

	s.logger.Info("File deleted successfully", zap.String("path", fullPath))
	return nil
}

// writeFile copies the multipart payload to destinationPath. When overwrite
// is false an existing destination is an error (CV paths must be unique).
func (s *Service) writeFile(fh *multipart.FileHeader, destinationPath string, overwrite bool) error {
	src, err := fh.Open()
	if err != nil {
		s.logger.Error("Failed to open uploaded file", zap.Error(err))
		return fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	flags := os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	if !overwrite {
		flags = os.O_WRONLY | os.O_CREATE | os.O_EXCL
	}
	dst, err := os.OpenFile(destinationPath, flags, 0o644)
	if err != nil {
		s.logger.Error("Failed to create destination file", zap.String("path", destinationPath), zap.Error(err))
		return fmt.Errorf("failed to create file %s: %w", destinationPath, err)
	}
	defer dst.Close()

	if _, err = io.Copy(dst, src); err != nil {
		s.logger.Error("Failed to copy uploaded file to destination", zap.String("path", destinationPath), zap.Error(err))
		os.Remove(destinationPath)
		return fmt.Errorf("failed to save file: %w", err)
	}
	return nil
}

// extensionFor picks a file extension from the uploaded filename, falling
// back to the MIME mapping when the name carries none.
func extensionFor(fh *multipart.FileHeader, byType map[string]string) string {
	if ext := filepath.Ext(filepath.Base(fh.Filename)); ext != "" {
		return strings.ToLower(ext)
	}
	return byType[fh.Header.Get("Content-Type")]
}

// sanitizePathComponent keeps uploaded-path components free of separators.
func sanitizePathComponent(s string) string {
	r := strings.NewReplacer("/", "_", "\\", "_", "..", "_")
	return r.Replace(s)
}
