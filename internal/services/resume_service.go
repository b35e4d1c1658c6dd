package services

import (
	"fmt"
	"os"

	apperrors "github.com/mhenry-dev/portfolio-api/pkg/errors"
)

// ResumeService serves the resume PDF from a fixed path on disk. The whole
// file is buffered into memory before responding; no streaming or caching.
type ResumeService struct {
	path string
}

// NewResumeService creates a new resume service instance
func NewResumeService(path string) *ResumeService {
	return &ResumeService{path: path}
}

// Read returns the resume bytes. It distinguishes an absent file
// (apperrors.ErrNotFound) from a read failure so the handler can map them to
// 404 and 500 respectively.
func (s *ResumeService) Read() ([]byte, error) {
	if _, err := os.Stat(s.path); err != nil {
		if os.IsNotExist(err) {
			return nil, apperrors.NotFoundError("resume")
		}
		return nil, fmt.Errorf("failed to stat resume: %w", err)
	}

	data, err := os.ReadFile(s.path)
	if err != nil {
		return nil, fmt.Errorf("failed to read resume: %w", err)
	}

	return data, nil
}
