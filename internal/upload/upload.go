// Package upload stores multipart file uploads (resumes, company logos)
// under the configured directory and hands back their public URLs.
package upload

import (
	"fmt"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"github.com/jobportal/api/internal/apperr"
)

var resumeExts = map[string]bool{
	".pdf":  true,
	".doc":  true,
	".docx": true,
}

var imageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".webp": true,
}

type Saver struct {
	dir        string
	maxSize    int64
	publicPath string
}

func NewSaver(dir string, maxSizeMB int64, publicPath string) (*Saver, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("creating upload dir: %w", err)
	}
	return &Saver{
		dir:        dir,
		maxSize:    maxSizeMB << 20,
		publicPath: strings.TrimSuffix(publicPath, "/"),
	}, nil
}

// Dir returns the directory uploads are written to, for static serving.
func (s *Saver) Dir() string { return s.dir }

func (s *Saver) save(c *gin.Context, file *multipart.FileHeader, allowed map[string]bool, kind string) (string, error) {
	ext := strings.ToLower(filepath.Ext(file.Filename))
	if !allowed[ext] {
		return "", apperr.Validation(fmt.Sprintf("Invalid file type for %s", kind))
	}
	if file.Size > s.maxSize {
		return "", apperr.Validation("File too large")
	}

	name := uuid.NewString() + ext
	if err := c.SaveUploadedFile(file, filepath.Join(s.dir, name)); err != nil {
		return "", apperr.Internal("failed to store uploaded file", err)
	}
	return s.publicPath + "/" + name, nil
}

// SaveResume stores a resume upload (pdf, doc, docx) and returns its URL.
func (s *Saver) SaveResume(c *gin.Context, file *multipart.FileHeader) (string, error) {
	return s.save(c, file, resumeExts, "resume")
}

// SaveLogo stores a logo upload (png, jpg, jpeg, webp) and returns its URL.
func (s *Saver) SaveLogo(c *gin.Context, file *multipart.FileHeader) (string, error) {
	return s.save(c, file, imageExts, "logo")
}
