package storage

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

var allowedImageExts = map[string]bool{
	".png":  true,
	".jpg":  true,
	".jpeg": true,
	".gif":  true,
	".webp": true,
}

// FileStore persists uploaded images to a local directory and hands back the
// public URL they are served under.
type FileStore struct {
	dir      string
	baseURL  string
	maxBytes int64
}

// NewFileStore creates the upload directory if needed
func NewFileStore(dir, baseURL string, maxMB int64) (*FileStore, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("create upload dir: %w", err)
	}
	return &FileStore{
		dir:      dir,
		baseURL:  strings.TrimSuffix(baseURL, "/"),
		maxBytes: maxMB << 20,
	}, nil
}

// MaxBytes returns the upload size limit
func (s *FileStore) MaxBytes() int64 {
	return s.maxBytes
}

// SaveImage stores the uploaded file under a random name and returns its
// public URL. The original filename is only used for its extension.
func (s *FileStore) SaveImage(fh *multipart.FileHeader) (string, error) {
	if fh.Size > s.maxBytes {
		return "", fmt.Errorf("file exceeds the %d MB limit", s.maxBytes>>20)
	}

	ext := strings.ToLower(filepath.Ext(fh.Filename))
	if !allowedImageExts[ext] {
		return "", fmt.Errorf("unsupported image type %q", ext)
	}

	src, err := fh.Open()
	if err != nil {
		return "", fmt.Errorf("open upload: %w", err)
	}
	defer src.Close()

	name := uuid.New().String() + ext
	dst, err := os.Create(filepath.Join(s.dir, name))
	if err != nil {
		return "", fmt.Errorf("create file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, io.LimitReader(src, s.maxBytes)); err != nil {
		return "", fmt.Errorf("write file: %w", err)
	}

	return s.baseURL + "/uploads/" + name, nil
}
