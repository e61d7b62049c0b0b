package storage

import (
	"bytes"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// uploadFileHeader builds a real multipart.FileHeader the way gin would hand
// it to a handler.
func uploadFileHeader(t *testing.T, filename string, content []byte) *multipart.FileHeader {
	t.Helper()

	var buf bytes.Buffer
	writer := multipart.NewWriter(&buf)
	part, err := writer.CreateFormFile("image", filename)
	require.NoError(t, err)
	_, err = part.Write(content)
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest(http.MethodPost, "/upload", &buf)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(32<<20))

	fhs := req.MultipartForm.File["image"]
	require.Len(t, fhs, 1)
	return fhs[0]
}

// TestSaveImage tests storing a valid image
func TestSaveImage(t *testing.T) {
	dir := t.TempDir()
	store, err := NewFileStore(dir, "http://localhost:7100/", 5)
	require.NoError(t, err)

	fh := uploadFileHeader(t, "photo.PNG", []byte("fake png bytes"))

	url, err := store.SaveImage(fh)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(url, "http://localhost:7100/uploads/"))
	assert.True(t, strings.HasSuffix(url, ".png"))

	// The file exists on disk under the random name from the URL
	name := strings.TrimPrefix(url, "http://localhost:7100/uploads/")
	data, err := os.ReadFile(filepath.Join(dir, name))
	require.NoError(t, err)
	assert.Equal(t, []byte("fake png bytes"), data)
}

// TestSaveImageRejectsExtension tests that non-image extensions are rejected
func TestSaveImageRejectsExtension(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "http://localhost:7100", 5)
	require.NoError(t, err)

	fh := uploadFileHeader(t, "malware.exe", []byte("nope"))

	_, err = store.SaveImage(fh)
	assert.ErrorContains(t, err, "unsupported image type")
}

// TestSaveImageRejectsOversize tests the size limit
func TestSaveImageRejectsOversize(t *testing.T) {
	store, err := NewFileStore(t.TempDir(), "http://localhost:7100", 5)
	require.NoError(t, err)

	fh := uploadFileHeader(t, "big.jpg", []byte("content"))
	fh.Size = store.MaxBytes() + 1

	_, err = store.SaveImage(fh)
	assert.ErrorContains(t, err, "exceeds")
}

// TestNewFileStoreCreatesDir tests that the upload directory is created
func TestNewFileStoreCreatesDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "uploads")
	_, err := NewFileStore(dir, "http://localhost:7100", 5)
	require.NoError(t, err)

	info, err := os.Stat(dir)
	require.NoError(t, err)
	assert.True(t, info.IsDir())
}
