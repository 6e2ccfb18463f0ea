package util

import (
	"bytes"
	"mime/multipart"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// makeFileHeader собирает multipart.FileHeader так же,
// как его получает обработчик из multipart-запроса
func makeFileHeader(t *testing.T, filename, content string) *multipart.FileHeader {
	t.Helper()

	body := &bytes.Buffer{}
	writer := multipart.NewWriter(body)
	part, err := writer.CreateFormFile("photo", filename)
	require.NoError(t, err)
	_, err = part.Write([]byte(content))
	require.NoError(t, err)
	require.NoError(t, writer.Close())

	req := httptest.NewRequest("POST", "/", body)
	req.Header.Set("Content-Type", writer.FormDataContentType())
	require.NoError(t, req.ParseMultipartForm(1<<20))

	return req.MultipartForm.File["photo"][0]
}

func TestPhotoStore_Save(t *testing.T) {
	// Arrange
	store := NewPhotoStore(t.TempDir())
	file := makeFileHeader(t, "avatar.png", "png-bytes")

	// Act
	filename, err := store.Save(file, "users")

	// Assert
	require.NoError(t, err)
	assert.True(t, strings.HasSuffix(filename, ".png"))
	assert.NotEqual(t, "avatar.png", filename) // имя генерируется, оригинал не раскрывается
	assert.True(t, store.Exists("users", filename))
}

func TestPhotoStore_SaveGeneratesUniqueNames(t *testing.T) {
	// Arrange
	store := NewPhotoStore(t.TempDir())
	file := makeFileHeader(t, "photo.jpg", "jpg-bytes")

	// Act
	first, err1 := store.Save(file, "products")
	second, err2 := store.Save(file, "products")

	// Assert
	require.NoError(t, err1)
	require.NoError(t, err2)
	assert.NotEqual(t, first, second)
}

func TestPhotoStore_SaveWritesContent(t *testing.T) {
	// Arrange
	dir := t.TempDir()
	store := NewPhotoStore(dir)
	file := makeFileHeader(t, "avatar.png", "expected-content")

	// Act
	filename, err := store.Save(file, "users")
	require.NoError(t, err)

	// Assert
	data, err := os.ReadFile(filepath.Join(dir, "users", filename))
	require.NoError(t, err)
	assert.Equal(t, "expected-content", string(data))
}

func TestPhotoStore_Remove(t *testing.T) {
	// Arrange
	store := NewPhotoStore(t.TempDir())
	file := makeFileHeader(t, "avatar.png", "png-bytes")
	filename, err := store.Save(file, "users")
	require.NoError(t, err)

	// Act
	err = store.Remove("users", filename)

	// Assert
	require.NoError(t, err)
	assert.False(t, store.Exists("users", filename))
}

func TestPhotoStore_RemoveMissingIsNoop(t *testing.T) {
	store := NewPhotoStore(t.TempDir())

	assert.NoError(t, store.Remove("users", "never-existed.png"))
	assert.NoError(t, store.Remove("users", ""))
}
