package util

import (
	"fmt"
	"io"
	"mime/multipart"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

// PhotoStore хранит фотографии ресурсов на диске под сгенерированными
// именами. Клиент получает только имя файла; путь выдачи строится
// стороной раздачи статики.
type PhotoStore struct {
	baseDir string
}

func NewPhotoStore(baseDir string) *PhotoStore {
	return &PhotoStore{baseDir: baseDir}
}

// Save записывает загруженный файл в директорию ресурса под именем
// <uuid><ext> и возвращает сгенерированное имя.
func (s *PhotoStore) Save(file *multipart.FileHeader, resource string) (string, error) {
	dir := filepath.Join(s.baseDir, resource)
	if err := os.MkdirAll(dir, os.ModePerm); err != nil {
		return "", fmt.Errorf("failed to create photo directory: %w", err)
	}

	filename := uuid.NewString() + filepath.Ext(file.Filename)

	src, err := file.Open()
	if err != nil {
		return "", fmt.Errorf("failed to open uploaded file: %w", err)
	}
	defer src.Close()

	dst, err := os.Create(filepath.Join(dir, filename))
	if err != nil {
		return "", fmt.Errorf("failed to create photo file: %w", err)
	}
	defer dst.Close()

	if _, err := io.Copy(dst, src); err != nil {
		return "", fmt.Errorf("failed to write photo file: %w", err)
	}

	return filename, nil
}

// Remove удаляет фотографию, если она существует. Отсутствующий файл
// не считается ошибкой.
func (s *PhotoStore) Remove(resource, filename string) error {
	if filename == "" {
		return nil
	}

	err := os.Remove(filepath.Join(s.baseDir, resource, filename))
	if err != nil && !os.IsNotExist(err) {
		return fmt.Errorf("failed to remove photo file: %w", err)
	}

	return nil
}

// Exists сообщает, лежит ли фотография на диске
func (s *PhotoStore) Exists(resource, filename string) bool {
	if filename == "" {
		return false
	}

	_, err := os.Stat(filepath.Join(s.baseDir, resource, filename))
	return err == nil
}
