// Package storage сохраняет загруженные логотипы на диск.
package storage

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/cafe-employee-api/internal/dto"
	"github.com/gabriel-vasile/mimetype"
	"github.com/google/uuid"
)

// FileStorage определяет интерфейс хранилища файлов
type FileStorage interface {
	// Save сохраняет файл и возвращает путь, по которому он раздаётся
	Save(file *dto.UploadedFile) (string, error)
	// Remove удаляет ранее сохранённый файл; отсутствие файла не ошибка
	Remove(storedPath string) error
}

// Local хранит файлы в каталоге на диске
type Local struct {
	dir       string
	urlPrefix string
}

// NewLocal создаёт хранилище в dir; файлы раздаются с префиксом urlPrefix
func NewLocal(dir, urlPrefix string) (*Local, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create upload directory: %w", err)
	}
	return &Local{
		dir:       dir,
		urlPrefix: "/" + strings.Trim(urlPrefix, "/"),
	}, nil
}

// Dir возвращает каталог хранилища
func (s *Local) Dir() string {
	return s.dir
}

func (s *Local) Save(file *dto.UploadedFile) (string, error) {
	if file == nil || file.Content == nil {
		return "", errors.New("no file content")
	}

	ext := strings.ToLower(filepath.Ext(file.Filename))
	name := "logo-" + uuid.NewString() + ext

	dst, err := os.OpenFile(filepath.Join(s.dir, name), os.O_CREATE|os.O_EXCL|os.O_WRONLY, 0o644)
	if err != nil {
		return "", fmt.Errorf("failed to create file: %w", err)
	}

	if _, err := io.Copy(dst, file.Content); err != nil {
		dst.Close()
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to save file: %w", err)
	}
	if err := dst.Close(); err != nil {
		os.Remove(dst.Name())
		return "", fmt.Errorf("failed to save file: %w", err)
	}

	return path.Join(s.urlPrefix, name), nil
}

func (s *Local) Remove(storedPath string) error {
	if storedPath == "" {
		return nil
	}
	name := path.Base(storedPath)
	if name == "." || name == "/" {
		return nil
	}
	err := os.Remove(filepath.Join(s.dir, name))
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}
	return nil
}

// DetectContentType определяет MIME-тип по содержимому и возвращает
// позицию чтения в начало
func DetectContentType(r io.ReadSeeker) (string, error) {
	mt, err := mimetype.DetectReader(r)
	if err != nil {
		return "", err
	}
	if _, err := r.Seek(0, io.SeekStart); err != nil {
		return "", err
	}
	return mt.String(), nil
}
