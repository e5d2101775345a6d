package storage

import (
	"context"
	"io"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// FileStorage keeps uploaded files under slash-separated keys.
type FileStorage interface {
	Save(ctx context.Context, key string, data io.Reader, contentType string) error
	Delete(ctx context.Context, key string) error
	Exists(ctx context.Context, key string) bool
	// URL is where clients fetch the stored key from.
	URL(key string) string
}

type localStorage struct {
	basePath string
	baseURL  string
}

// NewLocalStorage writes under basePath; files are served from baseURL.
func NewLocalStorage(basePath, baseURL string) FileStorage {
	return &localStorage{basePath: basePath, baseURL: strings.TrimRight(baseURL, "/")}
}

func (s *localStorage) fullPath(key string) string {
	// path.Clean on a rooted key keeps ".." from escaping basePath
	return filepath.Join(s.basePath, filepath.FromSlash(path.Clean("/"+key)))
}

func (s *localStorage) Save(_ context.Context, key string, data io.Reader, _ string) error {
	fullPath := s.fullPath(key)

	// Создаем директорию если нужно
	if err := os.MkdirAll(filepath.Dir(fullPath), 0755); err != nil {
		return err
	}

	file, err := os.Create(fullPath)
	if err != nil {
		return err
	}
	defer file.Close()

	_, err = io.Copy(file, data)
	return err
}

func (s *localStorage) Delete(_ context.Context, key string) error {
	return os.Remove(s.fullPath(key))
}

func (s *localStorage) Exists(_ context.Context, key string) bool {
	_, err := os.Stat(s.fullPath(key))
	return err == nil
}

func (s *localStorage) URL(key string) string {
	return s.baseURL + path.Clean("/"+key)
}
