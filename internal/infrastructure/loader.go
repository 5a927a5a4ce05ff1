package infrastructure

import (
	"context"
	"errors"
	"fmt"
	"io"
	"io/fs"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"time"

	"github.com/miorlan/datalake-validator/internal/domain"
)

// DefaultHTTPTimeout ограничивает загрузку спецификации по URL
const DefaultHTTPTimeout = 30 * time.Second

// FileLoader реализует загрузку файлов (локальных и по HTTP)
type FileLoader struct {
	client *http.Client
}

// NewFileLoader создает новый FileLoader
func NewFileLoader() domain.FileLoader {
	return NewFileLoaderWithTimeout(DefaultHTTPTimeout)
}

// NewFileLoaderWithTimeout создает новый FileLoader с указанным таймаутом
func NewFileLoaderWithTimeout(timeout time.Duration) domain.FileLoader {
	return &FileLoader{
		client: &http.Client{
			Timeout: timeout,
		},
	}
}

// IsURL определяет URL только по синтаксису: нужны и схема, и хост
func IsURL(location string) bool {
	u, err := url.Parse(location)
	if err != nil {
		return false
	}
	return u.Scheme != "" && u.Host != ""
}

// Load загружает файл с локального диска или по HTTP
func (fl *FileLoader) Load(ctx context.Context, path string) ([]byte, error) {
	// Проверяем контекст
	if ctx.Err() != nil {
		return nil, ctx.Err()
	}

	if IsURL(path) {
		return fl.loadHTTP(ctx, path)
	}
	return fl.loadFile(path)
}

// loadFile читает локальный файл
func (fl *FileLoader) loadFile(path string) ([]byte, error) {
	cleanPath := filepath.Clean(path)
	if !filepath.IsAbs(cleanPath) {
		absPath, err := filepath.Abs(cleanPath)
		if err != nil {
			return nil, fmt.Errorf("invalid path: %w", err)
		}
		cleanPath = absPath
	}

	data, err := os.ReadFile(cleanPath)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &ErrFileNotFound{Path: cleanPath}
		}
		return nil, err
	}
	return data, nil
}

// loadHTTP загружает файл по HTTP
func (fl *FileLoader) loadHTTP(ctx context.Context, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create request: %w", err)
	}

	resp, err := fl.client.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch HTTP resource: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, &ErrHTTPStatus{URL: url, StatusCode: resp.StatusCode, Status: resp.Status}
	}

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read HTTP response: %w", err)
	}

	return data, nil
}
