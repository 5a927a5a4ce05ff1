package infrastructure

import (
	"context"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/miorlan/datalake-validator/internal/domain"
)

// FileWalker находит JSON-документы озера данных
type FileWalker struct {
	logger domain.Logger
}

// NewFileWalker создает новый FileWalker
func NewFileWalker(logger domain.Logger) domain.FileWalker {
	if logger == nil {
		logger = NopLogger{}
	}
	return &FileWalker{logger: logger}
}

// Walk рекурсивно обходит root и возвращает файлы *.json в порядке обхода.
// Недоступные подкаталоги пропускаются с предупреждением.
// Пути возвращаются относительно переданного root, даже если он символическая ссылка.
func (w *FileWalker) Walk(ctx context.Context, root string) ([]string, error) {
	walkRoot, err := resolveRoot(root)
	if err != nil {
		return nil, err
	}

	var files []string

	err = filepath.WalkDir(walkRoot, func(path string, d fs.DirEntry, err error) error {
		if ctx.Err() != nil {
			return ctx.Err()
		}
		if err != nil {
			if path == walkRoot {
				return err
			}
			w.logger.Warn("skipping unreadable path", "path", path, "error", err)
			if d != nil && d.IsDir() {
				return fs.SkipDir
			}
			return nil
		}
		if d.IsDir() || !domain.IsJSONFile(d.Name()) {
			return nil
		}
		if !isRegularFile(path, d) {
			return nil
		}
		if walkRoot != root {
			rel, err := filepath.Rel(walkRoot, path)
			if err != nil {
				return err
			}
			path = filepath.Join(root, rel)
		}
		files = append(files, path)
		return nil
	})
	if err != nil {
		return nil, err
	}

	w.logger.Info("found JSON files to validate", "count", len(files))
	return files, nil
}

// resolveRoot раскрывает root, если он символическая ссылка:
// WalkDir не спускается в каталог по ссылке на корне
func resolveRoot(root string) (string, error) {
	info, err := os.Lstat(root)
	if err != nil || info.Mode()&fs.ModeSymlink == 0 {
		// Ошибку отсутствующего корня вернет WalkDir
		return root, nil
	}
	target, err := filepath.EvalSymlinks(root)
	if err != nil {
		return "", err
	}
	return target, nil
}

// isRegularFile учитывает символические ссылки на обычные файлы
func isRegularFile(path string, d fs.DirEntry) bool {
	if d.Type().IsRegular() {
		return true
	}
	if d.Type()&fs.ModeSymlink == 0 {
		return false
	}
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
