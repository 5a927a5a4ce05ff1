package infrastructure

import "fmt"

// ErrFileNotFound возникает когда локальный файл не найден
// Это техническая ошибка инфраструктуры (файловая система, HTTP)
type ErrFileNotFound struct {
	Path string
}

func (e *ErrFileNotFound) Error() string {
	return fmt.Sprintf("file not found: %s", e.Path)
}

// ErrHTTPStatus возникает когда сервер ответил статусом вне диапазона 2xx
type ErrHTTPStatus struct {
	URL        string
	StatusCode int
	Status     string
}

func (e *ErrHTTPStatus) Error() string {
	return fmt.Sprintf("HTTP error fetching %s: %s", e.URL, e.Status)
}
