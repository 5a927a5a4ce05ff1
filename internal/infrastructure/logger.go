package infrastructure

import (
	"log/slog"

	"github.com/miorlan/datalake-validator/internal/domain"
)

// NopLogger отбрасывает все сообщения; используется по умолчанию
type NopLogger struct{}

func (NopLogger) Debug(_ string, _ ...any) {}
func (NopLogger) Info(_ string, _ ...any)  {}
func (NopLogger) Warn(_ string, _ ...any)  {}
func (NopLogger) Error(_ string, _ ...any) {}

func (n NopLogger) With(_ ...any) domain.Logger { return n }

var _ domain.Logger = NopLogger{}

// SlogAdapter оборачивает *slog.Logger в domain.Logger
type SlogAdapter struct {
	logger *slog.Logger
}

// NewSlogAdapter создает адаптер; nil означает slog.Default()
func NewSlogAdapter(logger *slog.Logger) *SlogAdapter {
	if logger == nil {
		logger = slog.Default()
	}
	return &SlogAdapter{logger: logger}
}

func (s *SlogAdapter) Debug(msg string, attrs ...any) { s.logger.Debug(msg, attrs...) }
func (s *SlogAdapter) Info(msg string, attrs ...any)  { s.logger.Info(msg, attrs...) }
func (s *SlogAdapter) Warn(msg string, attrs ...any)  { s.logger.Warn(msg, attrs...) }
func (s *SlogAdapter) Error(msg string, attrs ...any) { s.logger.Error(msg, attrs...) }

func (s *SlogAdapter) With(attrs ...any) domain.Logger {
	return &SlogAdapter{logger: s.logger.With(attrs...)}
}

var _ domain.Logger = (*SlogAdapter)(nil)
