package service

import (
	"fmt"
	"sync"
	"time"

	"go.uber.org/zap"
)

type StatusLevel string

const (
	StatusInfo    StatusLevel = "info"
	StatusWarning StatusLevel = "warning"
	StatusError   StatusLevel = "error"
	StatusSuccess StatusLevel = "success"
)

// StatusEntry is one line of the user-visible run feed.
type StatusEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	Level     StatusLevel `json:"level"`
	Message   string      `json:"message"`
}

// StatusLog is the append-only, timestamped status feed kept for the whole
// run. Entries are mirrored to the process logger as they arrive. Safe for
// concurrent use by row workers.
type StatusLog struct {
	mu      sync.Mutex
	entries []StatusEntry
	logger  *zap.Logger
}

func NewStatusLog(logger *zap.Logger) *StatusLog {
	return &StatusLog{logger: logger}
}

func (s *StatusLog) Add(level StatusLevel, message string) {
	entry := StatusEntry{
		Timestamp: time.Now(),
		Level:     level,
		Message:   message,
	}

	s.mu.Lock()
	s.entries = append(s.entries, entry)
	s.mu.Unlock()

	switch level {
	case StatusError:
		s.logger.Error(message)
	case StatusWarning:
		s.logger.Warn(message)
	default:
		s.logger.Info(message)
	}
}

func (s *StatusLog) Infof(format string, args ...any) {
	s.Add(StatusInfo, fmt.Sprintf(format, args...))
}

func (s *StatusLog) Warnf(format string, args ...any) {
	s.Add(StatusWarning, fmt.Sprintf(format, args...))
}

func (s *StatusLog) Errorf(format string, args ...any) {
	s.Add(StatusError, fmt.Sprintf(format, args...))
}

func (s *StatusLog) Successf(format string, args ...any) {
	s.Add(StatusSuccess, fmt.Sprintf(format, args...))
}

// Entries returns a copy of the feed so far.
func (s *StatusLog) Entries() []StatusEntry {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]StatusEntry, len(s.entries))
	copy(out, s.entries)
	return out
}
