package service

import (
	"context"
)

// LogLevel of a client log entry.
type LogLevel string

const (
	LogLevelInfo  LogLevel = "info"
	LogLevelWarn  LogLevel = "warn"
	LogLevelError LogLevel = "error"
)

// ClientLogEntry is a log line forwarded to the remote observability sink
type ClientLogEntry struct {
	Level     LogLevel       `json:"level"`
	Message   string         `json:"message"`
	Data      map[string]any `json:"data,omitempty"`
	SessionID string         `json:"session_id,omitempty"`
	RequestID string         `json:"request_id,omitempty"`
}

// ClientLogger forwards log entries to a remote sink. Delivery is best effort:
// implementations never return errors to the caller.
type ClientLogger interface {
	// Log sends entry without blocking the caller on remote failures
	Log(ctx context.Context, entry ClientLogEntry)

	// Close releases any resources held by the logger
	Close() error
}
