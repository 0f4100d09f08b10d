package clientlog

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"cambaeats/internal/domain/service"
)

const sendTimeout = 5 * time.Second

// logSender delivers one entry to the backend log collector.
type logSender interface {
	SendClientLog(ctx context.Context, entry service.ClientLogEntry) error
}

// httpLogger posts entries to the backend in the background
type httpLogger struct {
	sender logSender
	logger *slog.Logger
	wg     sync.WaitGroup
}

// NewHTTPLogger creates a ClientLogger posting to the backend
func NewHTTPLogger(sender logSender, logger *slog.Logger) service.ClientLogger {
	return &httpLogger{
		sender: sender,
		logger: logger,
	}
}

func (l *httpLogger) Log(ctx context.Context, entry service.ClientLogEntry) {
	// The request may end before delivery.
	sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), sendTimeout)

	l.wg.Add(1)
	go func() {
		defer l.wg.Done()
		defer cancel()

		if err := l.sender.SendClientLog(sendCtx, entry); err != nil {
			l.logger.Warn("[HTTPClientLog] Failed to deliver client log",
				slog.String("message", entry.Message),
				slog.Any("error", err),
			)
		}
	}()
}

// Close waits for in-flight deliveries
func (l *httpLogger) Close() error {
	l.wg.Wait()

	return nil
}
