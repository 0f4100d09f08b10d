package backend

import (
	"context"
	"net/http"

	"cambaeats/internal/domain/service"
)

// SendClientLog posts entry to the backend log collector
func (c *Client) SendClientLog(ctx context.Context, entry service.ClientLogEntry) error {
	data := make(map[string]any, len(entry.Data)+2)
	for k, v := range entry.Data {
		data[k] = v
	}
	if entry.SessionID != "" {
		data["session_id"] = entry.SessionID
	}
	if entry.RequestID != "" {
		data["request_id"] = entry.RequestID
	}

	return c.do(ctx, http.MethodPost, "/logs/client", clientLogRequest{
		Level:   string(entry.Level),
		Message: entry.Message,
		Data:    data,
	}, nil)
}
