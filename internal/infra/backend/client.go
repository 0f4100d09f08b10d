// Package backend is the REST client of the CambaEats backend API.
package backend

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"

	"cambaeats/config"
	deliverycontext "cambaeats/internal/delivery/context"
	"cambaeats/internal/domain/service"

	"github.com/pkg/errors"
	"go.uber.org/fx"
)

// ErrInvalidResponse is returned when a success response carries malformed JSON.
var ErrInvalidResponse = errors.New("invalid response from backend")

// StatusError is a non-2xx backend response other than 404.
type StatusError struct {
	Method     string
	Path       string
	StatusCode int
	Body       string
}

func (e *StatusError) Error() string {
	if e.Body == "" {
		return fmt.Sprintf("%s %s: status %d", e.Method, e.Path, e.StatusCode)
	}

	return fmt.Sprintf("%s %s: status %d: %s", e.Method, e.Path, e.StatusCode, e.Body)
}

// Client talks to the backend over HTTP and implements the cart, catalog and
// order ports.
type Client struct {
	baseURL    string
	httpClient *http.Client
	logger     *slog.Logger
}

// ClientParams holds dependencies for Client, injected by Fx
type ClientParams struct {
	fx.In

	Config     *config.Config
	Logger     *slog.Logger
	HTTPClient *http.Client `optional:"true"`
}

// NewClient creates a backend client for the configured base URL
func NewClient(params ClientParams) *Client {
	httpClient := params.HTTPClient
	if httpClient == nil {
		httpClient = &http.Client{
			Timeout: params.Config.Backend.Timeout,
		}
	}

	return &Client{
		baseURL:    strings.TrimRight(params.Config.Backend.BaseURL, "/"),
		httpClient: httpClient,
		logger:     params.Logger,
	}
}

// do sends body as JSON and decodes the response into out. An empty success
// body leaves out untouched.
func (c *Client) do(ctx context.Context, method, path string, body, out any) error {
	var reader io.Reader
	if body != nil {
		payload, err := json.Marshal(body)
		if err != nil {
			return errors.WithStack(err)
		}
		reader = bytes.NewReader(payload)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return errors.WithStack(err)
	}
	req.Header.Set("Accept", "application/json")
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if requestID := deliverycontext.GetRequestIDFromContext(ctx); requestID != "" {
		req.Header.Set(deliverycontext.HeaderXRequestID, requestID)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return errors.Wrapf(err, "%s %s", method, path)
	}
	defer resp.Body.Close()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return errors.Wrapf(err, "%s %s: read body", method, path)
	}

	deliverycontext.GetLoggerOrDefault(ctx, c.logger).Debug("Backend call",
		slog.String("method", method),
		slog.String("path", path),
		slog.Int("status", resp.StatusCode),
	)

	if resp.StatusCode == http.StatusNotFound {
		return errors.Wrapf(service.ErrNotFound, "%s %s", method, path)
	}
	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return errors.WithStack(&StatusError{
			Method:     method,
			Path:       path,
			StatusCode: resp.StatusCode,
			Body:       strings.TrimSpace(string(data)),
		})
	}

	if out == nil || len(bytes.TrimSpace(data)) == 0 {
		return nil
	}
	if err := json.Unmarshal(data, out); err != nil {
		return errors.Wrapf(ErrInvalidResponse, "%s %s: %v", method, path, err)
	}

	return nil
}

// Module provides the backend client as the cart, catalog and order ports
//
//nolint:gochecknoglobals
var Module = fx.Options(
	fx.Provide(
		NewClient,
		func(c *Client) service.CartGateway { return c },
		func(c *Client) service.ProductCatalog { return c },
		func(c *Client) service.OrderGateway { return c },
	),
)
