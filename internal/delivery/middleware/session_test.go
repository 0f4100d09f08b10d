package middleware

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	deliverycontext "cambaeats/internal/delivery/context"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func runChain(t *testing.T, req *http.Request) (captured echo.Context, rec *httptest.ResponseRecorder) {
	t.Helper()

	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	e := echo.New()
	rec = httptest.NewRecorder()
	c := e.NewContext(req, rec)

	handler := NewRequestIDMiddleware(logger).Process(
		NewSessionMiddleware(logger).Process(func(c echo.Context) error {
			captured = c

			return c.NoContent(http.StatusNoContent)
		}),
	)
	require.NoError(t, handler(c))

	return captured, rec
}

func TestSessionMiddleware(t *testing.T) {
	tests := []struct {
		name   string
		header string
		query  string
		want   string
	}{
		{name: "header kept", header: "abc-123_XYZ", want: "abc-123_XYZ"},
		{name: "query fallback", query: "from-query", want: "from-query"},
		{name: "path traversal replaced", header: "../../etc/passwd"},
		{name: "missing minted"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			target := "/api/v1/cart"
			if tt.query != "" {
				target += "?" + QuerySessionID + "=" + tt.query
			}
			req := httptest.NewRequest(http.MethodGet, target, nil)
			if tt.header != "" {
				req.Header.Set(deliverycontext.HeaderXSessionID, tt.header)
			}

			c, rec := runChain(t, req)

			got := deliverycontext.GetSessionID(c)
			assert.True(t, ValidSessionID(got))
			if tt.want != "" {
				assert.Equal(t, tt.want, got)
			} else {
				assert.NotEqual(t, tt.header, got)
			}
			assert.Equal(t, got, rec.Header().Get(deliverycontext.HeaderXSessionID))
			assert.Equal(t, got, deliverycontext.GetSessionIDFromContext(c.Request().Context()))
			assert.NotNil(t, deliverycontext.GetLogger(c.Request().Context()))
		})
	}
}

func TestRequestIDMiddleware_ReusesHeader(t *testing.T) {
	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	req.Header.Set(deliverycontext.HeaderXRequestID, "req-42")

	c, rec := runChain(t, req)

	assert.Equal(t, "req-42", deliverycontext.GetRequestID(c))
	assert.Equal(t, "req-42", deliverycontext.GetRequestIDFromContext(c.Request().Context()))
	assert.Equal(t, "req-42", rec.Header().Get(deliverycontext.HeaderXRequestID))
}
