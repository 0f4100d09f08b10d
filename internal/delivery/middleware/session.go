package middleware

import (
	"log/slog"
	"regexp"

	deliverycontext "cambaeats/internal/delivery/context"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
)

// QuerySessionID lets clients that cannot set headers (EventSource) pass the session.
const QuerySessionID = "sessionId"

// Session ids end up in storage keys, so only a conservative alphabet is accepted.
var sessionIDPattern = regexp.MustCompile(`^[A-Za-z0-9_-]{1,64}$`)

// SessionMiddleware binds each request to a client session owning one cart.
type SessionMiddleware struct {
	logger *slog.Logger
}

// NewSessionMiddleware creates a new session middleware
func NewSessionMiddleware(logger *slog.Logger) *SessionMiddleware {
	return &SessionMiddleware{
		logger: logger,
	}
}

// Process reads X-Session-Id (or the sessionId query parameter), mints a new id
// when it is missing or malformed and echoes it in the response header.
func (m *SessionMiddleware) Process(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		sessionID := c.Request().Header.Get(deliverycontext.HeaderXSessionID)
		if sessionID == "" {
			sessionID = c.QueryParam(QuerySessionID)
		}

		if !ValidSessionID(sessionID) {
			if sessionID != "" {
				m.logger.Debug("Replacing malformed session id", slog.Int("length", len(sessionID)))
			}
			sessionID = uuid.NewString()
		}

		deliverycontext.SetSessionID(c, sessionID)
		c.Response().Header().Set(deliverycontext.HeaderXSessionID, sessionID)

		ctx := c.Request().Context()
		ctx = deliverycontext.WithSessionID(ctx, sessionID)
		if reqLogger := deliverycontext.GetLogger(ctx); reqLogger != nil {
			ctx = deliverycontext.WithLogger(ctx, reqLogger.With(slog.String("session_id", sessionID)))
		}
		c.SetRequest(c.Request().WithContext(ctx))

		return next(c)
	}
}

// ValidSessionID reports whether id is safe to use as a session identifier.
func ValidSessionID(id string) bool {
	return sessionIDPattern.MatchString(id)
}
