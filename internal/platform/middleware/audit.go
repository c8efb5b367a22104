package middleware

import (
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/practicekit/practicekit/internal/platform/auth"
)

// AuditEntry represents an audit log entry produced by the middleware.
// It captures who accessed what, when, from where, and the action type.
type AuditEntry struct {
	UserID     string
	UserRoles  []string
	Resource   string
	Token      string // redacted intake token, when present in the path
	Action     string // read, create, update, delete
	IPAddress  string
	UserAgent  string
	Path       string
	Method     string
	Timestamp  time.Time
	RequestID  string
	StatusCode int
}

// AuditRecorder is the interface that the audit middleware uses to persist
// audit entries. This decouples the middleware from any concrete store so
// that tests can provide a mock implementation.
type AuditRecorder interface {
	RecordAccess(entry AuditEntry) error
}

// AuditRecorderFunc is a function adapter for AuditRecorder.
type AuditRecorderFunc func(entry AuditEntry) error

func (f AuditRecorderFunc) RecordAccess(entry AuditEntry) error {
	return f(entry)
}

// Audit returns Echo middleware that intercepts requests to /api/v1/* and
// /api/intake/*, extracts the authenticated user from JWT claims, determines
// the resource from the URL path, and logs access to client intake data.
//
// Intake link tokens appearing in paths are redacted to their first eight
// characters so that audit logs never contain a usable access token.
//
// If no AuditRecorder is provided, it falls back to structured zerolog logging.
func Audit(logger zerolog.Logger, recorders ...AuditRecorder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			req := c.Request()
			path := req.URL.Path

			if !isAuditablePath(path) {
				return next(c)
			}

			// Execute the handler first so we capture the response status
			err := next(c)

			entry := AuditEntry{
				Timestamp:  time.Now().UTC(),
				Path:       path,
				Method:     req.Method,
				IPAddress:  c.RealIP(),
				UserAgent:  req.UserAgent(),
				StatusCode: c.Response().Status,
			}

			// Extract authenticated user from JWT claims via context.
			// Public intake routes have no user; the entry still records
			// the token and remote address.
			ctx := req.Context()
			entry.UserID = auth.UserIDFromContext(ctx)
			entry.UserRoles = auth.RolesFromContext(ctx)

			if rid, ok := c.Get("request_id").(string); ok {
				entry.RequestID = rid
			}

			entry.Action = httpMethodToAction(req.Method)
			entry.Resource = extractResource(path)
			entry.Token = redactToken(extractIntakeToken(path))

			if len(recorders) > 0 && recorders[0] != nil {
				if recErr := recorders[0].RecordAccess(entry); recErr != nil {
					logger.Error().Err(recErr).
						Str("request_id", entry.RequestID).
						Msg("failed to record audit entry")
				}
			}

			// Always emit a structured log for the audit trail
			logger.Info().
				Str("type", "access_audit").
				Str("request_id", entry.RequestID).
				Str("user_id", entry.UserID).
				Strs("user_roles", entry.UserRoles).
				Str("resource", entry.Resource).
				Str("token", entry.Token).
				Str("action", entry.Action).
				Str("method", entry.Method).
				Str("path", entry.Path).
				Str("remote_ip", entry.IPAddress).
				Int("status", entry.StatusCode).
				Msg("client_data_access")

			return err
		}
	}
}

// isAuditablePath returns true if the path is under /api/v1/ or /api/intake/.
func isAuditablePath(path string) bool {
	return strings.HasPrefix(path, "/api/v1/") || strings.HasPrefix(path, "/api/intake/")
}

// httpMethodToAction maps HTTP methods to audit action codes.
func httpMethodToAction(method string) string {
	switch method {
	case http.MethodGet, http.MethodHead:
		return "read"
	case http.MethodPost:
		return "create"
	case http.MethodPut, http.MethodPatch:
		return "update"
	case http.MethodDelete:
		return "delete"
	default:
		return "read"
	}
}

// extractResource parses the resource name from a URL path.
//
// Supported patterns:
//   - /api/v1/tracks            -> tracks
//   - /api/v1/assessments/phq-9 -> assessments
//   - /api/intake/form/<token>  -> form
func extractResource(path string) string {
	var segments []string
	switch {
	case strings.HasPrefix(path, "/api/v1/"):
		segments = strings.Split(strings.TrimPrefix(path, "/api/v1/"), "/")
	case strings.HasPrefix(path, "/api/intake/"):
		segments = strings.Split(strings.TrimPrefix(path, "/api/intake/"), "/")
	default:
		return ""
	}
	if len(segments) > 0 && segments[0] != "" {
		return segments[0]
	}
	return "unknown"
}

// tokenBearingOps are the intake operations whose next path segment is a
// link token.
var tokenBearingOps = map[string]bool{
	"form":              true,
	"submit":            true,
	"submit-assessment": true,
	"complete":          true,
}

// extractIntakeToken returns the raw link token from an intake path, or
// empty when the path carries none.
func extractIntakeToken(path string) string {
	if !strings.HasPrefix(path, "/api/intake/") {
		return ""
	}
	segments := strings.Split(strings.TrimPrefix(path, "/api/intake/"), "/")
	if len(segments) >= 2 && tokenBearingOps[segments[0]] {
		return segments[1]
	}
	return ""
}

// redactToken truncates a link token for logging. Tokens are bearer
// credentials; only a prefix is kept so entries can be correlated.
func redactToken(token string) string {
	if token == "" {
		return ""
	}
	if len(token) <= 8 {
		return token
	}
	return token[:8] + "..."
}
