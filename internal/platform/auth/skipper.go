package auth

import (
	"github.com/labstack/echo/v4"
)

// publicPaths lists route patterns that should bypass authentication. These
// are infrastructure endpoints (health checks) and the token-gated intake
// endpoints, which clients reach through an emailed link without an account.
// Intake paths are echo route patterns, matched against c.Path().
var publicPaths = map[string]bool{
	"/health":    true,
	"/health/db": true,

	"/api/intake/form/:token":              true,
	"/api/intake/submit/:token":            true,
	"/api/intake/submit-assessment/:token": true,
	"/api/intake/complete/:token":          true,
}

// AuthSkipper returns true for requests whose route should skip
// authentication. Pass this function as the Skipper on JWTConfig or
// DevAuthMiddleware so that health-check and intake link endpoints remain
// accessible without a bearer token. Tenant resolution still applies to
// intake routes; the tenant comes from the X-Tenant-ID header or the
// configured default.
func AuthSkipper(c echo.Context) bool {
	return publicPaths[c.Path()]
}

// IsPublicPath reports whether the given route pattern is a public endpoint
// that should bypass auth middleware.
func IsPublicPath(path string) bool {
	return publicPaths[path]
}
