package middleware

import (
	"strconv"

	"github.com/labstack/echo/v4"
)

// Context keys set by the middleware in this package.
const (
	CustomerIDKey = "customer_id"
	RoleKey       = "role"
	RequestIDKey  = "request_id"
)

// CustomerID returns the authenticated customer's id as stored by JWTAuth.
// The second result is false for anonymous requests.
func CustomerID(c echo.Context) (uint64, bool) {
	id, ok := c.Get(CustomerIDKey).(uint64)
	return id, ok && id != 0
}

// subjectKey identifies the caller for rate limiting and logging.  Anonymous
// callers share the "anon" bucket component.
func subjectKey(c echo.Context) string {
	if id, ok := CustomerID(c); ok {
		return strconv.FormatUint(id, 10)
	}
	return "anon"
}
