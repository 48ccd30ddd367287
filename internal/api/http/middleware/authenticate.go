package middleware

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionvault/internal/model"
	"github.com/dtroode/sessionvault/internal/service"
)

// UserContextKey is the echo context key the authenticated user is stored
// under.
const UserContextKey = "user"

// Authenticate resolves the auth cookie to a valid session and stores the
// user in the request context. Requests without a valid session are
// rejected.
type Authenticate struct {
	sessions   *service.Session
	cookieName string
}

// NewAuthenticate creates a new Authenticate middleware.
func NewAuthenticate(sessions *service.Session, cookieName string) *Authenticate {
	return &Authenticate{sessions: sessions, cookieName: cookieName}
}

// Require rejects the request unless the cookie resolves to a valid session.
func (a *Authenticate) Require(next echo.HandlerFunc) echo.HandlerFunc {
	return func(c echo.Context) error {
		cookie, err := c.Cookie(a.cookieName)
		if err != nil || cookie.Value == "" {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
		}

		user, err := a.sessions.Validate(c.Request().Context(), cookie.Value)
		if err != nil {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "temporarily unavailable, please try again")
		}
		if user == nil {
			return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
		}

		c.Set(UserContextKey, *user)
		return next(c)
	}
}

// UserFromContext returns the authenticated user stored by Require.
func UserFromContext(c echo.Context) (model.AuthenticatedUser, bool) {
	user, ok := c.Get(UserContextKey).(model.AuthenticatedUser)
	return user, ok
}
