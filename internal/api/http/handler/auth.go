package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionvault/internal/api/http/middleware"
	"github.com/dtroode/sessionvault/internal/logger"
	"github.com/dtroode/sessionvault/internal/model"
	"github.com/dtroode/sessionvault/internal/service"
)

// Auth exposes registration, login, logout, refresh and current-user
// endpoints over the account registry and session manager.
type Auth struct {
	accounts      *service.Account
	sessions      *service.Session
	tokens        model.TokenManager
	secureCookies bool
	logger        *logger.Logger
}

func NewAuth(accounts *service.Account, sessions *service.Session, tokens model.TokenManager, secureCookies bool, logger *logger.Logger) *Auth {
	return &Auth{
		accounts:      accounts,
		sessions:      sessions,
		tokens:        tokens,
		secureCookies: secureCookies,
		logger:        logger.Component("auth_handler"),
	}
}

type registerRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
	Email    string `json:"email"`
}

func (h *Auth) Register(c echo.Context) error {
	ctx := c.Request().Context()

	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}

	user, err := h.accounts.Register(ctx, req.Username, req.Password, req.Email)
	if err != nil {
		return handleError(err)
	}

	return c.JSON(http.StatusCreated, user)
}

type loginRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

func (h *Auth) Login(c echo.Context) error {
	ctx := c.Request().Context()

	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid body")
	}
	if req.Username == "" || req.Password == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "username and password are required")
	}

	user, err := h.accounts.Authenticate(ctx, req.Username, req.Password)
	if err != nil {
		return handleError(err)
	}

	_, tokenString, err := h.sessions.Start(ctx, user)
	if err != nil {
		return handleError(err)
	}

	c.SetCookie(newAuthCookie(tokenString, h.secureCookies))

	return c.JSON(http.StatusOK, echo.Map{
		"user":    user,
		"message": "Login successful",
	})
}

// Logout ends the session named by the cookie, if any, and clears the
// cookie either way.
func (h *Auth) Logout(c echo.Context) error {
	ctx := c.Request().Context()

	if cookie, err := c.Cookie(AuthCookieName); err == nil && cookie.Value != "" {
		// Unverified decode is enough here: we only need the session id to
		// delete the record, and deleting is never an authorization grant.
		if claims, err := h.tokens.DecodeUnverified(cookie.Value); err == nil && claims.SessionID != "" {
			if err := h.sessions.End(ctx, claims.SessionID); err != nil {
				h.logger.Error("failed to end session on logout", "error", err.Error())
			}
		}
	}

	c.SetCookie(expiredAuthCookie(h.secureCookies))

	return c.JSON(http.StatusOK, echo.Map{"message": "Logged out successfully"})
}

// Refresh mints a replacement token for the session named by the cookie and
// re-sets the cookie.
func (h *Auth) Refresh(c echo.Context) error {
	ctx := c.Request().Context()

	cookie, err := c.Cookie(AuthCookieName)
	if err != nil || cookie.Value == "" {
		return handleError(model.ErrNoActiveToken)
	}

	newToken, err := h.sessions.Refresh(ctx, cookie.Value)
	if err != nil {
		return handleError(err)
	}

	c.SetCookie(newAuthCookie(newToken, h.secureCookies))

	return c.JSON(http.StatusOK, echo.Map{"message": "Token refreshed successfully"})
}

// Me returns the user data for the current valid session. The session is
// resolved by the authenticate middleware.
func (h *Auth) Me(c echo.Context) error {
	user, ok := middleware.UserFromContext(c)
	if !ok {
		return echo.NewHTTPError(http.StatusUnauthorized, "not authenticated")
	}

	return c.JSON(http.StatusOK, user)
}
