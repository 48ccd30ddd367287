package router

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/dtroode/sessionvault/internal/api/http/handler"
	"github.com/dtroode/sessionvault/internal/api/http/middleware"
	"github.com/dtroode/sessionvault/internal/logger"
	"github.com/dtroode/sessionvault/internal/model"
	"github.com/dtroode/sessionvault/internal/service"
)

// Router assembles the echo instance: handlers, middleware and routes.
type Router struct {
	auth     *handler.Auth
	payment  *handler.Payment
	sessions *service.Session
	store    model.KV
	logger   *logger.Logger
}

func New(auth *handler.Auth, payment *handler.Payment, sessions *service.Session, store model.KV, logger *logger.Logger) *Router {
	return &Router{
		auth:     auth,
		payment:  payment,
		sessions: sessions,
		store:    store,
		logger:   logger,
	}
}

// Register builds the echo instance with all routes attached.
func (r *Router) Register() *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = handler.ErrorHandler

	e.Use(middleware.NewLogging(r.logger).Handle)

	e.GET("/health/live", func(c echo.Context) error { return c.NoContent(http.StatusOK) })
	e.GET("/health/ready", func(c echo.Context) error {
		if err := r.store.Ping(c.Request().Context()); err != nil {
			return c.NoContent(http.StatusServiceUnavailable)
		}
		return c.NoContent(http.StatusOK)
	})

	e.POST("/register", r.auth.Register)
	e.POST("/login", r.auth.Login)
	e.POST("/logout", r.auth.Logout)
	e.POST("/refresh", r.auth.Refresh)

	authMw := middleware.NewAuthenticate(r.sessions, handler.AuthCookieName)
	e.GET("/me", r.auth.Me, authMw.Require)

	e.POST("/payment", r.payment.Initialize)
	e.POST("/payment/:id/process", r.payment.Process)
	e.GET("/payment/:id", r.payment.Status)
	e.DELETE("/payment/:id", r.payment.Clear)

	return e
}
