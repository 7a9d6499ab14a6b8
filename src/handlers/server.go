package handlers

import (
	"context"
	"net/http"
	"time"

	"rollout-config/src/models"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// Pinger reports whether the backing store is reachable
type Pinger interface {
	Ping(ctx context.Context) error
}

// ServerOptions configures NewServer
type ServerOptions struct {
	APIPrefix        string
	CORSAllowOrigins []string
	BodyLimit        string
	Store            Pinger
	Rollouts         *RolloutHandler
	Whitelist        *WhitelistHandler
}

// NewServer builds the echo instance with middleware and all routes registered
func NewServer(opts ServerOptions) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HTTPErrorHandler = HTTPErrorHandler

	e.Use(middleware.RequestID())
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())
	e.Use(middleware.CORSWithConfig(middleware.CORSConfig{
		AllowOrigins: opts.CORSAllowOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodOptions, http.MethodPut, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
	}))
	if opts.BodyLimit != "" {
		e.Use(middleware.BodyLimit(opts.BodyLimit))
	}

	e.GET("/health", healthCheck(opts.Store))

	api := e.Group(opts.APIPrefix)

	// Sub-paths are accepted too: /rollouts/anything routes like /rollouts.
	for _, path := range []string{"/rollouts", "/rollouts/*"} {
		api.GET(path, opts.Rollouts.ListRollouts)
		api.POST(path, opts.Rollouts.PutRollout)
	}
	for _, path := range []string{"/whitelist", "/whitelist/*"} {
		api.GET(path, opts.Whitelist.ListWhitelist)
		api.POST(path, opts.Whitelist.PutWhitelist)
		api.DELETE(path, opts.Whitelist.DeleteWhitelist)
	}

	return e
}

func healthCheck(store Pinger) echo.HandlerFunc {
	return func(c echo.Context) error {
		ctx, cancel := context.WithTimeout(c.Request().Context(), 2*time.Second)
		defer cancel()

		if err := store.Ping(ctx); err != nil {
			c.Logger().Errorf("health check failed: %v", err)
			return respond(c, http.StatusServiceUnavailable, models.HealthStatus{
				Status:  "error",
				Backend: "disconnected",
			})
		}

		return respond(c, http.StatusOK, models.HealthStatus{
			Status:  "ok",
			Backend: "connected",
		})
	}
}
