// Package httpapi is the Echo REST surface over chessgame.Game, grounded on
// the teacher's main.go route wiring and internal/handlers package.
package httpapi

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echomw "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"

	"github.com/treechess/backend/internal/auth"
	"github.com/treechess/backend/internal/config"
	"github.com/treechess/backend/internal/store"
)

// New wires every route and returns a ready-to-start Echo instance.
func New(cfg config.Config, authSvc *auth.Service, games *store.GameStore) *echo.Echo {
	e := echo.New()
	e.HideBanner = true

	e.Use(echomw.Logger())
	e.Use(echomw.Recover())
	e.Use(echomw.CORSWithConfig(echomw.CORSConfig{
		AllowOrigins: cfg.AllowedOrigins,
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPatch, http.MethodDelete},
		AllowHeaders: []string{echo.HeaderOrigin, echo.HeaderContentType, echo.HeaderAccept, echo.HeaderAuthorization},
	}))
	e.Use(securityHeaders)
	e.Use(echomw.BodyLimit("2M"))
	e.Use(echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(
			echomw.RateLimiterMemoryStoreConfig{Rate: rate.Limit(100.0 / 60.0), Burst: 20},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) { return ctx.RealIP(), nil },
		ErrorHandler: func(ctx echo.Context, err error) error {
			return ctx.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		},
		DenyHandler: func(ctx echo.Context, identifier string, err error) error {
			return ctx.JSON(http.StatusTooManyRequests, map[string]string{"error": "rate limit exceeded"})
		},
	}))

	e.GET("/api/health", func(c echo.Context) error {
		return c.JSON(http.StatusOK, map[string]string{"status": "ok", "time": time.Now().UTC().Format(time.RFC3339)})
	})

	ah := &authHandler{svc: authSvc}
	authGroup := e.Group("")
	authGroup.Use(echomw.RateLimiterWithConfig(echomw.RateLimiterConfig{
		Store: echomw.NewRateLimiterMemoryStoreWithConfig(
			echomw.RateLimiterMemoryStoreConfig{Rate: rate.Limit(10.0 / 60.0), Burst: 5},
		),
		IdentifierExtractor: func(ctx echo.Context) (string, error) { return ctx.RealIP(), nil },
		ErrorHandler: func(ctx echo.Context, err error) error {
			return ctx.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many authentication attempts"})
		},
		DenyHandler: func(ctx echo.Context, identifier string, err error) error {
			return ctx.JSON(http.StatusTooManyRequests, map[string]string{"error": "too many authentication attempts"})
		},
	}))
	authGroup.POST("/api/auth/register", ah.register)
	authGroup.POST("/api/auth/login", ah.login)

	protected := e.Group("", jwtAuth(authSvc))
	protected.GET("/api/auth/me", ah.me)

	gh := &gameHandler{games: games}
	eh := &editHandler{games: gh}

	protected.POST("/api/games", gh.create)
	protected.GET("/api/games", gh.list)
	protected.GET("/api/games/:id", gh.get)
	protected.PATCH("/api/games/:id", gh.rename)
	protected.DELETE("/api/games/:id", gh.delete)

	protected.POST("/api/games/:id/moves", eh.addMove)
	protected.POST("/api/games/:id/promote", eh.promote)
	protected.DELETE("/api/games/:id/variations/:nodeId", eh.removeVariation)
	protected.POST("/api/games/:id/variations/:nodeId/move-up", eh.moveVariationUp)
	protected.POST("/api/games/:id/variations/:nodeId/move-down", eh.moveVariationDown)
	protected.POST("/api/games/:id/truncate", eh.truncate)
	protected.PATCH("/api/games/:id/annotations", eh.annotate)
	protected.PATCH("/api/games/:id/tags", eh.setTag)
	protected.POST("/api/games/:id/merge", eh.merge)

	return e
}
