package main

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"github.com/vaporis/vaporis-site/internal/config"
	"github.com/vaporis/vaporis-site/internal/gallery"
	"github.com/vaporis/vaporis-site/internal/handlers"
	"github.com/vaporis/vaporis-site/internal/metrics"
	customMiddleware "github.com/vaporis/vaporis-site/internal/middleware"
	"github.com/vaporis/vaporis-site/internal/site"
	"go.uber.org/zap"
)

type serverDeps struct {
	Config   *config.Config
	Storage  gallery.Source
	Renderer echo.Renderer
	Logger   *zap.Logger
}

func newServer(deps serverDeps) *echo.Echo {
	cfg := deps.Config
	logg := deps.Logger
	if logg == nil {
		logg = zap.NewNop()
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	// Gallery state is per visitor
	sessions := gallery.NewSessions(cfg.Server.SessionTTL, cfg.Server.MaxSessions, func() *gallery.Gallery {
		return gallery.New(deps.Storage, cfg.Storage.Bucket, cfg.Storage.Folder)
	})
	galleryHandler := handlers.NewGalleryHandler(sessions, logg)
	siteHandler := handlers.NewSiteHandler(
		site.DefaultContent(cfg.Site.ContactEmail),
		site.ResolveHero(deps.Storage, cfg.Storage.Bucket, cfg.Site),
		logg,
	)

	// Middleware
	e.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogStatus:   true,
		LogURI:      true,
		LogMethod:   true,
		LogLatency:  true,
		LogError:    true,
		HandleError: true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency),
			}
			if v.Error != nil {
				logg.Warn("Request failed", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logg.Info("Request", fields...)
			return nil
		},
	}))
	e.Use(middleware.Recover())
	e.Use(metrics.Middleware())
	e.Use(customMiddleware.SecurityHeaders(mediaOrigins(cfg)...))
	e.Use(customMiddleware.CSRF())

	// Template Renderer
	e.Renderer = deps.Renderer

	session := customMiddleware.Session()

	e.GET("/health", func(c echo.Context) error {
		return c.String(http.StatusOK, "OK")
	})
	e.GET("/metrics", echo.WrapHandler(metrics.Handler()))
	e.Static("/static", cfg.Server.StaticDir)

	e.GET("/", siteHandler.Home, session)
	e.POST("/contact", siteHandler.Contact, session)

	// Teaser gallery partials
	e.GET("/teasers", galleryHandler.Show, session)
	e.POST("/teasers/refresh", galleryHandler.Refresh, session)
	e.POST("/teasers/play", galleryHandler.TogglePlayback, session)

	return e
}

// mediaOrigins are the origins media previews are loaded from
func mediaOrigins(cfg *config.Config) []string {
	if origin := customMiddleware.OriginOf(cfg.Storage.URL); origin != "" {
		return []string{origin}
	}
	// minio endpoints may be configured as host:port
	if cfg.Storage.URL != "" {
		return []string{"http://" + cfg.Storage.URL, "https://" + cfg.Storage.URL}
	}
	return nil
}
