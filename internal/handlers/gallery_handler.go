package handlers

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vaporis/vaporis-site/internal/gallery"
	"github.com/vaporis/vaporis-site/internal/metrics"
	"go.uber.org/zap"
)

type GalleryHandler struct {
	sessions *gallery.Sessions
	log      *zap.Logger
}

func NewGalleryHandler(sessions *gallery.Sessions, log *zap.Logger) *GalleryHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &GalleryHandler{sessions: sessions, log: log}
}

// Show loads the visitor's gallery and renders it. Called once when the page mounts.
func (h *GalleryHandler) Show(c echo.Context) error {
	g, err := h.gallery(c)
	if err != nil {
		return err
	}

	h.load(c, g, "mount")
	return h.render(c, g)
}

// Refresh re-runs the listing. Concurrent refreshes are allowed; the last one to finish wins.
func (h *GalleryHandler) Refresh(c echo.Context) error {
	g, err := h.gallery(c)
	if err != nil {
		return err
	}

	h.load(c, g, "refresh")
	return h.render(c, g)
}

// TogglePlayback switches the single playing video and re-renders without refetching
func (h *GalleryHandler) TogglePlayback(c echo.Context) error {
	g, err := h.gallery(c)
	if err != nil {
		return err
	}

	name := c.FormValue("name")
	if name == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "Video name is required")
	}

	if _, err := g.TogglePlayback(name); err != nil {
		if errors.Is(err, gallery.ErrUnknownItem) {
			return echo.NewHTTPError(http.StatusNotFound, "Video not found")
		}
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to toggle playback")
	}
	return h.render(c, g)
}

func (h *GalleryHandler) load(c echo.Context, g *gallery.Gallery, trigger string) {
	status := g.Load(c.Request().Context())
	if status == gallery.StatusError {
		h.log.Warn("Teaser gallery failed to load", zap.String("trigger", trigger), zap.Error(g.Err()))
		return
	}
	h.log.Debug("Teaser gallery loaded",
		zap.String("trigger", trigger),
		zap.String("status", string(status)),
		zap.String("playing", g.Playing()),
	)
}

func (h *GalleryHandler) gallery(c echo.Context) (*gallery.Gallery, error) {
	id, err := GetSessionID(c)
	if err != nil {
		return nil, err
	}
	g, _ := h.sessions.Get(id)
	return g, nil
}

func (h *GalleryHandler) render(c echo.Context, g *gallery.Gallery) error {
	view := g.View()
	for _, item := range view.Items {
		metrics.RecordCardRendered(string(item.Kind))
	}
	return c.Render(http.StatusOK, "teaser_gallery", view)
}
