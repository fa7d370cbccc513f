package main

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vaporis/vaporis-site/internal/config"
)

func TestServerAddsSecurityHeadersOnHealth(t *testing.T) {
	e := newTestServer(t, new(MockStorage))

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "DENY", rec.Header().Get("X-Frame-Options"))
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "media-src 'self' https://abc.supabase.co")
	assert.Contains(t, rec.Header().Get("Content-Security-Policy"), "img-src 'self' data: https: https://abc.supabase.co")
}

func TestServerAllowsImagesFromPlainHTTPMinio(t *testing.T) {
	cfg := testConfig()
	cfg.Storage.Driver = config.DriverMinio
	cfg.Storage.URL = "http://localhost:9000"

	e := newServer(serverDeps{
		Config:   cfg,
		Storage:  new(MockStorage),
		Renderer: &MockRenderer{},
	})

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)

	csp := rec.Header().Get("Content-Security-Policy")
	assert.Contains(t, csp, "img-src 'self' data: https: http://localhost:9000;")
	assert.Contains(t, csp, "media-src 'self' http://localhost:9000;")
}

func TestServerRejectsPostWithoutCSRFToken(t *testing.T) {
	e := newServer(serverDeps{
		Config:   testConfig(),
		Storage:  new(MockStorage),
		Renderer: &MockRenderer{},
	})

	for _, path := range []string{"/teasers/refresh", "/teasers/play", "/contact"} {
		for _, htmx := range []bool{true, false} {
			t.Run(fmt.Sprintf("%s htmx=%t", path, htmx), func(t *testing.T) {
				req := httptest.NewRequest(http.MethodPost, path, nil)
				if htmx {
					req.Header.Set("HX-Request", "true")
				}
				rec := httptest.NewRecorder()
				e.ServeHTTP(rec, req)

				assert.Equal(t, http.StatusBadRequest, rec.Code)
			})
		}
	}
}

func TestPagesIssueSessionCookie(t *testing.T) {
	e := newServer(serverDeps{
		Config:   testConfig(),
		Storage:  new(MockStorage),
		Renderer: &MockRenderer{},
	})

	v := newVisitor()
	rec := v.do(e, httptest.NewRequest(http.MethodGet, "/", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.NotEmpty(t, v.sessionID())
}
