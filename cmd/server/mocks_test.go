package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"github.com/vaporis/vaporis-site/internal/config"
	"github.com/vaporis/vaporis-site/internal/models"
	"github.com/vaporis/vaporis-site/internal/renderer"
	"github.com/vaporis/vaporis-site/internal/services"
	"github.com/vaporis/vaporis-site/internal/utils"
)

// MockStorage implements gallery.Source for testing
type MockStorage struct {
	mock.Mock
}

func (m *MockStorage) ListObjects(ctx context.Context, bucket, folder string) services.ListResult {
	args := m.Called(ctx, bucket, folder)
	return args.Get(0).(services.ListResult)
}

func (m *MockStorage) PublicURL(bucket, objectPath string) string {
	return "https://abc.supabase.co/storage/v1/object/public/" + bucket + "/" + objectPath
}

// MockRenderer implements echo.Renderer for testing
type MockRenderer struct{}

func (r *MockRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return nil // Successfully "rendered" nothing
}

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Port:      "8080",
			ViewsDir:  "../../views",
			StaticDir: "../../static",
		},
		Storage: config.StorageConfig{
			Driver: config.DriverSupabase,
			URL:    "https://abc.supabase.co",
			Key:    "anon",
			Bucket: "teaser",
		},
		Site: config.SiteConfig{
			HeroVideo: "teaser-video.mp4",
			YouTubeID: "r3id79qqaro",
		},
	}
}

func teaserListing() services.ListResult {
	return services.ListResult{Objects: []models.StorageObjectRecord{
		{Name: "clip.mp4", Metadata: models.ObjectMetadata{MimeType: "video/mp4", Size: 0}},
		{Name: ".hidden", Metadata: models.ObjectMetadata{MimeType: "image/png", Size: 10}},
		{Name: "cover.png", Metadata: models.ObjectMetadata{MimeType: "image/png", Size: 2048}},
	}}
}

// newTestServer builds the full server with the real templates
func newTestServer(t *testing.T, storage *MockStorage) *echo.Echo {
	t.Helper()
	cfg := testConfig()
	rend, err := renderer.New(cfg.Server.ViewsDir)
	require.NoError(t, err)

	return newServer(serverDeps{
		Config:   cfg,
		Storage:  storage,
		Renderer: rend,
	})
}

// visitor replays cookies between requests the way a browser would
type visitor struct {
	cookies map[string]*http.Cookie
}

func newVisitor() *visitor {
	return &visitor{cookies: make(map[string]*http.Cookie)}
}

func (v *visitor) do(e *echo.Echo, req *http.Request) *httptest.ResponseRecorder {
	for _, c := range v.cookies {
		req.AddCookie(c)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	for _, c := range rec.Result().Cookies() {
		v.cookies[c.Name] = c
	}
	return rec
}

// htmx sets the headers htmx would send for a request from the page
func (v *visitor) htmx(req *http.Request) *http.Request {
	req.Header.Set("HX-Request", "true")
	if c, ok := v.cookies["csrf"]; ok {
		req.Header.Set("X-CSRF-Token", c.Value)
	}
	return req
}

func (v *visitor) sessionID() string {
	if c, ok := v.cookies[utils.CookieName]; ok {
		return c.Value
	}
	return ""
}
