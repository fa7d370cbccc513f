package handlers

import (
	"context"
	"io"
	"net/http/httptest"
	"net/url"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/vaporis/vaporis-site/internal/gallery"
	"github.com/vaporis/vaporis-site/internal/models"
	"github.com/vaporis/vaporis-site/internal/services"
	"github.com/vaporis/vaporis-site/internal/utils"
)

// recordingRenderer keeps the last template name and data instead of writing HTML
type recordingRenderer struct {
	name string
	data interface{}
}

func (r *recordingRenderer) Render(_ io.Writer, name string, data interface{}, _ echo.Context) error {
	r.name = name
	r.data = data
	return nil
}

type stubSource struct {
	result services.ListResult
	calls  int
}

func (s *stubSource) ListObjects(_ context.Context, _, _ string) services.ListResult {
	s.calls++
	return s.result
}

func (s *stubSource) PublicURL(bucket, objectPath string) string {
	return "https://cdn.test/" + bucket + "/" + objectPath
}

func newTestContext(e *echo.Echo, method, target string, form url.Values) (echo.Context, *httptest.ResponseRecorder) {
	var body io.Reader
	if form != nil {
		body = strings.NewReader(form.Encode())
	}
	req := httptest.NewRequest(method, target, body)
	if form != nil {
		req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationForm)
	}
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func teaserRecords() []models.StorageObjectRecord {
	return []models.StorageObjectRecord{
		{Name: "clip.mp4", Metadata: models.ObjectMetadata{MimeType: "video/mp4"}},
		{Name: ".hidden", Metadata: models.ObjectMetadata{MimeType: "image/png", Size: 10}},
		{Name: "cover.png", Metadata: models.ObjectMetadata{MimeType: "image/png", Size: 2048}},
	}
}

func newTestSessions(src gallery.Source) *gallery.Sessions {
	return gallery.NewSessions(0, 0, func() *gallery.Gallery {
		return gallery.New(src, "teaser", "")
	})
}

func withSession(c echo.Context, id string) echo.Context {
	c.Set(utils.ContextKeySession, id)
	return c
}
