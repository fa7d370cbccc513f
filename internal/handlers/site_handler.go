package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/vaporis/vaporis-site/internal/metrics"
	"github.com/vaporis/vaporis-site/internal/site"
	"go.uber.org/zap"
)

// HomePage is the data of the "home" template
type HomePage struct {
	Site      site.Content
	Hero      site.Hero
	Contact   ContactFormView
	CSRFToken string
}

// ContactFormView is the data of the "contact_form" partial
type ContactFormView struct {
	Form   site.ContactForm
	Errors site.FieldErrors
}

// ContactResult is the data of the "contact_result" partial
type ContactResult struct {
	Name  string
	Email string
}

type SiteHandler struct {
	content site.Content
	hero    site.Hero
	log     *zap.Logger
}

func NewSiteHandler(content site.Content, hero site.Hero, log *zap.Logger) *SiteHandler {
	if log == nil {
		log = zap.NewNop()
	}
	return &SiteHandler{content: content, hero: hero, log: log}
}

// Home renders the full page. The gallery is fetched separately by htmx.
func (h *SiteHandler) Home(c echo.Context) error {
	return c.Render(http.StatusOK, "home", HomePage{
		Site:      h.content,
		Hero:      h.hero,
		CSRFToken: GetCSRFToken(c),
	})
}

// Contact validates a contact form submission
func (h *SiteHandler) Contact(c echo.Context) error {
	var form site.ContactForm
	if err := c.Bind(&form); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid form data")
	}
	form.Normalize()

	if errs := form.Validate(); errs != nil {
		metrics.RecordContactSubmission("rejected")
		return c.Render(http.StatusBadRequest, "contact_form", ContactFormView{Form: form, Errors: errs})
	}

	h.log.Info("Contact message received",
		zap.String("name", form.Name),
		zap.String("email", form.Email),
		zap.String("subject", form.Subject),
		zap.Int("message_length", len(form.Message)),
	)
	metrics.RecordContactSubmission("accepted")

	return c.Render(http.StatusOK, "contact_result", ContactResult{Name: form.Name, Email: form.Email})
}
