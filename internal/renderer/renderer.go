package renderer

import (
	"fmt"
	"html/template"
	"io"
	"net/http"
	"path/filepath"

	"github.com/labstack/echo/v4"
)

// TemplateRenderer implements echo.Renderer
type TemplateRenderer struct {
	Templates map[string]*template.Template
}

// New parses the layout, page and partial templates found under viewsDir
func New(viewsDir string) (*TemplateRenderer, error) {
	r := &TemplateRenderer{
		Templates: make(map[string]*template.Template),
	}
	if err := r.parseTemplates(viewsDir); err != nil {
		return nil, err
	}
	return r, nil
}

func (t *TemplateRenderer) parseTemplates(viewsDir string) error {
	view := func(parts ...string) string {
		return filepath.Join(append([]string{viewsDir}, parts...)...)
	}

	parse := func(name string, files ...string) error {
		tmpl, err := template.New(name).Funcs(Funcs).ParseFiles(files...)
		if err != nil {
			return fmt.Errorf("parse template %s: %w", name, err)
		}
		t.Templates[name] = tmpl
		return nil
	}

	// Pages: layout + page + the partials the page embeds
	if err := parse("home",
		view("layouts", "base.html"),
		view("partials", "contact_form.html"),
		view("pages", "home.html"),
	); err != nil {
		return err
	}

	// Partials swapped in by htmx
	for _, name := range []string{"teaser_gallery", "contact_form", "contact_result"} {
		if err := parse(name, view("partials", name+".html")); err != nil {
			return err
		}
	}
	return nil
}

// Funcs are the helpers available to every template
var Funcs = template.FuncMap{
	"fieldError": func(errs map[string]string, field string) string {
		return errs[field]
	},
}

// selfExecutingTemplates lists templates that execute their own named block instead of "base"
var selfExecutingTemplates = map[string]bool{
	"teaser_gallery": true,
	"contact_form":   true,
	"contact_result": true,
}

// Render renders a template document
func (t *TemplateRenderer) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	tmpl, ok := t.Templates[name]
	if !ok {
		return echo.NewHTTPError(http.StatusInternalServerError, "Template not found: "+name)
	}

	// Templates that define their own named block execute that block directly
	if selfExecutingTemplates[name] {
		return tmpl.ExecuteTemplate(w, name, data)
	}
	// All other templates (pages with layout) execute the "base" block
	return tmpl.ExecuteTemplate(w, "base", data)
}
