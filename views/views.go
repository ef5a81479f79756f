// Package views renders the wizard's HTML pages from embedded templates.
package views

import (
	"embed"
	"html/template"
	"io/fs"
	"net/http"
	"path"
	"strings"

	"github.com/mbolis/confirmation-statement/httpx"
	"github.com/pkg/errors"
)

//go:embed templates
var templates embed.FS

const layout = "templates/layout.html"

// Page is the data every template receives. Data holds the page specific values.
type Page struct {
	Title     string
	BackLink  string
	SignOut   string
	UserEmail string
	Error     string
	Data      any
}

type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"join":  strings.Join,
	"lower": strings.ToLower,
}

// New parses every page under templates/ together with the shared layout.
// Pages are named after their file without extension.
func New() (*Renderer, error) {
	names, err := fs.Glob(templates, "templates/*.html")
	if err != nil {
		return nil, err
	}

	v := &Renderer{pages: map[string]*template.Template{}}
	for _, name := range names {
		if name == layout {
			continue
		}
		t, err := template.New(path.Base(layout)).Funcs(funcs).ParseFS(templates, layout, name)
		if err != nil {
			return nil, errors.Wrapf(err, "parse %s", name)
		}
		v.pages[strings.TrimSuffix(path.Base(name), ".html")] = t
	}
	return v, nil
}

// Render writes page with the given status. The page is rendered in full
// before anything is sent, so a template failure leaves w untouched.
func (v *Renderer) Render(w http.ResponseWriter, status int, page string, data Page) error {
	t, ok := v.pages[page]
	if !ok {
		return errors.Errorf("no page %q", page)
	}

	buf := httpx.NewPageBuffer()
	if err := t.Execute(buf, data); err != nil {
		return errors.Wrapf(err, "render %s", page)
	}
	buf.Header().Set("Content-Type", "text/html; charset=utf-8")
	buf.WriteHeader(status)
	return buf.Flush(w)
}
