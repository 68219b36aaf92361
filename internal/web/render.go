package web

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"
	"net/http"

	"github.com/go-chi/render"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer executes the embedded page templates. Pages are rendered into a
// buffer first so a template failure never leaves a half-written response.
type Renderer struct {
	tmpl *template.Template
}

func NewRenderer() (*Renderer, error) {
	tmpl, err := template.ParseFS(templatesFS, "templates/*.html")
	if err != nil {
		return nil, fmt.Errorf("failed to parse templates: %w", err)
	}

	return &Renderer{tmpl: tmpl}, nil
}

func (re *Renderer) Render(w http.ResponseWriter, r *http.Request, name string, data any) error {
	var buf bytes.Buffer

	if err := re.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return fmt.Errorf("failed to render %s: %w", name, err)
	}

	render.HTML(w, r, buf.String())

	return nil
}

type notFoundData struct {
	Message string
}

func (re *Renderer) NotFound(w http.ResponseWriter, r *http.Request, msg string) {
	var buf bytes.Buffer

	if err := re.tmpl.ExecuteTemplate(&buf, "not_found.html", notFoundData{Message: msg}); err != nil {
		http.NotFound(w, r)
		return
	}

	render.Status(r, http.StatusNotFound)
	render.HTML(w, r, buf.String())
}
