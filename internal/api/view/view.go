// Package view renders the HTML pages through echo.Renderer.
package view

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"github.com/flexfit/fitness-buddy/internal/core/domain"
)

//go:embed templates/*.html
var files embed.FS

// Page names.
const (
	Home     = "home.html"
	Login    = "login.html"
	Register = "register.html"
)

// Page is the data every template receives.
type Page struct {
	Persona  domain.Persona
	Username string
	Messages []string
}

type Renderer struct {
	t *template.Template
}

// Load parses the embedded templates.
func Load() (*Renderer, error) {
	t, err := template.ParseFS(files, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Renderer{t: t}, nil
}

// MustLoad is Load for program start-up.
func MustLoad() *Renderer {
	r, err := Load()
	if err != nil {
		panic(err)
	}
	return r
}

func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	return r.t.ExecuteTemplate(w, name, data)
}
