package view

import (
	"embed"
	"fmt"
	"html/template"
	"io"
	"io/fs"
	"path"
	"strings"

	"github.com/labstack/echo/v4"
)

//go:embed templates/*.html
var templatesFS embed.FS

// Renderer implements echo.Renderer over the embedded templates. Each page
// template is parsed together with the shared layout so pages can define
// their own "content" block.
type Renderer struct {
	pages map[string]*template.Template
}

var funcs = template.FuncMap{
	"formatPrice": FormatPrice,
}

// NewRenderer parses every embedded page template. It panics on a bad
// template, which surfaces at startup rather than first render.
func NewRenderer() *Renderer {
	entries, err := fs.Glob(templatesFS, "templates/*.html")
	if err != nil {
		panic(fmt.Sprintf("view: glob templates: %v", err))
	}

	pages := make(map[string]*template.Template)
	for _, file := range entries {
		name := strings.TrimSuffix(path.Base(file), ".html")
		if name == "layout" {
			continue
		}
		pages[name] = template.Must(
			template.New("layout.html").Funcs(funcs).ParseFS(templatesFS, "templates/layout.html", file),
		)
	}
	return &Renderer{pages: pages}
}

// Render satisfies echo.Renderer.
func (r *Renderer) Render(w io.Writer, name string, data interface{}, _ echo.Context) error {
	t, ok := r.pages[name]
	if !ok {
		return fmt.Errorf("view: unknown template %q", name)
	}
	return t.ExecuteTemplate(w, "layout.html", data)
}
