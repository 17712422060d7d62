package html

import (
	"embed"
	"html/template"
	"io"

	"github.com/labstack/echo/v4"

	"storefront/core/money"
)

//go:embed templates/*.html
var templateFS embed.FS

type Template struct {
	Templates *template.Template
}

func (t *Template) Render(w io.Writer, name string, data interface{}, c echo.Context) error {
	return t.Templates.ExecuteTemplate(w, name, data)
}

// NewTemplate parses the embedded pages with prices rendered by f.
func NewTemplate(f *money.Formatter) (*Template, error) {
	tmpl, err := template.New("storefront").Funcs(TemplateFuncs(f)).ParseFS(templateFS, "templates/*.html")
	if err != nil {
		return nil, err
	}
	return &Template{Templates: tmpl}, nil
}

// TemplateFuncs returns FuncMap with price formatting and pagination helpers
func TemplateFuncs(f *money.Formatter) template.FuncMap {
	return template.FuncMap{
		"price": f.Price,
		"add":   func(a, b int) int { return a + b },
		"sub":   func(a, b int) int { return a - b },
	}
}
