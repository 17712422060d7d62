package parts

import (
	_ "embed"
	"html/template"
)

//go:embed critical.css
var criticalCSS string

// GetCriticalCSS returns the inline stylesheet shared by every page.
func GetCriticalCSS() template.CSS {
	return template.CSS(criticalCSS)
}
