package email

import (
	"bytes"
	"embed"
	"fmt"
	"html/template"

	"github.com/pkg/errors"
)

// Template names an HTML file under templates/.
type Template string

const (
	TemplateTaskAssigned Template = "task_assigned"
)

//go:embed templates/*.html
var templateFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

// Render executes the named template with data.
func Render(name Template, data any) (string, error) {
	tmpl := templates.Lookup(fmt.Sprintf("%s.html", name))
	if tmpl == nil {
		return "", errors.Errorf("unknown email template %s", name)
	}

	var body bytes.Buffer
	if err := tmpl.Execute(&body, data); err != nil {
		return "", errors.Wrapf(err, "failed to execute email template %s", name)
	}
	return body.String(), nil
}
