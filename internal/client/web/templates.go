package web

import (
	"embed"
	"html/template"

	"github.com/dmitrijs2005/userdash/internal/client/views"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// page is the data every template receives.
type page struct {
	Title      string
	Authorized bool
	Identity   string
	Error      string

	Home    views.HomeModel
	Profile views.ProfileModel

	// login and register forms
	Email  string
	Fields []views.FieldModel
}
