package web

import (
	"embed"
	"html/template"
)

//go:embed templates/*.html
var files embed.FS

func Templates() *template.Template {
	return template.Must(template.ParseFS(files, "templates/*.html"))
}
