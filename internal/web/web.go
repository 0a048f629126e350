// Package web holds the embedded pages and assets of both front-ends.
package web

import (
	"embed"
	"html/template"
	"io"
	"io/fs"
	"net/http"
)

//go:embed templates/*.html
var templateFS embed.FS

//go:embed static
var staticFS embed.FS

var templates = template.Must(template.ParseFS(templateFS, "templates/*.html"))

const (
	ChatPage   = "chat.html"
	PoetryPage = "poetry.html"
)

// PageData is what the page templates render. RootPath prefixes every URL the
// page emits.
type PageData struct {
	Title     string
	RootPath  string
	Script    string
	Models    []string
	Styles    []string
	MinLength int
	MaxLength int
}

// Render writes the named page.
func Render(w io.Writer, page string, data PageData) error {
	return templates.ExecuteTemplate(w, page, data)
}

// Static serves the embedded assets. Mount it so that it sees paths relative
// to the static directory.
func Static() http.Handler {
	sub, err := fs.Sub(staticFS, "static")
	if err != nil {
		panic(err)
	}
	return http.FileServer(http.FS(sub))
}
