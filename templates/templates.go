// Package templates embeds the HTML page and stylesheet of the quote service.
package templates

import (
	"embed"
	"html/template"
	"io/fs"
	"os"
	"path/filepath"
)

//go:embed index.html static
var files embed.FS

// Index is the name of the single page template.
const Index = "index.html"

// Load parses the page template. An empty dir uses the embedded copy;
// otherwise dir/index.html is read from disk, which eases editing.
func Load(dir string) (*template.Template, error) {
	if dir == "" {
		return template.ParseFS(files, Index)
	}
	return template.ParseFiles(filepath.Join(dir, Index))
}

// Static returns the stylesheet tree served under /static/.
func Static(dir string) (fs.FS, error) {
	if dir == "" {
		return fs.Sub(files, "static")
	}
	return os.DirFS(filepath.Join(dir, "static")), nil
}
