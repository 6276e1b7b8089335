package server

import (
	"embed"
	"fmt"
	"html/template"
	"io/fs"
)

const contentTypeHTML = "text/html; charset=utf-8"

//go:embed templates/*
var templateFiles embed.FS

func TemplateFilesFS() fs.FS {
	subFS, err := fs.Sub(templateFiles, "templates")
	if err != nil {
		panic("Failed to create templates sub filesystem: " + err.Error())
	}
	return subFS
}

// ParseTemplate parses a page template from the embedded filesystem,
// together with the shared navigation partial.
func ParseTemplate(name string) (*template.Template, error) {
	t, err := template.ParseFS(TemplateFilesFS(), "nav.html", name)
	if err != nil {
		return nil, err
	}
	page := t.Lookup(name)
	if page == nil {
		return nil, fmt.Errorf("template %q not found", name)
	}
	return page, nil
}
