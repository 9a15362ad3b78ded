// Package web embeds the HTML templates and static assets.
package web

import (
	"embed"
	"io/fs"
)

//go:embed template/*.html
var templates embed.FS

//go:embed static
var static embed.FS

// Templates returns the template files rooted at the template directory.
func Templates() fs.FS {
	sub, err := fs.Sub(templates, "template")
	if err != nil {
		panic(err)
	}
	return sub
}

// Static returns the static assets rooted at the static directory.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		panic(err)
	}
	return sub
}
