// Package content embeds the site's markdown articles and static assets.
package content

import (
	"embed"
	"io/fs"
)

//go:embed blog/*.md static
var files embed.FS

// Blog returns the embedded blog directory with posts at its root.
func Blog() fs.FS { return sub("blog") }

// Static returns the embedded asset tree served under /assets.
func Static() fs.FS { return sub("static") }

func sub(dir string) fs.FS {
	f, err := fs.Sub(files, dir)
	if err != nil {
		panic(err)
	}
	return f
}
