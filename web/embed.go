// Package web bundles the browser front-end into the binary.
package web

import (
	"embed"
	"io/fs"
)

//go:embed static
var static embed.FS

// Static returns the bundled front-end rooted at its top directory, so
// index.html is at the root.
func Static() fs.FS {
	sub, err := fs.Sub(static, "static")
	if err != nil {
		// The directory is embedded at build time; this cannot fail.
		panic(err)
	}

	return sub
}
