// Package content carries the course catalogue, lesson and quiz documents
// compiled into the binary.
package content

import (
	"embed"
	"io/fs"
)

//go:embed data
var data embed.FS

// FS returns the embedded content tree rooted at data/.
func FS() fs.FS {
	sub, err := fs.Sub(data, "data")
	if err != nil {
		panic(err)
	}
	return sub
}
