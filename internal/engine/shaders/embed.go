// Package shaders provides the GLSL sources of the viewer.
package shaders

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
)

//go:embed *.vert *.frag
var embedded embed.FS

// Source loads the vertex and fragment sources of one program.
type Source func() (vertex, fragment string, err error)

// Embedded returns a Source reading name.vert and name.frag from the
// binary.
func Embedded(name string) Source {
	return fromFS(embedded, name)
}

// Dir returns a Source reading name.vert and name.frag from dir on every
// call, so edited files are picked up on reload. An empty dir means
// Embedded.
func Dir(dir, name string) Source {
	if dir == "" {
		return Embedded(name)
	}
	return fromFS(os.DirFS(dir), name)
}

func fromFS(fsys fs.FS, name string) Source {
	return func() (string, string, error) {
		vert, err := fs.ReadFile(fsys, name+".vert")
		if err != nil {
			return "", "", fmt.Errorf("shader %s: %w", name, err)
		}
		frag, err := fs.ReadFile(fsys, name+".frag")
		if err != nil {
			return "", "", fmt.Errorf("shader %s: %w", name, err)
		}
		return string(vert), string(frag), nil
	}
}
