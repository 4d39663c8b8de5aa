package phosphor

import (
	"io/fs"
)

// Resolver supplies raw icon markup for an icon identifier. Identifiers are
// opaque stable strings; the catalog that produces them is external to the
// pipeline. A Resolver reporting false is treated exactly like a parse
// failure: the renderer falls back to the placeholder document.
type Resolver interface {
	Resolve(name string) ([]byte, bool)
}

// ResolverFunc adapts a function to the Resolver interface.
type ResolverFunc func(name string) ([]byte, bool)

func (f ResolverFunc) Resolve(name string) ([]byte, bool) { return f(name) }

// Dir resolves icon names against an fs.FS, mapping "acorn" to "acorn.svg".
// It works with os.DirFS as well as an embed.FS asset bundle.
func Dir(fsys fs.FS) Resolver {
	return ResolverFunc(func(name string) ([]byte, bool) {
		if !fs.ValidPath(name + ".svg") {
			return nil, false
		}
		data, err := fs.ReadFile(fsys, name+".svg")
		if err != nil {
			return nil, false
		}
		return data, true
	})
}

// Map resolves icon names from an in-memory catalog.
func Map(icons map[string]string) Resolver {
	return ResolverFunc(func(name string) ([]byte, bool) {
		text, ok := icons[name]
		return []byte(text), ok
	})
}
