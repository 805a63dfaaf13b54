package moxie

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"golang.org/x/tools/go/packages"
)

func TestGetUniquePackageName(t *testing.T) {
	a := assert.New(t)

	g := newGenerator(&packages.Package{Name: "basic"}, "moxie_gen.go")

	a.Equal("rand", g.getUniquePackageName("math/rand", "rand"))
	a.Equal("rand1", g.getUniquePackageName("crypto/rand", "rand"))

	// Repeated lookups reuse the assigned name.
	a.Equal("rand", g.getUniquePackageName("math/rand", "rand"))
	a.Equal("rand1", g.getUniquePackageName("crypto/rand", "rand"))
}

func TestRenderTarget(t *testing.T) {
	a := assert.New(t)

	g := newGenerator(&packages.Package{Name: "basic"}, "moxie_gen.go")

	a.Equal("scale", g.renderTarget(target{Name: "scale"}))
	a.Equal("math.Pow", g.renderTarget(target{PkgPath: "math", PkgName: "math", Name: "Pow"}))
	a.Equal(map[string]string{"math": "math"}, g.imports)
}

func TestInterposePath(t *testing.T) {
	assert.Equal(t, "a/moxie_gen_interpose.go", interposePath("a/moxie_gen.go"))
}

func TestWriteInterposeFile(t *testing.T) {
	a := assert.New(t)

	dir := t.TempDir()
	g := newGenerator(&packages.Package{Name: "basic"}, filepath.Join(dir, "moxie_gen.go"))
	g.mocks = []*Signature{
		{Name: "Pow", Target: target{PkgPath: "math", PkgName: "math", Name: "Pow"}},
		{Name: "Scale", Target: target{Name: "scale"}},
	}

	a.NoError(g.writeInterposeFile())

	b, err := os.ReadFile(filepath.Join(dir, "moxie_gen_interpose.go"))
	a.NoError(err)

	src := string(b)
	a.Contains(src, "// Code generated by moxie. DO NOT EDIT.")
	a.Contains(src, "//go:build !moxie")
	a.Contains(src, "package basic")
	a.Contains(src, "func init()")
	a.Contains(src, `moxie.Interpose("Pow", Pow, math.Pow)`)
	a.Contains(src, `moxie.Interpose("Scale", Scale, scale)`)
}
