package moxie

import (
	"bytes"
	"fmt"
	"go/format"
	"log/slog"
	"os"
	"strconv"

	"golang.org/x/tools/go/packages"
)

type generator struct {
	pkg             *packages.Package
	path            string
	imports         map[string]string
	importConflicts map[string]int
	mocks           []*Signature
}

func newGenerator(pkg *packages.Package, path string) *generator {
	return &generator{
		pkg:             pkg,
		path:            path,
		imports:         map[string]string{},
		importConflicts: map[string]int{},
	}
}

func (g *generator) addMock(sig *Signature) error {
	g.mocks = append(g.mocks, sig)

	return nil
}

// Generate renders the dispatch unit for every mock of this destination
// and, in interpose mode, the loader glue next to it. The dispatch unit is
// identical regardless of the selected glue.
func (g *generator) Generate(glue GlueMode) error {
	if len(g.mocks) == 0 {
		return nil
	}

	for _, m := range g.mocks {
		m.TargetExpr = g.renderTarget(m.Target)

		for _, ref := range m.TypePkgs {
			uname := g.getUniquePackageName(ref.Path, ref.Name)
			if uname != ref.Name {
				return fmt.Errorf(
					"cannot import %q: name %q is taken by another import and declared type strings reference it verbatim",
					ref.Path, ref.Name,
				)
			}
		}
	}

	b := bytes.NewBuffer(nil)

	err := fileTmpl.Execute(b, struct {
		PackageName string
		Imports     map[string]string
		Mocks       []*Signature
	}{
		PackageName: g.pkg.Name,
		Imports:     g.imports,
		Mocks:       g.mocks,
	})
	if err != nil {
		return fmt.Errorf("cannot execute template: %v", err)
	}

	formatted, err := format.Source(b.Bytes())
	if err != nil {
		return fmt.Errorf("cannot format moxie generated code: %v", err)
	}

	f, err := os.Create(g.path)
	defer f.Close()
	if err != nil {
		return fmt.Errorf("cannot create %s: %v", g.path, err)
	}

	_, err = f.Write(formatted)
	if err != nil {
		return fmt.Errorf("cannot write %s: %v", g.path, err)
	}

	slog.Info("generated", "path", g.path)

	if glue == GlueInterpose {
		err = g.writeInterposeFile()
		if err != nil {
			return fmt.Errorf("cannot write interpose glue: %v", err)
		}
	}

	return nil
}

func (g *generator) renderTarget(t target) string {
	if t.PkgPath == "" {
		return t.Name
	}

	return g.getUniquePackageName(t.PkgPath, t.PkgName) + "." + t.Name
}

func (g *generator) getUniquePackageName(path string, name string) string {
	if uname, ok := g.imports[path]; ok {
		return uname
	}

	uname := name
	cnt := g.importConflicts[uname]
	g.importConflicts[uname]++
	if cnt != 0 {
		uname += strconv.Itoa(cnt)
	}

	g.imports[path] = uname

	return uname
}
