package moxie

import (
	"strings"

	"github.com/dave/jennifer/jen"
)

// writeInterposeFile emits the load-time substitution glue for one
// destination: an init function registering each wrapper/original pair in
// the process interposition table, for platforms without link-time symbol
// renaming.
func (g *generator) writeInterposeFile() error {
	f := jen.NewFile(g.pkg.Name)
	f.HeaderComment("Code generated by moxie. DO NOT EDIT.")
	f.HeaderComment("//go:build !moxie")

	pairs := make([]jen.Code, 0, len(g.mocks))
	for _, m := range g.mocks {
		original := jen.Id(m.Target.Name)
		if m.Target.PkgPath != "" {
			original = jen.Qual(m.Target.PkgPath, m.Target.Name)
		}

		pairs = append(pairs, jen.Qual(moxiePath, "Interpose").Call(
			jen.Lit(m.Name),
			jen.Id(m.Name),
			original,
		))
	}

	f.Func().Id("init").Params().Block(pairs...)

	return f.Save(interposePath(g.path))
}

// interposePath derives the glue file path from the destination path.
func interposePath(path string) string {
	return strings.TrimSuffix(path, ".go") + "_interpose.go"
}
