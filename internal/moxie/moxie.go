package moxie

import (
	"context"
	"fmt"
	"sort"

	"golang.org/x/sync/errgroup"
)

const moxiePath = "github.com/moxielabs/moxie"

// GlueMode selects the symbol-substitution glue emitted alongside the
// generated dispatch code. The dispatch unit itself is identical in every
// mode.
type GlueMode string

const (
	// GlueWrap publishes the wrapper under the mock name and emits nothing
	// else; pass-through calls the original symbol directly.
	GlueWrap GlueMode = "wrap"
	// GlueInterpose additionally emits a loader table pairing each wrapper
	// with its original implementation.
	GlueInterpose GlueMode = "interpose"
)

// Moxie expands mock descriptors into dispatch code for the packages
// matching the given patterns.
type Moxie struct {
	wd       string
	patterns []string
	glue     GlueMode
	tags     []string
}

func New(wd string, patterns []string, glue GlueMode, tags []string) *Moxie {
	return &Moxie{
		wd:       wd,
		patterns: patterns,
		glue:     glue,
		tags:     tags,
	}
}

// Execute generates mocks for every matched package that imports moxie.
// Packages generate concurrently; the first error wins.
func (m *Moxie) Execute(ctx context.Context) error {
	pkgs, err := loadPackages(ctx, m.wd, m.patterns, m.tags)
	if err != nil {
		return fmt.Errorf("cannot load packages: %v", err)
	}

	group, ctx := errgroup.WithContext(ctx)
	for _, pkg := range pkgs {
		if _, ok := pkg.Imports[moxiePath]; !ok {
			continue
		}

		group.Go(func() error {
			// A failed sibling cancels the group; skip remaining work.
			if err := ctx.Err(); err != nil {
				return err
			}

			generators, err := newParser(pkg).Parse()
			if err != nil {
				return fmt.Errorf("package %q: cannot parse mock descriptors: %v", pkg.PkgPath, err)
			}

			for _, g := range generators {
				err = g.Generate(m.glue)
				if err != nil {
					return fmt.Errorf("package %q: cannot generate mocks: %v", pkg.PkgPath, err)
				}
			}

			return nil
		})
	}

	return group.Wait()
}

// Summary describes one parsed mock descriptor.
type Summary struct {
	Package     string
	Name        string
	Target      string
	Arity       int
	Return      string
	Destination string
}

// List parses descriptors without generating anything and returns their
// summaries, sorted by package then mock name.
func (m *Moxie) List(ctx context.Context) ([]Summary, error) {
	pkgs, err := loadPackages(ctx, m.wd, m.patterns, m.tags)
	if err != nil {
		return nil, fmt.Errorf("cannot load packages: %v", err)
	}

	var summaries []Summary
	for _, pkg := range pkgs {
		if _, ok := pkg.Imports[moxiePath]; !ok {
			continue
		}

		generators, err := newParser(pkg).Parse()
		if err != nil {
			return nil, fmt.Errorf("package %q: cannot parse mock descriptors: %v", pkg.PkgPath, err)
		}

		for _, g := range generators {
			for _, sig := range g.mocks {
				tgt := sig.Target.Name
				if sig.Target.PkgName != "" {
					tgt = sig.Target.PkgName + "." + sig.Target.Name
				}

				summaries = append(summaries, Summary{
					Package:     pkg.PkgPath,
					Name:        sig.Name,
					Target:      tgt,
					Arity:       len(sig.Params),
					Return:      sig.Return.Kind.String(),
					Destination: g.path,
				})
			}
		}
	}

	sort.Slice(summaries, func(i, j int) bool {
		if summaries[i].Package != summaries[j].Package {
			return summaries[i].Package < summaries[j].Package
		}

		return summaries[i].Name < summaries[j].Name
	})

	return summaries, nil
}
