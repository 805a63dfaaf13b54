package moxie

import (
	"errors"
	"fmt"
	"go/ast"
	"go/types"
	"path/filepath"
	"sort"
	"strconv"

	"golang.org/x/tools/go/packages"
)

const defaultDestination = "moxie_gen.go"

type parser struct {
	pkg *packages.Package
}

func newParser(pkg *packages.Package) *parser {
	return &parser{
		pkg: pkg,
	}
}

// Parse walks the package's descriptor functions and groups the parsed
// signatures by destination file, one generator per destination.
func (p *parser) Parse() ([]*generator, error) {
	destinationsAndGenerators := map[string]*generator{}
	for _, syntax := range p.pkg.Syntax {
		for _, decl := range syntax.Decls {
			fun, ok := decl.(*ast.FuncDecl)
			if !ok || fun.Body == nil {
				continue
			}

			calls, err := p.findMoxieCalls(fun.Body.List)
			if err != nil {
				errorMessage := "cannot find moxie calls:"
				errorMessage += fmt.Sprintf("\n\tmock %q: %v", fun.Name.Name, err)

				return nil, errors.New(errorMessage)
			} else if len(calls) == 0 {
				continue
			}

			var (
				pkgDir      = filepath.Dir(p.pkg.Fset.File(decl.Pos()).Name())
				destination = defaultDestination
				sig         *Signature
			)

			for _, call := range calls {
				sel, ok := call.Fun.(*ast.SelectorExpr)
				if !ok {
					continue
				}

				obj := p.pkg.TypesInfo.ObjectOf(sel.Sel)
				switch obj.Name() {
				case "Mock":
					if sig != nil {
						errorMessage := "duplicated moxie.Mock call:"
						errorMessage += fmt.Sprintf("\n\tmock %q: one descriptor function describes one mock", fun.Name.Name)

						return nil, errors.New(errorMessage)
					}

					sig, err = p.parseMock(fun.Name.Name, call)
					if err != nil {
						return nil, err
					}
				case "SetDestination":
					val, err := p.stringArg(fun.Name.Name, "cannot set destination", call.Args[0])
					if err != nil {
						return nil, err
					} else if val == "" {
						errorMessage := "cannot set destination:"
						errorMessage += fmt.Sprintf("\n\tmock %q: destination should not be an empty string", fun.Name.Name)

						return nil, errors.New(errorMessage)
					} else if filepath.Ext(val) != ".go" {
						errorMessage := "cannot set destination:"
						errorMessage += fmt.Sprintf("\n\tmock %q: %q is not a go file", fun.Name.Name, val)

						return nil, errors.New(errorMessage)
					}

					destination = val
				default:
					errorMessage := "unknown moxie function call:"
					errorMessage += fmt.Sprintf("\n\tmock %q: moxie.%s", fun.Name.Name, obj.Name())

					return nil, errors.New(errorMessage)
				}
			}

			if sig == nil {
				errorMessage := "missing moxie.Mock call:"
				errorMessage += fmt.Sprintf("\n\tmock %q: a descriptor function must declare its target", fun.Name.Name)

				return nil, errors.New(errorMessage)
			}

			if err := sig.validate(); err != nil {
				errorMessage := "invalid descriptor:"
				errorMessage += fmt.Sprintf("\n\tmock %q: %v", fun.Name.Name, err)

				return nil, errors.New(errorMessage)
			}

			destination = filepath.Join(pkgDir, destination)
			if destinationsAndGenerators[destination] == nil {
				destinationsAndGenerators[destination] = newGenerator(p.pkg, destination)
			}

			err = destinationsAndGenerators[destination].addMock(sig)
			if err != nil {
				return nil, err
			}
		}
	}
	if len(destinationsAndGenerators) == 0 {
		return nil, nil
	}

	generators := make([]*generator, 0, len(destinationsAndGenerators))
	for _, generator := range destinationsAndGenerators {
		generators = append(generators, generator)
	}

	return generators, nil
}

// parseMock expands one moxie.Mock call into a signature: the target
// function, the return descriptor, and the ordered parameter descriptors.
func (p *parser) parseMock(mockName string, call *ast.CallExpr) (*Signature, error) {
	if len(call.Args) < 2 {
		errorMessage := "invalid moxie.Mock call:"
		errorMessage += fmt.Sprintf("\n\tmock %q: expected a target and a return descriptor", mockName)

		return nil, errors.New(errorMessage)
	}

	tgt, tgtSig, err := p.parseTarget(mockName, call.Args[0])
	if err != nil {
		return nil, err
	}

	ret, err := p.parseReturn(mockName, call.Args[1])
	if err != nil {
		return nil, err
	}

	params := make([]Param, 0, len(call.Args)-2)
	for _, arg := range call.Args[2:] {
		param, err := p.parseParam(mockName, arg)
		if err != nil {
			return nil, err
		}

		params = append(params, param)
	}

	if tgtSig.Params().Len() != len(params) {
		errorMessage := "descriptor does not match target:"
		errorMessage += fmt.Sprintf(
			"\n\tmock %q: target %s has %d parameters, descriptor declares %d",
			mockName, tgt.Name, tgtSig.Params().Len(), len(params),
		)

		return nil, errors.New(errorMessage)
	}

	switch results := tgtSig.Results().Len(); {
	case results > 1:
		errorMessage := "descriptor does not match target:"
		errorMessage += fmt.Sprintf("\n\tmock %q: target %s has multiple results", mockName, tgt.Name)

		return nil, errors.New(errorMessage)
	case results == 0 && !ret.Void():
		errorMessage := "descriptor does not match target:"
		errorMessage += fmt.Sprintf("\n\tmock %q: target %s returns nothing", mockName, tgt.Name)

		return nil, errors.New(errorMessage)
	case results == 1 && ret.Void():
		errorMessage := "descriptor does not match target:"
		errorMessage += fmt.Sprintf("\n\tmock %q: target %s has a result", mockName, tgt.Name)

		return nil, errors.New(errorMessage)
	}

	return &Signature{
		Name:     mockName,
		Target:   tgt,
		Return:   ret,
		Params:   params,
		TypePkgs: p.referencedPackages(tgtSig),
	}, nil
}

// referencedPackages collects the packages named by the target's parameter
// and result types, excluding the package under generation. They become
// imports of the generated file so the verbatim declared type strings
// resolve.
func (p *parser) referencedPackages(sig *types.Signature) []pkgRef {
	seen := map[string]pkgRef{}

	var visit func(t types.Type)
	visit = func(t types.Type) {
		switch t := t.(type) {
		case *types.Pointer:
			visit(t.Elem())
		case *types.Slice:
			visit(t.Elem())
		case *types.Array:
			visit(t.Elem())
		case *types.Map:
			visit(t.Key())
			visit(t.Elem())
		case *types.Chan:
			visit(t.Elem())
		case *types.Signature:
			for i := 0; i < t.Params().Len(); i++ {
				visit(t.Params().At(i).Type())
			}
			for i := 0; i < t.Results().Len(); i++ {
				visit(t.Results().At(i).Type())
			}
		case *types.Alias:
			if pkg := t.Obj().Pkg(); pkg != nil && pkg.Path() != p.pkg.PkgPath {
				seen[pkg.Path()] = pkgRef{Path: pkg.Path(), Name: pkg.Name()}
			}
		case *types.Named:
			if pkg := t.Obj().Pkg(); pkg != nil && pkg.Path() != p.pkg.PkgPath {
				seen[pkg.Path()] = pkgRef{Path: pkg.Path(), Name: pkg.Name()}
			}
			for i := 0; i < t.TypeArgs().Len(); i++ {
				visit(t.TypeArgs().At(i))
			}
		}
	}

	for i := 0; i < sig.Params().Len(); i++ {
		visit(sig.Params().At(i).Type())
	}
	for i := 0; i < sig.Results().Len(); i++ {
		visit(sig.Results().At(i).Type())
	}

	refs := make([]pkgRef, 0, len(seen))
	for _, ref := range seen {
		refs = append(refs, ref)
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Path < refs[j].Path })

	return refs
}

func (p *parser) parseTarget(mockName string, expr ast.Expr) (target, *types.Signature, error) {
	var obj types.Object
	switch e := expr.(type) {
	case *ast.Ident:
		obj = p.pkg.TypesInfo.ObjectOf(e)
	case *ast.SelectorExpr:
		obj = p.pkg.TypesInfo.ObjectOf(e.Sel)
	}

	fun, ok := obj.(*types.Func)
	if !ok {
		errorMessage := "invalid mock target:"
		errorMessage += fmt.Sprintf("\n\tmock %q: target is not a function", mockName)

		return target{}, nil, errors.New(errorMessage)
	}

	sig := fun.Type().(*types.Signature)
	if sig.Recv() != nil {
		errorMessage := "invalid mock target:"
		errorMessage += fmt.Sprintf("\n\tmock %q: target %s is a method, not a package-level function", mockName, fun.Name())

		return target{}, nil, errors.New(errorMessage)
	}

	tgt := target{Name: fun.Name()}
	if fun.Pkg() != nil && fun.Pkg().Path() != p.pkg.PkgPath {
		tgt.PkgPath = fun.Pkg().Path()
		tgt.PkgName = fun.Pkg().Name()
	}

	return tgt, sig, nil
}

func (p *parser) parseReturn(mockName string, expr ast.Expr) (Return, error) {
	name, call, err := p.markerCall(mockName, expr)
	if err != nil {
		return Return{}, err
	}

	kind, ok := map[string]ReturnKind{
		"ReturnVoid":   KindReturnVoid,
		"ReturnBool":   KindReturnBool,
		"ReturnInt":    KindReturnInt,
		"ReturnUint":   KindReturnUint,
		"ReturnLong":   KindReturnLong,
		"ReturnULong":  KindReturnULong,
		"ReturnDouble": KindReturnDouble,
		"ReturnString": KindReturnString,
		"ReturnPtr":    KindReturnPtr,
		"ReturnCustom": KindReturnCustom,
	}[name]
	if !ok {
		errorMessage := "invalid return descriptor:"
		errorMessage += fmt.Sprintf("\n\tmock %q: moxie.%s is not a return marker", mockName, name)

		return Return{}, errors.New(errorMessage)
	}

	ret := Return{Kind: kind}
	if kind == KindReturnVoid {
		return ret, nil
	}

	ret.Type, err = p.stringArg(mockName, "invalid return descriptor", call.Args[0])
	if err != nil {
		return Return{}, err
	}

	if kind == KindReturnCustom {
		ret.Code, err = p.stringArg(mockName, "invalid return descriptor", call.Args[1])
		if err != nil {
			return Return{}, err
		}
	}

	return ret, nil
}

func (p *parser) parseParam(mockName string, expr ast.Expr) (Param, error) {
	name, call, err := p.markerCall(mockName, expr)
	if err != nil {
		return Param{}, err
	}

	kind, ok := map[string]ParamKind{
		"ParamBool":        KindBool,
		"ParamInt":         KindInt,
		"ParamUint":        KindUint,
		"ParamLong":        KindLong,
		"ParamULong":       KindULong,
		"ParamDouble":      KindDouble,
		"ParamString":      KindString,
		"ParamInPtr":       KindInPtr,
		"ParamOutPtr":      KindOutPtr,
		"ParamInTypedPtr":  KindInTypedPtr,
		"ParamOutTypedPtr": KindOutTypedPtr,
		"ParamIgnore":      KindIgnore,
		"ParamCustom":      KindParamCustom,
	}[name]
	if !ok {
		errorMessage := "invalid parameter descriptor:"
		errorMessage += fmt.Sprintf("\n\tmock %q: moxie.%s is not a parameter marker", mockName, name)

		return Param{}, errors.New(errorMessage)
	}

	param := Param{Kind: kind}

	param.Type, err = p.stringArg(mockName, "invalid parameter descriptor", call.Args[0])
	if err != nil {
		return Param{}, err
	}

	param.Name, err = p.stringArg(mockName, "invalid parameter descriptor", call.Args[1])
	if err != nil {
		return Param{}, err
	}

	if kind == KindParamCustom {
		param.Code, err = p.stringArg(mockName, "invalid parameter descriptor", call.Args[2])
		if err != nil {
			return Param{}, err
		}
	}

	return param, nil
}

// markerCall unwraps a moxie marker call expression and returns the marker
// name, e.g. "ParamDouble".
func (p *parser) markerCall(mockName string, expr ast.Expr) (string, *ast.CallExpr, error) {
	call, ok := expr.(*ast.CallExpr)
	if !ok {
		errorMessage := "invalid descriptor argument:"
		errorMessage += fmt.Sprintf("\n\tmock %q: expected a moxie marker call", mockName)

		return "", nil, errors.New(errorMessage)
	}

	sel, ok := call.Fun.(*ast.SelectorExpr)
	if !ok {
		errorMessage := "invalid descriptor argument:"
		errorMessage += fmt.Sprintf("\n\tmock %q: expected a moxie marker call", mockName)

		return "", nil, errors.New(errorMessage)
	}

	obj := p.pkg.TypesInfo.ObjectOf(sel.Sel)
	if obj == nil || obj.Pkg() == nil || obj.Pkg().Path() != moxiePath {
		errorMessage := "invalid descriptor argument:"
		errorMessage += fmt.Sprintf("\n\tmock %q: expected a moxie marker call", mockName)

		return "", nil, errors.New(errorMessage)
	}

	return obj.Name(), call, nil
}

func (p *parser) stringArg(mockName string, context string, arg ast.Expr) (string, error) {
	res, err := types.Eval(p.pkg.Fset, p.pkg.Types, arg.Pos(), types.ExprString(arg))
	if err != nil {
		errorMessage := context + ":"
		errorMessage += fmt.Sprintf("\n\tmock %q: %v", mockName, err)

		return "", errors.New(errorMessage)
	}

	val, err := strconv.Unquote(res.Value.ExactString())
	if err != nil {
		errorMessage := context + ":"
		errorMessage += fmt.Sprintf("\n\tmock %q: %v", mockName, err)

		return "", errors.New(errorMessage)
	}

	return val, nil
}

// findMoxieCalls collects the moxie marker calls of one descriptor
// function body. Only package-level functions of the moxie package count
// as markers; methods such as the Call submission verbs do not, so hook
// helpers are never mistaken for descriptors. A body mixing marker calls
// with other statements is invalid.
func (p *parser) findMoxieCalls(stmts []ast.Stmt) ([]*ast.CallExpr, error) {
	var (
		calls   []*ast.CallExpr
		invalid bool
	)
	for _, stmt := range stmts {
		switch stmt := stmt.(type) {
		case *ast.ExprStmt:
			call, ok := stmt.X.(*ast.CallExpr)
			if !ok {
				continue
			}

			sel, ok := call.Fun.(*ast.SelectorExpr)
			if !ok {
				continue
			}

			fun, ok := p.pkg.TypesInfo.ObjectOf(sel.Sel).(*types.Func)
			if ok && fun.Pkg() != nil && fun.Pkg().Path() == moxiePath &&
				fun.Type().(*types.Signature).Recv() == nil {
				calls = append(calls, call)
			}
		case *ast.EmptyStmt, *ast.ReturnStmt:
		default:
			invalid = true
		}
	}

	if len(calls) == 0 {
		return nil, nil
	} else if invalid {
		return nil, errors.New("descriptor function should consist of moxie function calls")
	}

	return calls, nil
}
