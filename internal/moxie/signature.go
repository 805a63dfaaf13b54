package moxie

import (
	"fmt"
	"strings"
	"unicode"
)

// maxArity bounds the number of parameters a descriptor may declare.
// Oversized signatures fail at generation time, never at runtime.
const maxArity = 32

// ParamKind selects the rendering of one parameter. The kind alone
// determines the submission verb used toward the expectation service and
// whether the parameter is omitted (KindIgnore) or replaced by caller code
// (KindParamCustom).
type ParamKind int

const (
	KindBool ParamKind = iota
	KindInt
	KindUint
	KindLong
	KindULong
	KindDouble
	KindString
	KindInPtr
	KindOutPtr
	KindInTypedPtr
	KindOutTypedPtr
	KindIgnore
	KindParamCustom
)

func (k ParamKind) String() string {
	switch k {
	case KindBool:
		return "bool"
	case KindInt:
		return "int"
	case KindUint:
		return "uint"
	case KindLong:
		return "long"
	case KindULong:
		return "ulong"
	case KindDouble:
		return "double"
	case KindString:
		return "string"
	case KindInPtr:
		return "in-ptr"
	case KindOutPtr:
		return "out-ptr"
	case KindInTypedPtr:
		return "in-typed-ptr"
	case KindOutTypedPtr:
		return "out-typed-ptr"
	case KindIgnore:
		return "ignore"
	case KindParamCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// ReturnKind selects the decode verb of the return value.
type ReturnKind int

const (
	KindReturnVoid ReturnKind = iota
	KindReturnBool
	KindReturnInt
	KindReturnUint
	KindReturnLong
	KindReturnULong
	KindReturnDouble
	KindReturnString
	KindReturnPtr
	KindReturnCustom
)

func (k ReturnKind) String() string {
	switch k {
	case KindReturnVoid:
		return "void"
	case KindReturnBool:
		return "bool"
	case KindReturnInt:
		return "int"
	case KindReturnUint:
		return "uint"
	case KindReturnLong:
		return "long"
	case KindReturnULong:
		return "ulong"
	case KindReturnDouble:
		return "double"
	case KindReturnString:
		return "string"
	case KindReturnPtr:
		return "ptr"
	case KindReturnCustom:
		return "custom"
	default:
		return "unknown"
	}
}

// Param is one parameter descriptor: an ordered (kind, type, name) triple.
// Code carries the verbatim splice of KindParamCustom.
type Param struct {
	Kind ParamKind
	Type string
	Name string
	Code string
}

// submitStmt renders the submission statement the default record hook
// executes for this parameter. KindIgnore renders nothing.
func (p Param) submitStmt() string {
	switch p.Kind {
	case KindBool:
		return fmt.Sprintf("call.WithBoolParameter(%q, bool(%s))", p.Name, p.Name)
	case KindInt:
		return fmt.Sprintf("call.WithIntParameter(%q, int(%s))", p.Name, p.Name)
	case KindUint:
		return fmt.Sprintf("call.WithUintParameter(%q, uint(%s))", p.Name, p.Name)
	case KindLong:
		return fmt.Sprintf("call.WithLongParameter(%q, int64(%s))", p.Name, p.Name)
	case KindULong:
		return fmt.Sprintf("call.WithULongParameter(%q, uint64(%s))", p.Name, p.Name)
	case KindDouble:
		return fmt.Sprintf("call.WithDoubleParameter(%q, float64(%s))", p.Name, p.Name)
	case KindString:
		return fmt.Sprintf("call.WithStringParameter(%q, string(%s))", p.Name, p.Name)
	case KindInPtr:
		return fmt.Sprintf("call.WithPointerParameter(%q, %s)", p.Name, p.Name)
	case KindOutPtr:
		return fmt.Sprintf("call.WithOutputParameter(%q, %s)", p.Name, p.Name)
	case KindInTypedPtr:
		return fmt.Sprintf("call.WithParameterOfType(%q, %q, %s)", p.Type, p.Name, p.Name)
	case KindOutTypedPtr:
		return fmt.Sprintf("call.WithOutputParameterOfType(%q, %q, %s)", p.Type, p.Name, p.Name)
	case KindParamCustom:
		return p.Code
	default:
		return ""
	}
}

// Return describes the return of a mockable function. Code carries the
// verbatim splice of KindReturnCustom.
type Return struct {
	Kind ReturnKind
	Type string
	Code string
}

// Void reports whether the function returns nothing. A void return never
// attempts value decoding.
func (r Return) Void() bool { return r.Kind == KindReturnVoid }

// Custom reports whether caller code replaces the whole default
// return-resolution procedure.
func (r Return) Custom() bool { return r.Kind == KindReturnCustom }

// DecodeStmt renders the decode-and-return statement the default resolve
// hook executes when a return value is configured.
func (r Return) DecodeStmt() string {
	switch r.Kind {
	case KindReturnVoid:
		return "return"
	case KindReturnBool:
		return fmt.Sprintf("return %s(call.BoolReturnValue())", r.Type)
	case KindReturnInt:
		return fmt.Sprintf("return %s(call.IntReturnValue())", r.Type)
	case KindReturnUint:
		return fmt.Sprintf("return %s(call.UintReturnValue())", r.Type)
	case KindReturnLong:
		return fmt.Sprintf("return %s(call.LongReturnValue())", r.Type)
	case KindReturnULong:
		return fmt.Sprintf("return %s(call.ULongReturnValue())", r.Type)
	case KindReturnDouble:
		return fmt.Sprintf("return %s(call.DoubleReturnValue())", r.Type)
	case KindReturnString:
		return fmt.Sprintf("return %s(call.StringReturnValue())", r.Type)
	case KindReturnPtr:
		return fmt.Sprintf("return call.PointerReturnValue().(%s)", r.Type)
	default:
		return r.Code
	}
}

// target identifies the original implementation a mock wraps.
type target struct {
	PkgPath string
	PkgName string
	Name    string
}

// pkgRef identifies a package the target's parameter or result types
// reference. Declared type strings name these packages verbatim, so the
// generated file must import each one under its package name.
type pkgRef struct {
	Path string
	Name string
}

// Signature is the full descriptor of one mockable function: the mock
// name (also the registered call name), the wrapped target, the return
// descriptor, and the ordered parameter descriptors. A nil parameter list
// is the empty sentinel: all per-parameter emission is suppressed.
type Signature struct {
	Name   string
	Target target

	// TargetExpr is the rendered selector of the original implementation,
	// filled in by the generator once imports are uniqued.
	TargetExpr string

	Return Return
	Params []Param

	// TypePkgs lists the packages the target's parameter and result types
	// reference, sorted by path.
	TypePkgs []pkgRef
}

// DeclList renders the typed-declaration parameter list used by the entry
// point and pass-through signatures, e.g. "x float64, y float64".
func (s Signature) DeclList() string {
	decls := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		decls = append(decls, p.Name+" "+p.Type)
	}

	return strings.Join(decls, ", ")
}

// TypeList renders the type-only parameter list used for function
// prototypes, e.g. "float64, float64".
func (s Signature) TypeList() string {
	typs := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		typs = append(typs, p.Type)
	}

	return strings.Join(typs, ", ")
}

// NameList renders the forwarding argument list, e.g. "x, y".
func (s Signature) NameList() string {
	names := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		names = append(names, p.Name)
	}

	return strings.Join(names, ", ")
}

// SubmitStmts renders the per-kind submission statements of the default
// record hook, in declaration order. KindIgnore parameters are omitted;
// KindParamCustom splices appear verbatim at their position.
func (s Signature) SubmitStmts() []string {
	stmts := make([]string, 0, len(s.Params))
	for _, p := range s.Params {
		if stmt := p.submitStmt(); stmt != "" {
			stmts = append(stmts, stmt)
		}
	}

	return stmts
}

// HookDeclList renders the hook parameter list: the two synthetic leading
// parameters followed by the function's own. The synthetic parameters are
// never prepended to the entry point or pass-through signatures.
func (s Signature) HookDeclList() string {
	decl := "svc moxie.Service, call moxie.Call"
	if len(s.Params) > 0 {
		decl += ", " + s.DeclList()
	}

	return decl
}

// HookArgTail renders the trailing hook-call arguments after the service
// handle and call record.
func (s Signature) HookArgTail() string {
	if len(s.Params) == 0 {
		return ""
	}

	return ", " + s.NameList()
}

// ResultType renders the return type of the entry point; empty for void.
func (s Signature) ResultType() string {
	if s.Return.Void() {
		return ""
	}

	return s.Return.Type
}

// Unexported returns the mock name with its first rune lowered, used to
// name the generated default hooks.
func (s Signature) Unexported() string {
	if s.Name == "" {
		return ""
	}

	r := []rune(s.Name)
	r[0] = unicode.ToLower(r[0])

	return string(r)
}

func (s Signature) validate() error {
	if len(s.Params) > maxArity {
		return fmt.Errorf("too many parameters: %d (max %d)", len(s.Params), maxArity)
	}

	for i, p := range s.Params {
		if p.Name == "" || p.Type == "" {
			return fmt.Errorf("parameter %d: missing name or type", i)
		}
		if p.Kind == KindParamCustom && p.Code == "" {
			return fmt.Errorf("parameter %q: custom parameter without code", p.Name)
		}
	}

	if !s.Return.Void() && s.Return.Type == "" {
		return fmt.Errorf("missing return type")
	}
	if s.Return.Custom() && s.Return.Code == "" {
		return fmt.Errorf("custom return without code")
	}

	return nil
}
