package moxie

import (
	"fmt"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func TestSignatureRenderings(t *testing.T) {
	sig := Signature{
		Name:   "Pow",
		Return: Return{Kind: KindReturnDouble, Type: "float64"},
		Params: []Param{
			{Kind: KindDouble, Type: "float64", Name: "x"},
			{Kind: KindDouble, Type: "float64", Name: "y"},
		},
	}

	a := assert.New(t)
	a.Equal("x float64, y float64", sig.DeclList())
	a.Equal("float64, float64", sig.TypeList())
	a.Equal("x, y", sig.NameList())
	a.Equal("svc moxie.Service, call moxie.Call, x float64, y float64", sig.HookDeclList())
	a.Equal(", x, y", sig.HookArgTail())
	a.Equal("float64", sig.ResultType())
	a.Equal("pow", sig.Unexported())
	a.Equal([]string{
		`call.WithDoubleParameter("x", float64(x))`,
		`call.WithDoubleParameter("y", float64(y))`,
	}, sig.SubmitStmts())
}

func TestSignatureRenderingsEmpty(t *testing.T) {
	sig := Signature{
		Name:   "Tick",
		Return: Return{Kind: KindReturnVoid},
	}

	a := assert.New(t)
	a.Equal("", sig.DeclList())
	a.Equal("", sig.TypeList())
	a.Equal("", sig.NameList())
	a.Equal("svc moxie.Service, call moxie.Call", sig.HookDeclList())
	a.Equal("", sig.HookArgTail())
	a.Equal("", sig.ResultType())
	a.Empty(sig.SubmitStmts())
}

func TestParamSubmitStmt(t *testing.T) {
	for _, tc := range []struct {
		param Param
		want  string
	}{
		{Param{Kind: KindBool, Type: "bool", Name: "b"}, `call.WithBoolParameter("b", bool(b))`},
		{Param{Kind: KindInt, Type: "int", Name: "n"}, `call.WithIntParameter("n", int(n))`},
		{Param{Kind: KindUint, Type: "uint", Name: "u"}, `call.WithUintParameter("u", uint(u))`},
		{Param{Kind: KindLong, Type: "int64", Name: "l"}, `call.WithLongParameter("l", int64(l))`},
		{Param{Kind: KindULong, Type: "uint64", Name: "ul"}, `call.WithULongParameter("ul", uint64(ul))`},
		{Param{Kind: KindDouble, Type: "float64", Name: "d"}, `call.WithDoubleParameter("d", float64(d))`},
		{Param{Kind: KindString, Type: "string", Name: "s"}, `call.WithStringParameter("s", string(s))`},
		{Param{Kind: KindInPtr, Type: "*int", Name: "p"}, `call.WithPointerParameter("p", p)`},
		{Param{Kind: KindOutPtr, Type: "*int", Name: "dst"}, `call.WithOutputParameter("dst", dst)`},
		{Param{Kind: KindInTypedPtr, Type: "*pkg.T", Name: "t"}, `call.WithParameterOfType("*pkg.T", "t", t)`},
		{Param{Kind: KindOutTypedPtr, Type: "*pkg.T", Name: "t"}, `call.WithOutputParameterOfType("*pkg.T", "t", t)`},
		{Param{Kind: KindIgnore, Type: "int", Name: "skip"}, ""},
		{Param{Kind: KindParamCustom, Type: "T", Name: "c", Code: "submit(call, c)"}, "submit(call, c)"},
	} {
		t.Run(tc.param.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.param.submitStmt())
		})
	}
}

func TestReturnDecodeStmt(t *testing.T) {
	for _, tc := range []struct {
		ret  Return
		want string
	}{
		{Return{Kind: KindReturnVoid}, "return"},
		{Return{Kind: KindReturnBool, Type: "bool"}, "return bool(call.BoolReturnValue())"},
		{Return{Kind: KindReturnInt, Type: "int"}, "return int(call.IntReturnValue())"},
		{Return{Kind: KindReturnUint, Type: "uint"}, "return uint(call.UintReturnValue())"},
		{Return{Kind: KindReturnLong, Type: "int64"}, "return int64(call.LongReturnValue())"},
		{Return{Kind: KindReturnULong, Type: "uint64"}, "return uint64(call.ULongReturnValue())"},
		{Return{Kind: KindReturnDouble, Type: "float64"}, "return float64(call.DoubleReturnValue())"},
		{Return{Kind: KindReturnString, Type: "string"}, "return string(call.StringReturnValue())"},
		{Return{Kind: KindReturnPtr, Type: "*pkg.T"}, "return call.PointerReturnValue().(*pkg.T)"},
		{Return{Kind: KindReturnCustom, Type: "int", Code: "return decode(call)"}, "return decode(call)"},
	} {
		t.Run(tc.ret.Kind.String(), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.ret.DecodeStmt())
		})
	}
}

func TestSignatureValidate(t *testing.T) {
	valid := Signature{
		Name:   "F",
		Return: Return{Kind: KindReturnInt, Type: "int"},
		Params: []Param{{Kind: KindInt, Type: "int", Name: "n"}},
	}
	assert.NoError(t, valid.validate())

	for _, tc := range []struct {
		name string
		sig  Signature
		want string
	}{
		{
			name: "too many parameters",
			sig: Signature{
				Name:   "F",
				Return: Return{Kind: KindReturnVoid},
				Params: make33Params(),
			},
			want: "too many parameters: 33 (max 32)",
		},
		{
			name: "missing parameter name",
			sig: Signature{
				Name:   "F",
				Return: Return{Kind: KindReturnVoid},
				Params: []Param{{Kind: KindInt, Type: "int"}},
			},
			want: "parameter 0: missing name or type",
		},
		{
			name: "missing parameter type",
			sig: Signature{
				Name:   "F",
				Return: Return{Kind: KindReturnVoid},
				Params: []Param{{Kind: KindInt, Name: "n"}},
			},
			want: "parameter 0: missing name or type",
		},
		{
			name: "custom parameter without code",
			sig: Signature{
				Name:   "F",
				Return: Return{Kind: KindReturnVoid},
				Params: []Param{{Kind: KindParamCustom, Type: "int", Name: "n"}},
			},
			want: `parameter "n": custom parameter without code`,
		},
		{
			name: "missing return type",
			sig: Signature{
				Name:   "F",
				Return: Return{Kind: KindReturnInt},
			},
			want: "missing return type",
		},
		{
			name: "custom return without code",
			sig: Signature{
				Name:   "F",
				Return: Return{Kind: KindReturnCustom, Type: "int"},
			},
			want: "custom return without code",
		},
	} {
		t.Run(tc.name, func(t *testing.T) {
			assert.EqualError(t, tc.sig.validate(), tc.want)
		})
	}
}

func make33Params() []Param {
	params := make([]Param, maxArity+1)
	for i := range params {
		params[i] = Param{Kind: KindInt, Type: "int", Name: fmt.Sprintf("p%d", i)}
	}

	return params
}

var allParamKinds = []ParamKind{
	KindBool, KindInt, KindUint, KindLong, KindULong,
	KindDouble, KindString, KindInPtr, KindOutPtr,
	KindInTypedPtr, KindOutTypedPtr, KindIgnore, KindParamCustom,
}

func genParams(t *rapid.T) []Param {
	n := rapid.IntRange(0, maxArity).Draw(t, "arity")

	params := make([]Param, n)
	for i := range params {
		kind := rapid.SampledFrom(allParamKinds).Draw(t, fmt.Sprintf("kind%d", i))

		p := Param{Kind: kind, Type: "int", Name: fmt.Sprintf("p%d", i)}
		if kind == KindParamCustom {
			p.Code = fmt.Sprintf("custom%d()", i)
		}
		params[i] = p
	}

	return params
}

func TestSignatureRenderingProperties(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		sig := Signature{
			Name:   "F",
			Return: Return{Kind: KindReturnVoid},
			Params: genParams(t),
		}

		assert.NoError(t, sig.validate())

		// Decl, type and name lists always cover every parameter in order.
		names := strings.Split(sig.NameList(), ", ")
		if sig.NameList() == "" {
			names = nil
		}
		assert.Len(t, names, len(sig.Params))
		for i, p := range sig.Params {
			assert.Equal(t, p.Name, names[i])
		}

		// Submissions cover exactly the non-ignored parameters, in order.
		stmts := sig.SubmitStmts()
		i := 0
		for _, p := range sig.Params {
			want := p.submitStmt()
			if want == "" {
				continue
			}
			assert.Equal(t, want, stmts[i])
			i++
		}
		assert.Len(t, stmts, i)

		// Renderings are deterministic.
		assert.Equal(t, sig.DeclList(), sig.DeclList())
		assert.Equal(t, stmts, sig.SubmitStmts())
	})
}
