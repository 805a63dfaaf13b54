package moxie

import (
	"text/template"
)

// fileTmpl renders one destination file. Emission is driven entirely by
// the signature model's renderings: the typed-declaration list for entry
// points, the name-only list for forwarding, and the per-kind submission
// statements inside the default record hook. The two synthetic leading
// parameters (service handle and call record) appear only on hook
// signatures. The !moxie constraint keeps generated output out of
// descriptor-tagged loads, so regeneration never sees its own previous
// output. Output is piped through go/format before writing.
const fileTmplString = `// Code generated by moxie. DO NOT EDIT.

//go:build !moxie

package {{ .PackageName }}

import (
	moxie "github.com/moxielabs/moxie"
{{- range $path, $name := .Imports }}
	{{ $name }} "{{ $path }}"
{{- end }}
)
{{ range .Mocks }}
// {{ .Name }}RecordFunc submits {{ .Name }}'s arguments to the expectation service.
type {{ .Name }}RecordFunc func({{ .HookDeclList }})

// {{ .Name }}ResolveFunc resolves {{ .Name }}'s return value.
type {{ .Name }}ResolveFunc func({{ .HookDeclList }}){{ if .ResultType }} {{ .ResultType }}{{ end }}

// {{ .Name }}Mock controls interception of {{ .Name }}.
var {{ .Name }}Mock = moxie.NewState[{{ .Name }}RecordFunc, {{ .Name }}ResolveFunc]({{ printf "%q" .Name }}, {{ .Unexported }}Record, {{ .Unexported }}Resolve)

// {{ .Name }} routes calls to {{ .TargetExpr }} through the interception state.
func {{ .Name }}({{ .DeclList }}){{ if .ResultType }} {{ .ResultType }}{{ end }} {
	if !{{ .Name }}Mock.Active() {
		{{ if .Return.Void }}{{ .Name }}Real({{ .NameList }})
		return{{ else }}return {{ .Name }}Real({{ .NameList }}){{ end }}
	}
	svc := moxie.ServiceFor({{ .Name }}Mock.Scope())
	call := svc.ActualCall({{ printf "%q" .Name }})
	if record := {{ .Name }}Mock.RecordHook(); record != nil {
		record(svc, call{{ .HookArgTail }})
	}
	if resolve := {{ .Name }}Mock.ResolveHook(); resolve != nil {
		{{ if .Return.Void }}resolve(svc, call{{ .HookArgTail }})
		return{{ else }}return resolve(svc, call{{ .HookArgTail }}){{ end }}
	}
	{{ if .Return.Void }}{{ .Name }}Real({{ .NameList }}){{ else }}return {{ .Name }}Real({{ .NameList }}){{ end }}
}

// {{ .Name }}Real invokes the original implementation unmodified.
func {{ .Name }}Real({{ .DeclList }}){{ if .ResultType }} {{ .ResultType }}{{ end }} {
	{{ if .Return.Void }}{{ .TargetExpr }}({{ .NameList }}){{ else }}return {{ .TargetExpr }}({{ .NameList }}){{ end }}
}

func {{ .Unexported }}Record({{ .HookDeclList }}) {
{{- range .SubmitStmts }}
	{{ . }}
{{- end }}
}

func {{ .Unexported }}Resolve({{ .HookDeclList }}){{ if .ResultType }} {{ .ResultType }}{{ end }} {
{{- if .Return.Custom }}
	{{ .Return.Code }}
{{- else }}
	if call.HasReturnValue() {
		{{ .Return.DecodeStmt }}
	}
	{{ if .Return.Void }}{{ .Name }}Real({{ .NameList }}){{ else }}return {{ .Name }}Real({{ .NameList }}){{ end }}
{{- end }}
}
{{ end }}`

var fileTmpl = template.Must(template.New("").Parse(fileTmplString))
