package printer

import (
	"text/template"

	"github.com/akrennmair/onyx/ast"
)

var (
	tmplFuncs = template.FuncMap{
		"chain":     ast.Chain,
		"kind":      kind,
		"name":      ast.Name,
		"expr":      toExpr,
		"params":    params,
		"typeName":  typeName,
		"localType": localType,
		"isDecl":    isDecl,
		"exported":  exported,
		"at":        at,
		"indent":    indent,
		"inc":       inc,
	}
	printerTemplate = template.Must(template.New("").Funcs(tmplFuncs).Parse(sourceTemplate))
)

const sourceTemplate = `
{{- define "main" -}}
{{- range $i, $decl := .Decls }}
{{- if $i }}
{{ end }}
{{- template "funcdef" $decl }}
{{- end }}
{{- end }}

{{- define "funcdef" -}}
{{ if exported . }}export {{ end }}{{ name . }} :: proc ({{ params . }}) -> {{ typeName .ReturnType }} {{ if .Body }}{{ template "block" (at .Body 0) }}{{ else }}---{{ end }}
{{ end }}

{{- define "block" -}}
{
{{- range $stmt := chain .Node.Body }}
{{ indent (inc $.Depth) }}{{ template "statement" (at $stmt (inc $.Depth)) }};
{{- end }}
{{- if .Node.Body }}
{{ indent .Depth }}{{ end }}{{ "}" }}
{{- end }}

{{- define "statement" }}
	{{- $n := .Node }}
	{{- if eq (kind $n) "ASSIGN" }}
		{{- if isDecl $n }}
			{{- name $n.Target }} : {{ localType $n.Target }}= {{ expr $n.Value }}
		{{- else }}
			{{- name $n }} = {{ expr $n.Value }}
		{{- end }}
	{{- else if eq (kind $n) "RETURN" }}
		{{- "return" }}{{ if $n.Expr }} {{ expr $n.Expr }}{{ end }}
	{{- else if eq (kind $n) "BLOCK" }}
		{{- template "block" . }}
	{{- else }}
		{{- expr $n }}
	{{- end }}
{{- end }}
`
