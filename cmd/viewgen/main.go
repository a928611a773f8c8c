// Command viewgen writes the fixed-arity View types of package ecs.
//
//	go generate ./internal/core/ecs
package main

import (
	"bytes"
	"flag"
	"fmt"
	"go/format"
	"os"
	"strings"
	"text/template"
)

var (
	letters = []string{"A", "B", "C", "D", "E", "F", "G", "H"}
	vars    = []string{"a", "b", "c", "d", "e", "f", "g", "h"}
)

type field struct {
	Var  string
	Type string
}

type arity struct {
	N      int
	Fields []field
}

func newArity(n int) arity {
	a := arity{N: n}
	for i := 0; i < n; i++ {
		a.Fields = append(a.Fields, field{Var: vars[i], Type: letters[i]})
	}
	return a
}

func (a arity) join(sep string, fn func(f field) string) string {
	parts := make([]string, len(a.Fields))
	for i, f := range a.Fields {
		parts[i] = fn(f)
	}
	return strings.Join(parts, sep)
}

func (a arity) TypeArgs() string   { return a.join(", ", func(f field) string { return f.Type }) }
func (a arity) TypeParams() string { return a.TypeArgs() + " any" }

func (a arity) Params() string {
	return a.join(", ", func(f field) string { return f.Var + " *" + f.Type })
}

func (a arity) Refs() string {
	return a.join(", ", func(f field) string { return "&v." + f.Var + ".dense[" + f.Var + "Idx]" })
}

// loop feeds the shared iteration body; Fn is the callee for each match.
type loop struct {
	arity
	Fn string
}

func (a arity) Loop(fn string) loop { return loop{arity: a, Fn: fn} }

func (a arity) Indices() string {
	return a.join(", ", func(f field) string { return "&v." + f.Var + ".sparseIndex" })
}

func (a arity) Types() string {
	return a.join(", ", func(f field) string { return "v." + f.Var + ".Type()" })
}

func (a arity) Probes() string {
	return a.join(" && ", func(f field) string { return "v." + f.Var + ".index(id) != tombstone" })
}

func (a arity) Describe() string {
	if a.N == 1 {
		return a.Fields[0].Type
	}
	head := make([]string, 0, a.N-1)
	for _, f := range a.Fields[:a.N-1] {
		head = append(head, f.Type)
	}
	return strings.Join(head, ", ") + " and " + a.Fields[a.N-1].Type
}

const viewTemplate = `// Code generated by viewgen; DO NOT EDIT.

package ecs
{{define "loop"}}
{{- if eq .N 1}}
	for i := 0; i < len(v.a.dense); i++ {
		{{.Fn}}(v.a.entities[i], &v.a.dense[i])
	}
{{- else}}
	ents := v.driver().entities
	for _, id := range ents {
{{- range .Fields}}
		{{.Var}}Idx := v.{{.Var}}.index(id)
		if {{.Var}}Idx == tombstone {
			continue
		}
{{- end}}
		{{.Fn}}(id, {{.Refs}})
	}
{{- end}}
{{- end}}{{range .}}
// View{{.N}} iterates the entities that own {{.Describe}}.
type View{{.N}}[{{.TypeParams}}] struct {
{{- range .Fields}}
	{{.Var}} *SparseSet[{{.Type}}]
{{- end}}
}

// Job{{.N}} is the ExecuteJob form of a View{{.N}} callback.
type Job{{.N}}[{{.TypeParams}}] interface {
	Execute(id EntityID, {{.Params}})
}

// NewView{{.N}} resolves the pools of w, creating empty ones as needed.
func NewView{{.N}}[{{.TypeParams}}](w *World) View{{.N}}[{{.TypeArgs}}] {
	v := View{{.N}}[{{.TypeArgs}}]{
{{- range .Fields}}
		{{.Var}}: GetPool[{{.Type}}](w),
{{- end}}
	}
{{- if gt .N 1}}
	checkDistinct({{.Types}})
{{- end}}
	return v
}
{{if gt .N 1}}
func (v View{{.N}}[{{.TypeArgs}}]) driver() *sparseIndex {
	return smallest({{.Indices}})
}
{{end}}
// Len returns the size of the driving pool, an upper bound on matches.
func (v View{{.N}}[{{.TypeArgs}}]) Len() int {
{{- if eq .N 1}}
	return len(v.a.dense)
{{- else}}
	return len(v.driver().entities)
{{- end}}
}

func (v View{{.N}}[{{.TypeArgs}}]) ForEach(fn func(id EntityID, {{.Params}})) {
{{- template "loop" .Loop "fn"}}
}

// ExecuteJob runs job over the view. Value jobs are boxed into the
// interface; RunJob{{.N}} avoids that.
func (v View{{.N}}[{{.TypeArgs}}]) ExecuteJob(job Job{{.N}}[{{.TypeArgs}}]) {
{{- template "loop" .Loop "job.Execute"}}
}

// RunJob{{.N}} runs job over v without converting it to an interface.
func RunJob{{.N}}[{{.TypeParams}}, J Job{{.N}}[{{.TypeArgs}}]](v View{{.N}}[{{.TypeArgs}}], job J) {
{{- template "loop" .Loop "job.Execute"}}
}

// Count returns the number of matching entities.
func (v View{{.N}}[{{.TypeArgs}}]) Count() int {
{{- if eq .N 1}}
	return len(v.a.dense)
{{- else}}
	n := 0
	for _, id := range v.driver().entities {
		if {{.Probes}} {
			n++
		}
	}
	return n
{{- end}}
}

// Each{{.N}} runs fn over NewView{{.N}}[{{.TypeArgs}}](w).
func Each{{.N}}[{{.TypeParams}}](w *World, fn func(id EntityID, {{.Params}})) {
	NewView{{.N}}[{{.TypeArgs}}](w).ForEach(fn)
}
{{- end}}
`

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "fatal: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	out := flag.String("out", "view_generated.go", "output file")
	maxArity := flag.Int("max", 5, "highest view arity")
	flag.Parse()
	return writeViews(*out, *maxArity)
}

func writeViews(path string, maxArity int) error {
	src, err := generate(maxArity)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// generate renders and gofmts the views of arity 1 through maxArity.
func generate(maxArity int) ([]byte, error) {
	if maxArity < 1 || maxArity > len(letters) {
		return nil, fmt.Errorf("max arity must be in [1, %d], got %d", len(letters), maxArity)
	}

	arities := make([]arity, 0, maxArity)
	for n := 1; n <= maxArity; n++ {
		arities = append(arities, newArity(n))
	}

	tmpl, err := template.New("view").Parse(viewTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse template: %w", err)
	}
	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, arities); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format output: %w", err)
	}
	return src, nil
}
