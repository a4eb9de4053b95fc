//go:build ignore

// gen.go writes kinds.go: one named type per numeric kind, each implementing NumCast with a plain Go conversion per target kind.
package main

import (
	"bytes"
	"go/format"
	"log"
	"os"
	"text/template"
)

type kind struct {
	Name string // Exported name of the kind, used for the named type and the To method
	Go   string // Underlying Go type
}

var kinds = []kind{
	{"Uint8", "uint8"},
	{"Uint16", "uint16"},
	{"Uint32", "uint32"},
	{"Uint64", "uint64"},
	{"Uint", "uint"},
	{"Int8", "int8"},
	{"Int16", "int16"},
	{"Int32", "int32"},
	{"Int64", "int64"},
	{"Int", "int"},
	{"Float32", "float32"},
	{"Float64", "float64"},
}

var kindsTemplate = template.Must(template.New("kinds").Parse(`// Code generated by gen.go; DO NOT EDIT.

package numcast
{{range $from := .}}
// {{$from.Name}} is a {{$from.Go}} that implements NumCast.
type {{$from.Name}} {{$from.Go}}

var _ NumCast = {{$from.Name}}(0)
{{range $to := $}}
func (n {{$from.Name}}) To{{$to.Name}}() {{$to.Go}} { return {{$to.Go}}(n) }
{{- end}}
{{end}}`))

func main() {

	buf := &bytes.Buffer{}

	if err := kindsTemplate.Execute(buf, kinds); err != nil {
		log.Fatal(err)
	}

	src, err := format.Source(buf.Bytes())
	if err != nil {
		log.Fatal(err)
	}

	if err := os.WriteFile("kinds.go", src, 0644); err != nil {
		log.Fatal(err)
	}

}
