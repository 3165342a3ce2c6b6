// Package codegen renders a catalog as the Go source of the declared
// catalog.
package codegen

import (
	"bytes"
	"fmt"
	"go/format"
	"os"
	"strconv"
	"strings"
	"text/template"

	"github.com/brokerdesk/crm/internal/schema"
)

const schemaImport = "github.com/brokerdesk/crm/internal/schema"

var sourceTemplate = template.Must(template.New("catalog").Funcs(template.FuncMap{
	"quote": strconv.Quote,
}).Parse(`// Code generated by schemactl generate. DO NOT EDIT.

package {{.Package}}
{{if .Qualifier}}
import "` + schemaImport + `"
{{end}}
const declaredSchema = {{quote .Catalog.Schema}}

var declaredRelations = []{{.Qualifier}}Relation{
{{- range .Catalog.Relations}}
	{
		{{$.Header .}},
		Columns: []{{$.Qualifier}}Column{
{{- range .Columns}}
			{{$.Column .}},
{{- end}}
		},
{{- if .Relationships}}
		Relationships: []{{$.Qualifier}}Relationship{
{{- range .Relationships}}
			{{$.Relationship .}},
{{- end}}
		},
{{- end}}
	},
{{- end}}
}

var declaredEnums = []{{.Qualifier}}Enum{
{{- range .Catalog.Enums}}
	{Name: {{quote .Name}}, Values: {{$.Strings .Values}}},
{{- end}}
}

var declaredFunctions = []{{.Qualifier}}Function{
{{- range .Catalog.Functions}}
	{{$.Function .}},
{{- end}}
}
`))

// renderer is the template data. Its methods render single literals.
type renderer struct {
	Package   string
	Qualifier string
	Catalog   *schema.Catalog
}

func (r renderer) Strings(items []string) string {
	quoted := make([]string, len(items))
	for i, s := range items {
		quoted[i] = strconv.Quote(s)
	}
	return "[]string{" + strings.Join(quoted, ", ") + "}"
}

func (r renderer) Header(rel schema.Relation) string {
	kind := "KindTable"
	if rel.Kind == schema.KindView {
		kind = "KindView"
	}
	s := fmt.Sprintf("Name: %s, Kind: %s%s", strconv.Quote(rel.Name), r.Qualifier, kind)
	if len(rel.PrimaryKey) > 0 {
		s += ", PrimaryKey: " + r.Strings(rel.PrimaryKey)
	}
	return s
}

func (r renderer) Column(c schema.Column) string {
	s := fmt.Sprintf("{Name: %s, Type: %s", strconv.Quote(c.Name), strconv.Quote(c.Type))
	if c.IsEnum {
		s += ", IsEnum: true"
	}
	if c.Nullable {
		s += ", Nullable: true"
	}
	if c.HasDefault {
		s += ", HasDefault: true"
	}
	return s + "}"
}

func (r renderer) Relationship(rel schema.Relationship) string {
	s := fmt.Sprintf("{ForeignKeyName: %s, Columns: %s", strconv.Quote(rel.ForeignKeyName), r.Strings(rel.Columns))
	if rel.IsOneToOne {
		s += ", IsOneToOne: true"
	}
	s += fmt.Sprintf(", ReferencedRelation: %s, ReferencedColumns: %s",
		strconv.Quote(rel.ReferencedRelation), r.Strings(rel.ReferencedColumns))
	if rel.Inferred {
		s += ", Inferred: true"
	}
	return s + "}"
}

func (r renderer) Function(f schema.Function) string {
	s := "{Name: " + strconv.Quote(f.Name)
	if len(f.Args) > 0 {
		args := make([]string, len(f.Args))
		for i, a := range f.Args {
			args[i] = fmt.Sprintf("{Name: %s, Type: %s}", strconv.Quote(a.Name), strconv.Quote(a.Type))
		}
		s += ", Args: []" + r.Qualifier + "Arg{" + strings.Join(args, ", ") + "}"
	}
	return s + ", Returns: " + strconv.Quote(f.Returns) + "}"
}

// Render returns the gofmt-ed source declaring cat in package pkg. Outside
// package schema the catalog types are imported and qualified.
func Render(cat *schema.Catalog, pkg string) ([]byte, error) {
	if pkg == "" {
		return nil, fmt.Errorf("package name is required")
	}
	sorted := cat.Clone()
	sorted.Sort()

	data := renderer{Package: pkg, Catalog: sorted}
	if pkg != "schema" {
		data.Qualifier = "schema."
	}

	var buf bytes.Buffer
	if err := sourceTemplate.Execute(&buf, data); err != nil {
		return nil, fmt.Errorf("execute template: %w", err)
	}
	src, err := format.Source(buf.Bytes())
	if err != nil {
		return nil, fmt.Errorf("format source: %w", err)
	}
	return src, nil
}

// WriteFile renders cat and writes it to path
func WriteFile(path string, cat *schema.Catalog, pkg string) error {
	src, err := Render(cat, pkg)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, src, 0o644); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}
