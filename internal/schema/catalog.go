// Package schema holds the declared catalog of the CRM database: every
// table, view, enum, foreign-key relationship and function the Go models
// mirror. catalog_gen.go is written by `schemactl generate` from a live
// database and must not be edited by hand.
package schema

import (
	"fmt"
	"slices"
	"sort"
	"strings"

	"github.com/brokerdesk/crm/internal/domain/shared"
)

// RelationKind distinguishes tables from views
type RelationKind string

const (
	KindTable RelationKind = "table"
	KindView  RelationKind = "view"
)

// Column is a column of a table or view
type Column struct {
	Name       string `yaml:"name"`
	Type       string `yaml:"type"`
	IsEnum     bool   `yaml:"is_enum,omitempty"`
	Nullable   bool   `yaml:"nullable,omitempty"`
	HasDefault bool   `yaml:"has_default,omitempty"`
}

// OptionalOnInsert reports whether an insert may leave the column out
func (c Column) OptionalOnInsert() bool {
	return c.Nullable || c.HasDefault
}

// Relationship is a foreign key from a relation's columns to another
// relation. Inferred relationships point at views and are derived from the
// view's column lineage rather than a constraint.
type Relationship struct {
	ForeignKeyName     string   `yaml:"foreign_key_name"`
	Columns            []string `yaml:"columns"`
	IsOneToOne         bool     `yaml:"is_one_to_one,omitempty"`
	ReferencedRelation string   `yaml:"referenced_relation"`
	ReferencedColumns  []string `yaml:"referenced_columns"`
	Inferred           bool     `yaml:"inferred,omitempty"`
}

// Relation is a table or a view
type Relation struct {
	Name          string         `yaml:"name"`
	Kind          RelationKind   `yaml:"kind"`
	Columns       []Column       `yaml:"columns"`
	PrimaryKey    []string       `yaml:"primary_key,omitempty"`
	Relationships []Relationship `yaml:"relationships,omitempty"`
}

// Column returns the named column
func (r *Relation) Column(name string) (*Column, bool) {
	for i := range r.Columns {
		if r.Columns[i].Name == name {
			return &r.Columns[i], true
		}
	}
	return nil, false
}

// ColumnNames returns the column names in declaration order
func (r *Relation) ColumnNames() []string {
	names := make([]string, len(r.Columns))
	for i, c := range r.Columns {
		names[i] = c.Name
	}
	return names
}

// Insertable reports whether rows can be written to the relation
func (r *Relation) Insertable() bool {
	return r.Kind == KindTable
}

// Enum is a database enum type with its ordered labels
type Enum struct {
	Name   string   `yaml:"name"`
	Values []string `yaml:"values"`
}

// Contains reports whether v is a label of the enum
func (e *Enum) Contains(v string) bool {
	return slices.Contains(e.Values, v)
}

// Arg is a function argument
type Arg struct {
	Name string `yaml:"name"`
	Type string `yaml:"type"`
}

// Function is a callable database function
type Function struct {
	Name    string `yaml:"name"`
	Args    []Arg  `yaml:"args,omitempty"`
	Returns string `yaml:"returns"`
}

// Signature renders the function as name(arg type, ...) returns type
func (f *Function) Signature() string {
	s := f.Name + "("
	for i, a := range f.Args {
		if i > 0 {
			s += ", "
		}
		if a.Name != "" {
			s += a.Name + " "
		}
		s += a.Type
	}
	return s + ") returns " + f.Returns
}

// Identity renders name(type, ...), which tells overloads apart
func (f *Function) Identity() string {
	types := make([]string, len(f.Args))
	for i, a := range f.Args {
		types[i] = a.Type
	}
	return f.Name + "(" + strings.Join(types, ", ") + ")"
}

// Catalog is the description of one database schema
type Catalog struct {
	Schema    string     `yaml:"schema"`
	Relations []Relation `yaml:"relations"`
	Enums     []Enum     `yaml:"enums"`
	Functions []Function `yaml:"functions"`
}

// Declared returns a copy of the catalog the Go models were generated from
func Declared() *Catalog {
	c := &Catalog{
		Schema:    declaredSchema,
		Relations: declaredRelations,
		Enums:     declaredEnums,
		Functions: declaredFunctions,
	}
	return c.Clone()
}

// Relation returns the named table or view
func (c *Catalog) Relation(name string) (*Relation, error) {
	for i := range c.Relations {
		if c.Relations[i].Name == name {
			return &c.Relations[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", shared.ErrUnknownRelation, name)
}

// Table returns the named table. Views are rejected.
func (c *Catalog) Table(name string) (*Relation, error) {
	r, err := c.Relation(name)
	if err != nil || r.Kind != KindTable {
		return nil, fmt.Errorf("%w: %q", shared.ErrUnknownTable, name)
	}
	return r, nil
}

// Enum returns the named enum
func (c *Catalog) Enum(name string) (*Enum, error) {
	for i := range c.Enums {
		if c.Enums[i].Name == name {
			return &c.Enums[i], nil
		}
	}
	return nil, fmt.Errorf("%w: %q", shared.ErrUnknownEnum, name)
}

// Function returns the named function
func (c *Catalog) Function(name string) (*Function, bool) {
	for i := range c.Functions {
		if c.Functions[i].Name == name {
			return &c.Functions[i], true
		}
	}
	return nil, false
}

// RelationNames returns the names of the relations of the given kind.
// An empty kind matches both.
func (c *Catalog) RelationNames(kind RelationKind) []string {
	var names []string
	for _, r := range c.Relations {
		if kind == "" || r.Kind == kind {
			names = append(names, r.Name)
		}
	}
	return names
}

// Sort orders relations, columns, relationships, enums and functions by
// name so two catalogs of the same schema compare and render identically.
// Enum labels and key columns keep their order.
func (c *Catalog) Sort() {
	sort.Slice(c.Relations, func(i, j int) bool { return c.Relations[i].Name < c.Relations[j].Name })
	for i := range c.Relations {
		r := &c.Relations[i]
		sort.Slice(r.Columns, func(a, b int) bool { return r.Columns[a].Name < r.Columns[b].Name })
		sort.Slice(r.Relationships, func(a, b int) bool {
			ra, rb := r.Relationships[a], r.Relationships[b]
			if ra.ForeignKeyName != rb.ForeignKeyName {
				return ra.ForeignKeyName < rb.ForeignKeyName
			}
			return ra.ReferencedRelation < rb.ReferencedRelation
		})
	}
	sort.Slice(c.Enums, func(i, j int) bool { return c.Enums[i].Name < c.Enums[j].Name })
	sort.Slice(c.Functions, func(i, j int) bool {
		fi, fj := &c.Functions[i], &c.Functions[j]
		if fi.Name != fj.Name {
			return fi.Name < fj.Name
		}
		return fi.Identity() < fj.Identity()
	})
}

// Without returns a copy of the catalog lacking the named relations
func (c *Catalog) Without(names ...string) *Catalog {
	out := c.Clone()
	out.Relations = slices.DeleteFunc(out.Relations, func(r Relation) bool {
		return slices.Contains(names, r.Name)
	})
	return out
}

// Clone returns a deep copy of the relation
func (r *Relation) Clone() *Relation {
	out := *r
	out.Columns = slices.Clone(r.Columns)
	out.PrimaryKey = slices.Clone(r.PrimaryKey)
	if r.Relationships != nil {
		out.Relationships = make([]Relationship, len(r.Relationships))
		for j, rel := range r.Relationships {
			rel.Columns = slices.Clone(rel.Columns)
			rel.ReferencedColumns = slices.Clone(rel.ReferencedColumns)
			out.Relationships[j] = rel
		}
	}
	return &out
}

// Clone returns a deep copy of the catalog
func (c *Catalog) Clone() *Catalog {
	out := &Catalog{
		Schema:    c.Schema,
		Relations: make([]Relation, len(c.Relations)),
		Enums:     make([]Enum, len(c.Enums)),
		Functions: make([]Function, len(c.Functions)),
	}
	for i := range c.Relations {
		out.Relations[i] = *c.Relations[i].Clone()
	}
	for i, e := range c.Enums {
		e.Values = slices.Clone(e.Values)
		out.Enums[i] = e
	}
	for i, f := range c.Functions {
		f.Args = slices.Clone(f.Args)
		out.Functions[i] = f
	}
	return out
}
