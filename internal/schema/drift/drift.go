// Package drift compares the declared catalog against a live one
package drift

import (
	"fmt"
	"io"
	"slices"
	"strconv"
	"strings"

	"github.com/brokerdesk/crm/internal/schema"
)

// Kind classifies a difference
type Kind string

const (
	MissingRelation      Kind = "missing_relation"
	ExtraRelation        Kind = "extra_relation"
	RelationKindMismatch Kind = "relation_kind_mismatch"
	PrimaryKeyMismatch   Kind = "primary_key_mismatch"
	MissingColumn        Kind = "missing_column"
	ExtraColumn          Kind = "extra_column"
	ColumnTypeMismatch   Kind = "column_type_mismatch"
	NullabilityMismatch  Kind = "nullability_mismatch"
	DefaultMismatch      Kind = "default_mismatch"
	MissingRelationship  Kind = "missing_relationship"
	ExtraRelationship    Kind = "extra_relationship"
	MissingEnum          Kind = "missing_enum"
	ExtraEnum            Kind = "extra_enum"
	EnumValuesMismatch   Kind = "enum_values_mismatch"
	MissingFunction      Kind = "missing_function"
	ExtraFunction        Kind = "extra_function"
	SignatureMismatch    Kind = "signature_mismatch"
)

// Difference is one way the live database departs from the declarations.
// Missing means declared but absent from the database, extra means present
// in the database but not declared.
type Difference struct {
	Kind     Kind   `json:"kind" yaml:"kind"`
	Object   string `json:"object" yaml:"object"`
	Declared string `json:"declared,omitempty" yaml:"declared,omitempty"`
	Live     string `json:"live,omitempty" yaml:"live,omitempty"`
}

func (d Difference) String() string {
	switch {
	case d.Declared != "" && d.Live != "":
		return fmt.Sprintf("%s %s: declared %s, live %s", d.Kind, d.Object, d.Declared, d.Live)
	case d.Declared != "":
		return fmt.Sprintf("%s %s: declared %s", d.Kind, d.Object, d.Declared)
	case d.Live != "":
		return fmt.Sprintf("%s %s: live %s", d.Kind, d.Object, d.Live)
	default:
		return fmt.Sprintf("%s %s", d.Kind, d.Object)
	}
}

// Report lists the differences found by Compare
type Report struct {
	Differences []Difference `json:"differences" yaml:"differences"`
}

// Clean reports whether no difference was found
func (r Report) Clean() bool {
	return len(r.Differences) == 0
}

// Write prints one difference per line
func (r Report) Write(w io.Writer) error {
	for _, d := range r.Differences {
		if _, err := fmt.Fprintln(w, d.String()); err != nil {
			return err
		}
	}
	return nil
}

// Options tunes Compare
type Options struct {
	// IgnoreRelations are skipped on both sides
	IgnoreRelations []string
	// IgnoreFunctions are skipped on both sides
	IgnoreFunctions []string
}

// DefaultOptions ignores the migration bookkeeping table
func DefaultOptions() Options {
	return Options{IgnoreRelations: []string{"schema_migrations"}}
}

type comparer struct {
	opts  Options
	diffs []Difference
}

func (c *comparer) add(kind Kind, object, declared, live string) {
	c.diffs = append(c.diffs, Difference{Kind: kind, Object: object, Declared: declared, Live: live})
}

// Compare returns every difference between the declared and the live
// catalog. Inferred relationships are not backed by constraints and are
// skipped. The result is ordered by object then kind.
func Compare(declared, live *schema.Catalog, opts Options) Report {
	c := &comparer{opts: opts}
	c.relations(declared.Relations, live.Relations)
	c.enums(declared.Enums, live.Enums)
	c.functions(declared.Functions, live.Functions)

	slices.SortStableFunc(c.diffs, func(a, b Difference) int {
		if n := strings.Compare(a.Object, b.Object); n != 0 {
			return n
		}
		return strings.Compare(string(a.Kind), string(b.Kind))
	})
	return Report{Differences: c.diffs}
}

// byName indexes items by name and returns the sorted union of both sides
func byName[T any](declared, live []T, name func(T) string) (map[string]T, map[string]T, []string) {
	d := make(map[string]T, len(declared))
	l := make(map[string]T, len(live))
	var names []string
	for _, item := range declared {
		d[name(item)] = item
		names = append(names, name(item))
	}
	for _, item := range live {
		l[name(item)] = item
		if _, ok := d[name(item)]; !ok {
			names = append(names, name(item))
		}
	}
	slices.Sort(names)
	return d, l, slices.Compact(names)
}

func (c *comparer) relations(declared, live []schema.Relation) {
	d, l, names := byName(declared, live, func(r schema.Relation) string { return r.Name })
	for _, name := range names {
		if slices.Contains(c.opts.IgnoreRelations, name) {
			continue
		}
		dr, inDeclared := d[name]
		lr, inLive := l[name]
		switch {
		case !inLive:
			c.add(MissingRelation, "relation "+name, string(dr.Kind), "")
		case !inDeclared:
			c.add(ExtraRelation, "relation "+name, "", string(lr.Kind))
		default:
			c.relation(dr, lr)
		}
	}
}

func (c *comparer) relation(dr, lr schema.Relation) {
	object := "relation " + dr.Name
	if dr.Kind != lr.Kind {
		c.add(RelationKindMismatch, object, string(dr.Kind), string(lr.Kind))
	}
	if !slices.Equal(dr.PrimaryKey, lr.PrimaryKey) {
		c.add(PrimaryKeyMismatch, object, formatList(dr.PrimaryKey), formatList(lr.PrimaryKey))
	}

	d, l, names := byName(dr.Columns, lr.Columns, func(col schema.Column) string { return col.Name })
	for _, name := range names {
		object := "column " + dr.Name + "." + name
		dc, inDeclared := d[name]
		lc, inLive := l[name]
		switch {
		case !inLive:
			c.add(MissingColumn, object, dc.Type, "")
		case !inDeclared:
			c.add(ExtraColumn, object, "", lc.Type)
		default:
			if dc.Type != lc.Type || dc.IsEnum != lc.IsEnum {
				c.add(ColumnTypeMismatch, object, dc.Type, lc.Type)
			}
			if dc.Nullable != lc.Nullable {
				c.add(NullabilityMismatch, object, nullability(dc.Nullable), nullability(lc.Nullable))
			}
			if dc.HasDefault != lc.HasDefault {
				c.add(DefaultMismatch, object, defaultState(dc.HasDefault), defaultState(lc.HasDefault))
			}
		}
	}

	c.relationships(dr.Name, dr.Relationships, lr.Relationships)
}

func (c *comparer) relationships(relation string, declared, live []schema.Relationship) {
	key := func(r schema.Relationship) string {
		return fmt.Sprintf("%s %s -> %s %s one_to_one=%t",
			r.ForeignKeyName, formatList(r.Columns), r.ReferencedRelation, formatList(r.ReferencedColumns), r.IsOneToOne)
	}
	var dRels, lRels []schema.Relationship
	for _, r := range declared {
		if !r.Inferred {
			dRels = append(dRels, r)
		}
	}
	for _, r := range live {
		if !r.Inferred {
			lRels = append(lRels, r)
		}
	}
	d, l, keys := byName(dRels, lRels, key)
	for _, k := range keys {
		dr, inDeclared := d[k]
		lr, inLive := l[k]
		switch {
		case !inLive:
			c.add(MissingRelationship, "relationship "+relation+"."+dr.ForeignKeyName, k, "")
		case !inDeclared:
			c.add(ExtraRelationship, "relationship "+relation+"."+lr.ForeignKeyName, "", k)
		}
	}
}

func (c *comparer) enums(declared, live []schema.Enum) {
	d, l, names := byName(declared, live, func(e schema.Enum) string { return e.Name })
	for _, name := range names {
		object := "enum " + name
		de, inDeclared := d[name]
		le, inLive := l[name]
		switch {
		case !inLive:
			c.add(MissingEnum, object, formatList(de.Values), "")
		case !inDeclared:
			c.add(ExtraEnum, object, "", formatList(le.Values))
		case !slices.Equal(de.Values, le.Values):
			c.add(EnumValuesMismatch, object, formatList(de.Values), formatList(le.Values))
		}
	}
}

// functions pairs overloads by argument types. When a name is left with
// one unmatched function on each side the pair is a signature mismatch.
func (c *comparer) functions(declared, live []schema.Function) {
	d, l := overloads(declared), overloads(live)
	names := make([]string, 0, len(d)+len(l))
	for name := range d {
		names = append(names, name)
	}
	for name := range l {
		names = append(names, name)
	}
	slices.Sort(names)

	for _, name := range slices.Compact(names) {
		if slices.Contains(c.opts.IgnoreFunctions, name) {
			continue
		}
		object := "function " + name
		var missing, extra []schema.Function
		for _, df := range d[name] {
			lf, ok := findOverload(l[name], df.Identity())
			if !ok {
				missing = append(missing, df)
				continue
			}
			if df.Signature() != lf.Signature() {
				c.add(SignatureMismatch, object, df.Signature(), lf.Signature())
			}
		}
		for _, lf := range l[name] {
			if _, ok := findOverload(d[name], lf.Identity()); !ok {
				extra = append(extra, lf)
			}
		}

		if len(missing) == 1 && len(extra) == 1 {
			c.add(SignatureMismatch, object, missing[0].Signature(), extra[0].Signature())
			continue
		}
		for _, f := range missing {
			c.add(MissingFunction, object, f.Signature(), "")
		}
		for _, f := range extra {
			c.add(ExtraFunction, object, "", f.Signature())
		}
	}
}

func overloads(fns []schema.Function) map[string][]schema.Function {
	out := make(map[string][]schema.Function, len(fns))
	for _, f := range fns {
		out[f.Name] = append(out[f.Name], f)
	}
	return out
}

func findOverload(fns []schema.Function, identity string) (schema.Function, bool) {
	for _, f := range fns {
		if f.Identity() == identity {
			return f, true
		}
	}
	return schema.Function{}, false
}

func formatList(items []string) string {
	return "(" + strings.Join(items, ", ") + ")"
}

func nullability(nullable bool) string {
	if nullable {
		return "null"
	}
	return "not null"
}

func defaultState(has bool) string {
	return "default=" + strconv.FormatBool(has)
}
