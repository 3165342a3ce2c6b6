// Package introspect reads the catalog of a live PostgreSQL schema from the
// system catalogs.
package introspect

import (
	"context"
	"database/sql"
	"fmt"
	"slices"

	sq "github.com/Masterminds/squirrel"
	"github.com/brokerdesk/crm/internal/schema"
	"github.com/lib/pq"
	"go.uber.org/zap"
)

// Querier is satisfied by *sql.DB, *sql.Conn and *sql.Tx
type Querier interface {
	QueryContext(ctx context.Context, query string, args ...any) (*sql.Rows, error)
}

// Introspector loads catalogs from a database
type Introspector struct {
	db     Querier
	logger *zap.Logger
}

// New creates an Introspector over db
func New(db Querier, logger *zap.Logger) *Introspector {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Introspector{db: db, logger: logger}
}

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

// Load reads every table, view, enum, constraint and function of the named
// schema. The result is sorted.
func (i *Introspector) Load(ctx context.Context, schemaName string) (*schema.Catalog, error) {
	relations, err := i.loadRelations(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("load relations: %w", err)
	}
	constraints, err := i.loadConstraints(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("load constraints: %w", err)
	}
	enums, err := i.loadEnums(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("load enums: %w", err)
	}
	functions, err := i.loadFunctions(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("load functions: %w", err)
	}
	lineage, err := i.loadViewLineage(ctx, schemaName)
	if err != nil {
		return nil, fmt.Errorf("load view lineage: %w", err)
	}

	applyConstraints(relations, constraints)
	inferViewRelationships(relations, constraints, lineage)

	cat := &schema.Catalog{
		Schema:    schemaName,
		Relations: relations,
		Enums:     enums,
		Functions: functions,
	}
	cat.Sort()

	i.logger.Debug("Catalog loaded",
		zap.String("schema", schemaName),
		zap.Int("relations", len(relations)),
		zap.Int("enums", len(enums)),
		zap.Int("functions", len(functions)),
	)
	return cat, nil
}

func (i *Introspector) query(ctx context.Context, b sq.SelectBuilder) (*sql.Rows, error) {
	query, args, err := b.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build query: %w", err)
	}
	return i.db.QueryContext(ctx, query, args...)
}

func relationKind(relkind string) (schema.RelationKind, bool) {
	switch relkind {
	case "r", "p":
		return schema.KindTable, true
	case "v", "m":
		return schema.KindView, true
	default:
		return "", false
	}
}

func (i *Introspector) loadRelations(ctx context.Context, schemaName string) ([]schema.Relation, error) {
	b := psql.Select(
		"c.relname",
		"c.relkind",
		"a.attname",
		"format_type(a.atttypid, a.atttypmod)",
		"t.typtype = 'e'",
		"NOT a.attnotnull",
		"a.atthasdef",
	).
		From("pg_catalog.pg_class c").
		Join("pg_catalog.pg_namespace n ON n.oid = c.relnamespace").
		Join("pg_catalog.pg_attribute a ON a.attrelid = c.oid").
		Join("pg_catalog.pg_type t ON t.oid = a.atttypid").
		Where(sq.Eq{"n.nspname": schemaName}).
		Where(sq.Eq{"c.relkind": []string{"r", "p", "v", "m"}}).
		Where("a.attnum > 0").
		Where("NOT a.attisdropped").
		OrderBy("c.relname", "a.attnum")

	rows, err := i.query(ctx, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var relations []schema.Relation
	for rows.Next() {
		var (
			relName, relKind string
			col              schema.Column
		)
		if err := rows.Scan(&relName, &relKind, &col.Name, &col.Type, &col.IsEnum, &col.Nullable, &col.HasDefault); err != nil {
			return nil, err
		}
		kind, ok := relationKind(relKind)
		if !ok {
			continue
		}
		if n := len(relations); n == 0 || relations[n-1].Name != relName {
			relations = append(relations, schema.Relation{Name: relName, Kind: kind})
		}
		last := &relations[len(relations)-1]
		last.Columns = append(last.Columns, col)
	}
	return relations, rows.Err()
}

// constraint is a primary key, unique or foreign key constraint
type constraint struct {
	name        string
	kind        string // p, u or f
	relation    string
	columns     []string
	refRelation string
	refColumns  []string
}

const constraintColumns = `ARRAY(SELECT a.attname::text
	FROM unnest(con.conkey) WITH ORDINALITY AS k(attnum, ord)
	JOIN pg_catalog.pg_attribute a ON a.attrelid = con.conrelid AND a.attnum = k.attnum
	ORDER BY k.ord)`

const constraintRefColumns = `ARRAY(SELECT a.attname::text
	FROM unnest(con.confkey) WITH ORDINALITY AS k(attnum, ord)
	JOIN pg_catalog.pg_attribute a ON a.attrelid = con.confrelid AND a.attnum = k.attnum
	ORDER BY k.ord)`

func (i *Introspector) loadConstraints(ctx context.Context, schemaName string) ([]constraint, error) {
	b := psql.Select(
		"con.conname",
		"con.contype",
		"rel.relname",
		constraintColumns,
		"coalesce(frel.relname, '')",
		constraintRefColumns,
	).
		From("pg_catalog.pg_constraint con").
		Join("pg_catalog.pg_class rel ON rel.oid = con.conrelid").
		Join("pg_catalog.pg_namespace n ON n.oid = rel.relnamespace").
		LeftJoin("pg_catalog.pg_class frel ON frel.oid = con.confrelid").
		Where(sq.Eq{"n.nspname": schemaName}).
		Where(sq.Eq{"con.contype": []string{"p", "u", "f"}}).
		OrderBy("rel.relname", "con.conname")

	rows, err := i.query(ctx, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []constraint
	for rows.Next() {
		var c constraint
		if err := rows.Scan(&c.name, &c.kind, &c.relation, pq.Array(&c.columns), &c.refRelation, pq.Array(&c.refColumns)); err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

// applyConstraints sets primary keys and foreign-key relationships. A
// foreign key is one-to-one when its columns are exactly the columns of
// the primary key or of a unique constraint of the same table.
func applyConstraints(relations []schema.Relation, constraints []constraint) {
	index := make(map[string]*schema.Relation, len(relations))
	for i := range relations {
		index[relations[i].Name] = &relations[i]
	}
	uniqueSets := make(map[string][][]string)
	for _, c := range constraints {
		if c.kind == "p" || c.kind == "u" {
			uniqueSets[c.relation] = append(uniqueSets[c.relation], sortedCopy(c.columns))
		}
		if c.kind == "p" {
			if r, ok := index[c.relation]; ok {
				r.PrimaryKey = c.columns
			}
		}
	}
	for _, c := range constraints {
		if c.kind != "f" {
			continue
		}
		r, ok := index[c.relation]
		if !ok {
			continue
		}
		cols := sortedCopy(c.columns)
		oneToOne := slices.ContainsFunc(uniqueSets[c.relation], func(set []string) bool {
			return slices.Equal(set, cols)
		})
		r.Relationships = append(r.Relationships, schema.Relationship{
			ForeignKeyName:     c.name,
			Columns:            c.columns,
			IsOneToOne:         oneToOne,
			ReferencedRelation: c.refRelation,
			ReferencedColumns:  c.refColumns,
		})
	}
}

// viewColumn is a view output column that passes a table column through
// unchanged
type viewColumn struct {
	view         string
	column       string
	sourceTable  string
	sourceColumn string
}

// targetEntryPattern matches the output columns of a stored view query that
// carry an origin table and column.
const targetEntryPattern = `:resname (\S+) :ressortgroupref \d+ :resorigtbl (\d+) :resorigcol (\d+)`

// loadViewLineage reads, for every view of the schema, the columns that
// come straight from a table column.
func (i *Introspector) loadViewLineage(ctx context.Context, schemaName string) ([]viewColumn, error) {
	b := psql.Select("DISTINCT v.relname", "va.attname", "src.relname", "sa.attname").
		From("pg_catalog.pg_class v").
		Join("pg_catalog.pg_namespace n ON n.oid = v.relnamespace").
		Join("pg_catalog.pg_rewrite r ON r.ev_class = v.oid").
		JoinClause("CROSS JOIN LATERAL regexp_matches(r.ev_action::text, ?, 'g') AS m(g)", targetEntryPattern).
		Join("pg_catalog.pg_attribute va ON va.attrelid = v.oid AND va.attname = m.g[1]").
		Join("pg_catalog.pg_class src ON src.oid = m.g[2]::oid").
		Join("pg_catalog.pg_attribute sa ON sa.attrelid = src.oid AND sa.attnum = m.g[3]::int2").
		Where(sq.Eq{"n.nspname": schemaName}).
		Where(sq.Eq{"v.relkind": []string{"v", "m"}}).
		OrderBy("v.relname", "va.attname")

	rows, err := i.query(ctx, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var out []viewColumn
	for rows.Next() {
		var vc viewColumn
		if err := rows.Scan(&vc.view, &vc.column, &vc.sourceTable, &vc.sourceColumn); err != nil {
			return nil, err
		}
		out = append(out, vc)
	}
	return out, rows.Err()
}

// inferViewRelationships copies each foreign key onto every view that
// exposes all referenced columns. The copy keeps the constraint name and
// points at the view columns.
func inferViewRelationships(relations []schema.Relation, constraints []constraint, lineage []viewColumn) {
	if len(lineage) == 0 {
		return
	}
	index := make(map[string]*schema.Relation, len(relations))
	var views []string
	for i := range relations {
		index[relations[i].Name] = &relations[i]
		if relations[i].Kind == schema.KindView {
			views = append(views, relations[i].Name)
		}
	}

	for _, c := range constraints {
		if c.kind != "f" {
			continue
		}
		r, ok := index[c.relation]
		if !ok || r.Kind != schema.KindTable {
			continue
		}
		base := slices.IndexFunc(r.Relationships, func(rel schema.Relationship) bool {
			return rel.ForeignKeyName == c.name && !rel.Inferred
		})
		if base < 0 {
			continue
		}
		for _, view := range views {
			cols, ok := exposedColumns(lineage, view, c.refRelation, c.refColumns)
			if !ok {
				continue
			}
			r.Relationships = append(r.Relationships, schema.Relationship{
				ForeignKeyName:     c.name,
				Columns:            slices.Clone(c.columns),
				IsOneToOne:         r.Relationships[base].IsOneToOne,
				ReferencedRelation: view,
				ReferencedColumns:  cols,
				Inferred:           true,
			})
		}
	}
}

// exposedColumns maps the columns of table onto the view columns that
// carry them. ok is false unless every column is exposed.
func exposedColumns(lineage []viewColumn, view, table string, columns []string) ([]string, bool) {
	out := make([]string, 0, len(columns))
	for _, col := range columns {
		idx := slices.IndexFunc(lineage, func(vc viewColumn) bool {
			return vc.view == view && vc.sourceTable == table && vc.sourceColumn == col
		})
		if idx < 0 {
			return nil, false
		}
		out = append(out, lineage[idx].column)
	}
	return out, true
}

func sortedCopy(s []string) []string {
	out := slices.Clone(s)
	slices.Sort(out)
	return out
}

func (i *Introspector) loadEnums(ctx context.Context, schemaName string) ([]schema.Enum, error) {
	b := psql.Select("t.typname", "e.enumlabel").
		From("pg_catalog.pg_type t").
		Join("pg_catalog.pg_enum e ON e.enumtypid = t.oid").
		Join("pg_catalog.pg_namespace n ON n.oid = t.typnamespace").
		Where(sq.Eq{"n.nspname": schemaName}).
		OrderBy("t.typname", "e.enumsortorder")

	rows, err := i.query(ctx, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var enums []schema.Enum
	for rows.Next() {
		var name, label string
		if err := rows.Scan(&name, &label); err != nil {
			return nil, err
		}
		if n := len(enums); n == 0 || enums[n-1].Name != name {
			enums = append(enums, schema.Enum{Name: name})
		}
		last := &enums[len(enums)-1]
		last.Values = append(last.Values, label)
	}
	return enums, rows.Err()
}

const functionArgTypes = `ARRAY(SELECT format_type(t.oid, NULL)
	FROM unnest(p.proargtypes::oid[]) WITH ORDINALITY AS a(oid, ord)
	JOIN pg_catalog.pg_type t ON t.oid = a.oid
	ORDER BY a.ord)`

// loadFunctions reads plain functions of the schema. Trigger functions and
// functions owned by extensions are skipped. Only input arguments are kept.
func (i *Introspector) loadFunctions(ctx context.Context, schemaName string) ([]schema.Function, error) {
	b := psql.Select(
		"p.proname",
		"coalesce(p.proargnames, ARRAY[]::text[])",
		"coalesce(p.proargmodes::text[], ARRAY[]::text[])",
		functionArgTypes,
		"format_type(p.prorettype, NULL)",
	).
		From("pg_catalog.pg_proc p").
		Join("pg_catalog.pg_namespace n ON n.oid = p.pronamespace").
		Where(sq.Eq{"n.nspname": schemaName}).
		Where(sq.Eq{"p.prokind": "f"}).
		Where("p.prorettype <> 'pg_catalog.trigger'::pg_catalog.regtype").
		Where("NOT EXISTS (SELECT 1 FROM pg_catalog.pg_depend d WHERE d.objid = p.oid AND d.deptype = 'e')").
		OrderBy("p.proname", "pg_catalog.pg_get_function_identity_arguments(p.oid)")

	rows, err := i.query(ctx, b)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var functions []schema.Function
	for rows.Next() {
		var (
			fn       schema.Function
			argNames []string
			argModes []string
			argTypes []string
		)
		if err := rows.Scan(&fn.Name, pq.Array(&argNames), pq.Array(&argModes), pq.Array(&argTypes), &fn.Returns); err != nil {
			return nil, err
		}
		fn.Args = inputArgs(argNames, argModes, argTypes)
		functions = append(functions, fn)
	}
	return functions, rows.Err()
}

// inputArgs pairs argument names with the input argument types. names and
// modes cover every argument while types lists only inputs; no modes means
// every argument is an input.
func inputArgs(names, modes, types []string) []schema.Arg {
	if len(modes) > 0 {
		var inNames []string
		for idx, mode := range modes {
			if mode != "i" && mode != "b" && mode != "v" {
				continue
			}
			name := ""
			if idx < len(names) {
				name = names[idx]
			}
			inNames = append(inNames, name)
		}
		names = inNames
	}

	var args []schema.Arg
	for idx, typ := range types {
		arg := schema.Arg{Type: typ}
		if idx < len(names) {
			arg.Name = names[idx]
		}
		args = append(args, arg)
	}
	return args
}
