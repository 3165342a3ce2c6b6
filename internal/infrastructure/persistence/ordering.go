package persistence

import (
	"strings"

	"github.com/brokerdesk/crm/internal/schema"
)

// ordering turns a requested sort into an ORDER BY clause. Only columns of
// the relation are accepted; anything else falls back to the default column.
type ordering struct {
	columns  map[string]struct{}
	fallback string
}

// orderingFor defaults to created_at, then the first primary key column,
// then the first column.
func orderingFor(rel *schema.Relation) ordering {
	o := ordering{columns: make(map[string]struct{}, len(rel.Columns))}
	for _, c := range rel.Columns {
		o.columns[c.Name] = struct{}{}
	}

	switch _, hasCreated := o.columns["created_at"]; {
	case hasCreated:
		o.fallback = "created_at"
	case len(rel.PrimaryKey) > 0:
		o.fallback = rel.PrimaryKey[0]
	case len(rel.Columns) > 0:
		o.fallback = rel.Columns[0].Name
	}
	return o
}

func (o ordering) column(requested string) string {
	requested = strings.TrimSpace(requested)
	if _, ok := o.columns[requested]; ok {
		return requested
	}
	return o.fallback
}

// clause returns "column ASC|DESC", or "" for a relation without columns.
func (o ordering) clause(requested, dir string) string {
	col := o.column(requested)
	if col == "" {
		return ""
	}
	return col + " " + sortDirection(dir)
}

// sortDirection is ASC only when asked for; everything else sorts newest first.
func sortDirection(dir string) string {
	if strings.EqualFold(strings.TrimSpace(dir), "asc") {
		return "ASC"
	}
	return "DESC"
}
