package schema

import (
	"errors"
	"testing"

	"github.com/brokerdesk/crm/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeclared(t *testing.T) {
	cat := Declared()

	t.Run("relation counts", func(t *testing.T) {
		assert.Equal(t, "public", cat.Schema)
		assert.Len(t, cat.RelationNames(KindTable), 20)
		assert.Len(t, cat.RelationNames(KindView), 3)
		assert.Len(t, cat.RelationNames(""), 23)
		assert.Len(t, cat.Enums, 10)
		assert.Len(t, cat.Functions, 2)
	})

	t.Run("is sorted", func(t *testing.T) {
		sorted := cat.Clone()
		sorted.Sort()
		assert.Equal(t, sorted, cat)
	})

	t.Run("returns a copy", func(t *testing.T) {
		a := Declared()
		a.Relations[0].Columns[0].Name = "changed"
		a.Enums[0].Values[0] = "changed"
		b := Declared()
		assert.NotEqual(t, "changed", b.Relations[0].Columns[0].Name)
		assert.NotEqual(t, "changed", b.Enums[0].Values[0])
	})

	t.Run("descriptor relations are private copies", func(t *testing.T) {
		before := Declared()
		leaked := Clients.Relation()
		leaked.Columns[0].Name = "hijacked"
		leaked.PrimaryKey[0] = "hijacked"
		policies := Policies.Relation()
		policies.Relationships[0].ReferencedColumns[0] = "hijacked"

		assert.Equal(t, before, Declared())
		assert.NotEqual(t, "hijacked", Clients.Relation().Columns[0].Name)
		assert.NotEqual(t, "hijacked", PolicySummary.Relation().Columns[0].Name)
	})

	t.Run("every relationship points at a declared column", func(t *testing.T) {
		for _, r := range cat.Relations {
			for _, rel := range r.Relationships {
				target, err := cat.Relation(rel.ReferencedRelation)
				require.NoError(t, err, "%s -> %s", r.Name, rel.ReferencedRelation)
				assert.Equal(t, target.Kind == KindView, rel.Inferred, rel.ForeignKeyName)
				for _, c := range rel.Columns {
					_, ok := r.Column(c)
					assert.True(t, ok, "%s.%s", r.Name, c)
				}
				for _, c := range rel.ReferencedColumns {
					_, ok := target.Column(c)
					assert.True(t, ok, "%s.%s", target.Name, c)
				}
			}
		}
	})

	t.Run("enum columns name a declared enum", func(t *testing.T) {
		for _, r := range cat.Relations {
			for _, c := range r.Columns {
				if !c.IsEnum {
					continue
				}
				_, err := cat.Enum(c.Type)
				assert.NoError(t, err, "%s.%s", r.Name, c.Name)
			}
		}
	})

	t.Run("tables have a primary key, views do not", func(t *testing.T) {
		for _, r := range cat.Relations {
			if r.Kind == KindTable {
				assert.NotEmpty(t, r.PrimaryKey, r.Name)
			} else {
				assert.Empty(t, r.PrimaryKey, r.Name)
				assert.Empty(t, r.Relationships, r.Name)
			}
		}
	})
}

func TestCatalog_Lookups(t *testing.T) {
	cat := Declared()

	t.Run("relation", func(t *testing.T) {
		r, err := cat.Relation("policy_summary")
		require.NoError(t, err)
		assert.Equal(t, KindView, r.Kind)
		assert.False(t, r.Insertable())

		_, err = cat.Relation("invoices")
		assert.True(t, errors.Is(err, shared.ErrUnknownRelation))
	})

	t.Run("table rejects views", func(t *testing.T) {
		r, err := cat.Table("policy_covers")
		require.NoError(t, err)
		assert.Equal(t, []string{"policy_id", "type_id"}, r.PrimaryKey)
		assert.True(t, r.Insertable())

		_, err = cat.Table("client_summary")
		assert.True(t, errors.Is(err, shared.ErrUnknownTable))
	})

	t.Run("column optionality", func(t *testing.T) {
		r, err := cat.Table("employees")
		require.NoError(t, err)
		id, ok := r.Column("id")
		require.True(t, ok)
		assert.False(t, id.OptionalOnInsert())

		clients, err := cat.Table("clients")
		require.NoError(t, err)
		id, ok = clients.Column("id")
		require.True(t, ok)
		assert.True(t, id.OptionalOnInsert())

		_, ok = clients.Column("email")
		assert.False(t, ok)
	})

	t.Run("enum", func(t *testing.T) {
		e, err := cat.Enum("lead_status")
		require.NoError(t, err)
		assert.Equal(t, "new", e.Values[0])
		assert.True(t, e.Contains("awaiting_docs"))
		assert.False(t, e.Contains("archived"))

		_, err = cat.Enum("lead_source")
		assert.True(t, errors.Is(err, shared.ErrUnknownEnum))
	})

	t.Run("function", func(t *testing.T) {
		f, ok := cat.Function("get_client_full_name")
		require.True(t, ok)
		assert.Equal(t, "get_client_full_name(client_record clients) returns text", f.Signature())

		f, ok = cat.Function("generate_quote_number")
		require.True(t, ok)
		assert.Equal(t, "generate_quote_number() returns text", f.Signature())

		_, ok = cat.Function("nope")
		assert.False(t, ok)
	})
}

func TestCatalog_Sort(t *testing.T) {
	cat := &Catalog{
		Relations: []Relation{
			{Name: "b", Columns: []Column{{Name: "z"}, {Name: "a"}}, PrimaryKey: []string{"z", "a"}},
			{Name: "a", Relationships: []Relationship{
				{ForeignKeyName: "fk", ReferencedRelation: "y"},
				{ForeignKeyName: "fk", ReferencedRelation: "x"},
			}},
		},
		Enums:     []Enum{{Name: "s", Values: []string{"b", "a"}}, {Name: "r"}},
		Functions: []Function{{Name: "g"}, {Name: "f"}},
	}
	cat.Sort()

	assert.Equal(t, []string{"a", "b"}, cat.RelationNames(""))
	assert.Equal(t, []string{"a", "z"}, cat.Relations[1].ColumnNames())
	assert.Equal(t, []string{"z", "a"}, cat.Relations[1].PrimaryKey)
	assert.Equal(t, "x", cat.Relations[0].Relationships[0].ReferencedRelation)
	assert.Equal(t, "r", cat.Enums[0].Name)
	assert.Equal(t, []string{"b", "a"}, cat.Enums[1].Values)
	assert.Equal(t, "f", cat.Functions[0].Name)
}

func TestCatalog_SortOverloads(t *testing.T) {
	cat := &Catalog{Functions: []Function{
		{Name: "renewal_window", Args: []Arg{{Name: "days", Type: "integer"}}},
		{Name: "renewal_window", Args: []Arg{{Name: "from_date", Type: "date"}, {Name: "days", Type: "integer"}}},
		{Name: "generate_quote_number"},
	}}
	cat.Sort()

	ids := make([]string, len(cat.Functions))
	for i := range cat.Functions {
		ids[i] = cat.Functions[i].Identity()
	}
	assert.Equal(t, []string{
		"generate_quote_number()",
		"renewal_window(date, integer)",
		"renewal_window(integer)",
	}, ids)
}

func TestCatalog_Without(t *testing.T) {
	cat := Declared()
	cat.Relations = append(cat.Relations, Relation{Name: "schema_migrations", Kind: KindTable})

	trimmed := cat.Without("schema_migrations")
	assert.Equal(t, Declared(), trimmed)
	assert.Contains(t, cat.RelationNames(""), "schema_migrations")
}
