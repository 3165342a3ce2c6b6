package persistence

import (
	"testing"

	"github.com/brokerdesk/crm/internal/schema"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSortDirection(t *testing.T) {
	for in, want := range map[string]string{
		"":                           "DESC",
		"ASC":                        "ASC",
		"  asc  ":                    "ASC",
		"desc":                       "DESC",
		"ascending":                  "DESC",
		"ASC; DROP TABLE clients;--": "DESC",
	} {
		t.Run(in, func(t *testing.T) {
			assert.Equal(t, want, sortDirection(in))
		})
	}
}

func TestOrdering_Clause(t *testing.T) {
	o := orderingFor(schema.Clients.Relation())

	tests := []struct {
		name      string
		requested string
		dir       string
		want      string
	}{
		{"empty uses created_at", "", "", "created_at DESC"},
		{"known column", "last_name", "asc", "last_name ASC"},
		{"enum column", "client_type", "desc", "client_type DESC"},
		{"column of another table", "policy_number", "asc", "created_at ASC"},
		{"injection attempt", "id; DROP TABLE clients;--", "", "created_at DESC"},
		{"case sensitive", "LAST_NAME", "", "created_at DESC"},
		{"surrounding whitespace", "  status  ", "", "status DESC"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, o.clause(tt.requested, tt.dir))
		})
	}
}

func TestOrderingFor_Fallback(t *testing.T) {
	t.Run("created_at", func(t *testing.T) {
		assert.Equal(t, "created_at", orderingFor(schema.Policies.Relation()).fallback)
	})

	t.Run("first column of a keyless view", func(t *testing.T) {
		rel := schema.DashboardStats.Relation()
		require.Empty(t, rel.PrimaryKey)
		assert.Equal(t, rel.Columns[0].Name, orderingFor(rel).fallback)
	})

	t.Run("primary key", func(t *testing.T) {
		rel := &schema.Relation{
			Name:       "t",
			PrimaryKey: []string{"code"},
			Columns:    []schema.Column{{Name: "label"}, {Name: "code"}},
		}
		assert.Equal(t, "code", orderingFor(rel).fallback)
	})

	t.Run("no columns means no clause", func(t *testing.T) {
		assert.Empty(t, orderingFor(&schema.Relation{Name: "t"}).clause("x", "asc"))
	})
}
