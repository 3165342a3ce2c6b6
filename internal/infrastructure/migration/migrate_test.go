package migration

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestStatusOf(t *testing.T) {
	files := []MigrationFile{
		{Version: "20250301090000", Name: "crm_schema"},
		{Version: "20250301090100", Name: "crm_views_functions"},
		{Version: "20250401000000", Name: "seed"},
	}

	t.Run("nothing applied", func(t *testing.T) {
		st, err := statusOf(0, false, files)
		require.NoError(t, err)
		assert.Equal(t, 0, st.Applied)
		assert.Len(t, st.Pending, 3)
	})

	t.Run("partially applied", func(t *testing.T) {
		st, err := statusOf(20250301090100, false, files)
		require.NoError(t, err)
		assert.Equal(t, uint(20250301090100), st.Version)
		assert.Equal(t, 2, st.Applied)
		require.Len(t, st.Pending, 1)
		assert.Equal(t, "seed", st.Pending[0].Name)
	})

	t.Run("dirty flag carried", func(t *testing.T) {
		st, err := statusOf(20250401000000, true, files)
		require.NoError(t, err)
		assert.True(t, st.Dirty)
		assert.Empty(t, st.Pending)
	})

	t.Run("invalid version", func(t *testing.T) {
		_, err := statusOf(0, false, []MigrationFile{{Version: "x", Name: "bad"}})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "x_bad")
	})
}

func TestSourceURL(t *testing.T) {
	assert.Equal(t, "file://migrations", sourceURL("migrations"))
	assert.Equal(t, "file:///srv/crm/migrations", sourceURL("/srv/crm/migrations"))
}

func TestMigrateLog(t *testing.T) {
	core, recorded := observer.New(zapcore.DebugLevel)
	l := migrateLog{zap.New(core).Sugar()}

	assert.True(t, l.Verbose())
	l.Printf("Finished %d/u %s (read %v)\n", 20250301090000, "crm_schema", "2ms")

	require.Len(t, recorded.All(), 1)
	assert.Equal(t, "Finished 20250301090000/u crm_schema (read 2ms)", recorded.All()[0].Message)

	quiet := migrateLog{zap.NewNop().Sugar()}
	assert.False(t, quiet.Verbose())
}
