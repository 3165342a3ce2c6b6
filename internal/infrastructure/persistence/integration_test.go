package persistence_test

import (
	"context"
	"database/sql"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"
	"time"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/brokerdesk/crm/internal/domain/shared"
	"github.com/brokerdesk/crm/internal/infrastructure/config"
	"github.com/brokerdesk/crm/internal/infrastructure/migration"
	"github.com/brokerdesk/crm/internal/infrastructure/persistence"
	"github.com/brokerdesk/crm/internal/infrastructure/persistence/models"
	"github.com/brokerdesk/crm/internal/schema"
	"github.com/brokerdesk/crm/internal/schema/codegen"
	"github.com/brokerdesk/crm/internal/schema/drift"
	"github.com/brokerdesk/crm/internal/schema/introspect"
	"github.com/google/uuid"
	_ "github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gormpostgres "gorm.io/driver/postgres"
)

// startPostgres runs a PostgreSQL container for the test and returns its DSN
func startPostgres(t *testing.T) string {
	t.Helper()
	if testing.Short() {
		t.Skip("Skipping integration test in short mode")
	}
	testcontainers.SkipIfProviderIsNotHealthy(t)

	ctx := context.Background()
	container, err := tcpostgres.Run(ctx,
		"postgres:16-alpine",
		tcpostgres.WithDatabase("crm_test"),
		tcpostgres.WithUsername("postgres"),
		tcpostgres.WithPassword("postgres"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(60*time.Second)),
	)
	require.NoError(t, err, "Failed to start PostgreSQL container")
	t.Cleanup(func() {
		if err := container.Terminate(context.Background()); err != nil {
			t.Logf("Warning: Failed to terminate container: %v", err)
		}
	})

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	require.NoError(t, err, "Failed to get connection string")
	return dsn
}

func migrationsPath(t *testing.T) string {
	t.Helper()
	_, filename, _, ok := runtime.Caller(0)
	require.True(t, ok)
	return filepath.Join(filepath.Dir(filename), "..", "..", "..", "migrations")
}

func TestMigratedSchema_Integration(t *testing.T) {
	dsn := startPostgres(t)
	ctx := context.Background()

	m, err := migration.NewFromURL(dsn, migrationsPath(t), nil)
	require.NoError(t, err)
	t.Cleanup(func() { _ = m.Close() })
	require.NoError(t, m.Up())

	st, err := m.Status()
	require.NoError(t, err)
	assert.False(t, st.Dirty)
	assert.Empty(t, st.Pending)

	t.Run("live catalog matches the declared catalog", func(t *testing.T) {
		sqlDB, err := sql.Open("postgres", dsn)
		require.NoError(t, err)
		defer sqlDB.Close()

		live, err := introspect.New(sqlDB, nil).Load(ctx, "public")
		require.NoError(t, err)

		report := drift.Compare(schema.Declared(), live, drift.DefaultOptions())
		var out strings.Builder
		require.NoError(t, report.Write(&out))
		assert.True(t, report.Clean(), "schema drift:\n%s", out.String())
	})

	t.Run("generated source matches the committed catalog", func(t *testing.T) {
		sqlDB, err := sql.Open("postgres", dsn)
		require.NoError(t, err)
		defer sqlDB.Close()

		live, err := introspect.New(sqlDB, nil).Load(ctx, "public")
		require.NoError(t, err)

		got, err := codegen.Render(live.Without("schema_migrations"), "schema")
		require.NoError(t, err)
		want, err := os.ReadFile(filepath.Join(migrationsPath(t), "..", "internal", "schema", "catalog_gen.go"))
		require.NoError(t, err)
		assert.Equal(t, string(want), string(got))
	})

	t.Run("repositories round-trip through the schema", func(t *testing.T) {
		db, err := persistence.Open(gormpostgres.Open(dsn), &config.DatabaseConfig{
			MaxOpenConns:    4,
			MaxIdleConns:    2,
			ConnMaxLifetime: 5,
			ConnMaxIdleTime: 5,
			SlowQuery:       200,
		}, nil, "silent")
		require.NoError(t, err)
		t.Cleanup(func() { _ = db.Close() })

		repos := db.Repositories()

		broker, err := repos.Employees.Insert(ctx, models.EmployeeInsert{
			ID:       uuid.New(),
			FullName: "Thandi Mokoena",
			Role:     crm.EmployeeRoleBroker,
		})
		require.NoError(t, err)

		client, err := repos.Clients.Insert(ctx, models.ClientInsert{
			ClientType: crm.ClientTypeBusiness,
			EntityName: models.Ptr("  Acme Holdings "),
			CreatedBy:  models.Ptr(broker.ID),
		})
		require.NoError(t, err)
		assert.NotEqual(t, uuid.Nil, client.ID)
		require.NotNil(t, client.Status)
		assert.Equal(t, crm.ClientStatusActive, *client.Status)
		require.NotNil(t, client.CreatedAt)

		name, err := repos.Functions.ClientFullName(ctx, client.ID)
		require.NoError(t, err)
		assert.Equal(t, "Acme Holdings", name)
		assert.Equal(t, name, client.FullName())

		insurer, err := repos.Insurers.Insert(ctx, models.InsurerInsert{Name: "Santam"})
		require.NoError(t, err)

		product, err := repos.Products.Insert(ctx, models.ProductInsert{InsurerID: insurer.ID, Name: "Commercial Motor"})
		require.NoError(t, err)

		policy, err := repos.Policies.Insert(ctx, models.PolicyInsert{
			PolicyNumber: "POL-0001",
			ClientID:     client.ID,
			InsurerID:    insurer.ID,
			ProductID:    product.ID,
		})
		require.NoError(t, err)

		_, err = repos.Policies.Insert(ctx, models.PolicyInsert{
			PolicyNumber: "POL-0001",
			ClientID:     client.ID,
			InsurerID:    insurer.ID,
			ProductID:    product.ID,
		})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)

		updated, err := repos.Policies.Update(ctx, persistence.Key{policy.ID}, models.PolicyUpdate{
			Status: models.Ptr(crm.PolicyStatusCancelled),
		})
		require.NoError(t, err)
		require.NotNil(t, updated.Status)
		assert.Equal(t, crm.PolicyStatusCancelled, *updated.Status)

		summaries, err := repos.PolicySummary.List(ctx, shared.Filter{}.Where("client_id", client.ID))
		require.NoError(t, err)
		require.Len(t, summaries, 1)
		assert.Equal(t, "Santam", *summaries[0].InsurerName)
		assert.Equal(t, "Acme Holdings", *summaries[0].ClientName)

		number, err := repos.Functions.GenerateQuoteNumber(ctx)
		require.NoError(t, err)
		assert.True(t, crm.IsQuoteNumber(number), number)
		_, err = repos.Quotes.Insert(ctx, models.QuoteInsert{QuoteNumber: number, ClientID: models.Ptr(client.ID)})
		require.NoError(t, err)

		parent := string(crm.ParentTypeClient)
		_, err = repos.Tasks.Insert(ctx, models.TaskInsert{
			Title:      "Collect fleet schedule",
			AssignedTo: models.Ptr(broker.ID),
			ParentID:   models.Ptr(client.ID),
			ParentType: models.Ptr(parent),
		})
		require.NoError(t, err)

		stats, err := repos.Functions.DashboardStats(ctx, broker.ID)
		require.NoError(t, err)
		assert.Equal(t, int64(1), *stats.MyTasks)
		assert.Equal(t, int64(1), *stats.PendingQuotes)

		stats, err = repos.Functions.DashboardStats(ctx, uuid.Nil)
		require.NoError(t, err)
		assert.Equal(t, int64(0), *stats.MyTasks)

		err = repos.Insurers.Delete(ctx, persistence.Key{insurer.ID})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)

		require.NoError(t, repos.Policies.Delete(ctx, persistence.Key{policy.ID}))
		_, err = repos.Policies.Get(ctx, persistence.Key{policy.ID})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})

	t.Run("down migrations remove the schema", func(t *testing.T) {
		require.NoError(t, m.Down())
		version, _, err := m.Version()
		require.NoError(t, err)
		assert.Zero(t, version)
	})
}
