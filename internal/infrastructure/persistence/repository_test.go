package persistence

import (
	"context"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/brokerdesk/crm/internal/domain/shared"
	"github.com/brokerdesk/crm/internal/infrastructure/persistence/models"
	"github.com/brokerdesk/crm/internal/schema"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTableRepository_Insert(t *testing.T) {
	ctx := context.Background()

	t.Run("sends only provided columns and returns the stored row", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Clients, nil)
		id := uuid.New()

		mock.ExpectQuery(`INSERT INTO "clients" \(client_type,first_name\) VALUES \(\$1,\$2\) RETURNING \*`).
			WithArgs("personal", "Ann").
			WillReturnRows(sqlmock.NewRows([]string{"id", "client_type", "status", "first_name"}).
				AddRow(id.String(), "personal", "active", "Ann"))

		client, err := repo.Insert(ctx, models.ClientInsert{
			ClientType: crm.ClientTypePersonal,
			FirstName:  models.Ptr("Ann"),
		})
		require.NoError(t, err)
		assert.Equal(t, id, client.ID)
		require.NotNil(t, client.Status)
		assert.Equal(t, crm.ClientStatusActive, *client.Status)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("explicit null is written", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Clients, nil)

		mock.ExpectQuery(`INSERT INTO "clients" \(client_type,comments\) VALUES \(\$1,\$2\) RETURNING \*`).
			WithArgs("business", nil).
			WillReturnRows(sqlmock.NewRows([]string{"id", "client_type"}).
				AddRow(uuid.NewString(), "business"))

		_, err := repo.Insert(ctx, models.ClientInsert{
			ClientType: crm.ClientTypeBusiness,
			Comments:   models.Null[string](),
		})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects invalid enum values before querying", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Clients, nil)

		_, err := repo.Insert(ctx, models.ClientInsert{ClientType: "trust"})
		assert.ErrorIs(t, err, shared.ErrInvalidInput)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("maps unique violations", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Insurers, nil)

		mock.ExpectQuery(`INSERT INTO "insurers" \(name\) VALUES \(\$1\) RETURNING \*`).
			WithArgs("Santam").
			WillReturnError(&pgconn.PgError{Code: "23505", Message: "duplicate key value"})

		_, err := repo.Insert(ctx, models.InsurerInsert{Name: "Santam"})
		assert.ErrorIs(t, err, shared.ErrAlreadyExists)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTableRepository_Update(t *testing.T) {
	ctx := context.Background()

	t.Run("composite key", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.PolicyCovers, nil)
		policyID, typeID := uuid.New(), uuid.New()
		premium := decimal.RequireFromString("120.50")

		mock.ExpectQuery(`UPDATE "policy_covers" SET premium = \$1 WHERE policy_id = \$2 AND type_id = \$3 RETURNING \*`).
			WithArgs(premium, policyID, typeID).
			WillReturnRows(sqlmock.NewRows([]string{"policy_id", "type_id", "premium"}).
				AddRow(policyID.String(), typeID.String(), "120.50"))

		cover, err := repo.Update(ctx, Key{policyID, typeID}, models.PolicyCoverUpdate{
			Premium: models.Ptr(premium),
		})
		require.NoError(t, err)
		require.NotNil(t, cover.Premium)
		assert.True(t, premium.Equal(*cover.Premium))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Tasks, nil)
		id := uuid.New()

		mock.ExpectQuery(`UPDATE "tasks" SET status = \$1 WHERE id = \$2 RETURNING \*`).
			WithArgs("completed", id).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.Update(ctx, Key{id}, models.TaskUpdate{
			Status: models.Ptr(crm.TaskStatusCompleted),
		})
		assert.ErrorIs(t, err, shared.ErrNotFound)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("key arity must match the primary key", func(t *testing.T) {
		db, _ := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.PolicyCovers, nil)

		_, err := repo.Update(ctx, Key{uuid.New()}, models.PolicyCoverUpdate{
			Premium: models.Ptr(decimal.NewFromInt(1)),
		})
		assert.ErrorIs(t, err, shared.ErrInvalidKey)
	})

	t.Run("nil key value", func(t *testing.T) {
		db, _ := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Clients, nil)

		_, err := repo.Update(ctx, Key{nil}, models.ClientUpdate{Comments: models.Ptr("x")})
		assert.ErrorIs(t, err, shared.ErrInvalidKey)
	})

	t.Run("empty change", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Clients, nil)

		_, err := repo.Update(ctx, Key{uuid.New()}, models.ClientUpdate{})
		assert.ErrorIs(t, err, shared.ErrEmptyChange)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTableRepository_Get(t *testing.T) {
	ctx := context.Background()

	t.Run("found", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Leads, nil)
		id := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "leads" WHERE id = \$1 LIMIT \$2`).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id", "status"}).AddRow(id.String(), "quoting"))

		lead, err := repo.Get(ctx, Key{id})
		require.NoError(t, err)
		assert.Equal(t, id, lead.ID)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("not found", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Leads, nil)
		id := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "leads" WHERE id = \$1 LIMIT \$2`).
			WithArgs(id, 1).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.Get(ctx, Key{id})
		assert.ErrorIs(t, err, shared.ErrNotFound)
	})
}

func TestTableRepository_Delete(t *testing.T) {
	ctx := context.Background()

	t.Run("deletes the row", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Attachments, nil)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM "attachments" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 1))

		require.NoError(t, repo.Delete(ctx, Key{id}))
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("missing row", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Attachments, nil)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM "attachments" WHERE id = \$1`).
			WithArgs(id).
			WillReturnResult(sqlmock.NewResult(0, 0))

		assert.ErrorIs(t, repo.Delete(ctx, Key{id}), shared.ErrNotFound)
	})

	t.Run("foreign key violation", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Insurers, nil)
		id := uuid.New()

		mock.ExpectExec(`DELETE FROM "insurers" WHERE id = \$1`).
			WithArgs(id).
			WillReturnError(&pgconn.PgError{Code: "23503", Message: "still referenced from table \"policies\""})

		assert.ErrorIs(t, repo.Delete(ctx, Key{id}), shared.ErrInvalidInput)
	})
}

func TestTableRepository_List(t *testing.T) {
	ctx := context.Background()

	t.Run("filters, sorts and paginates", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Policies, nil)
		clientID := uuid.New()

		mock.ExpectQuery(`SELECT \* FROM "policies" WHERE client_id = \$1 AND status = \$2 ORDER BY end_date ASC LIMIT \$3 OFFSET \$4`).
			WithArgs(clientID, "active", 10, 10).
			WillReturnRows(sqlmock.NewRows([]string{"id", "policy_number"}).
				AddRow(uuid.NewString(), "POL-1").
				AddRow(uuid.NewString(), "POL-2"))

		filter := shared.Filter{Page: 2, PageSize: 10, OrderBy: "end_date", OrderDir: "asc"}.
			Where("status", crm.PolicyStatusActive).
			Where("client_id", clientID)
		policies, err := repo.List(ctx, filter)
		require.NoError(t, err)
		assert.Len(t, policies, 2)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("nil filter value matches NULL", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Tasks, nil)

		mock.ExpectQuery(`SELECT \* FROM "tasks" WHERE assigned_to IS NULL ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		tasks, err := repo.List(ctx, shared.Filter{}.Where("assigned_to", nil))
		require.NoError(t, err)
		assert.NotNil(t, tasks)
		assert.Empty(t, tasks)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("unknown sort field falls back to the default", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Insurers, nil)

		mock.ExpectQuery(`SELECT \* FROM "insurers" ORDER BY created_at DESC`).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		_, err := repo.List(ctx, shared.Filter{OrderBy: "name; DROP TABLE insurers"})
		require.NoError(t, err)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("rejects unknown filter columns", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Clients, nil)

		_, err := repo.List(ctx, shared.Filter{}.Where("tenant_id", "x"))
		assert.ErrorIs(t, err, shared.ErrUnknownColumn)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestTableRepository_Page(t *testing.T) {
	ctx := context.Background()

	t.Run("defaults page and page size", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Quotes, nil)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "quotes" WHERE status = \$1`).
			WithArgs("draft").
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(45))
		mock.ExpectQuery(`SELECT \* FROM "quotes" WHERE status = \$1 ORDER BY created_at DESC LIMIT \$2`).
			WithArgs("draft", 20).
			WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(uuid.NewString()))

		page, err := repo.Page(ctx, shared.Filter{}.Where("status", crm.QuoteStatusDraft))
		require.NoError(t, err)
		assert.Equal(t, int64(45), page.Total)
		assert.Equal(t, 1, page.Page)
		assert.Equal(t, 20, page.PageSize)
		assert.Equal(t, 3, page.TotalPages)
		assert.Len(t, page.Items, 1)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("caps page size", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewTableRepository(db.DB, schema.Quotes, nil)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "quotes"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(0))
		mock.ExpectQuery(`SELECT \* FROM "quotes" ORDER BY created_at DESC LIMIT \$1 OFFSET \$2`).
			WithArgs(100, 200).
			WillReturnRows(sqlmock.NewRows([]string{"id"}))

		page, err := repo.Page(ctx, shared.Filter{Page: 3, PageSize: 500})
		require.NoError(t, err)
		assert.Equal(t, 100, page.PageSize)
		assert.Equal(t, 0, page.TotalPages)
		assert.NoError(t, mock.ExpectationsWereMet())
	})
}

func TestViewRepository(t *testing.T) {
	ctx := context.Background()

	t.Run("lists a view without a created_at column", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewViewRepository(db.DB, schema.PolicySummary, nil)

		mock.ExpectQuery(`SELECT \* FROM "policy_summary" WHERE renewal_flag = \$1 ORDER BY client_id DESC`).
			WithArgs(true).
			WillReturnRows(sqlmock.NewRows([]string{"id", "policy_number", "insurer_name"}).
				AddRow(uuid.NewString(), "POL-9", "Hollard"))

		rows, err := repo.List(ctx, shared.Filter{}.Where("renewal_flag", true))
		require.NoError(t, err)
		require.Len(t, rows, 1)
		require.NotNil(t, rows[0].InsurerName)
		assert.Equal(t, "Hollard", *rows[0].InsurerName)
		assert.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("counts", func(t *testing.T) {
		db, mock := newMockDatabase(t)
		repo := NewViewRepository(db.DB, schema.ClientSummary, nil)

		mock.ExpectQuery(`SELECT count\(\*\) FROM "client_summary"`).
			WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(7))

		n, err := repo.Count(ctx, shared.Filter{})
		require.NoError(t, err)
		assert.Equal(t, int64(7), n)
	})
}

func TestNewRepositories(t *testing.T) {
	db, _ := newMockDatabase(t)
	repos := NewRepositories(db.DB, nil)

	assert.Equal(t, "policy_covers", repos.PolicyCovers.Relation().Name)
	assert.Equal(t, []string{"policy_id", "type_id"}, repos.PolicyCovers.Relation().PrimaryKey)
	assert.Equal(t, "dashboard_stats", repos.DashboardStats.Relation().Name)
	assert.NotNil(t, repos.Functions)
	assert.Equal(t, "clients", db.Repositories().Clients.Relation().Name)
}
