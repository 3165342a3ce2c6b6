package persistence

import (
	"context"
	"fmt"
	"sort"
	"strings"

	sq "github.com/Masterminds/squirrel"
	"github.com/brokerdesk/crm/internal/domain/shared"
	"github.com/brokerdesk/crm/internal/infrastructure/logger"
	"github.com/brokerdesk/crm/internal/infrastructure/persistence/models"
	"github.com/brokerdesk/crm/internal/schema"
	"github.com/lib/pq"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100
)

// Key holds primary key values in the order of the relation's primary key
// columns, e.g. Key{policyID, typeID} for policy_covers.
type Key []any

// reader implements the read operations shared by tables and views
type reader[R any] struct {
	db   *gorm.DB
	rel  *schema.Relation
	log  *zap.Logger
	sort ordering
}

func newReader[R any](db *gorm.DB, rel *schema.Relation, log *zap.Logger) reader[R] {
	if log == nil {
		log = zap.NewNop()
	}
	return reader[R]{
		db:   db,
		rel:  rel,
		log:  log.Named("repository"),
		sort: orderingFor(rel),
	}
}

// Relation returns the catalog entry the repository reads from
func (r reader[R]) Relation() *schema.Relation {
	return r.rel
}

// session tags ctx with the operation and relation so the gorm logger can
// report them, and returns a handle bound to ctx.
func (r reader[R]) session(ctx context.Context, operation string) (context.Context, *gorm.DB) {
	ctx = logger.WithRelation(logger.WithOperation(ctx, operation), r.rel.Name)
	return ctx, r.db.WithContext(ctx)
}

// where applies the equality filters in column order. Unknown columns are
// rejected; a nil value matches NULL.
func (r reader[R]) where(query *gorm.DB, filters map[string]any) (*gorm.DB, error) {
	columns := make([]string, 0, len(filters))
	for column := range filters {
		if _, ok := r.rel.Column(column); !ok {
			return nil, fmt.Errorf("%w: %s.%s", shared.ErrUnknownColumn, r.rel.Name, column)
		}
		columns = append(columns, column)
	}
	sort.Strings(columns)

	for _, column := range columns {
		value := models.SQLValue(filters[column])
		if value == nil {
			query = query.Where(column + " IS NULL")
			continue
		}
		query = query.Where(column+" = ?", value)
	}
	return query, nil
}

func (r reader[R]) order(query *gorm.DB, filter shared.Filter) *gorm.DB {
	if clause := r.sort.clause(filter.OrderBy, filter.OrderDir); clause != "" {
		return query.Order(clause)
	}
	return query
}

// List returns the rows matching the filter. A zero PageSize returns every
// matching row.
func (r reader[R]) List(ctx context.Context, filter shared.Filter) ([]R, error) {
	_, db := r.session(ctx, "list")
	query, err := r.where(db.Table(r.rel.Name), filter.Filters)
	if err != nil {
		return nil, err
	}
	query = r.order(query, filter)
	if filter.PageSize > 0 {
		page := max(filter.Page, 1)
		query = query.Offset((page - 1) * filter.PageSize).Limit(filter.PageSize)
	}

	rows := make([]R, 0)
	if err := query.Find(&rows).Error; err != nil {
		return nil, translateError(err)
	}
	return rows, nil
}

// Count returns the number of rows matching the filter
func (r reader[R]) Count(ctx context.Context, filter shared.Filter) (int64, error) {
	_, db := r.session(ctx, "count")
	query, err := r.where(db.Table(r.rel.Name), filter.Filters)
	if err != nil {
		return 0, err
	}

	var count int64
	if err := query.Count(&count).Error; err != nil {
		return 0, translateError(err)
	}
	return count, nil
}

// Page returns one page of matching rows with the total count. Page
// defaults to 1; PageSize defaults to 20 and is capped at 100.
func (r reader[R]) Page(ctx context.Context, filter shared.Filter) (shared.Paginated[R], error) {
	filter.Page = max(filter.Page, 1)
	switch {
	case filter.PageSize <= 0:
		filter.PageSize = defaultPageSize
	case filter.PageSize > maxPageSize:
		filter.PageSize = maxPageSize
	}

	total, err := r.Count(ctx, filter)
	if err != nil {
		return shared.Paginated[R]{}, err
	}
	items, err := r.List(ctx, filter)
	if err != nil {
		return shared.Paginated[R]{}, err
	}
	return shared.NewPaginated(items, total, filter.Page, filter.PageSize), nil
}

// ViewRepository reads rows of a view
type ViewRepository[R any] struct {
	reader[R]
}

// NewViewRepository creates a repository over a view descriptor
func NewViewRepository[R any](db *gorm.DB, view schema.View[R], log *zap.Logger) *ViewRepository[R] {
	return &ViewRepository[R]{reader: newReader[R](db, view.Relation(), log)}
}

// TableRepository reads and writes rows of a table. Writes send only the
// columns an Insert or Update shape provides and return the stored row.
type TableRepository[R any, I schema.InsertShape, U schema.UpdateShape] struct {
	reader[R]
	table string
}

// NewTableRepository creates a repository over a table descriptor
func NewTableRepository[R any, I schema.InsertShape, U schema.UpdateShape](db *gorm.DB, table schema.Table[R, I, U], log *zap.Logger) *TableRepository[R, I, U] {
	return &TableRepository[R, I, U]{
		reader: newReader[R](db, table.Relation(), log),
		table:  pq.QuoteIdentifier(table.Name()),
	}
}

// keyCondition matches the primary key columns against key
func (r *TableRepository[R, I, U]) keyCondition(key Key) (sq.Eq, error) {
	pk := r.rel.PrimaryKey
	if len(pk) == 0 {
		return nil, fmt.Errorf("%w: %s has no primary key", shared.ErrInvalidKey, r.rel.Name)
	}
	if len(key) != len(pk) {
		return nil, fmt.Errorf("%w: %s expects %d value(s) for (%s), got %d",
			shared.ErrInvalidKey, r.rel.Name, len(pk), strings.Join(pk, ", "), len(key))
	}
	eq := make(sq.Eq, len(pk))
	for i, column := range pk {
		value := models.SQLValue(key[i])
		if value == nil {
			return nil, fmt.Errorf("%w: %s.%s is nil", shared.ErrInvalidKey, r.rel.Name, column)
		}
		eq[column] = value
	}
	return eq, nil
}

// Insert validates the shape, writes it and returns the stored row with
// database defaults applied.
func (r *TableRepository[R, I, U]) Insert(ctx context.Context, in I) (*R, error) {
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	values := in.InsertValues()

	var (
		query string
		args  []any
		err   error
	)
	if len(values) == 0 {
		query = "INSERT INTO " + r.table + " DEFAULT VALUES RETURNING *"
	} else {
		query, args, err = sq.Insert(r.table).SetMap(values).Suffix("RETURNING *").ToSql()
		if err != nil {
			return nil, fmt.Errorf("build insert into %s: %w", r.rel.Name, err)
		}
	}

	ctx, db := r.session(ctx, "insert")
	var row R
	result := db.Raw(query, args...).Scan(&row)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, fmt.Errorf("insert into %s returned no row", r.rel.Name)
	}

	logger.WithLogger(ctx, r.log).Debug("Row inserted", zap.Int("columns", len(values)))
	return &row, nil
}

// Update writes the provided columns to the row identified by key
func (r *TableRepository[R, I, U]) Update(ctx context.Context, key Key, in U) (*R, error) {
	where, err := r.keyCondition(key)
	if err != nil {
		return nil, err
	}
	if err := models.Validate(in); err != nil {
		return nil, err
	}
	values := in.UpdateValues()
	if len(values) == 0 {
		return nil, shared.ErrEmptyChange
	}

	query, args, err := sq.Update(r.table).SetMap(values).Where(where).Suffix("RETURNING *").ToSql()
	if err != nil {
		return nil, fmt.Errorf("build update of %s: %w", r.rel.Name, err)
	}

	ctx, db := r.session(ctx, "update")
	var row R
	result := db.Raw(query, args...).Scan(&row)
	if result.Error != nil {
		return nil, translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return nil, shared.ErrNotFound
	}

	logger.WithLogger(ctx, r.log).Debug("Row updated", zap.Int("columns", len(values)))
	return &row, nil
}

// Get returns the row identified by key
func (r *TableRepository[R, I, U]) Get(ctx context.Context, key Key) (*R, error) {
	where, err := r.keyCondition(key)
	if err != nil {
		return nil, err
	}
	cond, args, err := where.ToSql()
	if err != nil {
		return nil, fmt.Errorf("build key condition for %s: %w", r.rel.Name, err)
	}

	_, db := r.session(ctx, "get")
	var row R
	if err := db.Table(r.rel.Name).Where(cond, args...).Take(&row).Error; err != nil {
		return nil, translateError(err)
	}
	return &row, nil
}

// Delete removes the row identified by key
func (r *TableRepository[R, I, U]) Delete(ctx context.Context, key Key) error {
	where, err := r.keyCondition(key)
	if err != nil {
		return err
	}
	query, args, err := sq.Delete(r.table).Where(where).ToSql()
	if err != nil {
		return fmt.Errorf("build delete from %s: %w", r.rel.Name, err)
	}

	ctx, db := r.session(ctx, "delete")
	result := db.Exec(query, args...)
	if result.Error != nil {
		return translateError(result.Error)
	}
	if result.RowsAffected == 0 {
		return shared.ErrNotFound
	}

	logger.WithLogger(ctx, r.log).Debug("Row deleted")
	return nil
}
