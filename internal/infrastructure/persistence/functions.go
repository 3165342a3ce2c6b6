package persistence

import (
	"context"
	"fmt"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/brokerdesk/crm/internal/domain/shared"
	"github.com/brokerdesk/crm/internal/infrastructure/logger"
	"github.com/brokerdesk/crm/internal/infrastructure/persistence/models"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// employeeSetting is read by the dashboard_stats view to count my_tasks
const employeeSetting = "app.employee_id"

// Functions calls the SQL functions of the CRM schema
type Functions struct {
	db  *gorm.DB
	log *zap.Logger
}

// NewFunctions creates a Functions bound to db
func NewFunctions(db *gorm.DB, log *zap.Logger) *Functions {
	if log == nil {
		log = zap.NewNop()
	}
	return &Functions{db: db, log: log.Named("functions")}
}

// GenerateQuoteNumber draws the next quote number, e.g. Q2025-00042.
// Every call consumes a sequence value.
func (f *Functions) GenerateQuoteNumber(ctx context.Context) (string, error) {
	ctx = logger.WithOperation(ctx, "generate_quote_number")

	var number string
	result := f.db.WithContext(ctx).Raw("SELECT generate_quote_number()").Scan(&number)
	if result.Error != nil {
		return "", translateError(result.Error)
	}
	if number == "" {
		return "", fmt.Errorf("generate_quote_number returned no value")
	}
	if !crm.IsQuoteNumber(number) {
		return "", fmt.Errorf("generate_quote_number returned %q, want Q<year>-<seq>", number)
	}

	logger.WithLogger(ctx, f.log).Debug("Quote number generated", zap.String("quote_number", number))
	return number, nil
}

// ClientFullName returns get_client_full_name for the stored client
func (f *Functions) ClientFullName(ctx context.Context, clientID uuid.UUID) (string, error) {
	ctx = logger.WithRelation(logger.WithOperation(ctx, "get_client_full_name"), "clients")

	var names []string
	err := f.db.WithContext(ctx).
		Raw("SELECT get_client_full_name(c) FROM clients c WHERE c.id = ?", clientID).
		Scan(&names).Error
	if err != nil {
		return "", translateError(err)
	}
	if len(names) == 0 {
		return "", shared.ErrNotFound
	}
	return names[0], nil
}

// DashboardStats reads the dashboard_stats view. my_tasks counts the active
// tasks of employeeID; uuid.Nil leaves it at zero.
func (f *Functions) DashboardStats(ctx context.Context, employeeID uuid.UUID) (*models.DashboardStats, error) {
	setting := ""
	if employeeID != uuid.Nil {
		setting = employeeID.String()
		ctx = logger.WithEmployeeID(ctx, setting)
	}
	ctx = logger.WithRelation(logger.WithOperation(ctx, "dashboard_stats"), "dashboard_stats")

	var stats models.DashboardStats
	err := f.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// set_config with is_local=true lasts until the transaction ends
		if err := tx.Exec("SELECT set_config(?, ?, true)", employeeSetting, setting).Error; err != nil {
			return fmt.Errorf("set %s: %w", employeeSetting, err)
		}
		return tx.Table("dashboard_stats").Take(&stats).Error
	})
	if err != nil {
		return nil, translateError(err)
	}
	return &stats, nil
}
