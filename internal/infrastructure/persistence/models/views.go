package models

import (
	"time"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/google/uuid"
)

// View rows are read-only. Every column of a view is reported nullable by
// the database, so every field is a pointer.

// ClientSummary is a row of the client_summary view
type ClientSummary struct {
	ID          *uuid.UUID        `gorm:"column:id;type:uuid" json:"id"`
	ClientType  *crm.ClientType   `gorm:"column:client_type" json:"client_type"`
	Status      *crm.ClientStatus `gorm:"column:status" json:"status"`
	CreatedAt   *time.Time        `gorm:"column:created_at" json:"created_at"`
	FullName    *string           `gorm:"column:full_name" json:"full_name"`
	PolicyCount *int64            `gorm:"column:policy_count" json:"policy_count"`
	ClaimCount  *int64            `gorm:"column:claim_count" json:"claim_count"`
}

// TableName returns the view name for GORM
func (ClientSummary) TableName() string {
	return "client_summary"
}

// PolicySummary is a row of the policy_summary view
type PolicySummary struct {
	ID           *uuid.UUID        `gorm:"column:id;type:uuid" json:"id"`
	PolicyNumber *string           `gorm:"column:policy_number" json:"policy_number"`
	ClientID     *uuid.UUID        `gorm:"column:client_id;type:uuid" json:"client_id"`
	ClientName   *string           `gorm:"column:client_name" json:"client_name"`
	InsurerName  *string           `gorm:"column:insurer_name" json:"insurer_name"`
	ProductName  *string           `gorm:"column:product_name" json:"product_name"`
	StartDate    *time.Time        `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate      *time.Time        `gorm:"column:end_date;type:date" json:"end_date"`
	Status       *crm.PolicyStatus `gorm:"column:status" json:"status"`
	RenewalFlag  *bool             `gorm:"column:renewal_flag" json:"renewal_flag"`
}

// TableName returns the view name for GORM
func (PolicySummary) TableName() string {
	return "policy_summary"
}

// DashboardStats is the single row of the dashboard_stats view
type DashboardStats struct {
	MyTasks       *int64 `gorm:"column:my_tasks" json:"my_tasks"`
	NewLeads      *int64 `gorm:"column:new_leads" json:"new_leads"`
	OpenClaims    *int64 `gorm:"column:open_claims" json:"open_claims"`
	PendingQuotes *int64 `gorm:"column:pending_quotes" json:"pending_quotes"`
	RenewalsDue   *int64 `gorm:"column:renewals_due" json:"renewals_due"`
}

// TableName returns the view name for GORM
func (DashboardStats) TableName() string {
	return "dashboard_stats"
}
