package models

import (
	"time"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Lead is a row of the leads table
type Lead struct {
	ID               uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ProspectName     string          `gorm:"column:prospect_name" json:"prospect_name"`
	ClientType       crm.ClientType  `gorm:"column:client_type" json:"client_type"`
	OwnerID          uuid.UUID       `gorm:"column:owner_id;type:uuid" json:"owner_id"`
	Status           *crm.LeadStatus `gorm:"column:status" json:"status"`
	ContactEmail     *string         `gorm:"column:contact_email" json:"contact_email"`
	ContactPhone     *string         `gorm:"column:contact_phone" json:"contact_phone"`
	IDNumber         *string         `gorm:"column:id_number" json:"id_number"`
	CompanyRegNumber *string         `gorm:"column:company_reg_number" json:"company_reg_number"`
	ProductInterest  *string         `gorm:"column:product_interest" json:"product_interest"`
	Source           *string         `gorm:"column:source" json:"source"`
	Province         *string         `gorm:"column:province" json:"province"`
	Region           *string         `gorm:"column:region" json:"region"`
	CreatedAt        *time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        *time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Lead) TableName() string {
	return "leads"
}

// LeadInsert is the shape accepted when creating a lead
type LeadInsert struct {
	ProspectName     string               `db:"prospect_name" json:"prospect_name" validate:"required"`
	ClientType       crm.ClientType       `db:"client_type" json:"client_type" validate:"crm_enum"`
	OwnerID          uuid.UUID            `db:"owner_id" json:"owner_id" validate:"required"`
	ID               Opt[uuid.UUID]       `db:"id" json:"id,omitzero"`
	Status           Opt[*crm.LeadStatus] `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	ContactEmail     Opt[*string]         `db:"contact_email" json:"contact_email,omitzero" validate:"omitempty,email"`
	ContactPhone     Opt[*string]         `db:"contact_phone" json:"contact_phone,omitzero"`
	IDNumber         Opt[*string]         `db:"id_number" json:"id_number,omitzero"`
	CompanyRegNumber Opt[*string]         `db:"company_reg_number" json:"company_reg_number,omitzero"`
	ProductInterest  Opt[*string]         `db:"product_interest" json:"product_interest,omitzero"`
	Source           Opt[*string]         `db:"source" json:"source,omitzero"`
	Province         Opt[*string]         `db:"province" json:"province,omitzero"`
	Region           Opt[*string]         `db:"region" json:"region,omitzero"`
	CreatedAt        Opt[*time.Time]      `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt        Opt[*time.Time]      `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i LeadInsert) InsertValues() map[string]any { return columnValues(i) }

// LeadUpdate is the shape accepted when modifying a lead
type LeadUpdate struct {
	ID               Opt[uuid.UUID]       `db:"id" json:"id,omitzero"`
	ProspectName     Opt[string]          `db:"prospect_name" json:"prospect_name,omitzero"`
	ClientType       Opt[crm.ClientType]  `db:"client_type" json:"client_type,omitzero" validate:"omitempty,crm_enum"`
	OwnerID          Opt[uuid.UUID]       `db:"owner_id" json:"owner_id,omitzero"`
	Status           Opt[*crm.LeadStatus] `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	ContactEmail     Opt[*string]         `db:"contact_email" json:"contact_email,omitzero" validate:"omitempty,email"`
	ContactPhone     Opt[*string]         `db:"contact_phone" json:"contact_phone,omitzero"`
	IDNumber         Opt[*string]         `db:"id_number" json:"id_number,omitzero"`
	CompanyRegNumber Opt[*string]         `db:"company_reg_number" json:"company_reg_number,omitzero"`
	ProductInterest  Opt[*string]         `db:"product_interest" json:"product_interest,omitzero"`
	Source           Opt[*string]         `db:"source" json:"source,omitzero"`
	Province         Opt[*string]         `db:"province" json:"province,omitzero"`
	Region           Opt[*string]         `db:"region" json:"region,omitzero"`
	CreatedAt        Opt[*time.Time]      `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt        Opt[*time.Time]      `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u LeadUpdate) UpdateValues() map[string]any { return columnValues(u) }

// Quote is a row of the quotes table. A quote is raised either for a client
// or for a lead that has not converted yet.
type Quote struct {
	ID          uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	QuoteNumber string           `gorm:"column:quote_number" json:"quote_number"`
	ClientID    *uuid.UUID       `gorm:"column:client_id;type:uuid" json:"client_id"`
	LeadID      *uuid.UUID       `gorm:"column:lead_id;type:uuid" json:"lead_id"`
	Status      *crm.QuoteStatus `gorm:"column:status" json:"status"`
	ValidUntil  *time.Time       `gorm:"column:valid_until;type:date" json:"valid_until"`
	CreatedBy   *uuid.UUID       `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt   *time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Quote) TableName() string {
	return "quotes"
}

// IsExpired reports whether the quote is past its validity date at now
func (q *Quote) IsExpired(now time.Time) bool {
	if q.Status != nil && *q.Status == crm.QuoteStatusExpired {
		return true
	}
	if q.ValidUntil == nil {
		return false
	}
	y, m, d := q.ValidUntil.Date()
	endOfDay := time.Date(y, m, d+1, 0, 0, 0, 0, q.ValidUntil.Location())
	return !now.Before(endOfDay)
}

// QuoteInsert is the shape accepted when creating a quote
type QuoteInsert struct {
	QuoteNumber string                `db:"quote_number" json:"quote_number" validate:"required"`
	ID          Opt[uuid.UUID]        `db:"id" json:"id,omitzero"`
	ClientID    Opt[*uuid.UUID]       `db:"client_id" json:"client_id,omitzero"`
	LeadID      Opt[*uuid.UUID]       `db:"lead_id" json:"lead_id,omitzero"`
	Status      Opt[*crm.QuoteStatus] `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	ValidUntil  Opt[*time.Time]       `db:"valid_until" json:"valid_until,omitzero"`
	CreatedBy   Opt[*uuid.UUID]       `db:"created_by" json:"created_by,omitzero"`
	CreatedAt   Opt[*time.Time]       `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i QuoteInsert) InsertValues() map[string]any { return columnValues(i) }

// QuoteUpdate is the shape accepted when modifying a quote
type QuoteUpdate struct {
	ID          Opt[uuid.UUID]        `db:"id" json:"id,omitzero"`
	QuoteNumber Opt[string]           `db:"quote_number" json:"quote_number,omitzero"`
	ClientID    Opt[*uuid.UUID]       `db:"client_id" json:"client_id,omitzero"`
	LeadID      Opt[*uuid.UUID]       `db:"lead_id" json:"lead_id,omitzero"`
	Status      Opt[*crm.QuoteStatus] `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	ValidUntil  Opt[*time.Time]       `db:"valid_until" json:"valid_until,omitzero"`
	CreatedBy   Opt[*uuid.UUID]       `db:"created_by" json:"created_by,omitzero"`
	CreatedAt   Opt[*time.Time]       `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u QuoteUpdate) UpdateValues() map[string]any { return columnValues(u) }

// QuoteOption is a row of the quote_options table: one insurer's offer on a
// quote.
type QuoteOption struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	QuoteID       uuid.UUID        `gorm:"column:quote_id;type:uuid" json:"quote_id"`
	InsurerID     uuid.UUID        `gorm:"column:insurer_id;type:uuid" json:"insurer_id"`
	ProductID     uuid.UUID        `gorm:"column:product_id;type:uuid" json:"product_id"`
	Premium       decimal.Decimal  `gorm:"column:premium;type:decimal(14,2)" json:"premium"`
	Excess        *decimal.Decimal `gorm:"column:excess;type:decimal(14,2)" json:"excess"`
	CoverSummary  *string          `gorm:"column:cover_summary" json:"cover_summary"`
	KeyExclusions *string          `gorm:"column:key_exclusions" json:"key_exclusions"`
	IsSelected    *bool            `gorm:"column:is_selected" json:"is_selected"`
	CreatedAt     *time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     *time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (QuoteOption) TableName() string {
	return "quote_options"
}

// QuoteOptionInsert is the shape accepted when creating a quote option
type QuoteOptionInsert struct {
	QuoteID       uuid.UUID             `db:"quote_id" json:"quote_id" validate:"required"`
	InsurerID     uuid.UUID             `db:"insurer_id" json:"insurer_id" validate:"required"`
	ProductID     uuid.UUID             `db:"product_id" json:"product_id" validate:"required"`
	Premium       decimal.Decimal       `db:"premium" json:"premium"`
	ID            Opt[uuid.UUID]        `db:"id" json:"id,omitzero"`
	Excess        Opt[*decimal.Decimal] `db:"excess" json:"excess,omitzero"`
	CoverSummary  Opt[*string]          `db:"cover_summary" json:"cover_summary,omitzero"`
	KeyExclusions Opt[*string]          `db:"key_exclusions" json:"key_exclusions,omitzero"`
	IsSelected    Opt[*bool]            `db:"is_selected" json:"is_selected,omitzero"`
	CreatedAt     Opt[*time.Time]       `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt     Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i QuoteOptionInsert) InsertValues() map[string]any { return columnValues(i) }

// QuoteOptionUpdate is the shape accepted when modifying a quote option
type QuoteOptionUpdate struct {
	ID            Opt[uuid.UUID]        `db:"id" json:"id,omitzero"`
	QuoteID       Opt[uuid.UUID]        `db:"quote_id" json:"quote_id,omitzero"`
	InsurerID     Opt[uuid.UUID]        `db:"insurer_id" json:"insurer_id,omitzero"`
	ProductID     Opt[uuid.UUID]        `db:"product_id" json:"product_id,omitzero"`
	Premium       Opt[decimal.Decimal]  `db:"premium" json:"premium,omitzero"`
	Excess        Opt[*decimal.Decimal] `db:"excess" json:"excess,omitzero"`
	CoverSummary  Opt[*string]          `db:"cover_summary" json:"cover_summary,omitzero"`
	KeyExclusions Opt[*string]          `db:"key_exclusions" json:"key_exclusions,omitzero"`
	IsSelected    Opt[*bool]            `db:"is_selected" json:"is_selected,omitzero"`
	CreatedAt     Opt[*time.Time]       `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt     Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u QuoteOptionUpdate) UpdateValues() map[string]any { return columnValues(u) }
