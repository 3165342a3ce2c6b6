package models

import (
	"encoding/json"
	"time"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Insurer is a row of the insurers table
type Insurer struct {
	ID          uuid.UUID       `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Name        string          `gorm:"column:name" json:"name"`
	ContactInfo json.RawMessage `gorm:"column:contact_info;type:jsonb" json:"contact_info"`
	CreatedAt   *time.Time      `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time      `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Insurer) TableName() string {
	return "insurers"
}

// InsurerInsert is the shape accepted when creating an insurer
type InsurerInsert struct {
	Name        string               `db:"name" json:"name" validate:"required"`
	ID          Opt[uuid.UUID]       `db:"id" json:"id,omitzero"`
	ContactInfo Opt[json.RawMessage] `db:"contact_info" json:"contact_info,omitzero"`
	CreatedAt   Opt[*time.Time]      `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time]      `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i InsurerInsert) InsertValues() map[string]any { return columnValues(i) }

// InsurerUpdate is the shape accepted when modifying an insurer
type InsurerUpdate struct {
	ID          Opt[uuid.UUID]       `db:"id" json:"id,omitzero"`
	Name        Opt[string]          `db:"name" json:"name,omitzero"`
	ContactInfo Opt[json.RawMessage] `db:"contact_info" json:"contact_info,omitzero"`
	CreatedAt   Opt[*time.Time]      `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time]      `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u InsurerUpdate) UpdateValues() map[string]any { return columnValues(u) }

// Product is a row of the products table
type Product struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	InsurerID   uuid.UUID  `gorm:"column:insurer_id;type:uuid" json:"insurer_id"`
	Name        string     `gorm:"column:name" json:"name"`
	Description *string    `gorm:"column:description" json:"description"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Product) TableName() string {
	return "products"
}

// ProductInsert is the shape accepted when creating a product
type ProductInsert struct {
	InsurerID   uuid.UUID       `db:"insurer_id" json:"insurer_id" validate:"required"`
	Name        string          `db:"name" json:"name" validate:"required"`
	ID          Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	Description Opt[*string]    `db:"description" json:"description,omitzero"`
	CreatedAt   Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i ProductInsert) InsertValues() map[string]any { return columnValues(i) }

// ProductUpdate is the shape accepted when modifying a product
type ProductUpdate struct {
	ID          Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	InsurerID   Opt[uuid.UUID]  `db:"insurer_id" json:"insurer_id,omitzero"`
	Name        Opt[string]     `db:"name" json:"name,omitzero"`
	Description Opt[*string]    `db:"description" json:"description,omitzero"`
	CreatedAt   Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u ProductUpdate) UpdateValues() map[string]any { return columnValues(u) }

// PolicyType is a row of the policy_types table: a kind of cover (building,
// contents, motor...) a policy section can provide.
type PolicyType struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	Slug        string     `gorm:"column:slug" json:"slug"`
	DisplayName string     `gorm:"column:display_name" json:"display_name"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (PolicyType) TableName() string {
	return "policy_types"
}

// PolicyTypeInsert is the shape accepted when creating a policy type
type PolicyTypeInsert struct {
	Slug        string          `db:"slug" json:"slug" validate:"required"`
	DisplayName string          `db:"display_name" json:"display_name" validate:"required"`
	ID          Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	CreatedAt   Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i PolicyTypeInsert) InsertValues() map[string]any { return columnValues(i) }

// PolicyTypeUpdate is the shape accepted when modifying a policy type
type PolicyTypeUpdate struct {
	ID          Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	Slug        Opt[string]     `db:"slug" json:"slug,omitzero"`
	DisplayName Opt[string]     `db:"display_name" json:"display_name,omitzero"`
	CreatedAt   Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u PolicyTypeUpdate) UpdateValues() map[string]any { return columnValues(u) }

// Policy is a row of the policies table
type Policy struct {
	ID           uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PolicyNumber string            `gorm:"column:policy_number" json:"policy_number"`
	ClientID     uuid.UUID         `gorm:"column:client_id;type:uuid" json:"client_id"`
	InsurerID    uuid.UUID         `gorm:"column:insurer_id;type:uuid" json:"insurer_id"`
	ProductID    uuid.UUID         `gorm:"column:product_id;type:uuid" json:"product_id"`
	Status       *crm.PolicyStatus `gorm:"column:status" json:"status"`
	StartDate    *time.Time        `gorm:"column:start_date;type:date" json:"start_date"`
	EndDate      *time.Time        `gorm:"column:end_date;type:date" json:"end_date"`
	RenewalFlag  *bool             `gorm:"column:renewal_flag" json:"renewal_flag"`
	CreatedBy    *uuid.UUID        `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt    *time.Time        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    *time.Time        `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Policy) TableName() string {
	return "policies"
}

// PolicyInsert is the shape accepted when creating a policy
type PolicyInsert struct {
	PolicyNumber string                 `db:"policy_number" json:"policy_number" validate:"required"`
	ClientID     uuid.UUID              `db:"client_id" json:"client_id" validate:"required"`
	InsurerID    uuid.UUID              `db:"insurer_id" json:"insurer_id" validate:"required"`
	ProductID    uuid.UUID              `db:"product_id" json:"product_id" validate:"required"`
	ID           Opt[uuid.UUID]         `db:"id" json:"id,omitzero"`
	Status       Opt[*crm.PolicyStatus] `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	StartDate    Opt[*time.Time]        `db:"start_date" json:"start_date,omitzero"`
	EndDate      Opt[*time.Time]        `db:"end_date" json:"end_date,omitzero"`
	RenewalFlag  Opt[*bool]             `db:"renewal_flag" json:"renewal_flag,omitzero"`
	CreatedBy    Opt[*uuid.UUID]        `db:"created_by" json:"created_by,omitzero"`
	CreatedAt    Opt[*time.Time]        `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt    Opt[*time.Time]        `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i PolicyInsert) InsertValues() map[string]any { return columnValues(i) }

// PolicyUpdate is the shape accepted when modifying a policy
type PolicyUpdate struct {
	ID           Opt[uuid.UUID]         `db:"id" json:"id,omitzero"`
	PolicyNumber Opt[string]            `db:"policy_number" json:"policy_number,omitzero"`
	ClientID     Opt[uuid.UUID]         `db:"client_id" json:"client_id,omitzero"`
	InsurerID    Opt[uuid.UUID]         `db:"insurer_id" json:"insurer_id,omitzero"`
	ProductID    Opt[uuid.UUID]         `db:"product_id" json:"product_id,omitzero"`
	Status       Opt[*crm.PolicyStatus] `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	StartDate    Opt[*time.Time]        `db:"start_date" json:"start_date,omitzero"`
	EndDate      Opt[*time.Time]        `db:"end_date" json:"end_date,omitzero"`
	RenewalFlag  Opt[*bool]             `db:"renewal_flag" json:"renewal_flag,omitzero"`
	CreatedBy    Opt[*uuid.UUID]        `db:"created_by" json:"created_by,omitzero"`
	CreatedAt    Opt[*time.Time]        `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt    Opt[*time.Time]        `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u PolicyUpdate) UpdateValues() map[string]any { return columnValues(u) }

// PolicyCover is a row of the policy_covers table. Its key is the pair
// (policy_id, type_id).
type PolicyCover struct {
	PolicyID   uuid.UUID        `gorm:"column:policy_id;type:uuid;primaryKey" json:"policy_id"`
	TypeID     uuid.UUID        `gorm:"column:type_id;type:uuid;primaryKey" json:"type_id"`
	Premium    *decimal.Decimal `gorm:"column:premium;type:decimal(14,2)" json:"premium"`
	SumInsured *decimal.Decimal `gorm:"column:sum_insured;type:decimal(16,2)" json:"sum_insured"`
	UpdatedAt  *time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (PolicyCover) TableName() string {
	return "policy_covers"
}

// PolicyCoverInsert is the shape accepted when creating a policy cover
type PolicyCoverInsert struct {
	PolicyID   uuid.UUID             `db:"policy_id" json:"policy_id" validate:"required"`
	TypeID     uuid.UUID             `db:"type_id" json:"type_id" validate:"required"`
	Premium    Opt[*decimal.Decimal] `db:"premium" json:"premium,omitzero"`
	SumInsured Opt[*decimal.Decimal] `db:"sum_insured" json:"sum_insured,omitzero"`
	UpdatedAt  Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i PolicyCoverInsert) InsertValues() map[string]any { return columnValues(i) }

// PolicyCoverUpdate is the shape accepted when modifying a policy cover
type PolicyCoverUpdate struct {
	PolicyID   Opt[uuid.UUID]        `db:"policy_id" json:"policy_id,omitzero"`
	TypeID     Opt[uuid.UUID]        `db:"type_id" json:"type_id,omitzero"`
	Premium    Opt[*decimal.Decimal] `db:"premium" json:"premium,omitzero"`
	SumInsured Opt[*decimal.Decimal] `db:"sum_insured" json:"sum_insured,omitzero"`
	UpdatedAt  Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u PolicyCoverUpdate) UpdateValues() map[string]any { return columnValues(u) }

// PolicyEndorsement is a row of the policy_endorsements table
type PolicyEndorsement struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PolicyID        uuid.UUID  `gorm:"column:policy_id;type:uuid" json:"policy_id"`
	EndorsementType string     `gorm:"column:endorsement_type" json:"endorsement_type"`
	Description     string     `gorm:"column:description" json:"description"`
	EffectiveDate   *time.Time `gorm:"column:effective_date;type:date" json:"effective_date"`
	CreatedBy       *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt       *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (PolicyEndorsement) TableName() string {
	return "policy_endorsements"
}

// PolicyEndorsementInsert is the shape accepted when creating an endorsement
type PolicyEndorsementInsert struct {
	PolicyID        uuid.UUID       `db:"policy_id" json:"policy_id" validate:"required"`
	EndorsementType string          `db:"endorsement_type" json:"endorsement_type" validate:"required"`
	Description     string          `db:"description" json:"description"`
	ID              Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	EffectiveDate   Opt[*time.Time] `db:"effective_date" json:"effective_date,omitzero"`
	CreatedBy       Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt       Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt       Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i PolicyEndorsementInsert) InsertValues() map[string]any { return columnValues(i) }

// PolicyEndorsementUpdate is the shape accepted when modifying an endorsement
type PolicyEndorsementUpdate struct {
	ID              Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	PolicyID        Opt[uuid.UUID]  `db:"policy_id" json:"policy_id,omitzero"`
	EndorsementType Opt[string]     `db:"endorsement_type" json:"endorsement_type,omitzero"`
	Description     Opt[string]     `db:"description" json:"description,omitzero"`
	EffectiveDate   Opt[*time.Time] `db:"effective_date" json:"effective_date,omitzero"`
	CreatedBy       Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt       Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt       Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u PolicyEndorsementUpdate) UpdateValues() map[string]any { return columnValues(u) }

// Renewal is a row of the renewals table
type Renewal struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	PolicyID      uuid.UUID        `gorm:"column:policy_id;type:uuid" json:"policy_id"`
	RenewalDate   time.Time        `gorm:"column:renewal_date;type:date" json:"renewal_date"`
	Status        *string          `gorm:"column:status" json:"status"`
	PremiumChange *decimal.Decimal `gorm:"column:premium_change;type:decimal(14,2)" json:"premium_change"`
	Notes         *string          `gorm:"column:notes" json:"notes"`
	CreatedBy     *uuid.UUID       `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt     *time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     *time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Renewal) TableName() string {
	return "renewals"
}

// RenewalInsert is the shape accepted when creating a renewal
type RenewalInsert struct {
	PolicyID      uuid.UUID             `db:"policy_id" json:"policy_id" validate:"required"`
	RenewalDate   time.Time             `db:"renewal_date" json:"renewal_date" validate:"required"`
	ID            Opt[uuid.UUID]        `db:"id" json:"id,omitzero"`
	Status        Opt[*string]          `db:"status" json:"status,omitzero"`
	PremiumChange Opt[*decimal.Decimal] `db:"premium_change" json:"premium_change,omitzero"`
	Notes         Opt[*string]          `db:"notes" json:"notes,omitzero"`
	CreatedBy     Opt[*uuid.UUID]       `db:"created_by" json:"created_by,omitzero"`
	CreatedAt     Opt[*time.Time]       `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt     Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i RenewalInsert) InsertValues() map[string]any { return columnValues(i) }

// RenewalUpdate is the shape accepted when modifying a renewal
type RenewalUpdate struct {
	ID            Opt[uuid.UUID]        `db:"id" json:"id,omitzero"`
	PolicyID      Opt[uuid.UUID]        `db:"policy_id" json:"policy_id,omitzero"`
	RenewalDate   Opt[time.Time]        `db:"renewal_date" json:"renewal_date,omitzero"`
	Status        Opt[*string]          `db:"status" json:"status,omitzero"`
	PremiumChange Opt[*decimal.Decimal] `db:"premium_change" json:"premium_change,omitzero"`
	Notes         Opt[*string]          `db:"notes" json:"notes,omitzero"`
	CreatedBy     Opt[*uuid.UUID]       `db:"created_by" json:"created_by,omitzero"`
	CreatedAt     Opt[*time.Time]       `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt     Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u RenewalUpdate) UpdateValues() map[string]any { return columnValues(u) }
