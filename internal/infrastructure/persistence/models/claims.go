package models

import (
	"time"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Claim is a row of the claims table
type Claim struct {
	ID           uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ClaimNumber  string           `gorm:"column:claim_number" json:"claim_number"`
	PolicyID     uuid.UUID        `gorm:"column:policy_id;type:uuid" json:"policy_id"`
	ClaimType    crm.ClaimType    `gorm:"column:claim_type" json:"claim_type"`
	Status       *crm.ClaimStatus `gorm:"column:status" json:"status"`
	DateReported time.Time        `gorm:"column:date_reported;type:date" json:"date_reported"`
	CreatedBy    *uuid.UUID       `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt    *time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt    *time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Claim) TableName() string {
	return "claims"
}

// IsOpen reports whether the claim still needs handling
func (c *Claim) IsOpen() bool {
	status := crm.ClaimStatusReported
	if c.Status != nil {
		status = *c.Status
	}
	return status.IsOpen()
}

// ClaimInsert is the shape accepted when creating a claim
type ClaimInsert struct {
	ClaimNumber  string                `db:"claim_number" json:"claim_number" validate:"required"`
	PolicyID     uuid.UUID             `db:"policy_id" json:"policy_id" validate:"required"`
	DateReported time.Time             `db:"date_reported" json:"date_reported" validate:"required"`
	ID           Opt[uuid.UUID]        `db:"id" json:"id,omitzero"`
	ClaimType    Opt[crm.ClaimType]    `db:"claim_type" json:"claim_type,omitzero" validate:"omitempty,crm_enum"`
	Status       Opt[*crm.ClaimStatus] `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	CreatedBy    Opt[*uuid.UUID]       `db:"created_by" json:"created_by,omitzero"`
	CreatedAt    Opt[*time.Time]       `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt    Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i ClaimInsert) InsertValues() map[string]any { return columnValues(i) }

// ClaimUpdate is the shape accepted when modifying a claim
type ClaimUpdate struct {
	ID           Opt[uuid.UUID]        `db:"id" json:"id,omitzero"`
	ClaimNumber  Opt[string]           `db:"claim_number" json:"claim_number,omitzero"`
	PolicyID     Opt[uuid.UUID]        `db:"policy_id" json:"policy_id,omitzero"`
	ClaimType    Opt[crm.ClaimType]    `db:"claim_type" json:"claim_type,omitzero" validate:"omitempty,crm_enum"`
	Status       Opt[*crm.ClaimStatus] `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	DateReported Opt[time.Time]        `db:"date_reported" json:"date_reported,omitzero"`
	CreatedBy    Opt[*uuid.UUID]       `db:"created_by" json:"created_by,omitzero"`
	CreatedAt    Opt[*time.Time]       `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt    Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u ClaimUpdate) UpdateValues() map[string]any { return columnValues(u) }

// ClaimUpdateEntry is a row of the claim_updates table, a progress note on a
// claim. Named to keep it apart from the ClaimUpdate shape.
type ClaimUpdateEntry struct {
	ID         uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ClaimID    uuid.UUID  `gorm:"column:claim_id;type:uuid" json:"claim_id"`
	UpdateText string     `gorm:"column:update_text" json:"update_text"`
	CreatedBy  *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt  *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt  *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (ClaimUpdateEntry) TableName() string {
	return "claim_updates"
}

// ClaimUpdateEntryInsert is the shape accepted when adding a claim note
type ClaimUpdateEntryInsert struct {
	ClaimID    uuid.UUID       `db:"claim_id" json:"claim_id" validate:"required"`
	UpdateText string          `db:"update_text" json:"update_text" validate:"required"`
	ID         Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	CreatedBy  Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt  Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt  Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i ClaimUpdateEntryInsert) InsertValues() map[string]any { return columnValues(i) }

// ClaimUpdateEntryUpdate is the shape accepted when editing a claim note
type ClaimUpdateEntryUpdate struct {
	ID         Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	ClaimID    Opt[uuid.UUID]  `db:"claim_id" json:"claim_id,omitzero"`
	UpdateText Opt[string]     `db:"update_text" json:"update_text,omitzero"`
	CreatedBy  Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt  Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt  Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u ClaimUpdateEntryUpdate) UpdateValues() map[string]any { return columnValues(u) }

// ClaimItem is a row of the claim_items table
type ClaimItem struct {
	ID            uuid.UUID        `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ClaimID       uuid.UUID        `gorm:"column:claim_id;type:uuid" json:"claim_id"`
	Description   string           `gorm:"column:description" json:"description"`
	AmountClaimed decimal.Decimal  `gorm:"column:amount_claimed;type:decimal(14,2)" json:"amount_claimed"`
	AmountSettled *decimal.Decimal `gorm:"column:amount_settled;type:decimal(14,2)" json:"amount_settled"`
	CreatedBy     *uuid.UUID       `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt     *time.Time       `gorm:"column:created_at" json:"created_at"`
	UpdatedAt     *time.Time       `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (ClaimItem) TableName() string {
	return "claim_items"
}

// Outstanding returns the claimed amount not yet settled
func (c *ClaimItem) Outstanding() decimal.Decimal {
	if c.AmountSettled == nil {
		return c.AmountClaimed
	}
	return c.AmountClaimed.Sub(*c.AmountSettled)
}

// ClaimItemInsert is the shape accepted when creating a claim item
type ClaimItemInsert struct {
	ClaimID       uuid.UUID             `db:"claim_id" json:"claim_id" validate:"required"`
	Description   string                `db:"description" json:"description" validate:"required"`
	AmountClaimed decimal.Decimal       `db:"amount_claimed" json:"amount_claimed"`
	ID            Opt[uuid.UUID]        `db:"id" json:"id,omitzero"`
	AmountSettled Opt[*decimal.Decimal] `db:"amount_settled" json:"amount_settled,omitzero"`
	CreatedBy     Opt[*uuid.UUID]       `db:"created_by" json:"created_by,omitzero"`
	CreatedAt     Opt[*time.Time]       `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt     Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i ClaimItemInsert) InsertValues() map[string]any { return columnValues(i) }

// ClaimItemUpdate is the shape accepted when modifying a claim item
type ClaimItemUpdate struct {
	ID            Opt[uuid.UUID]        `db:"id" json:"id,omitzero"`
	ClaimID       Opt[uuid.UUID]        `db:"claim_id" json:"claim_id,omitzero"`
	Description   Opt[string]           `db:"description" json:"description,omitzero"`
	AmountClaimed Opt[decimal.Decimal]  `db:"amount_claimed" json:"amount_claimed,omitzero"`
	AmountSettled Opt[*decimal.Decimal] `db:"amount_settled" json:"amount_settled,omitzero"`
	CreatedBy     Opt[*uuid.UUID]       `db:"created_by" json:"created_by,omitzero"`
	CreatedAt     Opt[*time.Time]       `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt     Opt[*time.Time]       `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u ClaimItemUpdate) UpdateValues() map[string]any { return columnValues(u) }
