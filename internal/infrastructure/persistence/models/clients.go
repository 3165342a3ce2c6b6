package models

import (
	"time"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/google/uuid"
)

// Client is a row of the clients table
type Client struct {
	ID               uuid.UUID         `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ClientType       crm.ClientType    `gorm:"column:client_type" json:"client_type"`
	Status           *crm.ClientStatus `gorm:"column:status" json:"status"`
	FirstName        *string           `gorm:"column:first_name" json:"first_name"`
	LastName         *string           `gorm:"column:last_name" json:"last_name"`
	EntityName       *string           `gorm:"column:entity_name" json:"entity_name"`
	IDNumber         *string           `gorm:"column:id_number" json:"id_number"`
	CompanyRegNumber *string           `gorm:"column:company_reg_number" json:"company_reg_number"`
	VATNumber        *string           `gorm:"column:vat_number" json:"vat_number"`
	Comments         *string           `gorm:"column:comments" json:"comments"`
	CreatedBy        *uuid.UUID        `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt        *time.Time        `gorm:"column:created_at" json:"created_at"`
	UpdatedAt        *time.Time        `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Client) TableName() string {
	return "clients"
}

// FullName returns the display name the same way get_client_full_name does
func (c *Client) FullName() string {
	return crm.ClientFullName(c.ClientType, c.FirstName, c.LastName, c.EntityName)
}

// ClientInsert is the shape accepted when creating a client
type ClientInsert struct {
	ClientType       crm.ClientType         `db:"client_type" json:"client_type" validate:"crm_enum"`
	ID               Opt[uuid.UUID]         `db:"id" json:"id,omitzero"`
	Status           Opt[*crm.ClientStatus] `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	FirstName        Opt[*string]           `db:"first_name" json:"first_name,omitzero"`
	LastName         Opt[*string]           `db:"last_name" json:"last_name,omitzero"`
	EntityName       Opt[*string]           `db:"entity_name" json:"entity_name,omitzero"`
	IDNumber         Opt[*string]           `db:"id_number" json:"id_number,omitzero"`
	CompanyRegNumber Opt[*string]           `db:"company_reg_number" json:"company_reg_number,omitzero"`
	VATNumber        Opt[*string]           `db:"vat_number" json:"vat_number,omitzero"`
	Comments         Opt[*string]           `db:"comments" json:"comments,omitzero"`
	CreatedBy        Opt[*uuid.UUID]        `db:"created_by" json:"created_by,omitzero"`
	CreatedAt        Opt[*time.Time]        `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt        Opt[*time.Time]        `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i ClientInsert) InsertValues() map[string]any { return columnValues(i) }

// ClientUpdate is the shape accepted when modifying a client
type ClientUpdate struct {
	ID               Opt[uuid.UUID]         `db:"id" json:"id,omitzero"`
	ClientType       Opt[crm.ClientType]    `db:"client_type" json:"client_type,omitzero" validate:"omitempty,crm_enum"`
	Status           Opt[*crm.ClientStatus] `db:"status" json:"status,omitzero" validate:"omitempty,crm_enum"`
	FirstName        Opt[*string]           `db:"first_name" json:"first_name,omitzero"`
	LastName         Opt[*string]           `db:"last_name" json:"last_name,omitzero"`
	EntityName       Opt[*string]           `db:"entity_name" json:"entity_name,omitzero"`
	IDNumber         Opt[*string]           `db:"id_number" json:"id_number,omitzero"`
	CompanyRegNumber Opt[*string]           `db:"company_reg_number" json:"company_reg_number,omitzero"`
	VATNumber        Opt[*string]           `db:"vat_number" json:"vat_number,omitzero"`
	Comments         Opt[*string]           `db:"comments" json:"comments,omitzero"`
	CreatedBy        Opt[*uuid.UUID]        `db:"created_by" json:"created_by,omitzero"`
	CreatedAt        Opt[*time.Time]        `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt        Opt[*time.Time]        `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u ClientUpdate) UpdateValues() map[string]any { return columnValues(u) }

// ClientContact is a row of the client_contacts table
type ClientContact struct {
	ID        uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ClientID  uuid.UUID  `gorm:"column:client_id;type:uuid" json:"client_id"`
	Name      string     `gorm:"column:name" json:"name"`
	Email     *string    `gorm:"column:email" json:"email"`
	Phone     *string    `gorm:"column:phone" json:"phone"`
	Role      *string    `gorm:"column:role" json:"role"`
	IsPrimary *bool      `gorm:"column:is_primary" json:"is_primary"`
	CreatedBy *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (ClientContact) TableName() string {
	return "client_contacts"
}

// ClientContactInsert is the shape accepted when creating a client contact
type ClientContactInsert struct {
	ClientID  uuid.UUID       `db:"client_id" json:"client_id" validate:"required"`
	Name      string          `db:"name" json:"name" validate:"required"`
	ID        Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	Email     Opt[*string]    `db:"email" json:"email,omitzero" validate:"omitempty,email"`
	Phone     Opt[*string]    `db:"phone" json:"phone,omitzero"`
	Role      Opt[*string]    `db:"role" json:"role,omitzero"`
	IsPrimary Opt[*bool]      `db:"is_primary" json:"is_primary,omitzero"`
	CreatedBy Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i ClientContactInsert) InsertValues() map[string]any { return columnValues(i) }

// ClientContactUpdate is the shape accepted when modifying a client contact
type ClientContactUpdate struct {
	ID        Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	ClientID  Opt[uuid.UUID]  `db:"client_id" json:"client_id,omitzero"`
	Name      Opt[string]     `db:"name" json:"name,omitzero"`
	Email     Opt[*string]    `db:"email" json:"email,omitzero" validate:"omitempty,email"`
	Phone     Opt[*string]    `db:"phone" json:"phone,omitzero"`
	Role      Opt[*string]    `db:"role" json:"role,omitzero"`
	IsPrimary Opt[*bool]      `db:"is_primary" json:"is_primary,omitzero"`
	CreatedBy Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u ClientContactUpdate) UpdateValues() map[string]any { return columnValues(u) }

// Address is a row of the addresses table. It belongs to the record named
// by ParentType and ParentID.
type Address struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ParentID    uuid.UUID  `gorm:"column:parent_id;type:uuid" json:"parent_id"`
	ParentType  string     `gorm:"column:parent_type" json:"parent_type"`
	AddressType *string    `gorm:"column:address_type" json:"address_type"`
	Line1       string     `gorm:"column:line1" json:"line1"`
	Line2       *string    `gorm:"column:line2" json:"line2"`
	Suburb      *string    `gorm:"column:suburb" json:"suburb"`
	City        *string    `gorm:"column:city" json:"city"`
	Province    *string    `gorm:"column:province" json:"province"`
	PostalCode  *string    `gorm:"column:postal_code" json:"postal_code"`
	Country     *string    `gorm:"column:country" json:"country"`
	CreatedBy   *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Address) TableName() string {
	return "addresses"
}

// AddressInsert is the shape accepted when creating an address
type AddressInsert struct {
	ParentID    uuid.UUID       `db:"parent_id" json:"parent_id" validate:"required"`
	ParentType  string          `db:"parent_type" json:"parent_type" validate:"crm_parent"`
	Line1       string          `db:"line1" json:"line1" validate:"required"`
	ID          Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	AddressType Opt[*string]    `db:"address_type" json:"address_type,omitzero"`
	Line2       Opt[*string]    `db:"line2" json:"line2,omitzero"`
	Suburb      Opt[*string]    `db:"suburb" json:"suburb,omitzero"`
	City        Opt[*string]    `db:"city" json:"city,omitzero"`
	Province    Opt[*string]    `db:"province" json:"province,omitzero"`
	PostalCode  Opt[*string]    `db:"postal_code" json:"postal_code,omitzero"`
	Country     Opt[*string]    `db:"country" json:"country,omitzero"`
	CreatedBy   Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt   Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i AddressInsert) InsertValues() map[string]any { return columnValues(i) }

// AddressUpdate is the shape accepted when modifying an address
type AddressUpdate struct {
	ID          Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	ParentID    Opt[uuid.UUID]  `db:"parent_id" json:"parent_id,omitzero"`
	ParentType  Opt[string]     `db:"parent_type" json:"parent_type,omitzero" validate:"omitempty,crm_parent"`
	AddressType Opt[*string]    `db:"address_type" json:"address_type,omitzero"`
	Line1       Opt[string]     `db:"line1" json:"line1,omitzero"`
	Line2       Opt[*string]    `db:"line2" json:"line2,omitzero"`
	Suburb      Opt[*string]    `db:"suburb" json:"suburb,omitzero"`
	City        Opt[*string]    `db:"city" json:"city,omitzero"`
	Province    Opt[*string]    `db:"province" json:"province,omitzero"`
	PostalCode  Opt[*string]    `db:"postal_code" json:"postal_code,omitzero"`
	Country     Opt[*string]    `db:"country" json:"country,omitzero"`
	CreatedBy   Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt   Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u AddressUpdate) UpdateValues() map[string]any { return columnValues(u) }

// Attachment is a row of the attachments table. Only file metadata and the
// storage key are kept in the database.
type Attachment struct {
	ID          uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ParentID    uuid.UUID  `gorm:"column:parent_id;type:uuid" json:"parent_id"`
	ParentType  string     `gorm:"column:parent_type" json:"parent_type"`
	FileName    string     `gorm:"column:file_name" json:"file_name"`
	ContentType *string    `gorm:"column:content_type" json:"content_type"`
	SizeBytes   *int64     `gorm:"column:size_bytes" json:"size_bytes"`
	StorageKey  string     `gorm:"column:storage_key" json:"storage_key"`
	CreatedBy   *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt   *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt   *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Attachment) TableName() string {
	return "attachments"
}

// AttachmentInsert is the shape accepted when creating an attachment
type AttachmentInsert struct {
	ParentID    uuid.UUID       `db:"parent_id" json:"parent_id" validate:"required"`
	ParentType  string          `db:"parent_type" json:"parent_type" validate:"crm_parent"`
	FileName    string          `db:"file_name" json:"file_name" validate:"required"`
	StorageKey  string          `db:"storage_key" json:"storage_key" validate:"required"`
	ID          Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	ContentType Opt[*string]    `db:"content_type" json:"content_type,omitzero"`
	SizeBytes   Opt[*int64]     `db:"size_bytes" json:"size_bytes,omitzero"`
	CreatedBy   Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt   Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i AttachmentInsert) InsertValues() map[string]any { return columnValues(i) }

// AttachmentUpdate is the shape accepted when modifying an attachment
type AttachmentUpdate struct {
	ID          Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	ParentID    Opt[uuid.UUID]  `db:"parent_id" json:"parent_id,omitzero"`
	ParentType  Opt[string]     `db:"parent_type" json:"parent_type,omitzero" validate:"omitempty,crm_parent"`
	FileName    Opt[string]     `db:"file_name" json:"file_name,omitzero"`
	ContentType Opt[*string]    `db:"content_type" json:"content_type,omitzero"`
	SizeBytes   Opt[*int64]     `db:"size_bytes" json:"size_bytes,omitzero"`
	StorageKey  Opt[string]     `db:"storage_key" json:"storage_key,omitzero"`
	CreatedBy   Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt   Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt   Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u AttachmentUpdate) UpdateValues() map[string]any { return columnValues(u) }

// Interaction is a row of the interactions table: a logged call, meeting or
// message against a client, lead, policy, claim or quote.
type Interaction struct {
	ID              uuid.UUID  `gorm:"column:id;type:uuid;primaryKey" json:"id"`
	ParentID        uuid.UUID  `gorm:"column:parent_id;type:uuid" json:"parent_id"`
	ParentType      string     `gorm:"column:parent_type" json:"parent_type"`
	InteractionType string     `gorm:"column:interaction_type" json:"interaction_type"`
	Subject         *string    `gorm:"column:subject" json:"subject"`
	Description     string     `gorm:"column:description" json:"description"`
	CreatedBy       *uuid.UUID `gorm:"column:created_by;type:uuid" json:"created_by"`
	CreatedAt       *time.Time `gorm:"column:created_at" json:"created_at"`
	UpdatedAt       *time.Time `gorm:"column:updated_at" json:"updated_at"`
}

// TableName returns the table name for GORM
func (Interaction) TableName() string {
	return "interactions"
}

// InteractionInsert is the shape accepted when creating an interaction
type InteractionInsert struct {
	ParentID        uuid.UUID       `db:"parent_id" json:"parent_id" validate:"required"`
	ParentType      string          `db:"parent_type" json:"parent_type" validate:"crm_parent"`
	InteractionType string          `db:"interaction_type" json:"interaction_type" validate:"required"`
	Description     string          `db:"description" json:"description"`
	ID              Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	Subject         Opt[*string]    `db:"subject" json:"subject,omitzero"`
	CreatedBy       Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt       Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt       Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// InsertValues returns the columns written on insert
func (i InteractionInsert) InsertValues() map[string]any { return columnValues(i) }

// InteractionUpdate is the shape accepted when modifying an interaction
type InteractionUpdate struct {
	ID              Opt[uuid.UUID]  `db:"id" json:"id,omitzero"`
	ParentID        Opt[uuid.UUID]  `db:"parent_id" json:"parent_id,omitzero"`
	ParentType      Opt[string]     `db:"parent_type" json:"parent_type,omitzero" validate:"omitempty,crm_parent"`
	InteractionType Opt[string]     `db:"interaction_type" json:"interaction_type,omitzero"`
	Subject         Opt[*string]    `db:"subject" json:"subject,omitzero"`
	Description     Opt[string]     `db:"description" json:"description,omitzero"`
	CreatedBy       Opt[*uuid.UUID] `db:"created_by" json:"created_by,omitzero"`
	CreatedAt       Opt[*time.Time] `db:"created_at" json:"created_at,omitzero"`
	UpdatedAt       Opt[*time.Time] `db:"updated_at" json:"updated_at,omitzero"`
}

// UpdateValues returns the columns written on update
func (u InteractionUpdate) UpdateValues() map[string]any { return columnValues(u) }
