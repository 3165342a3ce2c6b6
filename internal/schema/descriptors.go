package schema

import (
	"reflect"

	"github.com/brokerdesk/crm/internal/domain/crm"
	"github.com/brokerdesk/crm/internal/infrastructure/persistence/models"
)

// InsertShape is implemented by every Insert type of the models package
type InsertShape interface {
	InsertValues() map[string]any
}

// UpdateShape is implemented by every Update type of the models package
type UpdateShape interface {
	UpdateValues() map[string]any
}

// Table binds a table name to its Row, Insert and Update shapes. Using a
// descriptor instead of a string moves the key check to compile time.
type Table[R any, I InsertShape, U UpdateShape] struct {
	name string
}

// Name returns the table name
func (t Table[R, I, U]) Name() string { return t.name }

// Kind returns KindTable
func (t Table[R, I, U]) Kind() RelationKind { return KindTable }

// Relation returns the declared catalog entry of the table
func (t Table[R, I, U]) Relation() *Relation {
	return mustRelation(t.name)
}

func (t Table[R, I, U]) rowType() reflect.Type    { return reflect.TypeFor[R]() }
func (t Table[R, I, U]) insertType() reflect.Type { return reflect.TypeFor[I]() }
func (t Table[R, I, U]) updateType() reflect.Type { return reflect.TypeFor[U]() }

// View binds a view name to its Row shape
type View[R any] struct {
	name string
}

// Name returns the view name
func (v View[R]) Name() string { return v.name }

// Kind returns KindView
func (v View[R]) Kind() RelationKind { return KindView }

// Relation returns the declared catalog entry of the view
func (v View[R]) Relation() *Relation {
	return mustRelation(v.name)
}

func (v View[R]) rowType() reflect.Type    { return reflect.TypeFor[R]() }
func (v View[R]) insertType() reflect.Type { return nil }
func (v View[R]) updateType() reflect.Type { return nil }

// Descriptor is the common surface of Table and View descriptors
type Descriptor interface {
	Name() string
	Kind() RelationKind
	Relation() *Relation
	rowType() reflect.Type
	insertType() reflect.Type
	updateType() reflect.Type
}

// EnumType binds an enum name to its Go type
type EnumType[E ~string] struct {
	name   string
	values func() []E
}

// Name returns the enum name
func (e EnumType[E]) Name() string { return e.name }

// Values returns the labels in database order
func (e EnumType[E]) Values() []E { return e.values() }

// Strings returns the labels as plain strings
func (e EnumType[E]) Strings() []string {
	values := e.values()
	out := make([]string, len(values))
	for i, v := range values {
		out[i] = string(v)
	}
	return out
}

// Tables
var (
	Addresses          = Table[models.Address, models.AddressInsert, models.AddressUpdate]{name: "addresses"}
	Attachments        = Table[models.Attachment, models.AttachmentInsert, models.AttachmentUpdate]{name: "attachments"}
	ClaimItems         = Table[models.ClaimItem, models.ClaimItemInsert, models.ClaimItemUpdate]{name: "claim_items"}
	ClaimUpdates       = Table[models.ClaimUpdateEntry, models.ClaimUpdateEntryInsert, models.ClaimUpdateEntryUpdate]{name: "claim_updates"}
	Claims             = Table[models.Claim, models.ClaimInsert, models.ClaimUpdate]{name: "claims"}
	ClientContacts     = Table[models.ClientContact, models.ClientContactInsert, models.ClientContactUpdate]{name: "client_contacts"}
	Clients            = Table[models.Client, models.ClientInsert, models.ClientUpdate]{name: "clients"}
	Employees          = Table[models.Employee, models.EmployeeInsert, models.EmployeeUpdate]{name: "employees"}
	Insurers           = Table[models.Insurer, models.InsurerInsert, models.InsurerUpdate]{name: "insurers"}
	Interactions       = Table[models.Interaction, models.InteractionInsert, models.InteractionUpdate]{name: "interactions"}
	Leads              = Table[models.Lead, models.LeadInsert, models.LeadUpdate]{name: "leads"}
	Policies           = Table[models.Policy, models.PolicyInsert, models.PolicyUpdate]{name: "policies"}
	PolicyCovers       = Table[models.PolicyCover, models.PolicyCoverInsert, models.PolicyCoverUpdate]{name: "policy_covers"}
	PolicyEndorsements = Table[models.PolicyEndorsement, models.PolicyEndorsementInsert, models.PolicyEndorsementUpdate]{name: "policy_endorsements"}
	PolicyTypes        = Table[models.PolicyType, models.PolicyTypeInsert, models.PolicyTypeUpdate]{name: "policy_types"}
	Products           = Table[models.Product, models.ProductInsert, models.ProductUpdate]{name: "products"}
	QuoteOptions       = Table[models.QuoteOption, models.QuoteOptionInsert, models.QuoteOptionUpdate]{name: "quote_options"}
	Quotes             = Table[models.Quote, models.QuoteInsert, models.QuoteUpdate]{name: "quotes"}
	Renewals           = Table[models.Renewal, models.RenewalInsert, models.RenewalUpdate]{name: "renewals"}
	Tasks              = Table[models.Task, models.TaskInsert, models.TaskUpdate]{name: "tasks"}
)

// Views
var (
	ClientSummary  = View[models.ClientSummary]{name: "client_summary"}
	DashboardStats = View[models.DashboardStats]{name: "dashboard_stats"}
	PolicySummary  = View[models.PolicySummary]{name: "policy_summary"}
)

// Enums
var (
	ClaimStatusEnum  = EnumType[crm.ClaimStatus]{name: "claim_status", values: crm.ClaimStatusValues}
	ClaimTypeEnum    = EnumType[crm.ClaimType]{name: "claim_type", values: crm.ClaimTypeValues}
	ClientStatusEnum = EnumType[crm.ClientStatus]{name: "client_status", values: crm.ClientStatusValues}
	ClientTypeEnum   = EnumType[crm.ClientType]{name: "client_type", values: crm.ClientTypeValues}
	EmployeeRoleEnum = EnumType[crm.EmployeeRole]{name: "employee_role", values: crm.EmployeeRoleValues}
	LeadStatusEnum   = EnumType[crm.LeadStatus]{name: "lead_status", values: crm.LeadStatusValues}
	PolicyStatusEnum = EnumType[crm.PolicyStatus]{name: "policy_status", values: crm.PolicyStatusValues}
	QuoteStatusEnum  = EnumType[crm.QuoteStatus]{name: "quote_status", values: crm.QuoteStatusValues}
	TaskPriorityEnum = EnumType[crm.TaskPriority]{name: "task_priority", values: crm.TaskPriorityValues}
	TaskStatusEnum   = EnumType[crm.TaskStatus]{name: "task_status", values: crm.TaskStatusValues}
)

// Descriptors lists every table and view descriptor sorted by name
func Descriptors() []Descriptor {
	return []Descriptor{
		Addresses, Attachments, ClaimItems, ClaimUpdates, Claims,
		ClientContacts, ClientSummary, Clients, DashboardStats, Employees,
		Insurers, Interactions, Leads, Policies, PolicyCovers,
		PolicyEndorsements, PolicySummary, PolicyTypes, Products, QuoteOptions,
		Quotes, Renewals, Tasks,
	}
}

// enumStrings maps enum names to the Go label lists
func enumStrings() map[string][]string {
	return map[string][]string{
		ClaimStatusEnum.Name():  ClaimStatusEnum.Strings(),
		ClaimTypeEnum.Name():    ClaimTypeEnum.Strings(),
		ClientStatusEnum.Name(): ClientStatusEnum.Strings(),
		ClientTypeEnum.Name():   ClientTypeEnum.Strings(),
		EmployeeRoleEnum.Name(): EmployeeRoleEnum.Strings(),
		LeadStatusEnum.Name():   LeadStatusEnum.Strings(),
		PolicyStatusEnum.Name(): PolicyStatusEnum.Strings(),
		QuoteStatusEnum.Name():  QuoteStatusEnum.Strings(),
		TaskPriorityEnum.Name(): TaskPriorityEnum.Strings(),
		TaskStatusEnum.Name():   TaskStatusEnum.Strings(),
	}
}

// mustRelation hands out a private copy so callers cannot alter the
// declared catalog.
func mustRelation(name string) *Relation {
	for i := range declaredRelations {
		if declaredRelations[i].Name == name {
			return declaredRelations[i].Clone()
		}
	}
	panic("schema: no declared relation " + name)
}
