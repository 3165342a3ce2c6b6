package persistence

import (
	"github.com/brokerdesk/crm/internal/infrastructure/persistence/models"
	"github.com/brokerdesk/crm/internal/schema"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// Repositories bundles an accessor for every table and view of the schema
type Repositories struct {
	Addresses          *TableRepository[models.Address, models.AddressInsert, models.AddressUpdate]
	Attachments        *TableRepository[models.Attachment, models.AttachmentInsert, models.AttachmentUpdate]
	ClaimItems         *TableRepository[models.ClaimItem, models.ClaimItemInsert, models.ClaimItemUpdate]
	ClaimUpdates       *TableRepository[models.ClaimUpdateEntry, models.ClaimUpdateEntryInsert, models.ClaimUpdateEntryUpdate]
	Claims             *TableRepository[models.Claim, models.ClaimInsert, models.ClaimUpdate]
	ClientContacts     *TableRepository[models.ClientContact, models.ClientContactInsert, models.ClientContactUpdate]
	Clients            *TableRepository[models.Client, models.ClientInsert, models.ClientUpdate]
	Employees          *TableRepository[models.Employee, models.EmployeeInsert, models.EmployeeUpdate]
	Insurers           *TableRepository[models.Insurer, models.InsurerInsert, models.InsurerUpdate]
	Interactions       *TableRepository[models.Interaction, models.InteractionInsert, models.InteractionUpdate]
	Leads              *TableRepository[models.Lead, models.LeadInsert, models.LeadUpdate]
	Policies           *TableRepository[models.Policy, models.PolicyInsert, models.PolicyUpdate]
	PolicyCovers       *TableRepository[models.PolicyCover, models.PolicyCoverInsert, models.PolicyCoverUpdate]
	PolicyEndorsements *TableRepository[models.PolicyEndorsement, models.PolicyEndorsementInsert, models.PolicyEndorsementUpdate]
	PolicyTypes        *TableRepository[models.PolicyType, models.PolicyTypeInsert, models.PolicyTypeUpdate]
	Products           *TableRepository[models.Product, models.ProductInsert, models.ProductUpdate]
	QuoteOptions       *TableRepository[models.QuoteOption, models.QuoteOptionInsert, models.QuoteOptionUpdate]
	Quotes             *TableRepository[models.Quote, models.QuoteInsert, models.QuoteUpdate]
	Renewals           *TableRepository[models.Renewal, models.RenewalInsert, models.RenewalUpdate]
	Tasks              *TableRepository[models.Task, models.TaskInsert, models.TaskUpdate]

	ClientSummary  *ViewRepository[models.ClientSummary]
	DashboardStats *ViewRepository[models.DashboardStats]
	PolicySummary  *ViewRepository[models.PolicySummary]

	Functions *Functions
}

// NewRepositories creates the accessors over db
func NewRepositories(db *gorm.DB, log *zap.Logger) *Repositories {
	return &Repositories{
		Addresses:          NewTableRepository(db, schema.Addresses, log),
		Attachments:        NewTableRepository(db, schema.Attachments, log),
		ClaimItems:         NewTableRepository(db, schema.ClaimItems, log),
		ClaimUpdates:       NewTableRepository(db, schema.ClaimUpdates, log),
		Claims:             NewTableRepository(db, schema.Claims, log),
		ClientContacts:     NewTableRepository(db, schema.ClientContacts, log),
		Clients:            NewTableRepository(db, schema.Clients, log),
		Employees:          NewTableRepository(db, schema.Employees, log),
		Insurers:           NewTableRepository(db, schema.Insurers, log),
		Interactions:       NewTableRepository(db, schema.Interactions, log),
		Leads:              NewTableRepository(db, schema.Leads, log),
		Policies:           NewTableRepository(db, schema.Policies, log),
		PolicyCovers:       NewTableRepository(db, schema.PolicyCovers, log),
		PolicyEndorsements: NewTableRepository(db, schema.PolicyEndorsements, log),
		PolicyTypes:        NewTableRepository(db, schema.PolicyTypes, log),
		Products:           NewTableRepository(db, schema.Products, log),
		QuoteOptions:       NewTableRepository(db, schema.QuoteOptions, log),
		Quotes:             NewTableRepository(db, schema.Quotes, log),
		Renewals:           NewTableRepository(db, schema.Renewals, log),
		Tasks:              NewTableRepository(db, schema.Tasks, log),

		ClientSummary:  NewViewRepository(db, schema.ClientSummary, log),
		DashboardStats: NewViewRepository(db, schema.DashboardStats, log),
		PolicySummary:  NewViewRepository(db, schema.PolicySummary, log),

		Functions: NewFunctions(db, log),
	}
}
