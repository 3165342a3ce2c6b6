package crm

// ClaimStatus represents the lifecycle state of a claim
type ClaimStatus string

const (
	ClaimStatusReported ClaimStatus = "reported"
	ClaimStatusInReview ClaimStatus = "in_review"
	ClaimStatusApproved ClaimStatus = "approved"
	ClaimStatusDeclined ClaimStatus = "declined"
	ClaimStatusSettled  ClaimStatus = "settled"
)

// ClaimStatusValues returns all claim statuses in declaration order
func ClaimStatusValues() []ClaimStatus {
	return []ClaimStatus{
		ClaimStatusReported, ClaimStatusInReview, ClaimStatusApproved,
		ClaimStatusDeclined, ClaimStatusSettled,
	}
}

// IsValid checks if the claim status is valid
func (s ClaimStatus) IsValid() bool {
	switch s {
	case ClaimStatusReported, ClaimStatusInReview, ClaimStatusApproved,
		ClaimStatusDeclined, ClaimStatusSettled:
		return true
	default:
		return false
	}
}

// IsOpen returns true while the claim still needs work.
// Matches the open_claims count of the dashboard_stats view.
func (s ClaimStatus) IsOpen() bool {
	return s == ClaimStatusReported || s == ClaimStatusInReview || s == ClaimStatusApproved
}

// ClaimType represents the kind of loss being claimed
type ClaimType string

const (
	ClaimTypeMotor                ClaimType = "motor"
	ClaimTypeProperty             ClaimType = "property"
	ClaimTypeLiability            ClaimType = "liability"
	ClaimTypePersonalAccident     ClaimType = "personal_accident"
	ClaimTypeBusinessInterruption ClaimType = "business_interruption"
	ClaimTypeOther                ClaimType = "other"
)

// ClaimTypeValues returns all claim types in declaration order
func ClaimTypeValues() []ClaimType {
	return []ClaimType{
		ClaimTypeMotor, ClaimTypeProperty, ClaimTypeLiability,
		ClaimTypePersonalAccident, ClaimTypeBusinessInterruption, ClaimTypeOther,
	}
}

// IsValid checks if the claim type is valid
func (t ClaimType) IsValid() bool {
	switch t {
	case ClaimTypeMotor, ClaimTypeProperty, ClaimTypeLiability,
		ClaimTypePersonalAccident, ClaimTypeBusinessInterruption, ClaimTypeOther:
		return true
	default:
		return false
	}
}

// ClientStatus represents whether a client is still serviced
type ClientStatus string

const (
	ClientStatusActive   ClientStatus = "active"
	ClientStatusInactive ClientStatus = "inactive"
)

// ClientStatusValues returns all client statuses in declaration order
func ClientStatusValues() []ClientStatus {
	return []ClientStatus{ClientStatusActive, ClientStatusInactive}
}

// IsValid checks if the client status is valid
func (s ClientStatus) IsValid() bool {
	return s == ClientStatusActive || s == ClientStatusInactive
}

// ClientType represents the legal form of a client or prospect
type ClientType string

const (
	ClientTypePersonal      ClientType = "personal"
	ClientTypeBusiness      ClientType = "business"
	ClientTypeBodyCorporate ClientType = "body_corporate"
)

// ClientTypeValues returns all client types in declaration order
func ClientTypeValues() []ClientType {
	return []ClientType{ClientTypePersonal, ClientTypeBusiness, ClientTypeBodyCorporate}
}

// IsValid checks if the client type is valid
func (t ClientType) IsValid() bool {
	switch t {
	case ClientTypePersonal, ClientTypeBusiness, ClientTypeBodyCorporate:
		return true
	default:
		return false
	}
}

// IsEntity returns true for client types identified by an entity name
func (t ClientType) IsEntity() bool {
	return t == ClientTypeBusiness || t == ClientTypeBodyCorporate
}

// EmployeeRole represents the job function of an agency employee
type EmployeeRole string

const (
	EmployeeRoleAdmin         EmployeeRole = "admin"
	EmployeeRoleManager       EmployeeRole = "manager"
	EmployeeRoleBroker        EmployeeRole = "broker"
	EmployeeRoleClaimsHandler EmployeeRole = "claims_handler"
	EmployeeRoleAssistant     EmployeeRole = "assistant"
)

// EmployeeRoleValues returns all employee roles in declaration order
func EmployeeRoleValues() []EmployeeRole {
	return []EmployeeRole{
		EmployeeRoleAdmin, EmployeeRoleManager, EmployeeRoleBroker,
		EmployeeRoleClaimsHandler, EmployeeRoleAssistant,
	}
}

// IsValid checks if the employee role is valid
func (r EmployeeRole) IsValid() bool {
	switch r {
	case EmployeeRoleAdmin, EmployeeRoleManager, EmployeeRoleBroker,
		EmployeeRoleClaimsHandler, EmployeeRoleAssistant:
		return true
	default:
		return false
	}
}

// LeadStatus represents the sales pipeline stage of a lead
type LeadStatus string

const (
	LeadStatusNew          LeadStatus = "new"
	LeadStatusContacted    LeadStatus = "contacted"
	LeadStatusQualifying   LeadStatus = "qualifying"
	LeadStatusQuoting      LeadStatus = "quoting"
	LeadStatusAwaitingDocs LeadStatus = "awaiting_docs"
	LeadStatusDecision     LeadStatus = "decision"
	LeadStatusWon          LeadStatus = "won"
	LeadStatusLost         LeadStatus = "lost"
)

// LeadStatusValues returns all lead statuses in pipeline order
func LeadStatusValues() []LeadStatus {
	return []LeadStatus{
		LeadStatusNew, LeadStatusContacted, LeadStatusQualifying, LeadStatusQuoting,
		LeadStatusAwaitingDocs, LeadStatusDecision, LeadStatusWon, LeadStatusLost,
	}
}

// IsValid checks if the lead status is valid
func (s LeadStatus) IsValid() bool {
	switch s {
	case LeadStatusNew, LeadStatusContacted, LeadStatusQualifying, LeadStatusQuoting,
		LeadStatusAwaitingDocs, LeadStatusDecision, LeadStatusWon, LeadStatusLost:
		return true
	default:
		return false
	}
}

// IsClosed returns true once the lead has been won or lost
func (s LeadStatus) IsClosed() bool {
	return s == LeadStatusWon || s == LeadStatusLost
}

// PolicyStatus represents the state of a policy
type PolicyStatus string

const (
	PolicyStatusActive    PolicyStatus = "active"
	PolicyStatusCancelled PolicyStatus = "cancelled"
	PolicyStatusPending   PolicyStatus = "pending"
)

// PolicyStatusValues returns all policy statuses in declaration order
func PolicyStatusValues() []PolicyStatus {
	return []PolicyStatus{PolicyStatusActive, PolicyStatusCancelled, PolicyStatusPending}
}

// IsValid checks if the policy status is valid
func (s PolicyStatus) IsValid() bool {
	switch s {
	case PolicyStatusActive, PolicyStatusCancelled, PolicyStatusPending:
		return true
	default:
		return false
	}
}

// QuoteStatus represents the state of a quote
type QuoteStatus string

const (
	QuoteStatusDraft    QuoteStatus = "draft"
	QuoteStatusSent     QuoteStatus = "sent"
	QuoteStatusAccepted QuoteStatus = "accepted"
	QuoteStatusDeclined QuoteStatus = "declined"
	QuoteStatusExpired  QuoteStatus = "expired"
)

// QuoteStatusValues returns all quote statuses in declaration order
func QuoteStatusValues() []QuoteStatus {
	return []QuoteStatus{
		QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted,
		QuoteStatusDeclined, QuoteStatusExpired,
	}
}

// IsValid checks if the quote status is valid
func (s QuoteStatus) IsValid() bool {
	switch s {
	case QuoteStatusDraft, QuoteStatusSent, QuoteStatusAccepted,
		QuoteStatusDeclined, QuoteStatusExpired:
		return true
	default:
		return false
	}
}

// IsPending returns true for quotes still awaiting a client decision.
// Matches the pending_quotes count of the dashboard_stats view.
func (s QuoteStatus) IsPending() bool {
	return s == QuoteStatusDraft || s == QuoteStatusSent
}

// TaskPriority represents the urgency of a task
type TaskPriority string

const (
	TaskPriorityLow    TaskPriority = "low"
	TaskPriorityMedium TaskPriority = "medium"
	TaskPriorityHigh   TaskPriority = "high"
	TaskPriorityUrgent TaskPriority = "urgent"
)

// TaskPriorityValues returns all task priorities from lowest to highest
func TaskPriorityValues() []TaskPriority {
	return []TaskPriority{TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent}
}

// IsValid checks if the task priority is valid
func (p TaskPriority) IsValid() bool {
	switch p {
	case TaskPriorityLow, TaskPriorityMedium, TaskPriorityHigh, TaskPriorityUrgent:
		return true
	default:
		return false
	}
}

// TaskStatus represents the progress of a task
type TaskStatus string

const (
	TaskStatusPending    TaskStatus = "pending"
	TaskStatusInProgress TaskStatus = "in_progress"
	TaskStatusCompleted  TaskStatus = "completed"
	TaskStatusCancelled  TaskStatus = "cancelled"
)

// TaskStatusValues returns all task statuses in declaration order
func TaskStatusValues() []TaskStatus {
	return []TaskStatus{TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled}
}

// IsValid checks if the task status is valid
func (s TaskStatus) IsValid() bool {
	switch s {
	case TaskStatusPending, TaskStatusInProgress, TaskStatusCompleted, TaskStatusCancelled:
		return true
	default:
		return false
	}
}

// IsActive returns true for tasks that still count against an assignee.
// Matches the my_tasks count of the dashboard_stats view.
func (s TaskStatus) IsActive() bool {
	return s == TaskStatusPending || s == TaskStatusInProgress
}
