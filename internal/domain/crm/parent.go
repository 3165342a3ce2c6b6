package crm

// ParentType names the record a polymorphic child row (task, interaction,
// address, attachment) hangs off. The database stores it as free text.
type ParentType string

const (
	ParentTypeClient ParentType = "client"
	ParentTypeLead   ParentType = "lead"
	ParentTypePolicy ParentType = "policy"
	ParentTypeClaim  ParentType = "claim"
	ParentTypeQuote  ParentType = "quote"
)

// ParentTable returns the table a parent type points into
func (p ParentType) ParentTable() (string, bool) {
	switch p {
	case ParentTypeClient:
		return "clients", true
	case ParentTypeLead:
		return "leads", true
	case ParentTypePolicy:
		return "policies", true
	case ParentTypeClaim:
		return "claims", true
	case ParentTypeQuote:
		return "quotes", true
	default:
		return "", false
	}
}
