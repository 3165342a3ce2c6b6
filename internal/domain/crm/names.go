package crm

import "strings"

// ClientFullName returns the display name of a client. It follows the
// get_client_full_name database function so that names computed in Go
// match the client_summary view.
func ClientFullName(clientType ClientType, firstName, lastName, entityName *string) string {
	if clientType.IsEntity() {
		if name := trimmed(entityName); name != "" {
			return name
		}
	}
	return strings.TrimSpace(trimmed(firstName) + " " + trimmed(lastName))
}

func trimmed(s *string) string {
	if s == nil {
		return ""
	}
	return strings.TrimSpace(*s)
}
