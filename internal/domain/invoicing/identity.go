package invoicing

// Identity is the resolved caller identity for a single request.
// It is passed explicitly into every operation; nothing reads it from
// ambient state. OrganizationID is empty for callers acting in a
// private (non-organization) context.
type Identity struct {
	UserID         string
	OrganizationID string
}

// IsAuthenticated reports whether a user identity was resolved.
func (id Identity) IsAuthenticated() bool {
	return id.UserID != ""
}

// InOrganization reports whether the caller acts within an organization.
func (id Identity) InOrganization() bool {
	return id.OrganizationID != ""
}
