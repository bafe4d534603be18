package invoicing

// AccessScope is the visibility/mutability filter derived from a caller
// identity. Exactly two modes exist:
//
//   - organization scope: any member sees every invoice owned by the
//     organization, regardless of who created it
//   - private scope: only the creator, and only invoices that were never
//     assigned to an organization
//
// Every invoice query (list, get, update, delete) applies the same scope;
// there is no unscoped access path.
type AccessScope struct {
	userID         string
	organizationID string
}

// ScopeFor derives the access scope for an identity.
func ScopeFor(identity Identity) AccessScope {
	return AccessScope{
		userID:         identity.UserID,
		organizationID: identity.OrganizationID,
	}
}

// IsOrganization reports whether this is an organization scope.
func (s AccessScope) IsOrganization() bool {
	return s.organizationID != ""
}

// UserID returns the scoped user identifier.
func (s AccessScope) UserID() string {
	return s.userID
}

// OrganizationID returns the scoped organization identifier, empty for
// private scopes.
func (s AccessScope) OrganizationID() string {
	return s.organizationID
}

// Matches reports whether the scope predicate holds for an invoice.
// This is the in-memory equivalent of the WHERE clause repositories
// attach to every invoice query.
func (s AccessScope) Matches(inv *Invoice) bool {
	if s.IsOrganization() {
		return inv.OrganizationID != nil && *inv.OrganizationID == s.organizationID
	}
	return inv.OrganizationID == nil && inv.CreatedBy == s.userID
}
