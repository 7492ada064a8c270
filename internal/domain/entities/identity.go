package entities

import "github.com/google/uuid"

// ResolvedIdentity is the request-time identity: the verified claim set
// (account id, role) enriched with the account's current email and phone,
// re-read from the store on every request. Keeping this separate from the
// token claims makes the staleness trade-off explicit: the token never
// changes, the contact fields always reflect the live account.
type ResolvedIdentity struct {
	AccountID uuid.UUID
	Role      AccountRole
	Email     string
	Phone     string
}

// IsAdmin reports whether the identity holds the admin role
func (i ResolvedIdentity) IsAdmin() bool {
	return i.Role == AccountRoleAdmin
}
