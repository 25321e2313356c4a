// Package entity contains the core business objects of the project.
package entity

import "slices"

// Role is a granted authority, named the way the frontend expects it.
type Role string

const (
	// RoleUser is granted to every authenticated principal.
	RoleUser Role = "ROLE_USER"
	// RoleAdmin is granted to administrators.
	RoleAdmin Role = "ROLE_ADMIN"
	// RoleMember is granted to accounts from the member hosted domain.
	RoleMember Role = "ROLE_MEMBER"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

//nolint:gochecknoglobals
var knownRoles = Roles{RoleUser, RoleAdmin, RoleMember}

// IsValid reports whether r is one of the roles this service grants.
func (r Role) IsValid() bool {
	return knownRoles.Contains(r)
}

// Roles is the authority list of a principal, serialized in JWT claims.
type Roles []Role

// Contains checks if the roles slice contains a specific role.
func (rs Roles) Contains(role Role) bool {
	return slices.Contains(rs, role)
}

// ToStrings returns the role names in order.
func (rs Roles) ToStrings() []string {
	result := make([]string, len(rs))
	for i, r := range rs {
		result[i] = r.String()
	}

	return result
}

// RolesFromStrings keeps the known role names from ss and drops the rest.
func RolesFromStrings(ss []string) Roles {
	result := make(Roles, 0, len(ss))
	for _, s := range ss {
		role := Role(s)
		if role.IsValid() {
			result = append(result, role)
		}
	}

	return result
}
