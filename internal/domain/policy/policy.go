// Package policy maps resource operations to the role required to perform them.
package policy

import (
	"ucsbapi/internal/domain/entity"
	"ucsbapi/internal/domain/resource"
)

// CurrentUser is the pseudo-resource guarding /api/currentUser.
const CurrentUser = "currentUser"

type rule struct {
	resource string
	op       resource.Operation
}

// Table is an allow-list: every (resource, operation) pair not present is denied.
type Table struct {
	rules map[rule]entity.Role
}

// NewTable returns an empty table that denies everything.
func NewTable() *Table {
	return &Table{rules: make(map[rule]entity.Role)}
}

// Default builds the standard table for the given resources: reads need
// ROLE_USER, writes need ROLE_ADMIN, admin-only resources need ROLE_ADMIN throughout.
func Default(metas []resource.Meta) *Table {
	t := NewTable()
	for _, m := range metas {
		for _, op := range m.Operations {
			role := entity.RoleAdmin
			if !m.AdminOnly && (op == resource.OpList || op == resource.OpGet) {
				role = entity.RoleUser
			}
			t.Set(m.Path, op, role)
		}
	}
	t.Set(CurrentUser, resource.OpGet, entity.RoleUser)

	return t
}

// Set registers the role required for op on res.
func (t *Table) Set(res string, op resource.Operation, role entity.Role) {
	t.rules[rule{resource: res, op: op}] = role
}

// Required returns the role needed for op on res, and false for unknown pairs.
func (t *Table) Required(res string, op resource.Operation) (entity.Role, bool) {
	role, ok := t.rules[rule{resource: res, op: op}]

	return role, ok
}

// Allows reports whether a principal holding roles may perform op on res.
func (t *Table) Allows(res string, op resource.Operation, roles entity.Roles) bool {
	required, ok := t.Required(res, op)
	if !ok {
		return false
	}

	return roles.Contains(required)
}
