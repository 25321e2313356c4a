// Package resource describes the CRUD resources exposed by the service:
// their names, URL paths, key kinds and the operations they support.
package resource

import (
	"slices"
	"strconv"
	"strings"

	"ucsbapi/internal/errors"
)

// Key is the set of identifier types a resource may use.
type Key interface {
	~int64 | ~string
}

// Operation is one CRUD action on a resource.
type Operation string

const (
	OpList   Operation = "list"
	OpGet    Operation = "get"
	OpCreate Operation = "create"
	OpUpdate Operation = "update"
	OpDelete Operation = "delete"
)

// AllOperations is the full CRUD set.
var AllOperations = []Operation{OpList, OpGet, OpCreate, OpUpdate, OpDelete}

// ErrInvalidKey is returned when a key parameter cannot be parsed.
var ErrInvalidKey = errors.New("invalid key")

// Meta is the type-erased part of a descriptor, enough for routing and policy.
type Meta struct {
	// Name is the entity name used in messages, e.g. "Animal".
	Name string
	// Path is the URL segment under /api, e.g. "animals" or "admin/users".
	Path string
	// KeyParam is the query parameter carrying the key, "id" unless natural-keyed.
	KeyParam string
	// ClientKey marks natural-key resources whose key is supplied on create.
	ClientKey bool
	// AdminOnly restricts reads as well as writes to ROLE_ADMIN.
	AdminOnly  bool
	Operations []Operation
}

// Supports reports whether op is enabled for the resource.
func (m Meta) Supports(op Operation) bool {
	return slices.Contains(m.Operations, op)
}

// Descriptor binds a Meta to an entity type and its key accessors.
type Descriptor[T any, K Key] struct {
	Meta
	KeyOf  func(*T) K
	SetKey func(*T, K)
}

// ParseKey converts the raw query value into K.
func (d Descriptor[T, K]) ParseKey(raw string) (K, error) {
	var key K
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return key, errors.Wrapf(ErrInvalidKey, "%s is required", d.KeyParam)
	}

	switch p := any(&key).(type) {
	case *int64:
		n, err := strconv.ParseInt(raw, 10, 64)
		if err != nil {
			return key, errors.Wrapf(ErrInvalidKey, "%s must be an integer, got %q", d.KeyParam, raw)
		}
		*p = n
	case *string:
		*p = raw
	default:
		return key, errors.Wrapf(ErrInvalidKey, "unsupported key type %T", key)
	}

	return key, nil
}
