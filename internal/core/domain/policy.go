package domain

import "errors"

var ErrForbidden = errors.New("access forbidden")

// Resource identifies a class of rows the policy knows about.
type Resource string

const (
	ResourceAssets      Resource = "assets"
	ResourceUsers       Resource = "users"
	ResourceCategories  Resource = "categories"
	ResourceDepartments Resource = "departments"
)

// Action is a data-access verb.
type Action string

const (
	ActionRead   Action = "read"
	ActionCreate Action = "create"
	ActionDelete Action = "delete"
)

// RowFilter scopes a read to rows created by a single user. The zero value
// is the unrestricted filter.
type RowFilter struct {
	CreatedBy string
}

// Unrestricted reports whether the filter matches every row.
func (f RowFilter) Unrestricted() bool {
	return f.CreatedBy == ""
}

// Decision is the outcome of an authorization check. Filter is meaningful
// only for reads; creates carry the creator in ForcedCreator instead.
type Decision struct {
	Allow  bool
	Filter RowFilter
	// ForcedCreator is the creator reference a permitted insert must carry,
	// regardless of what the request claimed.
	ForcedCreator string
}

// Authorize decides whether user may perform action on resource and which
// row scoping applies:
//
//	assets read:    admin sees all rows, user only rows they created
//	assets create:  both roles, creator forced to self
//	assets delete:  admin only
//	users:          admin only
//	categories and departments: both roles
//
// Only the admin and user roles exist; anything else is denied everything.
func Authorize(user *AuthenticatedUser, resource Resource, action Action) Decision {
	if user == nil {
		return Decision{}
	}
	if user.Role != RoleAdmin && user.Role != RoleUser {
		return Decision{}
	}
	admin := user.Role == RoleAdmin

	switch resource {
	case ResourceAssets:
		switch action {
		case ActionRead:
			if admin {
				return Decision{Allow: true}
			}
			return Decision{Allow: true, Filter: RowFilter{CreatedBy: user.ID}}
		case ActionCreate:
			return Decision{Allow: true, ForcedCreator: user.ID}
		case ActionDelete:
			return Decision{Allow: admin}
		}
	case ResourceUsers:
		switch action {
		case ActionRead, ActionCreate:
			return Decision{Allow: admin}
		}
	case ResourceCategories, ResourceDepartments:
		switch action {
		case ActionRead:
			return Decision{Allow: true}
		case ActionCreate:
			return Decision{Allow: true, ForcedCreator: user.ID}
		}
	}
	return Decision{}
}
