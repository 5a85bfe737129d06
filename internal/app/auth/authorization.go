package auth

import (
	"github.com/retriever-essentials/pantry/internal/app/models"
)

// AdminPolicy decides whether a caller may perform administrative
// operations (managing items, vendors and users). It is injected into the
// route layer so deployments can swap the rule without touching handlers.
type AdminPolicy interface {
	// IsAdmin reports whether the given role grants administrative access.
	IsAdmin(role string) bool
}

// RoleAdminPolicy grants admin access based on the role claim carried in
// the caller's token. This is the policy used in production.
type RoleAdminPolicy struct{}

// NewRoleAdminPolicy creates the default role-based policy
func NewRoleAdminPolicy() *RoleAdminPolicy {
	return &RoleAdminPolicy{}
}

// IsAdmin reports whether the role string names the admin role
func (p *RoleAdminPolicy) IsAdmin(role string) bool {
	return models.RoleType(role) == models.RoleAdmin
}

// AllowAllPolicy grants admin access unconditionally. Useful in tests and
// local development where no identity provider is wired up.
type AllowAllPolicy struct{}

// NewAllowAllPolicy creates a policy that accepts every caller
func NewAllowAllPolicy() *AllowAllPolicy {
	return &AllowAllPolicy{}
}

// IsAdmin always returns true
func (p *AllowAllPolicy) IsAdmin(string) bool {
	return true
}
