package domain

// ResourceKind names the kinds of resource that carry an ownership chain.
type ResourceKind string

const (
	ResourceShop    ResourceKind = "shop"
	ResourceProduct ResourceKind = "product"
)

// ResourceRef points at one ownership-scoped resource instance.
type ResourceRef struct {
	Kind ResourceKind
	ID   int64
}

// Policy is an access rule for one endpoint. A nil Resource makes it a pure
// role check; otherwise the identity must also own the resource unless it is
// an administrator.
type Policy struct {
	Allowed  []Role
	Resource *ResourceRef
}

// RoleOnly allows any identity whose role is listed.
func RoleOnly(allowed ...Role) Policy {
	return Policy{Allowed: allowed}
}

// RoleAndOwnership allows a listed role that also owns ref. Administrators
// skip the ownership part.
func RoleAndOwnership(ref ResourceRef, allowed ...Role) Policy {
	return Policy{Allowed: allowed, Resource: &ref}
}

// Admits reports whether role is in the allowed set.
func (p Policy) Admits(role Role) bool {
	for _, r := range p.Allowed {
		if r == role {
			return true
		}
	}
	return false
}
