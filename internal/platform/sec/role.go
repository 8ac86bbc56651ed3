// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package sec

// # Roles

// UserRole represents the authorization level carried by an admin token.
type UserRole string

const (
	// Unrestricted operational access, including cache purges
	RoleAdmin UserRole = "admin"

	// Maintains the directory content; may purge listing caches after edits
	RoleCurator UserRole = "curator"

	// Read-only access to admin views
	RoleViewer UserRole = "viewer"
)

// # Role Hierarchy

// AtLeast checks if the current role meets or exceeds the required target role.
func (r UserRole) AtLeast(target UserRole) bool {
	return r.level() >= target.level() && target.level() > 0
}

// level maps a role to a numeric hierarchy level for comparison logic.
func (r UserRole) level() int {
	switch r {
	case RoleAdmin:
		return 30
	case RoleCurator:
		return 20
	case RoleViewer:
		return 10
	default:
		return 0
	}
}
