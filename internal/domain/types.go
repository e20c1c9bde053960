package domain

// ID is used across domain entities.
type ID = int64

// Role values known to the application.
const (
	RoleTourist = "tourist"
	RoleStaff   = "staff"
	RoleAdmin   = "admin"
)

// RequestContext carries authenticated user info when available.
type RequestContext struct {
	UserID ID     `json:"userId"`
	Role   string `json:"role"`
}

// IsStaff reports whether the caller holds a staff-level role.
func (rc RequestContext) IsStaff() bool {
	return rc.Role == RoleStaff || rc.Role == RoleAdmin
}
