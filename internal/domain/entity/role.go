package entity

// Role represents the type of role a user can have within a company.
type Role string

const (
	// RoleAdmin manages the company and its members.
	RoleAdmin Role = "admin"
	// RoleMember is a regular company member.
	RoleMember Role = "member"
)

// String returns the string representation of the Role.
func (r Role) String() string {
	return string(r)
}

// IsValid checks if the Role is a valid value.
func (r Role) IsValid() bool {
	switch r {
	case RoleAdmin, RoleMember:
		return true
	default:
		return false
	}
}
