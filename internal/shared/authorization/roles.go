package authorization

// Role identifies a caller's access level. The set below matches the
// accounts the system issues, but the type stays open: an unknown role
// simply has no ACL entry and is denied everywhere.
type Role string

const (
	RoleAdmin     Role = "admin"
	RoleLibrarian Role = "librarian"
	RoleMember    Role = "member"
)

func (r Role) String() string {
	return string(r)
}

func (r Role) IsAdmin() bool {
	return r == RoleAdmin
}

func (r Role) IsValid() bool {
	return r == RoleAdmin || r == RoleLibrarian || r == RoleMember
}

// ParseRole returns the role for a stored role string. Unknown values are
// preserved as-is so the ACL lookup decides, defaulting to member only for
// the empty string.
func ParseRole(s string) Role {
	if s == "" {
		return RoleMember
	}
	return Role(s)
}
