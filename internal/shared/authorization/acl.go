package authorization

import (
	"strings"

	"libris/internal/shared/config"
	"libris/internal/shared/constants"
)

// Wildcard marks a rule that allows every HTTP method on a segment.
const Wildcard = "*"

// ACL maps a role to the resource segments it may touch and the HTTP
// methods allowed on each. It is built once at startup and read-only
// afterwards.
type ACL map[Role]map[string][]string

// DefaultACL returns the table used when configuration carries no acl
// section.
func DefaultACL() ACL {
	return ACL{
		RoleAdmin: {
			"users":      {Wildcard},
			"authors":    {Wildcard},
			"books":      {Wildcard},
			"books-loan": {Wildcard},
			"export":     {Wildcard},
		},
		RoleLibrarian: {
			"users":      {"GET"},
			"authors":    {Wildcard},
			"books":      {Wildcard},
			"books-loan": {Wildcard},
			"export":     {Wildcard},
		},
		RoleMember: {
			"authors":    {"GET"},
			"books":      {"GET"},
			"books-loan": {"GET", "POST", "PUT"},
		},
	}
}

// FromConfig builds the ACL from the loaded authorization section, falling
// back to the defaults when the section is empty.
func FromConfig(cfg *config.AuthorizationConfig) ACL {
	if cfg == nil || len(cfg.ACL) == 0 {
		return DefaultACL()
	}
	acl := make(ACL, len(cfg.ACL))
	for role, segments := range cfg.ACL {
		entry := make(map[string][]string, len(segments))
		for segment, methods := range segments {
			rule := make([]string, 0, len(methods))
			for _, m := range methods {
				if m == Wildcard {
					rule = append(rule, Wildcard)
					continue
				}
				rule = append(rule, strings.ToUpper(m))
			}
			entry[segment] = rule
		}
		acl[Role(role)] = entry
	}
	return acl
}

// Allows reports whether the role may issue the given HTTP method against
// the resource segment. A missing role or segment denies rather than
// erroring; a wildcard rule allows regardless of method.
func (a ACL) Allows(role Role, segment, method string) bool {
	entry, ok := a[role]
	if !ok {
		return false
	}
	rule, ok := entry[segment]
	if !ok || len(rule) == 0 {
		return false
	}
	if rule[0] == Wildcard {
		return true
	}
	for _, m := range rule {
		if m == method {
			return true
		}
	}
	return false
}

// ResourceSegment extracts the ACL lookup key from a request path: the
// first path component after the API prefix, with any query string
// stripped. "/api/books/123?x=1" yields "books".
func ResourceSegment(path string) string {
	if i := strings.IndexByte(path, '?'); i >= 0 {
		path = path[:i]
	}
	path = strings.TrimPrefix(path, constants.APIPrefix)
	path = strings.TrimPrefix(path, "/")
	if i := strings.IndexByte(path, '/'); i >= 0 {
		path = path[:i]
	}
	return path
}
