package authorization

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libris/internal/shared/config"
)

func TestACLAllowsWildcard(t *testing.T) {
	acl := DefaultACL()

	// wildcard short-circuits regardless of method, including methods the
	// router never registers
	methods := []string{
		http.MethodGet, http.MethodPost, http.MethodPut,
		http.MethodDelete, http.MethodPatch, "BREW",
	}
	for _, m := range methods {
		assert.True(t, acl.Allows(RoleAdmin, "books", m), "admin books %s", m)
		assert.True(t, acl.Allows(RoleLibrarian, "books-loan", m), "librarian books-loan %s", m)
	}
}

func TestACLAllowsMethodSet(t *testing.T) {
	acl := DefaultACL()

	tests := []struct {
		name    string
		role    Role
		segment string
		method  string
		want    bool
	}{
		{"member can read books", RoleMember, "books", http.MethodGet, true},
		{"member cannot create books", RoleMember, "books", http.MethodPost, false},
		{"member cannot delete books", RoleMember, "books", http.MethodDelete, false},
		{"member can request loan", RoleMember, "books-loan", http.MethodPost, true},
		{"member can update loan", RoleMember, "books-loan", http.MethodPut, true},
		{"member cannot delete loan", RoleMember, "books-loan", http.MethodDelete, false},
		{"librarian can list users", RoleLibrarian, "users", http.MethodGet, true},
		{"librarian cannot update users", RoleLibrarian, "users", http.MethodPut, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, acl.Allows(tt.role, tt.segment, tt.method))
		})
	}
}

func TestACLDeniesUnknownSegment(t *testing.T) {
	acl := DefaultACL()

	// unknown segment for a known role denies, never panics
	assert.False(t, acl.Allows(RoleMember, "export", http.MethodGet))
	assert.False(t, acl.Allows(RoleAdmin, "reports", http.MethodGet))
	assert.False(t, acl.Allows(RoleLibrarian, "", http.MethodGet))
}

func TestACLDeniesUnknownRole(t *testing.T) {
	acl := DefaultACL()

	assert.False(t, acl.Allows(Role("visitor"), "books", http.MethodGet))
	assert.False(t, acl.Allows(Role(""), "books", http.MethodGet))
}

func TestFromConfig(t *testing.T) {
	cfg := &config.AuthorizationConfig{
		ACL: map[string]map[string][]string{
			"auditor": {
				"books":  {"get"},
				"export": {"*"},
			},
		},
	}

	acl := FromConfig(cfg)

	// methods are normalized to upper case, wildcard preserved
	assert.True(t, acl.Allows(Role("auditor"), "books", http.MethodGet))
	assert.False(t, acl.Allows(Role("auditor"), "books", http.MethodPost))
	assert.True(t, acl.Allows(Role("auditor"), "export", http.MethodDelete))

	// configured table replaces the defaults entirely
	assert.False(t, acl.Allows(RoleAdmin, "books", http.MethodGet))
}

func TestFromConfigEmptyFallsBackToDefaults(t *testing.T) {
	acl := FromConfig(&config.AuthorizationConfig{})
	require.NotEmpty(t, acl)
	assert.True(t, acl.Allows(RoleAdmin, "users", http.MethodDelete))
}

func TestResourceSegment(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/api/books/123", "books"},
		{"/api/books", "books"},
		{"/api/authors?page=2", "authors"},
		{"/api/books-loan/5fd2720f", "books-loan"},
		{"/api/export", "export"},
		{"/api/users/1?token=abc", "users"},
		{"/api/", ""},
		{"/api", ""},
	}

	for _, tt := range tests {
		t.Run(tt.path, func(t *testing.T) {
			assert.Equal(t, tt.want, ResourceSegment(tt.path))
		})
	}
}

func TestParseRole(t *testing.T) {
	assert.Equal(t, RoleAdmin, ParseRole("admin"))
	assert.Equal(t, RoleMember, ParseRole(""))
	// unknown roles stay open so the ACL lookup decides
	assert.Equal(t, Role("visitor"), ParseRole("visitor"))
	assert.False(t, ParseRole("visitor").IsValid())
}
