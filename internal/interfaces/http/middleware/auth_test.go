package middleware

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"libris/internal/infrastructure/auth"
	"libris/internal/shared/authorization"
	"libris/internal/shared/constants"
	"libris/internal/shared/logger"
	"libris/internal/shared/utils"
)

func newGatedRouter(t *testing.T) (*gin.Engine, *auth.JWTCodec) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	codec := auth.NewJWTCodec("test-secret", 60)
	gate := NewAuthMiddleware(codec, authorization.DefaultACL(), logger.NewLogger())

	r := gin.New()
	api := r.Group(constants.APIPrefix)
	api.Use(gate.RequireAuth())

	echo := func(c *gin.Context) {
		userID, _ := c.Get(constants.ContextKeyUserID)
		role, _ := c.Get(constants.ContextKeyUserRole)
		utils.SuccessResponse(c, gin.H{"user_id": userID, "role": role})
	}
	api.GET("/books", echo)
	api.POST("/books", echo)
	api.DELETE("/books/:id", echo)
	api.GET("/users", echo)
	api.POST("/books-loan", echo)

	return r, codec
}

func tokenFor(t *testing.T, codec *auth.JWTCodec, role authorization.Role) string {
	t.Helper()
	token, err := codec.Generate(7, "Akash", role, "active")
	require.NoError(t, err)
	return token
}

func perform(r *gin.Engine, method, target string, header http.Header) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, nil)
	for k, vs := range header {
		for _, v := range vs {
			req.Header.Add(k, v)
		}
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeEnvelope(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func TestGateRejectsMissingToken(t *testing.T) {
	r, _ := newGatedRouter(t)

	w := perform(r, http.MethodGet, "/api/books", nil)
	require.Equal(t, http.StatusUnauthorized, w.Code)

	body := decodeEnvelope(t, w)
	assert.Equal(t, true, body["error"])
	assert.Equal(t, constants.ErrMsgUnauthorized, body["message"])
}

func TestGateRejectsGarbageToken(t *testing.T) {
	r, _ := newGatedRouter(t)

	for _, token := range []string{"garbage", "a.b.c", "Bearer"} {
		w := perform(r, http.MethodGet, "/api/books", http.Header{"Authorization": {token}})
		assert.Equal(t, http.StatusUnauthorized, w.Code, "token %q", token)
	}
}

func TestGateAcceptsTokenSources(t *testing.T) {
	r, codec := newGatedRouter(t)
	token := tokenFor(t, codec, authorization.RoleMember)

	cases := []struct {
		name   string
		target string
		header http.Header
	}{
		{"authorization header", "/api/books", http.Header{"Authorization": {token}}},
		{"bearer prefix", "/api/books", http.Header{"Authorization": {"Bearer " + token}}},
		{"token header", "/api/books", http.Header{"Token": {token}}},
		{"query parameter", "/api/books?token=" + token, nil},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			w := perform(r, http.MethodGet, tc.target, tc.header)
			require.Equal(t, http.StatusOK, w.Code)

			body := decodeEnvelope(t, w)
			data := body["data"].(map[string]interface{})
			assert.Equal(t, float64(7), data["user_id"])
			assert.Equal(t, "member", data["role"])
		})
	}
}

func TestGateAuthorizationHeaderWinsOverTokenHeader(t *testing.T) {
	r, codec := newGatedRouter(t)
	token := tokenFor(t, codec, authorization.RoleMember)

	// a bad authorization header is not rescued by a valid token header
	w := perform(r, http.MethodGet, "/api/books", http.Header{
		"Authorization": {"garbage"},
		"Token":         {token},
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestGateEnforcesACL(t *testing.T) {
	r, codec := newGatedRouter(t)

	cases := []struct {
		role   authorization.Role
		method string
		target string
		code   int
	}{
		{authorization.RoleMember, http.MethodGet, "/api/books", http.StatusOK},
		{authorization.RoleMember, http.MethodPost, "/api/books", http.StatusUnauthorized},
		{authorization.RoleMember, http.MethodPost, "/api/books-loan", http.StatusOK},
		{authorization.RoleMember, http.MethodGet, "/api/users", http.StatusUnauthorized},
		{authorization.RoleLibrarian, http.MethodPost, "/api/books", http.StatusOK},
		{authorization.RoleLibrarian, http.MethodGet, "/api/users", http.StatusOK},
		{authorization.RoleAdmin, http.MethodDelete, "/api/books/3", http.StatusOK},
	}
	for _, tc := range cases {
		token := tokenFor(t, codec, tc.role)
		w := perform(r, tc.method, tc.target, http.Header{"Authorization": {token}})
		assert.Equal(t, tc.code, w.Code, "%s %s %s", tc.role, tc.method, tc.target)
	}
}

func TestGateRejectsWrongSecret(t *testing.T) {
	r, _ := newGatedRouter(t)

	other := auth.NewJWTCodec("other-secret", 60)
	token, err := other.Generate(7, "Akash", authorization.RoleAdmin, "active")
	require.NoError(t, err)

	w := perform(r, http.MethodGet, "/api/books", http.Header{"Authorization": {token}})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}
