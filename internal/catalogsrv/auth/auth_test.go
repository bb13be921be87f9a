package auth

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/articod/articod/internal/catalogsrv/catcommon"
	"github.com/articod/articod/internal/catalogsrv/config"
)

func withTestConfig(t *testing.T, singleUser bool) {
	t.Helper()
	require.NoError(t, config.LoadConfig(""))
	config.Config().JWTSigningKey = "test-signing-key"
	config.Config().SingleUserMode = singleUser
}

func TestTokenRoundTrip(t *testing.T) {
	withTestConfig(t, false)

	token, err := CreateToken("alice@example.com", catcommon.RoleEditor)
	require.Nil(t, err)

	user, err := ParseToken(token)
	require.Nil(t, err)
	assert.Equal(t, "alice@example.com", user.Subject)
	assert.Equal(t, catcommon.RoleEditor, user.Role)
}

func TestParseTokenRejectsGarbage(t *testing.T) {
	withTestConfig(t, false)

	_, err := ParseToken("not-a-token")
	require.NotNil(t, err)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestCreateTokenRejectsUnknownRole(t *testing.T) {
	withTestConfig(t, false)
	_, err := CreateToken("alice@example.com", catcommon.Role("root"))
	require.NotNil(t, err)
}

func TestMiddlewareSingleUserMode(t *testing.T) {
	withTestConfig(t, true)
	config.Config().DefaultActor = "admin@localhost"

	var got *catcommon.UserContext
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = catcommon.GetUserContext(r.Context())
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/families", nil))

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "admin@localhost", got.Subject)
	assert.Equal(t, catcommon.RoleAdmin, got.Role)
}

func TestMiddlewareRequiresToken(t *testing.T) {
	withTestConfig(t, false)

	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("handler must not run without a token")
	}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/families", nil))
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}

func TestMiddlewareAcceptsBearerToken(t *testing.T) {
	withTestConfig(t, false)
	token, err := CreateToken("bob@example.com", catcommon.RoleViewer)
	require.Nil(t, err)

	var got *catcommon.UserContext
	handler := Middleware(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got = catcommon.GetUserContext(r.Context())
	}))
	req := httptest.NewRequest(http.MethodGet, "/families", nil)
	req.Header.Set("Authorization", "Bearer "+token)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	require.NotNil(t, got)
	assert.Equal(t, "bob@example.com", got.Subject)
}

func TestRequireWrite(t *testing.T) {
	withTestConfig(t, false)

	handler := RequireWrite(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusNoContent)
	}))

	// viewer may read
	req := httptest.NewRequest(http.MethodGet, "/families", nil)
	req = req.WithContext(catcommon.SetUserContext(req.Context(), &catcommon.UserContext{Subject: "v", Role: catcommon.RoleViewer}))
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)

	// viewer may not write
	req = httptest.NewRequest(http.MethodPost, "/families", nil)
	req = req.WithContext(catcommon.SetUserContext(req.Context(), &catcommon.UserContext{Subject: "v", Role: catcommon.RoleViewer}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusForbidden, rec.Code)

	// editor may write
	req = httptest.NewRequest(http.MethodDelete, "/families/x", nil)
	req = req.WithContext(catcommon.SetUserContext(req.Context(), &catcommon.UserContext{Subject: "e", Role: catcommon.RoleEditor}))
	rec = httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	assert.Equal(t, http.StatusNoContent, rec.Code)
}
