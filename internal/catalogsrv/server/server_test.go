package server

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/articod/articod/internal/catalogsrv/config"
)

func TestVersionEndpoint(t *testing.T) {
	require.NoError(t, config.LoadConfig(""))
	s := CreateNewServer()
	s.MountHandlers()

	req := httptest.NewRequest(http.MethodGet, "/version", nil)
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Body.String(), "version")
	assert.NotEmpty(t, rec.Header().Get("X-Articod-Request-ID"))
}

func TestUnauthenticatedRequestRejected(t *testing.T) {
	require.NoError(t, config.LoadConfig(""))
	config.Config().SingleUserMode = false
	config.Config().JWTSigningKey = "test-signing-key"
	t.Cleanup(func() { require.NoError(t, config.LoadConfig("")) })

	s := CreateNewServer()
	s.MountHandlers()

	req := httptest.NewRequest(http.MethodGet, "/families", nil)
	rec := httptest.NewRecorder()
	s.Router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
