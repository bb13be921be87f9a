package auth

import (
	"net/http"
	"strings"

	"github.com/rs/zerolog/log"

	"github.com/articod/articod/internal/catalogsrv/catcommon"
	"github.com/articod/articod/internal/catalogsrv/config"
	"github.com/articod/articod/internal/common/httpx"
)

// Middleware authenticates the request and installs the user context. In
// single-user mode every request runs as the configured default actor with
// admin role; otherwise a valid bearer token is required.
func Middleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx := r.Context()
		if config.Config().SingleUserMode {
			ctx = catcommon.SetUserContext(ctx, &catcommon.UserContext{
				Subject: config.Config().DefaultActor,
				Role:    catcommon.RoleAdmin,
			})
			next.ServeHTTP(w, r.WithContext(ctx))
			return
		}

		token, ok := bearerToken(r)
		if !ok {
			httpx.ErrUnAuthorized("missing bearer token").Send(w)
			return
		}
		user, err := ParseToken(token)
		if err != nil {
			log.Ctx(ctx).Debug().Err(err).Msg("token rejected")
			httpx.ErrUnAuthorized(err.Error()).Send(w)
			return
		}
		ctx = catcommon.SetUserContext(ctx, user)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequireWrite rejects mutating requests from roles without write access.
// It must run after Middleware.
func RequireWrite(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.Method {
		case http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete:
			user := catcommon.GetUserContext(r.Context())
			if user == nil || !user.Role.CanWrite() {
				httpx.ErrForbidden().Send(w)
				return
			}
		}
		next.ServeHTTP(w, r)
	})
}

func bearerToken(r *http.Request) (string, bool) {
	header := r.Header.Get("Authorization")
	const prefix = "Bearer "
	if len(header) <= len(prefix) || !strings.EqualFold(header[:len(prefix)], prefix) {
		return "", false
	}
	return strings.TrimSpace(header[len(prefix):]), true
}
